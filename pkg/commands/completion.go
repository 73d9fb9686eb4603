package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/confusion/pkg/menu"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(confusion completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(confusion completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// dishCompletions offers "<id>\t<name>" for the first positional argument.
func dishCompletions(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, d := range menu.Default().Dishes() {
		id := strconv.Itoa(d.ID)
		if strings.HasPrefix(id, toComplete) {
			out = append(out, fmt.Sprintf("%s\t%s", id, d.Name))
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
