package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/confusion/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
confusion ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, settings, err := loadApp()
			if err != nil {
				return err
			}
			i := ui.UI{App: a, Settings: settings}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
