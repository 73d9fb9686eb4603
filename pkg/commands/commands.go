package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/confusion/pkg/app"
	"tableflip.dev/confusion/pkg/commands/options"
	"tableflip.dev/confusion/pkg/config"
	"tableflip.dev/confusion/pkg/menu"
	"tableflip.dev/confusion/pkg/store"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "confusion",
		Short: base.Wrap80("Ristorante con Fusion on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addMenu(topLevel)
	addDish(topLevel)
	addFavorite(topLevel)
	addFavorites(topLevel)
	addComment(topLevel)
	addComments(topLevel)
	addReserve(topLevel)
	addPages(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)

	for _, c := range topLevel.Commands() {
		if c.RunE != nil {
			options.AddOutputArg(c, oo)
		}
	}
}

// loadApp reads the settings and opens the store they point at.
func loadApp() (*app.Service, *config.Settings, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	p, err := store.Load(settings)
	if err != nil {
		return nil, nil, fmt.Errorf("open store at %q: %w", settings.Path, err)
	}
	return &app.Service{Catalog: menu.Default(), Persistence: p}, settings, nil
}
