package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/confusion/pkg/app"
	"tableflip.dev/confusion/pkg/commands/options"
	"tableflip.dev/confusion/pkg/prompt"
	"tableflip.dev/confusion/pkg/runner/menu"
)

func addMenu(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "List the dishes on the menu.",
		Example: `
confusion menu
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, _, err := loadApp()
			if err != nil {
				return err
			}
			s := menu.Menu{App: a, Out: cmd.OutOrStdout()}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addDish(topLevel *cobra.Command) {
	do := &options.DishOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "dish <id>",
		Short: "Show a dish and its comments.",
		Example: `
confusion dish 0
confusion dish -i
`,
		Args:              options.DishArgs(i),
		ValidArgsFunction: dishCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			a, _, err := loadApp()
			if err != nil {
				return err
			}
			if err := resolveDish(a, do, i, args); err != nil {
				return oo.HandleError(err)
			}
			s := menu.Dish{App: a, ID: do.ID, Out: cmd.OutOrStdout()}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}

func addFavorites(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "List your favorite dishes.",
		Example: `
confusion favorites
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, _, err := loadApp()
			if err != nil {
				return err
			}
			s := menu.Favorites{App: a, Out: cmd.OutOrStdout()}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

// resolveDish fills do from args, or from a picker when interactive.
func resolveDish(a *app.Service, do *options.DishOptions, i *options.InteractiveOptions, args []string) error {
	if err := do.ParseArgs(args); err != nil {
		return err
	}
	if do.Set || !i.Interactive {
		return nil
	}
	t := prompt.Terminal{}
	d, err := t.PickDish(a.Dishes())
	if err != nil {
		return err
	}
	do.ID = d.ID
	do.Set = true
	return nil
}
