package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/confusion/pkg/commands/options"
	"tableflip.dev/confusion/pkg/prompt"
	"tableflip.dev/confusion/pkg/runner/favorite"
)

func addFavorite(topLevel *cobra.Command) {
	do := &options.DishOptions{}
	i := &options.InteractiveOptions{}
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "favorite <id>",
		Aliases: []string{"fav"},
		Short:   "Add a dish to your favorites.",
		Example: `
confusion favorite 3
confusion favorite 3 --yes
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
			s := favorite.Favorite{
				App:   a,
				ID:    do.ID,
				Asker: &prompt.Terminal{Out: cmd.OutOrStdout()},
				Yes:   co.Yes,
				Out:   cmd.OutOrStdout(),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.InteractiveArgs(cmd, i)
	options.AddConfirmArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
