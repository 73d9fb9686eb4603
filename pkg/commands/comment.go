package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/confusion/pkg/commands/options"
	"tableflip.dev/confusion/pkg/runner/comment"
)

func addComment(topLevel *cobra.Command) {
	do := &options.DishOptions{}
	i := &options.InteractiveOptions{}
	co := &options.CommentOptions{}

	cmd := &cobra.Command{
		Use:   "comment <id>",
		Short: "Rate and comment on a dish.",
		Example: `
confusion comment 0 --rating 4 --author "Ada" --comment "Crisp and light."
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
			s := comment.Comment{
				App:    a,
				ID:     do.ID,
				Rating: co.Rating,
				Author: co.Author,
				Text:   co.Text,
				Out:    cmd.OutOrStdout(),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.InteractiveArgs(cmd, i)
	options.AddCommentArgs(cmd, co)

	topLevel.AddCommand(cmd)
}

func addComments(topLevel *cobra.Command) {
	do := &options.DishOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "comments <id>",
		Short: "List the comments on a dish.",
		Example: `
confusion comments 0
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
			s := comment.Comments{App: a, ID: do.ID, Out: cmd.OutOrStdout()}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}
