package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/confusion/pkg/commentform"
)

// CommentOptions
type CommentOptions struct {
	Rating int
	Author string
	Text   string
}

func AddCommentArgs(cmd *cobra.Command, o *CommentOptions) {
	cmd.Flags().IntVarP(&o.Rating, "rating", "r", commentform.DefaultRating,
		"Star rating from 1 to 5.")
	cmd.Flags().StringVarP(&o.Author, "author", "a", "",
		"Your name.")
	cmd.Flags().StringVarP(&o.Text, "comment", "m", "",
		"The comment text.")
}
