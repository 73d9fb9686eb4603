package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/confusion/pkg/menu"
	"tableflip.dev/confusion/pkg/runner/pages"
)

func addPages(topLevel *cobra.Command) {
	width := 80
	catalog := menu.Default()
	for _, p := range []struct {
		use   string
		short string
		page  func() menu.Page
	}{
		{use: "home", short: "Show the featured dish, promotion and leader.", page: catalog.HomePage},
		{use: "about", short: "Show the restaurant history and leadership.", page: catalog.AboutPage},
		{use: "contact", short: "Show how to reach the restaurant.", page: menu.ContactPage},
	} {
		page := p.page
		cmd := &cobra.Command{
			Use:   p.use,
			Short: p.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cmd.SilenceUsage = true
				s := pages.Page{Page: page(), Width: width, Out: cmd.OutOrStdout()}
				err := s.Do(context.Background())
				return oo.HandleError(err)
			},
		}
		cmd.Flags().IntVarP(&width, "width", "w", 80, "Wrap the page at this many columns.")
		topLevel.AddCommand(cmd)
	}
}
