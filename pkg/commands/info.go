package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/confusion/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the settings and where favorites and comments are stored.",
		Example: `
confusion info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, settings, err := loadApp()
			if err != nil {
				return err
			}
			s := info.Info{
				Settings:    settings,
				Persistence: a.Persistence,
				Out:         cmd.OutOrStdout(),
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
