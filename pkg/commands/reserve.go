package commands

import (
	"context"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/confusion/pkg/commands/options"
	"tableflip.dev/confusion/pkg/device"
	"tableflip.dev/confusion/pkg/prompt"
	"tableflip.dev/confusion/pkg/runner/reserve"
)

func addReserve(topLevel *cobra.Command) {
	ro := &options.ReserveOptions{}
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "reserve",
		Short: "Reserve a table.",
		Example: `
confusion reserve --guests 4 --at "2025-2-28 19:30"
confusion reserve --guests 2 --smoking --at "2/28 20:00" --yes
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			at, err := ro.GetAt(time.Now())
			if err != nil {
				return oo.HandleError(err)
			}
			_, settings, err := loadApp()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			term := &prompt.Terminal{Out: out}
			alerts := device.AlertFunc(func(_ context.Context, a device.Alert) {
				_, _ = color.New(color.FgYellow).Fprintf(out, "%s: %s\n", a.Title, a.Message)
			})
			s := reserve.Reserve{
				Effects: reserve.NewEffects(settings, term.Permission, alerts, out),
				Asker:   term,
				Guests:  ro.Guests,
				Smoking: ro.Smoking,
				At:      at,
				Yes:     co.Yes,
				Out:     out,
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddReserveArgs(cmd, ro)
	options.AddConfirmArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
