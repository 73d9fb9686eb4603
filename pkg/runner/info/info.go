package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/confusion/pkg/config"
	"tableflip.dev/confusion/pkg/store"
)

type Info struct {
	Settings    *config.Settings
	Persistence store.Persistence
	Out         io.Writer
}

func (n *Info) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}

func (n *Info) Do(ctx context.Context) error {
	out := n.out()

	if override := os.Getenv("CONFUSION_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "CONFUSION_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "CONFUSION_CONFIG_PATH env var not set")
	}

	if n.Settings == nil {
		var err error
		n.Settings, err = config.Load()
		if err != nil {
			return err
		}
	}
	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	s := n.Settings
	tbl := uitable.New()
	tbl.AddRow("Store path:", s.BasePath())
	tbl.AddRow("Calendar dir:", s.Calendar.Dir)
	tbl.AddRow("Notifications:", s.Notifications.Driver)
	if s.Notifications.Driver == config.DriverAMQP {
		tbl.AddRow("AMQP queue:", s.Notifications.AMQP.Queue)
	}
	tbl.AddRow("Permissions:", fmt.Sprintf("notifications=%s calendar=%s", s.Permissions.Notifications, s.Permissions.Calendar))
	tbl.AddRow("Favorites:", len(n.Persistence.Favorites(ctx)))
	tbl.AddRow("Comments:", len(n.Persistence.Comments(ctx)))
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
