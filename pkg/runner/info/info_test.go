package info

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/confusion/pkg/comment"
	"tableflip.dev/confusion/pkg/config"
	"tableflip.dev/confusion/pkg/device"
	"tableflip.dev/confusion/pkg/store"
)

func TestInfoPrintsSettingsAndCounts(t *testing.T) {
	t.Setenv("CONFUSION_CONFIG_PATH", "")
	s := &config.Settings{
		Path:        t.TempDir(),
		Permissions: config.Permissions{Notifications: device.Granted, Calendar: device.Undetermined},
	}
	s.Notifications.Driver = config.DriverTerminal
	p, err := store.Load(s)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := p.AddFavorite(2); err != nil {
		t.Fatalf("favorite: %v", err)
	}
	if err := p.AddComment(&comment.Comment{ItemID: 2, Rating: 4, Author: "Ada", Text: "Nice"}); err != nil {
		t.Fatalf("comment: %v", err)
	}

	var buf bytes.Buffer
	i := Info{Settings: s, Persistence: p, Out: &buf}
	if err := i.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"env var not set", s.Path, "notifications=granted calendar=undetermined", "Favorites:", "Comments:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}
