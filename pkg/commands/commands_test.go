package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestCommandTree(t *testing.T) {
	root := New()
	want := []string{"ui", "menu", "dish", "favorite", "favorites", "comment", "comments",
		"reserve", "home", "about", "contact", "info", "mcp", "completion", "version"}
	for _, name := range want {
		c, _, err := root.Find([]string{name})
		if err != nil || c == root {
			t.Errorf("missing command %q: %v", name, err)
		}
	}
	c, _, _ := root.Find([]string{"menu"})
	if c.Flags().Lookup("json") == nil {
		t.Error("menu should accept --json")
	}
}

func TestMenuCommand(t *testing.T) {
	isolate(t)

	root := New()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"menu"})
	if err := root.Execute(); err != nil {
		t.Fatalf("menu: %v", err)
	}
	if !strings.Contains(out.String(), "Uthappizza") {
		t.Errorf("menu output is missing Uthappizza:\n%s", out.String())
	}
}

func TestFavoriteThenFavorites(t *testing.T) {
	isolate(t)

	run := func(args ...string) string {
		root := New()
		out := &bytes.Buffer{}
		root.SetOut(out)
		root.SetArgs(args)
		if err := root.Execute(); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		return out.String()
	}

	if got := run("favorite", "1", "--yes"); !strings.Contains(got, "Zucchipakoda added to your favorites.") {
		t.Errorf("favorite output: %q", got)
	}
	if got := run("favorite", "1", "--yes"); strings.Contains(got, "added to your favorites") {
		t.Errorf("second favorite should not add again: %q", got)
	}
	if got := run("favorites"); !strings.Contains(got, "Zucchipakoda") {
		t.Errorf("favorites output: %q", got)
	}
}

func TestDishRequiresID(t *testing.T) {
	root := New()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"dish"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected an error without a dish id")
	}
}

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CONFUSION_PATH", t.TempDir())
	t.Chdir(t.TempDir())
}
