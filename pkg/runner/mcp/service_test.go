package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/confusion/pkg/app"
	"tableflip.dev/confusion/pkg/commentform"
	"tableflip.dev/confusion/pkg/menu"
	"tableflip.dev/confusion/pkg/store"
)

type testConfig struct {
	path string
}

func (c testConfig) BasePath() string { return c.path }

func newTestService(t *testing.T) *Service {
	t.Helper()
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return NewService(&app.Service{
		Catalog:     menu.Default(),
		Persistence: p,
		Now:         func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) },
	})
}

func TestServiceMarkFavorite(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	res, err := svc.MarkFavorite(ctx, 1)
	if err != nil {
		t.Fatalf("mark favorite: %v", err)
	}
	if res.AlreadyFavorite || !res.Dish.Favorite {
		t.Fatalf("unexpected first result %+v", res)
	}
	res, err = svc.MarkFavorite(ctx, 1)
	if err != nil {
		t.Fatalf("mark favorite again: %v", err)
	}
	if !res.AlreadyFavorite {
		t.Fatal("expected already favorite on second mark")
	}

	favs, err := svc.ListFavorites(ctx)
	if err != nil {
		t.Fatalf("list favorites: %v", err)
	}
	if len(favs) != 1 || favs[0].ID != 1 {
		t.Fatalf("unexpected favorites %+v", favs)
	}
}

func TestServicePostComment(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	dto, err := svc.PostComment(ctx, 0, 4, "Ann", "Crispy")
	if err != nil {
		t.Fatalf("post comment: %v", err)
	}
	if dto.ID != 0 || dto.Stars != "★★★★☆" || dto.Date != "2024-06-01T12:00:00Z" {
		t.Fatalf("unexpected comment %+v", dto)
	}
	if _, err := svc.PostComment(ctx, 0, 4, "", "Crispy"); !errors.Is(err, commentform.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}

	detail, err := svc.GetDish(ctx, 0)
	if err != nil {
		t.Fatalf("get dish: %v", err)
	}
	if detail.Dish.CommentCount != 1 || len(detail.Comments) != 1 {
		t.Fatalf("unexpected detail %+v", detail)
	}
}

func TestServiceUnknownDish(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.GetDish(context.Background(), 77); !errors.Is(err, menu.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.ListComments(context.Background(), 77); !errors.Is(err, menu.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestParseDishID(t *testing.T) {
	tests := []struct {
		in      any
		want    int
		wantErr bool
	}{
		{in: float64(3), want: 3},
		{in: "2", want: 2},
		{in: []string{"1"}, want: 1},
		{in: 0, want: 0},
		{in: 1.5, wantErr: true},
		{in: "x", wantErr: true},
		{in: nil, wantErr: true},
		{in: true, wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseDishID(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseDishID(%v) err = %v", tt.in, err)
		}
		if !tt.wantErr && got != tt.want {
			t.Fatalf("ParseDishID(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestToolsAreRegistered(t *testing.T) {
	svc := newTestService(t)
	srv := server.NewMCPServer("test", "dev", server.WithToolCapabilities(false))
	registerServer(srv, svc)

	ctx := context.Background()
	resp := srv.HandleMessage(ctx, json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	var list struct {
		Result struct {
			Tools []struct {
				Name string `json:"name"`
			} `json:"tools"`
		} `json:"result"`
	}
	if err := json.Unmarshal(raw, &list); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := map[string]bool{
		"list_dishes": false, "get_dish": false, "mark_favorite": false,
		"list_favorites": false, "post_comment": false, "list_comments": false,
	}
	for _, tool := range list.Result.Tools {
		want[tool.Name] = true
	}
	for name, found := range want {
		if !found {
			t.Fatalf("tool %s not registered", name)
		}
	}
}
