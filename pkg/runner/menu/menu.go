// Package menu prints the dish menu, single dishes and the favorites.
package menu

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/confusion/pkg/app"
	"tableflip.dev/confusion/pkg/printers"
)

// Menu prints every dish, marking favorites.
type Menu struct {
	App *app.Service
	Out io.Writer
}

func (n *Menu) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not list the menu, no app service")
	}
	pp := printers.PrettyPrint{Out: n.Out}
	favs, err := favoriteSet(ctx, n.App)
	if err != nil {
		return err
	}

	pp.NewLine()
	pp.Title(app.MenuScreen.Title())
	pp.Dishes(n.App.Dishes(), favs)
	return nil
}

// Dish prints one dish and its comments.
type Dish struct {
	App *app.Service
	ID  int
	Out io.Writer
}

func (n *Dish) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not show the dish, no app service")
	}
	d, err := n.App.NewDishDetail(n.ID)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Dish(d.Dish(), d.IsFavorite(ctx))
	pp.Comments(d.Comments(ctx))
	return nil
}

// Favorites prints the favorite dishes.
type Favorites struct {
	App *app.Service
	Out io.Writer
}

func (n *Favorites) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not list favorites, no app service")
	}
	dishes, err := n.App.FavoriteDishes(ctx)
	if err != nil {
		return err
	}
	favs, err := favoriteSet(ctx, n.App)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Title(app.FavoritesScreen.Title())
	pp.Dishes(dishes, favs)
	return nil
}

func favoriteSet(ctx context.Context, a *app.Service) (map[int]bool, error) {
	dishes, err := a.FavoriteDishes(ctx)
	if err != nil {
		return nil, err
	}
	set := make(map[int]bool, len(dishes))
	for _, d := range dishes {
		set[d.ID] = true
	}
	return set, nil
}
