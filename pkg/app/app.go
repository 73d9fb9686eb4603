package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/confusion/pkg/comment"
	"tableflip.dev/confusion/pkg/commentform"
	"tableflip.dev/confusion/pkg/menu"
	"tableflip.dev/confusion/pkg/store"
)

// Service provides high-level operations on dishes, favorites and comments.
// It wraps the catalog and persistence so UIs and CLIs can share logic.
type Service struct {
	Catalog     *menu.Catalog
	Persistence store.Persistence

	// Now dates new comments. Defaults to time.Now.
	Now func() time.Time
}

var (
	// ErrNoPersistence is returned by operations that need the store.
	ErrNoPersistence = errors.New("app: no persistence configured")
)

func (s *Service) catalog() *menu.Catalog {
	if s.Catalog == nil {
		s.Catalog = menu.Default()
	}
	return s.Catalog
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Dishes lists the menu.
func (s *Service) Dishes() []menu.Item {
	return s.catalog().Dishes()
}

// Dish looks up one dish.
func (s *Service) Dish(id int) (menu.Item, error) {
	return s.catalog().Dish(id)
}

// PostFavorite marks a dish as favorite. Marking it twice is a no-op.
func (s *Service) PostFavorite(ctx context.Context, itemID int) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	if _, err := s.Dish(itemID); err != nil {
		return err
	}
	return s.Persistence.AddFavorite(itemID)
}

// IsFavorite reports whether the dish is a favorite.
func (s *Service) IsFavorite(ctx context.Context, itemID int) (bool, error) {
	if s.Persistence == nil {
		return false, ErrNoPersistence
	}
	return s.Persistence.IsFavorite(ctx, itemID), nil
}

// FavoriteDishes returns the favorite dishes in the order they were marked.
// Ids that are no longer on the menu are skipped.
func (s *Service) FavoriteDishes(ctx context.Context) ([]menu.Item, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	ids := s.Persistence.Favorites(ctx)
	dishes := make([]menu.Item, 0, len(ids))
	for _, id := range ids {
		d, err := s.Dish(id)
		if err != nil {
			continue
		}
		dishes = append(dishes, d)
	}
	return dishes, nil
}

// PostComment validates and stores a comment dated now.
func (s *Service) PostComment(ctx context.Context, itemID, rating int, author, text string) (*comment.Comment, error) {
	v := commentform.Validate(commentform.Fields{Rating: rating, Author: author, Comment: text})
	if !v.Valid {
		return nil, fmt.Errorf("%w: %s", commentform.ErrInvalid, v.Error())
	}
	c := comment.New(itemID, rating, author, text, s.now())
	if err := s.SaveComment(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// SaveComment stores an already built comment. It implements
// commentform.Poster through commentform.PosterFunc.
func (s *Service) SaveComment(ctx context.Context, c *comment.Comment) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	if c == nil {
		return store.ErrInvalidComment
	}
	if _, err := s.Dish(c.ItemID); err != nil {
		return err
	}
	return s.Persistence.AddComment(c)
}

// Comments lists the comments of a dish in the order they were posted.
func (s *Service) Comments(ctx context.Context, itemID int) ([]*comment.Comment, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.CommentsForItem(ctx, itemID), nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx)
}
