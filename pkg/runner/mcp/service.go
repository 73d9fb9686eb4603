// Package mcp provides the Model Context Protocol server integration for confusion.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/confusion/pkg/app"
	"tableflip.dev/confusion/pkg/comment"
	"tableflip.dev/confusion/pkg/menu"
)

// Service adapts app.Service to transport-friendly results for the MCP server.
type Service struct {
	App *app.Service
}

// DishDTO is a transport-friendly projection of a dish.
type DishDTO struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Image        string `json:"image,omitempty"`
	Category     string `json:"category,omitempty"`
	Label        string `json:"label,omitempty"`
	Price        string `json:"price,omitempty"`
	Featured     bool   `json:"featured"`
	Favorite     bool   `json:"favorite"`
	CommentCount int    `json:"commentCount"`
}

// CommentDTO is a transport-friendly projection of a comment.
type CommentDTO struct {
	ID      int    `json:"id"`
	DishID  int    `json:"dishId"`
	Rating  int    `json:"rating"`
	Stars   string `json:"stars"`
	Author  string `json:"author"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// DishDetailDTO is a dish with its comments.
type DishDetailDTO struct {
	Dish     DishDTO      `json:"dish"`
	Comments []CommentDTO `json:"comments"`
}

// FavoriteResult reports what mark_favorite did.
type FavoriteResult struct {
	Dish            DishDTO `json:"dish"`
	AlreadyFavorite bool    `json:"alreadyFavorite"`
}

// NewService builds a service wrapper around the app service.
func NewService(a *app.Service) *Service {
	return &Service{App: a}
}

func (s *Service) check() error {
	if s.App == nil {
		return errors.New("app service is not configured")
	}
	return nil
}

// ListDishes returns every dish on the menu.
func (s *Service) ListDishes(ctx context.Context) ([]DishDTO, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	dishes := s.App.Dishes()
	out := make([]DishDTO, 0, len(dishes))
	for _, d := range dishes {
		dto, err := s.toDish(ctx, d)
		if err != nil {
			return nil, err
		}
		out = append(out, dto)
	}
	return out, nil
}

// GetDish returns one dish with its comments.
func (s *Service) GetDish(ctx context.Context, id int) (*DishDetailDTO, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	d, err := s.App.Dish(id)
	if err != nil {
		return nil, err
	}
	dto, err := s.toDish(ctx, d)
	if err != nil {
		return nil, err
	}
	comments, err := s.ListComments(ctx, id)
	if err != nil {
		return nil, err
	}
	return &DishDetailDTO{Dish: dto, Comments: comments}, nil
}

// MarkFavorite adds the dish to the favorites unless it already is one.
func (s *Service) MarkFavorite(ctx context.Context, id int) (*FavoriteResult, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	d, err := s.App.Dish(id)
	if err != nil {
		return nil, err
	}
	already, err := s.App.IsFavorite(ctx, id)
	if err != nil {
		return nil, err
	}
	if !already {
		if err := s.App.PostFavorite(ctx, id); err != nil {
			return nil, err
		}
	}
	dto, err := s.toDish(ctx, d)
	if err != nil {
		return nil, err
	}
	return &FavoriteResult{Dish: dto, AlreadyFavorite: already}, nil
}

// ListFavorites returns the favorite dishes.
func (s *Service) ListFavorites(ctx context.Context) ([]DishDTO, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	dishes, err := s.App.FavoriteDishes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]DishDTO, 0, len(dishes))
	for _, d := range dishes {
		dto, err := s.toDish(ctx, d)
		if err != nil {
			return nil, err
		}
		out = append(out, dto)
	}
	return out, nil
}

// PostComment validates and stores a comment.
func (s *Service) PostComment(ctx context.Context, dishID, rating int, author, text string) (*CommentDTO, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	c, err := s.App.PostComment(ctx, dishID, rating, author, text)
	if err != nil {
		return nil, err
	}
	dto := toComment(c)
	return &dto, nil
}

// ListComments returns the comments of a dish in posting order.
func (s *Service) ListComments(ctx context.Context, dishID int) ([]CommentDTO, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	if _, err := s.App.Dish(dishID); err != nil {
		return nil, err
	}
	list, err := s.App.Comments(ctx, dishID)
	if err != nil {
		return nil, err
	}
	out := make([]CommentDTO, 0, len(list))
	for _, c := range list {
		out = append(out, toComment(c))
	}
	return out, nil
}

func (s *Service) toDish(ctx context.Context, d menu.Item) (DishDTO, error) {
	fav, err := s.App.IsFavorite(ctx, d.ID)
	if err != nil {
		return DishDTO{}, err
	}
	comments, err := s.App.Comments(ctx, d.ID)
	if err != nil {
		return DishDTO{}, err
	}
	return DishDTO{
		ID:           d.ID,
		Name:         d.Name,
		Description:  d.Description,
		Image:        d.Image,
		Category:     d.Category,
		Label:        d.Label,
		Price:        d.Price,
		Featured:     d.Featured,
		Favorite:     fav,
		CommentCount: len(comments),
	}, nil
}

func toComment(c *comment.Comment) CommentDTO {
	return CommentDTO{
		ID:      c.ID,
		DishID:  c.ItemID,
		Rating:  c.Rating,
		Stars:   c.Stars(),
		Author:  c.Author,
		Comment: c.Text,
		Date:    c.Date.String(),
	}
}

// ParseDishID accepts the id forms MCP clients send.
func ParseDishID(v any) (int, error) {
	switch id := v.(type) {
	case int:
		return id, nil
	case float64:
		if id != float64(int(id)) {
			return 0, fmt.Errorf("dish id %v is not an integer", id)
		}
		return int(id), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(id))
		if err != nil {
			return 0, fmt.Errorf("invalid dish id %q", id)
		}
		return n, nil
	case []string:
		if len(id) == 0 {
			return 0, errors.New("dish id is required")
		}
		return ParseDishID(id[0])
	case nil:
		return 0, errors.New("dish id is required")
	default:
		return 0, fmt.Errorf("invalid dish id %v", v)
	}
}
