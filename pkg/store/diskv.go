package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/confusion/pkg/comment"
)

const (
	favoritesBucket = "favorites"
	commentsBucket  = "comments"
)

// ErrInvalidComment is returned when a comment cannot be stored.
var ErrInvalidComment = errors.New("store: invalid comment")

// Persistence defines the persistence contract for favorites and comments.
type Persistence interface {
	// AddFavorite marks the dish as a favorite. Repeated calls are no-ops.
	AddFavorite(itemID int) error
	IsFavorite(ctx context.Context, itemID int) bool
	Favorites(ctx context.Context) []int
	// AddComment appends c and assigns its ID.
	AddComment(c *comment.Comment) error
	CommentsForItem(ctx context.Context, itemID int) []*comment.Comment
	Comments(ctx context.Context) []*comment.Comment
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath, now: time.Now}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	now      func() time.Time

	// mu serializes id allocation and favorite writes.
	mu sync.Mutex
}

type favorite struct {
	ItemID int               `json:"dishId"`
	Added  comment.Timestamp `json:"added"`
	// Seq orders favorites marked within the same second.
	Seq int `json:"seq"`
}

func (p *persistence) AddFavorite(itemID int) error {
	if itemID < 0 {
		return fmt.Errorf("store: invalid dish id %d", itemID)
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	key := favoriteKey(itemID)
	if p.d.Has(key) {
		return nil
	}
	data, err := json.Marshal(&favorite{ItemID: itemID, Added: comment.Timestamp{Time: p.now()}, Seq: p.nextFavoriteSeq()})
	if err != nil {
		return err
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write favorite %d: %w", itemID, err)
	}
	return nil
}

func (p *persistence) IsFavorite(_ context.Context, itemID int) bool {
	return p.d.Has(favoriteKey(itemID))
}

func (p *persistence) Favorites(ctx context.Context) []int {
	all := make([]favorite, 0)
	for key := range p.d.KeysPrefix(favoritesBucket+"-", ctx.Done()) {
		val, err := p.d.Read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		f := favorite{}
		if err := json.Unmarshal(val, &f); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, f)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Seq != all[j].Seq {
			return all[i].Seq < all[j].Seq
		}
		if all[i].Added.Equal(all[j].Added.Time) {
			return all[i].ItemID < all[j].ItemID
		}
		return all[i].Added.Before(all[j].Added.Time)
	})
	ids := make([]int, len(all))
	for i, f := range all {
		ids[i] = f.ItemID
	}
	return ids
}

func (p *persistence) AddComment(c *comment.Comment) error {
	if c == nil || c.ItemID < 0 {
		return ErrInvalidComment
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	c.ID = p.nextCommentID()
	if c.Date.IsZero() {
		c.Date = comment.Timestamp{Time: p.now()}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	if err := p.d.Write(commentKey(c), data); err != nil {
		return fmt.Errorf("store: write comment: %w", err)
	}
	return nil
}

// nextFavoriteSeq is one past the highest stored Seq. Callers hold mu.
func (p *persistence) nextFavoriteSeq() int {
	next := 1
	for key := range p.d.KeysPrefix(favoritesBucket+"-", nil) {
		val, err := p.d.Read(key)
		if err != nil {
			continue
		}
		f := favorite{}
		if err := json.Unmarshal(val, &f); err != nil {
			continue
		}
		if f.Seq >= next {
			next = f.Seq + 1
		}
	}
	return next
}

// nextCommentID is the number of comments ever stored. Callers hold mu.
func (p *persistence) nextCommentID() int {
	next := 0
	for key := range p.d.KeysPrefix(commentsBucket+"-", nil) {
		pk := keyToPathTransform(key)
		id, err := strconv.Atoi(pk.FileName)
		if err != nil {
			continue
		}
		if id >= next {
			next = id + 1
		}
	}
	return next
}

func (p *persistence) CommentsForItem(ctx context.Context, itemID int) []*comment.Comment {
	return p.comments(ctx, fmt.Sprintf("%s-%d-", commentsBucket, itemID))
}

func (p *persistence) Comments(ctx context.Context) []*comment.Comment {
	return p.comments(ctx, commentsBucket+"-")
}

func (p *persistence) comments(ctx context.Context, prefix string) []*comment.Comment {
	all := make([]*comment.Comment, 0)
	for key := range p.d.KeysPrefix(prefix, ctx.Done()) {
		c, err := p.readComment(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, c)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].ID < all[j].ID
	})
	return all
}

func (p *persistence) readComment(key string) (*comment.Comment, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	c := &comment.Comment{}
	if err := json.Unmarshal(val, c); err != nil {
		return nil, err
	}
	pk := keyToPathTransform(key)
	if id, err := strconv.Atoi(pk.FileName); err == nil {
		c.ID = id
	}
	return c, nil
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// favoriteKey makes `favorites-dish`
func favoriteKey(itemID int) string {
	return fmt.Sprintf("%s-%d", favoritesBucket, itemID)
}

// commentKey makes `comments-dish-id`
func commentKey(c *comment.Comment) string {
	return fmt.Sprintf("%s-%d-%d", commentsBucket, c.ItemID, c.ID)
}
