package ports

import (
	"context"
	"errors"

	"github.com/gospelarchive/core/internal/domain/entities"
)

// Persisted storage keys. These are the only keys the application writes.
const (
	SiteContentKey = "siteContent"
	PostsKey       = "sitePosts"
)

// ErrKeyNotFound is returned by KeyValueStore.Get when a key has never been
// written.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore defines the interface for the underlying key-value
// persistence mechanism. Implementations live in infrastructure/storage.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}

// DocumentRepository defines the persisted document store over the two JSON
// documents. Loads never fail: missing or unusable stored data degrades to
// the compiled-in defaults. Saves report errors so callers can log them, but
// a failed save is an accepted data-loss window, not a user-facing failure.
type DocumentRepository interface {
	LoadSiteContent(ctx context.Context) *entities.SiteContent
	SaveSiteContent(ctx context.Context, content *entities.SiteContent) error
	LoadPosts(ctx context.Context) []entities.Post
	SavePosts(ctx context.Context, posts []entities.Post) error
}
