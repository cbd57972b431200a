package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gospelarchive/core/internal/domain/entities"
	"github.com/gospelarchive/core/internal/infrastructure/logger"
	"github.com/gospelarchive/core/internal/ports"
)

// DocumentRepository is the persisted document store: two JSON documents
// under fixed keys, with silent fallback to the compiled-in defaults whenever
// the stored payload is missing, unparseable, or structurally invalid.
type DocumentRepository struct {
	kv     ports.KeyValueStore
	logger *logger.Logger
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(kv ports.KeyValueStore, logger *logger.Logger) *DocumentRepository {
	return &DocumentRepository{
		kv:     kv,
		logger: logger.WithComponent("document_repository"),
	}
}

// LoadSiteContent reads the SiteContent document. Storage and parse failures
// degrade to the default document; they are logged, never surfaced.
func (r *DocumentRepository) LoadSiteContent(ctx context.Context) *entities.SiteContent {
	raw, err := r.kv.Get(ctx, ports.SiteContentKey)
	if err != nil {
		if !errors.Is(err, ports.ErrKeyNotFound) {
			r.logger.Warnw("Failed to read site content, using defaults", "error", err)
		}
		return entities.DefaultSiteContent()
	}

	var content entities.SiteContent
	if err := json.Unmarshal(raw, &content); err != nil {
		r.logger.Warnw("Failed to parse stored site content, using defaults", "error", err)
		return entities.DefaultSiteContent()
	}

	if !content.HasRequiredSections() {
		r.logger.Warnw("Stored site content is missing required sections, using defaults")
		return entities.DefaultSiteContent()
	}

	r.migrate(&content)
	return &content
}

// migrate normalizes documents written before schema versioning existed.
// Version 0 is accepted as-is and stamped with the current version; the stamp
// reaches storage on the next save.
func (r *DocumentRepository) migrate(content *entities.SiteContent) {
	if content.SchemaVersion < entities.SiteContentSchemaVersion {
		content.SchemaVersion = entities.SiteContentSchemaVersion
	}
}

// SaveSiteContent serializes and writes the document back to its key.
func (r *DocumentRepository) SaveSiteContent(ctx context.Context, content *entities.SiteContent) error {
	raw, err := json.Marshal(content)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, ports.SiteContentKey, raw)
}

// LoadPosts reads the post collection, falling back to the seed posts.
func (r *DocumentRepository) LoadPosts(ctx context.Context) []entities.Post {
	raw, err := r.kv.Get(ctx, ports.PostsKey)
	if err != nil {
		if !errors.Is(err, ports.ErrKeyNotFound) {
			r.logger.Warnw("Failed to read posts, using defaults", "error", err)
		}
		return entities.DefaultPosts()
	}

	var posts []entities.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		r.logger.Warnw("Failed to parse stored posts, using defaults", "error", err)
		return entities.DefaultPosts()
	}
	return posts
}

// SavePosts serializes and writes the collection back to its key.
func (r *DocumentRepository) SavePosts(ctx context.Context, posts []entities.Post) error {
	raw, err := json.Marshal(posts)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, ports.PostsKey, raw)
}
