package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gospelarchive/core/internal/application/router"
	"github.com/gospelarchive/core/internal/domain/entities"
	"github.com/gospelarchive/core/internal/infrastructure/config"
	"github.com/gospelarchive/core/internal/infrastructure/logger"
	"github.com/gospelarchive/core/internal/ports"
)

// ContentService owns the in-memory documents and is the only writer. Every
// mutation persists the affected document immediately; persistence failures
// are logged and swallowed (an accepted data-loss window, per the storage
// contract).
type ContentService struct {
	repo      ports.DocumentRepository
	media     *MediaService
	navigator *router.Navigator
	config    config.ContentConfig
	logger    *logger.Logger

	mu      sync.Mutex
	content *entities.SiteContent
	posts   []entities.Post
}

// NewContentService creates the service and hydrates both documents from the
// repository.
func NewContentService(repo ports.DocumentRepository, media *MediaService, navigator *router.Navigator, cfg config.ContentConfig, logger *logger.Logger) *ContentService {
	ctx := context.Background()
	return &ContentService{
		repo:      repo,
		media:     media,
		navigator: navigator,
		config:    cfg,
		logger:    logger.WithComponent("content_service"),
		content:   repo.LoadSiteContent(ctx),
		posts:     repo.LoadPosts(ctx),
	}
}

// SiteContent returns a copy of the current SiteContent document.
func (s *ContentService) SiteContent(ctx context.Context) *entities.SiteContent {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *s.content
	return &copied
}

// Posts returns the current post collection, most recent first.
func (s *ContentService) Posts(ctx context.Context) []entities.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// PublishPost validates the draft, assigns id/date/author, prepends the post
// and schedules the deferred navigation to its board. A draft missing title
// or content is rejected before any state changes.
func (s *ContentService) PublishPost(ctx context.Context, req ports.PublishPostRequest) (*ports.PublishPostResponse, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, entities.ErrDraftIncomplete
	}

	s.mu.Lock()
	post := entities.Post{
		ID:             entities.NextPostID(s.posts),
		Category:       req.Category,
		Language:       req.Language,
		Title:          req.Title,
		Author:         entities.AdminAuthor,
		Date:           time.Now().Format("2006-01-02"),
		Content:        req.Content,
		ImageURL:       req.ImageURL,
		VideoURL:       req.VideoURL,
		AttachmentName: req.AttachmentName,
		AttachmentData: req.AttachmentData,
	}
	s.posts = append([]entities.Post{post}, s.posts...)
	s.persistPosts(ctx)
	s.mu.Unlock()

	redirect := router.BoardFragment(post.Category, post.Language)
	if s.navigator != nil {
		s.navigator.NavigateAfter(s.config.PublishRedirectDelay, redirect)
	}

	s.logger.LogAdminAction("publish_post", map[string]interface{}{
		"post_id":  post.ID,
		"category": post.Category,
		"language": post.Language,
	})

	return &ports.PublishPostResponse{
		Post:            post,
		Redirect:        redirect,
		RedirectDelayMs: int(s.config.PublishRedirectDelay.Milliseconds()),
	}, nil
}

// DeletePost removes the post with the given id once the caller has
// confirmed. Declined confirmation and unknown ids are normal no-ops.
func (s *ContentService) DeletePost(ctx context.Context, id int, confirmed bool) *ports.DeletePostResponse {
	if !confirmed {
		return &ports.DeletePostResponse{Deleted: false, ConfirmationRequired: true}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.posts {
		if p.ID != id {
			continue
		}
		s.posts = append(s.posts[:i], s.posts[i+1:]...)
		s.persistPosts(ctx)
		s.logger.LogAdminAction("delete_post", map[string]interface{}{"post_id": id})
		return &ports.DeletePostResponse{Deleted: true}
	}

	return &ports.DeletePostResponse{Deleted: false}
}

// ReplaceSiteContent replaces the document wholesale. The caller supplies a
// complete document; there is no field-level merging.
func (s *ContentService) ReplaceSiteContent(ctx context.Context, content *entities.SiteContent) error {
	if !content.HasRequiredSections() {
		return entities.ErrContentInvalid
	}

	content.SchemaVersion = entities.SiteContentSchemaVersion

	s.mu.Lock()
	defer s.mu.Unlock()

	s.content = content
	if err := s.repo.SaveSiteContent(ctx, s.content); err != nil {
		s.logger.Errorw("Failed to persist site content", "error", err)
	}

	s.logger.LogAdminAction("replace_site_content", map[string]interface{}{
		"verses":    len(content.Verses),
		"resources": len(content.Resources),
	})
	return nil
}

// BoardPage renders one category/language board: labels (falling back to raw
// keys), the board description, and the first matching posts up to the
// configured cap. An empty board is a normal state, not an error.
func (s *ContentService) BoardPage(ctx context.Context, category, language string) *ports.BoardPage {
	s.mu.Lock()
	content := s.content
	matched := entities.FilterBoard(s.posts, category, language, s.config.BoardPageSize)
	page := &ports.BoardPage{
		Category:      category,
		Language:      language,
		CategoryLabel: content.CategoryLabel(category),
		LanguageLabel: content.LanguageLabel(language),
		Description:   content.BoardDescription(category, language),
	}
	s.mu.Unlock()

	page.Posts = make([]ports.BoardPost, 0, len(matched))
	for _, p := range matched {
		bp := ports.BoardPost{Post: p}
		if s.media != nil {
			bp.EmbedURL = s.media.EmbedURL(p.VideoURL)
		}
		page.Posts = append(page.Posts, bp)
	}
	return page
}

// Verses returns the current verse sequence for the rotator.
func (s *ContentService) Verses() []entities.Verse {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Verse, len(s.content.Verses))
	copy(out, s.content.Verses)
	return out
}

// persistPosts writes the collection back; callers hold s.mu.
func (s *ContentService) persistPosts(ctx context.Context) {
	if err := s.repo.SavePosts(ctx, s.posts); err != nil {
		s.logger.Errorw("Failed to persist posts", "error", err)
	}
}
