package services

import (
	"encoding/base64"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/gospelarchive/core/internal/domain/entities"
	"github.com/gospelarchive/core/internal/infrastructure/config"
	"github.com/gospelarchive/core/internal/infrastructure/logger"
	"github.com/gospelarchive/core/internal/ports"
)

var (
	youtubeRe = regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:youtube\.com|youtu\.be)/(?:watch\?v=)?(.+)`)
	vimeoRe   = regexp.MustCompile(`(?:https?://)?(?:www\.)?vimeo\.com/(.+)`)
)

// MediaService rewrites video links into embeddable player URLs and converts
// uploaded files into self-contained data: URLs stored inline in the
// documents.
type MediaService struct {
	config config.ContentConfig
	logger *logger.Logger
}

// NewMediaService creates a new media service
func NewMediaService(cfg config.ContentConfig, logger *logger.Logger) *MediaService {
	return &MediaService{
		config: cfg,
		logger: logger.WithComponent("media_service"),
	}
}

// EmbedURL rewrites a YouTube or Vimeo link into its embeddable player URL.
// Non-matching URLs are opaque: the empty string is returned and the caller
// leaves the link unembedded.
func (s *MediaService) EmbedURL(raw string) string {
	if raw == "" {
		return ""
	}

	if m := youtubeRe.FindStringSubmatch(raw); m != nil && m[1] != "" {
		id := strings.SplitN(m[1], "&", 2)[0]
		return "https://www.youtube.com/embed/" + id
	}

	if m := vimeoRe.FindStringSubmatch(raw); m != nil && m[1] != "" {
		return "https://player.vimeo.com/video/" + m[1]
	}

	return ""
}

// EncodeUpload reads an uploaded file and produces the data: URL stored
// alongside its human-readable name. Files past the configured cap are
// rejected before encoding.
func (s *MediaService) EncodeUpload(filename, contentType string, r io.Reader) (*ports.UploadResponse, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	data, err := io.ReadAll(io.LimitReader(r, s.config.MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.config.MaxUploadBytes {
		return nil, entities.ErrUploadTooLarge
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	return &ports.UploadResponse{
		AttachmentName: filename,
		AttachmentData: fmt.Sprintf("data:%s;base64,%s", contentType, encoded),
		Size:           int64(len(data)),
	}, nil
}
