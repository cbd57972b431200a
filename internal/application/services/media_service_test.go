package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gospelarchive/core/internal/domain/entities"
	"github.com/gospelarchive/core/internal/infrastructure/logger"
)

func newTestMediaService() *MediaService {
	return NewMediaService(testContentConfig(), logger.NewNop())
}

func TestEmbedURL(t *testing.T) {
	svc := newTestMediaService()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"youtube watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"youtube short", "https://youtu.be/dQw4w9WgXcQ", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"youtube no scheme", "youtube.com/watch?v=abc", "https://www.youtube.com/embed/abc"},
		{"youtube query suffix stripped", "https://www.youtube.com/watch?v=abc&t=42s", "https://www.youtube.com/embed/abc"},
		{"vimeo", "https://vimeo.com/76979871", "https://player.vimeo.com/video/76979871"},
		{"vimeo no scheme", "vimeo.com/123", "https://player.vimeo.com/video/123"},
		{"opaque url", "https://example.com/video.mp4", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.EmbedURL(tt.url))
		})
	}
}

func TestEncodeUpload(t *testing.T) {
	svc := newTestMediaService()

	resp, err := svc.EncodeUpload("notes.pdf", "application/pdf", strings.NewReader("hello"))
	require.NoError(t, err)

	assert.Equal(t, "notes.pdf", resp.AttachmentName)
	assert.Equal(t, "data:application/pdf;base64,aGVsbG8=", resp.AttachmentData)
	assert.Equal(t, int64(5), resp.Size)
}

func TestEncodeUpload_DefaultsContentType(t *testing.T) {
	svc := newTestMediaService()

	resp, err := svc.EncodeUpload("blob.bin", "", strings.NewReader("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.AttachmentData, "data:application/octet-stream;base64,"))
}

func TestEncodeUpload_RejectsOversize(t *testing.T) {
	svc := newTestMediaService() // cap is 1024 bytes in the test config

	big := strings.NewReader(strings.Repeat("a", 2048))
	_, err := svc.EncodeUpload("big.bin", "application/octet-stream", big)
	assert.ErrorIs(t, err, entities.ErrUploadTooLarge)
}
