package ports

import (
	"context"

	"github.com/gospelarchive/core/internal/domain/entities"
)

// ContentService interface for document mutations and board reads
type ContentService interface {
	SiteContent(ctx context.Context) *entities.SiteContent
	Posts(ctx context.Context) []entities.Post
	PublishPost(ctx context.Context, req PublishPostRequest) (*PublishPostResponse, error)
	DeletePost(ctx context.Context, id int, confirmed bool) *DeletePostResponse
	ReplaceSiteContent(ctx context.Context, content *entities.SiteContent) error
	BoardPage(ctx context.Context, category, language string) *BoardPage
}

// PublishPostRequest is the draft payload prior to id/date/author assignment.
type PublishPostRequest struct {
	Title          string `json:"title" validate:"required"`
	Category       string `json:"category" validate:"required"`
	Language       string `json:"language" validate:"required"`
	Content        string `json:"content" validate:"required"`
	ImageURL       string `json:"imageUrl,omitempty"`
	VideoURL       string `json:"videoUrl,omitempty"`
	AttachmentName string `json:"attachmentName,omitempty"`
	AttachmentData string `json:"attachmentData,omitempty"`
}

// PublishPostResponse carries the stored post plus the deferred navigation
// the client should perform to show the published result in context.
type PublishPostResponse struct {
	Post            entities.Post `json:"post"`
	Redirect        string        `json:"redirect"`
	RedirectDelayMs int           `json:"redirectDelayMs"`
}

// DeletePostResponse reports the outcome of a delete request. A request
// without confirmation is a normal no-op flagged ConfirmationRequired, never
// an error.
type DeletePostResponse struct {
	Deleted              bool `json:"deleted"`
	ConfirmationRequired bool `json:"confirmationRequired,omitempty"`
}

// BoardPage is the rendered data for one category/language board.
type BoardPage struct {
	Category      string      `json:"category"`
	Language      string      `json:"language"`
	CategoryLabel string      `json:"categoryLabel"`
	LanguageLabel string      `json:"languageLabel"`
	Description   string      `json:"description,omitempty"`
	Posts         []BoardPost `json:"posts"`
}

// BoardPost is a post decorated with its computed embeddable player URL.
type BoardPost struct {
	entities.Post
	EmbedURL string `json:"embedUrl,omitempty"`
}

// LoginRequest carries the admin credential pair.
type LoginRequest struct {
	ID       string `json:"id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the admin session token and the fragment to navigate
// to on success.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	ExpiresIn int64  `json:"expiresIn"`
	Redirect  string `json:"redirect"`
}

// LogoutResponse carries the fragment to navigate to after logout.
type LogoutResponse struct {
	Redirect string `json:"redirect"`
}

// ContactRequest is the outbound contact form payload relayed to the
// configured form endpoint.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// UploadResponse is the result of converting an uploaded file into a
// self-contained data: URL.
type UploadResponse struct {
	AttachmentName string `json:"attachmentName"`
	AttachmentData string `json:"attachmentData"`
	Size           int64  `json:"size"`
}

// RouteResponse is the resolved form of a URL fragment.
type RouteResponse struct {
	Fragment string         `json:"fragment"`
	Route    entities.Route `json:"route"`
}
