package entities

import (
	"errors"
)

// Common errors
var (
	ErrDraftIncomplete    = errors.New("title and content are required")
	ErrPostNotFound       = errors.New("post not found")
	ErrContentInvalid     = errors.New("site content is missing required sections")
	ErrInvalidCredentials = errors.New("incorrect ID or password")
	ErrUploadTooLarge     = errors.New("uploaded file exceeds the size limit")
)

// AdminAuthor is the single implicit identity attached to every published post.
const AdminAuthor = "Admin"

// SiteContentSchemaVersion is the current schema version stamped into
// persisted SiteContent documents. Version 0 documents (written before
// versioning existed) are accepted and re-stamped on the next save.
const SiteContentSchemaVersion = 1

// Default category and language keys. The authoritative enumeration lives in
// SiteContent.Labels and is editable by the admin; these are only the keys the
// built-in documents ship with.
const (
	CategoryRoot  = "root"
	CategoryStem  = "stem"
	CategoryFruit = "fruit"

	LanguageEnglish = "english"
	LanguageChinese = "chinese"
	LanguageKorean  = "korean"
)

// Post represents a single published entry on a board.
type Post struct {
	ID             int    `json:"id"`
	Category       string `json:"category"`
	Language       string `json:"language"`
	Title          string `json:"title"`
	Author         string `json:"author"`
	Date           string `json:"date"` // calendar date, YYYY-MM-DD
	Content        string `json:"content"`
	ImageURL       string `json:"imageUrl,omitempty"`
	VideoURL       string `json:"videoUrl,omitempty"`
	AttachmentName string `json:"attachmentName,omitempty"`
	AttachmentData string `json:"attachmentData,omitempty"` // self-contained data: URL
}

// Verse is one rotating banner verse.
type Verse struct {
	Text      string `json:"text"`
	Reference string `json:"reference"`
}

// About holds the static mission copy on the home view.
type About struct {
	Title string `json:"title"`
	P1    string `json:"p1"`
	P2    string `json:"p2"`
}

// Resource is a promotional card on the home view. Its ID doubles as the
// category key used for board routing.
type Resource struct {
	ID          string `json:"id"`
	Tag         string `json:"tag"`
	Image       string `json:"image,omitempty"`
	Alt         string `json:"alt"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Labels maps stable category/language keys to admin-editable display names.
// The key sets are the authoritative enumeration of valid Post.Category and
// Post.Language values.
type Labels struct {
	Categories map[string]string `json:"categories"`
	Languages  map[string]string `json:"languages"`
}

// SiteContent is the singleton document driving the public site.
type SiteContent struct {
	SchemaVersion     int                          `json:"schemaVersion,omitempty"`
	HeaderImage       string                       `json:"headerImage"`
	Verses            []Verse                      `json:"verses"`
	About             About                        `json:"about"`
	Resources         []Resource                   `json:"resources"`
	Labels            Labels                       `json:"labels"`
	BoardDescriptions map[string]map[string]string `json:"boardDescriptions"`
}

// HasRequiredSections reports whether the document carries the minimum
// structure (verses, about, resources) expected of a SiteContent payload.
// Documents failing this check are discarded in favor of the defaults.
func (c *SiteContent) HasRequiredSections() bool {
	if c == nil {
		return false
	}
	return c.Verses != nil && c.Resources != nil && c.About != (About{})
}

// CategoryLabel returns the display name for a category key, falling back to
// the raw key when no label is configured.
func (c *SiteContent) CategoryLabel(key string) string {
	if label, ok := c.Labels.Categories[key]; ok {
		return label
	}
	return key
}

// LanguageLabel returns the display name for a language key, falling back to
// the raw key when no label is configured.
func (c *SiteContent) LanguageLabel(key string) string {
	if label, ok := c.Labels.Languages[key]; ok {
		return label
	}
	return key
}

// BoardDescription returns the descriptive text shown atop a board listing,
// or the empty string when none is configured.
func (c *SiteContent) BoardDescription(category, language string) string {
	if byLang, ok := c.BoardDescriptions[category]; ok {
		return byLang[language]
	}
	return ""
}

// NextPostID returns the id for the next published post: one past the highest
// existing id, or 1 for an empty collection. Ids need not be contiguous.
func NextPostID(posts []Post) int {
	max := 0
	for _, p := range posts {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

// FilterBoard returns the posts matching both category and language exactly,
// preserving the input order, truncated to at most limit entries. A limit of
// zero or less means no cap.
func FilterBoard(posts []Post, category, language string, limit int) []Post {
	matched := make([]Post, 0)
	for _, p := range posts {
		if p.Category != category || p.Language != language {
			continue
		}
		matched = append(matched, p)
		if limit > 0 && len(matched) == limit {
			break
		}
	}
	return matched
}

// Route variants derived from the URL fragment.
type RouteKind string

const (
	RouteHome  RouteKind = "home"
	RouteBoard RouteKind = "board"
	RouteAdmin RouteKind = "admin"
)

// Route is the parsed form of a URL fragment. Category and Language are only
// set for board routes.
type Route struct {
	Kind     RouteKind `json:"kind"`
	Category string    `json:"category,omitempty"`
	Language string    `json:"language,omitempty"`
}
