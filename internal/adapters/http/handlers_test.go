package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gospelarchive/core/internal/adapters/repository"
	"github.com/gospelarchive/core/internal/application/services"
	"github.com/gospelarchive/core/internal/domain/entities"
	"github.com/gospelarchive/core/internal/infrastructure/config"
	"github.com/gospelarchive/core/internal/infrastructure/logger"
	"github.com/gospelarchive/core/internal/infrastructure/storage"
	"github.com/gospelarchive/core/internal/ports"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func testContentConfig() config.ContentConfig {
	return config.ContentConfig{
		BoardPageSize:         9,
		VerseRotationInterval: time.Hour,
		PublishRedirectDelay:  500 * time.Millisecond,
		MaxUploadBytes:        1024,
	}
}

func testAdminConfig() config.AdminConfig {
	return config.AdminConfig{
		ID:        "vpqtl43",
		Password:  "TNwhdrla12!",
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
		Issuer:    "gospel-archive",
	}
}

type handlerEnv struct {
	echo    *echo.Echo
	content *services.ContentService
	media   *services.MediaService
	auth    *services.AuthService
	rotator *services.VerseRotator
}

func newHandlerEnv(t *testing.T, seed []entities.Post) *handlerEnv {
	t.Helper()

	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	store := storage.NewMemory()
	repo := repository.NewDocumentRepository(store, logger.NewNop())
	if seed != nil {
		require.NoError(t, repo.SavePosts(context.Background(), seed))
	}

	media := services.NewMediaService(testContentConfig(), logger.NewNop())
	content := services.NewContentService(repo, media, nil, testContentConfig(), logger.NewNop())
	auth := services.NewAuthService(testAdminConfig(), logger.NewNop())
	rotator := services.NewVerseRotator(time.Hour, content.Verses, logger.NewNop())

	return &handlerEnv{echo: e, content: content, media: media, auth: auth, rotator: rotator}
}

func (env *handlerEnv) jsonRequest(method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return env.echo.NewContext(req, rec), rec
}

func TestLogin_ReturnsTokenAndAdminRedirect(t *testing.T) {
	env := newHandlerEnv(t, nil)
	h := NewAuthHandler(env.auth, logger.NewNop())

	c, rec := env.jsonRequest(http.MethodPost, "/api/v1/auth/login", ports.LoginRequest{
		ID: "vpqtl43", Password: "TNwhdrla12!",
	})
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ports.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "#/admin", resp.Redirect)
}

func TestLogin_WrongCredentialsAreUnauthorized(t *testing.T) {
	env := newHandlerEnv(t, nil)
	h := NewAuthHandler(env.auth, logger.NewNop())

	c, _ := env.jsonRequest(http.MethodPost, "/api/v1/auth/login", ports.LoginRequest{
		ID: "vpqtl43", Password: "guess",
	})
	err := h.Login(c)
	require.Error(t, err)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
	assert.Equal(t, "Incorrect ID or password. Please try again.", he.Message)
}

func TestLogout_RedirectsToHome(t *testing.T) {
	env := newHandlerEnv(t, nil)
	h := NewAuthHandler(env.auth, logger.NewNop())

	c, rec := env.jsonRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"redirect":"#/"}`, rec.Body.String())
}

func TestPublishPost_CreatesAndReportsRedirect(t *testing.T) {
	env := newHandlerEnv(t, []entities.Post{})
	h := NewAdminHandler(env.content, env.media, logger.NewNop())

	c, rec := env.jsonRequest(http.MethodPost, "/api/v1/admin/posts", ports.PublishPostRequest{
		Title: "A Post", Category: "root", Language: "english", Content: "Body",
	})
	require.NoError(t, h.PublishPost(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp ports.PublishPostResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Post.ID)
	assert.Equal(t, "Admin", resp.Post.Author)
	assert.Equal(t, "#/board/root/english", resp.Redirect)
	assert.Equal(t, 500, resp.RedirectDelayMs)
}

func TestPublishPost_MissingFieldsFailValidation(t *testing.T) {
	env := newHandlerEnv(t, []entities.Post{})
	h := NewAdminHandler(env.content, env.media, logger.NewNop())

	c, _ := env.jsonRequest(http.MethodPost, "/api/v1/admin/posts", map[string]string{
		"title": "No content",
	})
	err := h.PublishPost(c)
	require.Error(t, err)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestDeletePost_WithoutConfirmIsNoOp(t *testing.T) {
	env := newHandlerEnv(t, []entities.Post{
		{ID: 1, Category: "root", Language: "english", Title: "t", Content: "c"},
	})
	h := NewAdminHandler(env.content, env.media, logger.NewNop())

	c, rec := env.jsonRequest(http.MethodDelete, "/api/v1/admin/posts/1", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.DeletePost(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":false,"confirmationRequired":true}`, rec.Body.String())
	assert.Len(t, env.content.Posts(context.Background()), 1)
}

func TestDeletePost_ConfirmedDeletes(t *testing.T) {
	env := newHandlerEnv(t, []entities.Post{
		{ID: 1, Category: "root", Language: "english", Title: "t", Content: "c"},
	})
	h := NewAdminHandler(env.content, env.media, logger.NewNop())

	c, rec := env.jsonRequest(http.MethodDelete, "/api/v1/admin/posts/1?confirm=true", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.DeletePost(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":true}`, rec.Body.String())
	assert.Empty(t, env.content.Posts(context.Background()))
}

func TestDeletePost_NonNumericIDIsBadRequest(t *testing.T) {
	env := newHandlerEnv(t, nil)
	h := NewAdminHandler(env.content, env.media, logger.NewNop())

	c, _ := env.jsonRequest(http.MethodDelete, "/api/v1/admin/posts/abc", nil)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.DeletePost(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestReplaceContent_RejectsIncompleteDocument(t *testing.T) {
	env := newHandlerEnv(t, nil)
	h := NewAdminHandler(env.content, env.media, logger.NewNop())

	doc := entities.DefaultSiteContent()
	doc.Resources = nil

	c, _ := env.jsonRequest(http.MethodPut, "/api/v1/admin/content", doc)
	err := h.ReplaceContent(c)
	require.Error(t, err)

	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestReplaceContent_SavesValidDocument(t *testing.T) {
	env := newHandlerEnv(t, nil)
	h := NewAdminHandler(env.content, env.media, logger.NewNop())

	doc := entities.DefaultSiteContent()
	doc.About.Title = "Updated Title"

	c, rec := env.jsonRequest(http.MethodPut, "/api/v1/admin/content", doc)
	require.NoError(t, h.ReplaceContent(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Updated Title", env.content.SiteContent(context.Background()).About.Title)
}

func TestUploadMedia_ReturnsDataURL(t *testing.T) {
	env := newHandlerEnv(t, nil)
	h := NewAdminHandler(env.content, env.media, logger.NewNop())

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "notes.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/media", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)

	require.NoError(t, h.UploadMedia(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ports.UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "notes.txt", resp.AttachmentName)
	assert.True(t, strings.HasPrefix(resp.AttachmentData, "data:"))
	assert.Equal(t, int64(5), resp.Size)
}

func TestUploadMedia_OversizeIsRejected(t *testing.T) {
	env := newHandlerEnv(t, nil)
	h := NewAdminHandler(env.content, env.media, logger.NewNop())

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "big.bin")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("a"), 2048))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/media", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)

	uploadErr := h.UploadMedia(c)
	require.Error(t, uploadErr)
	he, ok := uploadErr.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusRequestEntityTooLarge, he.Code)
}

func TestGetBoard_ReturnsFilteredPage(t *testing.T) {
	env := newHandlerEnv(t, []entities.Post{
		{ID: 2, Category: "root", Language: "english", Title: "keep", Content: "c"},
		{ID: 1, Category: "stem", Language: "korean", Title: "skip", Content: "c"},
	})
	h := NewContentHandler(env.content, env.rotator, logger.NewNop())

	c, rec := env.jsonRequest(http.MethodGet, "/api/v1/boards/root/english", nil)
	c.SetParamNames("category", "language")
	c.SetParamValues("root", "english")

	require.NoError(t, h.GetBoard(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var page ports.BoardPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Posts, 1)
	assert.Equal(t, "keep", page.Posts[0].Title)
	assert.Equal(t, "The Root", page.CategoryLabel)
}

func TestResolveRoute_FollowsFragmentGrammar(t *testing.T) {
	env := newHandlerEnv(t, nil)
	h := NewContentHandler(env.content, env.rotator, logger.NewNop())

	tests := []struct {
		fragment string
		want     entities.Route
	}{
		{"#/", entities.Route{Kind: entities.RouteHome}},
		{"#/admin", entities.Route{Kind: entities.RouteAdmin}},
		{"#/board/root/english", entities.Route{Kind: entities.RouteBoard, Category: "root", Language: "english"}},
		{"#/board/root", entities.Route{Kind: entities.RouteHome}},
		{"#/board/root/english/extra", entities.Route{Kind: entities.RouteHome}},
		{"#/garbage", entities.Route{Kind: entities.RouteHome}},
	}

	for _, tt := range tests {
		t.Run(tt.fragment, func(t *testing.T) {
			c, rec := env.jsonRequest(http.MethodGet, "/api/v1/route?fragment="+strings.ReplaceAll(tt.fragment, "#", "%23"), nil)
			require.NoError(t, h.ResolveRoute(c))

			var resp ports.RouteResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp.Route)
		})
	}
}

func TestCurrentVerse_ReturnsVerseFromContent(t *testing.T) {
	env := newHandlerEnv(t, nil)
	h := NewContentHandler(env.content, env.rotator, logger.NewNop())

	c, rec := env.jsonRequest(http.MethodGet, "/api/v1/verses/current", nil)
	require.NoError(t, h.CurrentVerse(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var verse entities.Verse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verse))
	assert.NotEmpty(t, verse.Text)
}

func TestContact_RelayFailureIsBadGateway(t *testing.T) {
	env := newHandlerEnv(t, nil)

	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer relay.Close()

	cfg := testContentConfig()
	cfg.ContactRelayURL = relay.URL
	h := NewContactHandler(services.NewContactService(cfg, logger.NewNop()), logger.NewNop())

	c, _ := env.jsonRequest(http.MethodPost, "/api/v1/contact", ports.ContactRequest{
		Name: "n", Email: "n@example.com", Message: "m",
	})
	err := h.Submit(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, he.Code)
}

func TestContact_RelaySuccess(t *testing.T) {
	env := newHandlerEnv(t, nil)

	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer relay.Close()

	cfg := testContentConfig()
	cfg.ContactRelayURL = relay.URL
	h := NewContactHandler(services.NewContactService(cfg, logger.NewNop()), logger.NewNop())

	c, rec := env.jsonRequest(http.MethodPost, "/api/v1/contact", ports.ContactRequest{
		Name: "n", Email: "n@example.com", Message: "m",
	})
	require.NoError(t, h.Submit(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
