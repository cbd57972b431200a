package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gospelarchive/core/internal/domain/entities"
	"github.com/gospelarchive/core/internal/infrastructure/config"
	"github.com/gospelarchive/core/internal/infrastructure/logger"
	"github.com/gospelarchive/core/internal/ports"
)

func testAdminConfig() config.AdminConfig {
	return config.AdminConfig{
		ID:        "vpqtl43",
		Password:  "TNwhdrla12!",
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
		Issuer:    "gospel-archive",
	}
}

func TestLogin_ExactPairSucceeds(t *testing.T) {
	svc := NewAuthService(testAdminConfig(), logger.NewNop())

	resp, err := svc.Login(ports.LoginRequest{ID: "vpqtl43", Password: "TNwhdrla12!"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, "#/admin", resp.Redirect)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.True(t, claims.Admin)
	assert.Equal(t, "admin", claims.Subject)
}

func TestLogin_AnyMismatchFailsGenerically(t *testing.T) {
	svc := NewAuthService(testAdminConfig(), logger.NewNop())

	tests := []ports.LoginRequest{
		{ID: "vpqtl43", Password: "wrong"},
		{ID: "wrong", Password: "TNwhdrla12!"},
		{ID: "", Password: ""},
		{ID: "VPQTL43", Password: "TNwhdrla12!"}, // compared verbatim, case matters
		{ID: "vpqtl43", Password: "TNwhdrla12! "},
	}

	for _, req := range tests {
		resp, err := svc.Login(req)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, entities.ErrInvalidCredentials)
	}
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	svc := NewAuthService(testAdminConfig(), logger.NewNop())

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateToken_RejectsForeignSecret(t *testing.T) {
	issuer := NewAuthService(testAdminConfig(), logger.NewNop())
	resp, err := issuer.Login(ports.LoginRequest{ID: "vpqtl43", Password: "TNwhdrla12!"})
	require.NoError(t, err)

	other := testAdminConfig()
	other.JWTSecret = "different-secret"
	verifier := NewAuthService(other, logger.NewNop())

	_, err = verifier.ValidateToken(resp.Token)
	assert.Error(t, err)
}

func TestLogout_RedirectsHome(t *testing.T) {
	svc := NewAuthService(testAdminConfig(), logger.NewNop())
	assert.Equal(t, "#/", svc.Logout().Redirect)
}
