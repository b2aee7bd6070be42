package services

import (
	"testing"
	"time"

	"hbt-medrefill/internal/config"
	"hbt-medrefill/internal/pkg/jwt"
	"hbt-medrefill/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		Admin: config.AdminConfig{
			Password: "10551055",
		},
		Session: config.SessionConfig{
			Secret:    "test_secret",
			TokenMins: 60,
		},
	}
}

func TestLoginWrongCredentialStaysLoggedOut(t *testing.T) {
	views := NewViewService(5 * time.Second)
	gate := NewSessionService(testConfig(), views)

	_, err := gate.Login("wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, SessionLoggedOut, gate.State())
	assert.False(t, gate.LoggedIn())
}

func TestLoginUnlimitedRetries(t *testing.T) {
	views := NewViewService(5 * time.Second)
	gate := NewSessionService(testConfig(), views)

	for i := 0; i < 10; i++ {
		_, err := gate.Login("wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	}

	// a later correct attempt still succeeds: no lockout
	_, err := gate.Login("10551055")
	require.NoError(t, err)
	assert.True(t, gate.LoggedIn())
}

func TestLoginCorrectCredentialIssuesToken(t *testing.T) {
	cfg := testConfig()
	views := NewViewService(5 * time.Second)
	gate := NewSessionService(cfg, views)

	token, err := gate.Login("10551055")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, SessionLoggedIn, gate.State())

	claims, err := jwt.ValidateSessionToken(token, cfg.Session.Secret)
	require.NoError(t, err)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestLoginVerifiesHashWhenConfigured(t *testing.T) {
	cfg := testConfig()
	hash, err := password.Hash("10551055")
	require.NoError(t, err)
	cfg.Admin.PasswordHash = hash
	cfg.Admin.Password = "ignored-when-hash-set"

	views := NewViewService(5 * time.Second)
	gate := NewSessionService(cfg, views)

	_, err = gate.Login("ignored-when-hash-set")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = gate.Login("10551055")
	require.NoError(t, err)
}

func TestLogoutResetsViewToCreation(t *testing.T) {
	views := NewViewService(5 * time.Second)
	gate := NewSessionService(testConfig(), views)

	_, err := gate.Login("10551055")
	require.NoError(t, err)

	require.NoError(t, views.Switch(ViewAdmin))
	gate.Logout()

	assert.Equal(t, SessionLoggedOut, gate.State())
	assert.Equal(t, ViewCreation, views.Active())
}

func TestSessionSurvivesViewSwitches(t *testing.T) {
	views := NewViewService(5 * time.Second)
	gate := NewSessionService(testConfig(), views)

	_, err := gate.Login("10551055")
	require.NoError(t, err)

	require.NoError(t, views.Switch(ViewTracking))
	require.NoError(t, views.Switch(ViewAdmin))
	assert.True(t, gate.LoggedIn(), "view switches must not touch session state")
}
