package validators

import (
	"net/http"
	"testing"

	"github.com/anonto42/red-social/backend/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegisterRequest(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(models.RegisterRequest{Username: "alice", Password: "secret1"}))

	err := v.Validate(models.RegisterRequest{Username: "", Password: "secret1"})
	require.Error(t, err)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)

	assert.Error(t, v.Validate(models.RegisterRequest{Username: "al ice", Password: "secret1"}))
	assert.Error(t, v.Validate(models.RegisterRequest{Username: "alice", Password: "123"}))
}

func TestValidateSettingsHandles(t *testing.T) {
	v := NewValidator()

	ok := models.UpdateSettingsRequest{Handles: map[models.Network]string{models.NetworkGitHub: "octocat"}}
	assert.NoError(t, v.Struct(ok))

	at := models.UpdateSettingsRequest{Handles: map[models.Network]string{models.NetworkTwitter: "@jack"}}
	assert.NoError(t, v.Struct(at))

	unknown := models.UpdateSettingsRequest{Handles: map[models.Network]string{"myspace": "tom"}}
	assert.Error(t, v.Struct(unknown))

	sneaky := models.UpdateSettingsRequest{Handles: map[models.Network]string{models.NetworkGitHub: "../admin?x"}}
	assert.Error(t, v.Struct(sneaky))

	bad := models.PrivacyLevel("everyone")
	assert.Error(t, v.Struct(models.UpdateSettingsRequest{Privacy: &bad}))
}
