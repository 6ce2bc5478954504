package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inclusivo-app/campus-api/internal/models"
	appErrors "github.com/inclusivo-app/campus-api/pkg/errors"
)

// Without a Redis client the repository behaves as an empty store that
// swallows writes, so the app keeps serving with in-memory defaults.
func TestSettingsRepositoryNilClient(t *testing.T) {
	repo := NewSettingsRepository(nil, nil)
	ctx := context.Background()

	var voice models.VoiceSettings
	err := repo.Get(ctx, KeyVoiceSettings, &voice)
	require.ErrorIs(t, err, appErrors.ErrSettingsMiss)

	assert.NoError(t, repo.Set(ctx, KeyVoiceSettings, models.DefaultVoiceSettings()))
	assert.NoError(t, repo.Delete(ctx, KeyVoiceSettings))

	_, err = repo.GetFlag(ctx, KeyAuthFlag)
	require.ErrorIs(t, err, appErrors.ErrSettingsMiss)

	assert.NoError(t, repo.SetFlag(ctx, KeyAuthFlag, true))
	assert.NoError(t, repo.Close())
}
