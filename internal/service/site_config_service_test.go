package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/artesania-dev/joyeria-api/internal/models"
	appErrors "github.com/artesania-dev/joyeria-api/pkg/errors"
)

type mockSiteConfigRepo struct {
	stored         *models.SiteConfig
	findErr        error
	insertErr      error
	updateErr      error
	updateAffected int64
	updatedFields  map[string]interface{}
	updateCalled   bool
}

func (m *mockSiteConfigRepo) Find(ctx context.Context) (*models.SiteConfig, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if m.stored == nil {
		return nil, sql.ErrNoRows
	}
	return m.stored, nil
}

func (m *mockSiteConfigRepo) InsertIfAbsent(ctx context.Context, cfg *models.SiteConfig) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	if m.stored == nil {
		copied := *cfg
		copied.ID = "cfg-1"
		m.stored = &copied
	}
	return nil
}

func (m *mockSiteConfigRepo) UpdateFields(ctx context.Context, fields map[string]interface{}) (int64, error) {
	m.updateCalled = true
	m.updatedFields = fields
	if m.updateErr != nil {
		return 0, m.updateErr
	}
	return m.updateAffected, nil
}

func newTestSiteConfigService(repo siteConfigRepository) *SiteConfigService {
	return NewSiteConfigService(repo, nil, validator.New(), zap.NewNop(), "admin", "admin123")
}

func TestSiteConfigServiceEnsureDefault(t *testing.T) {
	repo := &mockSiteConfigRepo{}
	svc := newTestSiteConfigService(repo)

	require.NoError(t, svc.EnsureDefault(context.Background()))
	require.NotNil(t, repo.stored)
	assert.Equal(t, "admin", repo.stored.AdminUsername)
	assert.Equal(t, HashPassword("admin123"), repo.stored.AdminPasswordHash)
	assert.Equal(t, "Joyería Artesanal", repo.stored.SiteName)
}

func TestSiteConfigServiceEnsureDefaultKeepsExisting(t *testing.T) {
	existing := &models.SiteConfig{ID: "cfg-1", SiteName: "Taller de María", AdminUsername: "maria"}
	repo := &mockSiteConfigRepo{stored: existing}
	svc := newTestSiteConfigService(repo)

	require.NoError(t, svc.EnsureDefault(context.Background()))
	assert.Equal(t, "Taller de María", repo.stored.SiteName)
	assert.Equal(t, "maria", repo.stored.AdminUsername)
}

func TestSiteConfigServiceGetLazyInit(t *testing.T) {
	repo := &mockSiteConfigRepo{}
	svc := newTestSiteConfigService(repo)

	cfg, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cfg-1", cfg.ID)
	assert.Equal(t, "Joyería Artesanal", cfg.SiteName)
}

func TestSiteConfigServiceUpdatePartial(t *testing.T) {
	repo := &mockSiteConfigRepo{stored: &models.SiteConfig{ID: "cfg-1"}, updateAffected: 1}
	svc := newTestSiteConfigService(repo)

	name := "Taller de María"
	enabled := true
	require.NoError(t, svc.Update(context.Background(), models.SiteConfigUpdate{
		SiteName:               &name,
		SocialInstagramEnabled: &enabled,
	}))

	require.Len(t, repo.updatedFields, 2)
	assert.Equal(t, "Taller de María", repo.updatedFields["site_name"])
	assert.Equal(t, true, repo.updatedFields["social_instagram_enabled"])
}

func TestSiteConfigServiceUpdateDigestsPassword(t *testing.T) {
	repo := &mockSiteConfigRepo{stored: &models.SiteConfig{ID: "cfg-1"}, updateAffected: 1}
	svc := newTestSiteConfigService(repo)

	password := "nuevo-secreto"
	require.NoError(t, svc.Update(context.Background(), models.SiteConfigUpdate{AdminPassword: &password}))

	assert.Equal(t, HashPassword("nuevo-secreto"), repo.updatedFields["admin_password_hash"])
	assert.NotContains(t, repo.updatedFields, "admin_password")
}

func TestSiteConfigServiceUpdateNotFound(t *testing.T) {
	repo := &mockSiteConfigRepo{updateAffected: 0}
	svc := newTestSiteConfigService(repo)

	name := "Taller"
	err := svc.Update(context.Background(), models.SiteConfigUpdate{SiteName: &name})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
	assert.Equal(t, "config not found", appErrors.FromError(err).Message)
}

func TestSiteConfigServiceUpdateEmptyPayload(t *testing.T) {
	repo := &mockSiteConfigRepo{stored: &models.SiteConfig{ID: "cfg-1"}}
	svc := newTestSiteConfigService(repo)

	require.NoError(t, svc.Update(context.Background(), models.SiteConfigUpdate{}))
	assert.False(t, repo.updateCalled)
}

func TestSiteConfigServiceUpdateEmptyPayloadNoRow(t *testing.T) {
	repo := &mockSiteConfigRepo{}
	svc := newTestSiteConfigService(repo)

	err := svc.Update(context.Background(), models.SiteConfigUpdate{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
