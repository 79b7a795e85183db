package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artesania-dev/joyeria-api/internal/models"
)

func newSiteConfigRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

func siteConfigRow(cfg models.SiteConfig) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "site_name", "site_subtitle", "hero_title", "hero_description",
		"collections_title", "collections_subtitle", "artisan_name", "artisan_story", "artisan_contact",
		"artisan_phone", "artisan_address", "social_facebook", "social_facebook_enabled",
		"social_instagram", "social_instagram_enabled", "social_tiktok", "social_tiktok_enabled",
		"social_whatsapp", "social_whatsapp_enabled", "social_youtube", "social_youtube_enabled",
		"social_twitter", "social_twitter_enabled", "logo_base64", "color_scheme", "admin_username",
		"admin_password_hash", "hidden_zone_position", "footer_title_1", "footer_title_2",
		"footer_title_3", "footer_text_3", "footer_copyright", "created_at",
	}).AddRow(
		cfg.ID, cfg.SiteName, cfg.SiteSubtitle, cfg.HeroTitle, cfg.HeroDescription,
		cfg.CollectionsTitle, cfg.CollectionsSubtitle, cfg.ArtisanName, cfg.ArtisanStory, cfg.ArtisanContact,
		cfg.ArtisanPhone, cfg.ArtisanAddress, cfg.SocialFacebook, cfg.SocialFacebookEnabled,
		cfg.SocialInstagram, cfg.SocialInstagramEnabled, cfg.SocialTiktok, cfg.SocialTiktokEnabled,
		cfg.SocialWhatsapp, cfg.SocialWhatsappEnabled, cfg.SocialYoutube, cfg.SocialYoutubeEnabled,
		cfg.SocialTwitter, cfg.SocialTwitterEnabled, cfg.LogoBase64, cfg.ColorScheme, cfg.AdminUsername,
		cfg.AdminPasswordHash, cfg.HiddenZonePosition, cfg.FooterTitle1, cfg.FooterTitle2,
		cfg.FooterTitle3, cfg.FooterText3, cfg.FooterCopyright, cfg.CreatedAt,
	)
}

func TestSiteConfigRepositoryFind(t *testing.T) {
	db, mock, cleanup := newSiteConfigRepoMock(t)
	defer cleanup()

	repo := NewSiteConfigRepository(db)
	stored := models.DefaultSiteConfig()
	stored.ID = "cfg-1"
	stored.AdminPasswordHash = "digest"
	stored.CreatedAt = time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM site_config LIMIT 1").
		WillReturnRows(siteConfigRow(stored))

	cfg, err := repo.Find(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cfg-1", cfg.ID)
	assert.Equal(t, "Joyería Artesanal", cfg.SiteName)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "digest", cfg.AdminPasswordHash)
}

func TestSiteConfigRepositoryFindEmpty(t *testing.T) {
	db, mock, cleanup := newSiteConfigRepoMock(t)
	defer cleanup()

	repo := NewSiteConfigRepository(db)
	mock.ExpectQuery("SELECT (.+) FROM site_config LIMIT 1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Find(context.Background())
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSiteConfigRepositoryInsertIfAbsent(t *testing.T) {
	db, mock, cleanup := newSiteConfigRepoMock(t)
	defer cleanup()

	repo := NewSiteConfigRepository(db)
	mock.ExpectExec("INSERT INTO site_config").
		WillReturnResult(sqlmock.NewResult(0, 1))

	cfg := models.DefaultSiteConfig()
	cfg.AdminPasswordHash = "digest"
	require.NoError(t, repo.InsertIfAbsent(context.Background(), &cfg))
	assert.NotEmpty(t, cfg.ID)
	assert.False(t, cfg.CreatedAt.IsZero())
}

func TestSiteConfigRepositoryUpdateFields(t *testing.T) {
	db, mock, cleanup := newSiteConfigRepoMock(t)
	defer cleanup()

	repo := NewSiteConfigRepository(db)
	// Columns are applied in sorted order so the statement is stable.
	mock.ExpectExec(`UPDATE site_config SET admin_username = \$1, site_name = \$2`).
		WithArgs("maria", "Taller de María").
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.UpdateFields(context.Background(), map[string]interface{}{
		"site_name":      "Taller de María",
		"admin_username": "maria",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

func TestSiteConfigRepositoryUpdateFieldsEmpty(t *testing.T) {
	db, _, cleanup := newSiteConfigRepoMock(t)
	defer cleanup()

	repo := NewSiteConfigRepository(db)
	affected, err := repo.UpdateFields(context.Background(), map[string]interface{}{})
	require.NoError(t, err)
	assert.Zero(t, affected)
}
