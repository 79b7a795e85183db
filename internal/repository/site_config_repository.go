package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/artesania-dev/joyeria-api/internal/models"
)

const siteConfigColumns = `id, site_name, site_subtitle, hero_title, hero_description,
collections_title, collections_subtitle, artisan_name, artisan_story, artisan_contact,
artisan_phone, artisan_address, social_facebook, social_facebook_enabled,
social_instagram, social_instagram_enabled, social_tiktok, social_tiktok_enabled,
social_whatsapp, social_whatsapp_enabled, social_youtube, social_youtube_enabled,
social_twitter, social_twitter_enabled, logo_base64, color_scheme, admin_username,
admin_password_hash, hidden_zone_position, footer_title_1, footer_title_2,
footer_title_3, footer_text_3, footer_copyright, created_at`

// SiteConfigRepository persists the singleton site configuration row.
type SiteConfigRepository struct {
	db *sqlx.DB
}

// NewSiteConfigRepository constructs the repository.
func NewSiteConfigRepository(db *sqlx.DB) *SiteConfigRepository {
	return &SiteConfigRepository{db: db}
}

// Find returns the configuration row. sql.ErrNoRows when none exists.
func (r *SiteConfigRepository) Find(ctx context.Context) (*models.SiteConfig, error) {
	query := fmt.Sprintf(`SELECT %s FROM site_config LIMIT 1`, siteConfigColumns)
	var cfg models.SiteConfig
	if err := r.db.GetContext(ctx, &cfg, query); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// InsertIfAbsent creates the configuration row unless one already
// exists. The WHERE NOT EXISTS guard keeps the row a singleton even
// when two processes boot at the same time.
func (r *SiteConfigRepository) InsertIfAbsent(ctx context.Context, cfg *models.SiteConfig) error {
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	if cfg.CreatedAt.IsZero() {
		cfg.CreatedAt = time.Now().UTC()
	}

	query := fmt.Sprintf(`INSERT INTO site_config (%s)
SELECT :id, :site_name, :site_subtitle, :hero_title, :hero_description,
:collections_title, :collections_subtitle, :artisan_name, :artisan_story, :artisan_contact,
:artisan_phone, :artisan_address, :social_facebook, :social_facebook_enabled,
:social_instagram, :social_instagram_enabled, :social_tiktok, :social_tiktok_enabled,
:social_whatsapp, :social_whatsapp_enabled, :social_youtube, :social_youtube_enabled,
:social_twitter, :social_twitter_enabled, :logo_base64, :color_scheme, :admin_username,
:admin_password_hash, :hidden_zone_position, :footer_title_1, :footer_title_2,
:footer_title_3, :footer_text_3, :footer_copyright, :created_at
WHERE NOT EXISTS (SELECT 1 FROM site_config)`, siteConfigColumns)

	if _, err := r.db.NamedExecContext(ctx, query, cfg); err != nil {
		return fmt.Errorf("insert site config: %w", err)
	}
	return nil
}

// UpdateFields applies the provided column values to the singleton row
// and reports how many rows matched. Postgres counts matched rows, so a
// no-op update of an existing row still reports 1.
func (r *SiteConfigRepository) UpdateFields(ctx context.Context, fields map[string]interface{}) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}

	columns := make([]string, 0, len(fields))
	for column := range fields {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	assignments := ""
	args := make([]interface{}, 0, len(columns))
	for i, column := range columns {
		if i > 0 {
			assignments += ", "
		}
		assignments += fmt.Sprintf("%s = $%d", column, i+1)
		args = append(args, fields[column])
	}

	result, err := r.db.ExecContext(ctx, fmt.Sprintf("UPDATE site_config SET %s", assignments), args...)
	if err != nil {
		return 0, fmt.Errorf("update site config: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update site config rows affected: %w", err)
	}
	return affected, nil
}
