package database

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Items deliberately carry no foreign key to collections: the API
// tolerates orphaned items and enforces the cascade itself.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS site_config (
		id TEXT PRIMARY KEY,
		site_name TEXT NOT NULL DEFAULT '',
		site_subtitle TEXT NOT NULL DEFAULT '',
		hero_title TEXT NOT NULL DEFAULT '',
		hero_description TEXT NOT NULL DEFAULT '',
		collections_title TEXT NOT NULL DEFAULT '',
		collections_subtitle TEXT NOT NULL DEFAULT '',
		artisan_name TEXT NOT NULL DEFAULT '',
		artisan_story TEXT NOT NULL DEFAULT '',
		artisan_contact TEXT NOT NULL DEFAULT '',
		artisan_phone TEXT NOT NULL DEFAULT '',
		artisan_address TEXT NOT NULL DEFAULT '',
		social_facebook TEXT NOT NULL DEFAULT '',
		social_facebook_enabled BOOLEAN NOT NULL DEFAULT FALSE,
		social_instagram TEXT NOT NULL DEFAULT '',
		social_instagram_enabled BOOLEAN NOT NULL DEFAULT FALSE,
		social_tiktok TEXT NOT NULL DEFAULT '',
		social_tiktok_enabled BOOLEAN NOT NULL DEFAULT FALSE,
		social_whatsapp TEXT NOT NULL DEFAULT '',
		social_whatsapp_enabled BOOLEAN NOT NULL DEFAULT FALSE,
		social_youtube TEXT NOT NULL DEFAULT '',
		social_youtube_enabled BOOLEAN NOT NULL DEFAULT FALSE,
		social_twitter TEXT NOT NULL DEFAULT '',
		social_twitter_enabled BOOLEAN NOT NULL DEFAULT FALSE,
		logo_base64 TEXT NOT NULL DEFAULT '',
		color_scheme TEXT NOT NULL DEFAULT 'gold',
		admin_username TEXT NOT NULL DEFAULT 'admin',
		admin_password_hash TEXT NOT NULL DEFAULT '',
		hidden_zone_position TEXT NOT NULL DEFAULT 'bottom-right',
		footer_title_1 TEXT NOT NULL DEFAULT '',
		footer_title_2 TEXT NOT NULL DEFAULT '',
		footer_title_3 TEXT NOT NULL DEFAULT '',
		footer_text_3 TEXT NOT NULL DEFAULT '',
		footer_copyright TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS collections (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image_base64 TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS jewelry_items (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image_base64 TEXT NOT NULL DEFAULT '',
		collection_id TEXT NOT NULL,
		position INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_jewelry_items_collection_id ON jewelry_items (collection_id)`,
	`CREATE INDEX IF NOT EXISTS idx_collections_position ON collections (position)`,
	`CREATE INDEX IF NOT EXISTS idx_jewelry_items_position ON jewelry_items (position)`,
}

// EnsureSchema creates the tables and indexes the API needs. Every
// statement is idempotent, so repeated startups are safe.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
