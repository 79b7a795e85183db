package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/artesania-dev/joyeria-api/internal/models"
	appErrors "github.com/artesania-dev/joyeria-api/pkg/errors"
)

type siteConfigRepository interface {
	Find(ctx context.Context) (*models.SiteConfig, error)
	InsertIfAbsent(ctx context.Context, cfg *models.SiteConfig) error
	UpdateFields(ctx context.Context, fields map[string]interface{}) (int64, error)
}

// SiteConfigService owns the singleton site configuration: it creates
// the row at startup, serves it publicly and applies partial updates.
type SiteConfigService struct {
	repo      siteConfigRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger

	defaultUsername string
	defaultPassword string
}

// NewSiteConfigService creates the service. The default credential is
// only used when the config row does not exist yet.
func NewSiteConfigService(repo siteConfigRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger, defaultUsername, defaultPassword string) *SiteConfigService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultUsername == "" {
		defaultUsername = "admin"
	}
	return &SiteConfigService{
		repo:            repo,
		cache:           cache,
		validator:       validate,
		logger:          logger,
		defaultUsername: defaultUsername,
		defaultPassword: defaultPassword,
	}
}

// EnsureDefault creates the config row with default display text and
// the digested default admin password when no row exists yet. Called
// synchronously at startup so concurrent first requests never race the
// initialization.
func (s *SiteConfigService) EnsureDefault(ctx context.Context) error {
	cfg := models.DefaultSiteConfig()
	cfg.AdminUsername = s.defaultUsername
	cfg.AdminPasswordHash = HashPassword(s.defaultPassword)
	if err := s.repo.InsertIfAbsent(ctx, &cfg); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to initialize site configuration")
	}
	return nil
}

// Get returns the site configuration, creating the default row if it is
// somehow still absent. The password digest never leaves this process:
// the model hides it from serialization.
func (s *SiteConfigService) Get(ctx context.Context) (*models.SiteConfig, error) {
	var cached models.SiteConfig
	if s.cache.Get(ctx, cacheKeyConfig, &cached) {
		return &cached, nil
	}

	cfg, err := s.repo.Find(ctx)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load site configuration")
		}
		if err := s.EnsureDefault(ctx); err != nil {
			return nil, err
		}
		cfg, err = s.repo.Find(ctx)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load site configuration")
		}
	}

	s.cache.Set(ctx, cacheKeyConfig, cfg)
	return cfg, nil
}

// Update applies the provided fields only. A supplied admin_password is
// digested and the plaintext discarded. NotFound when no config row
// exists.
func (s *SiteConfigService) Update(ctx context.Context, req models.SiteConfigUpdate) error {
	fields := siteConfigChanges(req)
	if req.AdminPassword != nil {
		fields["admin_password_hash"] = HashPassword(*req.AdminPassword)
	}

	if len(fields) == 0 {
		// Nothing to write; still honor the NotFound contract.
		if _, err := s.repo.Find(ctx); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return appErrors.Clone(appErrors.ErrNotFound, "config not found")
			}
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load site configuration")
		}
		return nil
	}

	affected, err := s.repo.UpdateFields(ctx, fields)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update site configuration")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "config not found")
	}

	s.cache.Invalidate(ctx)
	return nil
}

// siteConfigChanges maps the non-nil update fields to their columns.
// admin_password is handled by the caller; it has no column of its own.
func siteConfigChanges(req models.SiteConfigUpdate) map[string]interface{} {
	fields := make(map[string]interface{})

	set := func(column string, value interface{}) {
		fields[column] = value
	}

	if req.SiteName != nil {
		set("site_name", *req.SiteName)
	}
	if req.SiteSubtitle != nil {
		set("site_subtitle", *req.SiteSubtitle)
	}
	if req.HeroTitle != nil {
		set("hero_title", *req.HeroTitle)
	}
	if req.HeroDescription != nil {
		set("hero_description", *req.HeroDescription)
	}
	if req.CollectionsTitle != nil {
		set("collections_title", *req.CollectionsTitle)
	}
	if req.CollectionsSubtitle != nil {
		set("collections_subtitle", *req.CollectionsSubtitle)
	}
	if req.ArtisanName != nil {
		set("artisan_name", *req.ArtisanName)
	}
	if req.ArtisanStory != nil {
		set("artisan_story", *req.ArtisanStory)
	}
	if req.ArtisanContact != nil {
		set("artisan_contact", *req.ArtisanContact)
	}
	if req.ArtisanPhone != nil {
		set("artisan_phone", *req.ArtisanPhone)
	}
	if req.ArtisanAddress != nil {
		set("artisan_address", *req.ArtisanAddress)
	}
	if req.SocialFacebook != nil {
		set("social_facebook", *req.SocialFacebook)
	}
	if req.SocialFacebookEnabled != nil {
		set("social_facebook_enabled", *req.SocialFacebookEnabled)
	}
	if req.SocialInstagram != nil {
		set("social_instagram", *req.SocialInstagram)
	}
	if req.SocialInstagramEnabled != nil {
		set("social_instagram_enabled", *req.SocialInstagramEnabled)
	}
	if req.SocialTiktok != nil {
		set("social_tiktok", *req.SocialTiktok)
	}
	if req.SocialTiktokEnabled != nil {
		set("social_tiktok_enabled", *req.SocialTiktokEnabled)
	}
	if req.SocialWhatsapp != nil {
		set("social_whatsapp", *req.SocialWhatsapp)
	}
	if req.SocialWhatsappEnabled != nil {
		set("social_whatsapp_enabled", *req.SocialWhatsappEnabled)
	}
	if req.SocialYoutube != nil {
		set("social_youtube", *req.SocialYoutube)
	}
	if req.SocialYoutubeEnabled != nil {
		set("social_youtube_enabled", *req.SocialYoutubeEnabled)
	}
	if req.SocialTwitter != nil {
		set("social_twitter", *req.SocialTwitter)
	}
	if req.SocialTwitterEnabled != nil {
		set("social_twitter_enabled", *req.SocialTwitterEnabled)
	}
	if req.LogoBase64 != nil {
		set("logo_base64", *req.LogoBase64)
	}
	if req.ColorScheme != nil {
		set("color_scheme", *req.ColorScheme)
	}
	if req.AdminUsername != nil {
		set("admin_username", *req.AdminUsername)
	}
	if req.HiddenZonePosition != nil {
		set("hidden_zone_position", *req.HiddenZonePosition)
	}
	if req.FooterTitle1 != nil {
		set("footer_title_1", *req.FooterTitle1)
	}
	if req.FooterTitle2 != nil {
		set("footer_title_2", *req.FooterTitle2)
	}
	if req.FooterTitle3 != nil {
		set("footer_title_3", *req.FooterTitle3)
	}
	if req.FooterText3 != nil {
		set("footer_text_3", *req.FooterText3)
	}
	if req.FooterCopyright != nil {
		set("footer_copyright", *req.FooterCopyright)
	}

	return fields
}
