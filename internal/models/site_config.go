package models

import "time"

// SiteConfig is the single row of site-wide settings. The password
// digest is never serialized; only its column is read and written.
type SiteConfig struct {
	ID string `db:"id" json:"id"`

	SiteName            string `db:"site_name" json:"site_name"`
	SiteSubtitle        string `db:"site_subtitle" json:"site_subtitle"`
	HeroTitle           string `db:"hero_title" json:"hero_title"`
	HeroDescription     string `db:"hero_description" json:"hero_description"`
	CollectionsTitle    string `db:"collections_title" json:"collections_title"`
	CollectionsSubtitle string `db:"collections_subtitle" json:"collections_subtitle"`

	ArtisanName    string `db:"artisan_name" json:"artisan_name"`
	ArtisanStory   string `db:"artisan_story" json:"artisan_story"`
	ArtisanContact string `db:"artisan_contact" json:"artisan_contact"`
	ArtisanPhone   string `db:"artisan_phone" json:"artisan_phone"`
	ArtisanAddress string `db:"artisan_address" json:"artisan_address"`

	SocialFacebook         string `db:"social_facebook" json:"social_facebook"`
	SocialFacebookEnabled  bool   `db:"social_facebook_enabled" json:"social_facebook_enabled"`
	SocialInstagram        string `db:"social_instagram" json:"social_instagram"`
	SocialInstagramEnabled bool   `db:"social_instagram_enabled" json:"social_instagram_enabled"`
	SocialTiktok           string `db:"social_tiktok" json:"social_tiktok"`
	SocialTiktokEnabled    bool   `db:"social_tiktok_enabled" json:"social_tiktok_enabled"`
	SocialWhatsapp         string `db:"social_whatsapp" json:"social_whatsapp"`
	SocialWhatsappEnabled  bool   `db:"social_whatsapp_enabled" json:"social_whatsapp_enabled"`
	SocialYoutube          string `db:"social_youtube" json:"social_youtube"`
	SocialYoutubeEnabled   bool   `db:"social_youtube_enabled" json:"social_youtube_enabled"`
	SocialTwitter          string `db:"social_twitter" json:"social_twitter"`
	SocialTwitterEnabled   bool   `db:"social_twitter_enabled" json:"social_twitter_enabled"`

	LogoBase64  string `db:"logo_base64" json:"logo_base64"`
	ColorScheme string `db:"color_scheme" json:"color_scheme"`

	AdminUsername      string `db:"admin_username" json:"admin_username"`
	AdminPasswordHash  string `db:"admin_password_hash" json:"-"`
	HiddenZonePosition string `db:"hidden_zone_position" json:"hidden_zone_position"`

	FooterTitle1    string `db:"footer_title_1" json:"footer_title_1"`
	FooterTitle2    string `db:"footer_title_2" json:"footer_title_2"`
	FooterTitle3    string `db:"footer_title_3" json:"footer_title_3"`
	FooterText3     string `db:"footer_text_3" json:"footer_text_3"`
	FooterCopyright string `db:"footer_copyright" json:"footer_copyright"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// SiteConfigUpdate is a partial update: nil fields are left untouched.
// AdminPassword carries a plaintext that is digested before storage and
// never persisted or echoed back.
type SiteConfigUpdate struct {
	SiteName            *string `json:"site_name"`
	SiteSubtitle        *string `json:"site_subtitle"`
	HeroTitle           *string `json:"hero_title"`
	HeroDescription     *string `json:"hero_description"`
	CollectionsTitle    *string `json:"collections_title"`
	CollectionsSubtitle *string `json:"collections_subtitle"`

	ArtisanName    *string `json:"artisan_name"`
	ArtisanStory   *string `json:"artisan_story"`
	ArtisanContact *string `json:"artisan_contact"`
	ArtisanPhone   *string `json:"artisan_phone"`
	ArtisanAddress *string `json:"artisan_address"`

	SocialFacebook         *string `json:"social_facebook"`
	SocialFacebookEnabled  *bool   `json:"social_facebook_enabled"`
	SocialInstagram        *string `json:"social_instagram"`
	SocialInstagramEnabled *bool   `json:"social_instagram_enabled"`
	SocialTiktok           *string `json:"social_tiktok"`
	SocialTiktokEnabled    *bool   `json:"social_tiktok_enabled"`
	SocialWhatsapp         *string `json:"social_whatsapp"`
	SocialWhatsappEnabled  *bool   `json:"social_whatsapp_enabled"`
	SocialYoutube          *string `json:"social_youtube"`
	SocialYoutubeEnabled   *bool   `json:"social_youtube_enabled"`
	SocialTwitter          *string `json:"social_twitter"`
	SocialTwitterEnabled   *bool   `json:"social_twitter_enabled"`

	LogoBase64  *string `json:"logo_base64"`
	ColorScheme *string `json:"color_scheme"`

	AdminUsername      *string `json:"admin_username"`
	AdminPassword      *string `json:"admin_password"`
	HiddenZonePosition *string `json:"hidden_zone_position"`

	FooterTitle1    *string `json:"footer_title_1"`
	FooterTitle2    *string `json:"footer_title_2"`
	FooterTitle3    *string `json:"footer_title_3"`
	FooterText3     *string `json:"footer_text_3"`
	FooterCopyright *string `json:"footer_copyright"`
}

// DefaultSiteConfig returns the display texts a fresh install starts with.
// The caller fills in ID and the admin credential.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		SiteName:            "Joyería Artesanal",
		SiteSubtitle:        "Joyería Artesanal de Alto Standing",
		HeroTitle:           "Maestra Artesana",
		HeroDescription:     "Cada pieza cuenta una historia única, creada con pasión y dedicación en nuestro taller artesanal.",
		CollectionsTitle:    "Nuestras Colecciones",
		CollectionsSubtitle: "Cada pieza cuenta una historia única",
		ArtisanName:         "Maestra Artesana",
		ArtisanStory:        "Con más de 20 años de experiencia en joyería artesanal, cada pieza es única y está hecha con amor y dedicación.",
		ArtisanContact:      "contacto@joyeria.com",
		ArtisanPhone:        "+34 000 000 000",
		ArtisanAddress:      "Calle Artesanos 123, Madrid, España",
		ColorScheme:         "gold",
		AdminUsername:       "admin",
		HiddenZonePosition:  "bottom-right",
		FooterTitle1:        "Sobre Nosotros",
		FooterTitle2:        "Contacto",
		FooterTitle3:        "Síguenos",
		FooterText3:         "Conecta con nosotros en redes sociales",
		FooterCopyright:     "Todos los derechos reservados.",
	}
}
