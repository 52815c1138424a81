package types

// Theme mode values for SiteSettings.ThemeMode.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// MaintenanceSettings gates the public site behind a maintenance notice.
type MaintenanceSettings struct {
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// SocialLinks holds footer social profile URLs.
type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	GitHub    string `json:"github,omitempty"`
}

// ContactInfo holds the site contact block.
type ContactInfo struct {
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// SiteSettings is the singleton site configuration document. There is
// exactly one per installation; it has no id.
type SiteSettings struct {
	IsSetup            bool                `json:"isSetup"`
	SiteName           string              `json:"siteName"`
	LogoURL            string              `json:"logoUrl,omitempty"`
	FaviconURL         string              `json:"faviconUrl,omitempty"`
	EnableRegistration bool                `json:"enableRegistration"`
	ThemeMode          string              `json:"themeMode"`
	PostsPerPage       int                 `json:"postsPerPage"`
	Maintenance        MaintenanceSettings `json:"maintenance"`

	HeroTitle       string `json:"heroTitle,omitempty"`
	HeroDescription string `json:"heroDescription,omitempty"`

	FooterText            string `json:"footerText"`
	FooterDescription     string `json:"footerDescription,omitempty"`
	FooterBackgroundColor string `json:"footerBackgroundColor,omitempty"`
	FooterTextColor       string `json:"footerTextColor,omitempty"`

	SocialLinks SocialLinks `json:"socialLinks,omitempty"`
	ContactInfo ContactInfo `json:"contactInfo,omitempty"`
}

// SettingsPatch carries a partial settings update. The merge is shallow
// and top-level only: a non-nil Maintenance, SocialLinks, or ContactInfo
// replaces the stored nested object wholesale, dropping any sibling
// fields not resent. Callers changing one nested field must resend the
// whole nested object. Deep-merging here would change observable
// behavior; see SettingsRepository.Update.
type SettingsPatch struct {
	IsSetup            *bool                `json:"isSetup,omitempty"`
	SiteName           *string              `json:"siteName,omitempty"`
	LogoURL            *string              `json:"logoUrl,omitempty"`
	FaviconURL         *string              `json:"faviconUrl,omitempty"`
	EnableRegistration *bool                `json:"enableRegistration,omitempty"`
	ThemeMode          *string              `json:"themeMode,omitempty"`
	PostsPerPage       *int                 `json:"postsPerPage,omitempty"`
	Maintenance        *MaintenanceSettings `json:"maintenance,omitempty"`

	HeroTitle       *string `json:"heroTitle,omitempty"`
	HeroDescription *string `json:"heroDescription,omitempty"`

	FooterText            *string `json:"footerText,omitempty"`
	FooterDescription     *string `json:"footerDescription,omitempty"`
	FooterBackgroundColor *string `json:"footerBackgroundColor,omitempty"`
	FooterTextColor       *string `json:"footerTextColor,omitempty"`

	SocialLinks *SocialLinks `json:"socialLinks,omitempty"`
	ContactInfo *ContactInfo `json:"contactInfo,omitempty"`
}
