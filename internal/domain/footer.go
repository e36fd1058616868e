package domain

import (
	"errors"
	"strings"
)

var ErrUnknownFooterVariant = errors.New("unknown footer variant")

type SocialPlatform string

const (
	PlatformTwitter  SocialPlatform = "twitter"
	PlatformLinkedIn SocialPlatform = "linkedin"
	PlatformGitHub   SocialPlatform = "github"
)

type FooterLink struct {
	Label string `json:"label" validate:"required"`
	Href  string `json:"href" validate:"required"`
}

type FooterColumn struct {
	Title string       `json:"title" validate:"required"`
	Links []FooterLink `json:"links" validate:"min=1,dive"`
}

type SocialLink struct {
	Platform SocialPlatform `json:"platform" validate:"oneof=twitter linkedin github"`
	Href     string         `json:"href" validate:"required"`
	Icon     string         `json:"icon" validate:"required"`
}

// FooterConfig is everything the rendering layer needs to draw the site
// footer. Columns are in display order.
type FooterConfig struct {
	CompanyName     string         `json:"companyName" validate:"required"`
	Tagline         string         `json:"tagline"`
	Columns         []FooterColumn `json:"columns" validate:"min=1,dive"`
	SocialLinks     []SocialLink   `json:"socialLinks" validate:"dive"`
	BackgroundColor string         `json:"backgroundColor"`
}

// FooterVariant names one of the footer presets.
type FooterVariant string

const (
	FooterDefault FooterVariant = "default"
	// FooterMinimal is the reduced footer used on error pages.
	FooterMinimal FooterVariant = "minimal"
)

func ParseFooterVariant(s string) (FooterVariant, error) {
	switch v := FooterVariant(strings.ToLower(strings.TrimSpace(s))); v {
	case "":
		return FooterDefault, nil
	case FooterDefault, FooterMinimal:
		return v, nil
	default:
		return "", ErrUnknownFooterVariant
	}
}

// SiteBranding holds the site-wide strings the footer and emails share.
type SiteBranding struct {
	CompanyName string
	Tagline     string
	TwitterURL  string
	LinkedInURL string
	GitHubURL   string
}

type FooterUsecase interface {
	// Footer returns a copy of the preset for variant.
	Footer(variant FooterVariant) (*FooterConfig, error)
	// Variants lists the known presets in a stable order.
	Variants() []FooterVariant
}
