package usecase

import (
	"fmt"

	"marketing-site-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

const footerBackground = "bg-neutral-900"

type footerUsecase struct {
	presets map[domain.FooterVariant]domain.FooterConfig
}

// NewFooterUsecase builds every footer preset from the site branding once.
// A preset with an empty href or label fails construction.
func NewFooterUsecase(branding domain.SiteBranding, validate *validator.Validate) (domain.FooterUsecase, error) {
	base := defaultFooter(branding)

	minimal := base
	minimal.Columns = []domain.FooterColumn{
		{
			Title: "Quick Links",
			Links: []domain.FooterLink{
				{Label: "Home", Href: "/"},
				{Label: "About", Href: "/about"},
				{Label: "Contact", Href: "/contact"},
			},
		},
	}
	minimal.SocialLinks = []domain.SocialLink{
		{Platform: domain.PlatformTwitter, Href: branding.TwitterURL, Icon: "twitter"},
		{Platform: domain.PlatformLinkedIn, Href: branding.LinkedInURL, Icon: "linkedin"},
	}

	presets := map[domain.FooterVariant]domain.FooterConfig{
		domain.FooterDefault: base,
		domain.FooterMinimal: minimal,
	}
	for variant, cfg := range presets {
		if err := validate.Struct(cfg); err != nil {
			return nil, fmt.Errorf("footer preset %q: %w", variant, err)
		}
	}

	return &footerUsecase{presets: presets}, nil
}

func defaultFooter(branding domain.SiteBranding) domain.FooterConfig {
	return domain.FooterConfig{
		CompanyName: branding.CompanyName,
		Tagline:     branding.Tagline,
		Columns: []domain.FooterColumn{
			{
				Title: "Product",
				Links: []domain.FooterLink{
					{Label: "Features", Href: "/features"},
					{Label: "Pricing", Href: "/pricing"},
					{Label: "Security", Href: "/security"},
					{Label: "Roadmap", Href: "/roadmap"},
				},
			},
			{
				Title: "Company",
				Links: []domain.FooterLink{
					{Label: "About", Href: "/about"},
					{Label: "Services", Href: "/services"},
					{Label: "Blog", Href: "/blog"},
					{Label: "Contact", Href: "/contact"},
				},
			},
			{
				Title: "Resources",
				Links: []domain.FooterLink{
					{Label: "Documentation", Href: "/docs"},
					{Label: "Support", Href: "/support"},
					{Label: "API", Href: "/api"},
					{Label: "Community", Href: "/community"},
				},
			},
			{
				Title: "Legal",
				Links: []domain.FooterLink{
					{Label: "Privacy Policy", Href: "/privacy"},
					{Label: "Terms of Service", Href: "/terms"},
					{Label: "Cookie Policy", Href: "/cookies"},
					{Label: "Licenses", Href: "/licenses"},
				},
			},
		},
		SocialLinks: []domain.SocialLink{
			{Platform: domain.PlatformTwitter, Href: branding.TwitterURL, Icon: "twitter"},
			{Platform: domain.PlatformLinkedIn, Href: branding.LinkedInURL, Icon: "linkedin"},
			{Platform: domain.PlatformGitHub, Href: branding.GitHubURL, Icon: "github"},
		},
		BackgroundColor: footerBackground,
	}
}

func (uc *footerUsecase) Footer(variant domain.FooterVariant) (*domain.FooterConfig, error) {
	preset, ok := uc.presets[variant]
	if !ok {
		return nil, domain.ErrUnknownFooterVariant
	}
	out := cloneFooter(preset)
	return &out, nil
}

func (uc *footerUsecase) Variants() []domain.FooterVariant {
	return []domain.FooterVariant{domain.FooterDefault, domain.FooterMinimal}
}

// cloneFooter deep-copies the slices so callers cannot reach the presets.
func cloneFooter(src domain.FooterConfig) domain.FooterConfig {
	dst := src
	dst.Columns = make([]domain.FooterColumn, len(src.Columns))
	for i, col := range src.Columns {
		dst.Columns[i] = domain.FooterColumn{
			Title: col.Title,
			Links: append([]domain.FooterLink(nil), col.Links...),
		}
	}
	dst.SocialLinks = append([]domain.SocialLink(nil), src.SocialLinks...)
	return dst
}
