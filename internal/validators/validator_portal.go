package validators

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"slices"

	"github.com/MKhiriev/edsc-portals/models"
)

const (
	FieldPortalID       = "portal_id"
	FieldParentConfig   = "parent_config"
	FieldMoreInfoURL    = "more_info_url"
	FieldPrimaryLinks   = "primary_links"
	FieldSecondaryLinks = "secondary_links"
	FieldTitle          = "title"
	FieldHref           = "href"
)

// portal ids double as directory names and URL path segments
var portalIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

var allowedLinkSchemes = []string{"http", "https", "mailto"}

type PortalValidator struct {
}

func NewPortalValidator() Validator {
	return &PortalValidator{}
}

func (v *PortalValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PortalConfig:
		return v.validatePortal(ctx, value, fields...)
	case *models.PortalConfig:
		return v.validatePortal(ctx, *value, fields...)

	case models.Link:
		return v.validateLink(ctx, value, fields...)
	case *models.Link:
		return v.validateLink(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PortalValidator) validatePortal(ctx context.Context, portal models.PortalConfig, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPortalID, FieldParentConfig, FieldMoreInfoURL, FieldPrimaryLinks, FieldSecondaryLinks}
	}

	for _, f := range fields {
		switch f {
		case FieldPortalID:
			if !portalIDPattern.MatchString(portal.PortalID) {
				return fmt.Errorf("%w: %q", ErrInvalidPortalID, portal.PortalID)
			}
		case FieldParentConfig:
			if portal.ParentConfig != "" && !portalIDPattern.MatchString(portal.ParentConfig) {
				return fmt.Errorf("%w: %q", ErrInvalidParent, portal.ParentConfig)
			}
		case FieldMoreInfoURL:
			if u, ok := portal.MoreInfoURL.Get(); ok && u != "" && !isAbsoluteURL(u) {
				return fmt.Errorf("%w: %q", ErrInvalidMoreInfoURL, u)
			}
		case FieldPrimaryLinks:
			if err := v.validateLinks(ctx, portal.Footer.PrimaryLinks.OrZero()); err != nil {
				return fmt.Errorf("footer.primaryLinks: %w", err)
			}
		case FieldSecondaryLinks:
			if err := v.validateLinks(ctx, portal.Footer.SecondaryLinks.OrZero()); err != nil {
				return fmt.Errorf("footer.secondaryLinks: %w", err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PortalValidator) validateLinks(ctx context.Context, links models.Links) error {
	for i, link := range links {
		if err := v.validateLink(ctx, link); err != nil {
			return fmt.Errorf("validation error at index %d: %w", i, err)
		}
	}
	return nil
}

func (v *PortalValidator) validateLink(ctx context.Context, link models.Link, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldHref}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if link.Title == "" {
				return ErrEmptyLinkTitle
			}
		case FieldHref:
			if !isAbsoluteURL(link.Href) {
				return fmt.Errorf("%w: %q", ErrInvalidLinkHref, link.Href)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || !slices.Contains(allowedLinkSchemes, u.Scheme) {
		return false
	}
	return u.Scheme == "mailto" || u.Host != ""
}
