package service

import "github.com/MKhiriev/edsc-portals/models"

// defaultPortalConfig returns the lowest merge layer. A fresh value is built on
// every call so callers may merge into it freely.
func defaultPortalConfig() models.PortalConfig {
	return models.PortalConfig{
		HasLogo:       models.Some(false),
		HasStyles:     models.Some(false),
		PortalBrowser: models.Some(false),
		Features: models.Features{
			AdvancedSearch: models.Some(true),
			Authentication: models.Some(true),
			FeatureFacets: models.FeatureFacets{
				ShowAvailableInEarthdataCloud: models.Some(true),
				ShowCustomizable:              models.Some(true),
				ShowMapImagery:                models.Some(true),
			},
		},
		Footer: models.Footer{
			DisplayVersion:  models.Some(true),
			AttributionText: models.Some("NASA Official: Stephen Berrick"),
			PrimaryLinks: models.Some(models.Links{
				{Title: "FOIA", Href: "http://www.nasa.gov/FOIA/index.html"},
				{Title: "NASA Privacy Policy", Href: "http://www.nasa.gov/about/highlights/HP_Privacy.html"},
				{Title: "USA.gov", Href: "http://www.usa.gov"},
			}),
			SecondaryLinks: models.Some(models.Links{
				{Title: "Earthdata Access: A Section 508 accessible alternative", Href: "https://access.earthdata.nasa.gov/"},
			}),
		},
		Query: models.Some(models.Query{}),
		UI: models.UI{
			ShowOnlyGranulesCheckbox: models.Some(true),
			ShowNonEosdisCheckbox:    models.Some(true),
			ShowTophat:               models.Some(true),
		},
	}
}
