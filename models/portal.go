// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"maps"
	"slices"
)

// PortalConfig describes a named search portal: its branding, feature flags,
// footer content, search-query overrides and UI chrome.
//
// Every optional setting is an [Optional] so that a missing key, an explicit
// null and a value (false and "" included) stay distinct. Section structs are
// merged field by field; Links replace wholesale and Query merges key by key.
type PortalConfig struct {
	// PortalID is the unique key of the portal in the registry (e.g. "edsc").
	PortalID string `json:"portalId"`

	// ParentConfig names the portal this config inherits from. On a resolved
	// config it is always the base portal id.
	ParentConfig string `json:"parentConfig,omitempty"`

	Description   Optional[string] `json:"description,omitzero"`
	MoreInfoURL   Optional[string] `json:"moreInfoUrl,omitzero"`
	PageTitle     Optional[string] `json:"pageTitle,omitzero"`
	HasLogo       Optional[bool]   `json:"hasLogo,omitzero"`
	HasStyles     Optional[bool]   `json:"hasStyles,omitzero"`
	PortalBrowser Optional[bool]   `json:"portalBrowser,omitzero"`

	Title    Title           `json:"title,omitzero"`
	Features Features        `json:"features,omitzero"`
	Footer   Footer          `json:"footer,omitzero"`
	Query    Optional[Query] `json:"query,omitzero"`
	UI       UI              `json:"ui,omitzero"`
}

// Title is the portal heading shown in the application header.
type Title struct {
	Primary   Optional[string] `json:"primary,omitzero"`
	Secondary Optional[string] `json:"secondary,omitzero"`
}

// Features toggles search features for the portal.
type Features struct {
	AdvancedSearch Optional[bool] `json:"advancedSearch,omitzero"`
	Authentication Optional[bool] `json:"authentication,omitzero"`
	FeatureFacets  FeatureFacets  `json:"featureFacets,omitzero"`
}

// FeatureFacets toggles the individual feature facets in the search panel.
type FeatureFacets struct {
	ShowAvailableInEarthdataCloud Optional[bool] `json:"showAvailableInEarthdataCloud,omitzero"`
	ShowCustomizable              Optional[bool] `json:"showCustomizable,omitzero"`
	ShowMapImagery                Optional[bool] `json:"showMapImagery,omitzero"`
}

// Footer holds the footer content of the portal.
type Footer struct {
	DisplayVersion  Optional[bool]   `json:"displayVersion,omitzero"`
	AttributionText Optional[string] `json:"attributionText,omitzero"`
	PrimaryLinks    Optional[Links]  `json:"primaryLinks,omitzero"`
	SecondaryLinks  Optional[Links]  `json:"secondaryLinks,omitzero"`
}

// UI toggles application chrome.
type UI struct {
	ShowOnlyGranulesCheckbox Optional[bool] `json:"showOnlyGranulesCheckbox,omitzero"`
	ShowNonEosdisCheckbox    Optional[bool] `json:"showNonEosdisCheckbox,omitzero"`
	ShowTophat               Optional[bool] `json:"showTophat,omitzero"`
}

// Link is a titled hyperlink rendered in the footer.
type Link struct {
	Title string `json:"title"`
	Href  string `json:"href"`
}

// Links is an ordered list of footer links. A set list replaces any lower
// layer entirely.
type Links []Link

// Query holds search-query overrides keyed by query parameter name. A key
// present with a nil value is an explicit null and overrides lower layers.
type Query map[string]any

// PortalSummary is the short form of a portal returned by listings.
type PortalSummary struct {
	PortalID  string `json:"portalId"`
	Title     string `json:"title,omitempty"`
	IsDefault bool   `json:"isDefault"`
}

// A section given as null nulls every setting inside it, so it still
// overrides the lower layers.

func (t *Title) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*t = Title{Primary: Null[string](), Secondary: Null[string]()}
		return nil
	}
	type plain Title
	return json.Unmarshal(data, (*plain)(t))
}

func (f *Features) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*f = Features{
			AdvancedSearch: Null[bool](),
			Authentication: Null[bool](),
			FeatureFacets:  nullFeatureFacets(),
		}
		return nil
	}
	type plain Features
	return json.Unmarshal(data, (*plain)(f))
}

func (f *FeatureFacets) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*f = nullFeatureFacets()
		return nil
	}
	type plain FeatureFacets
	return json.Unmarshal(data, (*plain)(f))
}

func (f *Footer) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*f = Footer{
			DisplayVersion:  Null[bool](),
			AttributionText: Null[string](),
			PrimaryLinks:    Null[Links](),
			SecondaryLinks:  Null[Links](),
		}
		return nil
	}
	type plain Footer
	return json.Unmarshal(data, (*plain)(f))
}

func (u *UI) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*u = UI{
			ShowOnlyGranulesCheckbox: Null[bool](),
			ShowNonEosdisCheckbox:    Null[bool](),
			ShowTophat:               Null[bool](),
		}
		return nil
	}
	type plain UI
	return json.Unmarshal(data, (*plain)(u))
}

func nullFeatureFacets() FeatureFacets {
	return FeatureFacets{
		ShowAvailableInEarthdataCloud: Null[bool](),
		ShowCustomizable:              Null[bool](),
		ShowMapImagery:                Null[bool](),
	}
}

// Clone returns a deep copy of c that shares no pointers, slices or maps
// with it.
func (c PortalConfig) Clone() PortalConfig {
	out := c

	out.Description = c.Description.Clone()
	out.MoreInfoURL = c.MoreInfoURL.Clone()
	out.PageTitle = c.PageTitle.Clone()
	out.HasLogo = c.HasLogo.Clone()
	out.HasStyles = c.HasStyles.Clone()
	out.PortalBrowser = c.PortalBrowser.Clone()

	out.Title = Title{
		Primary:   c.Title.Primary.Clone(),
		Secondary: c.Title.Secondary.Clone(),
	}
	out.Features = Features{
		AdvancedSearch: c.Features.AdvancedSearch.Clone(),
		Authentication: c.Features.Authentication.Clone(),
		FeatureFacets: FeatureFacets{
			ShowAvailableInEarthdataCloud: c.Features.FeatureFacets.ShowAvailableInEarthdataCloud.Clone(),
			ShowCustomizable:              c.Features.FeatureFacets.ShowCustomizable.Clone(),
			ShowMapImagery:                c.Features.FeatureFacets.ShowMapImagery.Clone(),
		},
	}
	out.Footer = Footer{
		DisplayVersion:  c.Footer.DisplayVersion.Clone(),
		AttributionText: c.Footer.AttributionText.Clone(),
		PrimaryLinks:    c.Footer.PrimaryLinks.CloneWith(Links.Clone),
		SecondaryLinks:  c.Footer.SecondaryLinks.CloneWith(Links.Clone),
	}
	out.Query = c.Query.CloneWith(Query.Clone)
	out.UI = UI{
		ShowOnlyGranulesCheckbox: c.UI.ShowOnlyGranulesCheckbox.Clone(),
		ShowNonEosdisCheckbox:    c.UI.ShowNonEosdisCheckbox.Clone(),
		ShowTophat:               c.UI.ShowTophat.Clone(),
	}

	return out
}

// Clone returns a copy of l. A nil list stays nil.
func (l Links) Clone() Links {
	if l == nil {
		return nil
	}
	return slices.Clone(l)
}

// Clone returns a deep copy of q. Nested maps and slices are copied; a nil
// query stays nil.
func (q Query) Clone() Query {
	if q == nil {
		return nil
	}
	out := make(Query, len(q))
	for k, v := range q {
		out[k] = cloneQueryValue(v)
	}
	return out
}

func cloneQueryValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, inner := range val {
			m[k] = cloneQueryValue(inner)
		}
		return m
	case Query:
		return val.Clone()
	case []any:
		s := make([]any, len(val))
		for i, inner := range val {
			s[i] = cloneQueryValue(inner)
		}
		return s
	case map[string]string:
		return maps.Clone(val)
	case []string:
		return slices.Clone(val)
	default:
		return v
	}
}
