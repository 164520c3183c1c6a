package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortalConfig_CloneIsDeep(t *testing.T) {
	orig := PortalConfig{
		PortalID:  "idn",
		PageTitle: Some("IDN"),
		Title:     Title{Primary: Some("IDN"), Secondary: Null[string]()},
		Features: Features{
			FeatureFacets: FeatureFacets{ShowMapImagery: Some(true)},
		},
		Footer: Footer{
			PrimaryLinks: Some(Links{{Title: "NASA", Href: "https://www.nasa.gov"}}),
		},
		Query: Some(Query{
			"hasGranulesOrCwic": nil,
			"spatial":           map[string]any{"polygon": []any{"1", "2"}},
		}),
	}

	clone := orig.Clone()
	require.Equal(t, orig, clone)

	*clone.PageTitle.Value = "changed"
	*clone.Title.Primary.Value = "changed"
	*clone.Features.FeatureFacets.ShowMapImagery.Value = false
	clone.Footer.PrimaryLinks.OrZero()[0].Title = "changed"
	query := clone.Query.OrZero()
	query["spatial"].(map[string]any)["polygon"].([]any)[0] = "changed"
	query["added"] = 1

	assert.Equal(t, "IDN", orig.PageTitle.OrZero())
	assert.Equal(t, "IDN", orig.Title.Primary.OrZero())
	assert.True(t, clone.Title.Secondary.IsNull())
	assert.True(t, orig.Features.FeatureFacets.ShowMapImagery.OrZero())
	assert.Equal(t, "NASA", orig.Footer.PrimaryLinks.OrZero()[0].Title)
	assert.Equal(t, "1", orig.Query.OrZero()["spatial"].(map[string]any)["polygon"].([]any)[0])
	assert.NotContains(t, orig.Query.OrZero(), "added")
}

func TestPortalConfig_CloneKeepsAbsentNullAndEmptyApart(t *testing.T) {
	orig := PortalConfig{
		Footer: Footer{PrimaryLinks: Some(Links{}), SecondaryLinks: Null[Links]()},
	}

	clone := orig.Clone()

	links, ok := clone.Footer.PrimaryLinks.Get()
	require.True(t, ok)
	assert.NotNil(t, links)
	assert.Empty(t, links)
	assert.True(t, clone.Footer.SecondaryLinks.IsNull())
	assert.False(t, clone.Query.IsSet())
}

func TestPortalConfig_JSONOmitsAbsentFields(t *testing.T) {
	data, err := json.Marshal(PortalConfig{PortalID: "edsc"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"portalId":"edsc"}`, string(data))
}

func TestPortalConfig_JSONKeepsExplicitFalseAndNull(t *testing.T) {
	cfg := PortalConfig{
		PortalID:      "idn",
		HasStyles:     Some(false),
		PortalBrowser: Some(false),
		MoreInfoURL:   Null[string](),
		Footer:        Footer{SecondaryLinks: Some(Links{})},
	}

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"portalId": "idn",
		"hasStyles": false,
		"portalBrowser": false,
		"moreInfoUrl": null,
		"footer": {"secondaryLinks": []}
	}`, string(data))
}

func TestPortalConfig_JSONRoundTripsQueryNull(t *testing.T) {
	var cfg PortalConfig
	require.NoError(t, json.Unmarshal([]byte(`{"portalId":"x","query":{"project":null}}`), &cfg))

	v, ok := cfg.Query.OrZero()["project"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestPortalConfig_JSONExplicitNulls(t *testing.T) {
	var cfg PortalConfig
	require.NoError(t, json.Unmarshal([]byte(`{
		"portalId": "nul",
		"moreInfoUrl": null,
		"title": {"secondary": null},
		"ui": {"showTophat": null},
		"footer": {"primaryLinks": null},
		"query": null
	}`), &cfg))

	assert.True(t, cfg.MoreInfoURL.IsNull())
	assert.True(t, cfg.Title.Secondary.IsNull())
	assert.False(t, cfg.Title.Primary.IsSet())
	assert.True(t, cfg.UI.ShowTophat.IsNull())
	assert.False(t, cfg.UI.ShowNonEosdisCheckbox.IsSet())
	assert.True(t, cfg.Footer.PrimaryLinks.IsNull())
	assert.False(t, cfg.Footer.SecondaryLinks.IsSet())
	assert.True(t, cfg.Query.IsNull())
	assert.False(t, cfg.PageTitle.IsSet())
}

func TestPortalConfig_JSONNullSectionNullsEveryField(t *testing.T) {
	var cfg PortalConfig
	require.NoError(t, json.Unmarshal([]byte(`{
		"portalId": "nul",
		"title": null,
		"features": null,
		"footer": null,
		"ui": null
	}`), &cfg))

	assert.True(t, cfg.Title.Primary.IsNull())
	assert.True(t, cfg.Title.Secondary.IsNull())
	assert.True(t, cfg.Features.AdvancedSearch.IsNull())
	assert.True(t, cfg.Features.Authentication.IsNull())
	assert.True(t, cfg.Features.FeatureFacets.ShowAvailableInEarthdataCloud.IsNull())
	assert.True(t, cfg.Features.FeatureFacets.ShowCustomizable.IsNull())
	assert.True(t, cfg.Features.FeatureFacets.ShowMapImagery.IsNull())
	assert.True(t, cfg.Footer.DisplayVersion.IsNull())
	assert.True(t, cfg.Footer.AttributionText.IsNull())
	assert.True(t, cfg.Footer.PrimaryLinks.IsNull())
	assert.True(t, cfg.Footer.SecondaryLinks.IsNull())
	assert.True(t, cfg.UI.ShowOnlyGranulesCheckbox.IsNull())
	assert.True(t, cfg.UI.ShowNonEosdisCheckbox.IsNull())
	assert.True(t, cfg.UI.ShowTophat.IsNull())
}

func TestPortalConfig_JSONEmptyQueryIsSet(t *testing.T) {
	var cfg PortalConfig
	require.NoError(t, json.Unmarshal([]byte(`{"portalId":"x","query":{}}`), &cfg))

	q, ok := cfg.Query.Get()
	require.True(t, ok)
	assert.NotNil(t, q)
	assert.Empty(t, q)
}
