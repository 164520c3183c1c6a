package models

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	tests := []struct {
		name        string
		version     string
		date        string
		commit      string
		wantVersion string
		wantDate    string
		wantCommit  string
		hasVersion  bool
	}{
		{
			name:        "all values set",
			version:     "v1.2.0",
			date:        "2026-10-01",
			commit:      "abc123",
			wantVersion: "v1.2.0",
			wantDate:    "2026-10-01",
			wantCommit:  "abc123",
			hasVersion:  true,
		},
		{
			name:        "nothing injected",
			wantVersion: "N/A",
			wantDate:    "N/A",
			wantCommit:  "N/A",
		},
		{
			name:        "only version",
			version:     "v0.1.0",
			wantVersion: "v0.1.0",
			wantDate:    "N/A",
			wantCommit:  "N/A",
			hasVersion:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewAppBuildInfo(tt.version, tt.date, tt.commit)

			assert.Equal(t, tt.wantVersion, info.BuildVersion())
			assert.Equal(t, tt.wantDate, info.BuildDate())
			assert.Equal(t, tt.wantCommit, info.BuildCommit())
			assert.Equal(t, tt.hasVersion, info.HasVersion())
		})
	}
}

func TestAppBuildInfo_Print(t *testing.T) {
	var buf bytes.Buffer

	NewAppBuildInfo("v1.0.0", "", "deadbeef").Print(&buf)

	assert.Equal(t, "Build version: v1.0.0\nBuild date: N/A\nBuild commit: deadbeef\n", buf.String())
}
