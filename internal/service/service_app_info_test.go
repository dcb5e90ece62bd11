package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contact-book/internal/config"
	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/models"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: ""}, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

func TestNewAppInfoService_BuildVersionWins(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "dev"}, models.NewAppBuildInfo("v1.4.0", "2026-01-01", "abc123"), logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "v1.4.0", svc.GetAppVersion(context.Background()))
}

// ─────────────────────────────────────────────
// GetAppVersion / GetBuildInfo
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "3.1.4"}, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}

func TestGetBuildInfo(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.App
		buildInfo models.AppBuildInfo
		want      models.VersionResponse
	}{
		{
			name:      "stamped binary",
			cfg:       config.App{Version: "dev"},
			buildInfo: models.NewAppBuildInfo("v2.0.0", "2026-02-03", "deadbeef"),
			want:      models.VersionResponse{Version: "v2.0.0", Date: "2026-02-03", Commit: "deadbeef"},
		},
		{
			name:      "unstamped binary",
			cfg:       config.App{Version: "dev"},
			buildInfo: models.NewAppBuildInfo("", "", ""),
			want:      models.VersionResponse{Version: "dev", Date: "N/A", Commit: "N/A"},
		},
		{
			name: "zero build info",
			cfg:  config.App{Version: "dev"},
			want: models.VersionResponse{Version: "dev", Date: "N/A", Commit: "N/A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(tt.cfg, tt.buildInfo, logger.Nop())
			require.NoError(t, err)
			assert.Equal(t, tt.want, svc.GetBuildInfo(context.Background()))
		})
	}
}
