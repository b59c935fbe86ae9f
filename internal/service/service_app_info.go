package service

import (
	"context"

	"github.com/MKhiriev/go-birthday-keeper/internal/config"
	"github.com/MKhiriev/go-birthday-keeper/models"
)

type appInfoService struct {
	appVersion string
	build      models.AppBuildInfo
}

// NewAppInfoService reports cfg.Version when configured and the linker
// supplied build version otherwise.
func NewAppInfoService(cfg config.ClientApp, build models.AppBuildInfo) AppInfoService {
	version := cfg.Version
	if version == "" {
		version = build.BuildVersion()
	}

	return &appInfoService{
		appVersion: version,
		build:      build,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.build
}
