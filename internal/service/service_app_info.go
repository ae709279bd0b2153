// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-mypass/internal/logger"
	"github.com/MKhiriev/go-mypass/models"
)

type appInfoService struct {
	buildInfo models.BuildInfo

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.BuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if buildInfo.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

func (s *appInfoService) BuildInfo(ctx context.Context) models.BuildInfo {
	return s.buildInfo
}
