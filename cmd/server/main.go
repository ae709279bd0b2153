// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-mypass/internal/config"
	"github.com/MKhiriev/go-mypass/internal/handler"
	"github.com/MKhiriev/go-mypass/internal/logger"
	"github.com/MKhiriev/go-mypass/internal/server"
	"github.com/MKhiriev/go-mypass/internal/service"
	"github.com/MKhiriev/go-mypass/internal/store"
	"github.com/MKhiriev/go-mypass/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "mypass-server",
		Short:        "Reference server for the mypass client",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}
	flags := config.BindServerFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		info := buildInfo()
		fmt.Fprintln(cmd.OutOrStdout(), info)
		return run(cmd.Context(), flags, info)
	}
	return cmd
}

func run(ctx context.Context, flags *config.Flags, info models.BuildInfo) error {
	log := logger.NewLogger("mypass-server")

	cfg, err := config.GetServerConfig(flags)
	if err != nil {
		log.Err(err).Msg("error getting configs")
		return err
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("error setting log level: %w", err)
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(ctx, cfg.Storage.DB.DSN, log)
	if err != nil {
		log.Err(err).Msg("error creating storages")
		return err
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, info, log)
	if err != nil {
		log.Err(err).Msg("error creating services")
		return err
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Err(err).Msg("error creating handlers")
		return err
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Err(err).Msg("error creating server")
		return err
	}

	return srv.RunServer(ctx)
}

// buildInfo reports N/A for values not stamped at link time; the version
// endpoint needs a non-empty version.
func buildInfo() models.BuildInfo {
	return models.NewBuildInfo(models.ServerComponent, buildVersion, buildDate, buildCommit).Or("N/A")
}
