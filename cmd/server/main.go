// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/oceanus/internal/analytics"
	"github.com/tomtom215/oceanus/internal/api"
	"github.com/tomtom215/oceanus/internal/config"
	"github.com/tomtom215/oceanus/internal/fixtures"
	"github.com/tomtom215/oceanus/internal/logging"
	"github.com/tomtom215/oceanus/internal/snapshot"
	"github.com/tomtom215/oceanus/internal/store"
	"github.com/tomtom215/oceanus/internal/supervisor"
	"github.com/tomtom215/oceanus/internal/supervisor/services"
	ws "github.com/tomtom215/oceanus/internal/websocket"
)

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,

		Timestamp: true,
		Service:   "oceanus",
	})
	logging.Info().
		Str("data_dir", cfg.Data.Dir).
		Bool("analytics_enabled", cfg.Analytics.Enabled).
		Str("analytics_url", cfg.Analytics.URL).
		Msg("Starting Oceanus")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loadStart := time.Now()
	data, err := fixtures.Load(ctx, cfg.Data)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load reference data")
	}
	logging.Info().
		Int("vessels", len(data.Catalog.VesselIDs())).
		Int("locations", len(data.Catalog.LocationIDs())).
		Int("commodities", len(data.Catalog.CommodityIDs())).
		Int("movements", len(data.Movements)).
		Int("distributions", len(data.Distributions)).
		Int("unions", len(data.Unions)).
		Dur("duration", time.Since(loadStart)).
		Msg("Reference data loaded")

	svc := newAnalyticsService(cfg, data)

	opts, err := store.OptionsFromConfig(&cfg.Dashboard)
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid dashboard configuration")
	}
	st := store.New(data, svc, opts)

	wsHub := ws.NewHub()
	st.Subscribe(wsHub.OnStoreEvent)

	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddMessagingService(services.NewWebSocketHubService(wsHub))
	if cfg.Analytics.Enabled && cfg.Dashboard.AutoRefresh {
		tree.AddMessagingService(services.NewRemoteRefreshService(st, cfg.Dashboard.RefreshDebounce))
	}

	// Subscribers are in place, so restoring or initializing reaches them.
	restored := false
	if cfg.Persist.Enabled {
		db, err := snapshot.Open(&cfg.Persist)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to open state snapshot store")
		}
		defer func() {
			if err := db.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing state snapshot store")
			}
		}()
		tree.AddMessagingService(snapshot.NewPersister(db, st, cfg.Persist.GCInterval))
		restored = restoreSnapshot(db, st)
	}
	if cfg.Dashboard.InitOnStartup && !restored {
		if _, err := st.Initialize(); err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize dashboard state")
		}
	}

	handler := api.NewHandler(st, wsHub, cfg.Security.CORSOrigins, cfg.Analytics.Enabled)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFrom(&cfg.Security)))
	server := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout))

	errCh := tree.ServeBackground(ctx)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, stopping services")
		err = <-errCh
	case err = <-errCh:
	}
	stop()
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, u := range unstopped {
			logging.Warn().Str("service", u.Name).Msg("Service failed to stop within timeout")
		}
	}
	logging.Info().Msg("Oceanus stopped")
}

// newAnalyticsService returns the analytics server client, or the
// in-process fallback when the server is disabled.
func newAnalyticsService(cfg *config.Config, data *fixtures.Dataset) analytics.Service {
	if !cfg.Analytics.Enabled {
		logging.Warn().Msg("Analytics server disabled: t-SNE unavailable, aggregated movements computed in-process")
		return analytics.NewLocal(data.TransportEvents)
	}
	return analytics.NewClient(&cfg.Analytics)
}

// restoreSnapshot applies the saved state, if any. A snapshot that cannot
// be read or applied is logged and skipped; the dashboard then starts from
// the configured defaults.
func restoreSnapshot(db *snapshot.DB, st *store.Store) bool {
	saved, ok, err := db.Load()
	if err != nil {
		logging.Warn().Err(err).Msg("Failed to read state snapshot, starting fresh")
		return false
	}
	if !ok {
		return false
	}
	restored, err := st.Restore(saved)
	if err != nil {
		logging.Warn().Err(err).Msg("Discarding unusable state snapshot")
		return false
	}
	logging.Info().
		Uint64("saved_version", saved.Version).
		Int("pairs", len(restored.Pairs)).
		Time("saved_at", saved.UpdatedAt).
		Msg("Dashboard state restored from snapshot")
	return true
}
