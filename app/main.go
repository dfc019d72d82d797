package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lysyi3m/podcast-comb/app/api"
	"github.com/lysyi3m/podcast-comb/app/cfg"
	"github.com/lysyi3m/podcast-comb/app/database"
	"github.com/lysyi3m/podcast-comb/app/feed"
	"github.com/lysyi3m/podcast-comb/app/loader"
	"github.com/lysyi3m/podcast-comb/app/model"
	"github.com/lysyi3m/podcast-comb/app/notes"
	"github.com/lysyi3m/podcast-comb/app/parser"
	"github.com/lysyi3m/podcast-comb/app/tasks"
	"github.com/lysyi3m/podcast-comb/app/view"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if appCfg == nil {
		// help was shown
		return
	}

	level := slog.LevelInfo
	if appCfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	httpClient := &http.Client{Timeout: time.Duration(appCfg.Timeout) * time.Second}
	podcastParser := parser.New(loader.New(httpClient, appCfg.UserAgent, 0))

	if appCfg.ParseOnly() {
		if err := parseOnce(podcastParser, appCfg); err != nil {
			slog.Error("Failed to parse podcast", "location", appCfg.Parse, "error", err)
			os.Exit(1)
		}
		return
	}

	if err := serve(podcastParser, appCfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func parseOnce(podcastParser *parser.Parser, appCfg *cfg.Cfg) error {
	format, err := view.ParseFormat(appCfg.Format)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var podcast *model.Podcast
	if appCfg.Encoding != "" {
		podcast, err = podcastParser.ParseSource(ctx, &loader.Source{SystemID: appCfg.Parse, Encoding: appCfg.Encoding})
	} else {
		podcast, err = podcastParser.ParseLocation(ctx, appCfg.Parse)
	}
	if err != nil {
		return err
	}

	opts := view.Options{}
	if appCfg.Notes {
		opts.Notes = notes.NewExtractor()
	}

	return view.Encode(os.Stdout, format, view.FromPodcast(podcast, opts))
}

func serve(podcastParser *parser.Parser, appCfg *cfg.Cfg) error {
	slog.Info("Starting Podcast Comb server", "version", appCfg.Version)

	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Info("Database ready", "path", appCfg.DBPath, "schema_version", version, "dirty", dirty)

	configCache := feed.NewConfigCache(appCfg.FeedsDir)
	if err := configCache.Run(); err != nil {
		return fmt.Errorf("failed to load podcast configurations: %w", err)
	}
	slog.Info("Loaded podcast configurations", "dir", appCfg.FeedsDir, "count", configCache.GetConfigCount())

	podcastRepo := database.NewPodcastRepository(db)
	episodeRepo := database.NewEpisodeRepository(db)
	filterer := feed.NewFilterer()
	extractor := notes.NewExtractor()

	scheduler := tasks.NewScheduler(configCache, podcastRepo, episodeRepo, podcastParser, filterer, extractor,
		time.Duration(appCfg.SchedulerInterval)*time.Second, appCfg.WorkerCount)
	scheduler.Start()
	defer scheduler.Stop()
	slog.Info("Background scheduler started", "workers", appCfg.WorkerCount, "interval", appCfg.SchedulerInterval)

	handler := api.NewHandler(configCache, podcastRepo, episodeRepo, podcastParser, extractor, scheduler,
		time.Duration(appCfg.CacheTTL)*time.Second)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      api.NewServer(handler, appCfg.APIAccessKey, appCfg.ParseRate),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		return err
	}

	slog.Info("Shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown error: %w", err)
	}

	slog.Info("Podcast Comb server shutdown complete")

	return nil
}
