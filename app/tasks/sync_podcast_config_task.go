package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lysyi3m/podcast-comb/app/database"
	"github.com/lysyi3m/podcast-comb/app/feed"
)

type SyncPodcastConfigTask struct {
	Task
	PodcastConfig *feed.Config
	podcastRepo   database.PodcastRepository
}

func NewSyncPodcastConfigTask(podcastName string, podcastConfig *feed.Config, podcastRepo database.PodcastRepository) *SyncPodcastConfigTask {
	return &SyncPodcastConfigTask{
		Task:          NewTask(TaskTypeSyncPodcastConfig, podcastName),
		PodcastConfig: podcastConfig,
		podcastRepo:   podcastRepo,
	}
}

func (t *SyncPodcastConfigTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := t.podcastRepo.UpsertPodcast(t.PodcastConfig.Name, t.PodcastConfig.URL); err != nil {
		return fmt.Errorf("failed to sync podcast config to database: %w", err)
	}

	slog.Info("Task completed",
		"type", "SyncPodcastConfig",
		"podcast", t.PodcastName,
		"duration", t.GetDuration())

	return nil
}
