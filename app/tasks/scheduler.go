package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/lysyi3m/podcast-comb/app/database"
	"github.com/lysyi3m/podcast-comb/app/failure"
	"github.com/lysyi3m/podcast-comb/app/feed"
	"github.com/lysyi3m/podcast-comb/app/notes"
	"github.com/lysyi3m/podcast-comb/app/parser"
)

var _ TaskSchedulerInterface = (*Scheduler)(nil)

type Scheduler struct {
	podcastRepo database.PodcastRepository
	episodeRepo database.EpisodeRepository
	configCache *feed.ConfigCache
	parser      *parser.Parser
	filterer    *feed.Filterer
	extractor   *notes.Extractor
	interval    time.Duration
	workerCount int
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	taskQueue   chan TaskInterface
}

func NewScheduler(configCache *feed.ConfigCache, podcastRepo database.PodcastRepository,
	episodeRepo database.EpisodeRepository, parser *parser.Parser, filterer *feed.Filterer,
	extractor *notes.Extractor, interval time.Duration, workerCount int) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		podcastRepo: podcastRepo,
		episodeRepo: episodeRepo,
		configCache: configCache,
		parser:      parser,
		filterer:    filterer,
		extractor:   extractor,
		interval:    interval,
		workerCount: workerCount,
		ctx:         ctx,
		cancel:      cancel,
		taskQueue:   make(chan TaskInterface, 300),
	}
}

func (s *Scheduler) Start() {
	for i := 0; i < s.workerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.enqueueStartupTasks()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.enqueueTasks()
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}

func (s *Scheduler) EnqueueTask(task TaskInterface) error {
	select {
	case s.taskQueue <- task:
		return nil
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
		return fmt.Errorf("task queue is full")
	}
}

// NewProcessPodcastTask builds a processing task wired to the scheduler's
// dependencies.
func (s *Scheduler) NewProcessPodcastTask(podcastConfig *feed.Config) *ProcessPodcastTask {
	return NewProcessPodcastTask(podcastConfig.Name, podcastConfig, s.parser, s.filterer, s.extractor, s.podcastRepo, s.episodeRepo)
}

func (s *Scheduler) enqueueStartupTasks() {
	podcastConfigs := s.configCache.GetConfigs()
	if len(podcastConfigs) == 0 {
		slog.Debug("No podcast configurations found")
		return
	}

	slog.Debug("Processing podcast configurations", "count", len(podcastConfigs))

	for _, podcastConfig := range podcastConfigs {
		syncTask := NewSyncPodcastConfigTask(podcastConfig.Name, podcastConfig, s.podcastRepo)
		if err := s.EnqueueTask(syncTask); err != nil {
			slog.Warn("Failed to enqueue SyncPodcastConfigTask", "podcast", podcastConfig.Name, "error", err)
			continue
		}

		if !podcastConfig.Settings.Enabled {
			slog.Debug("Podcast disabled, skipping ProcessPodcastTask", "podcast", podcastConfig.Name)
			continue
		}

		if err := s.EnqueueTask(s.NewProcessPodcastTask(podcastConfig)); err != nil {
			slog.Warn("Failed to enqueue ProcessPodcastTask", "podcast", podcastConfig.Name, "error", err)
		}
	}
}

func (s *Scheduler) enqueueTasks() {
	podcastConfigs := s.configCache.GetEnabledConfigs()
	if len(podcastConfigs) == 0 {
		slog.Debug("No enabled podcast configurations found")
		return
	}

	slog.Debug("Processing enabled podcast configurations for task scheduling", "count", len(podcastConfigs))

	for _, podcastConfig := range podcastConfigs {
		podcast, err := s.podcastRepo.GetPodcast(podcastConfig.Name)
		if err != nil {
			slog.Warn("Failed to get podcast from database, skipping", "podcast", podcastConfig.Name, "error", err)
			continue
		}
		if podcast == nil {
			slog.Warn("Podcast not found in database, skipping", "podcast", podcastConfig.Name)
			continue
		}

		now := time.Now().UTC()
		if podcast.NextFetchAt != nil && podcast.NextFetchAt.After(now) {
			slog.Debug("Podcast not due for refresh yet", "podcast", podcastConfig.Name, "next_fetch_at", podcast.NextFetchAt)
			continue
		}

		if err := s.EnqueueTask(s.NewProcessPodcastTask(podcastConfig)); err != nil {
			slog.Warn("Failed to enqueue ProcessPodcastTask", "podcast", podcastConfig.Name, "error", err)
		}
	}
}

func (s *Scheduler) worker(id int) {
	defer s.wg.Done()

	for {
		select {
		case task := <-s.taskQueue:
			s.executeTask(id, task)

		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Scheduler) executeTask(workerID int, task TaskInterface) {
	task.Start()

	taskCtx, cancel := context.WithTimeout(s.ctx, 5*time.Minute)
	defer cancel()

	err := task.Execute(taskCtx)

	if err != nil {
		slog.Error("Worker task execution failed", "worker_id", workerID, "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "error", err)

		if task.ShouldRetry(err) {
			retryDelay := task.NextRetry()

			slog.Warn("Task retry scheduled", "type", string(task.GetType()), "podcast", task.GetPodcastName(), "retry_count", task.GetRetryCount(), "max_retries", DefaultMaxRetries, "delay", retryDelay.String())

			go func() {
				time.Sleep(retryDelay)
				select {
				case <-s.ctx.Done():
					slog.Debug("Scheduler stopped, skipping task retry", "type", string(task.GetType()), "id", task.GetID())
					return
				default:
					if retryErr := s.EnqueueTask(task); retryErr != nil {
						slog.Error("Failed to re-enqueue task for retry", "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "error", retryErr)
					}
				}
			}()
		} else {
			slog.Error("Task failed without retry", "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "kind", failure.KindOf(err).String(), "last_error", err)
		}
	}
}
