package tasks

import (
	"github.com/lysyi3m/podcast-comb/app/feed"
)

// TaskSchedulerInterface is what the API needs from the scheduler: a way to
// queue work for the background workers.
//
//	scheduler := NewScheduler(configCache, podcastRepo, episodeRepo, parser, filterer, extractor, interval, workers)
//	scheduler.Start()
//	defer scheduler.Stop()
//	scheduler.EnqueueTask(scheduler.NewProcessPodcastTask(podcastConfig))
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
	NewProcessPodcastTask(podcastConfig *feed.Config) *ProcessPodcastTask
}
