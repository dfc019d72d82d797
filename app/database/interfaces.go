package database

import (
	"time"
)

type PodcastRepository interface {
	GetPodcast(name string) (*Podcast, error)
	GetPodcasts() ([]Podcast, error)
	GetPodcastCount() (int, error)

	UpsertPodcast(name, feedURL string) error
	UpdatePodcastMetadata(name string, meta PodcastMetadata, nextFetch time.Time) error
	UpdateNextFetch(name string, nextFetch time.Time) error
}

type EpisodeRepository interface {
	GetVisibleEpisodes(podcastName string, limit int) ([]Episode, error)
	GetAllEpisodes(podcastName string) ([]Episode, error)
	GetEpisodeStats(podcastName string) (int, int, int, error)

	UpsertEpisode(podcastName string, episode PodcastEpisode) error
	PruneEpisodes(podcastName string, keep int) (int64, error)
}
