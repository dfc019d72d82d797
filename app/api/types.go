package api

import (
	"github.com/patrickmn/go-cache"

	"github.com/lysyi3m/podcast-comb/app/database"
	"github.com/lysyi3m/podcast-comb/app/feed"
	"github.com/lysyi3m/podcast-comb/app/notes"
	"github.com/lysyi3m/podcast-comb/app/parser"
	"github.com/lysyi3m/podcast-comb/app/tasks"
)

type Handler struct {
	podcastRepo database.PodcastRepository
	episodeRepo database.EpisodeRepository
	configCache *feed.ConfigCache
	parser      *parser.Parser
	extractor   *notes.Extractor
	scheduler   tasks.TaskSchedulerInterface
	podcasts    *cache.Cache // parsed podcasts by name, nil when caching is off
}

type storedEpisode struct {
	GUID            string `json:"guid"`
	Title           string `json:"title"`
	Link            string `json:"link,omitempty"`
	Description     string `json:"description,omitempty"`
	Notes           string `json:"notes,omitempty"`
	Author          string `json:"author,omitempty"`
	PublishedAt     string `json:"published_at,omitempty"`
	EnclosureURL    string `json:"enclosure_url,omitempty"`
	EnclosureLength int64  `json:"enclosure_length,omitempty"`
	EnclosureType   string `json:"enclosure_type,omitempty"`
	DurationSeconds *int64 `json:"duration_seconds,omitempty"`
	Season          *int   `json:"season,omitempty"`
	EpisodeNumber   *int   `json:"episode_number,omitempty"`
	EpisodeType     string `json:"episode_type,omitempty"`
	Explicit        bool   `json:"explicit"`
}
