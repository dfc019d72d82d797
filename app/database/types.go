package database

import (
	"time"
)

// PodcastMetadata is what a successful fetch learns about the podcast itself.
type PodcastMetadata struct {
	Title       string
	Link        string
	Description string
	Author      string
	ImageURL    string
	Language    string
	Explicit    bool
	NewFeedURL  string
	PublishedAt *time.Time
}

// PodcastEpisode is an episode ready to be stored.
type PodcastEpisode struct {
	GUID            string
	Title           string
	Link            string
	Description     string
	Content         string
	Notes           string
	Author          string
	PublishedAt     *time.Time
	EnclosureURL    string
	EnclosureLength int64
	EnclosureType   string
	DurationSeconds *int64
	Season          *int
	EpisodeNumber   *int
	EpisodeType     string
	Explicit        bool
	IsFiltered      bool
	FilterReason    string
}
