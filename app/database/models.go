package database

import (
	"time"
)

type Podcast struct {
	ID                 int64
	Name               string // Configuration identifier derived from filename
	FeedURL            string
	Link               string
	Title              string
	Description        string
	Author             string
	ImageURL           string
	Language           string
	Explicit           bool
	NewFeedURL         string // itunes:new-feed-url announced by the publisher
	LastFetchedAt      *time.Time
	NextFetchAt        *time.Time
	PodcastPublishedAt *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type Episode struct {
	ID              int64
	PodcastID       int64
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
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
