package model

import (
	"strings"

	"golang.org/x/text/cases"
)

// ShowType is the itunes:type of a podcast.
type ShowType string

const (
	ShowTypeEpisodic ShowType = "episodic"
	ShowTypeSerial   ShowType = "serial"
)

func ParseShowType(s string) (ShowType, bool) {
	switch ShowType(fold(s)) {
	case ShowTypeEpisodic:
		return ShowTypeEpisodic, true
	case ShowTypeSerial:
		return ShowTypeSerial, true
	}
	return "", false
}

// EpisodeType is the itunes:episodeType of an episode.
type EpisodeType string

const (
	EpisodeTypeFull    EpisodeType = "full"
	EpisodeTypeTrailer EpisodeType = "trailer"
	EpisodeTypeBonus   EpisodeType = "bonus"
)

func ParseEpisodeType(s string) (EpisodeType, bool) {
	switch EpisodeType(fold(s)) {
	case EpisodeTypeFull:
		return EpisodeTypeFull, true
	case EpisodeTypeTrailer:
		return EpisodeTypeTrailer, true
	case EpisodeTypeBonus:
		return EpisodeTypeBonus, true
	}
	return "", false
}

// The Google Play directory only accepts these top-level categories.
var googleplayCategories = []string{
	"Arts",
	"Business",
	"Comedy",
	"Education",
	"Games & Hobbies",
	"Government & Organizations",
	"Health",
	"Kids & Family",
	"Music",
	"News & Politics",
	"Religion & Spirituality",
	"Science & Medicine",
	"Society & Culture",
	"Sports & Recreation",
	"Technology",
	"TV & Film",
}

var googleplayCategoryIndex = func() map[string]string {
	index := make(map[string]string, len(googleplayCategories))
	for _, name := range googleplayCategories {
		index[fold(name)] = name
	}
	return index
}()

// GoogleplayCategory returns the canonical spelling of a Google Play
// category, matching case-insensitively and ignoring surrounding space.
func GoogleplayCategory(s string) (string, bool) {
	name, ok := googleplayCategoryIndex[fold(s)]
	return name, ok
}

func GoogleplayCategories() []string {
	out := make([]string, len(googleplayCategories))
	copy(out, googleplayCategories)
	return out
}

// A Caser keeps state between calls, so every call gets its own.
func fold(s string) string {
	return cases.Fold().String(strings.Join(strings.Fields(s), " "))
}
