package feed

import (
	"fmt"
	"strings"

	"github.com/lysyi3m/podcast-comb/app/model"
)

type Filterer struct{}

func NewFilterer() *Filterer {
	return &Filterer{}
}

// Run marks episodes rejected by the subscription filters. Filtered episodes
// are kept in the result so they can be stored with their reason.
func (f *Filterer) Run(episodes []model.Episode, podcastConfig *Config) []FilteredEpisode {
	result := make([]FilteredEpisode, 0, len(episodes))
	for _, episode := range episodes {
		fe := FilteredEpisode{Episode: episode}
		if len(podcastConfig.Filters) > 0 {
			fe.IsFiltered, fe.FilterReason = f.applyFilters(episode, podcastConfig.Filters)
		}
		result = append(result, fe)
	}

	return result
}

func (f *Filterer) applyFilters(episode model.Episode, filters []ConfigFilter) (bool, string) {
	for _, filter := range filters {
		value := f.getFieldValue(episode, filter.Field)

		for _, exclude := range filter.Excludes {
			if f.matchesFilter(value, exclude) {
				return true, fmt.Sprintf("Excluded by %s filter: contains '%s'", filter.Field, exclude)
			}
		}

		if len(filter.Includes) > 0 {
			matched := false
			for _, include := range filter.Includes {
				if f.matchesFilter(value, include) {
					matched = true
					break
				}
			}
			if !matched {
				return true, fmt.Sprintf("Excluded by %s filter: does not contain any of %v", filter.Field, filter.Includes)
			}
		}
	}

	return false, ""
}

func (f *Filterer) matchesFilter(value, pattern string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(pattern))
}

func (f *Filterer) getFieldValue(episode model.Episode, field string) string {
	switch field {
	case "title":
		return episode.Title()
	case "description":
		return episode.Description()
	case "content":
		return episode.Content()
	case "author":
		return episode.Author()
	case "link":
		return episode.Link()
	case "categories":
		names := make([]string, 0, episode.RSSCategories().Len())
		for _, c := range episode.RSSCategories().All() {
			names = append(names, c.Name())
		}
		return strings.Join(names, " ")
	case "keywords":
		if itunes := episode.Itunes(); itunes != nil {
			return itunes.Keywords()
		}
		return ""
	case "episode_type":
		return string(episode.EpisodeType())
	default:
		return ""
	}
}
