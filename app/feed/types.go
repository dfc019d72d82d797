package feed

import (
	"github.com/lysyi3m/podcast-comb/app/model"
)

// Subscription configuration, one YAML file per podcast.

type Config struct {
	Name     string         // Derived from filename (without .yml extension)
	URL      string         `yaml:"url"`
	Encoding string         `yaml:"encoding"` // overrides the encoding the document declares
	Settings ConfigSettings `yaml:"settings"`
	Filters  []ConfigFilter `yaml:"filters"`
}

type ConfigSettings struct {
	Enabled         bool `yaml:"enabled"`
	RefreshInterval int  `yaml:"refresh_interval"` // seconds
	MaxEpisodes     int  `yaml:"max_episodes"`
	Timeout         int  `yaml:"timeout"`       // seconds
	ExtractNotes    bool `yaml:"extract_notes"` // store plain-text show notes
}

type ConfigFilter struct {
	Field    string   `yaml:"field"`
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// FilteredEpisode is an episode with the verdict of the subscription filters.
type FilteredEpisode struct {
	Episode      model.Episode
	IsFiltered   bool
	FilterReason string
}
