package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/lysyi3m/podcast-comb/app/database"
	"github.com/lysyi3m/podcast-comb/app/feed"
	"github.com/lysyi3m/podcast-comb/app/loader"
	"github.com/lysyi3m/podcast-comb/app/model"
	"github.com/lysyi3m/podcast-comb/app/notes"
	"github.com/lysyi3m/podcast-comb/app/parser"
)

type ProcessPodcastTask struct {
	Task
	PodcastConfig *feed.Config
	parser        *parser.Parser
	filterer      *feed.Filterer
	extractor     *notes.Extractor
	podcastRepo   database.PodcastRepository
	episodeRepo   database.EpisodeRepository
}

func NewProcessPodcastTask(podcastName string, podcastConfig *feed.Config, parser *parser.Parser, filterer *feed.Filterer,
	extractor *notes.Extractor, podcastRepo database.PodcastRepository, episodeRepo database.EpisodeRepository) *ProcessPodcastTask {
	return &ProcessPodcastTask{
		Task:          NewTask(TaskTypeProcessPodcast, podcastName),
		PodcastConfig: podcastConfig,
		parser:        parser,
		filterer:      filterer,
		extractor:     extractor,
		podcastRepo:   podcastRepo,
		episodeRepo:   episodeRepo,
	}
}

func (t *ProcessPodcastTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	settings := t.PodcastConfig.Settings
	if !settings.Enabled {
		slog.Debug("Podcast disabled, skipping", "podcast", t.PodcastName)
		return nil
	}

	podcast, err := t.fetchPodcast(ctx)
	if err != nil {
		if !t.ShouldRetry(err) {
			t.scheduleNextFetch()
		}
		return fmt.Errorf("failed to parse podcast: %w", err)
	}

	if err := t.storePodcastMetadata(podcast); err != nil {
		return fmt.Errorf("failed to store podcast metadata: %w", err)
	}

	if moved := podcast.NewFeedURL(); moved != "" && moved != t.PodcastConfig.URL {
		slog.Warn("Podcast announces a new feed URL", "podcast", t.PodcastName, "url", t.PodcastConfig.URL, "new_feed_url", moved)
	}

	episodes := newestEpisodes(podcast.Episodes().Slice(), settings.MaxEpisodes)

	filteredEpisodes := t.filterer.Run(episodes, t.PodcastConfig)

	filteredCount := 0
	for _, fe := range filteredEpisodes {
		if fe.IsFiltered {
			filteredCount++
		}
		if err := t.episodeRepo.UpsertEpisode(t.PodcastName, t.toPodcastEpisode(fe)); err != nil {
			return fmt.Errorf("failed to store episode: %w", err)
		}
	}

	pruned, err := t.episodeRepo.PruneEpisodes(t.PodcastName, settings.MaxEpisodes)
	if err != nil {
		return fmt.Errorf("failed to prune episodes: %w", err)
	}

	slog.Info("Task completed",
		"type", "ProcessPodcast",
		"podcast", t.PodcastName,
		"duration", t.GetDuration(),
		"total", podcast.Episodes().Len(),
		"stored", len(filteredEpisodes),
		"filtered", filteredCount,
		"pruned", pruned)

	return nil
}

func (t *ProcessPodcastTask) fetchPodcast(ctx context.Context) (*model.Podcast, error) {
	if timeout := t.PodcastConfig.Settings.Timeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
		defer cancel()
	}

	return t.parser.ParseSource(ctx, &loader.Source{
		SystemID: t.PodcastConfig.URL,
		Encoding: t.PodcastConfig.Encoding,
	})
}

func (t *ProcessPodcastTask) nextFetch() time.Time {
	return time.Now().UTC().Add(time.Duration(t.PodcastConfig.Settings.RefreshInterval) * time.Second)
}

func (t *ProcessPodcastTask) scheduleNextFetch() {
	if err := t.podcastRepo.UpdateNextFetch(t.PodcastName, t.nextFetch()); err != nil {
		slog.Warn("Failed to update next fetch time", "podcast", t.PodcastName, "error", err)
	}
}

func (t *ProcessPodcastTask) storePodcastMetadata(podcast *model.Podcast) error {
	meta := database.PodcastMetadata{
		Title:       podcast.Title(),
		Link:        podcast.Link(),
		Description: podcast.Description(),
		Author:      podcast.Author(),
		Language:    podcast.Language(),
		Explicit:    podcast.Explicit(),
		NewFeedURL:  podcast.NewFeedURL(),
		PublishedAt: firstTime(podcast.PubDate(), podcast.LastBuildDate()),
	}
	if image := podcast.Image(); image != nil {
		meta.ImageURL = image.URL()
	}

	return t.podcastRepo.UpdatePodcastMetadata(t.PodcastName, meta, t.nextFetch())
}

func (t *ProcessPodcastTask) toPodcastEpisode(fe feed.FilteredEpisode) database.PodcastEpisode {
	e := fe.Episode
	stored := database.PodcastEpisode{
		GUID:         episodeKey(e),
		Title:        e.Title(),
		Link:         e.Link(),
		Description:  e.Description(),
		Content:      e.Content(),
		Author:       e.Author(),
		PublishedAt:  firstTime(e.PubDate(), e.Updated()),
		EpisodeType:  string(e.EpisodeType()),
		Explicit:     e.Explicit(),
		IsFiltered:   fe.IsFiltered,
		FilterReason: fe.FilterReason,
	}

	if enc := e.Enclosure(); enc != nil {
		stored.EnclosureURL = enc.URL()
		stored.EnclosureLength = enc.Length()
		stored.EnclosureType = enc.Type()
	}
	if d, ok := e.Duration(); ok {
		seconds := int64(d / time.Second)
		stored.DurationSeconds = &seconds
	}
	if season, ok := e.Season(); ok {
		stored.Season = &season
	}
	if number, ok := e.Number(); ok {
		stored.EpisodeNumber = &number
	}

	if t.PodcastConfig.Settings.ExtractNotes && t.extractor != nil && !fe.IsFiltered {
		html := stored.Content
		if html == "" {
			html = stored.Description
		}
		if html != "" {
			text, err := t.extractor.Run(html)
			if err != nil {
				slog.Debug("Failed to extract notes", "podcast", t.PodcastName, "episode", stored.Title, "error", err)
			}
			stored.Notes = text
		}
	}

	return stored
}

// episodeKey identifies an episode across fetches: the guid when the feed
// has one, then the enclosure URL, the link and finally the title.
func episodeKey(e model.Episode) string {
	if g := e.Guid(); g != nil {
		return g.Text()
	}
	if enc := e.Enclosure(); enc != nil {
		return enc.URL()
	}
	if e.Link() != "" {
		return e.Link()
	}
	return e.Title()
}

// newestEpisodes returns at most limit episodes, newest first. Undated
// episodes follow the dated ones in document order.
func newestEpisodes(episodes []model.Episode, limit int) []model.Episode {
	sorted := slices.Clone(episodes)
	slices.SortStableFunc(sorted, func(a, b model.Episode) int {
		at, bt := firstTime(a.PubDate(), a.Updated()), firstTime(b.PubDate(), b.Updated())
		switch {
		case at == nil && bt == nil:
			return 0
		case at == nil:
			return 1
		case bt == nil:
			return -1
		}
		return bt.Compare(*at)
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func firstTime(times ...time.Time) *time.Time {
	for _, t := range times {
		if !t.IsZero() {
			return &t
		}
	}
	return nil
}
