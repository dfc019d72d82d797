package api

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/lysyi3m/podcast-comb/app/database"
	"github.com/lysyi3m/podcast-comb/app/failure"
	"github.com/lysyi3m/podcast-comb/app/feed"
	"github.com/lysyi3m/podcast-comb/app/loader"
	"github.com/lysyi3m/podcast-comb/app/model"
	"github.com/lysyi3m/podcast-comb/app/notes"
	"github.com/lysyi3m/podcast-comb/app/parser"
	"github.com/lysyi3m/podcast-comb/app/tasks"
	"github.com/lysyi3m/podcast-comb/app/view"
)

const maxDocumentSize = 10 << 20

func NewHandler(configCache *feed.ConfigCache, podcastRepo database.PodcastRepository,
	episodeRepo database.EpisodeRepository, parser *parser.Parser, extractor *notes.Extractor,
	scheduler tasks.TaskSchedulerInterface, cacheTTL time.Duration) *Handler {
	h := &Handler{
		podcastRepo: podcastRepo,
		episodeRepo: episodeRepo,
		configCache: configCache,
		parser:      parser,
		extractor:   extractor,
		scheduler:   scheduler,
	}
	if cacheTTL > 0 {
		h.podcasts = cache.New(cacheTTL, 2*cacheTTL)
	}
	return h
}

// GetPodcast fetches the configured feed and renders it as JSON or YAML.
func (h *Handler) GetPodcast(c *gin.Context) {
	name := c.Param("name")

	podcastConfig, err := h.configCache.GetConfig(name)
	if err != nil {
		slog.Error("Podcast configuration not found", "podcast", name, "error", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Podcast configuration not found"})
		return
	}

	format, err := view.ParseFormat(c.DefaultQuery("format", string(view.FormatJSON)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	podcast, hit, err := h.loadPodcast(c.Request.Context(), podcastConfig)
	if err != nil {
		slog.Error("Failed to parse podcast", "podcast", name, "error", err)
		h.renderFailure(c, err)
		return
	}

	if h.podcasts != nil {
		cacheStatus := "MISS"
		if hit {
			cacheStatus = "HIT"
		}
		c.Header("X-Cache", cacheStatus)
	}

	opts := view.Options{MaxEpisodes: podcastConfig.Settings.MaxEpisodes}
	if podcastConfig.Settings.ExtractNotes {
		opts.Notes = h.extractor
	}

	c.Header("X-Podcast-Name", name)
	c.Header("X-Podcast-Episodes", strconv.Itoa(podcast.Episodes().Len()))
	h.render(c, format, view.FromPodcast(podcast, opts))
}

// GetEpisodes lists the stored episodes that passed the podcast's filters.
func (h *Handler) GetEpisodes(c *gin.Context) {
	name := c.Param("name")

	podcastConfig, err := h.configCache.GetConfig(name)
	if err != nil {
		slog.Error("Podcast configuration not found", "podcast", name, "error", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Podcast configuration not found"})
		return
	}

	podcast, err := h.podcastRepo.GetPodcast(name)
	if err != nil {
		slog.Error("Database error", "operation", "get_podcast", "podcast", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if podcast == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Podcast not found in database"})
		return
	}

	episodes, err := h.episodeRepo.GetVisibleEpisodes(name, podcastConfig.Settings.MaxEpisodes)
	if err != nil {
		slog.Error("Database error", "operation", "get_episodes", "podcast", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.Header("X-Podcast-Name", name)
	c.Header("X-Podcast-Episodes", strconv.Itoa(len(episodes)))
	c.Header("X-Last-Updated", podcast.UpdatedAt.Format(time.RFC3339))

	c.JSON(http.StatusOK, gin.H{
		"podcast":  name,
		"title":    podcast.Title,
		"episodes": toStoredEpisodes(episodes),
		"total":    len(episodes),
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if podcastCount, err := h.podcastRepo.GetPodcastCount(); err == nil {
		health["podcasts"] = podcastCount
	}

	health["loaded_configurations"] = h.configCache.GetConfigCount()

	c.JSON(http.StatusOK, health)
}

// APIParse parses the posted document, or the document at ?url=, without
// storing anything.
func (h *Handler) APIParse(c *gin.Context) {
	format, err := view.ParseFormat(c.DefaultQuery("format", string(view.FormatJSON)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var podcast *model.Podcast
	if location := c.Query("url"); location != "" {
		if !strings.HasPrefix(location, "http://") && !strings.HasPrefix(location, "https://") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only http(s) URLs can be parsed"})
			return
		}
		podcast, err = h.parser.ParseLocation(c.Request.Context(), location)
	} else {
		body := http.MaxBytesReader(c.Writer, c.Request.Body, maxDocumentSize)
		if encoding := c.Query("encoding"); encoding != "" {
			podcast, err = h.parser.ParseReaderWithEncoding(body, encoding)
		} else {
			podcast, err = h.parser.ParseReader(body)
		}
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Document exceeds " + strconv.FormatInt(tooLarge.Limit, 10) + " bytes"})
			return
		}
		slog.Warn("Failed to parse posted document", "error", err)
		h.renderFailure(c, err)
		return
	}

	h.render(c, format, view.FromPodcast(podcast, view.Options{
		Notes:        h.notesFor(c),
		OmitEpisodes: c.Query("episodes") == "false",
	}))
}

func (h *Handler) APIListPodcasts(c *gin.Context) {
	configs := h.configCache.GetConfigs()

	podcasts := make([]map[string]interface{}, 0, len(configs))

	for _, podcastConfig := range configs {
		podcastInfo := map[string]interface{}{
			"name":             podcastConfig.Name,
			"url":              podcastConfig.URL,
			"title":            "",
			"enabled":          podcastConfig.Settings.Enabled,
			"max_episodes":     podcastConfig.Settings.MaxEpisodes,
			"refresh_interval": (time.Duration(podcastConfig.Settings.RefreshInterval) * time.Second).String(),
			"filters":          len(podcastConfig.Filters),
		}

		if podcast, err := h.podcastRepo.GetPodcast(podcastConfig.Name); err == nil && podcast != nil {
			podcastInfo["title"] = podcast.Title
			podcastInfo["last_fetched_at"] = podcast.LastFetchedAt
			podcastInfo["next_fetch_at"] = podcast.NextFetchAt
			podcastInfo["updated_at"] = podcast.UpdatedAt
		}

		if total, _, _, err := h.episodeRepo.GetEpisodeStats(podcastConfig.Name); err == nil {
			podcastInfo["episode_count"] = total
		}

		podcasts = append(podcasts, podcastInfo)
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"podcasts": podcasts,
		"total":    len(podcasts),
	})
}

func (h *Handler) APIGetPodcastDetails(c *gin.Context) {
	name := c.Param("name")

	podcastConfig, err := h.configCache.GetConfig(name)
	if err != nil {
		slog.Error("Podcast configuration not found", "podcast", name, "error", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Podcast configuration not found"})
		return
	}

	podcast, err := h.podcastRepo.GetPodcast(name)
	if err != nil {
		slog.Error("Database error", "operation", "get_podcast", "podcast", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if podcast == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Podcast not found in database"})
		return
	}

	details := map[string]interface{}{
		"name":             name,
		"url":              podcastConfig.URL,
		"title":            podcast.Title,
		"author":           podcast.Author,
		"new_feed_url":     podcast.NewFeedURL,
		"enabled":          podcastConfig.Settings.Enabled,
		"max_episodes":     podcastConfig.Settings.MaxEpisodes,
		"extract_notes":    podcastConfig.Settings.ExtractNotes,
		"refresh_interval": (time.Duration(podcastConfig.Settings.RefreshInterval) * time.Second).String(),
		"timeout":          (time.Duration(podcastConfig.Settings.Timeout) * time.Second).String(),
		"filters":          podcastConfig.Filters,
	}

	details["database"] = map[string]interface{}{
		"id":              podcast.ID,
		"name":            podcast.Name,
		"last_fetched_at": podcast.LastFetchedAt,
		"next_fetch_at":   podcast.NextFetchAt,
		"created_at":      podcast.CreatedAt,
		"updated_at":      podcast.UpdatedAt,
	}

	if total, visible, filtered, err := h.episodeRepo.GetEpisodeStats(name); err == nil {
		details["episodes"] = map[string]interface{}{
			"total":    total,
			"visible":  visible,
			"filtered": filtered,
		}
	}

	c.JSON(http.StatusOK, details)
}

// APIReloadPodcast re-reads the podcast's configuration file and queues a
// sync followed by a fresh fetch.
func (h *Handler) APIReloadPodcast(c *gin.Context) {
	name := c.Param("name")

	if _, err := h.configCache.GetConfig(name); err != nil {
		slog.Error("Podcast configuration not found", "podcast", name, "error", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Podcast configuration not found"})
		return
	}

	podcastConfig, err := h.configCache.LoadConfig(name)
	if err != nil {
		slog.Error("Error reloading configuration", "podcast", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to reload configuration",
			"details": err.Error(),
		})
		return
	}

	if h.podcasts != nil {
		h.podcasts.Delete(name)
	}

	syncTask := tasks.NewSyncPodcastConfigTask(name, podcastConfig, h.podcastRepo)
	if err := h.scheduler.EnqueueTask(syncTask); err != nil {
		slog.Error("Error enqueueing sync task", "podcast", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to enqueue sync task",
			"details": err.Error(),
		})
		return
	}

	enqueued := []gin.H{{"id": syncTask.ID, "type": syncTask.Type}}

	if podcastConfig.Settings.Enabled {
		processTask := h.scheduler.NewProcessPodcastTask(podcastConfig)
		if err := h.scheduler.EnqueueTask(processTask); err != nil {
			slog.Error("Error enqueueing process task", "podcast", name, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to enqueue process task",
				"details": err.Error(),
			})
			return
		}
		enqueued = append(enqueued, gin.H{"id": processTask.ID, "type": processTask.Type})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Configuration reloaded and tasks enqueued successfully",
		"podcast": gin.H{
			"name": name,
			"url":  podcastConfig.URL,
		},
		"tasks": enqueued,
	})
}

// loadPodcast parses the configured feed, or returns the copy parsed within
// the cache TTL. The model is immutable so cached podcasts are shared.
func (h *Handler) loadPodcast(ctx context.Context, podcastConfig *feed.Config) (*model.Podcast, bool, error) {
	if h.podcasts != nil {
		if cached, found := h.podcasts.Get(podcastConfig.Name); found {
			return cached.(*model.Podcast), true, nil
		}
	}

	if timeout := podcastConfig.Settings.Timeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
		defer cancel()
	}

	podcast, err := h.parser.ParseSource(ctx, &loader.Source{
		SystemID: podcastConfig.URL,
		Encoding: podcastConfig.Encoding,
	})
	if err != nil {
		return nil, false, err
	}

	if h.podcasts != nil {
		h.podcasts.SetDefault(podcastConfig.Name, podcast)
	}

	return podcast, false, nil
}

func (h *Handler) notesFor(c *gin.Context) *notes.Extractor {
	if c.Query("notes") == "true" {
		return h.extractor
	}
	return nil
}

func (h *Handler) render(c *gin.Context, format view.Format, v any) {
	var buf bytes.Buffer
	if err := view.Encode(&buf, format, v); err != nil {
		slog.Error("Failed to encode response", "format", format, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode response"})
		return
	}

	contentType := "application/json; charset=utf-8"
	if format == view.FormatYAML {
		contentType = "application/yaml; charset=utf-8"
	}
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// renderFailure maps a parse failure onto a response status.
func (h *Handler) renderFailure(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case failure.IsInvalidArgument(err):
		status = http.StatusBadRequest
	case failure.IsMalformed(err), failure.IsMissingField(err):
		status = http.StatusUnprocessableEntity
	case failure.IsIO(err):
		status = http.StatusBadGateway
	}

	response := gin.H{"error": err.Error()}
	if kind := failure.KindOf(err); kind != 0 {
		response["kind"] = kind.String()
	}
	c.JSON(status, response)
}

func toStoredEpisodes(episodes []database.Episode) []storedEpisode {
	out := make([]storedEpisode, 0, len(episodes))
	for _, e := range episodes {
		se := storedEpisode{
			GUID:            e.GUID,
			Title:           e.Title,
			Link:            e.Link,
			Description:     e.Description,
			Notes:           e.Notes,
			Author:          e.Author,
			EnclosureURL:    e.EnclosureURL,
			EnclosureLength: e.EnclosureLength,
			EnclosureType:   e.EnclosureType,
			DurationSeconds: e.DurationSeconds,
			Season:          e.Season,
			EpisodeNumber:   e.EpisodeNumber,
			EpisodeType:     e.EpisodeType,
			Explicit:        e.Explicit,
		}
		if e.PublishedAt != nil {
			se.PublishedAt = e.PublishedAt.Format(time.RFC3339)
		}
		out = append(out, se)
	}
	return out
}
