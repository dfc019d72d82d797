package database

import (
	"fmt"
	"time"
)

type episodeRepository struct {
	db *DB
}

func NewEpisodeRepository(db *DB) EpisodeRepository {
	return &episodeRepository{db: db}
}

const episodeColumns = `e.id, e.podcast_id, e.guid, e.title, e.link, e.description, e.content, e.notes, e.author,
	e.published_at, e.enclosure_url, e.enclosure_length, e.enclosure_type, e.duration_seconds,
	e.season, e.episode_number, e.episode_type, e.explicit, e.is_filtered, e.filter_reason,
	e.created_at, e.updated_at`

func (r *episodeRepository) UpsertEpisode(podcastName string, episode PodcastEpisode) error {
	now := time.Now().UTC()
	res, err := r.db.Exec(`
		INSERT INTO episodes (
			podcast_id, guid, title, link, description, content, notes, author, published_at,
			enclosure_url, enclosure_length, enclosure_type, duration_seconds, season, episode_number,
			episode_type, explicit, is_filtered, filter_reason, created_at, updated_at
		)
		SELECT id, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?
		FROM podcasts WHERE name = ?
		ON CONFLICT (podcast_id, guid) DO UPDATE SET
			title = excluded.title,
			link = excluded.link,
			description = excluded.description,
			content = excluded.content,
			notes = excluded.notes,
			author = excluded.author,
			published_at = excluded.published_at,
			enclosure_url = excluded.enclosure_url,
			enclosure_length = excluded.enclosure_length,
			enclosure_type = excluded.enclosure_type,
			duration_seconds = excluded.duration_seconds,
			season = excluded.season,
			episode_number = excluded.episode_number,
			episode_type = excluded.episode_type,
			explicit = excluded.explicit,
			is_filtered = excluded.is_filtered,
			filter_reason = excluded.filter_reason,
			updated_at = excluded.updated_at
	`, episode.GUID, episode.Title, episode.Link, episode.Description, episode.Content, episode.Notes,
		episode.Author, utc(episode.PublishedAt), episode.EnclosureURL, episode.EnclosureLength,
		episode.EnclosureType, episode.DurationSeconds, episode.Season, episode.EpisodeNumber,
		episode.EpisodeType, episode.Explicit, episode.IsFiltered, episode.FilterReason, now, now,
		podcastName)

	if err != nil {
		return fmt.Errorf("failed to upsert episode: %w", err)
	}

	return requireRow(res, podcastName)
}

func (r *episodeRepository) GetVisibleEpisodes(podcastName string, limit int) ([]Episode, error) {
	return r.query(`
		SELECT `+episodeColumns+`
		FROM episodes e JOIN podcasts p ON p.id = e.podcast_id
		WHERE p.name = ? AND e.is_filtered = 0
		ORDER BY COALESCE(e.published_at, e.created_at) DESC, e.id DESC
		LIMIT ?
	`, podcastName, limit)
}

func (r *episodeRepository) GetAllEpisodes(podcastName string) ([]Episode, error) {
	return r.query(`
		SELECT `+episodeColumns+`
		FROM episodes e JOIN podcasts p ON p.id = e.podcast_id
		WHERE p.name = ?
		ORDER BY COALESCE(e.published_at, e.created_at) DESC, e.id DESC
	`, podcastName)
}

func (r *episodeRepository) query(query string, args ...any) ([]Episode, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get episodes: %w", err)
	}
	defer rows.Close()

	var episodes []Episode
	for rows.Next() {
		var e Episode
		err := rows.Scan(
			&e.ID, &e.PodcastID, &e.GUID, &e.Title, &e.Link, &e.Description, &e.Content, &e.Notes, &e.Author,
			&e.PublishedAt, &e.EnclosureURL, &e.EnclosureLength, &e.EnclosureType, &e.DurationSeconds,
			&e.Season, &e.EpisodeNumber, &e.EpisodeType, &e.Explicit, &e.IsFiltered, &e.FilterReason,
			&e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan episode row: %w", err)
		}
		episodes = append(episodes, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating episode rows: %w", err)
	}

	return episodes, nil
}

// GetEpisodeStats returns total, visible and filtered episode counts.
func (r *episodeRepository) GetEpisodeStats(podcastName string) (total, visible, filtered int, err error) {
	err = r.db.QueryRow(`
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN e.is_filtered = 0 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN e.is_filtered = 1 THEN 1 ELSE 0 END), 0)
		FROM episodes e JOIN podcasts p ON p.id = e.podcast_id
		WHERE p.name = ?
	`, podcastName).Scan(&total, &visible, &filtered)

	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to get episode stats: %w", err)
	}

	return total, visible, filtered, nil
}

// PruneEpisodes keeps the newest keep episodes of a podcast and deletes the
// rest. A keep of 0 or less deletes nothing.
func (r *episodeRepository) PruneEpisodes(podcastName string, keep int) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}

	res, err := r.db.Exec(`
		DELETE FROM episodes
		WHERE podcast_id = (SELECT id FROM podcasts WHERE name = ?)
		  AND id NOT IN (
			SELECT e.id FROM episodes e JOIN podcasts p ON p.id = e.podcast_id
			WHERE p.name = ?
			ORDER BY COALESCE(e.published_at, e.created_at) DESC, e.id DESC
			LIMIT ?
		  )
	`, podcastName, podcastName, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune episodes: %w", err)
	}

	return res.RowsAffected()
}
