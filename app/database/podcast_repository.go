package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type podcastRepository struct {
	db *DB
}

func NewPodcastRepository(db *DB) PodcastRepository {
	return &podcastRepository{db: db}
}

const podcastColumns = `id, name, feed_url, link, title, description, author, image_url, language,
	explicit, new_feed_url, last_fetched_at, next_fetch_at, podcast_published_at, created_at, updated_at`

func scanPodcast(row interface{ Scan(...any) error }) (*Podcast, error) {
	var p Podcast
	err := row.Scan(
		&p.ID, &p.Name, &p.FeedURL, &p.Link, &p.Title, &p.Description, &p.Author, &p.ImageURL, &p.Language,
		&p.Explicit, &p.NewFeedURL, &p.LastFetchedAt, &p.NextFetchAt, &p.PodcastPublishedAt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPodcast returns nil without an error when no podcast has that name.
func (r *podcastRepository) GetPodcast(name string) (*Podcast, error) {
	row := r.db.QueryRow(`SELECT `+podcastColumns+` FROM podcasts WHERE name = ?`, name)

	p, err := scanPodcast(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get podcast: %w", err)
	}

	return p, nil
}

func (r *podcastRepository) GetPodcasts() ([]Podcast, error) {
	rows, err := r.db.Query(`SELECT ` + podcastColumns + ` FROM podcasts ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to get podcasts: %w", err)
	}
	defer rows.Close()

	var podcasts []Podcast
	for rows.Next() {
		p, err := scanPodcast(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan podcast row: %w", err)
		}
		podcasts = append(podcasts, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating podcast rows: %w", err)
	}

	return podcasts, nil
}

func (r *podcastRepository) GetPodcastCount() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM podcasts").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get podcast count: %w", err)
	}
	return count, nil
}

// UpsertPodcast registers a subscription. Changing the URL of an existing
// podcast schedules it for an immediate fetch.
func (r *podcastRepository) UpsertPodcast(name, feedURL string) error {
	now := time.Now().UTC()
	_, err := r.db.Exec(`
		INSERT INTO podcasts (name, feed_url, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			next_fetch_at = CASE WHEN podcasts.feed_url <> excluded.feed_url THEN NULL ELSE podcasts.next_fetch_at END,
			feed_url = excluded.feed_url,
			updated_at = excluded.updated_at
	`, name, feedURL, now, now)

	if err != nil {
		return fmt.Errorf("failed to upsert podcast: %w", err)
	}

	return nil
}

func (r *podcastRepository) UpdatePodcastMetadata(name string, meta PodcastMetadata, nextFetch time.Time) error {
	now := time.Now().UTC()
	res, err := r.db.Exec(`
		UPDATE podcasts
		SET title = ?, link = ?, description = ?, author = ?, image_url = ?, language = ?,
		    explicit = ?, new_feed_url = ?, podcast_published_at = ?,
		    last_fetched_at = ?, next_fetch_at = ?, updated_at = ?
		WHERE name = ?
	`, meta.Title, meta.Link, meta.Description, meta.Author, meta.ImageURL, meta.Language,
		meta.Explicit, meta.NewFeedURL, utc(meta.PublishedAt),
		now, nextFetch.UTC(), now, name)

	if err != nil {
		return fmt.Errorf("failed to update podcast metadata: %w", err)
	}

	return requireRow(res, name)
}

func (r *podcastRepository) UpdateNextFetch(name string, nextFetch time.Time) error {
	res, err := r.db.Exec(`
		UPDATE podcasts
		SET next_fetch_at = ?, last_fetched_at = ?
		WHERE name = ?
	`, nextFetch.UTC(), time.Now().UTC(), name)

	if err != nil {
		return fmt.Errorf("failed to update next fetch time: %w", err)
	}

	return requireRow(res, name)
}

func requireRow(res sql.Result, name string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("podcast '%s' not found", name)
	}
	return nil
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
