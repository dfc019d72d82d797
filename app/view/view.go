// Package view renders the podcast model as plain structs for JSON and YAML
// output.
package view

import (
	"log/slog"
	"time"

	"github.com/lysyi3m/podcast-comb/app/model"
	"github.com/lysyi3m/podcast-comb/app/notes"
)

type Options struct {
	// Notes fills Episode.Notes with the plain text of the show notes.
	Notes        *notes.Extractor
	MaxEpisodes  int // 0 renders every episode
	OmitEpisodes bool
}

func FromPodcast(p *model.Podcast, opts Options) Podcast {
	v := Podcast{
		Title:          p.Title(),
		Link:           p.Link(),
		Description:    p.Description(),
		Language:       p.Language(),
		PubDate:        formatTime(p.PubDate()),
		LastBuildDate:  formatTime(p.LastBuildDate()),
		Generator:      p.Generator(),
		Copyright:      p.Copyright(),
		Docs:           p.Docs(),
		ManagingEditor: p.ManagingEditor(),
		WebMaster:      p.WebMaster(),
		Image:          fromImage(p.Image()),
		Author:         p.Author(),
		Explicit:       p.Explicit(),
		Block:          p.Block(),
		NewFeedURL:     p.NewFeedURL(),
		Categories:     fromCategories(p.Categories()),
		RSSCategories:  fromRSSCategories(p.RSSCategories()),
		Atom:           fromAtom(p.Atom()),
		EpisodeCount:   p.Episodes().Len(),
	}

	if ttl, ok := p.TTL(); ok {
		v.TTL = &ttl
	}
	if owner := p.Owner(); owner != nil {
		person := fromPerson(*owner)
		v.Owner = &person
	}
	if it := p.Itunes(); it != nil {
		v.Itunes = &PodcastItunes{
			Subtitle: it.Subtitle(),
			Keywords: it.Keywords(),
			Type:     string(it.Type()),
			Complete: it.Complete(),
		}
	}
	if f := p.Fyyd(); f != nil {
		v.Fyyd = &Fyyd{Verify: f.Verify()}
	}
	if f := p.Feedpress(); f != nil {
		v.Feedpress = &Feedpress{
			NewsletterID: f.NewsletterID(),
			Locale:       f.Locale(),
			PodcastID:    f.PodcastID(),
			CSSFile:      f.CSSFile(),
			Link:         f.Link(),
		}
	}
	if pi := p.Podcastindex(); pi != nil {
		v.Podcastindex = &PodcastIndex{}
		if l := pi.Locked(); l != nil {
			v.Podcastindex.Locked = &Locked{Owner: l.Owner(), Locked: l.Locked()}
		}
		for _, f := range pi.Funding().All() {
			v.Podcastindex.Funding = append(v.Podcastindex.Funding, Funding{URL: f.URL(), Message: f.Message()})
		}
	}

	if opts.OmitEpisodes {
		return v
	}
	for i, e := range p.Episodes().All() {
		if opts.MaxEpisodes > 0 && i >= opts.MaxEpisodes {
			break
		}
		v.Episodes = append(v.Episodes, FromEpisode(e, opts))
	}

	return v
}

func FromEpisode(e model.Episode, opts Options) Episode {
	v := Episode{
		Title:         e.Title(),
		Link:          e.Link(),
		Description:   e.Description(),
		Content:       e.Content(),
		Author:        e.Author(),
		PubDate:       formatTime(e.PubDate()),
		Updated:       formatTime(e.Updated()),
		Comments:      e.Comments(),
		Source:        e.Source(),
		EpisodeType:   string(e.EpisodeType()),
		Explicit:      e.Explicit(),
		Block:         e.Block(),
		Image:         fromImage(e.Image()),
		RSSCategories: fromRSSCategories(e.RSSCategories()),
		Atom:          fromAtom(e.Atom()),
	}

	if g := e.Guid(); g != nil {
		v.Guid = &Guid{Text: g.Text()}
		if permalink, ok := g.IsPermalink(); ok {
			v.Guid.IsPermalink = &permalink
		}
	}
	if enc := e.Enclosure(); enc != nil {
		v.Enclosure = &Enclosure{URL: enc.URL(), Length: enc.Length(), Type: enc.Type()}
	}
	if d, ok := e.Duration(); ok {
		seconds := int64(d / time.Second)
		v.Duration = &seconds
	}
	if season, ok := e.Season(); ok {
		v.Season = &season
	}
	if number, ok := e.Number(); ok {
		v.Number = &number
	}
	if it := e.Itunes(); it != nil {
		v.Subtitle = it.Subtitle()
		v.Keywords = it.Keywords()
	}
	if pi := e.Podcastindex(); pi != nil {
		if c := pi.Chapters(); c != nil {
			v.Chapters = &Chapters{URL: c.URL(), Type: c.Type()}
		}
		for _, s := range pi.Soundbites().All() {
			v.Soundbites = append(v.Soundbites, Soundbite{
				StartTime: s.StartTime().Seconds(),
				Duration:  s.Duration().Seconds(),
				Title:     s.Title(),
			})
		}
		for _, t := range pi.Transcripts().All() {
			v.Transcripts = append(v.Transcripts, Transcript{URL: t.URL(), Type: t.Type(), Language: t.Language(), Rel: t.Rel()})
		}
	}
	if pl := e.Podlove(); pl != nil {
		for _, c := range pl.SimpleChapters().All() {
			v.SimpleChapters = append(v.SimpleChapters, SimpleChapter{Start: c.Start(), Title: c.Title(), Href: c.Href(), Image: c.Image()})
		}
	}
	if b := e.Bitlove(); b != nil {
		v.BitloveGuid = b.Guid()
	}

	if opts.Notes != nil {
		html := e.Content()
		if html == "" {
			html = e.Description()
		}
		if html != "" {
			text, err := opts.Notes.Run(html)
			if err != nil {
				slog.Debug("Failed to extract notes", "episode", e.Title(), "error", err)
			}
			v.Notes = text
		}
	}

	return v
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func fromImage(img *model.Image) *Image {
	if img == nil {
		return nil
	}
	return &Image{
		URL:         img.URL(),
		Title:       img.Title(),
		Link:        img.Link(),
		Description: img.Description(),
		Width:       img.Width(),
		Height:      img.Height(),
	}
}

func fromPerson(p model.Person) Person {
	return Person{Name: p.Name(), Email: p.Email(), URI: p.URI()}
}

func fromCategories(categories model.List[model.Category]) []Category {
	var out []Category
	for _, c := range categories.All() {
		out = append(out, Category{Name: c.Name(), Subcategories: fromCategories(c.Subcategories())})
	}
	return out
}

func fromRSSCategories(categories model.List[model.RSSCategory]) []RSSCategory {
	var out []RSSCategory
	for _, c := range categories.All() {
		out = append(out, RSSCategory{Name: c.Name(), Domain: c.Domain()})
	}
	return out
}

func fromAtom(a *model.Atom) *Atom {
	if a == nil {
		return nil
	}
	v := &Atom{ID: a.ID()}
	for _, l := range a.Links().All() {
		v.Links = append(v.Links, Link{
			Href:     l.Href(),
			Rel:      l.Rel(),
			Type:     l.Type(),
			Hreflang: l.Hreflang(),
			Title:    l.Title(),
			Length:   l.Length(),
		})
	}
	for _, p := range a.Authors().All() {
		v.Authors = append(v.Authors, fromPerson(p))
	}
	for _, p := range a.Contributors().All() {
		v.Contributors = append(v.Contributors, fromPerson(p))
	}
	return v
}
