package model

import "time"

// Podcast is the immutable result of mapping an RSS <channel> or an Atom
// <feed>. Overlapping namespace fields are already resolved; the namespace
// blocks only carry what a single family defines.
type Podcast struct {
	title          string
	link           string
	description    string
	language       string
	pubDate        time.Time
	lastBuildDate  time.Time
	generator      string
	copyright      string
	docs           string
	managingEditor string
	webMaster      string
	ttl            *int
	image          *Image
	author         string
	owner          *Person
	explicit       bool
	block          bool
	newFeedURL     string
	categories     List[Category]
	rssCategories  List[RSSCategory]
	episodes       List[Episode]

	itunes       *PodcastItunes
	atom         *Atom
	fyyd         *Fyyd
	feedpress    *Feedpress
	podcastindex *PodcastPodcastindex
}

func (p *Podcast) Title() string              { return p.title }
func (p *Podcast) Link() string               { return p.link }
func (p *Podcast) Description() string        { return p.description }
func (p *Podcast) Language() string           { return p.language }
func (p *Podcast) PubDate() time.Time         { return p.pubDate }
func (p *Podcast) LastBuildDate() time.Time   { return p.lastBuildDate }
func (p *Podcast) Generator() string          { return p.generator }
func (p *Podcast) Copyright() string          { return p.copyright }
func (p *Podcast) Docs() string               { return p.docs }
func (p *Podcast) ManagingEditor() string     { return p.managingEditor }
func (p *Podcast) WebMaster() string          { return p.webMaster }
func (p *Podcast) Author() string             { return p.author }
func (p *Podcast) Explicit() bool             { return p.explicit }
func (p *Podcast) Block() bool                { return p.block }
func (p *Podcast) NewFeedURL() string         { return p.newFeedURL }
func (p *Podcast) Categories() List[Category] { return p.categories }
func (p *Podcast) Episodes() List[Episode]    { return p.episodes }

func (p *Podcast) RSSCategories() List[RSSCategory] { return p.rssCategories }

func (p *Podcast) TTL() (int, bool) {
	if p.ttl == nil {
		return 0, false
	}
	return *p.ttl, true
}

// Image returns a copy, or nil when no family supplied artwork.
func (p *Podcast) Image() *Image {
	return copyOf(p.image)
}

func (p *Podcast) Owner() *Person {
	return copyOf(p.owner)
}

func (p *Podcast) Itunes() *PodcastItunes {
	return copyOf(p.itunes)
}

func (p *Podcast) Atom() *Atom {
	return copyOf(p.atom)
}

func (p *Podcast) Fyyd() *Fyyd {
	return copyOf(p.fyyd)
}

func (p *Podcast) Feedpress() *Feedpress {
	return copyOf(p.feedpress)
}

func (p *Podcast) Podcastindex() *PodcastPodcastindex {
	return copyOf(p.podcastindex)
}

// PodcastItunes holds channel-level iTunes fields that have no RSS
// counterpart.
type PodcastItunes struct {
	subtitle string
	keywords string
	showType ShowType
	complete bool
}

func (i PodcastItunes) Subtitle() string { return i.subtitle }
func (i PodcastItunes) Keywords() string { return i.keywords }
func (i PodcastItunes) Type() ShowType   { return i.showType }
func (i PodcastItunes) Complete() bool   { return i.complete }

// Atom holds the Atom elements of a channel or an item.
type Atom struct {
	id           string
	links        List[Link]
	authors      List[Person]
	contributors List[Person]
}

func (a Atom) ID() string                 { return a.id }
func (a Atom) Links() List[Link]          { return a.links }
func (a Atom) Authors() List[Person]      { return a.authors }
func (a Atom) Contributors() List[Person] { return a.contributors }

type Fyyd struct {
	verify string
}

func (f Fyyd) Verify() string { return f.verify }

type Feedpress struct {
	newsletterID string
	locale       string
	podcastID    string
	cssFile      string
	link         string
}

func (f Feedpress) NewsletterID() string { return f.newsletterID }
func (f Feedpress) Locale() string       { return f.locale }
func (f Feedpress) PodcastID() string    { return f.podcastID }
func (f Feedpress) CSSFile() string      { return f.cssFile }
func (f Feedpress) Link() string         { return f.link }

// PodcastPodcastindex holds channel-level podcast namespace fields.
type PodcastPodcastindex struct {
	locked  *Locked
	funding List[Funding]
}

func (p PodcastPodcastindex) Locked() *Locked        { return copyOf(p.locked) }
func (p PodcastPodcastindex) Funding() List[Funding] { return p.funding }

func copyOf[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
