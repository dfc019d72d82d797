package model

import "time"

// Episode is the immutable result of mapping an RSS <item> or an Atom <entry>.
type Episode struct {
	title         string
	link          string
	description   string
	content       string
	author        string
	pubDate       time.Time
	updated       time.Time
	guid          *Guid
	comments      string
	source        string
	enclosure     *Enclosure
	duration      *time.Duration
	season        *int
	number        *int
	episodeType   EpisodeType
	explicit      bool
	block         bool
	image         *Image
	rssCategories List[RSSCategory]

	itunes       *EpisodeItunes
	atom         *Atom
	podcastindex *EpisodePodcastindex
	podlove      *Podlove
	bitlove      *Bitlove
}

func (e Episode) Title() string            { return e.title }
func (e Episode) Link() string             { return e.link }
func (e Episode) Description() string      { return e.description }
func (e Episode) Content() string          { return e.content }
func (e Episode) Author() string           { return e.author }
func (e Episode) PubDate() time.Time       { return e.pubDate }
func (e Episode) Updated() time.Time       { return e.updated }
func (e Episode) Comments() string         { return e.comments }
func (e Episode) Source() string           { return e.source }
func (e Episode) EpisodeType() EpisodeType { return e.episodeType }
func (e Episode) Explicit() bool           { return e.explicit }
func (e Episode) Block() bool              { return e.block }

func (e Episode) RSSCategories() List[RSSCategory] { return e.rssCategories }

func (e Episode) Guid() *Guid                        { return copyOf(e.guid) }
func (e Episode) Enclosure() *Enclosure              { return copyOf(e.enclosure) }
func (e Episode) Image() *Image                      { return copyOf(e.image) }
func (e Episode) Itunes() *EpisodeItunes             { return copyOf(e.itunes) }
func (e Episode) Atom() *Atom                        { return copyOf(e.atom) }
func (e Episode) Podcastindex() *EpisodePodcastindex { return copyOf(e.podcastindex) }
func (e Episode) Podlove() *Podlove                  { return copyOf(e.podlove) }
func (e Episode) Bitlove() *Bitlove                  { return copyOf(e.bitlove) }

func (e Episode) Duration() (time.Duration, bool) {
	if e.duration == nil {
		return 0, false
	}
	return *e.duration, true
}

func (e Episode) Season() (int, bool) {
	if e.season == nil {
		return 0, false
	}
	return *e.season, true
}

// Number is the episode number within its season.
func (e Episode) Number() (int, bool) {
	if e.number == nil {
		return 0, false
	}
	return *e.number, true
}

type EpisodeItunes struct {
	subtitle string
	keywords string
}

func (i EpisodeItunes) Subtitle() string { return i.subtitle }
func (i EpisodeItunes) Keywords() string { return i.keywords }

type EpisodePodcastindex struct {
	chapters    *Chapters
	soundbites  List[Soundbite]
	transcripts List[Transcript]
}

func (p EpisodePodcastindex) Chapters() *Chapters           { return copyOf(p.chapters) }
func (p EpisodePodcastindex) Soundbites() List[Soundbite]   { return p.soundbites }
func (p EpisodePodcastindex) Transcripts() List[Transcript] { return p.transcripts }

type Podlove struct {
	simpleChapters List[SimpleChapter]
}

func (p Podlove) SimpleChapters() List[SimpleChapter] { return p.simpleChapters }

type Bitlove struct {
	guid string
}

func (b Bitlove) Guid() string { return b.guid }
