package namespace

import "strings"

// Family is a closed set of the feed dialects and vendor extensions the
// router knows how to map.
type Family int

const (
	RSS Family = iota + 1
	Atom
	Content
	Itunes
	Googleplay
	Podcastindex
	Podlove
	Fyyd
	Feedpress
	Bitlove
)

var families = []Family{RSS, Atom, Content, Itunes, Googleplay, Podcastindex, Podlove, Fyyd, Feedpress, Bitlove}

func Families() []Family {
	out := make([]Family, len(families))
	copy(out, families)
	return out
}

func (f Family) String() string {
	switch f {
	case RSS:
		return "rss"
	case Atom:
		return "atom"
	case Content:
		return "content"
	case Itunes:
		return "itunes"
	case Googleplay:
		return "googleplay"
	case Podcastindex:
		return "podcast"
	case Podlove:
		return "psc"
	case Fyyd:
		return "fyyd"
	case Feedpress:
		return "feedpress"
	case Bitlove:
		return "bitlove"
	default:
		return "unknown"
	}
}

const (
	AtomURI         = "http://www.w3.org/2005/Atom"
	ContentURI      = "http://purl.org/rss/1.0/modules/content/"
	ItunesURI       = "http://www.itunes.com/dtds/podcast-1.0.dtd"
	GoogleplayURI   = "http://www.google.com/schemas/play-podcasts/1.0"
	PodcastindexURI = "https://podcastindex.org/namespace/1.0"
	PodloveURI      = "http://podlove.org/simple-chapters"
	FyydURI         = "https://fyyd.de/fyyd-ns/"
	FeedpressURI    = "https://feed.press/xmlns"
	BitloveURI      = "http://bitlove.org"
)

// Elements without a namespace belong to RSS 2.0.
var byURI = map[string]Family{
	"":              RSS,
	AtomURI:         Atom,
	ContentURI:      Content,
	ItunesURI:       Itunes,
	GoogleplayURI:   Googleplay,
	PodcastindexURI: Podcastindex,
	PodloveURI:      Podlove,
	FyydURI:         Fyyd,
	FeedpressURI:    Feedpress,
	BitloveURI:      Bitlove,

	// Spellings seen in published feeds.
	"https://www.google.com/schemas/play-podcasts/1.0":                            Googleplay,
	"https://github.com/Podcastindex-org/podcast-namespace/blob/main/docs/1.0.md": Podcastindex,
	"http://podlove.org/simple-chapters/":                                         Podlove,
}

// Resolve maps a namespace URI to its family. Unknown URIs report false.
func Resolve(uri string) (Family, bool) {
	f, ok := byURI[strings.TrimSpace(uri)]
	return f, ok
}

func (f Family) URI() string {
	switch f {
	case RSS:
		return ""
	case Atom:
		return AtomURI
	case Content:
		return ContentURI
	case Itunes:
		return ItunesURI
	case Googleplay:
		return GoogleplayURI
	case Podcastindex:
		return PodcastindexURI
	case Podlove:
		return PodloveURI
	case Fyyd:
		return FyydURI
	case Feedpress:
		return FeedpressURI
	case Bitlove:
		return BitloveURI
	default:
		return ""
	}
}

// Dialect is the base syndication format of a document.
type Dialect int

const (
	DialectRSS Dialect = iota + 1
	DialectAtom
)

func (d Dialect) String() string {
	switch d {
	case DialectRSS:
		return "RSS 2.0"
	case DialectAtom:
		return "Atom 1.0"
	default:
		return "unknown"
	}
}
