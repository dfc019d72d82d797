package model

import (
	"strings"
	"time"

	"github.com/lysyi3m/podcast-comb/app/failure"
)

// Image is a channel or episode artwork reference.
type Image struct {
	url         string
	title       string
	link        string
	description string
	width       int
	height      int
}

func (i Image) URL() string         { return i.url }
func (i Image) Title() string       { return i.title }
func (i Image) Link() string        { return i.link }
func (i Image) Description() string { return i.description }

// Width and Height are zero when the feed did not state them.
func (i Image) Width() int  { return i.width }
func (i Image) Height() int { return i.height }

// Person is an author, contributor or owner.
type Person struct {
	name  string
	email string
	uri   string
}

func (p Person) Name() string  { return p.name }
func (p Person) Email() string { return p.email }
func (p Person) URI() string   { return p.uri }

// Category is a directory category with its ordered subcategories.
type Category struct {
	name          string
	subcategories List[Category]
}

func (c Category) Name() string                  { return c.name }
func (c Category) Subcategories() List[Category] { return c.subcategories }

// Enclosure is the primary media file of an episode.
type Enclosure struct {
	url       string
	length    int64
	mediaType string
}

func (e Enclosure) URL() string   { return e.url }
func (e Enclosure) Length() int64 { return e.length }
func (e Enclosure) Type() string  { return e.mediaType }

type Guid struct {
	text        string
	isPermalink *bool
}

func NewGuid(text string, isPermalink *bool) (Guid, error) {
	if strings.TrimSpace(text) == "" {
		return Guid{}, failure.MissingField("guid", "text")
	}
	g := Guid{text: text}
	if isPermalink != nil {
		v := *isPermalink
		g.isPermalink = &v
	}
	return g, nil
}

func (g Guid) Text() string { return g.text }

// IsPermalink reports the isPermaLink attribute and whether it was present.
func (g Guid) IsPermalink() (bool, bool) {
	if g.isPermalink == nil {
		return false, false
	}
	return *g.isPermalink, true
}

// Link is an Atom link element.
type Link struct {
	href     string
	rel      string
	mimeType string
	hreflang string
	title    string
	length   string
}

func NewLink(href, rel, mimeType, hreflang, title, length string) (Link, error) {
	if strings.TrimSpace(href) == "" {
		return Link{}, failure.MissingField("link", "href")
	}
	return Link{href: href, rel: rel, mimeType: mimeType, hreflang: hreflang, title: title, length: length}, nil
}

func (l Link) Href() string     { return l.href }
func (l Link) Rel() string      { return l.rel }
func (l Link) Type() string     { return l.mimeType }
func (l Link) Hreflang() string { return l.hreflang }
func (l Link) Title() string    { return l.title }
func (l Link) Length() string   { return l.length }

// RSSCategory is a free-text RSS <category> with its optional domain.
type RSSCategory struct {
	name   string
	domain string
}

func NewRSSCategory(name, domain string) (RSSCategory, error) {
	if strings.TrimSpace(name) == "" {
		return RSSCategory{}, failure.MissingField("category", "name")
	}
	return RSSCategory{name: name, domain: domain}, nil
}

func (c RSSCategory) Name() string   { return c.name }
func (c RSSCategory) Domain() string { return c.domain }

// Locked is podcast:locked.
type Locked struct {
	owner  string
	locked bool
}

func NewLocked(owner string, locked bool) (Locked, error) {
	if strings.TrimSpace(owner) == "" {
		return Locked{}, failure.MissingField("locked", "owner")
	}
	return Locked{owner: owner, locked: locked}, nil
}

func (l Locked) Owner() string { return l.owner }
func (l Locked) Locked() bool  { return l.locked }

// Funding is podcast:funding.
type Funding struct {
	url     string
	message string
}

func NewFunding(url, message string) (Funding, error) {
	if strings.TrimSpace(url) == "" {
		return Funding{}, failure.MissingField("funding", "url")
	}
	if strings.TrimSpace(message) == "" {
		return Funding{}, failure.MissingField("funding", "message")
	}
	return Funding{url: url, message: message}, nil
}

func (f Funding) URL() string     { return f.url }
func (f Funding) Message() string { return f.message }

// Soundbite is podcast:soundbite.
type Soundbite struct {
	start    time.Duration
	duration time.Duration
	title    string
}

func NewSoundbite(start, duration time.Duration, title string) (Soundbite, error) {
	if start < 0 {
		return Soundbite{}, failure.MissingField("soundbite", "startTime")
	}
	if duration <= 0 {
		return Soundbite{}, failure.MissingField("soundbite", "duration")
	}
	return Soundbite{start: start, duration: duration, title: title}, nil
}

func (s Soundbite) StartTime() time.Duration { return s.start }
func (s Soundbite) Duration() time.Duration  { return s.duration }
func (s Soundbite) Title() string            { return s.title }

// Transcript is podcast:transcript.
type Transcript struct {
	url      string
	mimeType string
	language string
	rel      string
}

func NewTranscript(url, mimeType, language, rel string) (Transcript, error) {
	if strings.TrimSpace(url) == "" {
		return Transcript{}, failure.MissingField("transcript", "url")
	}
	if strings.TrimSpace(mimeType) == "" {
		return Transcript{}, failure.MissingField("transcript", "type")
	}
	return Transcript{url: url, mimeType: mimeType, language: language, rel: rel}, nil
}

func (t Transcript) URL() string      { return t.url }
func (t Transcript) Type() string     { return t.mimeType }
func (t Transcript) Language() string { return t.language }
func (t Transcript) Rel() string      { return t.rel }

// Chapters is podcast:chapters.
type Chapters struct {
	url      string
	mimeType string
}

func NewChapters(url, mimeType string) (Chapters, error) {
	if strings.TrimSpace(url) == "" {
		return Chapters{}, failure.MissingField("chapters", "url")
	}
	if strings.TrimSpace(mimeType) == "" {
		return Chapters{}, failure.MissingField("chapters", "type")
	}
	return Chapters{url: url, mimeType: mimeType}, nil
}

func (c Chapters) URL() string  { return c.url }
func (c Chapters) Type() string { return c.mimeType }

// SimpleChapter is a Podlove psc:chapter.
type SimpleChapter struct {
	start string
	title string
	href  string
	image string
}

func NewSimpleChapter(start, title, href, image string) (SimpleChapter, error) {
	if strings.TrimSpace(start) == "" {
		return SimpleChapter{}, failure.MissingField("chapter", "start")
	}
	if strings.TrimSpace(title) == "" {
		return SimpleChapter{}, failure.MissingField("chapter", "title")
	}
	return SimpleChapter{start: start, title: title, href: href, image: image}, nil
}

func (c SimpleChapter) Start() string { return c.start }
func (c SimpleChapter) Title() string { return c.title }
func (c SimpleChapter) Href() string  { return c.href }
func (c SimpleChapter) Image() string { return c.image }
