package model

import (
	"strings"
	"time"

	"github.com/lysyi3m/podcast-comb/app/failure"
)

// EpisodeBuilder collects item values under a dialect Policy.
type EpisodeBuilder struct {
	policy Policy
	acc    *accumulator
}

func NewEpisodeBuilder(policy Policy) *EpisodeBuilder {
	return &EpisodeBuilder{policy: policy, acc: newAccumulator(episodePrecedence)}
}

func (b *EpisodeBuilder) Set(v Value) *EpisodeBuilder {
	b.acc.put(v)
	return b
}

func (b *EpisodeBuilder) Apply(values ...Value) *EpisodeBuilder {
	for _, v := range values {
		b.acc.put(v)
	}
	return b
}

// ApplyFrom seeds the builder with every field of e.
func (b *EpisodeBuilder) ApplyFrom(e Episode) *EpisodeBuilder {
	a := b.acc
	seedText(a, FieldTitle, e.title)
	seedText(a, FieldLink, e.link)
	seedText(a, FieldDescription, e.description)
	seedText(a, FieldContent, e.content)
	seedText(a, FieldAuthor, e.author)
	seedText(a, FieldComments, e.comments)
	seedText(a, FieldSource, e.source)
	if !e.pubDate.IsZero() {
		a.seed(FieldPubDate, e.pubDate)
	}
	if !e.updated.IsZero() {
		a.seed(FieldUpdated, e.updated)
	}
	if e.guid != nil {
		a.seed(FieldGuid, *e.guid)
	}
	if e.enclosure != nil {
		a.seed(FieldEnclosure, *e.enclosure)
	}
	if e.duration != nil {
		a.seed(FieldDuration, *e.duration)
	}
	if e.season != nil {
		a.seed(FieldSeason, *e.season)
	}
	if e.number != nil {
		a.seed(FieldEpisode, *e.number)
	}
	if e.episodeType != "" {
		a.seed(FieldEpisodeType, e.episodeType)
	}
	if e.explicit {
		a.seed(FieldExplicit, true)
	}
	if e.block {
		a.seed(FieldBlock, true)
	}
	if e.image != nil {
		a.seed(FieldImage, *e.image)
	}
	seedList(a, FieldRSSCategories, e.rssCategories)

	if e.itunes != nil {
		seedText(a, FieldSubtitle, e.itunes.subtitle)
		seedText(a, FieldKeywords, e.itunes.keywords)
	}
	if e.atom != nil {
		seedAtom(a, *e.atom)
	}
	if pi := e.podcastindex; pi != nil {
		if pi.chapters != nil {
			a.seed(FieldChapters, *pi.chapters)
		}
		seedList(a, FieldSoundbites, pi.soundbites)
		seedList(a, FieldTranscripts, pi.transcripts)
	}
	if e.podlove != nil {
		seedList(a, FieldSimpleChapters, e.podlove.simpleChapters)
	}
	if e.bitlove != nil {
		seedText(a, FieldBitloveGuid, e.bitlove.guid)
	}
	return b
}

// Build fails with a MissingRequiredFieldFailure naming the first required
// field of the policy that was never set.
func (b *EpisodeBuilder) Build() (Episode, error) {
	defer b.reset()
	a := b.acc

	e := Episode{
		title:         text(a, FieldTitle),
		link:          text(a, FieldLink),
		description:   text(a, FieldDescription),
		content:       text(a, FieldContent),
		author:        text(a, FieldAuthor),
		comments:      text(a, FieldComments),
		source:        text(a, FieldSource),
		guid:          optional[Guid](a, FieldGuid),
		enclosure:     optional[Enclosure](a, FieldEnclosure),
		duration:      optional[time.Duration](a, FieldDuration),
		season:        optional[int](a, FieldSeason),
		number:        optional[int](a, FieldEpisode),
		image:         optional[Image](a, FieldImage),
		rssCategories: listOf[RSSCategory](a, FieldRSSCategories),
	}

	for _, field := range b.policy.Required() {
		switch field {
		case FieldTitle:
			if strings.TrimSpace(e.title) == "" {
				return Episode{}, failure.MissingField("episode", string(field))
			}
		case FieldEnclosure:
			if e.enclosure == nil {
				return Episode{}, failure.MissingField("episode", string(field))
			}
		}
	}

	e.pubDate, _ = scalar[time.Time](a, FieldPubDate)
	e.updated, _ = scalar[time.Time](a, FieldUpdated)
	e.episodeType, _ = scalar[EpisodeType](a, FieldEpisodeType)
	e.explicit, _ = scalar[bool](a, FieldExplicit)
	e.block, _ = scalar[bool](a, FieldBlock)

	if it := (EpisodeItunes{subtitle: text(a, FieldSubtitle), keywords: text(a, FieldKeywords)}); it != (EpisodeItunes{}) {
		e.itunes = &it
	}
	e.atom = buildAtom(a)
	e.podcastindex = buildEpisodePodcastindex(a)
	if chapters := listOf[SimpleChapter](a, FieldSimpleChapters); !chapters.IsEmpty() {
		e.podlove = &Podlove{simpleChapters: chapters}
	}
	if guid := text(a, FieldBitloveGuid); guid != "" {
		e.bitlove = &Bitlove{guid: guid}
	}

	return e, nil
}

func (b *EpisodeBuilder) reset() {
	b.acc = newAccumulator(episodePrecedence)
}

func buildEpisodePodcastindex(a *accumulator) *EpisodePodcastindex {
	pi := EpisodePodcastindex{
		chapters:    optional[Chapters](a, FieldChapters),
		soundbites:  listOf[Soundbite](a, FieldSoundbites),
		transcripts: listOf[Transcript](a, FieldTranscripts),
	}
	if pi.chapters == nil && pi.soundbites.IsEmpty() && pi.transcripts.IsEmpty() {
		return nil
	}
	return &pi
}
