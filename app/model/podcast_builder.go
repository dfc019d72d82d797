package model

import (
	"strings"
	"time"

	"github.com/lysyi3m/podcast-comb/app/failure"
)

// PodcastBuilder collects channel values and finalized episodes. Scalar
// fields keep the last value written per family; Build resolves families by
// precedence. Build always leaves the builder empty.
type PodcastBuilder struct {
	acc      *accumulator
	episodes []Episode
}

func NewPodcastBuilder() *PodcastBuilder {
	return &PodcastBuilder{acc: newAccumulator(podcastPrecedence)}
}

// Set records v. List fields append in call order.
func (b *PodcastBuilder) Set(v Value) *PodcastBuilder {
	b.acc.put(v)
	return b
}

func (b *PodcastBuilder) Apply(values ...Value) *PodcastBuilder {
	for _, v := range values {
		b.acc.put(v)
	}
	return b
}

func (b *PodcastBuilder) AddEpisode(e Episode) *PodcastBuilder {
	b.episodes = append(b.episodes, e)
	return b
}

// ApplyFrom seeds the builder with every field of p. Values set afterwards
// override the seeded ones and added episodes follow p's episodes.
func (b *PodcastBuilder) ApplyFrom(p *Podcast) *PodcastBuilder {
	if p == nil {
		return b
	}
	a := b.acc
	seedText(a, FieldTitle, p.title)
	seedText(a, FieldLink, p.link)
	seedText(a, FieldDescription, p.description)
	seedText(a, FieldLanguage, p.language)
	seedText(a, FieldGenerator, p.generator)
	seedText(a, FieldCopyright, p.copyright)
	seedText(a, FieldDocs, p.docs)
	seedText(a, FieldManagingEditor, p.managingEditor)
	seedText(a, FieldWebMaster, p.webMaster)
	seedText(a, FieldAuthor, p.author)
	seedText(a, FieldNewFeedURL, p.newFeedURL)
	if !p.pubDate.IsZero() {
		a.seed(FieldPubDate, p.pubDate)
	}
	if !p.lastBuildDate.IsZero() {
		a.seed(FieldLastBuildDate, p.lastBuildDate)
	}
	if p.ttl != nil {
		a.seed(FieldTTL, *p.ttl)
	}
	if p.image != nil {
		a.seed(FieldImage, *p.image)
	}
	if p.owner != nil {
		a.seed(FieldOwner, *p.owner)
	}
	if p.explicit {
		a.seed(FieldExplicit, true)
	}
	if p.block {
		a.seed(FieldBlock, true)
	}
	seedList(a, FieldCategories, p.categories)
	seedList(a, FieldRSSCategories, p.rssCategories)

	if it := p.itunes; it != nil {
		seedText(a, FieldSubtitle, it.subtitle)
		seedText(a, FieldKeywords, it.keywords)
		if it.showType != "" {
			a.seed(FieldShowType, it.showType)
		}
		if it.complete {
			a.seed(FieldComplete, true)
		}
	}
	if p.atom != nil {
		seedAtom(a, *p.atom)
	}
	if p.fyyd != nil {
		seedText(a, FieldFyydVerify, p.fyyd.verify)
	}
	if fp := p.feedpress; fp != nil {
		seedText(a, FieldFeedpressNewsletterID, fp.newsletterID)
		seedText(a, FieldFeedpressLocale, fp.locale)
		seedText(a, FieldFeedpressPodcastID, fp.podcastID)
		seedText(a, FieldFeedpressCSSFile, fp.cssFile)
		seedText(a, FieldFeedpressLink, fp.link)
	}
	if pi := p.podcastindex; pi != nil {
		if pi.locked != nil {
			a.seed(FieldLocked, *pi.locked)
		}
		seedList(a, FieldFunding, pi.funding)
	}

	b.episodes = append(b.episodes, p.episodes.items...)
	return b
}

func (b *PodcastBuilder) Build() (*Podcast, error) {
	defer b.reset()
	a := b.acc

	title := text(a, FieldTitle)
	if strings.TrimSpace(title) == "" {
		return nil, failure.MissingField("podcast", string(FieldTitle))
	}

	p := &Podcast{
		title:          title,
		link:           text(a, FieldLink),
		description:    text(a, FieldDescription),
		language:       text(a, FieldLanguage),
		generator:      text(a, FieldGenerator),
		copyright:      text(a, FieldCopyright),
		docs:           text(a, FieldDocs),
		managingEditor: text(a, FieldManagingEditor),
		webMaster:      text(a, FieldWebMaster),
		author:         text(a, FieldAuthor),
		newFeedURL:     text(a, FieldNewFeedURL),
		ttl:            optional[int](a, FieldTTL),
		image:          optional[Image](a, FieldImage),
		owner:          optional[Person](a, FieldOwner),
		categories:     listOf[Category](a, FieldCategories),
		rssCategories:  listOf[RSSCategory](a, FieldRSSCategories),
		episodes:       NewList(b.episodes...),
	}
	p.pubDate, _ = scalar[time.Time](a, FieldPubDate)
	p.lastBuildDate, _ = scalar[time.Time](a, FieldLastBuildDate)
	p.explicit, _ = scalar[bool](a, FieldExplicit)
	p.block, _ = scalar[bool](a, FieldBlock)

	p.itunes = buildPodcastItunes(a)
	p.atom = buildAtom(a)
	if verify := text(a, FieldFyydVerify); verify != "" {
		p.fyyd = &Fyyd{verify: verify}
	}
	p.feedpress = buildFeedpress(a)
	p.podcastindex = buildPodcastPodcastindex(a)

	return p, nil
}

func (b *PodcastBuilder) reset() {
	b.acc = newAccumulator(podcastPrecedence)
	b.episodes = nil
}

func buildPodcastItunes(a *accumulator) *PodcastItunes {
	it := PodcastItunes{
		subtitle: text(a, FieldSubtitle),
		keywords: text(a, FieldKeywords),
	}
	it.showType, _ = scalar[ShowType](a, FieldShowType)
	it.complete, _ = scalar[bool](a, FieldComplete)
	if it == (PodcastItunes{}) {
		return nil
	}
	return &it
}

func buildAtom(a *accumulator) *Atom {
	at := Atom{
		id:           text(a, FieldAtomID),
		links:        listOf[Link](a, FieldAtomLinks),
		authors:      listOf[Person](a, FieldAtomAuthors),
		contributors: listOf[Person](a, FieldAtomContributors),
	}
	if at.id == "" && at.links.IsEmpty() && at.authors.IsEmpty() && at.contributors.IsEmpty() {
		return nil
	}
	return &at
}

func seedAtom(a *accumulator, at Atom) {
	seedText(a, FieldAtomID, at.id)
	seedList(a, FieldAtomLinks, at.links)
	seedList(a, FieldAtomAuthors, at.authors)
	seedList(a, FieldAtomContributors, at.contributors)
}

func buildFeedpress(a *accumulator) *Feedpress {
	fp := Feedpress{
		newsletterID: text(a, FieldFeedpressNewsletterID),
		locale:       text(a, FieldFeedpressLocale),
		podcastID:    text(a, FieldFeedpressPodcastID),
		cssFile:      text(a, FieldFeedpressCSSFile),
		link:         text(a, FieldFeedpressLink),
	}
	if fp == (Feedpress{}) {
		return nil
	}
	return &fp
}

func buildPodcastPodcastindex(a *accumulator) *PodcastPodcastindex {
	pi := PodcastPodcastindex{
		locked:  optional[Locked](a, FieldLocked),
		funding: listOf[Funding](a, FieldFunding),
	}
	if pi.locked == nil && pi.funding.IsEmpty() {
		return nil
	}
	return &pi
}
