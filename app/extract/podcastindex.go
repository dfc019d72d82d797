package extract

import (
	"time"

	"github.com/beevik/etree"

	"github.com/lysyi3m/podcast-comb/app/model"
	"github.com/lysyi3m/podcast-comb/app/namespace"
)

func podcastindexChannel(el *etree.Element) []model.Value {
	switch el.Tag {
	case "locked":
		owner, _ := attr(el, "owner")
		s, _ := textOf(el)
		locked, ok := parseBool(s)
		if !ok {
			return nil
		}
		value, err := model.NewLocked(owner, locked)
		if err != nil {
			return nil
		}
		return one(model.FieldLocked, namespace.Podcastindex, value)
	case "funding":
		url, _ := attr(el, "url")
		message, _ := textOf(el)
		funding, err := model.NewFunding(url, message)
		if err != nil {
			return nil
		}
		return one(model.FieldFunding, namespace.Podcastindex, funding)
	}
	return nil
}

func podcastindexItem(el *etree.Element) []model.Value {
	switch el.Tag {
	case "chapters":
		url, _ := attr(el, "url")
		mediaType, _ := attr(el, "type")
		chapters, err := model.NewChapters(url, mediaType)
		if err != nil {
			return nil
		}
		return one(model.FieldChapters, namespace.Podcastindex, chapters)
	case "soundbite":
		return podcastindexSoundbite(el)
	case "transcript":
		url, _ := attr(el, "url")
		mediaType, _ := attr(el, "type")
		lang, _ := attr(el, "language")
		if canonical, ok := parseLanguage(lang); ok {
			lang = canonical
		}
		rel, _ := attr(el, "rel")
		transcript, err := model.NewTranscript(url, mediaType, lang, rel)
		if err != nil {
			return nil
		}
		return one(model.FieldTranscripts, namespace.Podcastindex, transcript)
	case "season":
		return positiveInt(el, model.FieldSeason, namespace.Podcastindex)
	case "episode":
		return positiveInt(el, model.FieldEpisode, namespace.Podcastindex)
	}
	return nil
}

// Soundbite times are decimal seconds.
func podcastindexSoundbite(el *etree.Element) []model.Value {
	rawStart, ok := attr(el, "startTime")
	if !ok {
		return nil
	}
	rawDuration, ok := attr(el, "duration")
	if !ok {
		return nil
	}
	start, ok := parseSeconds(rawStart)
	if !ok {
		return nil
	}
	duration, ok := parseSeconds(rawDuration)
	if !ok {
		return nil
	}
	title, _ := textOf(el)
	soundbite, err := model.NewSoundbite(start, duration, title)
	if err != nil {
		return nil
	}
	return one(model.FieldSoundbites, namespace.Podcastindex, soundbite)
}

// parseSeconds differs from parseDuration by allowing negative input, which
// the soundbite validation rejects explicitly.
func parseSeconds(s string) (time.Duration, bool) {
	if len(s) > 0 && s[0] == '-' {
		d, ok := parseDuration(s[1:])
		return -d, ok
	}
	return parseDuration(s)
}
