package extract

import (
	"github.com/beevik/etree"

	"github.com/lysyi3m/podcast-comb/app/model"
	"github.com/lysyi3m/podcast-comb/app/namespace"
)

func contentItem(el *etree.Element) []model.Value {
	if el.Tag == "encoded" {
		return textValue(el, model.FieldContent, namespace.Content)
	}
	return nil
}

// podloveItem reads psc:chapters; chapters missing start or title are skipped.
func podloveItem(el *etree.Element) []model.Value {
	if el.Tag != "chapters" {
		return nil
	}
	var out []model.Value
	for _, child := range el.ChildElements() {
		if child.Tag != "chapter" {
			continue
		}
		if family, ok := namespace.Resolve(child.NamespaceURI()); !ok || family != namespace.Podlove {
			continue
		}
		start, _ := attr(child, "start")
		title, _ := attr(child, "title")
		href, _ := attr(child, "href")
		image, _ := attr(child, "image")
		chapter, err := model.NewSimpleChapter(start, title, href, image)
		if err != nil {
			continue
		}
		out = append(out, model.Value{Field: model.FieldSimpleChapters, Family: namespace.Podlove, Data: chapter})
	}
	return out
}

func fyydChannel(el *etree.Element) []model.Value {
	if el.Tag == "verify" {
		return textValue(el, model.FieldFyydVerify, namespace.Fyyd)
	}
	return nil
}

var feedpressFields = map[string]model.Field{
	"newsletterId": model.FieldFeedpressNewsletterID,
	"locale":       model.FieldFeedpressLocale,
	"podcastId":    model.FieldFeedpressPodcastID,
	"cssFile":      model.FieldFeedpressCSSFile,
	"link":         model.FieldFeedpressLink,
}

func feedpressChannel(el *etree.Element) []model.Value {
	if field, ok := feedpressFields[el.Tag]; ok {
		return textValue(el, field, namespace.Feedpress)
	}
	return nil
}

// Bitlove adds a bitlove:guid attribute to the RSS <enclosure>.
func bitloveAttribute(owner *etree.Element, a etree.Attr) []model.Value {
	if owner.Tag != "enclosure" || a.Key != "guid" {
		return nil
	}
	if a.Value == "" {
		return nil
	}
	return one(model.FieldBitloveGuid, namespace.Bitlove, a.Value)
}
