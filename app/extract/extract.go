// Package extract turns single elements of a feed document into candidate
// model values. Extractors never fail: content that cannot be coerced is
// reported as absent by returning no value for it.
package extract

import (
	"github.com/beevik/etree"

	"github.com/lysyi3m/podcast-comb/app/model"
	"github.com/lysyi3m/podcast-comb/app/namespace"
)

// Channel maps a direct child of <channel> (or of an Atom <feed>) to podcast values.
func Channel(family namespace.Family, el *etree.Element) []model.Value {
	switch family {
	case namespace.RSS:
		return rssChannel(el)
	case namespace.Atom:
		return atomChannel(el)
	case namespace.Itunes:
		return itunesChannel(el)
	case namespace.Googleplay:
		return googleplayChannel(el)
	case namespace.Podcastindex:
		return podcastindexChannel(el)
	case namespace.Fyyd:
		return fyydChannel(el)
	case namespace.Feedpress:
		return feedpressChannel(el)
	}
	return nil
}

// Item maps a direct child of <item> (or of an Atom <entry>) to episode values.
func Item(family namespace.Family, el *etree.Element) []model.Value {
	switch family {
	case namespace.RSS:
		return rssItem(el)
	case namespace.Atom:
		return atomItem(el)
	case namespace.Content:
		return contentItem(el)
	case namespace.Itunes:
		return itunesItem(el)
	case namespace.Googleplay:
		return googleplayItem(el)
	case namespace.Podcastindex:
		return podcastindexItem(el)
	case namespace.Podlove:
		return podloveItem(el)
	}
	return nil
}

// ItemAttribute maps a namespaced attribute found on a child of an item.
func ItemAttribute(family namespace.Family, owner *etree.Element, a etree.Attr) []model.Value {
	switch family {
	case namespace.Bitlove:
		return bitloveAttribute(owner, a)
	}
	return nil
}

func one(field model.Field, family namespace.Family, data any) []model.Value {
	return []model.Value{{Field: field, Family: family, Data: data}}
}

// textValue emits the element text for field, or nothing when it is empty.
func textValue(el *etree.Element, field model.Field, family namespace.Family) []model.Value {
	if s, ok := textOf(el); ok {
		return one(field, family, s)
	}
	return nil
}

func uriValue(el *etree.Element, field model.Field, family namespace.Family) []model.Value {
	s, _ := textOf(el)
	if uri, ok := parseURI(s); ok {
		return one(field, family, uri)
	}
	return nil
}

func dateValue(el *etree.Element, field model.Field, family namespace.Family) []model.Value {
	s, _ := textOf(el)
	if t, ok := parseDate(s); ok {
		return one(field, family, t)
	}
	return nil
}

func boolValue(el *etree.Element, field model.Field, family namespace.Family) []model.Value {
	s, _ := textOf(el)
	if b, ok := parseBool(s); ok {
		return one(field, family, b)
	}
	return nil
}

func intValue(el *etree.Element, field model.Field, family namespace.Family) []model.Value {
	s, _ := textOf(el)
	if n, ok := parseInt(s); ok {
		return one(field, family, n)
	}
	return nil
}

// hrefImage reads the href attribute used by the iTunes and Google Play
// image elements.
func hrefImage(el *etree.Element, family namespace.Family) []model.Value {
	href, _ := attr(el, "href")
	uri, ok := parseURI(href)
	if !ok {
		return nil
	}
	image, err := model.NewImageBuilder().URL(uri).Build()
	if err != nil {
		return nil
	}
	return one(model.FieldImage, family, image)
}
