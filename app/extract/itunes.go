package extract

import (
	"github.com/beevik/etree"

	"github.com/lysyi3m/podcast-comb/app/model"
	"github.com/lysyi3m/podcast-comb/app/namespace"
)

func itunesChannel(el *etree.Element) []model.Value {
	switch el.Tag {
	case "title":
		return textValue(el, model.FieldTitle, namespace.Itunes)
	case "subtitle":
		return textValue(el, model.FieldSubtitle, namespace.Itunes)
	case "summary":
		return textValue(el, model.FieldDescription, namespace.Itunes)
	case "author":
		return textValue(el, model.FieldAuthor, namespace.Itunes)
	case "keywords":
		return textValue(el, model.FieldKeywords, namespace.Itunes)
	case "new-feed-url":
		return uriValue(el, model.FieldNewFeedURL, namespace.Itunes)
	case "image":
		return hrefImage(el, namespace.Itunes)
	case "explicit":
		return boolValue(el, model.FieldExplicit, namespace.Itunes)
	case "block":
		return boolValue(el, model.FieldBlock, namespace.Itunes)
	case "complete":
		return boolValue(el, model.FieldComplete, namespace.Itunes)
	case "type":
		s, _ := textOf(el)
		if showType, ok := model.ParseShowType(s); ok {
			return one(model.FieldShowType, namespace.Itunes, showType)
		}
	case "owner":
		return itunesOwner(el)
	case "category":
		if category, ok := itunesCategory(el); ok {
			return one(model.FieldCategories, namespace.Itunes, category)
		}
	}
	return nil
}

func itunesItem(el *etree.Element) []model.Value {
	switch el.Tag {
	case "title":
		return textValue(el, model.FieldTitle, namespace.Itunes)
	case "subtitle":
		return textValue(el, model.FieldSubtitle, namespace.Itunes)
	case "summary":
		return textValue(el, model.FieldDescription, namespace.Itunes)
	case "author":
		return textValue(el, model.FieldAuthor, namespace.Itunes)
	case "keywords":
		return textValue(el, model.FieldKeywords, namespace.Itunes)
	case "image":
		return hrefImage(el, namespace.Itunes)
	case "explicit":
		return boolValue(el, model.FieldExplicit, namespace.Itunes)
	case "block":
		return boolValue(el, model.FieldBlock, namespace.Itunes)
	case "season":
		return positiveInt(el, model.FieldSeason, namespace.Itunes)
	case "episode":
		return positiveInt(el, model.FieldEpisode, namespace.Itunes)
	case "duration":
		s, _ := textOf(el)
		if d, ok := parseDuration(s); ok {
			return one(model.FieldDuration, namespace.Itunes, d)
		}
	case "episodeType":
		s, _ := textOf(el)
		if episodeType, ok := model.ParseEpisodeType(s); ok {
			return one(model.FieldEpisodeType, namespace.Itunes, episodeType)
		}
	}
	return nil
}

func itunesOwner(el *etree.Element) []model.Value {
	b := model.NewPersonBuilder()
	for _, child := range el.ChildElements() {
		if child.NamespaceURI() != namespace.ItunesURI {
			continue
		}
		s, _ := textOf(child)
		switch child.Tag {
		case "name":
			b.Name(s)
		case "email":
			b.Email(s)
		}
	}
	owner, err := b.Build()
	if err != nil {
		return nil
	}
	return one(model.FieldOwner, namespace.Itunes, owner)
}

// itunesCategory reads the text attribute and nested itunes:category
// children, which may nest to any depth.
func itunesCategory(el *etree.Element) (model.Category, bool) {
	name, _ := attr(el, "text")
	b := model.NewCategoryBuilder().Name(name)
	for _, child := range el.ChildElements() {
		if child.Tag != "category" || child.NamespaceURI() != namespace.ItunesURI {
			continue
		}
		if sub, ok := itunesCategory(child); ok {
			b.AddSubcategory(sub)
		}
	}
	category, err := b.Build()
	if err != nil {
		return model.Category{}, false
	}
	return category, true
}

func positiveInt(el *etree.Element, field model.Field, family namespace.Family) []model.Value {
	s, _ := textOf(el)
	if n, ok := parseInt(s); ok && n > 0 {
		return one(field, family, n)
	}
	return nil
}
