package extract

import (
	"github.com/beevik/etree"

	"github.com/lysyi3m/podcast-comb/app/model"
	"github.com/lysyi3m/podcast-comb/app/namespace"
)

var rssChannelText = map[string]model.Field{
	"title":          model.FieldTitle,
	"description":    model.FieldDescription,
	"generator":      model.FieldGenerator,
	"copyright":      model.FieldCopyright,
	"managingEditor": model.FieldManagingEditor,
	"webMaster":      model.FieldWebMaster,
}

func rssChannel(el *etree.Element) []model.Value {
	if field, ok := rssChannelText[el.Tag]; ok {
		return textValue(el, field, namespace.RSS)
	}

	switch el.Tag {
	case "link":
		return uriValue(el, model.FieldLink, namespace.RSS)
	case "docs":
		return uriValue(el, model.FieldDocs, namespace.RSS)
	case "language":
		s, _ := textOf(el)
		if lang, ok := parseLanguage(s); ok {
			return one(model.FieldLanguage, namespace.RSS, lang)
		}
	case "pubDate":
		return dateValue(el, model.FieldPubDate, namespace.RSS)
	case "lastBuildDate":
		return dateValue(el, model.FieldLastBuildDate, namespace.RSS)
	case "ttl":
		return intValue(el, model.FieldTTL, namespace.RSS)
	case "image":
		return rssImage(el)
	case "category":
		return rssCategory(el)
	}
	return nil
}

var rssItemText = map[string]model.Field{
	"title":       model.FieldTitle,
	"description": model.FieldDescription,
	"author":      model.FieldAuthor,
}

func rssItem(el *etree.Element) []model.Value {
	if field, ok := rssItemText[el.Tag]; ok {
		return textValue(el, field, namespace.RSS)
	}

	switch el.Tag {
	case "link":
		return uriValue(el, model.FieldLink, namespace.RSS)
	case "comments":
		return uriValue(el, model.FieldComments, namespace.RSS)
	case "source":
		return textValue(el, model.FieldSource, namespace.RSS)
	case "pubDate":
		return dateValue(el, model.FieldPubDate, namespace.RSS)
	case "category":
		return rssCategory(el)
	case "enclosure":
		return rssEnclosure(el)
	case "guid":
		return rssGuid(el)
	}
	return nil
}

func rssImage(el *etree.Element) []model.Value {
	b := model.NewImageBuilder()
	var width, height int
	for _, child := range el.ChildElements() {
		if child.Space != "" {
			continue
		}
		s, _ := textOf(child)
		switch child.Tag {
		case "url":
			if uri, ok := parseURI(s); ok {
				b.URL(uri)
			}
		case "title":
			b.Title(s)
		case "link":
			b.Link(s)
		case "description":
			b.Description(s)
		case "width":
			width, _ = parseInt(s)
		case "height":
			height, _ = parseInt(s)
		}
	}
	image, err := b.Size(width, height).Build()
	if err != nil {
		return nil
	}
	return one(model.FieldImage, namespace.RSS, image)
}

func rssCategory(el *etree.Element) []model.Value {
	name, _ := textOf(el)
	domain, _ := attr(el, "domain")
	category, err := model.NewRSSCategory(name, domain)
	if err != nil {
		return nil
	}
	return one(model.FieldRSSCategories, namespace.RSS, category)
}

// rssEnclosure needs all three attributes; a partial enclosure is absent.
func rssEnclosure(el *etree.Element) []model.Value {
	b := model.NewEnclosureBuilder()
	if url, ok := attr(el, "url"); ok {
		b.URL(url)
	}
	if raw, ok := attr(el, "length"); ok {
		if length, ok := parseInt64(raw); ok {
			b.Length(length)
		}
	}
	if mediaType, ok := attr(el, "type"); ok {
		b.Type(mediaType)
	}
	enclosure, err := b.Build()
	if err != nil {
		return nil
	}
	return one(model.FieldEnclosure, namespace.RSS, enclosure)
}

// rssGuid accepts both isPermaLink and the isPermalink misspelling.
func rssGuid(el *etree.Element) []model.Value {
	text, _ := textOf(el)
	var isPermalink *bool
	raw, ok := attr(el, "isPermaLink")
	if !ok {
		raw, ok = attr(el, "isPermalink")
	}
	if ok {
		if b, ok := parseBool(raw); ok {
			isPermalink = &b
		}
	}
	guid, err := model.NewGuid(text, isPermalink)
	if err != nil {
		return nil
	}
	return one(model.FieldGuid, namespace.RSS, guid)
}
