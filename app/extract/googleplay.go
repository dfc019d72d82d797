package extract

import (
	"github.com/beevik/etree"

	"github.com/lysyi3m/podcast-comb/app/model"
	"github.com/lysyi3m/podcast-comb/app/namespace"
)

func googleplayChannel(el *etree.Element) []model.Value {
	switch el.Tag {
	case "author":
		return textValue(el, model.FieldAuthor, namespace.Googleplay)
	case "description":
		return textValue(el, model.FieldDescription, namespace.Googleplay)
	case "new-feed-url":
		return uriValue(el, model.FieldNewFeedURL, namespace.Googleplay)
	case "image":
		return hrefImage(el, namespace.Googleplay)
	case "explicit":
		return boolValue(el, model.FieldExplicit, namespace.Googleplay)
	case "block":
		return boolValue(el, model.FieldBlock, namespace.Googleplay)
	case "owner", "email":
		// Google Play identifies the owner by e-mail address only.
		s, _ := textOf(el)
		owner, err := model.NewPersonBuilder().Name(s).Email(s).Build()
		if err != nil {
			return nil
		}
		return one(model.FieldOwner, namespace.Googleplay, owner)
	case "category":
		raw, _ := attr(el, "text")
		name, ok := model.GoogleplayCategory(raw)
		if !ok {
			return nil
		}
		category, err := model.NewCategoryBuilder().Name(name).Build()
		if err != nil {
			return nil
		}
		return one(model.FieldCategories, namespace.Googleplay, category)
	}
	return nil
}

func googleplayItem(el *etree.Element) []model.Value {
	switch el.Tag {
	case "description":
		return textValue(el, model.FieldDescription, namespace.Googleplay)
	case "image":
		return hrefImage(el, namespace.Googleplay)
	case "explicit":
		return boolValue(el, model.FieldExplicit, namespace.Googleplay)
	case "block":
		return boolValue(el, model.FieldBlock, namespace.Googleplay)
	}
	return nil
}
