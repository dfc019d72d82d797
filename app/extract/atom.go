package extract

import (
	"github.com/beevik/etree"

	"github.com/lysyi3m/podcast-comb/app/model"
	"github.com/lysyi3m/podcast-comb/app/namespace"
)

func atomChannel(el *etree.Element) []model.Value {
	switch el.Tag {
	case "title":
		return atomTextValue(el, model.FieldTitle, false)
	case "subtitle":
		return atomTextValue(el, model.FieldDescription, false)
	case "id":
		return textValue(el, model.FieldAtomID, namespace.Atom)
	case "rights":
		return atomTextValue(el, model.FieldCopyright, false)
	case "generator":
		return textValue(el, model.FieldGenerator, namespace.Atom)
	case "updated":
		return dateValue(el, model.FieldLastBuildDate, namespace.Atom)
	case "published":
		return dateValue(el, model.FieldPubDate, namespace.Atom)
	case "logo", "icon":
		s, _ := textOf(el)
		uri, ok := parseURI(s)
		if !ok {
			return nil
		}
		image, err := model.NewImageBuilder().URL(uri).Build()
		if err != nil {
			return nil
		}
		return one(model.FieldImage, namespace.Atom, image)
	case "link":
		return atomLink(el, false)
	case "author":
		return atomPerson(el, model.FieldAtomAuthors, true)
	case "contributor":
		return atomPerson(el, model.FieldAtomContributors, false)
	}
	return nil
}

func atomItem(el *etree.Element) []model.Value {
	switch el.Tag {
	case "title":
		return atomTextValue(el, model.FieldTitle, false)
	case "summary":
		return atomTextValue(el, model.FieldDescription, true)
	case "content":
		return atomTextValue(el, model.FieldContent, true)
	case "id":
		text, ok := textOf(el)
		if !ok {
			return nil
		}
		out := one(model.FieldAtomID, namespace.Atom, text)
		if guid, err := model.NewGuid(text, nil); err == nil {
			out = append(out, model.Value{Field: model.FieldGuid, Family: namespace.Atom, Data: guid})
		}
		return out
	case "updated":
		return dateValue(el, model.FieldUpdated, namespace.Atom)
	case "published":
		return dateValue(el, model.FieldPubDate, namespace.Atom)
	case "link":
		return atomLink(el, true)
	case "author":
		return atomPerson(el, model.FieldAtomAuthors, true)
	case "contributor":
		return atomPerson(el, model.FieldAtomContributors, false)
	}
	return nil
}

func atomTextValue(el *etree.Element, field model.Field, markup bool) []model.Value {
	if s, ok := atomText(el, markup); ok {
		return one(field, namespace.Atom, s)
	}
	return nil
}

// atomLink records every link in the Atom block. An alternate link also
// sets the entity link; inside entries a rel="enclosure" link becomes the
// enclosure, with length 0 when the feed leaves it out.
func atomLink(el *etree.Element, inEntry bool) []model.Value {
	href, _ := attr(el, "href")
	rel, _ := attr(el, "rel")
	mediaType, _ := attr(el, "type")
	hreflang, _ := attr(el, "hreflang")
	title, _ := attr(el, "title")
	length, _ := attr(el, "length")

	link, err := model.NewLink(href, rel, mediaType, hreflang, title, length)
	if err != nil {
		return nil
	}
	out := one(model.FieldAtomLinks, namespace.Atom, link)

	switch rel {
	case "", "alternate":
		if uri, ok := parseURI(href); ok {
			out = append(out, model.Value{Field: model.FieldLink, Family: namespace.Atom, Data: uri})
		}
	case "enclosure":
		if !inEntry {
			break
		}
		n, ok := parseInt64(length)
		if !ok {
			n = 0
		}
		enclosure, err := model.NewEnclosureBuilder().URL(href).Length(n).Type(mediaType).Build()
		if err == nil {
			out = append(out, model.Value{Field: model.FieldEnclosure, Family: namespace.Atom, Data: enclosure})
		}
	}
	return out
}

func atomPerson(el *etree.Element, field model.Field, setsAuthor bool) []model.Value {
	b := model.NewPersonBuilder()
	for _, child := range el.ChildElements() {
		if child.NamespaceURI() != namespace.AtomURI {
			continue
		}
		s, _ := textOf(child)
		switch child.Tag {
		case "name":
			b.Name(s)
		case "email":
			b.Email(s)
		case "uri":
			b.URI(s)
		}
	}
	person, err := b.Build()
	if err != nil {
		return nil
	}
	out := one(field, namespace.Atom, person)
	if setsAuthor {
		out = append(out, model.Value{Field: model.FieldAuthor, Family: namespace.Atom, Data: person.Name()})
	}
	return out
}
