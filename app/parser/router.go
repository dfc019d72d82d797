package parser

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/beevik/etree"

	"github.com/lysyi3m/podcast-comb/app/extract"
	"github.com/lysyi3m/podcast-comb/app/failure"
	"github.com/lysyi3m/podcast-comb/app/model"
	"github.com/lysyi3m/podcast-comb/app/namespace"
)

// router walks one document and feeds the builders. It is created per parse.
type router struct {
	dialect namespace.Dialect
	podcast *model.PodcastBuilder
	episode *model.EpisodeBuilder
	items   int
	dropped int
}

func newRouter(dialect namespace.Dialect) *router {
	return &router{
		dialect: dialect,
		podcast: model.NewPodcastBuilder(),
		episode: model.NewEpisodeBuilder(model.PolicyFor(dialect)),
	}
}

// mapDocument is the one place every entry point ends up in.
func mapDocument(doc *etree.Document) (*model.Podcast, error) {
	root := doc.Root()
	if root == nil {
		return nil, failure.Malformed("", "", errors.New("document has no root element"))
	}

	switch {
	case root.Tag == "rss" && root.NamespaceURI() == "":
		channel := rssChild(root, "channel")
		if channel == nil {
			return nil, failure.MissingField("podcast", "channel")
		}
		return newRouter(namespace.DialectRSS).walk(channel, "item")
	case root.Tag == "feed" && root.NamespaceURI() == namespace.AtomURI:
		return newRouter(namespace.DialectAtom).walk(root, "entry")
	}

	return nil, failure.Malformed("", "", fmt.Errorf("unsupported root element <%s>", qualified(root)))
}

func rssChild(el *etree.Element, tag string) *etree.Element {
	for _, child := range el.ChildElements() {
		if child.Tag == tag && child.NamespaceURI() == "" {
			return child
		}
	}
	return nil
}

// walk visits the children of the podcast element. Children named
// episodeTag in the dialect's own namespace are episodes.
func (r *router) walk(container *etree.Element, episodeTag string) (*model.Podcast, error) {
	for _, child := range container.ChildElements() {
		family, ok := r.family(child)
		if !ok {
			continue
		}
		if child.Tag == episodeTag && family == r.base() {
			r.addEpisode(child)
			continue
		}
		r.podcast.Apply(extract.Channel(family, child)...)
	}

	podcast, err := r.podcast.Build()
	if err != nil {
		return nil, err
	}

	if r.dropped > 0 {
		slog.Warn("Episodes dropped", "podcast", podcast.Title(), "count", r.dropped)
	}

	return podcast, nil
}

func (r *router) addEpisode(item *etree.Element) {
	r.items++
	for _, child := range item.ChildElements() {
		if family, ok := r.family(child); ok {
			r.episode.Apply(extract.Item(family, child)...)
		}
		for i := range child.Attr {
			a := &child.Attr[i]
			if a.Space == "" || a.Space == "xmlns" {
				continue
			}
			if family, ok := namespace.Resolve(a.NamespaceURI()); ok {
				r.episode.Apply(extract.ItemAttribute(family, child, *a)...)
			}
		}
	}

	episode, err := r.episode.Build()
	if err != nil {
		r.dropped++
		slog.Warn("Dropping episode", "position", r.items, "error", err)
		return
	}
	r.podcast.AddEpisode(episode)
}

// family resolves the namespace of el. Un-namespaced elements only count in
// RSS documents, where they belong to the base vocabulary.
func (r *router) family(el *etree.Element) (namespace.Family, bool) {
	uri := el.NamespaceURI()
	if uri == "" && el.Space != "" {
		slog.Debug("Skipping element with undeclared prefix", "element", qualified(el))
		return 0, false
	}
	family, ok := namespace.Resolve(uri)
	if !ok {
		slog.Debug("Skipping element in unknown namespace", "element", qualified(el), "namespace", uri)
		return 0, false
	}
	if family == namespace.RSS && r.dialect != namespace.DialectRSS {
		return 0, false
	}
	return family, true
}

func (r *router) base() namespace.Family {
	if r.dialect == namespace.DialectAtom {
		return namespace.Atom
	}
	return namespace.RSS
}

func qualified(el *etree.Element) string {
	if el.Space == "" {
		return el.Tag
	}
	return el.Space + ":" + el.Tag
}
