package model

import (
	"github.com/lysyi3m/podcast-comb/app/namespace"
)

// Field names one logical attribute of a podcast or an episode. Several
// namespace families may supply the same field.
type Field string

const (
	FieldTitle          Field = "title"
	FieldLink           Field = "link"
	FieldDescription    Field = "description"
	FieldLanguage       Field = "language"
	FieldPubDate        Field = "pubDate"
	FieldLastBuildDate  Field = "lastBuildDate"
	FieldGenerator      Field = "generator"
	FieldCopyright      Field = "copyright"
	FieldDocs           Field = "docs"
	FieldManagingEditor Field = "managingEditor"
	FieldWebMaster      Field = "webMaster"
	FieldTTL            Field = "ttl"
	FieldImage          Field = "image"
	FieldAuthor         Field = "author"
	FieldOwner          Field = "owner"
	FieldExplicit       Field = "explicit"
	FieldBlock          Field = "block"
	FieldNewFeedURL     Field = "newFeedUrl"
	FieldCategories     Field = "categories"
	FieldRSSCategories  Field = "rssCategories"

	FieldContent     Field = "content"
	FieldUpdated     Field = "updated"
	FieldGuid        Field = "guid"
	FieldComments    Field = "comments"
	FieldSource      Field = "source"
	FieldEnclosure   Field = "enclosure"
	FieldDuration    Field = "duration"
	FieldSeason      Field = "season"
	FieldEpisode     Field = "episode"
	FieldEpisodeType Field = "episodeType"

	FieldSubtitle Field = "subtitle"
	FieldKeywords Field = "keywords"
	FieldShowType Field = "showType"
	FieldComplete Field = "complete"

	FieldAtomID           Field = "atomId"
	FieldAtomLinks        Field = "atomLinks"
	FieldAtomAuthors      Field = "atomAuthors"
	FieldAtomContributors Field = "atomContributors"

	FieldFyydVerify Field = "fyydVerify"

	FieldFeedpressNewsletterID Field = "feedpressNewsletterId"
	FieldFeedpressLocale       Field = "feedpressLocale"
	FieldFeedpressPodcastID    Field = "feedpressPodcastId"
	FieldFeedpressCSSFile      Field = "feedpressCssFile"
	FieldFeedpressLink         Field = "feedpressLink"

	FieldLocked      Field = "locked"
	FieldFunding     Field = "funding"
	FieldChapters    Field = "chapters"
	FieldSoundbites  Field = "soundbites"
	FieldTranscripts Field = "transcripts"

	FieldSimpleChapters Field = "simpleChapters"
	FieldBitloveGuid    Field = "bitloveGuid"
)

// Fields holding ordered sequences. Setting one of them appends.
var listFields = map[Field]bool{
	FieldCategories:       true,
	FieldRSSCategories:    true,
	FieldAtomLinks:        true,
	FieldAtomAuthors:      true,
	FieldAtomContributors: true,
	FieldFunding:          true,
	FieldSoundbites:       true,
	FieldTranscripts:      true,
	FieldSimpleChapters:   true,
}

func (f Field) IsList() bool {
	return listFields[f]
}

// Value is one candidate value for a field, tagged with the family that
// produced it.
type Value struct {
	Field  Field
	Family namespace.Family
	Data   any
}

// precedence lists, per field, the families allowed to supply it from
// lowest to highest priority. Fields without an entry accept any family in
// namespace.Families order.
type precedence map[Field][]namespace.Family

var defaultOrder = namespace.Families()

func (p precedence) order(f Field) []namespace.Family {
	if families, ok := p[f]; ok {
		return families
	}
	return defaultOrder
}

var podcastPrecedence = precedence{
	FieldTitle:         {namespace.RSS, namespace.Atom, namespace.Itunes},
	FieldLink:          {namespace.RSS, namespace.Atom},
	FieldDescription:   {namespace.RSS, namespace.Atom, namespace.Itunes, namespace.Googleplay},
	FieldImage:         {namespace.RSS, namespace.Atom, namespace.Itunes, namespace.Googleplay},
	FieldAuthor:        {namespace.Atom, namespace.Itunes, namespace.Googleplay},
	FieldOwner:         {namespace.Itunes, namespace.Googleplay},
	FieldExplicit:      {namespace.Itunes, namespace.Googleplay},
	FieldBlock:         {namespace.Itunes, namespace.Googleplay},
	FieldNewFeedURL:    {namespace.Itunes, namespace.Googleplay},
	FieldCategories:    {namespace.Itunes, namespace.Googleplay},
	FieldLastBuildDate: {namespace.RSS, namespace.Atom},
}

var episodePrecedence = precedence{
	FieldTitle:       {namespace.RSS, namespace.Atom, namespace.Itunes},
	FieldDescription: {namespace.RSS, namespace.Atom, namespace.Itunes, namespace.Googleplay},
	FieldContent:     {namespace.Atom, namespace.Content},
	FieldAuthor:      {namespace.RSS, namespace.Atom, namespace.Itunes},
	FieldGuid:        {namespace.RSS, namespace.Atom},
	FieldPubDate:     {namespace.RSS, namespace.Atom},
	FieldEnclosure:   {namespace.RSS, namespace.Atom},
	FieldImage:       {namespace.Itunes, namespace.Googleplay},
	FieldExplicit:    {namespace.Itunes, namespace.Googleplay},
	FieldBlock:       {namespace.Itunes, namespace.Googleplay},
	FieldSeason:      {namespace.Itunes, namespace.Podcastindex},
	FieldEpisode:     {namespace.Itunes, namespace.Podcastindex},
}

// accumulator is the mutable working state shared by the entity builders.
// Values are kept per family so resolution follows precedence rather than
// document order.
type accumulator struct {
	prec    precedence
	scalars map[Field]map[namespace.Family]any
	lists   map[Field]map[namespace.Family][]any
	seeded  map[Field]any
}

func newAccumulator(prec precedence) *accumulator {
	return &accumulator{
		prec:    prec,
		scalars: make(map[Field]map[namespace.Family]any),
		lists:   make(map[Field]map[namespace.Family][]any),
		seeded:  make(map[Field]any),
	}
}

func (a *accumulator) put(v Value) {
	if v.Data == nil {
		return
	}
	if v.Field.IsList() {
		byFamily, ok := a.lists[v.Field]
		if !ok {
			byFamily = make(map[namespace.Family][]any)
			a.lists[v.Field] = byFamily
		}
		byFamily[v.Family] = append(byFamily[v.Family], v.Data)
		return
	}
	byFamily, ok := a.scalars[v.Field]
	if !ok {
		byFamily = make(map[namespace.Family]any)
		a.scalars[v.Field] = byFamily
	}
	byFamily[v.Family] = v.Data
}

// seed records a value copied from an existing entity. Seeded values rank
// below every family.
func (a *accumulator) seed(f Field, data any) {
	a.seeded[f] = data
}

func (a *accumulator) lookup(f Field) (any, bool) {
	order := a.prec.order(f)
	byFamily := a.scalars[f]
	for i := len(order) - 1; i >= 0; i-- {
		if v, ok := byFamily[order[i]]; ok {
			return v, true
		}
	}
	v, ok := a.seeded[f]
	return v, ok
}

func (a *accumulator) lookupList(f Field) []any {
	order := a.prec.order(f)
	byFamily := a.lists[f]
	for i := len(order) - 1; i >= 0; i-- {
		if items := byFamily[order[i]]; len(items) > 0 {
			return items
		}
	}
	if seeded, ok := a.seeded[f].([]any); ok {
		return seeded
	}
	return nil
}

func scalar[T any](a *accumulator, f Field) (T, bool) {
	v, ok := a.lookup(f)
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := v.(T)
	return typed, ok
}

func text(a *accumulator, f Field) string {
	s, _ := scalar[string](a, f)
	return s
}

func optional[T any](a *accumulator, f Field) *T {
	v, ok := scalar[T](a, f)
	if !ok {
		return nil
	}
	return &v
}

func listOf[T any](a *accumulator, f Field) List[T] {
	raw := a.lookupList(f)
	items := make([]T, 0, len(raw))
	for _, v := range raw {
		if typed, ok := v.(T); ok {
			items = append(items, typed)
		}
	}
	return NewList(items...)
}

func seedList[T any](a *accumulator, f Field, l List[T]) {
	if l.IsEmpty() {
		return
	}
	raw := make([]any, 0, l.Len())
	for _, item := range l.items {
		raw = append(raw, item)
	}
	a.seed(f, raw)
}

func seedText(a *accumulator, f Field, s string) {
	if s != "" {
		a.seed(f, s)
	}
}
