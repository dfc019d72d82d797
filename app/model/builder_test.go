package model

import (
	"errors"
	"testing"
	"time"

	"github.com/lysyi3m/podcast-comb/app/failure"
	"github.com/lysyi3m/podcast-comb/app/namespace"
)

func mustEnclosure(t *testing.T, url string, length int64, mediaType string) Enclosure {
	t.Helper()
	enclosure, err := NewEnclosureBuilder().URL(url).Length(length).Type(mediaType).Build()
	if err != nil {
		t.Fatalf("Failed to build enclosure: %v", err)
	}
	return enclosure
}

func mustCategory(t *testing.T, name string, subs ...Category) Category {
	t.Helper()
	b := NewCategoryBuilder().Name(name)
	for _, sub := range subs {
		b.AddSubcategory(sub)
	}
	c, err := b.Build()
	if err != nil {
		t.Fatalf("Failed to build category: %v", err)
	}
	return c
}

func TestPodcastBuilderRequiresTitle(t *testing.T) {
	b := NewPodcastBuilder().Set(Value{Field: FieldDescription, Family: namespace.RSS, Data: "No title here"})

	_, err := b.Build()
	if !errors.Is(err, failure.ErrMissingRequiredField) {
		t.Fatalf("Expected MissingRequiredFieldFailure, got: %v", err)
	}

	var fe *failure.Error
	if !errors.As(err, &fe) || fe.Field != "title" || fe.Entity != "podcast" {
		t.Errorf("Expected failure naming podcast title, got: %v", err)
	}
}

func TestPodcastBuilderDefaults(t *testing.T) {
	p, err := NewPodcastBuilder().Set(Value{Field: FieldTitle, Family: namespace.RSS, Data: "Show"}).Build()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if p.Explicit() {
		t.Errorf("Expected explicit to default to false")
	}
	if p.Block() {
		t.Errorf("Expected block to default to false")
	}
	if !p.Categories().IsEmpty() {
		t.Errorf("Expected no categories, got %d", p.Categories().Len())
	}
	if !p.Episodes().IsEmpty() {
		t.Errorf("Expected no episodes, got %d", p.Episodes().Len())
	}
	if p.Itunes() != nil || p.Atom() != nil || p.Podcastindex() != nil {
		t.Errorf("Expected namespace blocks to be nil when nothing was set")
	}
	if _, ok := p.TTL(); ok {
		t.Errorf("Expected TTL to be absent")
	}
}

func TestPodcastBuilderVendorOverridesBase(t *testing.T) {
	b := NewPodcastBuilder()
	// Vendor value first, base value last: precedence wins over document order.
	b.Set(Value{Field: FieldTitle, Family: namespace.RSS, Data: "Show"})
	b.Set(Value{Field: FieldDescription, Family: namespace.Itunes, Data: "iTunes summary"})
	b.Set(Value{Field: FieldDescription, Family: namespace.RSS, Data: "RSS description"})

	p, err := b.Build()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if p.Description() != "iTunes summary" {
		t.Errorf("Expected vendor description, got: %s", p.Description())
	}
}

func TestPodcastBuilderLastWriteWinsWithinFamily(t *testing.T) {
	b := NewPodcastBuilder()
	b.Set(Value{Field: FieldTitle, Family: namespace.RSS, Data: "First"})
	b.Set(Value{Field: FieldTitle, Family: namespace.RSS, Data: "Second"})

	p, err := b.Build()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if p.Title() != "Second" {
		t.Errorf("Expected last title to win, got: %s", p.Title())
	}
}

func TestPodcastBuilderCategoryPrecedence(t *testing.T) {
	b := NewPodcastBuilder().Set(Value{Field: FieldTitle, Family: namespace.RSS, Data: "Show"})
	b.Set(Value{Field: FieldCategories, Family: namespace.Itunes, Data: mustCategory(t, "Technology", mustCategory(t, "Podcasting"))})
	b.Set(Value{Field: FieldCategories, Family: namespace.Googleplay, Data: mustCategory(t, "News & Politics")})
	b.Set(Value{Field: FieldCategories, Family: namespace.Googleplay, Data: mustCategory(t, "Technology")})

	p, err := b.Build()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	categories := p.Categories()
	if categories.Len() != 2 {
		t.Fatalf("Expected 2 Google Play categories, got %d", categories.Len())
	}
	if categories.At(0).Name() != "News & Politics" || categories.At(1).Name() != "Technology" {
		t.Errorf("Expected Google Play categories in document order, got: %s, %s", categories.At(0).Name(), categories.At(1).Name())
	}
	if err := categories.Append(mustCategory(t, "Arts")); !errors.Is(err, ErrUnsupportedMutation) {
		t.Errorf("Expected ErrUnsupportedMutation, got: %v", err)
	}
	if p.Categories().Len() != 2 {
		t.Errorf("Expected categories to stay unchanged, got %d", p.Categories().Len())
	}
}

func TestPodcastBuilderResetsAfterBuild(t *testing.T) {
	b := NewPodcastBuilder()
	b.Set(Value{Field: FieldTitle, Family: namespace.RSS, Data: "Show"})
	b.Set(Value{Field: FieldLanguage, Family: namespace.RSS, Data: "en"})
	b.AddEpisode(Episode{title: "One"})

	if _, err := b.Build(); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	_, err := b.Build()
	if !failure.IsMissingField(err) {
		t.Fatalf("Expected second build to see an empty builder, got: %v", err)
	}

	p, err := b.Set(Value{Field: FieldTitle, Family: namespace.RSS, Data: "Other"}).Build()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if p.Language() != "" {
		t.Errorf("Expected language not to leak from previous build, got: %s", p.Language())
	}
	if p.Episodes().Len() != 0 {
		t.Errorf("Expected no episodes to leak from previous build, got %d", p.Episodes().Len())
	}
}

func TestPodcastBuilderApplyFrom(t *testing.T) {
	original, err := NewPodcastBuilder().
		Set(Value{Field: FieldTitle, Family: namespace.RSS, Data: "Show"}).
		Set(Value{Field: FieldLanguage, Family: namespace.RSS, Data: "de"}).
		Set(Value{Field: FieldExplicit, Family: namespace.Itunes, Data: true}).
		Set(Value{Field: FieldSubtitle, Family: namespace.Itunes, Data: "Sub"}).
		AddEpisode(Episode{title: "One"}).
		Build()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	extended, err := NewPodcastBuilder().
		ApplyFrom(original).
		Set(Value{Field: FieldTitle, Family: namespace.RSS, Data: "Renamed"}).
		AddEpisode(Episode{title: "Two"}).
		Build()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if extended.Title() != "Renamed" {
		t.Errorf("Expected later Set to override seeded title, got: %s", extended.Title())
	}
	if extended.Language() != "de" || !extended.Explicit() {
		t.Errorf("Expected seeded fields to be copied, got language %q explicit %v", extended.Language(), extended.Explicit())
	}
	if extended.Itunes() == nil || extended.Itunes().Subtitle() != "Sub" {
		t.Errorf("Expected iTunes block to be copied")
	}
	if extended.Episodes().Len() != 2 || extended.Episodes().At(1).Title() != "Two" {
		t.Errorf("Expected episodes One and Two, got %d", extended.Episodes().Len())
	}
	if original.Title() != "Show" || original.Episodes().Len() != 1 {
		t.Errorf("Expected original podcast to be untouched")
	}
}

func TestEpisodeBuilderRSSPolicyRequiresEnclosure(t *testing.T) {
	b := NewEpisodeBuilder(PolicyFor(namespace.DialectRSS))
	b.Set(Value{Field: FieldTitle, Family: namespace.RSS, Data: "Episode"})

	_, err := b.Build()
	var fe *failure.Error
	if !errors.As(err, &fe) || fe.Kind != failure.KindMissingRequiredField || fe.Field != "enclosure" {
		t.Fatalf("Expected missing enclosure, got: %v", err)
	}
}

func TestEpisodeBuilderAtomPolicyEnclosureOptional(t *testing.T) {
	b := NewEpisodeBuilder(PolicyFor(namespace.DialectAtom))
	b.Set(Value{Field: FieldTitle, Family: namespace.Atom, Data: "Entry"})

	e, err := b.Build()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if e.Enclosure() != nil {
		t.Errorf("Expected no enclosure")
	}
}

func TestEpisodeBuilderResolvesFields(t *testing.T) {
	pub := time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)
	b := NewEpisodeBuilder(PolicyFor(namespace.DialectRSS))
	b.Apply(
		Value{Field: FieldTitle, Family: namespace.RSS, Data: "RSS title"},
		Value{Field: FieldTitle, Family: namespace.Itunes, Data: "iTunes title"},
		Value{Field: FieldEnclosure, Family: namespace.RSS, Data: mustEnclosure(t, "https://example.com/1.mp3", 1234, "audio/mpeg")},
		Value{Field: FieldSeason, Family: namespace.Podcastindex, Data: 3},
		Value{Field: FieldSeason, Family: namespace.Itunes, Data: 2},
		Value{Field: FieldPubDate, Family: namespace.RSS, Data: pub},
		Value{Field: FieldDuration, Family: namespace.Itunes, Data: 90 * time.Second},
	)

	e, err := b.Build()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if e.Title() != "iTunes title" {
		t.Errorf("Expected iTunes title, got: %s", e.Title())
	}
	if season, ok := e.Season(); !ok || season != 3 {
		t.Errorf("Expected podcastindex season 3, got: %d", season)
	}
	if !e.PubDate().Equal(pub) {
		t.Errorf("Expected pubDate %v, got: %v", pub, e.PubDate())
	}
	if d, ok := e.Duration(); !ok || d != 90*time.Second {
		t.Errorf("Expected duration 90s, got: %v", d)
	}
	if e.Enclosure().Length() != 1234 {
		t.Errorf("Expected enclosure length 1234, got: %d", e.Enclosure().Length())
	}
}

func TestEpisodeBuilderIgnoresMistypedValues(t *testing.T) {
	b := NewEpisodeBuilder(PolicyFor(namespace.DialectAtom))
	b.Set(Value{Field: FieldTitle, Family: namespace.Atom, Data: "Entry"})
	b.Set(Value{Field: FieldSeason, Family: namespace.Itunes, Data: "two"})

	e, err := b.Build()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if _, ok := e.Season(); ok {
		t.Errorf("Expected season to be absent")
	}
}

func TestEpisodeBuilderApplyFrom(t *testing.T) {
	first, err := NewEpisodeBuilder(PolicyFor(namespace.DialectRSS)).Apply(
		Value{Field: FieldTitle, Family: namespace.RSS, Data: "Episode"},
		Value{Field: FieldEnclosure, Family: namespace.RSS, Data: mustEnclosure(t, "https://example.com/1.mp3", 1, "audio/mpeg")},
		Value{Field: FieldBitloveGuid, Family: namespace.Bitlove, Data: "abc"},
	).Build()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	second, err := NewEpisodeBuilder(PolicyFor(namespace.DialectRSS)).
		ApplyFrom(first).
		Set(Value{Field: FieldDescription, Family: namespace.RSS, Data: "Added"}).
		Build()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if second.Title() != "Episode" || second.Description() != "Added" {
		t.Errorf("Expected copied title and added description, got %q / %q", second.Title(), second.Description())
	}
	if second.Bitlove() == nil || second.Bitlove().Guid() != "abc" {
		t.Errorf("Expected bitlove guid to be copied")
	}
}

func TestCategoryBuilder(t *testing.T) {
	_, err := NewCategoryBuilder().Build()
	if !failure.IsMissingField(err) {
		t.Errorf("Expected missing name failure, got: %v", err)
	}

	c := mustCategory(t, "Society & Culture", mustCategory(t, "History"), mustCategory(t, "Documentary"))
	if c.Subcategories().Len() != 2 || c.Subcategories().At(1).Name() != "Documentary" {
		t.Errorf("Expected two ordered subcategories")
	}

	extended, err := NewCategoryBuilder().ApplyFrom(c).AddSubcategory(mustCategory(t, "Philosophy")).Build()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if extended.Subcategories().Len() != 3 {
		t.Errorf("Expected 3 subcategories, got %d", extended.Subcategories().Len())
	}
	if c.Subcategories().Len() != 2 {
		t.Errorf("Expected original category to be untouched")
	}
}

func TestEnclosureBuilderRequiresAllFields(t *testing.T) {
	cases := map[string]*EnclosureBuilder{
		"url":    NewEnclosureBuilder().Length(1).Type("audio/mpeg"),
		"length": NewEnclosureBuilder().URL("https://example.com/a.mp3").Type("audio/mpeg"),
		"type":   NewEnclosureBuilder().URL("https://example.com/a.mp3").Length(1),
	}

	for field, b := range cases {
		_, err := b.Build()
		var fe *failure.Error
		if !errors.As(err, &fe) || fe.Field != field {
			t.Errorf("Expected missing %s, got: %v", field, err)
		}
	}

	e := mustEnclosure(t, "https://example.com/a.mp3", 0, "audio/mpeg")
	if e.Length() != 0 {
		t.Errorf("Expected explicit zero length to be accepted")
	}
}

func TestSoundbiteValidation(t *testing.T) {
	if _, err := NewSoundbite(-time.Second, time.Second, ""); err == nil {
		t.Errorf("Expected negative start time to fail")
	}
	if _, err := NewSoundbite(0, 0, ""); err == nil {
		t.Errorf("Expected zero duration to fail")
	}
	s, err := NewSoundbite(0, 30*time.Second, "Intro")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if s.Title() != "Intro" {
		t.Errorf("Expected title Intro, got: %s", s.Title())
	}
}

func TestGoogleplayCategoryNormalization(t *testing.T) {
	name, ok := GoogleplayCategory("  news   & POLITICS ")
	if !ok || name != "News & Politics" {
		t.Errorf("Expected News & Politics, got: %q", name)
	}
	if _, ok := GoogleplayCategory("Podcasting"); ok {
		t.Errorf("Expected unknown category to be rejected")
	}
}

func TestParseEnums(t *testing.T) {
	if st, ok := ParseShowType("Serial"); !ok || st != ShowTypeSerial {
		t.Errorf("Expected serial, got: %q", st)
	}
	if _, ok := ParseShowType("weekly"); ok {
		t.Errorf("Expected unknown show type to be rejected")
	}
	if et, ok := ParseEpisodeType(" Trailer "); !ok || et != EpisodeTypeTrailer {
		t.Errorf("Expected trailer, got: %q", et)
	}
}
