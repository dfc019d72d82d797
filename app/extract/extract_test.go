package extract

import (
	"testing"
	"time"

	"github.com/beevik/etree"

	"github.com/lysyi3m/podcast-comb/app/model"
	"github.com/lysyi3m/podcast-comb/app/namespace"
)

const (
	itunesDecl     = `xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd"`
	googleplayDecl = `xmlns:googleplay="http://www.google.com/schemas/play-podcasts/1.0"`
	atomDecl       = `xmlns="http://www.w3.org/2005/Atom"`
	podcastDecl    = `xmlns:podcast="https://podcastindex.org/namespace/1.0"`
	pscDecl        = `xmlns:psc="http://podlove.org/simple-chapters"`
)

func element(t *testing.T, xml string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		t.Fatalf("Failed to parse fixture: %v", err)
	}
	return doc.Root()
}

func find(values []model.Value, field model.Field) (model.Value, bool) {
	for _, v := range values {
		if v.Field == field {
			return v, true
		}
	}
	return model.Value{}, false
}

func TestRSSEnclosure(t *testing.T) {
	values := Item(namespace.RSS, element(t, `<enclosure url="https://example.com/ep1.mp3" length="5650889" type="audio/mpeg"/>`))

	v, ok := find(values, model.FieldEnclosure)
	if !ok {
		t.Fatalf("Expected an enclosure value")
	}
	enclosure := v.Data.(model.Enclosure)
	if enclosure.URL() != "https://example.com/ep1.mp3" {
		t.Errorf("Expected enclosure URL, got: %s", enclosure.URL())
	}
	if enclosure.Length() != 5650889 {
		t.Errorf("Expected length 5650889, got: %d", enclosure.Length())
	}
	if enclosure.Type() != "audio/mpeg" {
		t.Errorf("Expected type audio/mpeg, got: %s", enclosure.Type())
	}
	if v.Family != namespace.RSS {
		t.Errorf("Expected RSS family, got: %s", v.Family)
	}
}

func TestRSSEnclosureIncompleteIsAbsent(t *testing.T) {
	fixtures := []string{
		`<enclosure url="https://example.com/ep1.mp3" type="audio/mpeg"/>`,
		`<enclosure url="https://example.com/ep1.mp3" length="big" type="audio/mpeg"/>`,
		`<enclosure length="1" type="audio/mpeg"/>`,
	}
	for _, fixture := range fixtures {
		if values := Item(namespace.RSS, element(t, fixture)); len(values) != 0 {
			t.Errorf("Expected no values for %s, got %d", fixture, len(values))
		}
	}
}

func TestRSSGuidPermalinkSpellings(t *testing.T) {
	for _, fixture := range []string{
		`<guid isPermaLink="false">abc-123</guid>`,
		`<guid isPermalink="false">abc-123</guid>`,
	} {
		v, ok := find(Item(namespace.RSS, element(t, fixture)), model.FieldGuid)
		if !ok {
			t.Fatalf("Expected guid for %s", fixture)
		}
		guid := v.Data.(model.Guid)
		permalink, present := guid.IsPermalink()
		if guid.Text() != "abc-123" || !present || permalink {
			t.Errorf("Expected non-permalink guid abc-123 for %s", fixture)
		}
	}
}

func TestRSSChannelCoercions(t *testing.T) {
	if _, ok := find(Channel(namespace.RSS, element(t, `<ttl>sixty</ttl>`)), model.FieldTTL); ok {
		t.Errorf("Expected unparsable ttl to be absent")
	}

	v, ok := find(Channel(namespace.RSS, element(t, `<pubDate>Mon, 06 Sep 2021 16:45:00 +0000</pubDate>`)), model.FieldPubDate)
	if !ok {
		t.Fatalf("Expected pubDate")
	}
	if !v.Data.(time.Time).Equal(time.Date(2021, time.September, 6, 16, 45, 0, 0, time.UTC)) {
		t.Errorf("Expected 2021-09-06 16:45 UTC, got: %v", v.Data)
	}

	v, ok = find(Channel(namespace.RSS, element(t, `<category domain="dmoz">Tech</category>`)), model.FieldRSSCategories)
	if !ok {
		t.Fatalf("Expected category")
	}
	if c := v.Data.(model.RSSCategory); c.Name() != "Tech" || c.Domain() != "dmoz" {
		t.Errorf("Expected Tech/dmoz, got: %s/%s", c.Name(), c.Domain())
	}
}

func TestRSSImage(t *testing.T) {
	values := Channel(namespace.RSS, element(t, `<image><url>https://example.com/cover.png</url><title>Cover</title><width>144</width><height>nope</height></image>`))

	v, ok := find(values, model.FieldImage)
	if !ok {
		t.Fatalf("Expected image")
	}
	image := v.Data.(model.Image)
	if image.URL() != "https://example.com/cover.png" || image.Title() != "Cover" {
		t.Errorf("Expected cover image, got: %s %s", image.URL(), image.Title())
	}
	if image.Width() != 144 || image.Height() != 0 {
		t.Errorf("Expected 144x0, got: %dx%d", image.Width(), image.Height())
	}

	if values := Channel(namespace.RSS, element(t, `<image><title>No URL</title></image>`)); len(values) != 0 {
		t.Errorf("Expected image without url to be absent")
	}
}

func TestItunesNestedCategories(t *testing.T) {
	el := element(t, `<itunes:category `+itunesDecl+` text="Society &amp; Culture">
		<itunes:category text="History"/>
		<itunes:category text="Documentary"><itunes:category text="Deep"/></itunes:category>
	</itunes:category>`)

	v, ok := find(Channel(namespace.Itunes, el), model.FieldCategories)
	if !ok {
		t.Fatalf("Expected category")
	}
	category := v.Data.(model.Category)
	if category.Name() != "Society & Culture" {
		t.Errorf("Expected Society & Culture, got: %s", category.Name())
	}
	subs := category.Subcategories()
	if subs.Len() != 2 || subs.At(0).Name() != "History" || subs.At(1).Name() != "Documentary" {
		t.Fatalf("Expected History and Documentary subcategories")
	}
	if subs.At(1).Subcategories().Len() != 1 {
		t.Errorf("Expected nested subcategory below Documentary")
	}
}

func TestItunesItemCoercions(t *testing.T) {
	v, ok := find(Item(namespace.Itunes, element(t, `<itunes:duration `+itunesDecl+`>1:02:03</itunes:duration>`)), model.FieldDuration)
	if !ok || v.Data.(time.Duration) != time.Hour+2*time.Minute+3*time.Second {
		t.Errorf("Expected 1h2m3s duration, got: %v", v.Data)
	}

	if values := Item(namespace.Itunes, element(t, `<itunes:duration `+itunesDecl+`>about an hour</itunes:duration>`)); len(values) != 0 {
		t.Errorf("Expected unparsable duration to be absent")
	}
	if values := Item(namespace.Itunes, element(t, `<itunes:episodeType `+itunesDecl+`>teaser</itunes:episodeType>`)); len(values) != 0 {
		t.Errorf("Expected unknown episode type to be absent")
	}
	if values := Item(namespace.Itunes, element(t, `<itunes:season `+itunesDecl+`>0</itunes:season>`)); len(values) != 0 {
		t.Errorf("Expected season 0 to be absent")
	}

	v, ok = find(Item(namespace.Itunes, element(t, `<itunes:explicit `+itunesDecl+`>clean</itunes:explicit>`)), model.FieldExplicit)
	if !ok || v.Data.(bool) {
		t.Errorf("Expected explicit=false for clean")
	}
}

func TestItunesOwner(t *testing.T) {
	el := element(t, `<itunes:owner `+itunesDecl+`><itunes:name>Jane</itunes:name><itunes:email>jane@example.com</itunes:email></itunes:owner>`)

	v, ok := find(Channel(namespace.Itunes, el), model.FieldOwner)
	if !ok {
		t.Fatalf("Expected owner")
	}
	owner := v.Data.(model.Person)
	if owner.Name() != "Jane" || owner.Email() != "jane@example.com" {
		t.Errorf("Expected Jane <jane@example.com>, got: %s <%s>", owner.Name(), owner.Email())
	}
}

func TestGoogleplayCategoryIsClosedSet(t *testing.T) {
	v, ok := find(Channel(namespace.Googleplay, element(t, `<googleplay:category `+googleplayDecl+` text="technology"/>`)), model.FieldCategories)
	if !ok {
		t.Fatalf("Expected category")
	}
	if name := v.Data.(model.Category).Name(); name != "Technology" {
		t.Errorf("Expected canonical Technology, got: %s", name)
	}

	if values := Channel(namespace.Googleplay, element(t, `<googleplay:category `+googleplayDecl+` text="Podcasting"/>`)); len(values) != 0 {
		t.Errorf("Expected category outside the closed set to be absent")
	}
}

func TestAtomEntryEnclosureDefaultsLength(t *testing.T) {
	values := Item(namespace.Atom, element(t, `<link `+atomDecl+` rel="enclosure" href="https://example.com/e.mp3" type="audio/mpeg"/>`))

	v, ok := find(values, model.FieldEnclosure)
	if !ok {
		t.Fatalf("Expected enclosure")
	}
	if enclosure := v.Data.(model.Enclosure); enclosure.Length() != 0 {
		t.Errorf("Expected length 0, got: %d", enclosure.Length())
	}
	if _, ok := find(values, model.FieldAtomLinks); !ok {
		t.Errorf("Expected link to be recorded in the Atom block")
	}
	if _, ok := find(values, model.FieldLink); ok {
		t.Errorf("Expected enclosure link not to become the entry link")
	}
}

func TestAtomAuthor(t *testing.T) {
	values := Channel(namespace.Atom, element(t, `<author `+atomDecl+`><name>Jane</name><uri>https://jane.example.com</uri></author>`))

	v, ok := find(values, model.FieldAuthor)
	if !ok || v.Data.(string) != "Jane" {
		t.Errorf("Expected author Jane, got: %v", v.Data)
	}
	v, ok = find(values, model.FieldAtomAuthors)
	if !ok || v.Data.(model.Person).URI() != "https://jane.example.com" {
		t.Errorf("Expected author URI, got: %v", v.Data)
	}
}

func TestPodcastindexSoundbiteValidation(t *testing.T) {
	v, ok := find(Item(namespace.Podcastindex, element(t, `<podcast:soundbite `+podcastDecl+` startTime="73.0" duration="60.5">Best part</podcast:soundbite>`)), model.FieldSoundbites)
	if !ok {
		t.Fatalf("Expected soundbite")
	}
	soundbite := v.Data.(model.Soundbite)
	if soundbite.StartTime() != 73*time.Second || soundbite.Duration() != 60500*time.Millisecond {
		t.Errorf("Expected 73s/60.5s, got: %v/%v", soundbite.StartTime(), soundbite.Duration())
	}

	for _, fixture := range []string{
		`<podcast:soundbite ` + podcastDecl + ` startTime="-1" duration="10"/>`,
		`<podcast:soundbite ` + podcastDecl + ` startTime="1" duration="0"/>`,
		`<podcast:soundbite ` + podcastDecl + ` duration="10"/>`,
	} {
		if values := Item(namespace.Podcastindex, element(t, fixture)); len(values) != 0 {
			t.Errorf("Expected invalid soundbite to be absent: %s", fixture)
		}
	}
}

func TestPodcastindexLockedAndFunding(t *testing.T) {
	v, ok := find(Channel(namespace.Podcastindex, element(t, `<podcast:locked `+podcastDecl+` owner="owner@example.com">yes</podcast:locked>`)), model.FieldLocked)
	if !ok {
		t.Fatalf("Expected locked")
	}
	if locked := v.Data.(model.Locked); !locked.Locked() || locked.Owner() != "owner@example.com" {
		t.Errorf("Expected locked by owner@example.com")
	}

	v, ok = find(Channel(namespace.Podcastindex, element(t, `<podcast:funding `+podcastDecl+` url="https://example.com/donate">Support us</podcast:funding>`)), model.FieldFunding)
	if !ok || v.Data.(model.Funding).Message() != "Support us" {
		t.Errorf("Expected funding message")
	}
}

func TestPodloveChapters(t *testing.T) {
	el := element(t, `<psc:chapters `+pscDecl+` version="1.2">
		<psc:chapter start="00:00:00.000" title="Intro"/>
		<psc:chapter start="00:01:10.000" title="Main" href="https://example.com"/>
		<psc:chapter title="No start"/>
	</psc:chapters>`)

	values := Item(namespace.Podlove, el)
	if len(values) != 2 {
		t.Fatalf("Expected 2 chapters, got %d", len(values))
	}
	if chapter := values[1].Data.(model.SimpleChapter); chapter.Title() != "Main" || chapter.Href() != "https://example.com" {
		t.Errorf("Expected Main chapter with href, got: %s", chapter.Title())
	}
}

func TestBitloveAttribute(t *testing.T) {
	el := element(t, `<enclosure xmlns:bitlove="http://bitlove.org" bitlove:guid="xyz" url="u" length="1" type="audio/mpeg"/>`)

	var guidAttr etree.Attr
	for _, a := range el.Attr {
		if a.Space == "bitlove" {
			guidAttr = a
		}
	}

	values := ItemAttribute(namespace.Bitlove, el, guidAttr)
	if len(values) != 1 || values[0].Data.(string) != "xyz" {
		t.Errorf("Expected bitlove guid xyz, got: %v", values)
	}
}

func TestUnknownLocalNameIsIgnored(t *testing.T) {
	if values := Channel(namespace.Itunes, element(t, `<itunes:futureElement `+itunesDecl+`>x</itunes:futureElement>`)); len(values) != 0 {
		t.Errorf("Expected unknown element to produce no values")
	}
}
