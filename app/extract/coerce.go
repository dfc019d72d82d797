package extract

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/beevik/etree"
	"golang.org/x/text/language"
)

// Feeds mix RFC 822 and ISO 8601 timestamps, with and without weekday,
// zero-padded or not. Anything else goes through dateparse.
var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04 -0700",
	"2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 MST",
	time.RFC822Z,
	time.RFC822,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return withZoneOffset(t), true
		}
	}
	t, err := dateparse.ParseAny(s)
	if err != nil || t.Year() < 1 {
		return time.Time{}, false
	}
	return withZoneOffset(t), true
}

// North American zone names from RFC 822 section 5.1, in seconds east of UTC.
var rfc822Zones = map[string]int{
	"EST": -5 * 3600,
	"EDT": -4 * 3600,
	"CST": -6 * 3600,
	"CDT": -5 * 3600,
	"MST": -7 * 3600,
	"MDT": -6 * 3600,
	"PST": -8 * 3600,
	"PDT": -7 * 3600,
}

// withZoneOffset applies the RFC 822 offset to a time whose zone name was
// parsed without one. time.Parse records unknown abbreviations at offset 0.
func withZoneOffset(t time.Time) time.Time {
	name, offset := t.Zone()
	want, ok := rfc822Zones[name]
	if !ok || offset == want {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		time.FixedZone(name, want))
}

// parseDuration accepts HH:MM:SS, MM:SS and plain seconds; the last
// component may carry a fraction.
func parseDuration(s string) (time.Duration, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, false
	}

	var total float64
	for i, part := range parts {
		last := i == len(parts)-1
		if part == "" {
			return 0, false
		}
		var v float64
		if last {
			f, err := strconv.ParseFloat(part, 64)
			if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
				return 0, false
			}
			v = f
		} else {
			n, err := strconv.Atoi(part)
			if err != nil {
				return 0, false
			}
			v = float64(n)
		}
		if v < 0 {
			return 0, false
		}
		if i > 0 && v >= 60 {
			return 0, false
		}
		total = total*60 + v
	}
	return time.Duration(total * float64(time.Second)), true
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "explicit":
		return true, true
	case "no", "false", "clean":
		return false, true
	}
	return false, false
}

func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseInt64(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseURI keeps the text as written once it parses as a URI reference.
func parseURI(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if _, err := url.Parse(s); err != nil {
		return "", false
	}
	return s, true
}

// parseLanguage canonicalizes a BCP 47 tag, accepting the underscore
// spelling some feeds use.
func parseLanguage(s string) (string, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "-")
	if s == "" {
		return "", false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	return tag.String(), true
}

// textOf returns the trimmed character data of el, including CDATA
// sections, or false when there is none.
func textOf(el *etree.Element) (string, bool) {
	var b strings.Builder
	for _, token := range el.Child {
		if cd, ok := token.(*etree.CharData); ok {
			b.WriteString(cd.Data)
		}
	}
	s := strings.TrimSpace(b.String())
	return s, s != ""
}

// atomText reads an Atom text construct. An xhtml construct wraps its content
// in a div: with markup the content is kept as serialized XHTML, otherwise
// only its text is kept.
func atomText(el *etree.Element, markup bool) (string, bool) {
	if kind, _ := attr(el, "type"); kind != "xhtml" {
		return textOf(el)
	}
	var div *etree.Element
	for _, child := range el.ChildElements() {
		if child.Tag == "div" {
			div = child
			break
		}
	}
	if div == nil {
		return textOf(el)
	}

	var s string
	if markup {
		s = innerXML(div)
	} else {
		s = strings.Join(strings.Fields(innerText(div)), " ")
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

func innerText(el *etree.Element) string {
	var b strings.Builder
	for _, token := range el.Child {
		switch t := token.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			b.WriteString(innerText(t))
		}
	}
	return b.String()
}

// innerXML serializes the children of el without el itself. The source tree
// is left untouched.
func innerXML(el *etree.Element) string {
	doc := etree.NewDocument()
	for _, token := range el.Child {
		switch t := token.(type) {
		case *etree.CharData:
			doc.CreateText(t.Data)
		case *etree.Element:
			doc.AddChild(t.Copy())
		}
	}
	s, err := doc.WriteToString()
	if err != nil {
		return innerText(el)
	}
	return s
}

// attr returns the value of an attribute without namespace prefix.
func attr(el *etree.Element, key string) (string, bool) {
	for _, a := range el.Attr {
		if a.Space == "" && a.Key == key {
			v := strings.TrimSpace(a.Value)
			return v, v != ""
		}
	}
	return "", false
}
