package extract

import (
	"testing"
	"time"
)

func TestParseDateAcceptsBothDialects(t *testing.T) {
	want := time.Date(2024, time.January, 5, 9, 30, 0, 0, time.UTC)

	inputs := []string{
		"Fri, 05 Jan 2024 09:30:00 +0000",
		"Fri, 5 Jan 2024 09:30:00 +0000",
		"05 Jan 2024 09:30:00 +0000",
		"2024-01-05T09:30:00Z",
		"2024-01-05T10:30:00+01:00",
	}

	for _, input := range inputs {
		got, ok := parseDate(input)
		if !ok {
			t.Errorf("Expected %q to parse", input)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("Expected %q to parse as %v, got: %v", input, want, got)
		}
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "   ", "not a date", "Tue, 5 Jan", "1/2/"} {
		if _, ok := parseDate(input); ok {
			t.Errorf("Expected %q to be rejected", input)
		}
	}
}

func TestParseDateNamedZones(t *testing.T) {
	cases := []struct {
		input string
		want  time.Time
	}{
		{"Mon, 02 Jan 2006 15:04:05 EST", time.Date(2006, time.January, 2, 20, 4, 5, 0, time.UTC)},
		{"Mon, 02 Jan 2006 15:04:05 EDT", time.Date(2006, time.January, 2, 19, 4, 5, 0, time.UTC)},
		{"Mon, 02 Jan 2006 15:04:05 CST", time.Date(2006, time.January, 2, 21, 4, 5, 0, time.UTC)},
		{"Tue, 11 Jul 2023 08:00:00 PDT", time.Date(2023, time.July, 11, 15, 0, 0, 0, time.UTC)},
		{"Tue, 11 Jul 2023 08:00:00 GMT", time.Date(2023, time.July, 11, 8, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		got, ok := parseDate(tc.input)
		if !ok {
			t.Errorf("Expected %q to parse", tc.input)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("Expected %q to be %v, got: %v", tc.input, tc.want, got.UTC())
		}
	}
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		input string
		want  time.Duration
	}{
		{"01:02:03", time.Hour + 2*time.Minute + 3*time.Second},
		{"2:03", 2*time.Minute + 3*time.Second},
		{"3600", time.Hour},
		{"90.5", 90*time.Second + 500*time.Millisecond},
		{" 0:45 ", 45 * time.Second},
	}

	for _, tc := range cases {
		got, ok := parseDuration(tc.input)
		if !ok {
			t.Errorf("Expected %q to parse", tc.input)
			continue
		}
		if got != tc.want {
			t.Errorf("Expected %q to be %v, got: %v", tc.input, tc.want, got)
		}
	}
}

func TestParseDurationRejectsMalformed(t *testing.T) {
	for _, input := range []string{"", "abc", "1:2:3:4", "1::2", "10:75", "-5", "1h30m"} {
		if d, ok := parseDuration(input); ok {
			t.Errorf("Expected %q to be rejected, got: %v", input, d)
		}
	}
}

func TestParseBool(t *testing.T) {
	truthy := []string{"yes", "Yes", "true", "explicit"}
	falsy := []string{"no", "false", "clean", "CLEAN"}

	for _, s := range truthy {
		if v, ok := parseBool(s); !ok || !v {
			t.Errorf("Expected %q to be true", s)
		}
	}
	for _, s := range falsy {
		if v, ok := parseBool(s); !ok || v {
			t.Errorf("Expected %q to be false", s)
		}
	}
	if _, ok := parseBool("maybe"); ok {
		t.Errorf("Expected maybe to be rejected")
	}
}

func TestParseLanguage(t *testing.T) {
	if lang, ok := parseLanguage("en_us"); !ok || lang != "en-US" {
		t.Errorf("Expected en-US, got: %q", lang)
	}
	if lang, ok := parseLanguage("de"); !ok || lang != "de" {
		t.Errorf("Expected de, got: %q", lang)
	}
	if _, ok := parseLanguage("definitely not a language tag"); ok {
		t.Errorf("Expected invalid tag to be rejected")
	}
}
