package format

import "testing"

func TestEscapeMarkdownV1(t *testing.T) {
	cases := map[string]string{
		"plain":       "plain",
		"*bold*":      `\*bold\*`,
		"_it_ [x]":    `\_it\_ \[x]`,
		"a`b":         "a\\`b",
		`back\slash`:  `back\\slash`,
		"":            "",
		"дом *уют*":   `дом \*уют\*`,
	}
	for in, want := range cases {
		got, err := EscapeMarkdown(in, MarkdownV1)
		if err != nil {
			t.Fatalf("EscapeMarkdown(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("EscapeMarkdown(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEscapeMarkdownV2(t *testing.T) {
	got, err := EscapeMarkdown("a.b!c(d)", MarkdownV2)
	if err != nil {
		t.Fatal(err)
	}
	want := `a\.b\!c\(d\)`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEscapeMarkdownBadVersion(t *testing.T) {
	if _, err := EscapeMarkdown("x", 3); err == nil {
		t.Fatal("expected error for unsupported version")
	}
}
