package models

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestDeriveMetaDescriptionStripsMarkup(t *testing.T) {
	got := DeriveMetaDescription("<p>Hydrogen   sulfide\n<strong>management</strong> basics</p>")
	want := "Hydrogen sulfide management basics"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDeriveMetaDescriptionShortContentUnchanged(t *testing.T) {
	got := DeriveMetaDescription("Short and sweet.")
	if got != "Short and sweet." {
		t.Fatalf("got %q", got)
	}
}

func TestDeriveMetaDescriptionTruncatesOnWordBoundary(t *testing.T) {
	content := strings.Repeat("chemical supply ", 20) // 320 chars once collapsed
	got := DeriveMetaDescription(content)
	if len(got) > 160 {
		t.Fatalf("description too long: %d", len(got))
	}
	if strings.HasSuffix(got, " ") {
		t.Fatalf("trailing space not trimmed: %q", got)
	}
	// The cut must land on a word boundary, not inside a word.
	for _, word := range strings.Fields(got) {
		if word != "chemical" && word != "supply" {
			t.Fatalf("mid-word cut produced %q", word)
		}
	}
}

func TestDeriveMetaDescriptionKeepsLongLeadingWord(t *testing.T) {
	// A single giant token cannot back off to a space; it is cut hard
	// at the limit.
	content := strings.Repeat("x", 300)
	got := DeriveMetaDescription(content)
	if len(got) != 160 {
		t.Fatalf("expected hard cut at 160, got %d", len(got))
	}
}

func TestDeriveMetaDescriptionMultibyteHardCut(t *testing.T) {
	// A long run of multi-byte runes must be cut on a rune boundary so
	// the snippet stays valid UTF-8.
	content := strings.Repeat("ü", 300)
	got := DeriveMetaDescription(content)
	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 160 {
		t.Fatalf("expected hard cut at 160 runes, got %d", n)
	}
}

func TestProductBlogBeforeSaveDerivesMetaDescription(t *testing.T) {
	blog := ProductBlog{
		Title:   "Dosing guide",
		Slug:    "dosing-guide",
		Content: "<p>Correct dosing balances capacity against handling.</p>",
	}
	if err := blog.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave error: %v", err)
	}
	if blog.MetaDescription != "Correct dosing balances capacity against handling." {
		t.Fatalf("wrong meta description: %q", blog.MetaDescription)
	}
	if blog.PublishedAt.IsZero() {
		t.Fatalf("PublishedAt should default to now")
	}
}

func TestProductBlogBeforeSaveKeepsExplicitMetaDescription(t *testing.T) {
	blog := ProductBlog{
		Title:           "Dosing guide",
		Slug:            "dosing-guide",
		Content:         "<p>Body text goes here.</p>",
		MetaDescription: "Hand-written snippet.",
	}
	if err := blog.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave error: %v", err)
	}
	if blog.MetaDescription != "Hand-written snippet." {
		t.Fatalf("explicit meta description overwritten: %q", blog.MetaDescription)
	}
}
