package i18n

import (
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestNewResolvesLanguage(t *testing.T) {
	tests := map[string]language.Tag{
		"":      language.English,
		"en":    language.English,
		"zh":    language.SimplifiedChinese,
		"zh-CN": language.SimplifiedChinese,
		"fr":    language.English,
		"???":   language.English,
	}
	for input, want := range tests {
		if got := New(input).Tag(); got != want {
			t.Fatalf("New(%q).Tag() = %v, want %v", input, got, want)
		}
	}
}

func TestSprintfTranslates(t *testing.T) {
	zh := New("zh")
	if got := zh.Sprintf("Tracks in %s", "movie.mkv"); !strings.Contains(got, "movie.mkv") || strings.Contains(got, "Tracks in") {
		t.Fatalf("unexpected translation %q", got)
	}
	if got := Default().Sprintf("Tracks in %s", "movie.mkv"); got != "Tracks in movie.mkv" {
		t.Fatalf("unexpected English text %q", got)
	}
	if got := zh.Sprintf("text without translation"); got != "text without translation" {
		t.Fatalf("missing keys should fall back to the key, got %q", got)
	}
}

func TestYesNo(t *testing.T) {
	if Default().YesNo(true) != "yes" || Default().YesNo(false) != "no" {
		t.Fatal("unexpected English yes/no")
	}
	if New("zh").YesNo(true) != "是" {
		t.Fatal("unexpected Chinese yes")
	}
}

func TestNilLocale(t *testing.T) {
	var l *Locale
	if got := l.Sprintf("Video"); got != "Video" {
		t.Fatalf("nil locale Sprintf = %q", got)
	}
	if l.Tag() != language.English {
		t.Fatal("nil locale should report English")
	}
}

func TestSupported(t *testing.T) {
	for _, lang := range []string{"en", "zh", "zh-Hans", "en-GB"} {
		if !Supported(lang) {
			t.Fatalf("expected %q to be supported", lang)
		}
	}
	for _, lang := range []string{"", "fr", "not a tag"} {
		if Supported(lang) {
			t.Fatalf("expected %q to be rejected", lang)
		}
	}
}

func TestCatalogVerbsMatch(t *testing.T) {
	for _, tr := range simplifiedChinese {
		if strings.Count(tr.key, "%") != strings.Count(tr.value, "%") {
			t.Fatalf("verb count differs for %q -> %q", tr.key, tr.value)
		}
	}
}

func TestCatalogKeysUnique(t *testing.T) {
	seen := make(map[string]bool, len(simplifiedChinese))
	for _, tr := range simplifiedChinese {
		if seen[tr.key] {
			t.Fatalf("duplicate catalog key %q", tr.key)
		}
		seen[tr.key] = true
	}
}
