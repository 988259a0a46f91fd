package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"mkvedit/internal/i18n"
	"mkvedit/internal/tracks"
)

func TestFormatTracksColumns(t *testing.T) {
	audio := &tracks.Track{ID: 7, Type: tracks.Audio, Codec: "E-AC-3"}
	audio.Properties.Language = tracks.Some("eng")
	audio.Properties.Name = tracks.Some("Surround 5.1")
	audio.Properties.Default = tracks.Some(true)
	subs := &tracks.Track{ID: 9, Type: tracks.Subtitles, Codec: "SubRip/SRT"}

	out := FormatTracks(nil, tracks.Set{audio, subs}, Options{Title: "Audio tracks", FirstNumber: 3})

	for _, want := range []string{"Audio tracks", "NO.", "DEFAULT", "Audio", "Subtitles", "eng", "unknown", "none", "Surround 5.1", "yes", "no", "  3 │", "  4 │"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table:\n%s", want, out)
		}
	}
}

func TestFormatTracksEmptyPlaceholder(t *testing.T) {
	out := FormatTracks(nil, nil, Options{})
	if !strings.Contains(out, "no tracks to display") {
		t.Fatalf("expected placeholder row:\n%s", out)
	}
}

func TestFormatTracksDeterministic(t *testing.T) {
	set := tracks.Set{{ID: 0, Type: tracks.Video, Codec: "AVC"}}
	if FormatTracks(nil, set, Options{}) != FormatTracks(nil, set, Options{}) {
		t.Fatal("rendering must be deterministic")
	}
}

func TestRowTruncatesLongValues(t *testing.T) {
	track := &tracks.Track{ID: 1, Type: tracks.Audio, Codec: "AVC/H.264/MPEG-4p10 High Profile"}
	track.Properties.Name = tracks.Some("导演评论音轨，包含幕后花絮与访谈内容")

	row := Row(i18n.Default(), 1, track)
	codec := row[4].(string)
	name := row[5].(string)
	if runewidth.StringWidth(codec) > CodecWidth || !strings.HasSuffix(codec, "...") {
		t.Fatalf("codec not truncated: %q", codec)
	}
	if runewidth.StringWidth(name) > NameWidth || !strings.HasSuffix(name, "...") {
		t.Fatalf("name not truncated by display width: %q", name)
	}
}

func TestTruncateKeepsShortValues(t *testing.T) {
	if got := Truncate("AAC", CodecWidth); got != "AAC" {
		t.Fatalf("Truncate = %q", got)
	}
	exact := strings.Repeat("x", CodecWidth)
	if got := Truncate(exact, CodecWidth); got != exact {
		t.Fatalf("value at the limit must not be cut: %q", got)
	}
}

func TestTypeLabel(t *testing.T) {
	loc := i18n.Default()
	if got := TypeLabel(loc, tracks.Subtitles); got != "Subtitles" {
		t.Fatalf("TypeLabel = %q", got)
	}
	if got := TypeLabel(loc, tracks.Type("buttons")); got != "Buttons" {
		t.Fatalf("TypeLabel = %q", got)
	}
	if got := TypeLabel(i18n.New("zh"), tracks.Audio); got == "Audio" {
		t.Fatal("expected localized label")
	}
}

func TestRenderTracksWrites(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTracks(&buf, nil, nil, Options{}); err != nil {
		t.Fatalf("RenderTracks: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Fatal("expected trailing newline")
	}
}
