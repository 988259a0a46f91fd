// Package display renders track lists as terminal tables.
package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"mkvedit/internal/i18n"
	"mkvedit/internal/tracks"
)

// Column widths, in terminal cells, beyond which values are truncated.
const (
	CodecWidth = 18
	NameWidth  = 27
)

const ellipsis = "..."

// Options controls table rendering.
type Options struct {
	// Title is printed above the table; empty omits it.
	Title string
	// FirstNumber is the row number of the first track (default 1).
	FirstNumber int
}

// RenderTracks writes set as a fixed-column table. An empty set renders a
// placeholder row.
func RenderTracks(w io.Writer, loc *i18n.Locale, set tracks.Set, opts Options) error {
	_, err := fmt.Fprintln(w, FormatTracks(loc, set, opts))
	return err
}

// FormatTracks returns the table RenderTracks would write, without a trailing newline.
func FormatTracks(loc *i18n.Locale, set tracks.Set, opts Options) string {
	if loc == nil {
		loc = i18n.Default()
	}
	first := opts.FirstNumber
	if first <= 0 {
		first = 1
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if title := strings.TrimSpace(opts.Title); title != "" {
		tw.SetTitle(title)
	}
	tw.AppendHeader(table.Row{
		loc.Sprintf("No."),
		loc.Sprintf("Type"),
		loc.Sprintf("ID"),
		loc.Sprintf("Language"),
		loc.Sprintf("Codec"),
		loc.Sprintf("Name"),
		loc.Sprintf("Default"),
	})

	if len(set) == 0 {
		placeholder := loc.Sprintf("no tracks to display")
		row := make(table.Row, 7)
		for i := range row {
			row[i] = placeholder
		}
		tw.AppendRow(row, table.RowConfig{AutoMerge: true})
	}
	for i, track := range set {
		tw.AppendRow(Row(loc, first+i, track))
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// Row builds the table cells for one track.
func Row(loc *i18n.Locale, number int, track *tracks.Track) table.Row {
	lang := track.Properties.Language.Or("")
	if strings.TrimSpace(lang) == "" {
		lang = loc.Sprintf("unknown")
	}
	name := track.Properties.Name.Or("")
	if name == "" {
		name = loc.Sprintf("none")
	}
	return table.Row{
		strconv.Itoa(number),
		TypeLabel(loc, track.Type),
		strconv.Itoa(track.ID),
		lang,
		Truncate(track.Codec, CodecWidth),
		Truncate(name, NameWidth),
		loc.YesNo(track.Properties.Default.Or(false)),
	}
}

// TypeLabel returns the capitalized, localized name of a track type.
func TypeLabel(loc *i18n.Locale, t tracks.Type) string {
	switch t {
	case tracks.Video:
		return loc.Sprintf("Video")
	case tracks.Audio:
		return loc.Sprintf("Audio")
	case tracks.Subtitles:
		return loc.Sprintf("Subtitles")
	default:
		return cases.Title(language.English).String(string(t))
	}
}

// Truncate shortens s to at most width terminal cells, ending in "..." when cut.
func Truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}
