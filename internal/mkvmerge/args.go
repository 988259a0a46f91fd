package mkvmerge

import (
	"strconv"
	"strings"

	"al.essio.dev/pkg/shellescape"

	"mkvedit/internal/tracks"
)

type typeFlags struct {
	kind    tracks.Type
	include string
	exclude string
}

var remuxTypeFlags = []typeFlags{
	{kind: tracks.Video, include: "--video-tracks", exclude: "--no-video"},
	{kind: tracks.Audio, include: "--audio-tracks", exclude: "--no-audio"},
	{kind: tracks.Subtitles, include: "--subtitle-tracks", exclude: "--no-subtitles"},
}

// BuildRemuxArgs synthesizes the mkvmerge arguments that write final to
// output. original decides whether a type absent from final must be dropped
// explicitly. final is used in the order given.
func BuildRemuxArgs(input, output string, final, original tracks.Set) []string {
	args := []string{"-q", "-o", output}

	for _, flags := range remuxTypeFlags {
		kept := final.OfType(flags.kind)
		switch {
		case len(kept) > 0:
			args = append(args, flags.include, joinIDs(kept.IDs()))
		case original.Has(flags.kind):
			args = append(args, flags.exclude)
		}
	}

	for _, track := range final {
		id := strconv.Itoa(track.ID)
		// A missing name is written as an explicit clear.
		name, _ := track.Properties.Name.Get()
		args = append(args, "--track-name", id+":"+name)
		if flag, ok := track.Properties.Default.Get(); ok {
			args = append(args, "--default-track", id+":"+boolFlag(flag))
		}
	}

	return append(args, input)
}

// FormatCommand renders binary and args as a copy-pasteable shell command.
func FormatCommand(binary string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, binary)
	parts = append(parts, args...)
	return shellescape.QuoteCommand(parts)
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

func boolFlag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
