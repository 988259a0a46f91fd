// Package selection drives the interactive choice of which tracks to keep.
//
// Tracks are grouped by type. Every track gets a display number that keeps
// counting across groups (video first, then audio, then subtitles), so the
// numbers a user types always match the tables printed above the prompt.
// Video tracks are kept without asking.
package selection

import (
	"errors"
	"log/slog"

	"mkvedit/internal/display"
	"mkvedit/internal/logging"
	"mkvedit/internal/prompt"
	"mkvedit/internal/tracks"
)

// Group is one type's slice of the original tracks and its display numbers.
type Group struct {
	Type   tracks.Type
	Tracks tracks.Set
	Range  Range
}

// Track returns the track shown with display number n.
func (g Group) Track(n int) *tracks.Track {
	if !g.Range.Contains(n) {
		return nil
	}
	return g.Tracks[n-g.Range.First]
}

// Groups partitions set into video, audio and subtitle groups with continuous
// display numbering. set is expected to be sorted by ID.
func Groups(set tracks.Set) []Group {
	groups := make([]Group, 0, len(tracks.SelectableTypes))
	next := 1
	for _, kind := range tracks.SelectableTypes {
		members := set.OfType(kind)
		groups = append(groups, Group{
			Type:   kind,
			Tracks: members,
			Range:  Range{First: next, Last: next + len(members) - 1},
		})
		next += len(members)
	}
	return groups
}

// Engine prompts for the tracks to keep.
type Engine struct {
	prompter *prompt.Prompter
	logger   *slog.Logger
}

// New constructs an Engine.
func New(p *prompt.Prompter, logger *slog.Logger) *Engine {
	return &Engine{
		prompter: p,
		logger:   logging.NewComponentLogger(logger, "selection"),
	}
}

// Select returns the chosen subset of original, sorted by ID. The returned set
// shares track records with original. An empty result is not an error here;
// the caller decides what to do with it.
func (e *Engine) Select(original tracks.Set) (tracks.Set, error) {
	var selected tracks.Set
	for _, group := range Groups(original) {
		chosen, err := e.selectGroup(group)
		if err != nil {
			return nil, err
		}
		selected = append(selected, chosen...)
	}
	selected.SortByID()
	e.logger.Debug("selection complete",
		logging.Int("selected", len(selected)),
		logging.Int("available", len(original)),
	)
	return selected, nil
}

func (e *Engine) selectGroup(group Group) (tracks.Set, error) {
	p := e.prompter
	title := p.T(groupTitle(group.Type))
	if group.Range.Empty() {
		p.Linef("%s: none found, skipping.", title)
		return nil, nil
	}
	if err := display.RenderTracks(p.Writer(), p.Locale(), group.Tracks, display.Options{
		Title:       title,
		FirstNumber: group.Range.First,
	}); err != nil {
		return nil, err
	}

	if group.Type == tracks.Video {
		p.Linef("Video tracks are kept automatically.")
		return append(tracks.Set(nil), group.Tracks...), nil
	}

	for {
		answer, err := p.Ask("Keep which %s? (numbers %d-%d separated by commas, all, or none): ",
			p.T(groupNoun(group.Type)), group.Range.First, group.Range.Last)
		if err != nil {
			return nil, err
		}
		numbers, err := Parse(answer, group.Range)
		if err != nil {
			e.reportInputError(err)
			continue
		}
		chosen := make(tracks.Set, 0, len(numbers))
		for _, n := range numbers {
			chosen = append(chosen, group.Track(n))
		}
		chosen.SortByID()
		return chosen, nil
	}
}

func (e *Engine) reportInputError(err error) {
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		e.prompter.Linef("Invalid input: %v", err)
		return
	}
	if errors.Is(err, ErrOutOfRange) {
		e.prompter.Linef("Number %d is out of range; enter numbers between %d and %d.",
			inputErr.Value, inputErr.Range.First, inputErr.Range.Last)
		return
	}
	e.prompter.Linef("Invalid input %q; use numbers separated by commas, all, or none.", inputErr.Token)
}

func groupTitle(t tracks.Type) string {
	switch t {
	case tracks.Video:
		return "Video tracks"
	case tracks.Audio:
		return "Audio tracks"
	default:
		return "Subtitle tracks"
	}
}

func groupNoun(t tracks.Type) string {
	switch t {
	case tracks.Video:
		return "video tracks"
	case tracks.Audio:
		return "audio tracks"
	default:
		return "subtitle tracks"
	}
}
