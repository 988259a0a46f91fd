// Package editor implements the interactive rename and default-flag loop.
package editor

import (
	"log/slog"
	"strconv"
	"strings"

	"mkvedit/internal/display"
	"mkvedit/internal/logging"
	"mkvedit/internal/prompt"
	"mkvedit/internal/tracks"
)

const (
	finishToken = "f"
	clearToken  = "-"
)

type state int

const (
	stateListing state = iota
	stateAwaitingCommand
	stateEditingTrack
	stateDone
)

// Editor edits track names and default flags in place.
type Editor struct {
	prompter *prompt.Prompter
	logger   *slog.Logger
}

// New constructs an Editor.
func New(p *prompt.Prompter, logger *slog.Logger) *Editor {
	return &Editor{
		prompter: p,
		logger:   logging.NewComponentLogger(logger, "editor"),
	}
}

// Offer asks whether the user wants to edit and runs the loop if so. The
// default answer is no.
func (e *Editor) Offer(working tracks.Set) error {
	edit, err := e.prompter.Confirm(false, "Modify track names or default flags? (y/N): ")
	if err != nil {
		return err
	}
	if !edit {
		return nil
	}
	return e.Run(working)
}

// Run loops until the user finishes. Rows are numbered by list position.
func (e *Editor) Run(working tracks.Set) error {
	p := e.prompter
	st := stateListing
	var current *tracks.Track

	for st != stateDone {
		switch st {
		case stateListing:
			if err := display.RenderTracks(p.Writer(), p.Locale(), working, display.Options{
				Title: p.T("Current tracks"),
			}); err != nil {
				return err
			}
			st = stateAwaitingCommand

		case stateAwaitingCommand:
			answer, err := p.Ask("Row number to edit, or %s to finish: ", finishToken)
			if err != nil {
				return err
			}
			if strings.EqualFold(answer, finishToken) {
				st = stateDone
				continue
			}
			row, err := strconv.Atoi(answer)
			if err != nil || row < 1 || row > len(working) {
				p.Linef("Invalid row %q; enter a number between 1 and %d, or %s.", answer, len(working), finishToken)
				continue
			}
			current = working[row-1]
			st = stateEditingTrack

		case stateEditingTrack:
			if err := e.editTrack(working, current); err != nil {
				return err
			}
			st = stateListing
		}
	}
	return nil
}

func (e *Editor) editTrack(working tracks.Set, track *tracks.Track) error {
	p := e.prompter
	currentName := track.Properties.Name.Or("")
	if currentName == "" {
		currentName = p.T("none")
	}
	name, err := p.Ask("New name for track %d (current: %s; Enter keeps it, %s removes it): ",
		track.ID, currentName, clearToken)
	if err != nil {
		return err
	}
	switch name {
	case "":
	case clearToken:
		track.Properties.Name = tracks.Clear[string]()
		e.logger.Debug("track name cleared", logging.Int("track_id", track.ID))
	default:
		track.Properties.Name = tracks.Some(name)
		e.logger.Debug("track renamed", logging.Int("track_id", track.ID), logging.String("name", name))
	}

	if !track.Type.HasDefaultFlag() {
		return nil
	}
	answer, err := p.Ask("Make track %d the default %s? (y/n, Enter keeps %s): ",
		track.ID, display.TypeLabel(p.Locale(), track.Type), p.Locale().YesNo(track.Properties.Default.Or(false)))
	if err != nil {
		return err
	}
	if answer == "" {
		return nil
	}
	yes, ok := prompt.ParseYesNo(answer)
	switch {
	case !ok:
		p.Linef("Unrecognized answer; default flag unchanged.")
	case yes:
		working.MakeDefault(track)
		e.logger.Debug("default track set",
			logging.Int("track_id", track.ID),
			logging.String("type", string(track.Type)),
		)
	default:
		track.Properties.Default = tracks.Some(false)
	}
	return nil
}
