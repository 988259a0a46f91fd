package tracks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Type is the mkvmerge track type.
type Type string

// Track types as spelled by mkvmerge's identification output.
const (
	Video     Type = "video"
	Audio     Type = "audio"
	Subtitles Type = "subtitles"
)

// SelectableTypes lists the types offered for selection, in prompt order.
var SelectableTypes = []Type{Video, Audio, Subtitles}

// HasDefaultFlag reports whether the "one default per type" rule applies.
func (t Type) HasDefaultFlag() bool {
	return t == Audio || t == Subtitles
}

// Property keys understood by the editor; everything else is passed through.
const (
	keyTrackName    = "track_name"
	keyDefaultTrack = "default_track"
	keyLanguage     = "language"
)

// Properties holds the sparse per-track property mapping.
type Properties struct {
	Name     Field[string]
	Default  Field[bool]
	Language Field[string]
	// Extra keeps every other key from the probe verbatim.
	Extra map[string]json.RawMessage
}

// UnmarshalJSON records which keys were present so absence stays meaningful.
func (p *Properties) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Properties{}
	for key, value := range raw {
		if isNull(value) {
			continue
		}
		switch key {
		case keyTrackName:
			var name string
			if err := json.Unmarshal(value, &name); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			p.Name = Some(name)
		case keyDefaultTrack:
			var flag bool
			if err := json.Unmarshal(value, &flag); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			p.Default = Some(flag)
		case keyLanguage:
			var lang string
			if err := json.Unmarshal(value, &lang); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			p.Language = Some(lang)
		default:
			if p.Extra == nil {
				p.Extra = make(map[string]json.RawMessage)
			}
			p.Extra[key] = value
		}
	}
	return nil
}

func isNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

// Track is one elementary stream inside the container.
type Track struct {
	ID         int        `json:"id"`
	Type       Type       `json:"type"`
	Codec      string     `json:"codec"`
	Properties Properties `json:"properties"`
}

// Set is an ordered sequence of tracks. Subsets share the underlying *Track
// records with the set they were derived from.
type Set []*Track

// SortByID orders the set by container track ID.
func (s Set) SortByID() {
	sort.SliceStable(s, func(i, j int) bool { return s[i].ID < s[j].ID })
}

// OfType returns the tracks of the given type, preserving order.
func (s Set) OfType(t Type) Set {
	var out Set
	for _, track := range s {
		if track.Type == t {
			out = append(out, track)
		}
	}
	return out
}

// Has reports whether the set contains at least one track of type t.
func (s Set) Has(t Type) bool {
	for _, track := range s {
		if track.Type == t {
			return true
		}
	}
	return false
}

// IDs returns the track IDs in set order.
func (s Set) IDs() []int {
	ids := make([]int, 0, len(s))
	for _, track := range s {
		ids = append(ids, track.ID)
	}
	return ids
}

// MakeDefault marks target as the default track of its type and clears the
// flag on every same-type sibling that has it set. Siblings without an
// explicit flag are left alone.
func (s Set) MakeDefault(target *Track) {
	if target == nil {
		return
	}
	target.Properties.Default = Some(true)
	for _, track := range s {
		if track == target || track.Type != target.Type {
			continue
		}
		if track.Properties.Default.IsSet() {
			track.Properties.Default = Some(false)
		}
	}
}

// DefaultCount returns how many tracks of type t have the default flag set to true.
func (s Set) DefaultCount(t Type) int {
	count := 0
	for _, track := range s {
		if track.Type == t && track.Properties.Default.Or(false) {
			count++
		}
	}
	return count
}
