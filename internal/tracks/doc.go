// Package tracks models the track list reported by mkvmerge's identification
// output.
//
// Properties are sparse: a key missing from the probe means "leave it to
// mkvmerge", which is not the same thing as an explicit false or empty value.
// Field carries that three-way state (Unset, Cleared, Present) through the
// selection and editing phases so the remux arguments can be derived from it.
//
// A Set is an ordered slice of *Track. Filtering a Set yields a new slice over
// the same records, so edits made through the working set are visible wherever
// the record is referenced.
package tracks
