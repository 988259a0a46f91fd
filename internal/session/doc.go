// Package session drives one interactive mkvedit run.
//
// A session asks for the input file, probes it with mkvmerge, lets the user
// choose which tracks to keep and optionally rename them or move the default
// flag, picks a non-clashing output name, shows the exact mkvmerge command and
// runs it after a final confirmation. Nothing is written before that
// confirmation, and a partial output from a failed run is removed unless it
// replaced a file the user chose to overwrite.
package session
