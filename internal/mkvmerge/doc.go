// Package mkvmerge wraps the MKVToolNix mkvmerge executable.
//
// Client.Probe runs `mkvmerge -J` and decodes the identification document into
// a tracks.Set. BuildRemuxArgs turns the selected and edited tracks into the
// argument list for a remux, and Client.Remux executes it. Failures are
// reported as *ProbeError (binary missing), *ExecutionError (non-zero exit) or
// *FormatError (unreadable identification output).
package mkvmerge
