package mkvmerge

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
)

// ProbeError reports that the mkvmerge binary could not be started at all,
// because it is missing from PATH or exists without execute permission.
type ProbeError struct {
	Binary string
	Err    error
}

func (e *ProbeError) Error() string {
	if errors.Is(e.Err, fs.ErrPermission) {
		return fmt.Sprintf("%s is not executable: check its permissions: %v", e.Binary, e.Err)
	}
	return fmt.Sprintf("%s not found: install MKVToolNix and make sure %q is on PATH: %v", e.Binary, e.Binary, e.Err)
}

func (e *ProbeError) Unwrap() error { return e.Err }

// ExecutionError reports that mkvmerge ran but exited non-zero.
type ExecutionError struct {
	Binary   string
	ExitCode int
	Stdout   string
	Stderr   string
	// Messages holds the "errors" array from JSON identification output, if any.
	Messages []string
}

func (e *ExecutionError) Error() string {
	detail := e.Diagnostic()
	summary := fmt.Sprintf("%s exited with status %d", e.Binary, e.ExitCode)
	if e.ExitCode == 1 {
		summary += " (finished with warnings)"
	}
	if detail == "" {
		return summary
	}
	return summary + ": " + detail
}

// Diagnostic returns the most useful text mkvmerge produced: stderr, then the
// JSON error list, then stdout.
func (e *ExecutionError) Diagnostic() string {
	if s := strings.TrimSpace(e.Stderr); s != "" {
		return s
	}
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, "; ")
	}
	return strings.TrimSpace(e.Stdout)
}

// FormatError reports identification output that is not the expected JSON document.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("parse mkvmerge identification output: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// errMissingTracks is wrapped in a FormatError when the document has no tracks array.
var errMissingTracks = errors.New(`document has no "tracks" array`)

type exitCoder interface {
	ExitCode() int
}

// classifyRunError maps a command runner failure onto the error taxonomy.
func classifyRunError(binary string, err error, stdout, stderr []byte) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return &ProbeError{Binary: binary, Err: err}
	}
	var coder exitCoder
	if errors.As(err, &coder) && coder.ExitCode() >= 0 {
		return &ExecutionError{
			Binary:   binary,
			ExitCode: coder.ExitCode(),
			Stdout:   string(stdout),
			Stderr:   string(stderr),
		}
	}
	return fmt.Errorf("run %s: %w", binary, err)
}
