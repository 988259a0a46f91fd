package mkvmerge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"mkvedit/internal/logging"
	"mkvedit/internal/tracks"
)

// Identification is the subset of `mkvmerge -J` output the tool relies on.
type Identification struct {
	Container struct {
		Recognized bool   `json:"recognized"`
		Supported  bool   `json:"supported"`
		Type       string `json:"type"`
	} `json:"container"`
	Tracks   tracks.Set `json:"tracks"`
	Warnings []string   `json:"warnings"`
	Errors   []string   `json:"errors"`
}

// ParseIdentification decodes mkvmerge JSON identification output. The
// returned tracks are sorted by ID.
func ParseIdentification(data []byte) (*Identification, error) {
	var probe struct {
		Identification
		Tracks *tracks.Set `json:"tracks"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, &FormatError{Err: err}
	}
	if probe.Tracks == nil {
		return nil, &FormatError{Err: errMissingTracks}
	}
	result := probe.Identification
	result.Tracks = nil
	for _, track := range *probe.Tracks {
		if track != nil {
			result.Tracks = append(result.Tracks, track)
		}
	}
	result.Tracks.SortByID()
	return &result, nil
}

// Probe runs `mkvmerge -J path` and returns the identified tracks.
func (c *Client) Probe(ctx context.Context, path string) (*Identification, error) {
	if c == nil {
		return nil, errors.New("mkvmerge client not initialized")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("probe: path is required")
	}

	logger := logging.WithContext(ctx, c.logger)
	logger.Debug("probing file",
		logging.String("path", path),
		logging.String("binary", c.binary),
	)

	stdout, stderr, err := c.run(ctx, c.binary, "-J", path)
	if err != nil {
		classified := classifyRunError(c.binary, err, stdout, stderr)
		var execErr *ExecutionError
		if errors.As(classified, &execErr) {
			// mkvmerge reports identification failures as JSON on stdout.
			if ident, parseErr := ParseIdentification(stdout); parseErr == nil {
				execErr.Messages = ident.Errors
			} else {
				var doc struct {
					Errors []string `json:"errors"`
				}
				if json.Unmarshal(stdout, &doc) == nil {
					execErr.Messages = doc.Errors
				}
			}
		}
		return nil, fmt.Errorf("probe %s: %w", path, classified)
	}

	ident, err := ParseIdentification(stdout)
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", path, err)
	}
	for _, warning := range ident.Warnings {
		logger.Warn("mkvmerge identification warning",
			logging.String("path", path),
			logging.String("warning", warning),
			logging.String(logging.FieldEventType, "probe_warning"),
		)
	}
	logger.Info("probe complete",
		logging.String("path", path),
		logging.String("container", ident.Container.Type),
		logging.Int("track_count", len(ident.Tracks)),
	)
	return ident, nil
}
