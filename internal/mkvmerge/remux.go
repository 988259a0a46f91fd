package mkvmerge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mkvedit/internal/logging"
)

// RemuxResult carries mkvmerge's output from a successful run.
type RemuxResult struct {
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Remux runs mkvmerge with args produced by BuildRemuxArgs. Both output
// streams are drained before it returns. Any non-zero exit is reported as an
// *ExecutionError carrying the streams verbatim.
func (c *Client) Remux(ctx context.Context, args []string) (RemuxResult, error) {
	if c == nil {
		return RemuxResult{}, errors.New("mkvmerge client not initialized")
	}
	if len(args) == 0 {
		return RemuxResult{}, errors.New("remux: no arguments")
	}

	logger := logging.WithContext(ctx, c.logger)
	logger.Info("starting remux",
		logging.String("command", FormatCommand(c.binary, args)),
		logging.String(logging.FieldEventType, "remux_started"),
	)

	start := time.Now()
	stdout, stderr, err := c.run(ctx, c.binary, args...)
	elapsed := time.Since(start)
	if err != nil {
		classified := classifyRunError(c.binary, err, stdout, stderr)
		logging.ErrorWithContext(logger, "remux failed", "remux_failed",
			logging.Error(classified),
			logging.Duration("elapsed", elapsed),
		)
		return RemuxResult{}, fmt.Errorf("remux: %w", classified)
	}

	logger.Info("remux complete",
		logging.Duration("elapsed", elapsed),
		logging.String(logging.FieldEventType, "remux_complete"),
	)
	return RemuxResult{
		Stdout:   string(stdout),
		Stderr:   string(stderr),
		Duration: elapsed,
	}, nil
}
