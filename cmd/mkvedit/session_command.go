package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mkvedit/internal/deps"
	"mkvedit/internal/i18n"
	"mkvedit/internal/logging"
	"mkvedit/internal/mkvmerge"
	"mkvedit/internal/preflight"
	"mkvedit/internal/session"
)

func runSession(cmd *cobra.Command, ctx *commandContext, input string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.newLogger()
	if err != nil {
		return err
	}

	if err := requireMkvmerge(preflight.CheckSystemDeps(cfg)); err != nil {
		return err
	}

	sess, err := session.New(session.Options{
		Config:    cfg,
		Muxer:     mkvmerge.New(cfg.MkvmergeBinary(), logger),
		In:        cmd.InOrStdin(),
		Out:       cmd.OutOrStdout(),
		Logger:    logger,
		InputPath: input,
	})
	if err != nil {
		return err
	}

	loc := i18n.New(cfg.UI.Language)
	result, err := sess.Run(cmd.Context())
	switch {
	case errors.Is(err, session.ErrCancelled):
		fmt.Fprintln(cmd.OutOrStdout(), loc.Sprintf("Operation cancelled; nothing was written."))
		return nil
	case errors.Is(err, session.ErrNoTracksSelected):
		return errors.New("no tracks selected; nothing was written")
	case err != nil:
		logging.ErrorWithContext(logger, "session failed", "session_failed",
			logging.Error(err),
			logging.String(logging.FieldSessionID, sess.ID()),
		)
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), loc.Sprintf("New file: %s", result.OutputPath))
	return nil
}

// requireMkvmerge turns a missing mkvmerge into an error before any prompt is shown.
func requireMkvmerge(statuses []deps.Status) error {
	var missing []string
	for _, status := range statuses {
		if status.Available || status.Optional {
			continue
		}
		detail := strings.TrimSpace(status.Detail)
		if detail == "" {
			detail = "not available"
		}
		missing = append(missing, fmt.Sprintf("%s: %s", status.Name, detail))
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%s; install MKVToolNix and make sure mkvmerge is on PATH (or set --mkvmerge)", strings.Join(missing, "; "))
}
