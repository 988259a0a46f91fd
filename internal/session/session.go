package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"mkvedit/internal/config"
	"mkvedit/internal/display"
	"mkvedit/internal/editor"
	"mkvedit/internal/i18n"
	"mkvedit/internal/logging"
	"mkvedit/internal/mkvmerge"
	"mkvedit/internal/naming"
	"mkvedit/internal/preflight"
	"mkvedit/internal/prompt"
	"mkvedit/internal/selection"
	"mkvedit/internal/tracks"
)

var (
	// ErrNoTracks is returned when mkvmerge reports a file without tracks.
	ErrNoTracks = errors.New("no tracks found in file")
	// ErrNoTracksSelected is returned when the user keeps no track at all.
	ErrNoTracksSelected = errors.New("no tracks selected")
	// ErrCancelled is returned when the user stops before mkvmerge runs.
	ErrCancelled = naming.ErrCancelled
)

// Muxer is the mkvmerge surface a session needs.
type Muxer interface {
	Binary() string
	Probe(ctx context.Context, path string) (*mkvmerge.Identification, error)
	Remux(ctx context.Context, args []string) (mkvmerge.RemuxResult, error)
}

// Options configures a session.
type Options struct {
	Config *config.Config
	Muxer  Muxer
	In     io.Reader
	Out    io.Writer
	Logger *slog.Logger

	// FS defaults to the operating system file system.
	FS afero.Fs

	// InputPath, when set, answers the first prompt.
	InputPath string

	// LockDir holds output lock files; defaults to os.TempDir().
	LockDir string
}

// Result summarizes a completed remux.
type Result struct {
	InputPath  string
	OutputPath string
	Args       []string
	Remux      mkvmerge.RemuxResult
}

// Session runs one interactive selection and remux.
type Session struct {
	id       string
	cfg      *config.Config
	muxer    Muxer
	fs       afero.Fs
	prompter *prompt.Prompter
	logger   *slog.Logger
	preset   string
	lockDir  string
}

// New validates opts and constructs a Session.
func New(opts Options) (*Session, error) {
	if opts.Muxer == nil {
		return nil, errors.New("session: muxer is required")
	}
	if opts.In == nil || opts.Out == nil {
		return nil, errors.New("session: input and output streams are required")
	}
	cfg := opts.Config
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}
	fs := opts.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}
	id := uuid.NewString()
	logger := logging.NewComponentLogger(opts.Logger, "session").With(logging.String(logging.FieldSessionID, id))
	return &Session{
		id:       id,
		cfg:      cfg,
		muxer:    opts.Muxer,
		fs:       fs,
		prompter: prompt.New(opts.In, opts.Out, i18n.New(cfg.UI.Language)),
		logger:   logger,
		preset:   strings.TrimSpace(opts.InputPath),
		lockDir:  opts.LockDir,
	}, nil
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// Run walks through input selection, probing, track selection, editing,
// output naming and confirmation, then runs mkvmerge.
func (s *Session) Run(ctx context.Context) (Result, error) {
	ctx = logging.WithSessionID(ctx, s.id)
	p := s.prompter

	input, inputSize, err := s.askInput()
	if err != nil {
		return Result{}, err
	}
	s.logger.Info("session started",
		logging.String("input", input),
		logging.String("size", humanize.IBytes(uint64(inputSize))),
	)

	ident, err := s.muxer.Probe(ctx, input)
	if err != nil {
		return Result{}, err
	}
	original := ident.Tracks
	if len(original) == 0 {
		return Result{}, ErrNoTracks
	}
	original.SortByID()
	if err := s.render(p.T("Tracks in %s", filepath.Base(input)), original); err != nil {
		return Result{}, err
	}

	working, err := selection.New(p, s.logger).Select(original)
	if err != nil {
		return Result{}, err
	}
	if len(working) == 0 {
		return Result{}, ErrNoTracksSelected
	}
	if err := s.render(p.T("Tracks kept"), working); err != nil {
		return Result{}, err
	}

	if err := editor.New(p, s.logger).Offer(working); err != nil {
		return Result{}, err
	}
	working.SortByID()
	s.logLayout(working)
	if err := s.render(p.T("Final track layout"), working); err != nil {
		return Result{}, err
	}

	resolution, err := naming.NewResolver(s.fs, p, s.cfg.Output.Suffix, s.logger).Resolve(input)
	if err != nil {
		return Result{}, err
	}
	s.logger.Debug("output resolved",
		logging.String("output", resolution.Path),
		logging.Bool("overwrite", resolution.Existed),
	)

	args := mkvmerge.BuildRemuxArgs(input, resolution.Path, working, original)
	p.Linef("")
	p.Linef("mkvmerge command:")
	fmt.Fprintln(p.Writer(), mkvmerge.FormatCommand(s.muxer.Binary(), args))

	run, err := p.Confirm(false, "Run this command? (y/N): ")
	if err != nil {
		return Result{}, err
	}
	if !run {
		return Result{}, ErrCancelled
	}

	for _, failed := range preflight.Failed(preflight.RunOutput(s.cfg, resolution.Path, inputSize)) {
		p.Linef("Warning: %s: %s", p.T(failed.Name), failed.Detail)
		logging.WarnWithContext(s.logger, "output preflight check failed", "preflight_failed",
			logging.String("check", failed.Name),
			logging.String("detail", failed.Detail),
			logging.String(logging.FieldImpact, "mkvmerge may fail to write the output"),
		)
	}

	remux, err := s.remux(ctx, resolution, args)
	if err != nil {
		return Result{}, err
	}
	return Result{
		InputPath:  input,
		OutputPath: resolution.Path,
		Args:       args,
		Remux:      remux,
	}, nil
}

func (s *Session) askInput() (string, int64, error) {
	p := s.prompter
	preset := s.preset
	for {
		raw := preset
		preset = ""
		if raw == "" {
			answer, err := p.Ask("Path to the MKV file: ")
			if err != nil {
				return "", 0, err
			}
			raw = answer
		}
		path := cleanInputPath(raw)
		if path == "" {
			continue
		}

		info, err := s.fs.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			p.Linef("File %q does not exist or is not a regular file. Please try again.", path)
			continue
		}
		if !strings.EqualFold(filepath.Ext(path), ".mkv") {
			proceed, err := p.Confirm(false, "Warning: %q may not be an MKV file. Continue anyway? (y/N): ", path)
			if err != nil {
				return "", 0, err
			}
			if !proceed {
				continue
			}
		}
		return path, info.Size(), nil
	}
}

// cleanInputPath strips the quotes terminals add when a file is dropped onto
// them and expands a leading tilde.
func cleanInputPath(raw string) string {
	path := strings.TrimSpace(raw)
	if len(path) >= 2 {
		if (path[0] == '"' && path[len(path)-1] == '"') || (path[0] == '\'' && path[len(path)-1] == '\'') {
			path = path[1 : len(path)-1]
		}
	}
	if expanded, err := config.ExpandPath(path); err == nil {
		path = expanded
	}
	return path
}

// logLayout records the edited state of every kept track, including whether a
// missing name was never set or removed by the user.
func (s *Session) logLayout(working tracks.Set) {
	for _, track := range working {
		s.logger.Debug("final track",
			logging.Int("track_id", track.ID),
			logging.String("type", string(track.Type)),
			logging.String("name_state", track.Properties.Name.State().String()),
			logging.String("default_state", track.Properties.Default.State().String()),
		)
	}
	s.logger.Debug("final default flags",
		logging.Int("audio_defaults", working.DefaultCount(tracks.Audio)),
		logging.Int("subtitle_defaults", working.DefaultCount(tracks.Subtitles)),
	)
}

func (s *Session) render(title string, set tracks.Set) error {
	p := s.prompter
	p.Linef("")
	return display.RenderTracks(p.Writer(), p.Locale(), set, display.Options{Title: title})
}

func (s *Session) remux(ctx context.Context, resolution naming.Resolution, args []string) (mkvmerge.RemuxResult, error) {
	p := s.prompter

	lock, err := acquireOutputLock(s.lockDir, resolution.Path)
	if err != nil {
		return mkvmerge.RemuxResult{}, err
	}
	defer func() {
		if err := lock.release(); err != nil {
			s.logger.Warn("failed to release output lock", logging.Error(err))
		}
	}()

	p.Linef("Writing %s ...", resolution.Path)
	result, err := s.muxer.Remux(ctx, args)
	if err != nil {
		var execErr *mkvmerge.ExecutionError
		if errors.As(err, &execErr) {
			printStream(p, "mkvmerge output:", execErr.Stdout)
			printStream(p, "mkvmerge errors:", execErr.Stderr)
		}
		s.removePartialOutput(resolution)
		return mkvmerge.RemuxResult{}, err
	}

	p.Linef("Done in %s.", result.Duration.Round(time.Millisecond))
	if info, statErr := s.fs.Stat(resolution.Path); statErr == nil {
		p.Linef("Wrote %s (%s).", resolution.Path, humanize.IBytes(uint64(info.Size())))
	}
	printStream(p, "mkvmerge output:", result.Stdout)
	printStream(p, "mkvmerge warnings/info:", result.Stderr)
	s.logger.Info("session complete", logging.String("output", resolution.Path))
	return result, nil
}

// removePartialOutput deletes a file left by a failed run, unless the user
// chose to overwrite a file that was already there.
func (s *Session) removePartialOutput(resolution naming.Resolution) {
	if resolution.Existed {
		return
	}
	exists, err := afero.Exists(s.fs, resolution.Path)
	if err != nil || !exists {
		return
	}
	if err := s.fs.Remove(resolution.Path); err != nil {
		s.logger.Warn("failed to remove partial output",
			logging.String("path", resolution.Path),
			logging.Error(err),
		)
		return
	}
	s.logger.Info("removed partial output", logging.String("path", resolution.Path))
}

func printStream(p *prompt.Prompter, heading, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	p.Linef(heading)
	fmt.Fprintln(p.Writer(), text)
}
