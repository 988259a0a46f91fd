package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"mkvedit/internal/config"
	"mkvedit/internal/logging"
	"mkvedit/internal/mkvmerge"
	"mkvedit/internal/prompt"
	"mkvedit/internal/tracks"
)

type fakeMuxer struct {
	fs         afero.Fs
	tracks     tracks.Set
	probeErr   error
	remuxErr   error
	writeOut   bool
	probed     []string
	remuxCalls [][]string
}

func (f *fakeMuxer) Binary() string { return "mkvmerge" }

func (f *fakeMuxer) Probe(_ context.Context, path string) (*mkvmerge.Identification, error) {
	f.probed = append(f.probed, path)
	if f.probeErr != nil {
		return nil, f.probeErr
	}
	return &mkvmerge.Identification{Tracks: f.tracks}, nil
}

func (f *fakeMuxer) Remux(_ context.Context, args []string) (mkvmerge.RemuxResult, error) {
	f.remuxCalls = append(f.remuxCalls, args)
	if f.writeOut {
		if err := afero.WriteFile(f.fs, args[2], []byte("remuxed"), 0o644); err != nil {
			return mkvmerge.RemuxResult{}, err
		}
	}
	if f.remuxErr != nil {
		return mkvmerge.RemuxResult{}, f.remuxErr
	}
	return mkvmerge.RemuxResult{Stdout: "Multiplexing took 1 second."}, nil
}

type harness struct {
	fs     afero.Fs
	muxer  *fakeMuxer
	out    *bytes.Buffer
	logger *slog.Logger
}

func newHarness(t *testing.T, set tracks.Set) *harness {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/media/movie.mkv", []byte("matroska"), 0o644); err != nil {
		t.Fatal(err)
	}
	return &harness{fs: fs, muxer: &fakeMuxer{fs: fs, tracks: set, writeOut: true}, out: &bytes.Buffer{}}
}

func (h *harness) run(t *testing.T, input string) (Result, error) {
	t.Helper()
	cfg := config.Default()
	cfg.Output.Preflight = false
	s, err := New(Options{
		Config:  &cfg,
		Muxer:   h.muxer,
		FS:      h.fs,
		In:      strings.NewReader(input),
		Out:     h.out,
		Logger:  h.logger,
		LockDir: t.TempDir(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s.Run(context.Background())
}

func movieTracks(withSubtitles bool) tracks.Set {
	set := tracks.Set{
		{ID: 2, Type: tracks.Audio, Codec: "AC-3"},
		{ID: 0, Type: tracks.Video, Codec: "AVC"},
		{ID: 1, Type: tracks.Audio, Codec: "AAC"},
	}
	if withSubtitles {
		set = append(set, &tracks.Track{ID: 3, Type: tracks.Subtitles, Codec: "SubRip/SRT"})
	}
	return set
}

func TestRunEndToEnd(t *testing.T) {
	h := newHarness(t, movieTracks(false))

	// Display numbers: video 1, audio 2-3. Audio id 1 is number 2.
	res, err := h.run(t, "/media/movie.mkv\n2\n\ny\n")
	if err != nil {
		t.Fatalf("Run: %v\n%s", err, h.out.String())
	}
	want := []string{
		"-q", "-o", "/media/movie_modified.mkv",
		"--video-tracks", "0",
		"--audio-tracks", "1",
		"--track-name", "0:",
		"--track-name", "1:",
		"/media/movie.mkv",
	}
	if !reflect.DeepEqual(res.Args, want) {
		t.Fatalf("args mismatch\n got: %q\nwant: %q", res.Args, want)
	}
	if len(h.muxer.remuxCalls) != 1 {
		t.Fatalf("expected one remux, got %d", len(h.muxer.remuxCalls))
	}
	if res.OutputPath != "/media/movie_modified.mkv" {
		t.Fatalf("output = %q", res.OutputPath)
	}
	out := h.out.String()
	for _, want := range []string{"mkvmerge command:", "mkvmerge -q -o /media/movie_modified.mkv", "Multiplexing took"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRunDroppedSubtitlesAreExcluded(t *testing.T) {
	h := newHarness(t, movieTracks(true))

	res, err := h.run(t, "/media/movie.mkv\nall\nnone\n\ny\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !slices.Contains(res.Args, "--no-subtitles") {
		t.Fatalf("expected --no-subtitles in %q", res.Args)
	}
	if res.Args[len(res.Args)-1] != "/media/movie.mkv" {
		t.Fatalf("input must be last: %q", res.Args)
	}
}

func TestRunEditsFlowIntoCommand(t *testing.T) {
	h := newHarness(t, movieTracks(false))

	// Keep both audio tracks, rename row 3 (audio id 2) and make it default.
	res, err := h.run(t, "/media/movie.mkv\nall\ny\n3\nCommentary\ny\nf\ny\n")
	if err != nil {
		t.Fatalf("Run: %v\n%s", err, h.out.String())
	}
	joined := strings.Join(res.Args, " ")
	if !strings.Contains(joined, "--track-name 2:Commentary --default-track 2:1") {
		t.Fatalf("edit missing from args: %q", res.Args)
	}
	if strings.Contains(joined, "--default-track 1:") {
		t.Fatalf("untouched sibling must carry no default flag: %q", res.Args)
	}
}

func TestRunLogsFinalTrackStates(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "mkvedit.log")
	logger, err := logging.New(logging.Options{Format: "json", Level: "debug", OutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	h := newHarness(t, movieTracks(false))
	h.logger = logger

	// Keep both audio tracks, clear the name of row 3 (audio id 2) and make it default.
	if _, err := h.run(t, "/media/movie.mkv\nall\ny\n3\n-\ny\nf\ny\n"); err != nil {
		t.Fatalf("Run: %v\n%s", err, h.out.String())
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	states := make(map[int]map[string]any)
	var defaults map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		var record map[string]any
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		switch record["msg"] {
		case "final track":
			states[int(record["track_id"].(float64))] = record
		case "final default flags":
			defaults = record
		}
	}

	if got := states[2]["name_state"]; got != "cleared" {
		t.Fatalf("track 2 name_state = %v, want cleared", got)
	}
	if got := states[2]["default_state"]; got != "present" {
		t.Fatalf("track 2 default_state = %v, want present", got)
	}
	if got := states[1]["name_state"]; got != "unset" {
		t.Fatalf("track 1 name_state = %v, want unset", got)
	}
	if defaults == nil || defaults["audio_defaults"] != float64(1) || defaults["subtitle_defaults"] != float64(0) {
		t.Fatalf("unexpected default counts: %v", defaults)
	}
	if states[2][logging.FieldSessionID] == nil {
		t.Fatalf("final track log missing session id: %v", states[2])
	}
}

func TestRunNoTracksSelected(t *testing.T) {
	h := newHarness(t, tracks.Set{{ID: 0, Type: tracks.Audio}})
	_, err := h.run(t, "/media/movie.mkv\nnone\n")
	if !errors.Is(err, ErrNoTracksSelected) {
		t.Fatalf("expected ErrNoTracksSelected, got %v", err)
	}
	if len(h.muxer.remuxCalls) != 0 {
		t.Fatal("mkvmerge must not run")
	}
}

func TestRunNoTracksInFile(t *testing.T) {
	h := newHarness(t, nil)
	if _, err := h.run(t, "/media/movie.mkv\n"); !errors.Is(err, ErrNoTracks) {
		t.Fatalf("expected ErrNoTracks, got %v", err)
	}
}

func TestRunProbeErrorAborts(t *testing.T) {
	h := newHarness(t, nil)
	h.muxer.probeErr = &mkvmerge.ProbeError{Binary: "mkvmerge", Err: errors.New("not found")}
	_, err := h.run(t, "/media/movie.mkv\n")
	var probeErr *mkvmerge.ProbeError
	if !errors.As(err, &probeErr) {
		t.Fatalf("expected ProbeError, got %v", err)
	}
}

func TestRunCancelledAtConfirmation(t *testing.T) {
	h := newHarness(t, movieTracks(false))
	_, err := h.run(t, "/media/movie.mkv\nall\n\nn\n")
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
	if len(h.muxer.remuxCalls) != 0 {
		t.Fatal("mkvmerge must not run after cancel")
	}
}

func TestRunCollisionRenameAndCancel(t *testing.T) {
	h := newHarness(t, movieTracks(false))
	if err := afero.WriteFile(h.fs, "/media/movie_modified.mkv", []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := h.run(t, "/media/movie.mkv\nall\n\nr\ny\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.OutputPath != "/media/movie_modified_1.mkv" {
		t.Fatalf("output = %q", res.OutputPath)
	}

	_, err = h.run(t, "/media/movie.mkv\nall\n\nc\n")
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
}

func TestRunFailureRemovesNewPartialOutput(t *testing.T) {
	h := newHarness(t, movieTracks(false))
	h.muxer.remuxErr = &mkvmerge.ExecutionError{Binary: "mkvmerge", ExitCode: 2, Stderr: "Error: disk full"}

	_, err := h.run(t, "/media/movie.mkv\nall\n\ny\n")
	var execErr *mkvmerge.ExecutionError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected ExecutionError, got %v", err)
	}
	if exists, _ := afero.Exists(h.fs, "/media/movie_modified.mkv"); exists {
		t.Fatal("partial output should be removed")
	}
	if !strings.Contains(h.out.String(), "Error: disk full") {
		t.Fatalf("diagnostic not shown:\n%s", h.out.String())
	}
}

func TestRunFailureKeepsOverwrittenFile(t *testing.T) {
	h := newHarness(t, movieTracks(false))
	h.muxer.writeOut = false
	h.muxer.remuxErr = &mkvmerge.ExecutionError{Binary: "mkvmerge", ExitCode: 2}
	if err := afero.WriteFile(h.fs, "/media/movie_modified.mkv", []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := h.run(t, "/media/movie.mkv\nall\n\no\ny\n"); err == nil {
		t.Fatal("expected failure")
	}
	data, err := afero.ReadFile(h.fs, "/media/movie_modified.mkv")
	if err != nil || string(data) != "old" {
		t.Fatalf("existing file must be left alone, got %q, %v", data, err)
	}
}

func TestAskInputValidation(t *testing.T) {
	h := newHarness(t, movieTracks(false))
	if err := afero.WriteFile(h.fs, "/media/clip.mp4", []byte("mp4"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := h.fs.MkdirAll("/media/dir", 0o755); err != nil {
		t.Fatal(err)
	}

	input := "/media/missing.mkv\n/media/dir\n/media/clip.mp4\nn\n'/media/clip.mp4'\ny\nnone\n\ny\n"
	if _, err := h.run(t, input); err != nil {
		t.Fatalf("Run: %v\n%s", err, h.out.String())
	}
	if !reflect.DeepEqual(h.muxer.probed, []string{"/media/clip.mp4"}) {
		t.Fatalf("probed %v", h.muxer.probed)
	}
	out := h.out.String()
	if strings.Count(out, "does not exist or is not a regular file") != 2 {
		t.Fatalf("expected two rejections:\n%s", out)
	}
	if strings.Count(out, "may not be an MKV file") != 2 {
		t.Fatalf("expected two non-mkv confirmations:\n%s", out)
	}
}

func TestRunInputClosed(t *testing.T) {
	h := newHarness(t, movieTracks(false))
	if _, err := h.run(t, ""); !errors.Is(err, prompt.ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestPresetInputSkipsPrompt(t *testing.T) {
	h := newHarness(t, movieTracks(false))
	cfg := config.Default()
	cfg.Output.Preflight = false
	s, err := New(Options{
		Config:    &cfg,
		Muxer:     h.muxer,
		FS:        h.fs,
		In:        strings.NewReader("all\n\ny\n"),
		Out:       h.out,
		InputPath: "/media/movie.mkv",
		LockDir:   t.TempDir(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.Contains(h.out.String(), "Path to the MKV file") {
		t.Fatal("preset input should not prompt for a path")
	}
}

func TestOutputLockIsExclusive(t *testing.T) {
	dir := t.TempDir()
	first, err := acquireOutputLock(dir, "/media/movie_modified.mkv")
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if _, err := acquireOutputLock(dir, "/media/movie_modified.mkv"); !errors.Is(err, ErrOutputBusy) {
		t.Fatalf("expected ErrOutputBusy, got %v", err)
	}
	other, err := acquireOutputLock(dir, "/media/other.mkv")
	if err != nil {
		t.Fatalf("different output should lock independently: %v", err)
	}
	_ = other.release()
	if err := first.release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	again, err := acquireOutputLock(dir, "/media/movie_modified.mkv")
	if err != nil {
		t.Fatalf("reacquire: %v", err)
	}
	_ = again.release()
}

func TestCleanInputPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	tests := map[string]string{
		`  "/a b/c.mkv" `: "/a b/c.mkv",
		`'/x.mkv'`:        "/x.mkv",
		`~/v.mkv`:         "/home/tester/v.mkv",
	}
	for in, want := range tests {
		if got := cleanInputPath(in); got != want {
			t.Fatalf("cleanInputPath(%q) = %q, want %q", in, got, want)
		}
	}
}
