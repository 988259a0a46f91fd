package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const stubIdentification = `{
  "container": {"recognized": true, "supported": true, "type": "Matroska"},
  "tracks": [
    {"id": 0, "type": "video", "codec": "AVC/H.264/MPEG-4p10", "properties": {"default_track": true}},
    {"id": 1, "type": "audio", "codec": "AAC", "properties": {"language": "eng", "track_name": "Stereo"}},
    {"id": 2, "type": "audio", "codec": "AC-3", "properties": {"language": "jpn"}},
    {"id": 3, "type": "subtitles", "codec": "SubRip/SRT", "properties": {"language": "eng"}}
  ],
  "warnings": [],
  "errors": []
}`

type cliTestEnv struct {
	baseDir    string
	mediaDir   string
	inputPath  string
	stubPath   string
	argsPath   string
	configPath string
}

// setupCLITestEnv writes a fake mkvmerge that prints a fixed identification
// for -J, records remux arguments and creates the output file.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	env := &cliTestEnv{
		baseDir:  base,
		mediaDir: filepath.Join(base, "media"),
		stubPath: filepath.Join(base, "bin", "mkvmerge"),
		argsPath: filepath.Join(base, "remux-args.txt"),
	}
	env.inputPath = filepath.Join(env.mediaDir, "movie.mkv")
	env.configPath = filepath.Join(base, "config.toml")

	for _, dir := range []string{env.mediaDir, filepath.Dir(env.stubPath)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	if err := os.WriteFile(env.inputPath, []byte("matroska"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	script := fmt.Sprintf(`#!/bin/sh
case "$1" in
  --version)
    echo "mkvmerge v80.0 ('Roundabout') 64-bit"
    exit 0
    ;;
  -J)
    cat <<'JSON'
%s
JSON
    exit 0
    ;;
esac
echo "$@" > %q
printf 'remuxed' > "$3"
echo "Multiplexing took 1 second."
`, stubIdentification, env.argsPath)
	if err := os.WriteFile(env.stubPath, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	writeTestConfig(t, env.configPath, env.stubPath)
	return env
}

func writeTestConfig(t *testing.T, path, binary string) {
	t.Helper()
	content := fmt.Sprintf(`[mkvmerge]
binary = %q

[ui]
color = "never"

[logging]
level = "error"
`, binary)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath, stdin string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substring string) {
	t.Helper()
	if !strings.Contains(output, substring) {
		t.Fatalf("expected output to contain %q\n---\n%s", substring, output)
	}
}
