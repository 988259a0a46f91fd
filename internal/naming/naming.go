// Package naming derives output file names and resolves collisions.
package naming

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"mkvedit/internal/logging"
	"mkvedit/internal/prompt"
)

// DefaultSuffix is inserted between the input's stem and extension.
const DefaultSuffix = "_modified"

// maxRenameAttempts bounds the search for a free numbered name.
const maxRenameAttempts = 10000

// ErrCancelled is returned when the user declines to overwrite or rename.
var ErrCancelled = errors.New("cancelled by user")

// DefaultOutputPath returns <dir>/<stem><suffix><ext> for input.
func DefaultOutputPath(input, suffix string) string {
	return RenamedOutputPath(input, suffix, 0)
}

// RenamedOutputPath returns <dir>/<stem><suffix>_<n><ext>. n <= 0 omits the counter.
func RenamedOutputPath(input, suffix string, n int) string {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	dir := filepath.Dir(input)
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	name := stem + suffix
	if n > 0 {
		name += "_" + strconv.Itoa(n)
	}
	return filepath.Join(dir, name+ext)
}

// NextFreePath returns the first RenamedOutputPath, counting from 1, that does
// not exist on fs.
func NextFreePath(fs afero.Fs, input, suffix string) (string, error) {
	for n := 1; n <= maxRenameAttempts; n++ {
		candidate := RenamedOutputPath(input, suffix, n)
		exists, err := afero.Exists(fs, candidate)
		if err != nil {
			return "", fmt.Errorf("check %s: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free output name after %d attempts", maxRenameAttempts)
}

// Resolution is the output path chosen for a remux.
type Resolution struct {
	Path string
	// Existed is true when the user chose to overwrite an existing file.
	Existed bool
}

// Resolver picks the output path, asking the user on collision.
type Resolver struct {
	fs       afero.Fs
	prompter *prompt.Prompter
	suffix   string
	logger   *slog.Logger
}

// NewResolver constructs a Resolver over fs.
func NewResolver(fs afero.Fs, p *prompt.Prompter, suffix string, logger *slog.Logger) *Resolver {
	return &Resolver{
		fs:       fs,
		prompter: p,
		suffix:   suffix,
		logger:   logging.NewComponentLogger(logger, "naming"),
	}
}

// Resolve returns the output path for input. When the default name is taken
// the user may overwrite it (o), switch to the next free numbered name (r) or
// cancel (c), which yields ErrCancelled.
func (r *Resolver) Resolve(input string) (Resolution, error) {
	path := DefaultOutputPath(input, r.suffix)
	exists, err := afero.Exists(r.fs, path)
	if err != nil {
		return Resolution{}, fmt.Errorf("check %s: %w", path, err)
	}
	if !exists {
		return Resolution{Path: path}, nil
	}

	for {
		answer, err := r.prompter.Ask("Output file %s already exists. Overwrite (o), rename (r) or cancel (c)? ", path)
		if err != nil {
			return Resolution{}, err
		}
		switch strings.ToLower(answer) {
		case "o":
			r.logger.Info("overwriting existing output", logging.String("path", path))
			return Resolution{Path: path, Existed: true}, nil
		case "r":
			renamed, err := NextFreePath(r.fs, input, r.suffix)
			if err != nil {
				return Resolution{}, err
			}
			r.prompter.Linef("Output will be written to %s", renamed)
			return Resolution{Path: renamed}, nil
		case "c":
			return Resolution{}, ErrCancelled
		default:
			r.prompter.Linef("Please enter o, r or c.")
		}
	}
}
