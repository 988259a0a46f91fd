package preflight

import (
	"path/filepath"

	"mkvedit/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunOutput checks that the directory receiving outputPath is writable and
// has room for roughly inputSize bytes. It returns nil when preflight is
// disabled in cfg.
func RunOutput(cfg *config.Config, outputPath string, inputSize int64) []Result {
	if cfg == nil || !cfg.Output.Preflight {
		return nil
	}
	dir := filepath.Dir(outputPath)
	results := []Result{CheckDirectoryAccess("Output directory", dir)}
	if inputSize > 0 {
		results = append(results, CheckFreeSpace("Free space", dir, uint64(inputSize)))
	}
	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
