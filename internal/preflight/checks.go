package preflight

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"golang.org/x/sys/unix"

	"mkvedit/internal/config"
	"mkvedit/internal/deps"
)

// CheckDirectoryAccess verifies that the directory exists and can receive new files.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not writable: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (writable)", path)}
}

// CheckFreeSpace verifies that the file system holding dir has at least
// needed bytes available to unprivileged users.
func CheckFreeSpace(name, dir string, needed uint64) Result {
	var stat unix.Statfs_t
	if err := unix.Statfs(dir, &stat); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: statfs: %v)", dir, err)}
	}
	available := stat.Bavail * uint64(stat.Bsize)
	if available < needed {
		return Result{Name: name, Detail: fmt.Sprintf("%s free, about %s needed", humanize.IBytes(available), humanize.IBytes(needed))}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s free", humanize.IBytes(available))}
}

// CheckSystemDeps evaluates the external binaries required by the given config.
func CheckSystemDeps(cfg *config.Config) []deps.Status {
	binary := "mkvmerge"
	if cfg != nil {
		binary = cfg.MkvmergeBinary()
	}
	return deps.CheckBinaries([]deps.Requirement{deps.MkvmergeRequirement(binary)})
}
