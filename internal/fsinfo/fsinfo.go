// Package fsinfo is the filesystem metadata oracle used for staleness
// checks: existence and last-modified time of a path, nothing else.
package fsinfo

import (
	"fmt"
	"os"
	"time"
)

// Stat answers the two questions the staleness model asks of the
// filesystem. ModTime fails if the path does not exist.
type Stat interface {
	Exists(path string) bool
	ModTime(path string) (time.Time, error)
}

// osStat is the os.Stat-backed implementation of Stat.
type osStat struct{}

// OS returns a Stat backed by the real filesystem.
func OS() Stat {
	return osStat{}
}

func (osStat) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (osStat) ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return time.Time{}, fmt.Errorf("file %q not found", path)
		}
		return time.Time{}, fmt.Errorf("stat %q: %w", path, err)
	}
	return info.ModTime(), nil
}
