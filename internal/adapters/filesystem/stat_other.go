//go:build !linux && !darwin

package filesystem

import (
	"os"
	"time"
)

// statTimes falls back to the modification time where the platform's
// stat structure is not handled
func statTimes(info os.FileInfo) (accessed, created time.Time) {
	return info.ModTime(), info.ModTime()
}

func ownerID(info os.FileInfo) (uint32, bool) {
	return 0, false
}
