//go:build darwin

package filesystem

import (
	"os"
	"syscall"
	"time"
)

// statTimes returns access time and birth time
func statTimes(info os.FileInfo) (accessed, created time.Time) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime(), info.ModTime()
	}
	accessed = time.Unix(st.Atimespec.Sec, st.Atimespec.Nsec)
	created = time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec)
	return accessed, created
}

func ownerID(info os.FileInfo) (uint32, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, false
	}
	return st.Uid, true
}
