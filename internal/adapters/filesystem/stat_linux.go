//go:build linux

package filesystem

import (
	"os"
	"syscall"
	"time"
)

// statTimes returns access time and inode change time.
// Linux exposes no birth time through Stat_t, so "created" is ctime.
func statTimes(info os.FileInfo) (accessed, created time.Time) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime(), info.ModTime()
	}
	accessed = time.Unix(int64(st.Atim.Sec), int64(st.Atim.Nsec))
	created = time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
	return accessed, created
}

func ownerID(info os.FileInfo) (uint32, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, false
	}
	return st.Uid, true
}
