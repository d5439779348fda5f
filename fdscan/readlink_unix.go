//go:build unix

package fdscan

import (
	"github.com/cprobe/plog/pkg/pathbuf"
	"golang.org/x/sys/unix"
)

func readlink(path string, buf *pathbuf.LinkBuffer) error {
	n, err := unix.Readlink(path, buf.Bytes())
	if err != nil {
		buf.SetLen(0)
		return err
	}
	buf.SetLen(n)
	return nil
}
