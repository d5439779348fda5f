//go:build !unix

package fdscan

import (
	"os"

	"github.com/cprobe/plog/pkg/pathbuf"
)

func readlink(path string, buf *pathbuf.LinkBuffer) error {
	target, err := os.Readlink(path)
	if err != nil {
		buf.SetLen(0)
		return err
	}
	buf.SetLen(copy(buf.Bytes(), target))
	return nil
}
