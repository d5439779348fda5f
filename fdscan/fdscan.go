// Package fdscan reports the log files a process holds open, by resolving
// the symbolic links under /proc/<pid>/fd.
package fdscan

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cprobe/plog/logger"
	"github.com/cprobe/plog/pkg/filter"
	"github.com/cprobe/plog/pkg/pathbuf"
)

const (
	DefaultProcRoot = "/proc"

	fdSuffix   = "/fd/"
	headerFmt  = "Pid no %s:\n"
	matchLabel = "Log path: "

	// entries read per Readdirnames call
	batchSize = 64
)

// OpenError is returned when the fd directory of a process cannot be opened.
type OpenError struct {
	Dir string
	Err error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("opendir %s: %v", e.Dir, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

type Scanner struct {
	// ProcRoot is prepended to bare pid arguments.
	ProcRoot string
	Out      io.Writer

	match filter.Filter
}

func New(out io.Writer) *Scanner {
	return &Scanner{
		ProcRoot: DefaultProcRoot,
		Out:      out,
		match:    filter.LogFilter(),
	}
}

// Dir returns the fd directory for a validated pid argument, bounded to
// pathbuf.PathMax bytes.
func (s *Scanner) Dir(pidArg string) string {
	var b pathbuf.Buffer
	s.dir(&b, pidArg)
	return b.String()
}

func (s *Scanner) dir(b *pathbuf.Buffer, pidArg string) {
	if strings.HasPrefix(pidArg, "/") {
		b.Set(pidArg).Append(fdSuffix)
		return
	}

	root := s.ProcRoot
	if root == "" {
		root = DefaultProcRoot
	}
	b.Set(strings.TrimSuffix(root, "/")).Append("/").Append(pidArg).Append(fdSuffix)
}

// Scan prints a header naming pidArg followed by every open descriptor whose
// link target ends with "log". pidArg must already be validated. Entries that
// cannot be resolved are skipped.
func (s *Scanner) Scan(pidArg string) error {
	var (
		fullpath pathbuf.Buffer
		linkpath pathbuf.Buffer
		target   pathbuf.LinkBuffer
	)
	defer fullpath.Reset()

	s.dir(&fullpath, pidArg)
	if fullpath.Truncated() {
		logger.Logger.Warnw("fdscan: directory path truncated", "arg", pidArg, "max", pathbuf.PathMax)
	}
	dir := fullpath.String()

	d, err := os.Open(dir)
	if err != nil {
		var pe *os.PathError
		if errors.As(err, &pe) {
			err = pe.Err
		}
		return &OpenError{Dir: dir, Err: err}
	}
	defer d.Close()

	fmt.Fprintf(s.Out, headerFmt, pidArg)

	matched := 0
	for {
		names, err := d.Readdirnames(batchSize)
		for _, name := range names {
			linkpath.Set(dir).Append(name)

			if err := readlink(linkpath.String(), &target); err != nil {
				logger.Logger.Debugw("fdscan: skip entry", "path", linkpath.String(), "error", err)
			} else if s.match.Match(target.String()) {
				fmt.Fprintf(s.Out, "%s%s\n", matchLabel, target.String())
				matched++
			}

			linkpath.Reset()
			target.Reset()
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("readdir %s: %w", dir, err)
		}
	}

	logger.Logger.Debugw("fdscan: done", "dir", dir, "matched", matched)
	return nil
}
