package procutil

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/shirou/gopsutil/v3/process"
)

// ProcPrefix is the process directory prefix accepted in front of a pid argument.
const ProcPrefix = "/proc/"

var ErrInvalidPid = errors.New("invalid process id")

type PID int64

// ParsePidArgument accepts "nnnn" or "/proc/nnnn", where nnnn is a positive
// decimal number that doesn't begin with 0 and fits in an int64.
func ParsePidArgument(input string) (PID, error) {
	s := strings.TrimPrefix(input, ProcPrefix)
	if s == "" {
		return 0, fmt.Errorf("%w: %q is empty", ErrInvalidPid, input)
	}

	// strconv accepts a leading sign, plog does not
	if s[0] < '1' || s[0] > '9' {
		return 0, fmt.Errorf("%w: %q must start with a digit 1-9", ErrInvalidPid, input)
	}

	pid, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidPid, input)
		}
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidPid, input)
	}

	if pid < 1 {
		return 0, fmt.Errorf("%w: %d must be positive", ErrInvalidPid, pid)
	}

	return PID(pid), nil
}

// ValidPidArgument reports whether input is an acceptable pid argument.
func ValidPidArgument(input string) bool {
	_, err := ParsePidArgument(input)
	return err == nil
}

// IsProcessGone returns true if the error indicates the process no longer exists.
func IsProcessGone(err error) bool {
	if errors.Is(err, os.ErrNotExist) {
		return true
	}
	if errors.Is(err, syscall.ESRCH) {
		return true
	}
	return false
}

// ExecName returns the base name of the process executable, or "" when it
// cannot be read (exited process, kernel thread, missing permission).
func ExecName(pid PID) string {
	if pid > math.MaxInt32 {
		return ""
	}
	p := &process.Process{Pid: int32(pid)}
	exe, err := p.Exe()
	if err != nil || exe == "" {
		return ""
	}
	return filepath.Base(exe)
}
