package procutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"syscall"
	"testing"
)

func TestValidPidArgument(t *testing.T) {
	cases := []struct {
		input string
		valid bool
	}{
		{"123", true},
		{"1", true},
		{"/proc/123", true},
		{"/proc/1", true},
		{"9223372036854775807", true},
		{"0", false},
		{"-5", false},
		{"+5", false},
		{"12a", false},
		{"a12", false},
		{"", false},
		{"/proc/", false},
		{"/proc/0", false},
		{"/proc/12/", false},
		{"/proc//12", false},
		{"/proc/self", false},
		{"/sys/123", false},
		{"proc/123", false},
		{"0123", false},
		{" 123", false},
		{"123 ", false},
		{"1 2", false},
		{"1/2", false},
		{"9223372036854775808", false},
		{"99999999999999999999999", false},
	}

	for _, c := range cases {
		if got := ValidPidArgument(c.input); got != c.valid {
			t.Errorf("ValidPidArgument(%q) = %v, want %v", c.input, got, c.valid)
		}
	}
}

func TestParsePidArgumentValue(t *testing.T) {
	pid, err := ParsePidArgument("/proc/4242")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pid != 4242 {
		t.Fatalf("expected pid=4242, got %d", pid)
	}
}

func TestParsePidArgumentErrorKind(t *testing.T) {
	for _, input := range []string{"", "0", "x", "99999999999999999999"} {
		_, err := ParsePidArgument(input)
		if !errors.Is(err, ErrInvalidPid) {
			t.Fatalf("ParsePidArgument(%q): expected ErrInvalidPid, got %v", input, err)
		}
	}
}

func TestIsProcessGone(t *testing.T) {
	_, err := os.Open(filepath.Join(t.TempDir(), "missing"))
	if !IsProcessGone(err) {
		t.Fatalf("expected ENOENT to be treated as gone: %v", err)
	}
	if !IsProcessGone(fmt.Errorf("kill: %w", syscall.ESRCH)) {
		t.Fatal("expected ESRCH to be treated as gone")
	}
	if IsProcessGone(syscall.EACCES) {
		t.Fatal("EACCES must not be treated as gone")
	}
	if IsProcessGone(nil) {
		t.Fatal("nil must not be treated as gone")
	}
}

func TestExecNameSelf(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("reads /proc")
	}
	exe, err := os.Executable()
	if err != nil {
		t.Skipf("os.Executable: %v", err)
	}
	name := ExecName(PID(os.Getpid()))
	if name != filepath.Base(exe) {
		t.Fatalf("expected %q, got %q", filepath.Base(exe), name)
	}
}
