package filter

import "testing"

func TestLogFilter(t *testing.T) {
	f := LogFilter()

	cases := []struct {
		path  string
		match bool
	}{
		{"/tmp/app.log", true},
		{"/var/log", true},
		{"access.log", true},
		{"/var/log/syslog", true},
		{"/var/log/wtmp.log", true},
		{"log", true},
		{"/tmp/logger.txt", false},
		{"logger", false},
		{"/var/log/app.LOG", false},
		{"/var/log/app.log.1", false},
		{"socket:[12345]", false},
		{"/dev/null", false},
		{"", false},
	}

	for _, c := range cases {
		if got := f.Match(c.path); got != c.match {
			t.Errorf("LogFilter().Match(%q) = %v, want %v", c.path, got, c.match)
		}
	}
}

func TestCompileAnchored(t *testing.T) {
	f, err := Compile("*.log")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for path, want := range map[string]bool{
		"/var/log/app.log":   true,
		"app.log":            true,
		"/var/log/app.log.3": false,
		"/var/log/messages":  false,
	} {
		if got := f.Match(path); got != want {
			t.Errorf("Match(%q) = %v, want %v", path, got, want)
		}
	}
}
