package filter

import (
	"fmt"

	"github.com/gobwas/glob"
)

// LogPattern matches any string that ends with "log". No separators are
// given to the glob compiler, so '*' also crosses '/'.
const LogPattern = "*log"

type Filter interface {
	Match(string) bool
}

// Compile turns a glob pattern into a Filter. The whole string must match:
//
//	f, _ := Compile("*log")
//	f.Match("/var/log/syslog")  // true
//	f.Match("/tmp/logger.txt")  // false
func Compile(pattern string) (Filter, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob %q: %v", pattern, err)
	}
	return g, nil
}

// LogFilter returns the filter that decides whether a link target is a log path.
func LogFilter() Filter {
	f, err := Compile(LogPattern)
	if err != nil {
		panic(fmt.Sprintf("compile %q: %v", LogPattern, err))
	}
	return f
}
