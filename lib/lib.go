package lib

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
)

var Commands = make(map[string]func())

var Args = make(map[string]interface{})

func Contains(parts []string, part string) bool {
	for _, p := range parts {
		if p == part {
			return true
		}
	}
	return false
}

func Last(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

func logRecover(r interface{}) {
	stack := string(debug.Stack())
	fmt.Fprintln(os.Stderr, r)
	fmt.Fprintln(os.Stderr, stack)
	Logger.Flush()
}

// DropLinesWithAny removes every line containing one of tokens.
func DropLinesWithAny(s string, tokens ...string) string {
	if len(tokens) == 0 {
		return s
	}
	var lines []string
outer:
	for _, line := range strings.Split(s, "\n") {
		for _, token := range tokens {
			if strings.Contains(line, token) {
				continue outer
			}
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
