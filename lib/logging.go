package lib

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
)

type LoggerStruct struct {
	Print    func(args ...interface{})
	Flush    func()
	disabled bool
}

var Logger = NewLogger(os.Stderr)

// NewLogger writes caller prefixed lines to w. Set LOGGING=n to silence
// everything except Fatal.
func NewLogger(w io.Writer) *LoggerStruct {
	return &LoggerStruct{
		Print: func(args ...interface{}) {
			fmt.Fprint(w, args...)
		},
		Flush: func() {
			if f, ok := w.(*os.File); ok {
				_ = f.Sync()
			}
		},
		disabled: strings.ToLower(os.Getenv("LOGGING") + " ")[:1] == "n",
	}
}

func caller() string {
	_, file, line, _ := runtime.Caller(2)
	parts := strings.Split(file, "/")
	if len(parts) >= 2 {
		file = strings.Join(parts[len(parts)-2:], "/")
	}
	return fmt.Sprintf("%s:%d: ", file, line)
}

func join(v []interface{}) string {
	var xs []string
	for _, x := range v {
		xs = append(xs, fmt.Sprint(x))
	}
	return strings.Join(xs, " ")
}

func (l *LoggerStruct) Println(v ...interface{}) {
	if !l.disabled {
		l.Print(caller(), join(v), "\n")
	}
}

func (l *LoggerStruct) Printf(format string, v ...interface{}) {
	if !l.disabled {
		l.Print(fmt.Sprintf(caller()+format, v...))
	}
}

func (l *LoggerStruct) Fatal(v ...interface{}) {
	l.Print(caller(), join(v), "\n")
	l.Flush()
	os.Exit(1)
}

func (l *LoggerStruct) Fatalf(format string, v ...interface{}) {
	l.Print(fmt.Sprintf(caller()+format, v...))
	l.Flush()
	os.Exit(1)
}
