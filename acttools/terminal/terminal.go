package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/ssh/terminal"
)

const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
)

// Out is where messages are printed
var Out io.Writer = os.Stdout

// Interactive is true when Out is a terminal. Colors and spinners are only
// used in interactive mode.
var Interactive = terminal.IsTerminal(int(os.Stdout.Fd()))

// Error print error
func Error(err error, format string, a ...interface{}) {
	fmt.Fprintf(Out, "%s\n", colorize(red, withError(err, format, a...)))
}

// Info print message
func Info(format string, a ...interface{}) {
	fmt.Fprintf(Out, "%s\n", fmt.Sprintf(format, a...))
}

// withError formats the message before appending err, which may contain '%'
func withError(err error, format string, a ...interface{}) string {
	message := fmt.Sprintf(format, a...)
	if err != nil {
		message = fmt.Sprintf("%s [%s]", message, err)
	}
	return message
}

func colorize(color string, s string) string {
	if !Interactive {
		return s
	}
	return color + s + reset
}
