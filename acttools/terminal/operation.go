package terminal

import (
	"fmt"
	"time"
)

const spinner = `|/-\`

// Operation represents a long running operation
type Operation struct {
	channel chan bool
	done    chan bool
}

// NewOperation starts a long running operation
func NewOperation(format string, a ...interface{}) *Operation {
	o := &Operation{
		channel: make(chan bool),
		done:    make(chan bool),
	}

	if !Interactive {
		fmt.Fprintf(Out, "  %s\n", fmt.Sprintf(format, a...))
		close(o.done)
		return o
	}

	spinFrames := []rune(spinner)
	spinFramesSize := len(spinFrames)

	go func() {
		defer close(o.done)
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		pos := 0

	L:
		for {
			select {
			case <-o.channel:
				break L
			case <-ticker.C:
				fmt.Fprintf(Out, "\r  %s %s ", colorize(yellow, fmt.Sprintf(format, a...)), string(spinFrames[pos%spinFramesSize]))
				pos++
			}
		}
	}()

	return o
}

// Success informs that the operation is over
func (o *Operation) Success(format string, a ...interface{}) {
	o.finished("✓", green, format, a...)
}

// Error informs that the operation failed
func (o *Operation) Error(err error, format string, a ...interface{}) {
	o.finished("✗", red, "%s", withError(err, format, a...))
}

func (o *Operation) finished(symbol string, color string, format string, a ...interface{}) {
	if Interactive {
		o.channel <- true
		<-o.done
		fmt.Fprintf(Out, "\033[2K\r")
	}

	fmt.Fprintf(Out, "%s %s\n", symbol, colorize(color, fmt.Sprintf(format, a...)))
}
