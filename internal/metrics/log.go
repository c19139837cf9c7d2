package metrics

import (
	"fmt"
	"io"

	"github.com/san-kum/qsim/internal/quantum"
)

// Logger implements [quantum.Observer] by writing one key=value line
// per event. The output stream is injected, never hard-wired.
type Logger struct {
	w io.Writer
}

func NewLogger(w io.Writer) *Logger {
	return &Logger{w: w}
}

func (l *Logger) OnConstruct(hardware bool, bitstream string) {
	fmt.Fprintf(l.w, "construct hardware=%v bitstream=%s\n", hardware, bitstream)
}

func (l *Logger) OnAllocate(count int) {
	fmt.Fprintf(l.w, "allocate qubits=%d\n", count)
}

func (l *Logger) OnRelease(count int) {
	fmt.Fprintf(l.w, "release qubits=%d\n", count)
}

func (l *Logger) OnDispatch(path quantum.Path, wire, qubits int) {
	fmt.Fprintf(l.w, "dispatch path=%s wire=%d qubits=%d\n", path, wire, qubits)
}

func (l *Logger) OnFallback(err error) {
	fmt.Fprintf(l.w, "fallback err=%q\n", err)
}
