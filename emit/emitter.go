package emit

import (
	"fmt"
	"strings"
)

// Emitter accumulates Go source line by line with tab indentation. Methods
// return the receiver so template code can chain calls.
type Emitter struct {
	buf    strings.Builder
	indent int
}

// NewEmitter returns an empty emitter.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// In increases the indentation level.
func (e *Emitter) In() *Emitter {
	e.indent++
	return e
}

// Out decreases the indentation level.
func (e *Emitter) Out() *Emitter {
	if e.indent > 0 {
		e.indent--
	}
	return e
}

// Line writes one indented line.
func (e *Emitter) Line(s string) *Emitter {
	for i := 0; i < e.indent; i++ {
		e.buf.WriteByte('\t')
	}
	e.buf.WriteString(s)
	e.buf.WriteByte('\n')
	return e
}

// Linef writes one indented formatted line.
func (e *Emitter) Linef(format string, args ...any) *Emitter {
	return e.Line(fmt.Sprintf(format, args...))
}

// Blank writes an empty line.
func (e *Emitter) Blank() *Emitter {
	e.buf.WriteByte('\n')
	return e
}

// Len returns the number of bytes emitted so far.
func (e *Emitter) Len() int { return e.buf.Len() }

// Bytes returns the accumulated source.
func (e *Emitter) Bytes() []byte { return []byte(e.buf.String()) }

// String returns the accumulated source.
func (e *Emitter) String() string { return e.buf.String() }

// Reset discards the buffer and indentation.
func (e *Emitter) Reset() {
	e.buf.Reset()
	e.indent = 0
}
