package protocol

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONGenerator writes a JSON document token by token. Separators are
// inserted automatically. Misuse is recorded as a sticky error and reported
// by Bytes; every write after the first failure is a no-op.
type JSONGenerator interface {
	WriteStartObject()
	WriteEndObject()
	WriteStartArray()
	WriteEndArray()
	WriteFieldName(name string)
	WriteString(v string)
	WriteInt64(v int64)
	WriteBool(v bool)
	// Bytes finishes the document and returns a copy of it.
	Bytes() ([]byte, error)
}

type jsonScope struct {
	object bool
	count  int
	named  bool
}

type jsonGenerator struct {
	stream *jsoniter.Stream
	stack  []jsonScope
	done   bool
	err    error
}

// NewJSONGenerator returns a generator backed by a pooled jsoniter stream.
func NewJSONGenerator() JSONGenerator {
	return &jsonGenerator{
		stream: jsonAPI.BorrowStream(nil),
		stack:  make([]jsonScope, 0, 4),
	}
}

func (g *jsonGenerator) fail(format string, args ...any) {
	if g.err == nil {
		g.err = fmt.Errorf("%w: "+format, append([]any{ErrGeneratorState}, args...)...)
	}
}

// beforeValue positions the stream for the next value and reports whether the
// value may be written.
func (g *jsonGenerator) beforeValue() bool {
	if g.err != nil {
		return false
	}
	if len(g.stack) == 0 {
		if g.done {
			g.fail("document already complete")
			return false
		}
		return true
	}
	top := &g.stack[len(g.stack)-1]
	if top.object {
		if !top.named {
			g.fail("value written in object without a field name")
			return false
		}
		top.named = false
		return true
	}
	if top.count > 0 {
		g.stream.WriteMore()
	}
	top.count++
	return true
}

func (g *jsonGenerator) afterValue() {
	if len(g.stack) == 0 {
		g.done = true
	}
	if g.stream.Error != nil && g.err == nil {
		g.err = g.stream.Error
	}
}

func (g *jsonGenerator) WriteStartObject() {
	if !g.beforeValue() {
		return
	}
	g.stream.WriteObjectStart()
	g.stack = append(g.stack, jsonScope{object: true})
}

func (g *jsonGenerator) WriteEndObject() {
	if g.err != nil {
		return
	}
	if len(g.stack) == 0 || !g.stack[len(g.stack)-1].object {
		g.fail("end of object without matching start")
		return
	}
	if g.stack[len(g.stack)-1].named {
		g.fail("field name without value")
		return
	}
	g.stack = g.stack[:len(g.stack)-1]
	g.stream.WriteObjectEnd()
	g.afterValue()
}

func (g *jsonGenerator) WriteStartArray() {
	if !g.beforeValue() {
		return
	}
	g.stream.WriteArrayStart()
	g.stack = append(g.stack, jsonScope{})
}

func (g *jsonGenerator) WriteEndArray() {
	if g.err != nil {
		return
	}
	if len(g.stack) == 0 || g.stack[len(g.stack)-1].object {
		g.fail("end of array without matching start")
		return
	}
	g.stack = g.stack[:len(g.stack)-1]
	g.stream.WriteArrayEnd()
	g.afterValue()
}

func (g *jsonGenerator) WriteFieldName(name string) {
	if g.err != nil {
		return
	}
	if len(g.stack) == 0 || !g.stack[len(g.stack)-1].object {
		g.fail("field name %q outside of an object", name)
		return
	}
	top := &g.stack[len(g.stack)-1]
	if top.named {
		g.fail("field name %q follows another field name", name)
		return
	}
	if top.count > 0 {
		g.stream.WriteMore()
	}
	top.count++
	top.named = true
	g.stream.WriteObjectField(name)
}

func (g *jsonGenerator) WriteString(v string) {
	if !g.beforeValue() {
		return
	}
	g.stream.WriteString(v)
	g.afterValue()
}

func (g *jsonGenerator) WriteInt64(v int64) {
	if !g.beforeValue() {
		return
	}
	g.stream.WriteInt64(v)
	g.afterValue()
}

func (g *jsonGenerator) WriteBool(v bool) {
	if !g.beforeValue() {
		return
	}
	g.stream.WriteBool(v)
	g.afterValue()
}

func (g *jsonGenerator) Bytes() ([]byte, error) {
	if g.stream == nil {
		return nil, fmt.Errorf("%w: generator already finished", ErrGeneratorState)
	}
	defer func() {
		jsonAPI.ReturnStream(g.stream)
		g.stream = nil
	}()

	if g.err != nil {
		return nil, g.err
	}
	if len(g.stack) > 0 {
		return nil, fmt.Errorf("%w: %d unterminated scope(s)", ErrGeneratorState, len(g.stack))
	}
	if g.stream.Error != nil {
		return nil, g.stream.Error
	}
	out := make([]byte, len(g.stream.Buffer()))
	copy(out, g.stream.Buffer())
	return out, nil
}
