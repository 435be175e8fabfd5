package protocol

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"unicode/utf8"

	"github.com/jroosing/awsrest/internal/pool"
)

var xmlBuffers = pool.NewWithReset(
	func() *bytes.Buffer { return new(bytes.Buffer) },
	func(b *bytes.Buffer) { b.Reset() },
)

// XMLGenerator writes an XML document element by element. Like
// JSONGenerator it keeps a sticky error that Bytes reports.
type XMLGenerator interface {
	// WriteStartElement opens an element. A non-empty namespace is emitted as
	// the default xmlns of that element.
	WriteStartElement(name, namespace string)
	WriteEndElement()
	WriteValue(v string)
	// WriteElement writes <name>v</name>.
	WriteElement(name, v string)
	Bytes() ([]byte, error)
}

type xmlGenerator struct {
	buf   *bytes.Buffer
	enc   *xml.Encoder
	stack []xml.Name
	err   error
}

// NewXMLGenerator returns a generator writing into a pooled buffer.
func NewXMLGenerator() XMLGenerator {
	buf := xmlBuffers.Get()
	return &xmlGenerator{
		buf:   buf,
		enc:   xml.NewEncoder(buf),
		stack: make([]xml.Name, 0, 8),
	}
}

func (g *xmlGenerator) encode(tok xml.Token) {
	if g.err != nil {
		return
	}
	if err := g.enc.EncodeToken(tok); err != nil {
		g.err = err
	}
}

func (g *xmlGenerator) WriteStartElement(name, namespace string) {
	if g.err != nil {
		return
	}
	if name == "" {
		g.err = fmt.Errorf("%w: empty element name", ErrGeneratorState)
		return
	}
	n := xml.Name{Space: namespace, Local: name}
	g.encode(xml.StartElement{Name: n})
	g.stack = append(g.stack, n)
}

func (g *xmlGenerator) WriteEndElement() {
	if g.err != nil {
		return
	}
	if len(g.stack) == 0 {
		g.err = fmt.Errorf("%w: end element without matching start", ErrGeneratorState)
		return
	}
	n := g.stack[len(g.stack)-1]
	g.stack = g.stack[:len(g.stack)-1]
	g.encode(xml.EndElement{Name: n})
}

func (g *xmlGenerator) WriteValue(v string) {
	if g.err != nil {
		return
	}
	if len(g.stack) == 0 {
		g.err = fmt.Errorf("%w: character data outside of an element", ErrGeneratorState)
		return
	}
	if i, ok := invalidXMLChar(v); ok {
		g.err = fmt.Errorf("%w: byte offset %d in %q", ErrInvalidXMLChar, i, v)
		return
	}
	g.encode(xml.CharData(v))
}

// invalidXMLChar returns the offset of the first rune outside the XML 1.0
// Char production. encoding/xml would otherwise write U+FFFD in its place.
func invalidXMLChar(s string) (int, bool) {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return i, true
			}
		}
		if !isXMLChar(r) {
			return i, true
		}
	}
	return 0, false
}

func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

func (g *xmlGenerator) WriteElement(name, v string) {
	g.WriteStartElement(name, "")
	g.WriteValue(v)
	g.WriteEndElement()
}

func (g *xmlGenerator) Bytes() ([]byte, error) {
	if g.buf == nil {
		return nil, fmt.Errorf("%w: generator already finished", ErrGeneratorState)
	}
	defer func() {
		xmlBuffers.Put(g.buf)
		g.buf = nil
	}()

	if g.err != nil {
		return nil, g.err
	}
	if len(g.stack) > 0 {
		return nil, fmt.Errorf("%w: %d unclosed element(s)", ErrGeneratorState, len(g.stack))
	}
	if err := g.enc.Flush(); err != nil {
		return nil, err
	}
	out := make([]byte, g.buf.Len())
	copy(out, g.buf.Bytes())
	return out, nil
}
