package protocol_test

import (
	"testing"

	"github.com/jroosing/awsrest/internal/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// JSON Generator Tests
// =============================================================================

func TestJSONGenerator_NestedDocument(t *testing.T) {
	g := protocol.NewJSONGenerator()
	g.WriteStartObject()
	g.WriteFieldName("patchOperations")
	g.WriteStartArray()
	g.WriteStartObject()
	g.WriteFieldName("op")
	g.WriteString("replace")
	g.WriteFieldName("path")
	g.WriteString("/responseParameters/method.response.header.X")
	g.WriteEndObject()
	g.WriteStartObject()
	g.WriteFieldName("op")
	g.WriteString("remove")
	g.WriteEndObject()
	g.WriteEndArray()
	g.WriteFieldName("limit")
	g.WriteInt64(25)
	g.WriteFieldName("enabled")
	g.WriteBool(true)
	g.WriteEndObject()

	b, err := g.Bytes()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"patchOperations": [
			{"op": "replace", "path": "/responseParameters/method.response.header.X"},
			{"op": "remove"}
		],
		"limit": 25,
		"enabled": true
	}`, string(b))
}

func TestJSONGenerator_EmptyObject(t *testing.T) {
	g := protocol.NewJSONGenerator()
	g.WriteStartObject()
	g.WriteEndObject()

	b, err := g.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))
}

func TestJSONGenerator_EscapesStrings(t *testing.T) {
	g := protocol.NewJSONGenerator()
	g.WriteStartObject()
	g.WriteFieldName("value")
	g.WriteString("say \"hi\"\n")
	g.WriteEndObject()

	b, err := g.Bytes()
	require.NoError(t, err)
	assert.Equal(t, `{"value":"say \"hi\"\n"}`, string(b))
}

func TestJSONGenerator_StateErrors(t *testing.T) {
	tests := []struct {
		name  string
		write func(g protocol.JSONGenerator)
	}{
		{"value without field name", func(g protocol.JSONGenerator) {
			g.WriteStartObject()
			g.WriteString("x")
			g.WriteEndObject()
		}},
		{"field name in array", func(g protocol.JSONGenerator) {
			g.WriteStartArray()
			g.WriteFieldName("x")
			g.WriteEndArray()
		}},
		{"mismatched end", func(g protocol.JSONGenerator) {
			g.WriteStartObject()
			g.WriteEndArray()
		}},
		{"dangling field name", func(g protocol.JSONGenerator) {
			g.WriteStartObject()
			g.WriteFieldName("x")
			g.WriteEndObject()
		}},
		{"unterminated", func(g protocol.JSONGenerator) {
			g.WriteStartObject()
		}},
		{"two roots", func(g protocol.JSONGenerator) {
			g.WriteStartObject()
			g.WriteEndObject()
			g.WriteStartObject()
			g.WriteEndObject()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := protocol.NewJSONGenerator()
			tt.write(g)
			b, err := g.Bytes()
			assert.ErrorIs(t, err, protocol.ErrGeneratorState)
			assert.Nil(t, b)
		})
	}
}

func TestJSONGenerator_BytesTwice(t *testing.T) {
	g := protocol.NewJSONGenerator()
	g.WriteStartObject()
	g.WriteEndObject()

	_, err := g.Bytes()
	require.NoError(t, err)
	_, err = g.Bytes()
	assert.ErrorIs(t, err, protocol.ErrGeneratorState)
}

// =============================================================================
// XML Generator Tests
// =============================================================================

func TestXMLGenerator_Document(t *testing.T) {
	g := protocol.NewXMLGenerator()
	g.WriteStartElement("ChangeBatch", "https://route53.amazonaws.com/doc/2013-04-01/")
	g.WriteElement("Comment", "a < b & c")
	g.WriteStartElement("Changes", "")
	g.WriteEndElement()
	g.WriteEndElement()

	b, err := g.Bytes()
	require.NoError(t, err)
	assert.Equal(t,
		`<ChangeBatch xmlns="https://route53.amazonaws.com/doc/2013-04-01/"><Comment>a &lt; b &amp; c</Comment><Changes></Changes></ChangeBatch>`,
		string(b))
}

func TestXMLGenerator_StateErrors(t *testing.T) {
	tests := []struct {
		name  string
		write func(g protocol.XMLGenerator)
	}{
		{"unclosed", func(g protocol.XMLGenerator) { g.WriteStartElement("A", "") }},
		{"end without start", func(g protocol.XMLGenerator) { g.WriteEndElement() }},
		{"value outside element", func(g protocol.XMLGenerator) { g.WriteValue("x") }},
		{"empty name", func(g protocol.XMLGenerator) { g.WriteStartElement("", "") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := protocol.NewXMLGenerator()
			tt.write(g)
			_, err := g.Bytes()
			assert.ErrorIs(t, err, protocol.ErrGeneratorState)
		})
	}
}

func TestXMLGenerator_RejectsCharsXMLCannotCarry(t *testing.T) {
	for _, v := range []string{"a\x01b", "\x00", "tab\tok\x1f", "bad\xffutf8", "\uFFFE"} {
		g := protocol.NewXMLGenerator()
		g.WriteElement("Value", v)
		b, err := g.Bytes()
		assert.Nil(t, b, "value %q", v)
		assert.ErrorIs(t, err, protocol.ErrInvalidXMLChar, "value %q", v)
	}
}

func TestXMLGenerator_KeepsLegalChars(t *testing.T) {
	g := protocol.NewXMLGenerator()
	g.WriteElement("Value", "tab\tnl\ncr\r\u00e9\U0001F600\uFFFD")
	b, err := g.Bytes()
	require.NoError(t, err)
	assert.Contains(t, string(b), "\u00e9\U0001F600\uFFFD")
}

func TestXMLGenerator_ResultSurvivesPoolReuse(t *testing.T) {
	g1 := protocol.NewXMLGenerator()
	g1.WriteElement("A", "first")
	b1, err := g1.Bytes()
	require.NoError(t, err)

	g2 := protocol.NewXMLGenerator()
	g2.WriteElement("B", "second")
	b2, err := g2.Bytes()
	require.NoError(t, err)

	assert.Equal(t, "<A>first</A>", string(b1))
	assert.Equal(t, "<B>second</B>", string(b2))
}

func TestFactories(t *testing.T) {
	assert.Equal(t, protocol.ContentTypeJSON, protocol.NewJSONProtocolFactory("").ContentType())
	assert.Equal(t, "application/x-amz-json-1.1", protocol.NewJSONProtocolFactory("application/x-amz-json-1.1").ContentType())
	assert.Equal(t, protocol.ContentTypeXML, protocol.NewXMLProtocolFactory("").ContentType())
	assert.NotNil(t, protocol.NewJSONProtocolFactory("").NewJSONGenerator())
	assert.NotNil(t, protocol.NewXMLProtocolFactory("").NewXMLGenerator())
}
