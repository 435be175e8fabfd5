package protocol

const (
	ContentTypeJSON = "application/json"
	ContentTypeXML  = "application/xml"
)

// JSONFactory is the immutable configuration a JSON marshaller holds: where
// generators come from and which content type the body carries.
type JSONFactory interface {
	NewJSONGenerator() JSONGenerator
	ContentType() string
}

// XMLFactory is the XML counterpart of JSONFactory.
type XMLFactory interface {
	NewXMLGenerator() XMLGenerator
	ContentType() string
}

// JSONProtocolFactory is the default JSONFactory.
type JSONProtocolFactory struct {
	contentType string
}

// NewJSONProtocolFactory returns a factory for the given content type.
func NewJSONProtocolFactory(contentType string) *JSONProtocolFactory {
	if contentType == "" {
		contentType = ContentTypeJSON
	}
	return &JSONProtocolFactory{contentType: contentType}
}

func (f *JSONProtocolFactory) NewJSONGenerator() JSONGenerator { return NewJSONGenerator() }

func (f *JSONProtocolFactory) ContentType() string { return f.contentType }

// XMLProtocolFactory is the default XMLFactory.
type XMLProtocolFactory struct {
	contentType string
}

// NewXMLProtocolFactory returns a factory for the given content type.
func NewXMLProtocolFactory(contentType string) *XMLProtocolFactory {
	if contentType == "" {
		contentType = ContentTypeXML
	}
	return &XMLProtocolFactory{contentType: contentType}
}

func (f *XMLProtocolFactory) NewXMLGenerator() XMLGenerator { return NewXMLGenerator() }

func (f *XMLProtocolFactory) ContentType() string { return f.contentType }
