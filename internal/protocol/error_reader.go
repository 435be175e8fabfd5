package protocol

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go/aws/awserr"
)

const (
	HeaderRequestID = "X-Amzn-RequestId"
	HeaderErrorType = "X-Amzn-ErrorType"
)

type jsonErrorBody struct {
	Type    string `json:"__type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type xmlErrorBody struct {
	XMLName xml.Name `xml:"ErrorResponse"`
	Error   struct {
		Type    string `xml:"Type"`
		Code    string `xml:"Code"`
		Message string `xml:"Message"`
	} `xml:"Error"`
	RequestID string `xml:"RequestId"`
}

// ReadError converts an unsuccessful response into an awserr.RequestFailure.
// Malformed error bodies still produce an error; the code then falls back to
// the HTTP status text.
func ReadError(p Protocol, status int, header http.Header, body []byte) error {
	requestID := header.Get(HeaderRequestID)
	var code, msg string

	switch p {
	case RestXML:
		var eb xmlErrorBody
		if err := xml.Unmarshal(body, &eb); err == nil {
			code = eb.Error.Code
			msg = eb.Error.Message
			if requestID == "" {
				requestID = eb.RequestID
			}
		}
	default:
		code = sanitizeErrorCode(header.Get(HeaderErrorType))
		var eb jsonErrorBody
		if len(body) > 0 && jsonAPI.Unmarshal(body, &eb) == nil {
			if code == "" {
				code = sanitizeErrorCode(eb.Type)
			}
			if code == "" {
				code = sanitizeErrorCode(eb.Code)
			}
			msg = eb.Message
		}
	}

	if code == "" {
		code = strings.ReplaceAll(http.StatusText(status), " ", "")
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return awserr.NewRequestFailure(awserr.New(code, msg, nil), status, requestID)
}

// sanitizeErrorCode strips the namespace prefix ("aws.foo#Code") and the
// trailing metadata ("Code:http://...") AWS sometimes attaches.
func sanitizeErrorCode(code string) string {
	if i := strings.Index(code, ":"); i >= 0 {
		code = code[:i]
	}
	if i := strings.LastIndex(code, "#"); i >= 0 {
		code = code[i+1:]
	}
	return strings.TrimSpace(code)
}
