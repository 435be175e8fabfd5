package protocol

import (
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go/private/protocol/rest"
)

var placeholderRe = regexp.MustCompile(`\{[^{}]+\}`)

// ReplacePathParam substitutes the {name} token in path with the URL-encoded
// value of v. A nil value expands to the empty string. Path separators in the
// value are encoded as well, so a value can never add path segments.
func ReplacePathParam(path, name string, v *string) string {
	value := ""
	if v != nil {
		value = rest.EscapePath(*v, true)
	}
	return strings.ReplaceAll(path, "{"+name+"}", value)
}

// Placeholders lists the {name} tokens still present in path.
func Placeholders(path string) []string {
	matches := placeholderRe.FindAllString(path, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.Trim(m, "{}"))
	}
	return out
}
