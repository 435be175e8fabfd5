// Package dnsname validates and normalizes the domain names carried in
// Route 53 resource record sets.
//
// Standards Compliance:
//
//   - RFC 1035 Section 2.3.4: label (63 octets) and name (255 octets) limits
//   - RFC 4343: names compare case-insensitively
//   - RFC 4592: a "*" leftmost label is a wildcard
//
// Route 53 returns some characters as three-digit octal escapes ("\052" for
// "*"); Unescape reverses that.
package dnsname

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidName is wrapped by every validation failure.
var ErrInvalidName = errors.New("invalid dns name")

const (
	maxLabelLen   = 63
	maxEncodedLen = 255
)

// Normalize lowercases name and strips a trailing dot.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSuffix(name, "."))
}

// Fqdn returns name with exactly one trailing dot.
func Fqdn(name string) string {
	return strings.TrimRight(name, ".") + "."
}

// Validate checks that name is a well-formed, ASCII domain name. The root
// name "." is accepted. A wildcard is only allowed as the full leftmost label.
func Validate(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name must be non-empty", ErrInvalidName)
	}
	if _, err := Encode(name); err != nil {
		return err
	}
	labels := strings.Split(strings.TrimSuffix(name, "."), ".")
	for i, label := range labels {
		if strings.Contains(label, "*") && (i != 0 || label != "*") {
			return fmt.Errorf("%w: wildcard must be the whole leftmost label: %q", ErrInvalidName, name)
		}
	}
	return nil
}

// Encode converts name to DNS wire format:
//
//	"www.example.com" -> [3]www[7]example[3]com[0]
//
// No compression is applied.
func Encode(name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name must be non-empty", ErrInvalidName)
	}
	name = strings.TrimSuffix(name, ".")
	if name == "" {
		return []byte{0}, nil
	}

	out := make([]byte, 0, len(name)+2)
	start := 0
	for i := 0; i <= len(name); i++ {
		if i < len(name) && name[i] != '.' {
			if name[i] > 0x7F {
				return nil, fmt.Errorf("%w: name must be ASCII: %q", ErrInvalidName, name)
			}
			continue
		}
		label := name[start:i]
		if label == "" {
			return nil, fmt.Errorf("%w: empty label in %q", ErrInvalidName, name)
		}
		if len(label) > maxLabelLen {
			return nil, fmt.Errorf("%w: label too long (%d > %d): %q", ErrInvalidName, len(label), maxLabelLen, label)
		}
		out = append(out, byte(len(label)))
		out = append(out, label...)
		start = i + 1
	}
	out = append(out, 0)

	if len(out) > maxEncodedLen {
		return nil, fmt.Errorf("%w: encoded name too long (%d > %d)", ErrInvalidName, len(out), maxEncodedLen)
	}
	return out, nil
}

// Unescape replaces \ooo octal escapes with the byte they denote. Malformed
// escapes are left untouched.
func Unescape(name string) string {
	if !strings.Contains(name, `\`) {
		return name
	}
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		if name[i] == '\\' && i+3 < len(name) && name[i+1] <= '3' && isOctal(name[i+1]) && isOctal(name[i+2]) && isOctal(name[i+3]) {
			v := (name[i+1]-'0')*64 + (name[i+2]-'0')*8 + (name[i+3] - '0')
			b.WriteByte(v)
			i += 3
			continue
		}
		b.WriteByte(name[i])
	}
	return b.String()
}

func isOctal(c byte) bool { return c >= '0' && c <= '7' }
