package dnsname_test

import (
	"strings"
	"testing"

	"github.com/jroosing/awsrest/internal/dnsname"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	b, err := dnsname.Encode("www.example.com.")
	require.NoError(t, err)
	assert.Equal(t, []byte("\x03www\x07example\x03com\x00"), b)

	root, err := dnsname.Encode(".")
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, root)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "example.com", false},
		{"fqdn", "www.example.com.", false},
		{"root", ".", false},
		{"wildcard", "*.example.com", false},
		{"empty", "", true},
		{"empty label", "www..example.com", true},
		{"leading dot", ".example.com", true},
		{"non ascii", "bücher.example", true},
		{"label too long", strings.Repeat("a", 64) + ".com", true},
		{"wildcard not leftmost", "www.*.example.com", true},
		{"partial wildcard", "a*.example.com", true},
		{"name too long", strings.Repeat(strings.Repeat("a", 63)+".", 4) + "com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := dnsname.Validate(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, dnsname.ErrInvalidName)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeAndFqdn(t *testing.T) {
	assert.Equal(t, "www.example.com", dnsname.Normalize("WWW.Example.COM."))
	assert.Equal(t, "example.com.", dnsname.Fqdn("example.com"))
	assert.Equal(t, "example.com.", dnsname.Fqdn("example.com.."))
	assert.Equal(t, dnsname.Normalize("Example.com."), dnsname.Normalize("example.COM"))
}

func TestUnescape(t *testing.T) {
	assert.Equal(t, "*.example.com.", dnsname.Unescape(`\052.example.com.`))
	assert.Equal(t, "plain.example.", dnsname.Unescape("plain.example."))
	assert.Equal(t, `\05`, dnsname.Unescape(`\05`), "short escape kept")
	assert.Equal(t, `\999`, dnsname.Unescape(`\999`), "non-octal kept")
}
