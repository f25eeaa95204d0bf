package base64_test

import (
	"nomad/shared/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pixel = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "png", input: pixel, expected: "image/png"},
		{name: "plain text", input: "data:text/plain;base64,SGVsbG8gV29ybGQ=", expected: "text/plain"},
		{name: "with parameters", input: "data:image/svg+xml;charset=utf-8;base64,PHN2Zz4=", expected: "image/svg+xml;charset=utf-8"},
		{name: "empty", input: "", expected: ""},
		{name: "no data prefix", input: "image/png;base64,AAAA", expected: ""},
		{name: "no base64 marker", input: "data:image/png,AAAA", expected: ""},
		{name: "only prefix", input: "data:", expected: ""},
		{name: "empty media type", input: "data:;base64,", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base64.GetContentType(tt.input))
		})
	}
}

func TestDecode(t *testing.T) {
	data, err := base64.Decode("data:text/plain;base64,SGVsbG8gV29ybGQ=")
	require.NoError(t, err)
	assert.Equal(t, "Hello World", string(data))

	data, err = base64.Decode(pixel)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])

	_, err = base64.Decode("SGVsbG8=")
	assert.ErrorIs(t, err, base64.ErrInvalidDataURI)

	_, err = base64.Decode("data:text/plain;base64,!!!")
	assert.Error(t, err)
}
