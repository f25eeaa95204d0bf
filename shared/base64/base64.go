package base64

import (
	stdbase64 "encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDataURI = errors.New("invalid data uri")

const (
	dataPrefix   = "data:"
	base64Marker = ";base64,"
)

// GetContentType returns the media type of a data URI, or empty when file is not one.
func GetContentType(file string) string {
	if !strings.HasPrefix(file, dataPrefix) {
		return ""
	}

	end := strings.Index(file, base64Marker)
	if end < len(dataPrefix) {
		return ""
	}

	return file[len(dataPrefix):end]
}

// Decode returns the raw bytes of a data URI payload.
func Decode(file string) ([]byte, error) {
	idx := strings.Index(file, base64Marker)
	if !strings.HasPrefix(file, dataPrefix) || idx == -1 {
		return nil, ErrInvalidDataURI
	}

	data, err := stdbase64.StdEncoding.DecodeString(file[idx+len(base64Marker):])
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 payload: %w", err)
	}

	return data, nil
}
