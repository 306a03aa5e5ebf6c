// Package dataurl converts image files to and from embedded "data:" strings.
package dataurl

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
)

var ErrMalformed = errors.New("malformed data url")

// Encode builds a base64 data URL.
func Encode(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Decode splits a base64 data URL into its media type and payload.
func Decode(s string) (mime string, data []byte, err error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, ErrMalformed
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrMalformed
	}
	mime, isB64 := strings.CutSuffix(meta, ";base64")
	if !isB64 {
		return "", nil, fmt.Errorf("%w: not base64", ErrMalformed)
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return mime, data, nil
}

// ReadFile reads path and returns it as a data URL. The media type is sniffed from the content.
func ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	mime := http.DetectContentType(b)
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	return Encode(mime, b), nil
}

// FileReader reads chosen image files from disk.
type FileReader struct{}

func (FileReader) ReadDataURL(ctx context.Context, path string) (string, error) {
	return ReadFile(ctx, path)
}
