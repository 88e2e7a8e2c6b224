package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetIDFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://cdn.example.com/posts/abc123.jpg", "abc123"},
		{"https://cdn.example.com/posts/abc123.png", "abc123"},
		{"https://cdn.example.com/a/b/c/deep.webp", "deep"},
		{"https://cdn.example.com/posts/noext", "noext"},
		{"abc123.jpg", "abc123"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AssetIDFromURL(tt.url), tt.url)
	}
}

func TestDecodePayload_DataURI(t *testing.T) {
	data, contentType, err := DecodePayload("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
	assert.Equal(t, "image/png", contentType)
}

func TestDecodePayload_BareBase64(t *testing.T) {
	data, contentType, err := DecodePayload("aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
	assert.Empty(t, contentType)
}

func TestDecodePayload_Invalid(t *testing.T) {
	_, _, err := DecodePayload("data:image/png;base64")
	require.Error(t, err)

	_, _, err = DecodePayload("!!!not-base64!!!")
	require.Error(t, err)
}
