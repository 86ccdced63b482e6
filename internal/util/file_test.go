package util

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestValidateMimeType(t *testing.T) {
	mime, err := ValidateMimeType(bytes.NewReader(pngHeader), []string{MimeImage})
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)

	_, err = ValidateMimeType(bytes.NewReader([]byte("plain words")), []string{MimeImage})
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestHasExtension(t *testing.T) {
	assert.True(t, HasExtension("clip.MP4", AllowedVideoExtensions))
	assert.True(t, HasExtension("sign.jpeg", AllowedImageExtensions))
	assert.False(t, HasExtension("notes.txt", AllowedImageExtensions))
	assert.False(t, HasExtension("noext", AllowedVideoExtensions))
}
