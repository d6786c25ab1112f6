package upload

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func TestValidateImageAcceptsPNG(t *testing.T) {
	assert.NoError(t, ValidateImage(pngBytes(t)))
}

func TestValidateImageRejectsEmpty(t *testing.T) {
	assert.ErrorIs(t, ValidateImage(nil), ErrEmptyFile)
	assert.ErrorIs(t, ValidateImage([]byte{}), ErrEmptyFile)
}

func TestValidateImageRejectsNonImage(t *testing.T) {
	assert.ErrorIs(t, ValidateImage([]byte("<html>nope</html>")), ErrNotImage)
	assert.ErrorIs(t, ValidateImage([]byte("plain text payload")), ErrNotImage)
}
