package services

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	gifHeader = []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func TestLoadImages_KeepsImagesInOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "b-first.png", pngHeader)
	b := writeFile(t, dir, "a-second.gif", gifHeader)

	files, err := LoadImages([]string{a, b})
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "b-first.png", files[0].Name)
	assert.Equal(t, "image/png", files[0].ContentType)
	assert.Equal(t, int64(len(pngHeader)), files[0].Size)
	assert.Equal(t, a, files[0].Path)

	assert.Equal(t, "a-second.gif", files[1].Name)
	assert.Equal(t, "image/gif", files[1].ContentType)

	rc, err := files[0].Open()
	require.NoError(t, err)
	defer rc.Close()
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, got)
}

func TestLoadImages_DetectsByContentNotExtension(t *testing.T) {
	dir := t.TempDir()
	disguised := writeFile(t, dir, "photo.png", []byte("just some text, honestly"))
	actual := writeFile(t, dir, "notes.txt", pngHeader)

	files, err := LoadImages([]string{disguised, actual})

	require.Len(t, files, 1)
	assert.Equal(t, "notes.txt", files[0].Name)
	assert.Equal(t, "image/png", files[0].ContentType)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 1)
	assert.Contains(t, merr.Errors[0].Error(), "not an image")
}

func TestLoadImages_ReportsEverySkip(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "ok.png", pngHeader)

	files, err := LoadImages([]string{
		filepath.Join(dir, "missing.png"),
		dir,
		good,
	})

	require.Len(t, files, 1)
	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)
	assert.Contains(t, merr.Errors[1].Error(), "is a directory")
}

func TestLoadImages_Empty(t *testing.T) {
	files, err := LoadImages(nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}
