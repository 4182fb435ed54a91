// File: internal/gallery/gallery_test.go
package gallery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.jpg")
	writeFile(t, dir, "b.PNG")
	writeFile(t, dir, "c.jpeg")
	writeFile(t, dir, "d.gif")
	writeFile(t, dir, "notes.txt")
	writeFile(t, dir, "shell.sh")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.png"), 0o755))

	g := New(dir)
	names, err := g.List()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"a.jpg", "b.PNG", "c.jpeg", "d.gif"}, names)
}

func TestListMissingDir(t *testing.T) {
	g := New(filepath.Join(t.TempDir(), "nope"))
	_, err := g.List()
	require.Error(t, err)
}

func TestMIMEType(t *testing.T) {
	mime, ok := MIMEType("photo.png")
	require.True(t, ok)
	require.Equal(t, "image/png", mime)

	mime, ok = MIMEType("PHOTO.JPG")
	require.True(t, ok)
	require.Equal(t, "image/jpeg", mime)

	_, ok = MIMEType("shell.sh")
	require.False(t, ok)
	_, ok = MIMEType("noext")
	require.False(t, ok)
}

func TestSafeName(t *testing.T) {
	require.True(t, SafeName("photo.png"))
	require.False(t, SafeName(""))
	require.False(t, SafeName("../etc/passwd"))
	require.False(t, SafeName("a/b.png"))
	require.False(t, SafeName("."))
	require.False(t, SafeName(".."))
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "photo.png")

	g := New(dir)
	require.NoError(t, g.Remove("photo.png"))

	// the next listing no longer includes the file
	names, err := g.List()
	require.NoError(t, err)
	require.Empty(t, names)

	// removing a missing file reports an error
	require.Error(t, g.Remove("photo.png"))
}
