package uploads

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()

	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestFileStore_Save(t *testing.T) {
	store := newTestStore(t)

	stored, err := store.Save(strings.NewReader("png bytes"), "sunrise.png")
	require.NoError(t, err)

	assert.Equal(t, "sunrise.png", stored.OriginalFilename)
	assert.True(t, strings.HasSuffix(stored.Filename, "_sunrise.png"))
	assert.NotEqual(t, "sunrise.png", stored.Filename)

	content, err := os.ReadFile(stored.Path)
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(content))
}

func TestFileStore_Save_UniqueNames(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Save(strings.NewReader("a"), "same.png")
	require.NoError(t, err)
	second, err := store.Save(strings.NewReader("b"), "same.png")
	require.NoError(t, err)

	assert.NotEqual(t, first.Filename, second.Filename)
}

func TestFileStore_Save_ExtensionWhitelist(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"a.png", "b.jpg", "c.jpeg", "d.gif", "e.webp", "F.PNG"} {
		_, err := store.Save(strings.NewReader("x"), name)
		assert.NoError(t, err, name)
	}

	for _, name := range []string{"virus.exe", "page.html", "noext", "script.png.sh"} {
		_, err := store.Save(strings.NewReader("x"), name)
		assert.ErrorIs(t, err, ErrInvalidFileType, name)
	}
}

func TestFileStore_Save_EmptyFilename(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save(strings.NewReader("x"), "")
	assert.ErrorIs(t, err, ErrEmptyFilename)
}

func TestFileStore_Save_SanitizesName(t *testing.T) {
	store := newTestStore(t)

	stored, err := store.Save(strings.NewReader("x"), "../../etc/passwd art.png")
	require.NoError(t, err)

	assert.Equal(t, "passwd_art.png", stored.OriginalFilename)
	assert.Equal(t, store.Dir(), filepath.Dir(stored.Path))
}

func TestFileStore_Remove(t *testing.T) {
	store := newTestStore(t)

	stored, err := store.Save(strings.NewReader("x"), "doomed.png")
	require.NoError(t, err)

	assert.NoError(t, store.Remove(stored.Filename))
	_, err = os.Stat(stored.Path)
	assert.True(t, os.IsNotExist(err))

	// missing files are not an error
	assert.NoError(t, store.Remove(stored.Filename))
	assert.NoError(t, store.Remove(""))
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sunrise.png", "sunrise.png"},
		{"my art (final).png", "my_art__final_.png"},
		{"../../../etc/passwd.png", "passwd.png"},
		{"C:\\Users\\me\\art.png", "art.png"},
		{"..", ""},
		{"___", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFilename(tt.in), tt.in)
	}
}
