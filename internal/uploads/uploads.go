package uploads

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/artfest/gallery-api/internal/logger"
)

// Error variables
var (
	ErrEmptyFilename   = errors.New("no file selected")
	ErrInvalidFileType = errors.New("invalid file type")
)

// allowedExtensions lists the accepted image extensions, lowercase.
// The intake validates the extension string only; it never decodes content.
var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
}

// StoredFile describes an accepted upload.
type StoredFile struct {
	Filename         string // Generated unique name the file is stored under
	OriginalFilename string // Sanitized user-supplied name
	Path             string // Full path on disk
}

// FileStore writes uploads into a single configured directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the upload directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the upload directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// Save validates the declared filename, sanitizes it, prefixes a random
// 128-bit hex identifier and writes the content to the upload directory.
// Concurrent uploads never collide because every stored name is unique.
func (s *FileStore) Save(src io.Reader, declaredName string) (*StoredFile, error) {
	if declaredName == "" {
		return nil, ErrEmptyFilename
	}

	ext := strings.ToLower(filepath.Ext(declaredName))
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, ErrInvalidFileType
	}

	original := sanitizeFilename(declaredName)
	if original == "" {
		return nil, ErrEmptyFilename
	}

	unique := strings.ReplaceAll(uuid.New().String(), "-", "") + "_" + original
	path := filepath.Join(s.dir, unique)

	dst, err := os.Create(path)
	if err != nil {
		logger.Log.Errorw("failed to create upload file", "path", path, "error", err)
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		logger.Log.Errorw("failed to write upload file", "path", path, "error", err)
		os.Remove(path)
		return nil, err
	}

	return &StoredFile{
		Filename:         unique,
		OriginalFilename: original,
		Path:             path,
	}, nil
}

// Remove deletes a stored file by its generated name. Missing files are
// not an error.
func (s *FileStore) Remove(filename string) error {
	if filename == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filepath.Base(filename)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// sanitizeFilename strips path components and replaces anything outside
// [A-Za-z0-9._-] with an underscore.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	if name == "." || name == ".." || name == "/" {
		return ""
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "._")
}
