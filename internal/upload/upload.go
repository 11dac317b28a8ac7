package upload

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// PlaceholderFilename is stored for games without an uploaded cover.
const PlaceholderFilename = "placeholder.png"

// ErrDisallowedExtension is returned for files outside the image allow-list.
var ErrDisallowedExtension = errors.New("upload: disallowed file extension")

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// Saver writes cover images into a fixed upload directory. Stored names are
// generated, so uploads for unrelated games cannot overwrite each other; the
// original filename is kept by the caller as display metadata only.
type Saver struct {
	dir string
}

// NewSaver creates the upload directory if needed and returns a Saver for it.
func NewSaver(dir string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Saver{dir: dir}, nil
}

// Dir returns the directory the Saver writes into.
func (s *Saver) Dir() string {
	return s.dir
}

// Allowed reports whether the filename carries an accepted image extension.
func Allowed(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// SanitizeFilename strips path components and unsafe characters from an
// uploaded filename so it is safe to display and to store as metadata.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	return unsafeChars.ReplaceAllString(name, "_")
}

// Save validates the upload's extension, writes it under a generated name
// and returns that name. Nothing is written for a disallowed extension.
func (s *Saver) Save(header *multipart.FileHeader) (string, error) {
	if !Allowed(header.Filename) {
		return "", ErrDisallowedExtension
	}

	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.New().String() + strings.ToLower(filepath.Ext(header.Filename))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}

	return name, nil
}

// Remove deletes a previously stored file, for cleanup when the row it was
// meant for is never written or its cover has been replaced. The placeholder
// is never removed, and a name that was never stored is a no-op.
func (s *Saver) Remove(name string) error {
	if name == "" || name == PlaceholderFilename {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
