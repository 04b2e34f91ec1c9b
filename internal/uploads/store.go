// Package uploads stores user profile pictures on the local filesystem.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"expensetracker/internal/forms"
	"expensetracker/internal/models"

	"github.com/google/uuid"
)

// ErrDisallowedExtension is returned for files outside the image allow-list.
var ErrDisallowedExtension = errors.New("file type not allowed")

// Store saves and removes uploaded profile pictures under a fixed directory.
type Store struct {
	dir string
}

// NewStore creates a picture store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Path returns the on-disk path for a stored filename.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Dir returns the root directory of the store.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes an uploaded file under a generated collision-resistant name,
// keeping the original extension. The extension must be on the image
// allow-list.
func (s *Store) Save(src io.Reader, originalName string) (string, error) {
	if !forms.AllowedImageExt(originalName) {
		return "", ErrDisallowedExtension
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
	dst, err := os.Create(s.Path(name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(s.Path(name))
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(s.Path(name))
		return "", fmt.Errorf("close upload file: %w", err)
	}

	return name, nil
}

// Replace atomically swaps a user's picture: the new file is saved, commit
// persists the new filename, and only then is the old file removed. If
// commit fails the new file is deleted and the old picture stays in place.
// The default placeholder asset is never deleted.
func (s *Store) Replace(src io.Reader, originalName, oldName string, commit func(newName string) error) (string, error) {
	newName, err := s.Save(src, originalName)
	if err != nil {
		return "", err
	}

	if err := commit(newName); err != nil {
		os.Remove(s.Path(newName))
		return "", fmt.Errorf("commit picture update: %w", err)
	}

	if oldName != "" && oldName != models.DefaultProfilePicture {
		// Best effort: the database already points at the new file.
		_ = s.Remove(oldName)
	}

	return newName, nil
}

// Remove deletes a stored file by name. Names containing path separators
// are rejected so callers cannot escape the upload directory.
func (s *Store) Remove(name string) error {
	if name == "" || name == models.DefaultProfilePicture {
		return nil
	}
	if strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return fmt.Errorf("invalid upload filename %q", name)
	}
	if err := os.Remove(s.Path(name)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
