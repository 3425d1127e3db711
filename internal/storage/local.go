package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorageService stores vehicle images on the local filesystem. Keys are
// opaque uuid-based names; callers keep the key on the vehicle record.
type LocalStorageService struct {
	baseURL   string // Server URL (e.g., "http://localhost:8080")
	imagesDir string
}

func NewLocalStorageService(baseURL, uploadDir string) (*LocalStorageService, error) {
	imagesDir := filepath.Join(uploadDir, "images")
	if err := os.MkdirAll(imagesDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}
	return &LocalStorageService{baseURL: baseURL, imagesDir: imagesDir}, nil
}

// NewImageKey returns a fresh storage key preserving the original extension.
func (s *LocalStorageService) NewImageKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return uuid.New().String() + ext
}

// DownloadURL returns the public URL serving the stored image.
func (s *LocalStorageService) DownloadURL(key string) string {
	return fmt.Sprintf("%s/api/vehicles/images/%s", s.baseURL, key)
}

func (s *LocalStorageService) SaveFile(key string, reader io.Reader) error {
	fullPath := filepath.Join(s.imagesDir, filepath.Base(key))
	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (s *LocalStorageService) ReadFile(key string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.imagesDir, filepath.Base(key)))
}

func (s *LocalStorageService) DeleteFile(key string) error {
	err := os.Remove(filepath.Join(s.imagesDir, filepath.Base(key)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
