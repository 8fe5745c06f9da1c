package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

type fileStorage struct {
	dir string
}

// NewFileStorage creates a Storage that keeps one file per namespace under
// dir, creating the directory when it does not exist.
func NewFileStorage(dir string) (Storage, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, fmt.Errorf("storage: directory is required")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("storage: create state directory: %w", err)
	}

	return &fileStorage{dir: dir}, nil
}

func (s *fileStorage) Read(namespace string) ([]byte, error) {
	path, err := s.path(namespace)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("storage: read %s: %w", namespace, err)
	}

	return data, nil
}

func (s *fileStorage) Write(namespace string, data []byte) error {
	path, err := s.path(namespace)
	if err != nil {
		return err
	}

	// Write to a temporary file first so a crash mid-write cannot leave a
	// truncated document behind.
	tmp, err := os.CreateTemp(s.dir, namespace+".*.tmp")
	if err != nil {
		return fmt.Errorf("storage: create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: write %s: %w", namespace, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: replace %s: %w", namespace, err)
	}

	return nil
}

func (s *fileStorage) Delete(namespace string) error {
	path, err := s.path(namespace)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: delete %s: %w", namespace, err)
	}

	return nil
}

func (s *fileStorage) path(namespace string) (string, error) {
	namespace = strings.TrimSpace(namespace)
	if namespace == "" || strings.ContainsAny(namespace, `/\.`) {
		return "", ErrInvalidNamespace
	}

	return filepath.Join(s.dir, namespace+".json"), nil
}
