package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Storage writes report files under a single output directory.
type Storage struct {
	Dir string
}

func (s *Storage) Path(name string) string {
	if s.Dir == "" {
		return name
	}
	return filepath.Join(s.Dir, name)
}

// SaveFile writes content to name under Dir, creating Dir when needed, and returns the full path.
func (s *Storage) SaveFile(name string, content []byte) (string, error) {
	if s.Dir != "" {
		if err := os.MkdirAll(s.Dir, 0755); err != nil {
			return "", fmt.Errorf("error creating output directory: %w", err)
		}
	}

	filePath := s.Path(name)
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}
	return filePath, nil
}

func (s *Storage) HasFile(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}
