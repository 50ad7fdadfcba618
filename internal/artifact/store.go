package artifact

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (s *implStore) Root(kind Kind) (string, error) {
	root, ok := s.roots[kind]
	if !ok || root == "" {
		return "", fmt.Errorf("unknown artifact kind %q", kind)
	}
	return root, nil
}

// Acquire creates an empty, uniquely named file under the kind's scratch root.
func (s *implStore) Acquire(kind Kind, suggestedName string) (Artifact, error) {
	root, err := s.Root(kind)
	if err != nil {
		return Artifact{}, err
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return Artifact{}, fmt.Errorf("create scratch root %s: %w", root, err)
	}

	f, err := os.CreateTemp(root, "*_"+sanitizeName(suggestedName))
	if err != nil {
		return Artifact{}, fmt.Errorf("create artifact: %w", err)
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		os.Remove(path)
		return Artifact{}, fmt.Errorf("close artifact: %w", err)
	}

	s.logger.Debug(context.Background(), "Acquired %s artifact: %s", kind, path)
	return Artifact{Path: path, Kind: kind}, nil
}

// Release removes the file at path. A missing file is not an error.
func (s *implStore) Release(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("release artifact %s: %w", path, err)
	}
	s.logger.Debug(context.Background(), "Released artifact: %s", path)
	return nil
}

// PurgeAll removes the kind's whole scratch root.
func (s *implStore) PurgeAll(kind Kind) error {
	root, err := s.Root(kind)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(root); err != nil {
		return fmt.Errorf("purge scratch root %s: %w", root, err)
	}
	s.logger.Info(context.Background(), "Purged %s scratch area: %s", kind, root)
	return nil
}

// sanitizeName keeps only the base name and strips characters CreateTemp rejects.
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(strings.TrimSpace(name))
	name = strings.Map(func(r rune) rune {
		switch {
		case r == '*' || r == os.PathSeparator || r < 0x20:
			return '_'
		default:
			return r
		}
	}, name)
	if name == "" || name == "." || name == "/" || name == ".." {
		return "artifact"
	}
	return name
}
