package gateways

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
)

// ArtifactFinder lists and relocates release files on the local filesystem
type ArtifactFinder struct{}

// NewArtifactFinder creates a new artifact finder
func NewArtifactFinder() *ArtifactFinder {
	return &ArtifactFinder{}
}

// ListFiles returns the names of regular files directly inside dir,
// sorted by name, including symlinks to regular files.
// Subdirectories (e.g. .svn) are skipped.
func (f *ArtifactFinder) ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !isRegularFile(dir, entry) {
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}

// isRegularFile follows symlinks; broken links are skipped
func isRegularFile(dir string, entry os.DirEntry) bool {
	if entry.Type()&os.ModeSymlink == 0 {
		return entry.Type().IsRegular()
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.Mode().IsRegular()
}

// EnsureDir creates dir and any missing parents
func (f *ArtifactFinder) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// MoveFile moves srcDir/name to destDir/name. Moves across filesystems
// (e.g. out of a temporary checkout) fall back to copy and remove.
func (f *ArtifactFinder) MoveFile(srcDir, name, destDir string) error {
	src := filepath.Join(srcDir, name)
	dest := filepath.Join(destDir, name)

	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("cannot move %s: %w", src, err)
	}

	err := os.Rename(src, dest)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return fmt.Errorf("failed to move %s to %s: %w", src, destDir, err)
	}

	if err := copyFile(src, dest); err != nil {
		return fmt.Errorf("failed to move %s to %s: %w", src, destDir, err)
	}
	return os.Remove(src)
}

func copyFile(src, dest string) error {
	//nolint:gosec // G304: src is a file from the release directory listing
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	//nolint:errcheck // Defer close on read-only file
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	//nolint:gosec // G304: dest is inside the configured dist directory
	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
