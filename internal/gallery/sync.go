package gallery

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var (
	// ErrNotDirectory is returned when a destination path is not an
	// existing directory.
	ErrNotDirectory = errors.New("not a directory")
	// ErrNotRegular is returned when the path matching a file's name in
	// a destination exists but is not a regular file.
	ErrNotRegular = errors.New("not a regular file")
)

// SyncService copies and deletes single files against destination
// directories, matching by base name. Presence is always read from
// disk, never cached. Notify, when set, receives human-readable
// progress messages; a nil Notify is valid.
type SyncService struct {
	Notify func(format string, args ...any)
}

func (s *SyncService) notify(format string, args ...any) {
	if s.Notify != nil {
		s.Notify(format, args...)
	}
}

// expectedPath returns where file would live inside dir. The file may
// or may not exist there.
func expectedPath(file, dir string) string {
	return filepath.Join(dir, filepath.Base(file))
}

// Exists reports whether a regular file with the same base name as
// file exists in dir.
func (s *SyncService) Exists(file, dir string) (bool, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false, fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	}
	target, err := os.Stat(expectedPath(file, dir))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return target.Mode().IsRegular(), nil
}

// Copy copies file into dir unless a same-named file is already there,
// in which case it is a no-op. Partial copies are not rolled back.
func (s *SyncService) Copy(file, dir string) error {
	present, err := s.Exists(file, dir)
	if err != nil {
		return err
	}
	if present {
		s.notify("%s already in %s", filepath.Base(file), dir)
		return nil
	}
	s.notify("copying %s to %s...", filepath.Base(file), dir)
	if err := copyFile(file, expectedPath(file, dir)); err != nil {
		return err
	}
	s.notify("copied %s to %s", filepath.Base(file), dir)
	return nil
}

// Delete removes the file matching file's base name from dir. An
// absent file is a no-op.
func (s *SyncService) Delete(file, dir string) error {
	target := expectedPath(file, dir)
	info, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			s.notify("%s not in %s", filepath.Base(file), dir)
			return nil
		}
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", target, ErrNotRegular)
	}
	s.notify("deleting %s in %s...", filepath.Base(file), dir)
	if err := os.Remove(target); err != nil {
		return err
	}
	s.notify("deleted %s in %s", filepath.Base(file), dir)
	return nil
}

// copyFile copies src to dst and carries over src's permission bits.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
