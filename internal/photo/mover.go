package photo

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/djherbis/times"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Mover copies photos into the dated output tree. Despite the name the
// source is never removed.
type Mover struct {
	Fs  afero.Fs
	Log logrus.FieldLogger
}

// NewMover returns a Mover over fs. A nil log discards diagnostics.
func NewMover(fs afero.Fs, log logrus.FieldLogger) *Mover {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Mover{Fs: fs, Log: log}
}

// Move parses the date from src, creates {outputDir}/{year}/{month}/{day}
// and copies src into it under its original name. It returns the path of
// the copy. Existing directories and files are reused, so running Move twice
// on the same input gives the same result.
func (m *Mover) Move(src, outputDir string) (string, error) {
	date, err := ParseDate(src)
	if err != nil {
		return "", err
	}

	dir := DestinationDir(date, outputDir)
	if err := m.Fs.MkdirAll(dir, 0o755); err != nil {
		return "", &Error{Kind: KindDirectoryCreateFailed, Path: src, Msg: "Failed to create directory tree", Err: err}
	}

	dst := filepath.Join(dir, filepath.Base(src))
	if err := m.copyFile(src, dst); err != nil {
		return "", &Error{Kind: KindCopyFailed, Path: src, Msg: "Failed to copy file", Err: err}
	}

	m.checkCaptureDate(src, date)
	return dst, nil
}

// copyFile writes src to a temporary file next to dst, carries over
// permission bits and access/modification times, then renames it into place.
// A failed copy leaves any previous dst intact, and a read-only previous copy
// is replaced rather than reopened for writing.
func (m *Mover) copyFile(src, dst string) error {
	info, err := m.Fs.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", src)
	}
	if m.sameFile(src, info, dst) {
		return fmt.Errorf("%s and %s are the same file", src, dst)
	}

	in, err := m.Fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp, err := afero.TempFile(m.Fs, filepath.Dir(dst), "."+filepath.Base(dst)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if tmpName != "" {
			_ = m.Fs.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, in); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	m.preserveMetadata(tmpName, info)
	if err := m.Fs.Rename(tmpName, dst); err != nil {
		return err
	}
	tmpName = ""
	return nil
}

// sameFile reports whether dst already is src, as when the input directory
// lies inside the output tree. Stat data decides on real filesystems; without
// it the cleaned absolute paths are compared.
func (m *Mover) sameFile(src string, srcInfo os.FileInfo, dst string) bool {
	dstInfo, err := m.Fs.Stat(dst)
	if err != nil {
		return false
	}
	if srcInfo.Sys() != nil && dstInfo.Sys() != nil {
		return os.SameFile(srcInfo, dstInfo)
	}
	a, errA := filepath.Abs(src)
	b, errB := filepath.Abs(dst)
	return errA == nil && errB == nil && a == b
}

// preserveMetadata is best effort: filesystems that refuse chmod or utimes
// still get the copy, with a warning.
func (m *Mover) preserveMetadata(dst string, info os.FileInfo) {
	log := m.Log.WithField("dest", dst)
	if err := m.Fs.Chmod(dst, info.Mode().Perm()); err != nil {
		log.WithError(err).Warn("Could not preserve file mode")
	}
	if err := m.Fs.Chtimes(dst, accessTime(info), info.ModTime()); err != nil {
		log.WithError(err).Warn("Could not preserve file times")
	}
}

// accessTime reads atime from the platform stat data. In-memory filesystems
// carry none, so the modification time stands in.
func accessTime(info os.FileInfo) time.Time {
	if info.Sys() == nil {
		return info.ModTime()
	}
	return times.Get(info).AccessTime()
}
