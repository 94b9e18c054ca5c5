package search

import (
	"archive/zip"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
)

// zipMagic is the zip local-file-header signature.
var zipMagic = [4]byte{0x50, 0x4B, 0x03, 0x04}

// isArchive reports whether the file starts with the zip signature.
func isArchive(fs afero.Fs, path string) (bool, error) {
	f, err := fs.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	var sig [4]byte
	if _, err := io.ReadFull(f, sig[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return false, nil
		}
		return false, err
	}
	return sig == zipMagic, nil
}

// walkArchive opens the zip at path once and hands every inner file to
// visit along with its virtual path (archive path joined with the entry
// name). Directory entries are skipped.
func walkArchive(fs afero.Fs, path string, visit func(virtualPath string, r io.Reader) error) error {
	f, err := fs.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	zr, err := zip.NewReader(f, info.Size())
	if err != nil {
		return fmt.Errorf("open zip %s: %w", path, err)
	}

	for _, entry := range zr.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return fmt.Errorf("open zip entry %s: %w", entry.Name, err)
		}
		err = visit(filepath.Join(path, entry.Name), rc)
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
