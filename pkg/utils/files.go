package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
)

// LoadFile loads the given file and performs decompression if
// necessary. Archives are expected to contain the ROM image as their
// first file.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	switch filepath.Ext(filename) {
	case ".gz":
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("open gzip %s: %w", filename, err)
		}
		defer r.Close()
		return io.ReadAll(r)
	case ".zip":
		zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("open zip %s: %w", filename, err)
		}
		if len(zr.File) == 0 {
			return nil, fmt.Errorf("open zip %s: archive is empty", filename)
		}
		f, err := zr.File[0].Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	case ".7z":
		sr, err := sevenzip.OpenReader(filename)
		if err != nil {
			return nil, fmt.Errorf("open 7z %s: %w", filename, err)
		}
		defer sr.Close()
		if len(sr.File) == 0 {
			return nil, fmt.Errorf("open 7z %s: archive is empty", filename)
		}
		f, err := sr.File[0].Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}

	return data, nil
}
