// Package fileutils provides the file operations used by the commands.
package fileutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Stdout is the output path that selects standard output.
const Stdout = "-"

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// CreateFile creates or truncates a file for writing, creating any missing
// parent directories.
func CreateFile(filePath string) (*os.File, error) {
	if err := EnsureDirectoryExists(filepath.Dir(filePath)); err != nil {
		return nil, err
	}

	file, err := os.Create(filePath) // #nosec G304 -- CLI tool writes user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	return file, nil
}

// Output is the destination of a transcript.
type Output interface {
	io.WriteCloser

	// Discard ends a failed run. Data already written is kept, but a file
	// that received no data is never created.
	Discard() error
}

// OpenOutput returns the destination for a transcript. An empty path or "-"
// selects stdout, which is never closed. Any other path names a file that is
// created, with its parent directories, on the first Write or on Close, so an
// existing file is left untouched until there is something to write.
func OpenOutput(path string, stdout io.Writer) (Output, error) {
	if path == "" || path == Stdout {
		return stdoutOutput{stdout}, nil
	}
	return &lazyFile{path: path}, nil
}

type stdoutOutput struct {
	io.Writer
}

func (stdoutOutput) Close() error   { return nil }
func (stdoutOutput) Discard() error { return nil }

type lazyFile struct {
	path string
	file *os.File
}

func (f *lazyFile) Write(p []byte) (int, error) {
	if f.file == nil {
		file, err := CreateFile(f.path)
		if err != nil {
			return 0, err
		}
		f.file = file
	}
	return f.file.Write(p)
}

// Close creates the file if nothing was written, so a successful empty
// transcript still produces an empty file.
func (f *lazyFile) Close() error {
	if f.file == nil {
		file, err := CreateFile(f.path)
		if err != nil {
			return err
		}
		f.file = file
	}
	return f.file.Close()
}

func (f *lazyFile) Discard() error {
	if f.file == nil {
		return nil
	}
	return f.file.Close()
}
