package fsio

import (
	"io"
	"os"
)

//go:generate mockgen -destination=../../scenario/readermocks_test.go -package=scenario_test github.com/kardolus/stubexpect/internal/fsio Reader
type Reader interface {
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]os.DirEntry, error)
}

type Writer interface {
	Write(w io.Writer, buf []byte) error
}

// Ensure the real implementations satisfy the interfaces
var (
	_ Reader = &RealReader{}
	_ Writer = &RealWriter{}
)

type RealReader struct{}

func NewRealReader() *RealReader {
	return &RealReader{}
}

func (r *RealReader) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

func (r *RealReader) ReadDir(name string) ([]os.DirEntry, error) { return os.ReadDir(name) }

type RealWriter struct{}

func (w *RealWriter) Write(dst io.Writer, buf []byte) error {
	_, err := dst.Write(buf)
	return err
}
