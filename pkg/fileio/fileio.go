package fileio

import (
	"errors"
	"fmt"
	"os"
)

var ErrIO = errors.New("fileio: i/o failure")

// IOError reports a failed file operation with the file name and cause.
type IOError struct {
	Op   string
	Name string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("fileio: %s %s: %v", e.Op, e.Name, e.Err)
}

func (e *IOError) Unwrap() []error { return []error{ErrIO, e.Err} }

// ReadFile reads the whole file in binary form.
func ReadFile(name string) ([]byte, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, &IOError{Op: "read", Name: name, Err: err}
	}
	return b, nil
}

// WriteFile creates or truncates name and writes data.
func WriteFile(name string, data []byte) error {
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return &IOError{Op: "write", Name: name, Err: err}
	}
	return nil
}

// Exists는 덮어쓰기 확인용
func Exists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}
