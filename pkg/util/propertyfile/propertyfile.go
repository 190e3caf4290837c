package propertyfile

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// IOError is returned when the property file cannot be opened.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("error opening property file %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ReadError is returned when the property file cannot be fully consumed.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("error reading property file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Load reads a property file of key=value lines. An empty path is not an
// error and yields an empty map.
func Load(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()

	config, err := Parse(f)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	return config, nil
}

// Parse reads key=value lines from r. The line is split on the first '=',
// key and value are trimmed, lines without '=' or with an empty key are
// skipped and the last occurrence of a key wins.
func Parse(r io.Reader) (map[string]string, error) {
	config := map[string]string{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), "=")
		if !found {
			continue
		}

		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		config[key] = strings.TrimSpace(value)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return config, nil
}
