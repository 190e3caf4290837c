package propertyfile

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/go-test/deep"
)

func TestParse(t *testing.T) {
	for _, tt := range []struct {
		name  string
		input string
		want  map[string]string
	}{
		{
			name: "recognized keys",
			input: "cert_file_path=/etc/mdsd.d/oms/workspace/certs/oms.crt\n" +
				"key_file_path=/etc/mdsd.d/oms/workspace/certs/oms.key\n" +
				"omsproxy_conf_path=/etc/opt/microsoft/docker-cimprov/proxy.conf\n",
			want: map[string]string{
				"cert_file_path":     "/etc/mdsd.d/oms/workspace/certs/oms.crt",
				"key_file_path":      "/etc/mdsd.d/oms/workspace/certs/oms.key",
				"omsproxy_conf_path": "/etc/opt/microsoft/docker-cimprov/proxy.conf",
			},
		},
		{
			name:  "keys and values are trimmed",
			input: "  key  =  value  \n",
			want:  map[string]string{"key": "value"},
		},
		{
			name:  "lines without separator and empty keys are skipped",
			input: "no separator\n\n = orphan\n#comment\nkey=value\n",
			want:  map[string]string{"key": "value"},
		},
		{
			name:  "last write wins",
			input: "key=first\nother=x\nkey=second\n",
			want:  map[string]string{"key": "second", "other": "x"},
		},
		{
			name:  "value keeps further separators and may be empty",
			input: "url=http://host/?a=b\nempty=\n",
			want:  map[string]string{"url": "http://host/?a=b", "empty": ""},
		},
		{
			name: "empty input",
			want: map[string]string{},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatal(err)
			}

			for _, diff := range deep.Equal(got, tt.want) {
				t.Error(diff)
			}
		})
	}
}

func TestParseReadError(t *testing.T) {
	_, err := Parse(iotest.ErrReader(errors.New("disk on fire")))
	if err == nil || err.Error() != "disk on fire" {
		t.Error(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "out_oms.conf")
	err := os.WriteFile(path, []byte("cert_file_path=/tmp/oms.crt\n"), 0600)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("empty path", func(t *testing.T) {
		got, err := Load("")
		if err != nil {
			t.Fatal(err)
		}
		if got == nil || len(got) != 0 {
			t.Error(got)
		}
	})

	t.Run("file", func(t *testing.T) {
		got, err := Load(path)
		if err != nil {
			t.Fatal(err)
		}
		for _, diff := range deep.Equal(got, map[string]string{"cert_file_path": "/tmp/oms.crt"}) {
			t.Error(diff)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.conf"))

		var ioErr *IOError
		if !errors.As(err, &ioErr) {
			t.Fatalf("expected IOError, got %v", err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Error(err)
		}
	})

	t.Run("directory cannot be read", func(t *testing.T) {
		_, err := Load(dir)

		var readErr *ReadError
		if !errors.As(err, &readErr) {
			t.Fatalf("expected ReadError, got %v", err)
		}
	})
}
