// Copyright 2020 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package script

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/juju/errors"
	"go.uber.org/zap"
)

// Kind tells the generated scripts apart
type Kind int

// Script kinds
const (
	KindSchema Kind = iota
	KindSeed
)

func (k Kind) String() string {
	switch k {
	case KindSchema:
		return "schema"
	case KindSeed:
		return "seed"
	default:
		return "unknown"
	}
}

// Sink persists finished scripts
type Sink interface {
	// Persist stores content and returns where it went.
	Persist(kind Kind, content string) (string, error)
	// Discard removes an artifact returned by Persist.
	Discard(location string) error
}

// Default file name patterns, '*' is replaced by a random string.
const (
	DefaultSchemaFile = "fatschema-schema-*.sql"
	DefaultSeedFile   = "fatschema-seed-*.sql"
)

// FileSink writes scripts as files into a directory
type FileSink struct {
	dir   string
	names map[Kind]string
}

// NewFileSink creates a FileSink. An empty dir means the OS temp directory,
// empty names fall back to DefaultSchemaFile and DefaultSeedFile.
func NewFileSink(dir, schemaName, seedName string) *FileSink {
	if dir == "" {
		dir = os.TempDir()
	}
	if schemaName == "" {
		schemaName = DefaultSchemaFile
	}
	if seedName == "" {
		seedName = DefaultSeedFile
	}
	return &FileSink{
		dir: dir,
		names: map[Kind]string{
			KindSchema: schemaName,
			KindSeed:   seedName,
		},
	}
}

// Persist implements Sink. A name containing '*' yields a fresh file,
// other names are written to a temporary file and renamed into place.
func (s *FileSink) Persist(kind Kind, content string) (string, error) {
	name, ok := s.names[kind]
	if !ok {
		return "", errors.NotSupportedf("script kind %s", kind)
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", errors.Trace(err)
	}

	pattern := name
	if !strings.Contains(name, "*") {
		pattern = "." + name + ".tmp-*"
	}
	tmp, err := writeTemp(s.dir, pattern, content)
	if err != nil {
		return "", errors.Annotatef(err, "write %s script", kind)
	}
	if pattern == name {
		return tmp, nil
	}

	target := filepath.Join(s.dir, name)
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return "", errors.Annotatef(err, "write %s script", kind)
	}
	return target, nil
}

// Discard implements Sink
func (s *FileSink) Discard(location string) error {
	err := os.Remove(location)
	if os.IsNotExist(err) {
		return nil
	}
	return errors.Trace(err)
}

func writeTemp(dir, pattern, content string) (path string, err error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", errors.Trace(err)
	}
	path = f.Name()
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Trace(cerr)
		}
		if err != nil {
			os.Remove(path)
			path = ""
		}
	}()

	if _, err = f.WriteString(content); err != nil {
		return path, errors.Trace(err)
	}
	zap.L().Debug("write script file", zap.String("path", path), zap.Int("bytes", len(content)))
	return path, nil
}
