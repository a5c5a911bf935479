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

package namegen

import (
	// embed word lists
	_ "embed"
	"io"
	"math"
	"regexp"
	"strings"

	"github.com/juju/errors"

	"github.com/pingcap/fatschema/util"
)

var (
	//go:embed words/adjectives.txt
	defaultAdjectives string
	//go:embed words/animals.txt
	defaultNouns string

	wordPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
)

// IsIdentifier reports whether name can be used as a bare SQL identifier
func IsIdentifier(name string) bool {
	return wordPattern.MatchString(name)
}

// Vocabulary holds the two word lists names are drawn from
type Vocabulary struct {
	Adjectives []string
	Nouns      []string
}

// DefaultVocabulary returns the word lists bundled with the binary
func DefaultVocabulary() *Vocabulary {
	adjectives, err := ParseWords(strings.NewReader(defaultAdjectives))
	if err != nil {
		panic(err)
	}
	nouns, err := ParseWords(strings.NewReader(defaultNouns))
	if err != nil {
		panic(err)
	}
	return &Vocabulary{Adjectives: adjectives, Nouns: nouns}
}

// LoadVocabulary reads newline-delimited word lists from disk.
// An empty path falls back to the bundled list for that part.
func LoadVocabulary(adjectivesPath, nounsPath string) (*Vocabulary, error) {
	vocab := DefaultVocabulary()
	if adjectivesPath != "" {
		words, err := loadWords(adjectivesPath)
		if err != nil {
			return nil, errors.Trace(err)
		}
		vocab.Adjectives = words
	}
	if nounsPath != "" {
		words, err := loadWords(nounsPath)
		if err != nil {
			return nil, errors.Trace(err)
		}
		vocab.Nouns = words
	}
	return vocab, nil
}

func loadWords(path string) ([]string, error) {
	lines, err := util.ReadFileLines(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	words, err := normalizeWords(lines)
	return words, errors.Annotatef(err, "word list %s", path)
}

// ParseWords reads one word per line, skipping blanks and duplicates.
// Every word must be usable as a bare SQL identifier.
func ParseWords(r io.Reader) ([]string, error) {
	lines, err := util.ReadLines(r)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return normalizeWords(lines)
}

func normalizeWords(lines []string) ([]string, error) {
	seen := make(map[string]struct{}, len(lines))
	words := make([]string, 0, len(lines))
	for i, word := range lines {
		if !IsIdentifier(word) {
			return nil, errors.NotValidf("word %q (entry %d)", word, i+1)
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	return words, nil
}

// Capacity is an upper bound of the distinct names the vocabulary can produce.
// It saturates at math.MaxUint64.
func (v *Vocabulary) Capacity() uint64 {
	a, n := uint64(len(v.Adjectives)), uint64(len(v.Nouns))
	if a == 0 || n == 0 {
		return 0
	}
	if a > math.MaxUint64/a {
		return math.MaxUint64
	}
	aa := a * a
	if aa > math.MaxUint64/n {
		return math.MaxUint64
	}
	return aa * n
}

func (v *Vocabulary) empty() bool {
	return len(v.Adjectives) == 0 || len(v.Nouns) == 0
}
