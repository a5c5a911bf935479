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

// Package namegen produces human readable identifiers such as
// "BraveQuietOtter" that are never repeated within one generator.
package namegen

import (
	"math/rand"

	"github.com/juju/errors"

	"github.com/pingcap/fatschema/util"
)

// DefaultMaxRetries bounds the samples drawn for a single name
const DefaultMaxRetries = 10000

var (
	// ErrEmptyVocabulary is returned when a word list has no words.
	ErrEmptyVocabulary = errors.New("empty vocabulary")
	// ErrVocabularyExhausted is returned when no unused name can be found.
	ErrVocabularyExhausted = errors.New("vocabulary exhausted")
)

// Generator hands out adjective+adjective+noun names, each at most once.
// It is not safe for concurrent use.
type Generator struct {
	rand       *rand.Rand
	vocab      *Vocabulary
	used       map[string]struct{}
	capacity   uint64
	maxRetries int
}

// New creates a Generator over vocab. A non-positive maxRetries uses DefaultMaxRetries.
func New(r *rand.Rand, vocab *Vocabulary, maxRetries int) (*Generator, error) {
	if vocab == nil || vocab.empty() {
		return nil, errors.Trace(ErrEmptyVocabulary)
	}
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	return &Generator{
		rand:       r,
		vocab:      vocab,
		used:       make(map[string]struct{}),
		capacity:   vocab.Capacity(),
		maxRetries: maxRetries,
	}, nil
}

// Next returns a name this generator has never returned before.
func (g *Generator) Next() (string, error) {
	if uint64(len(g.used)) >= g.capacity {
		return "", errors.Annotatef(ErrVocabularyExhausted, "all %d names used", g.capacity)
	}
	for i := 0; i < g.maxRetries; i++ {
		name := g.sample()
		if _, ok := g.used[name]; ok {
			continue
		}
		g.used[name] = struct{}{}
		return name, nil
	}
	return "", errors.Annotatef(ErrVocabularyExhausted, "no unused name after %d attempts, %d used", g.maxRetries, len(g.used))
}

// Take returns the next n names.
func (g *Generator) Take(n int) ([]string, error) {
	if n < 0 {
		return nil, errors.NotValidf("name count %d", n)
	}
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		name, err := g.Next()
		if err != nil {
			return nil, errors.Trace(err)
		}
		names = append(names, name)
	}
	return names, nil
}

// Used returns how many names were handed out.
func (g *Generator) Used() int {
	return len(g.used)
}

// IsUsed reports whether name was handed out.
func (g *Generator) IsUsed(name string) bool {
	_, ok := g.used[name]
	return ok
}

// Remaining is an upper bound of the names still available.
func (g *Generator) Remaining() uint64 {
	used := uint64(len(g.used))
	if used >= g.capacity {
		return 0
	}
	return g.capacity - used
}

func (g *Generator) sample() string {
	return util.RdPick(g.rand, g.vocab.Adjectives) +
		util.RdPick(g.rand, g.vocab.Adjectives) +
		util.RdPick(g.rand, g.vocab.Nouns)
}
