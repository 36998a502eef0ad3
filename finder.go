// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package whoknows finds the right colleague for a question. It loads a
// tabular employee directory and ranks employees against free-text
// queries, optionally refined by a language model. See the directory,
// search and ai packages for the individual pipeline stages; Finder ties
// them together.
package whoknows

import (
	"log/slog"

	"github.com/poiesic/whoknows/ai"
	"github.com/poiesic/whoknows/ai/openai"
	"github.com/poiesic/whoknows/directory"
	"github.com/poiesic/whoknows/search"
)

// Finder bundles a directory store, its loaded snapshot, and an optional
// AI re-ranker behind one handle.
type Finder struct {
	store    *directory.Store
	dir      *directory.Directory
	source   string
	reranker ai.Reranker
	logger   *slog.Logger
}

// FinderOption configures a Finder.
type FinderOption func(*finderOptions)

type finderOptions struct {
	aiConfig *ai.Config
	logger   *slog.Logger
}

// WithAIConfig enables AI re-ranking using the given provider
// configuration. Without this option searches are fully deterministic.
func WithAIConfig(config *ai.Config) FinderOption {
	return func(o *finderOptions) {
		o.aiConfig = config
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) FinderOption {
	return func(o *finderOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Open loads the directory source at path and returns a ready Finder.
// Returns directory.ErrSourceNotFound when the source file is absent;
// callers should surface that as a "no data" state rather than a crash.
func Open(path string, opts ...FinderOption) (*Finder, error) {
	options := &finderOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	store := directory.NewStore(directory.WithLogger(options.logger))
	dir, err := store.Load(path)
	if err != nil {
		return nil, err
	}

	var reranker ai.Reranker
	if options.aiConfig != nil {
		reranker, err = openai.NewReranker(options.aiConfig)
		if err != nil {
			return nil, err
		}
	}

	return &Finder{
		store:    store,
		dir:      dir,
		source:   path,
		reranker: reranker,
		logger:   options.logger,
	}, nil
}

// Directory returns the loaded snapshot.
func (f *Finder) Directory() *directory.Directory {
	return f.dir
}

// Reload re-reads the source. The store's fingerprint memoization makes
// this cheap when the backing file has not changed.
func (f *Finder) Reload() error {
	dir, err := f.store.Load(f.source)
	if err != nil {
		return err
	}
	f.dir = dir
	return nil
}

// NewSearcher creates a searcher over the current snapshot, wired to the
// Finder's re-ranker when one is configured.
func (f *Finder) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	base := []search.Option{search.WithLogger(f.logger)}
	if f.reranker != nil {
		base = append(base, search.WithReranker(f.reranker))
	}
	return search.NewSearcher(f.dir, append(base, opts...)...)
}
