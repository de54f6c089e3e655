// SPDX-License-Identifier: EPL-2.0

package muxer

import (
	"io"
	"sync"
)

// EngineFactory creates a write engine over an output stream.
type EngineFactory func(w io.WriteSeeker) (Engine, error)

// AppendFactory reopens an existing container for appending.
type AppendFactory func(rw io.ReadWriteSeeker, mode AppendMode) (Engine, error)

// Registry maps output formats to engine factories. The zero value is not
// usable; call NewEngineRegistry.
type Registry struct {
	engines map[OutputFormat]EngineFactory
	append  map[OutputFormat]AppendFactory

	mtx *sync.Mutex
}

func NewEngineRegistry() *Registry {
	return &Registry{
		engines: make(map[OutputFormat]EngineFactory),
		append:  make(map[OutputFormat]AppendFactory),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(format OutputFormat, factory EngineFactory) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.engines[format] = factory
}

func (r *Registry) RegisterAppend(format OutputFormat, factory AppendFactory) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.append[format] = factory
}

func (r *Registry) Get(format OutputFormat) (EngineFactory, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	f, ok := r.engines[format]
	return f, ok
}

func (r *Registry) GetAppend(format OutputFormat) (AppendFactory, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	f, ok := r.append[format]
	return f, ok
}

// defaultRegistry serves package-level Register calls; engine packages
// register themselves from init.
var defaultRegistry = NewEngineRegistry()

// Register adds an engine factory to the default registry.
func Register(format OutputFormat, factory EngineFactory) {
	defaultRegistry.Register(format, factory)
}

// RegisterAppend adds an append factory to the default registry.
func RegisterAppend(format OutputFormat, factory AppendFactory) {
	defaultRegistry.RegisterAppend(format, factory)
}
