// Copyright 2026 The Cryptokit Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package registry

import (
	"fmt"
	"sort"

	"github.com/scanhound/cryptokit/log"
)

// Registry exposes the implementations available for a concern, such as digest
// strategies, by name at run time.
type Registry[T any] struct {
	entriesByName map[string]Entry[T]
}

// FactoryFunc is a function that will create an instantiation of an Entity
type FactoryFunc[T any] func() T

// Entry contains information about each of the Entities in the Registry including the factory
// function, name, and a short description
type Entry[T any] struct {
	Factory     FactoryFunc[T]
	Name        string
	Description string
}

// ErrNotFound is returned when no entry with the requested name was registered.
type ErrNotFound struct {
	Name string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("could not find entry with name %v", e.Name)
}

// New returns a new instance of a Registry
func New[T any]() Registry[T] {
	reg := Registry[T]{
		entriesByName: make(map[string]Entry[T]),
	}

	return reg
}

// Register adds an Entry to the Registry for an Entity. Registering a name twice replaces
// the earlier entry.
func (r Registry[T]) Register(name, description string, factoryFunc FactoryFunc[T]) Entry[T] {
	if _, ok := r.entriesByName[name]; ok {
		log.Debugf("replacing registry entry %v", name)
	}

	entry := Entry[T]{
		Name:        name,
		Description: description,
		Factory:     factoryFunc,
	}

	r.entriesByName[name] = entry
	return entry
}

// Entry returns the Registry Entry for an Entity with the provided name. If an entity with the
// provided name cannot be found in the Registry, the boolean return value will be false.
func (r Registry[T]) Entry(name string) (Entry[T], bool) {
	entry, ok := r.entriesByName[name]
	return entry, ok
}

// AllEntries returns every Entry in the Registry ordered by name
func (r Registry[T]) AllEntries() []Entry[T] {
	results := make([]Entry[T], 0, len(r.entriesByName))
	for _, registration := range r.entriesByName {
		results = append(results, registration)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Name < results[j].Name
	})

	return results
}

// NewEntity creates a new entity from the factory registered under name
func (r Registry[T]) NewEntity(name string) (T, error) {
	var result T
	entry, ok := r.Entry(name)
	if !ok {
		return result, ErrNotFound{Name: name}
	}

	return entry.Factory(), nil
}
