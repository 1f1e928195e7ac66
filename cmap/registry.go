// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmap

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"
)

// A Registry is a set of named colormaps. It is safe for concurrent
// use.
type Registry struct {
	mu   sync.RWMutex
	maps map[string]*Colormap
}

// Default is the registry used by the command-line tool.
var Default = NewRegistry()

func NewRegistry() *Registry {
	return &Registry{maps: make(map[string]*Colormap)}
}

// CanonicalName maps a file or table name to a registry name:
// '-' becomes '_', and names starting with a digit get an "N" prefix.
func CanonicalName(name string) string {
	name = strings.ReplaceAll(name, "-", "_")
	if name != "" && unicode.IsDigit(rune(name[0])) {
		name = "N" + name
	}
	return name
}

// Register adds cm under its canonical name, replacing any existing
// entry.
func (r *Registry) Register(cm *Colormap) error {
	if cm == nil || cm.Name == "" {
		return fmt.Errorf("cmap: cannot register unnamed colormap")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.maps[CanonicalName(cm.Name)] = cm
	return nil
}

// RegisterWithReverse registers cm and its reverse.
func (r *Registry) RegisterWithReverse(cm *Colormap) error {
	if err := r.Register(cm); err != nil {
		return err
	}
	return r.Register(Reversed(cm))
}

// Get returns the colormap registered as name.
func (r *Registry) Get(name string) (*Colormap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cm, ok := r.maps[CanonicalName(name)]
	if !ok {
		return nil, fmt.Errorf("cmap: %q: %w", name, ErrUnknown)
	}
	return cm, nil
}

// Names returns the sorted names of all registered colormaps.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.maps))
	for name := range r.maps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromColors builds an evenly spaced segmented colormap from color
// specifications and registers it.
func (r *Registry) FromColors(name string, specs []string) (*Colormap, error) {
	if len(specs) < 2 {
		return nil, fmt.Errorf("cmap: %s: need at least two colors, got %d", name, len(specs))
	}
	colors, err := ParseColors(specs)
	if err != nil {
		return nil, err
	}
	cm, err := FromList(name, colors, nil, DefaultN)
	if err != nil {
		return nil, err
	}
	if err := r.Register(cm); err != nil {
		return nil, err
	}
	return cm, nil
}
