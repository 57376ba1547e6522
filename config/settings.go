// Package config is the client settings store consumed by the font engine.
//
// Settings are strings keyed by name, with compiled-in defaults and
// typed getters. Values can be loaded from a TOML file. Changing a value
// with Set notifies the callbacks registered for that key, synchronously
// and on the caller's goroutine.
package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Settings is a key/value settings store.
// Settings is not safe for concurrent use.
type Settings struct {
	values    map[string]string
	defaults  map[string]string
	callbacks map[string][]*watcher
}

// watcher is one registered callback. A watcher subscribed to several
// keys runs at most once per Apply.
type watcher struct {
	fn func(key string)
}

// New returns a store holding the font engine defaults and no values.
func New() *Settings {
	return &Settings{
		values:    make(map[string]string),
		defaults:  Defaults(),
		callbacks: make(map[string][]*watcher),
	}
}

// Get returns the value of key, or its default if no value is set.
// Unknown keys return "".
func (s *Settings) Get(key string) string {
	if v, ok := s.values[key]; ok {
		return v
	}
	return s.defaults[key]
}

// Default returns the compiled-in default of key.
func (s *Settings) Default(key string) string {
	return s.defaults[key]
}

// Has reports whether key has an explicit value.
func (s *Settings) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// GetInt parses the value of key as a base 10 integer.
func (s *Settings) GetInt(key string) (int, error) {
	raw, err := s.lookup(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidValue, key, raw)
	}
	return n, nil
}

// GetFloat parses the value of key as a float. Missing or malformed
// values read as 0.
func (s *Settings) GetFloat(key string) float64 {
	raw, err := s.lookup(key)
	if err != nil {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return f
}

// GetBool parses the value of key as a boolean. "true", "yes", "on" and
// non-zero integers are true; everything else is false.
func (s *Settings) GetBool(key string) bool {
	raw, err := s.lookup(key)
	if err != nil {
		return false
	}
	switch strings.ToLower(raw) {
	case "true", "yes", "on":
		return true
	}
	n, err := strconv.Atoi(raw)
	return err == nil && n != 0
}

// Set stores value under key. If the effective value changed, every
// callback registered for key runs before Set returns.
func (s *Settings) Set(key, value string) {
	old := s.Get(key)
	s.values[key] = value
	if old != value {
		s.notify(key)
	}
}

// Unset removes the explicit value of key so that its default applies again.
func (s *Settings) Unset(key string) {
	old := s.Get(key)
	delete(s.values, key)
	if old != s.Get(key) {
		s.notify(key)
	}
}

// SetDefault replaces the default of key.
func (s *Settings) SetDefault(key, value string) {
	s.defaults[key] = value
}

// OnChange registers fn to run whenever the value of key changes.
func (s *Settings) OnChange(key string, fn func(key string)) {
	s.Watch(fn, key)
}

// Watch registers fn to run whenever the value of any of keys changes.
// fn receives the changed key. When Apply changes several of the keys,
// fn runs once, after every value is stored, with the first changed key
// in sorted order.
func (s *Settings) Watch(fn func(key string), keys ...string) {
	w := &watcher{fn: fn}
	for _, key := range keys {
		s.callbacks[key] = append(s.callbacks[key], w)
	}
}

func (s *Settings) lookup(key string) (string, error) {
	raw := strings.TrimSpace(s.Get(key))
	if raw == "" {
		return "", fmt.Errorf("%w: %s", ErrNotSet, key)
	}
	return raw, nil
}

func (s *Settings) notify(key string) {
	for _, w := range s.callbacks[key] {
		w.fn(key)
	}
}
