package config

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/BurntSushi/toml"
)

// LoadFile reads a TOML settings file and applies it with Apply.
func (s *Settings) LoadFile(path string) error {
	f, err := os.Open(path) // #nosec G304 -- settings path is chosen by the user
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := s.Load(f); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// Load decodes TOML from r and applies it with Apply.
//
// Keys are flat (font_path = "..."). Nested tables are flattened with a
// dot separator, so [client] font_size = 18 sets "client.font_size".
func (s *Settings) Load(r io.Reader) error {
	var raw map[string]any
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return fmt.Errorf("config: failed to decode toml: %w", err)
	}

	values := make(map[string]string, len(raw))
	if err := flatten("", raw, values); err != nil {
		return err
	}
	s.Apply(values)
	return nil
}

// Apply stores every value before running any callback, so callbacks
// observe the whole batch. Each watcher runs once, with the first of its
// changed keys in sorted order.
func (s *Settings) Apply(values map[string]string) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var changed []string
	for _, k := range keys {
		old := s.Get(k)
		s.values[k] = values[k]
		if old != values[k] {
			changed = append(changed, k)
		}
	}

	ran := make(map[*watcher]bool)
	for _, k := range changed {
		for _, w := range s.callbacks[k] {
			if ran[w] {
				continue
			}
			ran[w] = true
			w.fn(k)
		}
	}
}

// WriteTOML writes every explicitly set value to w.
func (s *Settings) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(s.values)
}

func flatten(prefix string, in map[string]any, out map[string]string) error {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		case string:
			out[key] = val
		case int64:
			out[key] = strconv.FormatInt(val, 10)
		case float64:
			out[key] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			out[key] = strconv.FormatBool(val)
		default:
			return fmt.Errorf("%w: %s has unsupported type %T", ErrInvalidValue, key, v)
		}
	}
	return nil
}
