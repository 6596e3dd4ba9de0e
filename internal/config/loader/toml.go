package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// TOMLLoader decodes TOML configuration files into typed structs.
type TOMLLoader struct {
	path   string
	strict bool
}

// NewTOMLLoader creates a strict TOML loader for the given path.
func NewTOMLLoader(path string) *TOMLLoader {
	return &TOMLLoader{path: path, strict: true}
}

// Lenient returns a copy of the loader that ignores unknown keys.
func (l *TOMLLoader) Lenient() *TOMLLoader {
	c := *l
	c.strict = false
	return &c
}

// Path returns the file the loader reads.
func (l *TOMLLoader) Path() string {
	return l.path
}

// Load decodes the file into v. A missing file is not an error: found is
// false and v is left untouched.
func (l *TOMLLoader) Load(v any) (found bool, err error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("reading config file %s: %w", l.path, err)
	}
	return true, l.decode(l.path, bytes.NewReader(data), v)
}

// LoadFromReader decodes TOML read from r into v.
func (l *TOMLLoader) LoadFromReader(r io.Reader, v any) error {
	return l.decode("<reader>", r, v)
}

// LoadMap decodes a nested map, as produced by EnvLoader, into v. The map
// is round-tripped through TOML so the same struct tags apply.
func (l *TOMLLoader) LoadMap(source string, m map[string]any, v any) error {
	if len(m) == 0 {
		return nil
	}
	data, err := toml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", source, err)
	}
	return l.decode(source, bytes.NewReader(data), v)
}

func (l *TOMLLoader) decode(source string, r io.Reader, v any) error {
	dec := toml.NewDecoder(r)
	if l.strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(v); err != nil {
		return newParseError(source, err)
	}
	return nil
}
