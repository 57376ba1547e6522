package bitmap

import (
	"fmt"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
)

// Store finds and loads bitmap font assets by name.
type Store struct {
	fsys fs.FS
}

// NewStore returns a store reading from fsys. A nil fsys reads names as
// operating system paths.
func NewStore(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// Exists reports whether an asset with the given name exists and is a
// regular file.
func (s *Store) Exists(name string) bool {
	info, err := s.stat(name)
	return err == nil && info.Mode().IsRegular()
}

// LoadFont loads a .png atlas or a .xml descriptor.
func (s *Store) LoadFont(name string) (*Font, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".png":
		return s.loadAtlas(name, name, DefaultLayout)
	case ".xml":
		return s.loadDescriptor(name)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
}

func (s *Store) loadDescriptor(name string) (*Font, error) {
	r, err := s.open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	d, layout, err := parseDescriptor(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	texture := d.Texture
	if !path.IsAbs(texture) {
		texture = path.Join(path.Dir(name), texture)
	}
	return s.loadAtlas(name, texture, layout)
}

func (s *Store) loadAtlas(name, texture string, layout Layout) (*Font, error) {
	r, err := s.open(texture)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("bitmap: failed to decode %s: %w", texture, err)
	}

	face, err := NewFace(img, layout)
	if err != nil {
		return nil, fmt.Errorf("bitmap: %s: %w", name, err)
	}
	return &Font{name: name, face: face, lineGap: layout.LineGap}, nil
}

func (s *Store) open(name string) (io.ReadCloser, error) {
	if s.fsys == nil {
		// #nosec G304 -- asset names come from the client settings
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("bitmap: %w", err)
		}
		return f, nil
	}

	clean, err := fsName(name)
	if err != nil {
		return nil, err
	}
	f, err := s.fsys.Open(clean)
	if err != nil {
		return nil, fmt.Errorf("bitmap: %w", err)
	}
	return f, nil
}

func (s *Store) stat(name string) (fs.FileInfo, error) {
	if s.fsys == nil {
		return os.Stat(name)
	}
	clean, err := fsName(name)
	if err != nil {
		return nil, err
	}
	return fs.Stat(s.fsys, clean)
}

// fsName turns a slash separated name into an fs.FS path.
func fsName(name string) (string, error) {
	clean := strings.TrimPrefix(path.Clean(name), "/")
	if !fs.ValidPath(clean) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return clean, nil
}
