// Package config loads the YAML configuration of the b64
// command: custom Base64 standards and the default standard.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ericlagergren/libbase64/base64"
)

// DefaultStandard is used when neither the command line nor the
// configuration file names a standard.
const DefaultStandard = "rfc4648"

// Standard describes a custom Base64 standard.
type Standard struct {
	Name     string `yaml:"name"`
	Alphabet string `yaml:"alphabet"`
	// Pad is empty for unpadded standards, otherwise a single
	// byte.
	Pad     string `yaml:"pad"`
	Discard bool   `yaml:"discard"`
	Strict  bool   `yaml:"strict"`
}

// File is the content of a configuration file.
type File struct {
	Default   string     `yaml:"default"`
	Standards []Standard `yaml:"standards"`

	custom map[string]*base64.Standard
}

// Load reads and validates the configuration file at filename.
func Load(filename string) (*File, error) {
	body, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	f, err := Parse(body)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load %s", filename)
	}
	return f, nil
}

// Parse decodes and validates a YAML configuration.
//
// An empty document is a valid configuration without custom
// standards.
func Parse(data []byte) (*File, error) {
	f := &File{}
	if len(bytes.TrimSpace(data)) > 0 {
		decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.DisallowUnknownField())
		if err := decoder.Decode(f); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "could not decode configuration")
		}
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate builds every custom standard and checks that the
// default standard exists. All problems are reported at once.
func (f *File) Validate() error {
	var errs error
	custom := make(map[string]*base64.Standard, len(f.Standards))
	for i, sc := range f.Standards {
		s, err := sc.build()
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "standard #%d", i))
			continue
		}
		if _, ok := base64.Lookup(sc.Name); ok {
			errs = multierror.Append(errs, errors.Errorf("standard #%d: %q is predefined", i, sc.Name))
			continue
		}
		if _, ok := custom[sc.Name]; ok {
			errs = multierror.Append(errs, errors.Errorf("standard #%d: duplicate name %q", i, sc.Name))
			continue
		}
		custom[sc.Name] = s
	}
	f.custom = custom

	if f.Default != "" {
		if _, err := f.Resolve(f.Default); err != nil {
			errs = multierror.Append(errs, errors.Wrap(err, "default"))
		}
	}
	return errs
}

func (sc Standard) build() (*base64.Standard, error) {
	if sc.Name == "" {
		return nil, errors.New("missing name")
	}
	pad := base64.NoPadding
	switch len(sc.Pad) {
	case 0:
	case 1:
		pad = rune(sc.Pad[0])
	default:
		return nil, errors.Errorf("%s: pad %q is not a single byte", sc.Name, sc.Pad)
	}
	s, err := base64.NewStandard(sc.Name, sc.Alphabet, pad, sc.Discard)
	if err != nil {
		return nil, errors.Wrap(err, sc.Name)
	}
	if sc.Strict {
		s = s.Strict()
	}
	return s, nil
}

// Resolve returns the standard with the provided name.
//
// An empty name resolves to the configured default, or to
// DefaultStandard. Resolve may be called on a nil *File, in which
// case only the predefined standards are known.
func (f *File) Resolve(name string) (*base64.Standard, error) {
	if name == "" {
		name = DefaultStandard
		if f != nil && f.Default != "" {
			name = f.Default
		}
	}
	if s, ok := base64.Lookup(name); ok {
		return s, nil
	}
	if f != nil {
		if s, ok := f.custom[name]; ok {
			return s, nil
		}
	}
	return nil, errors.Errorf("unknown standard %q", name)
}

// Names returns the names of the predefined and custom standards
// in sorted order.
func (f *File) Names() []string {
	names := base64.Names()
	if f != nil {
		names = append(names, maps.Keys(f.custom)...)
	}
	slices.Sort(names)
	return names
}
