package teletext

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bodgit/teletext/pagehash"
	"gopkg.in/yaml.v3"
)

const defaultWorkers = 10

// Manifest lists the fixtures to import.
type Manifest struct {
	Workers  int       `yaml:"workers"`
	Fixtures []Fixture `yaml:"fixtures"`
}

// Fixture is a single page hash and the name its page is stored under.
type Fixture struct {
	Name    string  `yaml:"name"`
	Hash    string  `yaml:"hash"`
	Decoder Decoder `yaml:"decoder"`
}

func (m *Manifest) defaults() {
	if m.Workers <= 0 {
		m.Workers = defaultWorkers
	}
	for i := range m.Fixtures {
		f := &m.Fixtures[i]
		if f.Decoder == "" {
			f.Decoder = DecoderHash
		}
		if f.Name == "" {
			if code, _, err := pagehash.Split(f.Hash); err == nil {
				f.Name = code
			}
		}
	}
}

func (m *Manifest) validate() error {
	names := make(map[string]struct{}, len(m.Fixtures))
	for i, f := range m.Fixtures {
		if f.Name == "" {
			return fmt.Errorf("fixture %d has no name", i)
		}
		if strings.ContainsAny(f.Name, `/\`) || f.Name == "." || f.Name == ".." {
			return fmt.Errorf("fixture %q: name must not be a path", f.Name)
		}
		if _, ok := names[f.Name]; ok {
			return fmt.Errorf("duplicate fixture %q", f.Name)
		}
		names[f.Name] = struct{}{}

		switch f.Decoder {
		case DecoderHash, DecoderBitstream:
		default:
			return fmt.Errorf("fixture %q: unknown decoder %q", f.Name, string(f.Decoder))
		}
	}
	if len(names) == 0 {
		return errors.New("no fixtures")
	}
	return nil
}

// ParseManifest decodes a YAML manifest and fills in defaults.
func ParseManifest(b []byte) (*Manifest, error) {
	m := &Manifest{}
	if err := yaml.Unmarshal(b, m); err != nil {
		return nil, err
	}
	m.defaults()
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadManifest reads a YAML manifest file.
func LoadManifest(file string) (*Manifest, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return ParseManifest(b)
}
