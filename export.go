package teletext

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/teletext/mosaic"
	"github.com/klauspost/compress/zstd"
)

const (
	rawExtension  = ".raw"
	zstdExtension = ".zst"
)

func writeFile(file string, b []byte, compress bool) (err error) {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	var w io.WriteCloser = f
	if compress {
		if w, err = zstd.NewWriter(f); err != nil {
			return err
		}
	}

	if _, err = w.Write(b); err != nil {
		if compress {
			w.Close()
		}
		return err
	}

	if compress {
		return w.Close()
	}
	return nil
}

// WriteMosaic writes the mosaic character set to dir unless an identical
// one is already there.
func (g *Generator) WriteMosaic(dir string) error {
	file := filepath.Join(dir, mosaic.Filename)

	set := mosaic.NewSet()
	b, err := set.MarshalBinary()
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(file); err == nil {
		var tmp mosaic.Set
		if err := tmp.UnmarshalBinary(existing); err == nil {
			g.logger.Printf("\"%s\" is up to date\n", file)
			return nil
		}
		g.logger.Printf("Replacing \"%s\"\n", file)
	}

	return writeFile(file, b, false)
}

// Export writes every stored page to dir as "<name>.raw", or "<name>.raw.zst"
// when compress is set, along with the mosaic character set.
func (g *Generator) Export(dir string, compress bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	pages, err := g.db.Pages()
	if err != nil {
		return err
	}

	for _, p := range pages {
		if p.Name != filepath.Base(p.Name) || p.Name == "." || p.Name == ".." {
			return fmt.Errorf("fixture %q: name must not be a path", p.Name)
		}

		name := p.Name + rawExtension
		if compress {
			name += zstdExtension
		}
		if err := writeFile(filepath.Join(dir, name), p.Raw, compress); err != nil {
			return err
		}
		g.logger.Printf("Exported \"%s\", %d bytes\n", name, len(p.Raw))
	}

	return g.WriteMosaic(dir)
}
