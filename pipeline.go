package teletext

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

func (g *Generator) emitFixtures(ctx context.Context, fixtures []Fixture) (<-chan Fixture, <-chan error, error) {
	out := make(chan Fixture)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		for _, f := range fixtures {
			select {
			case out <- f:
			case <-ctx.Done():
				errc <- errors.New("import cancelled")
				return
			}
		}
	}()
	return out, errc, nil
}

func (g *Generator) fixtureWorker(ctx context.Context, in <-chan Fixture) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for f := range in {
			if ctx.Err() != nil {
				return
			}

			code, raw, err := f.Decoder.Decode(f.Hash)
			if err != nil {
				errc <- fmt.Errorf("fixture %q: %w", f.Name, err)
				return
			}

			if err := g.db.AddPage(Page{
				Name:    f.Name,
				Code:    code,
				Decoder: f.Decoder,
				Raw:     raw,
			}); err != nil {
				errc <- fmt.Errorf("fixture %q: %w", f.Name, err)
				return
			}

			g.logger.Printf("Imported \"%s\", page %s, %d bytes\n", f.Name, code, len(raw))
		}
	}()
	return errc, nil
}

// waitForPipeline returns the first error, cancelling the rest of the
// pipeline and waiting for every stage to finish.
func waitForPipeline(cancel context.CancelFunc, errs ...<-chan error) error {
	var first error
	for err := range mergeErrors(errs...) {
		if err != nil && first == nil {
			first = err
			cancel()
		}
	}
	return first
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Import decodes every fixture in the manifest and stores the pages.
func (g *Generator) Import(m *Manifest) error {
	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	fixtures, errc, err := g.emitFixtures(ctx, m.Fixtures)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	workers := m.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	for i := 0; i < workers; i++ {
		errc, err := g.fixtureWorker(ctx, fixtures)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(cancelFunc, errcList...)
}

// ImportFile loads a manifest from file and imports it.
func (g *Generator) ImportFile(file string) error {
	m, err := LoadManifest(file)
	if err != nil {
		return err
	}
	return g.Import(m)
}
