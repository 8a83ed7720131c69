package verify

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/cmmoran/luastubgen/pkg/action/generate"
	"github.com/cmmoran/luastubgen/pkg/config"
)

var (
	ErrStubMissing = errors.New("generated stub should exist, but does not")
	ErrStubStale   = errors.New("generated stub is out of date")
)

// Run regenerates every stub in memory and compares it with the file on
// disk. It reports a missing or differing stub for each manifest as one
// aggregated error; I/O failures other than a missing stub abort the run.
func Run(ctx context.Context, opts *config.Options) error {
	var (
		mu     sync.Mutex
		result *multierror.Error
	)
	add := func(err error) {
		mu.Lock()
		result = multierror.Append(result, err)
		mu.Unlock()
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)
	for _, path := range opts.Manifests {
		g.Go(func() error {
			res, want, err := generate.Render(path, opts)
			if err != nil {
				add(err)
				return nil
			}
			have, err := os.ReadFile(res.Output)
			if errors.Is(err, os.ErrNotExist) {
				add(errors.Wrapf(ErrStubMissing, "%s", res.Output))
				return nil
			}
			if err != nil {
				return errors.Wrapf(err, "%s: error reading file", res.Output)
			}
			if diff := cmp.Diff(string(have), want); diff != "" {
				add(errors.WithDetail(errors.Wrapf(ErrStubStale, "%s", res.Output), diff))
				return nil
			}
			slog.With("manifest", path, "output", res.Output).Debug("stub up to date")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "io error while verifying stubs")
	}
	return result.ErrorOrNil()
}
