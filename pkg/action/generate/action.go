package generate

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/cmmoran/luastubgen/pkg/config"
	"github.com/cmmoran/luastubgen/pkg/manifest"
)

// Boundary failures. Returned errors wrap these with the offending path, so
// they read "<path>: <reason>" and match with errors.Is.
var (
	ErrManifestNotFound  = errors.New("manifest file does not exist")
	ErrOutputDirNotFound = errors.New("output directory does not exist")
	ErrOutputExists      = errors.New("output file already exists")
	ErrOutputConflict    = errors.New("output file claimed by another manifest")
)

// Result describes one generated stub.
type Result struct {
	Manifest string
	Name     string
	Output   string
}

// CheckOutDir fails unless dir exists and is a directory.
func CheckOutDir(dir string) error {
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return errors.Wrapf(ErrOutputDirNotFound, "%s", dir)
	}
	return nil
}

// Render loads the manifest at path and returns where its stub belongs
// together with the stub text. Nothing is written.
func Render(path string, opts *config.Options) (Result, string, error) {
	if fi, err := os.Stat(path); err != nil || fi.IsDir() {
		return Result{}, "", errors.Wrapf(ErrManifestNotFound, "%s", path)
	}
	m, err := manifest.Load(path)
	if err != nil {
		return Result{}, "", err
	}
	name := manifest.ResolveName(path, m)
	res := Result{
		Manifest: path,
		Name:     name,
		Output:   opts.OutputPath(name),
	}
	return res, opts.Generator().Generate(name, m), nil
}

// One generates and writes the stub for a single manifest. An existing stub
// is only replaced when opts.Override is set.
func One(path string, opts *config.Options) (Result, error) {
	res, content, err := Render(path, opts)
	if err != nil {
		return Result{}, err
	}
	if err = write(res, content, opts); err != nil {
		return Result{}, err
	}
	return res, nil
}

func write(res Result, content string, opts *config.Options) error {
	if err := os.MkdirAll(opts.StubDir(), 0o755); err != nil {
		return errors.Wrapf(err, "create stub directory %s", opts.StubDir())
	}
	if _, err := os.Stat(res.Output); err == nil && !opts.Override {
		return errors.WithHint(
			errors.Wrapf(ErrOutputExists, "%s", res.Output),
			"use --override to overwrite existing file",
		)
	}
	if err := os.WriteFile(res.Output, []byte(content), 0o644); err != nil {
		return errors.Wrapf(err, "write stub %s", res.Output)
	}
	slog.With("manifest", res.Manifest, "output", res.Output).Info("stub generated")
	return nil
}

// Run generates stubs for every manifest in opts, at most opts.Jobs at a
// time. Failures of individual manifests are collected and returned
// together; the results of the manifests that succeeded keep their input
// order.
func Run(ctx context.Context, opts *config.Options) ([]Result, error) {
	if err := CheckOutDir(opts.OutDir); err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		result  *multierror.Error
		claimed = make(map[string]string, len(opts.Manifests))
		done    = make([]*Result, len(opts.Manifests))
	)
	fail := func(path string, err error) {
		slog.With("manifest", path, "error", err).Error("stub generation failed")
		mu.Lock()
		result = multierror.Append(result, err)
		mu.Unlock()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)
	for i, path := range opts.Manifests {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, content, err := Render(path, opts)
			if err != nil {
				fail(path, err)
				return nil
			}
			mu.Lock()
			owner, taken := claimed[res.Output]
			if !taken {
				claimed[res.Output] = path
			}
			mu.Unlock()
			if taken {
				fail(path, errors.Wrapf(ErrOutputConflict, "%s (also generated from %s)", res.Output, owner))
				return nil
			}
			if err = write(res, content, opts); err != nil {
				fail(path, err)
				return nil
			}
			done[i] = &res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "generate stubs")
	}

	results := make([]Result, 0, len(done))
	for _, r := range done {
		if r != nil {
			results = append(results, *r)
		}
	}
	return results, result.ErrorOrNil()
}
