package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/cmmoran/luastubgen/pkg/stub"
)

const (
	DefaultSubDir    = "pps"
	DefaultExtension = ".lua"
	DefaultJobs      = 4
	DefaultDebounce  = 500 * time.Millisecond
)

// Options control stub generation.
//
// Manifests  – manifest files to process
// OutDir     – existing output directory; stubs go to OutDir/SubDir
// SubDir     – directory created under OutDir (default "pps")
// Extension  – stub file extension (default ".lua")
// Override   – replace stubs that already exist
// Provenance – generator URL written in the stub header
// Jobs       – manifests processed concurrently
// Debounce   – quiet period before a watched manifest is regenerated
type Options struct {
	Manifests  []string      `json:"manifests,omitempty" yaml:"manifests,omitempty" toml:"manifests,omitempty" mapstructure:"manifests,omitempty"`
	OutDir     string        `json:"out_dir,omitempty" yaml:"out_dir,omitempty" toml:"out_dir,omitempty" mapstructure:"out_dir,omitempty"`
	SubDir     string        `json:"sub_dir,omitempty" yaml:"sub_dir,omitempty" toml:"sub_dir,omitempty" mapstructure:"sub_dir,omitempty"`
	Extension  string        `json:"extension,omitempty" yaml:"extension,omitempty" toml:"extension,omitempty" mapstructure:"extension,omitempty"`
	Override   bool          `json:"override,omitempty" yaml:"override,omitempty" toml:"override,omitempty" mapstructure:"override,omitempty"`
	Provenance string        `json:"provenance,omitempty" yaml:"provenance,omitempty" toml:"provenance,omitempty" mapstructure:"provenance,omitempty"`
	Jobs       int           `json:"jobs,omitempty" yaml:"jobs,omitempty" toml:"jobs,omitempty" mapstructure:"jobs,omitempty"`
	Debounce   time.Duration `json:"debounce,omitempty" yaml:"debounce,omitempty" toml:"debounce,omitempty" mapstructure:"debounce,omitempty"`
}

func NewOptions() *Options {
	return &Options{
		OutDir:     ".",
		SubDir:     DefaultSubDir,
		Extension:  DefaultExtension,
		Override:   false,
		Provenance: stub.DefaultProvenance,
		Jobs:       DefaultJobs,
		Debounce:   DefaultDebounce,
	}
}

// Normalize fills unset fields with defaults and cleans paths.
func (o *Options) Normalize() {
	if len(o.OutDir) == 0 {
		o.OutDir = "."
	}
	o.OutDir = filepath.Clean(o.OutDir)
	if len(o.SubDir) == 0 {
		o.SubDir = DefaultSubDir
	}
	if len(o.Extension) == 0 {
		o.Extension = DefaultExtension
	}
	if !strings.HasPrefix(o.Extension, ".") {
		o.Extension = "." + o.Extension
	}
	if o.Provenance == "" {
		o.Provenance = stub.DefaultProvenance
	}
	if o.Jobs <= 0 {
		o.Jobs = DefaultJobs
	}
	if o.Debounce <= 0 {
		o.Debounce = DefaultDebounce
	}
	manifests := make([]string, 0, len(o.Manifests))
	for _, m := range o.Manifests {
		if m = strings.TrimSpace(m); m != "" {
			manifests = append(manifests, filepath.Clean(m))
		}
	}
	o.Manifests = manifests
}

// StubDir is the directory stubs are written to.
func (o *Options) StubDir() string {
	return filepath.Join(o.OutDir, o.SubDir)
}

// OutputPath is the stub file for the manifest called name.
func (o *Options) OutputPath(name string) string {
	return filepath.Join(o.StubDir(), name+o.Extension)
}

// Generator returns the stub renderer configured by o.
func (o *Options) Generator() stub.Generator {
	return stub.Generator{Provenance: o.Provenance}
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithManifests(paths ...string) Option {
	return func(o *Options) { o.Manifests = append(o.Manifests, paths...) }
}
func WithOutDir(d string) Option          { return func(o *Options) { o.OutDir = d } }
func WithSubDir(d string) Option          { return func(o *Options) { o.SubDir = d } }
func WithExtension(e string) Option       { return func(o *Options) { o.Extension = e } }
func WithOverride() Option                { return func(o *Options) { o.Override = true } }
func WithProvenance(p string) Option      { return func(o *Options) { o.Provenance = p } }
func WithJobs(n int) Option               { return func(o *Options) { o.Jobs = n } }
func WithDebounce(d time.Duration) Option { return func(o *Options) { o.Debounce = d } }

// New builds normalized Options from the defaults and opts.
func New(opts ...Option) *Options {
	o := NewOptions()
	for _, fn := range opts {
		fn(o)
	}
	o.Normalize()
	return o
}
