package cmd

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cmmoran/luastubgen/pkg/config"
)

// flagKeys maps command flags to their keys in the "generate" config section.
var flagKeys = map[string]string{
	"output-directory": "out_dir",
	"subdir":           "sub_dir",
	"extension":        "extension",
	"override":         "override",
	"provenance":       "provenance",
	"jobs":             "jobs",
	"debounce":         "debounce",
}

func addOptionFlags(c *cobra.Command) {
	d := config.NewOptions()
	f := c.Flags()
	f.StringP("output-directory", "o", d.OutDir, "existing directory the stubs are written under")
	f.String("subdir", d.SubDir, "directory created inside the output directory")
	f.StringP("extension", "e", d.Extension, "stub file extension")
	f.Bool("override", d.Override, "override existing files")
	f.String("provenance", d.Provenance, "generator URL written in each stub header")
	f.IntP("jobs", "j", d.Jobs, "manifests processed concurrently")
	f.Duration("debounce", d.Debounce, "quiet period before a changed manifest is regenerated (watch)")
}

// resolveOptions merges flags, environment and config files into Options.
// Manifests given as arguments replace those listed in config.
func resolveOptions(c *cobra.Command, args []string) (*config.Options, error) {
	for flag, key := range flagKeys {
		if f := c.Flags().Lookup(flag); f != nil {
			if err := viper.BindPFlag("generate."+key, f); err != nil {
				return nil, errors.Wrapf(err, "bind flag %s", flag)
			}
		}
	}

	o := &config.Options{
		Manifests:  viper.GetStringSlice("generate.manifests"),
		OutDir:     viper.GetString("generate.out_dir"),
		SubDir:     viper.GetString("generate.sub_dir"),
		Extension:  viper.GetString("generate.extension"),
		Override:   viper.GetBool("generate.override"),
		Provenance: viper.GetString("generate.provenance"),
		Jobs:       viper.GetInt("generate.jobs"),
		Debounce:   viper.GetDuration("generate.debounce"),
	}
	if len(args) > 0 {
		o.Manifests = args
	}
	o.Normalize()
	if len(o.Manifests) == 0 {
		return nil, errors.WithHint(errors.New("no manifest files provided"), "pass manifest paths as arguments or set generate.manifests in config")
	}
	return o, nil
}
