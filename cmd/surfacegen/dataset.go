package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/surfacecode/config"
	"github.com/katalvlaran/surfacecode/dataset"
	"github.com/katalvlaran/surfacecode/stimcli"
)

type datasetOptions struct {
	configPath  string
	writeConfig string
	output      string
	sample      bool
	workers     int
	dryRun      bool
	stimTimeout time.Duration
}

func newDatasetCmd(ro *rootOptions) *cobra.Command {
	o := &datasetOptions{}
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Generate one directory of circuits (and optionally samples) per sweep point",
		Long: `dataset expands a YAML sweep into jobs, one per basis, distance, error
rate and round count, and writes each job's ideal and noisy circuits, sweep
bits and manifest. With sampling enabled stim is run on every job.

Without --config the built-in default sweep is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if o.writeConfig != "" {
				return config.Default().Write(o.writeConfig)
			}
			cfg, err := o.load(cmd)
			if err != nil {
				return err
			}
			jobs := cfg.Jobs()
			if o.dryRun {
				w := cmd.OutOrStdout()
				for _, j := range jobs {
					fmt.Fprintln(w, j.Dir())
				}
				return nil
			}

			runner := &stimcli.Runner{Binary: cfg.Stim, Timeout: o.stimTimeout, Logger: ro.logger}
			g, err := dataset.NewGenerator(cfg.Options(), runner, ro.logger)
			if err != nil {
				return err
			}
			ms, err := g.Run(cmd.Context(), jobs)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "run %s: %d jobs written to %s\n", g.RunID(), len(ms), cfg.Output)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.configPath, "config", "c", "", "YAML sweep configuration")
	f.StringVar(&o.writeConfig, "write-config", "", "write the default configuration to this path and exit")
	f.StringVarP(&o.output, "output", "o", "", "override the output root")
	f.BoolVar(&o.sample, "sample", false, "run stim on every job (overrides the config)")
	f.IntVar(&o.workers, "workers", 0, "override the number of concurrent jobs")
	f.BoolVar(&o.dryRun, "dry-run", false, "list the job directories without writing anything")
	f.DurationVar(&o.stimTimeout, "stim-timeout", 0, "limit for each stim invocation (0 means none)")
	return cmd
}

// load reads the configuration and applies flag overrides.
func (o *datasetOptions) load(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return config.Config{}, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = o.output
	}
	if flags.Changed("sample") {
		cfg.Sample = o.sample
	}
	if flags.Changed("workers") {
		cfg.Workers = o.workers
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
