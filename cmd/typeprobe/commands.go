package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"typeprobe/check"
	"typeprobe/internal/cases"
	"typeprobe/internal/config"
	"typeprobe/internal/logger"
	"typeprobe/report"
	"typeprobe/sample"
	"typeprobe/tally"
)

type app struct {
	out        io.Writer
	configPath string
	format     string
	logLevel   string

	cfg  config.Config
	lggr logger.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "typeprobe",
		Short:         "Classify runtime values by kind",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.lggr != nil {
				_ = a.lggr.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a config file (yaml, json or toml)")
	flags.StringVar(&a.format, "format", "", "output format: text, yaml or log")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		a.runCmd(),
		a.typesCmd(),
		a.countCmd(),
		a.checkCmd(),
	)

	return root
}

// setup loads the configuration and lets explicitly set flags win over it.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("format") {
		cfg.Format = a.format
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	lvl, err := cfg.Level()
	if err != nil {
		return err
	}

	lggr, err := logger.New(lvl, cfg.Color)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	a.cfg = cfg
	a.lggr = lggr.Named("typeprobe")

	return nil
}

func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the built-in example suite",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			printer, err := report.ForFormat(a.cfg.Format, a.out, a.lggr)
			if err != nil {
				return err
			}

			r := check.Run(cases.Suite())
			a.lggr.Debugw("suite finished", "passed", r.Passed(), "failed", r.Failed())

			// failing cases are reported, not turned into a non-zero exit
			return printer.Print(r)
		},
	}
}

func (a *app) typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types FILE",
		Short: "Print the coarse and real kind of every value in a YAML sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			items, err := a.load(args[0])
			if err != nil {
				return err
			}

			coarse, refined := tally.CoarseTypes(items), tally.RealTypes(items)

			if a.cfg.Format == config.FormatYAML {
				type row struct {
					Index  int    `yaml:"index"`
					Coarse string `yaml:"coarse"`
					Real   string `yaml:"real"`
				}

				rows := make([]row, len(items))
				for i := range items {
					rows[i] = row{Index: i, Coarse: coarse[i].String(), Real: refined[i].String()}
				}

				return a.encode(rows)
			}

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "INDEX\tCOARSE\tREAL")

			for i := range items {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", i, coarse[i], refined[i])
			}

			return tw.Flush()
		},
	}
}

func (a *app) countCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count FILE",
		Short: "Count the values of each real kind in a YAML sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			items, err := a.load(args[0])
			if err != nil {
				return err
			}

			entries := tally.CountRealTypes(items)

			if a.cfg.Format == config.FormatYAML {
				return a.encode(entries)
			}

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KIND\tCOUNT")

			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%d\n", e.Tag, e.Count)
			}

			return tw.Flush()
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Report whether values share a coarse kind and whether their real kinds are unique",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			items, err := a.load(args[0])
			if err != nil {
				return err
			}

			result := struct {
				SameCoarseType  bool   `yaml:"same_coarse_type"`
				UniqueRealTypes bool   `yaml:"unique_real_types"`
				FirstRepeat     *int   `yaml:"first_repeat,omitempty"`
				RepeatedKind    string `yaml:"repeated_kind,omitempty"`
			}{
				SameCoarseType: tally.SameCoarseType(items),
			}

			index, tag, repeated := tally.FirstRepeatedRealType(items)
			result.UniqueRealTypes = !repeated

			if repeated {
				result.FirstRepeat = &index
				result.RepeatedKind = tag.String()
			}

			if a.cfg.Format == config.FormatYAML {
				return a.encode(result)
			}

			fmt.Fprintf(a.out, "same coarse type:  %t\n", result.SameCoarseType)
			fmt.Fprintf(a.out, "unique real types: %t\n", result.UniqueRealTypes)

			if repeated {
				fmt.Fprintf(a.out, "first repeat:      #%d (%s)\n", index, tag)
			}

			return nil
		},
	}
}

func (a *app) load(path string) ([]any, error) {
	items, err := sample.LoadFile(path)
	if err != nil {
		return nil, err
	}

	a.lggr.Debugw("loaded values", "file", path, "count", len(items))

	return items, nil
}

func (a *app) encode(v any) error {
	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	return enc.Close()
}
