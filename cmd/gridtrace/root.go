package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	pr "github.com/benoitkugler/gridlayout/css/properties"
	"github.com/benoitkugler/gridlayout/html/layout"
	"github.com/benoitkugler/gridlayout/html/tree"
	"github.com/benoitkugler/gridlayout/logger"
	"github.com/benoitkugler/gridlayout/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// options are read from the flags, the GRIDTRACE_* environment
// variables and the optional config file, in this order of priority.
type options struct {
	Width   float64 `mapstructure:"width"`
	Height  float64 `mapstructure:"height"` // 0 for an indefinite height
	Format  string  `mapstructure:"format"`
	Scale   float64 `mapstructure:"scale"`
	Verbose bool    `mapstructure:"verbose"`
}

func (opts options) viewportHeight() pr.MaybeFloat {
	if opts.Height <= 0 {
		return pr.AutoF
	}
	return pr.Float(opts.Height)
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:     "gridtrace [file.html]",
		Short:   "gridtrace lays out CSS grids and prints their geometry.",
		Long:    "gridtrace lays out the grid containers of an HTML document (read from stdin without argument)\nand prints the item rectangles and the grid lines, as JSON, ASCII art or a box tree.",
		Version: version.VersionString,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeConfig(cmd, v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts options
			if err := v.Unmarshal(&opts); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return run(cmd, opts, args)
		},
	}
	cmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	flags := cmd.Flags()
	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./gridtrace.yaml)")
	flags.Float64P("width", "w", 800, "width of the viewport, in pixels")
	flags.Float64("height", 0, "height of the viewport, in pixels (0 for an indefinite height)")
	flags.StringP("format", "f", "json", "output format: json, ascii or tree")
	flags.Float64("scale", 4, "pixels per character, for the ascii format")
	flags.BoolP("verbose", "v", false, "log the layout steps on stderr")
	return cmd
}

// initializeConfig reads in the config file and the environment variables,
// and binds them to the flags of `cmd`.
func initializeConfig(cmd *cobra.Command, v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("gridtrace")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("GRIDTRACE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return v.BindPFlags(cmd.Flags())
}

func run(cmd *cobra.Command, opts options, args []string) error {
	progress := io.Discard
	if opts.Verbose {
		progress = cmd.ErrOrStderr()
	}
	defer setLoggers(progress, cmd.ErrOrStderr())()

	var input io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	}

	doc, err := tree.Parse(input)
	if err != nil {
		return err
	}
	if opts.Width <= 0 {
		return fmt.Errorf("invalid viewport width %g", opts.Width)
	}
	containers := layout.Layout(doc, pr.Float(opts.Width), opts.viewportHeight())

	out := cmd.OutOrStdout()
	switch opts.Format {
	case "json":
		return writeJSON(out, containers)
	case "ascii":
		if opts.Scale <= 0 {
			return fmt.Errorf("invalid scale %g", opts.Scale)
		}
		_, err = io.WriteString(out, drawASCII(containers, pr.Float(opts.Width), pr.Float(opts.Scale)))
		return err
	case "tree":
		writeTree(out, containers)
		return nil
	default:
		return fmt.Errorf("unknown format %q (expected json, ascii or tree)", opts.Format)
	}
}

// setLoggers redirects the package loggers, and returns
// a function restoring them.
func setLoggers(progress, warning io.Writer) func() {
	previousProgress, previousWarning := logger.ProgressLogger.Writer(), logger.WarningLogger.Writer()
	logger.ProgressLogger.SetOutput(progress)
	logger.WarningLogger.SetOutput(warning)
	return func() {
		logger.ProgressLogger.SetOutput(previousProgress)
		logger.WarningLogger.SetOutput(previousWarning)
	}
}
