package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/visibility/avv"
	"github.com/katalvlaran/visibility/config"
	"github.com/katalvlaran/visibility/core"
	"github.com/katalvlaran/visibility/ingest"
	"github.com/katalvlaran/visibility/metrics"
	"github.com/katalvlaran/visibility/report"
	"github.com/katalvlaran/visibility/selftest"
)

var errSelfTestFailed = errors.New("self-test failed")

// app carries the resolved configuration and collaborators of one invocation.
type app struct {
	cfg      *config.Config
	log      *logrus.Logger
	recorder *metrics.Recorder
	stdout   io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout}
	var (
		flagWorkers int
		flagDepth   int
		flagFormat  string
		flagLevel   string
		flagExt     string
		flagMetrics string
		flagLogJSON bool
	)

	// Environment supplies flag defaults; a broken environment is reported
	// when the command runs so that --help still works.
	cfg, loadErr := config.Load()
	if loadErr != nil {
		cfg = &config.Config{Workers: 1, LogLevel: "info", LogFormat: "text", Format: "table", Extension: ingest.DefaultExtension}
	}

	cmd := &cobra.Command{
		Use:           "avv [file]",
		Short:         "Score graph nodes by Aggregate Visibility Value",
		Long:          "With no argument avv runs its self-test suite. With one argument it reads that edge-list file\n(appending the default extension when the name has none), computes every node's AVV and prints it.",
		Version:       versionString(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if loadErr != nil {
				return loadErr
			}
			cfg.Workers = flagWorkers
			cfg.MaxDepth = flagDepth
			cfg.Format = flagFormat
			cfg.LogLevel = flagLevel
			cfg.Extension = flagExt
			cfg.MetricsFile = flagMetrics
			if flagLogJSON {
				cfg.LogFormat = "json"
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			a.cfg = cfg
			a.log = cfg.Logger()
			a.log.SetOutput(stderr)
			a.recorder = metrics.NewRecorder()

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if len(args) == 0 {
				err = a.runSelfTest(cmd.Context())
			} else {
				err = a.runFile(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}

			return a.writeMetrics()
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("{{.Version}}\n")

	f := cmd.Flags()
	f.IntVarP(&flagWorkers, "workers", "w", cfg.Workers, "concurrent per-node traversals (env: AVV_WORKERS)")
	f.IntVar(&flagDepth, "max-depth", cfg.MaxDepth, "ignore nodes farther than this from each source, 0 = no limit (env: AVV_MAX_DEPTH)")
	f.StringVarP(&flagFormat, "format", "f", cfg.Format, "output format: table|json|yaml|csv (env: AVV_FORMAT)")
	f.StringVar(&flagLevel, "log-level", cfg.LogLevel, "log level (env: AVV_LOG_LEVEL)")
	f.BoolVar(&flagLogJSON, "log-json", cfg.LogFormat == "json", "log as JSON (env: AVV_LOG_FORMAT=json)")
	f.StringVar(&flagExt, "ext", cfg.Extension, "extension appended to file names without one (env: AVV_EXTENSION)")
	f.StringVar(&flagMetrics, "metrics-file", cfg.MetricsFile, "write Prometheus metrics to this file (env: AVV_METRICS_FILE)")

	return cmd
}

func (a *app) computeOptions() []avv.Option {
	return []avv.Option{
		avv.WithWorkers(a.cfg.Workers),
		avv.WithMaxDepth(a.cfg.MaxDepth),
		avv.WithLogger(a.log),
		avv.WithObserver(a.recorder),
	}
}

func (a *app) runSelfTest(ctx context.Context) error {
	outcomes := selftest.Run(func(edges []core.Edge[int64]) (map[int64]float64, error) {
		return avv.Compute(ctx, edges, a.computeOptions()...)
	})
	for _, o := range outcomes {
		status := "PASS"
		if !o.Passed() {
			status = "FAIL"
			a.log.WithFields(logrus.Fields{
				"case": o.Case.Name,
				"want": o.Case.Want,
				"got":  o.Got,
			}).WithError(o.Err).Warn("self-test case failed")
		}
		fmt.Fprintf(a.stdout, "%s %s\n", status, o.Case.Name)
	}
	if failed := selftest.Failed(outcomes); len(failed) > 0 {
		return fmt.Errorf("%w: %d of %d cases", errSelfTestFailed, len(failed), len(outcomes))
	}

	return nil
}

func (a *app) runFile(ctx context.Context, name string) error {
	path := ingest.ResolvePath(name, a.cfg.Extension)
	edges, err := ingest.ReadFile(path)
	if err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{"path": path, "edges": len(edges)}).Info("edge list loaded")

	scores, err := avv.Compute(ctx, edges, a.computeOptions()...)
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(a.cfg.Format)
	if err != nil {
		return err
	}

	return report.Write(a.stdout, scores, format)
}

func (a *app) writeMetrics() error {
	if a.cfg.MetricsFile == "" {
		return nil
	}
	if err := a.recorder.WriteTextfile(a.cfg.MetricsFile); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	a.log.WithField("path", a.cfg.MetricsFile).Debug("metrics written")

	return nil
}
