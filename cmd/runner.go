// submodule cmd contains the command-line entrypoint
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dryarchive/worldimport/internal/importer"
	"github.com/dryarchive/worldimport/internal/models"
	"github.com/dryarchive/worldimport/internal/report"
	"github.com/dryarchive/worldimport/internal/seeder"
	"github.com/dryarchive/worldimport/internal/shared"
	"github.com/dryarchive/worldimport/internal/store"
	"github.com/urfave/cli/v3"
)

const usageText = "usage: worldimport <template-path> <output-path> [seed]"

// Runner holds all dependencies for the CLI and provides the import action.
type Runner struct {
	config *shared.Config
	logger *log.Logger
	output io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config: opts.Config,
		logger: opts.Logger,
		output: opts.Output,
	}
}

// request is a parsed CLI invocation.
type request struct {
	templatePath string
	outputPath   string
	seed         bool
}

// parseRequest validates the positional arguments: exactly two paths, with
// an optional case-insensitive literal "seed" toggling the seeding phase.
func parseRequest(args []string) (*request, error) {
	switch len(args) {
	case 2:
		return &request{templatePath: args[0], outputPath: args[1]}, nil
	case 3:
		if !strings.EqualFold(args[2], "seed") {
			return nil, fmt.Errorf("%w: unrecognized argument %q", shared.ErrUsage, args[2])
		}
		return &request{templatePath: args[0], outputPath: args[1], seed: true}, nil
	default:
		return nil, shared.ErrUsage
	}
}

// Import runs the import phase and, when requested, the seeding phase.
func (r *Runner) Import(ctx context.Context, cmd *cli.Command) error {
	req, err := parseRequest(cmd.Args().Slice())
	if err != nil {
		return cli.Exit(fmt.Sprintf("%v\n%s", err, usageText), 1)
	}

	if err := r.run(req); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return nil
}

// run executes the phases. The store connection is opened per logical phase
// rather than held for the process lifetime.
func (r *Runner) run(req *request) error {
	// Seeding needs the snapshot; refuse up front rather than after the
	// import has already committed.
	if req.seed {
		if _, err := os.Stat(r.config.Snapshot.Path); err != nil {
			return fmt.Errorf("%w: %s", shared.ErrMissingSnapshot, r.config.Snapshot.Path)
		}
	}

	importSum, err := r.importPhase(req)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.output, report.Import(importSum))

	if !req.seed {
		return nil
	}

	seedSum, err := r.seedPhase(req)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.output, report.Seed(seedSum))

	return nil
}

func (r *Runner) importPhase(req *request) (*importer.Summary, error) {
	logger := shared.WithLogger(r.logger, "phase", "import")

	batch, err := models.LoadBatch(r.config.Import.BatchPath)
	if err != nil {
		return nil, err
	}
	logger.Info("batch loaded",
		"path", r.config.Import.BatchPath,
		"users", len(batch.Users),
		"levels", len(batch.Levels),
		"relations", len(batch.Relations),
		"assets", len(batch.Assets),
	)

	// A batch with zero users is rejected before the template is copied, so
	// a failed invocation leaves no output file behind.
	if len(batch.Users) == 0 {
		return nil, shared.ErrNothingToImport
	}

	if err := store.Prepare(req.templatePath, req.outputPath); err != nil {
		return nil, err
	}

	st, err := store.Open(req.outputPath)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	return importer.New(st, logger).Run(batch)
}

func (r *Runner) seedPhase(req *request) (*seeder.Summary, error) {
	logger := shared.WithLogger(r.logger, "phase", "seed")

	snap, err := seeder.OpenSnapshot(r.config.Snapshot.Path)
	if err != nil {
		return nil, err
	}
	defer snap.Close()

	st, err := store.Open(req.outputPath)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	return seeder.New(st, snap, logger).Run()
}
