package postwrite

import (
	"context"
	"errors"
	"fmt"

	"github.com/simonhull/firebird-suite/hatch/internal/answers"
	"github.com/simonhull/firebird-suite/hatch/internal/logger"
)

// Runner spawns external commands. *exec.Executor satisfies it.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// Scripts are the package scripts run after install, in order.
var Scripts = []string{"init", "documentation:create", "test", "build"}

// ErrNoManager is recorded when no package manager could be probed.
var ErrNoManager = errors.New("no package manager available")

// PostProcessError reports a failed post-writing step.
type PostProcessError struct {
	Step string
	Err  error
}

func (e *PostProcessError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *PostProcessError) Unwrap() error {
	return e.Err
}

// Report summarises a Finalize run.
type Report struct {
	GitInitialized bool
	// Manager is the package manager used, empty when scripts were skipped.
	Manager string
	Ran     []string
	Errors  []*PostProcessError
}

// OK reports whether every attempted step succeeded.
func (r Report) OK() bool {
	return len(r.Errors) == 0
}

// Options configures an Orchestrator.
type Options struct {
	// Managers in preference order. Defaults to yarn, npm.
	Managers []string
	// Install runs `<manager> install` before the scripts.
	Install bool
	Logger  logger.Logger
}

// Orchestrator runs the post-writing steps.
type Orchestrator struct {
	runner   Runner
	managers []string
	install  bool
	log      logger.Logger
}

// New creates an orchestrator that spawns commands through r.
func New(r Runner, opts Options) *Orchestrator {
	managers := opts.Managers
	if len(managers) == 0 {
		managers = []string{"yarn", "npm"}
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewSilentLogger()
	}
	return &Orchestrator{
		runner:   r,
		managers: managers,
		install:  opts.Install,
		log:      log,
	}
}

// Finalize runs the steps the record asks for. It must only be called once
// every file, package.json included, has been written.
func (o *Orchestrator) Finalize(ctx context.Context, rec answers.Record) Report {
	var report Report

	if rec.RunGitInit {
		if err := o.step(ctx, &report, "git init", "git", "init"); err == nil {
			report.GitInitialized = true
		}
	}

	if !rec.RunPackageScripts {
		return report
	}

	pm, ok := FirstAvailable(ctx, o.runner, o.managers)
	if !ok {
		o.log.Warn("skipping package scripts", logger.F("managers", o.managers))
		report.Errors = append(report.Errors, &PostProcessError{Step: "probe", Err: ErrNoManager})
		return report
	}
	report.Manager = pm.Name
	log := o.log.WithFields(logger.F("manager", pm.Name))
	log.Debug("package manager found", logger.F("version", pm.Version))

	if o.install {
		if err := o.step(ctx, &report, pm.Name+" install", pm.Name, "install"); err != nil {
			log.Warn("skipping package scripts after failed install")
			return report
		}
	}

	for _, script := range Scripts {
		if ctx.Err() != nil {
			report.Errors = append(report.Errors, &PostProcessError{Step: script, Err: ctx.Err()})
			break
		}
		_ = o.step(ctx, &report, script, pm.Name, "run", script)
	}
	return report
}

// step runs one command and records its outcome.
func (o *Orchestrator) step(ctx context.Context, report *Report, step, name string, args ...string) error {
	o.log.Info("running", logger.F("step", step))
	if err := o.runner.Run(ctx, name, args...); err != nil {
		o.log.Error("step failed", logger.F("step", step), logger.Err(err))
		report.Errors = append(report.Errors, &PostProcessError{Step: step, Err: err})
		return err
	}
	report.Ran = append(report.Ran, step)
	return nil
}
