package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/simonhull/firebird-suite/hatch/internal/answers"
	"github.com/simonhull/firebird-suite/hatch/internal/config"
	"github.com/simonhull/firebird-suite/hatch/internal/exec"
	"github.com/simonhull/firebird-suite/hatch/internal/generator"
	"github.com/simonhull/firebird-suite/hatch/internal/logger"
	"github.com/simonhull/firebird-suite/hatch/internal/output"
	"github.com/simonhull/firebird-suite/hatch/internal/scaffold"
	"github.com/simonhull/firebird-suite/hatch/internal/templates"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// isTerminal reports whether prompts and the conflict menu can be shown.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

type newOptions struct {
	answerFile   string
	saveAnswers  string
	yes          bool
	force        bool
	skip         bool
	dryRun       bool
	templatesDir string
	noInstall    bool
}

// answerFlags maps answer keys to flag names.
var answerFlags = []struct {
	key, flag, usage string
	boolean          bool
}{
	{answers.KeyPackageName, "name", "Package name", false},
	{answers.KeyPackageDescription, "description", "Package description", false},
	{answers.KeyPackageHomePageURL, "homepage", "Package homepage URL", false},
	{answers.KeyAuthorName, "author-name", "Author name", false},
	{answers.KeyAuthorEmail, "author-email", "Author email", false},
	{answers.KeyAuthorHomepage, "author-url", "Author homepage", false},
	{answers.KeyURLRepository, "repository", "Repository URL", false},
	{answers.KeyPackageKeywords, "keywords", "Comma separated keywords", false},
	{answers.KeyPackageWebsite, "website", "Package website", false},
	{answers.KeyPackageType, "type", `Module system: "commonjs" or "module"`, false},
	{answers.KeyIncludeLicense, "license", "Include an MIT license", true},
	{answers.KeyRunGitInit, "git-init", "Run git init", true},
	{answers.KeyRunPackageScripts, "scripts", "Install dependencies and run the setup scripts", true},
}

// NewCmd creates and returns the 'new' command for scaffolding packages
func NewCmd(global *globalOptions) *cobra.Command {
	opts := &newOptions{}

	cmd := &cobra.Command{
		Use:   "new [directory]",
		Short: "Create a new npm package",
		Long: `Creates a new npm package in directory (default: the current one).

Answers come from, lowest precedence first: question defaults, the
answers section of hatch.yml, --answers FILE, flags, and prompts for
whatever is still open. --yes skips the prompts.

Example:
  hatch new my-lib
  hatch new my-lib --type module --license --author-name "Ada Lovelace"
  hatch new --answers answers.yml --yes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := "."
			if len(args) == 1 {
				dest = args[0]
			}
			return runNew(cmd, global, opts, dest)
		},
	}

	for _, f := range answerFlags {
		if f.boolean {
			cmd.Flags().Bool(f.flag, false, f.usage)
		} else {
			cmd.Flags().String(f.flag, "", f.usage)
		}
	}

	cmd.Flags().StringVar(&opts.answerFile, "answers", "", "YAML file with answers")
	cmd.Flags().StringVar(&opts.saveAnswers, "save-answers", "", "Write the resolved answers to a YAML file")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Accept defaults for unanswered questions")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite existing files")
	cmd.Flags().BoolVar(&opts.skip, "skip", false, "Keep existing files")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Show what would be written without touching disk")
	cmd.Flags().StringVar(&opts.templatesDir, "templates", "", "Use templates from a directory instead of the built-in ones")
	cmd.Flags().BoolVar(&opts.noInstall, "no-install", false, "Do not install dependencies before running scripts")
	cmd.MarkFlagsMutuallyExclusive("force", "skip")

	return cmd
}

func runNew(cmd *cobra.Command, global *globalOptions, opts *newOptions, dest string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(global.configPath)
	if err != nil {
		return err
	}
	if cfg.File != "" {
		output.Verbose(fmt.Sprintf("Using config %s", cfg.File))
	}

	level := logger.ParseLevel(cfg.LogLevel)
	if global.verbose {
		level = logger.LevelDebug
	}
	log := logger.NewLogger(level, cmd.ErrOrStderr())

	abs, err := filepath.Abs(dest)
	if err != nil {
		return err
	}

	interactive := isTerminal() && !opts.yes
	if interactive {
		output.Banner("Welcome to hatch!", "Let's lay a fresh npm package.")
	}

	rec, err := resolveAnswers(ctx, cmd, cfg, opts, defaultPackageName(abs), interactive)
	if err != nil {
		return err
	}

	if opts.saveAnswers != "" {
		if err := saveAnswers(opts.saveAnswers, rec); err != nil {
			return err
		}
		output.Verbose(fmt.Sprintf("Saved answers to %s", opts.saveAnswers))
	}

	fsys, err := templates.Open(opts.templatesDir)
	if err != nil {
		return err
	}

	execOpts := generator.ExecuteOptions{DryRun: opts.dryRun, Writer: output.Writer()}
	if opts.force || opts.skip || isTerminal() {
		resolver, err := generator.NewResolver(opts.force, opts.skip, false)
		if err != nil {
			return err
		}
		execOpts.Resolver = resolver
	}

	g := scaffold.New(scaffold.Options{
		Templates: fsys,
		Execute:   execOpts,
		Runner:    newRunner(abs, global.verbose),
		Managers:  cfg.Managers,
		Install:   cfg.Install && !opts.noInstall,
		Logger:    log,
	})

	output.Verbose(fmt.Sprintf("Creating %s package %s in %s", rec.PackageType, rec.PackageName, abs))
	result, err := g.Run(ctx, rec, abs)
	if err != nil {
		return err
	}

	for _, e := range result.Report.Errors {
		output.Warn(e.Error())
	}
	if opts.dryRun {
		output.Info("Dry run: nothing was written")
		return nil
	}

	output.Success(fmt.Sprintf("Created package: %s", rec.PackageName))
	output.Info("Next steps:")
	if dest != "." {
		output.Step(fmt.Sprintf("cd %s", dest))
	}
	if result.Report.Manager == "" {
		output.Step("npm install")
	}
	output.Step("npm test")
	return nil
}

// resolveAnswers layers config defaults, the answer file, flags and
// prompts into a record.
func resolveAnswers(ctx context.Context, cmd *cobra.Command, cfg *config.Config, opts *newOptions, appName string, interactive bool) (answers.Record, error) {
	layers := answers.NewLayers(appName)
	if err := layers.SetDefaults(cfg.Answers); err != nil {
		return answers.Record{}, err
	}
	if opts.answerFile != "" {
		if err := layers.LoadFile(opts.answerFile); err != nil {
			return answers.Record{}, err
		}
	}
	for _, f := range answerFlags {
		if err := layers.BindFlag(f.key, cmd.Flags().Lookup(f.flag)); err != nil {
			return answers.Record{}, err
		}
	}

	var prompter answers.Prompter = answers.DefaultsPrompter{}
	if interactive {
		prompter = answers.NewSurveyPrompter()
	}
	if err := layers.Prompt(ctx, prompter); err != nil {
		return answers.Record{}, err
	}
	return layers.Resolve()
}

func saveAnswers(path string, rec answers.Record) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode answers: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to save answers: %w", err)
	}
	return nil
}

// newRunner builds the executor for the post-writing steps. Verbose runs
// stream prefixed command output; interactive ones show a spinner.
func newRunner(dir string, verbose bool) *exec.Executor {
	opts := &exec.Options{Dir: dir}
	switch {
	case verbose:
		w := exec.NewPrefixWriter(output.Writer(), "  │ ")
		opts.Stdout = w
		opts.Stderr = w
	case isTerminal():
		opts.Spinner = true
	}
	return exec.NewExecutor(opts)
}

// defaultPackageName derives a package name from the destination
// directory: "My Lib" becomes "my-lib".
func defaultPackageName(dir string) string {
	name := generator.KebabCase(filepath.Base(dir))
	return strings.ToLower(name)
}
