package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Executor runs external commands.
type Executor struct {
	stdout  io.Writer
	stderr  io.Writer
	env     []string
	dir     string
	spinner bool

	// For mocking in tests
	commandFunc func(name string, args ...string) *exec.Cmd
}

// Options configures command execution
type Options struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Env     []string // Additional environment variables
	Dir     string   // Working directory
	Spinner bool     // Hide output behind a spinner
}

// NewExecutor creates an executor. Nil writers default to os.Stdout and
// os.Stderr.
func NewExecutor(opts *Options) *Executor {
	if opts == nil {
		opts = &Options{}
	}
	e := &Executor{
		stdout:      opts.Stdout,
		stderr:      opts.Stderr,
		env:         opts.Env,
		dir:         opts.Dir,
		spinner:     opts.Spinner,
		commandFunc: exec.Command,
	}
	if e.stdout == nil {
		e.stdout = os.Stdout
	}
	if e.stderr == nil {
		e.stderr = os.Stderr
	}
	return e
}

// Run executes a command and waits for it. With Spinner enabled the
// command line is shown next to a spinner instead of its output.
func (e *Executor) Run(ctx context.Context, name string, args ...string) error {
	if e.spinner {
		return e.RunWithSpinner(ctx, CommandLine(name, args...), name, args...)
	}
	return e.run(ctx, e.stdout, e.stderr, name, args...)
}

// Output executes a command and returns its standard output. Standard
// error is discarded.
func (e *Executor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	var out bytes.Buffer
	if err := e.run(ctx, &out, io.Discard, name, args...); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func (e *Executor) run(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s cancelled: %w", name, err)
	}

	cmd := e.commandFunc(name, args...)
	if e.dir != "" {
		cmd.Dir = e.dir
	}
	if len(e.env) > 0 {
		base := cmd.Env
		if base == nil {
			base = os.Environ()
		}
		cmd.Env = append(base, e.env...)
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		if IsNotFound(err) {
			return enhanceError(err, name)
		}
		return fmt.Errorf("failed to start %s: %w", name, err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- cmd.Wait()
	}()

	select {
	case <-ctx.Done():
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
		}
		<-errCh
		return fmt.Errorf("%s cancelled: %w", name, ctx.Err())
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("%s failed: %w", name, err)
		}
		return nil
	}
}

// RunWithSpinner runs a command behind a progress spinner. The command's
// output is captured; on failure its tail is appended to the error.
func (e *Executor) RunWithSpinner(ctx context.Context, message string, name string, args ...string) error {
	var captured bytes.Buffer

	p := tea.NewProgram(newSpinnerModel(message), tea.WithOutput(e.stderr), tea.WithInput(nil))
	spinDone := make(chan struct{})
	go func() {
		defer close(spinDone)
		// A spinner that cannot draw must not fail the command.
		_, _ = p.Run()
	}()

	err := e.run(ctx, &captured, &captured, name, args...)

	p.Send(spinnerDoneMsg{err: err})
	<-spinDone

	if err != nil && captured.Len() > 0 {
		return fmt.Errorf("%w\n%s", err, tail(captured.String(), 10))
	}
	return err
}

// CommandLine renders a command and its arguments for display.
func CommandLine(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

// IsNotFound reports whether err means the executable does not exist.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, exec.ErrNotFound) ||
		strings.Contains(err.Error(), "executable file not found") ||
		strings.Contains(err.Error(), "command not found")
}

// enhanceError adds helpful message for missing commands
func enhanceError(err error, cmd string) error {
	return fmt.Errorf("%w\n💡 Command '%s' not found. Please install it and try again", err, cmd)
}

func tail(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

// spinnerModel is the bubbletea model for the spinner
type spinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
	err     error
}

type spinnerDoneMsg struct {
	err error
}

func newSpinnerModel(message string) *spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return &spinnerModel{
		spinner: s,
		message: message,
	}
}

func (m *spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		if !m.done {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *spinnerModel) View() string {
	if m.done {
		if m.err != nil {
			return fmt.Sprintf("❌ %s\n", m.message)
		}
		return fmt.Sprintf("✅ %s\n", m.message)
	}
	return fmt.Sprintf("%s %s...", m.spinner.View(), m.message)
}
