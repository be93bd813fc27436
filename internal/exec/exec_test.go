package exec

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCommand re-runs the test binary as a fake tool
func mockCommand(name string, args ...string) *exec.Cmd {
	cs := []string{"-test.run=TestHelperProcess", "--", name}
	cs = append(cs, args...)
	cmd := exec.Command(os.Args[0], cs...)
	cmd.Env = []string{"GO_WANT_HELPER_PROCESS=1"}
	return cmd
}

// TestHelperProcess is the fake tool behind mockCommand
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	args := os.Args
	for i, arg := range args {
		if arg == "--" {
			args = args[i+1:]
			break
		}
	}
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "no command specified\n")
		os.Exit(1)
	}

	switch args[0] {
	case "echo":
		fmt.Println(strings.Join(args[1:], " "))
		os.Exit(0)
	case "yarn":
		// yarn --version
		fmt.Println("1.22.19")
		os.Exit(0)
	case "env":
		fmt.Println(os.Getenv(args[1]))
		os.Exit(0)
	case "pwd":
		wd, _ := os.Getwd()
		fmt.Println(wd)
		os.Exit(0)
	case "sleep":
		time.Sleep(10 * time.Second)
		os.Exit(0)
	case "error":
		fmt.Fprintf(os.Stderr, "error occurred\n")
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		os.Exit(1)
	}
}

func newMockExecutor(opts *Options) *Executor {
	e := NewExecutor(opts)
	e.commandFunc = mockCommand
	return e
}

func TestNewExecutor(t *testing.T) {
	executor := NewExecutor(nil)
	assert.Equal(t, os.Stdout, executor.stdout)
	assert.Equal(t, os.Stderr, executor.stderr)
	assert.NotNil(t, executor.commandFunc)

	var stdout, stderr bytes.Buffer
	executor = NewExecutor(&Options{
		Stdout:  &stdout,
		Stderr:  &stderr,
		Env:     []string{"TEST=1"},
		Dir:     "/tmp",
		Spinner: true,
	})
	assert.Equal(t, &stdout, executor.stdout)
	assert.Equal(t, &stderr, executor.stderr)
	assert.Equal(t, []string{"TEST=1"}, executor.env)
	assert.Equal(t, "/tmp", executor.dir)
	assert.True(t, executor.spinner)
}

func TestExecutor_Run(t *testing.T) {
	var stdout bytes.Buffer
	executor := newMockExecutor(&Options{Stdout: &stdout})

	err := executor.Run(context.Background(), "echo", "hello", "world")

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "hello world")
}

func TestExecutor_RunWithError(t *testing.T) {
	var stderr bytes.Buffer
	executor := newMockExecutor(&Options{Stderr: &stderr})

	err := executor.Run(context.Background(), "error")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error failed")
	assert.Contains(t, stderr.String(), "error occurred")
}

func TestExecutor_Output(t *testing.T) {
	executor := newMockExecutor(nil)

	out, err := executor.Output(context.Background(), "yarn", "--version")

	require.NoError(t, err)
	assert.Equal(t, "1.22.19", strings.TrimSpace(string(out)))
}

func TestExecutor_Cancelled(t *testing.T) {
	executor := newMockExecutor(&Options{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := executor.Run(ctx, "sleep")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "cancelled")
}

func TestExecutor_AlreadyCancelledContext(t *testing.T) {
	executor := newMockExecutor(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := executor.Output(ctx, "echo", "x")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecutor_EnvironmentKeepsCommandEnv(t *testing.T) {
	executor := newMockExecutor(&Options{Env: []string{"HATCH_TEST_VAR=test_value"}})

	out, err := executor.Output(context.Background(), "env", "HATCH_TEST_VAR")

	require.NoError(t, err)
	assert.Equal(t, "test_value", strings.TrimSpace(string(out)))
}

func TestExecutor_WorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	executor := newMockExecutor(&Options{Dir: dir})

	out, err := executor.Output(context.Background(), "pwd")

	require.NoError(t, err)
	// macOS tmp dirs resolve through a symlink
	assert.True(t, strings.HasSuffix(strings.TrimSpace(string(out)), strings.TrimPrefix(dir, "/private")))
}

func TestExecutor_NotFound(t *testing.T) {
	executor := NewExecutor(&Options{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})

	err := executor.Run(context.Background(), "hatch-no-such-binary-xyz")

	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "not found")
}

func TestIsNotFound(t *testing.T) {
	assert.False(t, IsNotFound(nil))
	assert.True(t, IsNotFound(exec.ErrNotFound))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", exec.ErrNotFound)))
	assert.False(t, IsNotFound(fmt.Errorf("exit status 1")))
}

func TestExecutor_RunWithSpinner(t *testing.T) {
	var stderr bytes.Buffer
	executor := newMockExecutor(&Options{Stderr: &stderr})

	err := executor.RunWithSpinner(context.Background(), "Testing", "echo", "test")

	assert.NoError(t, err)
}

func TestExecutor_RunWithSpinnerAttachesOutputOnFailure(t *testing.T) {
	executor := newMockExecutor(&Options{Stderr: &bytes.Buffer{}, Spinner: true})

	err := executor.Run(context.Background(), "error")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occurred")
}

func TestCommandLine(t *testing.T) {
	assert.Equal(t, "yarn run documentation:create", CommandLine("yarn", "run", "documentation:create"))
	assert.Equal(t, "git", CommandLine("git"))
}

func TestSpinnerModel_View(t *testing.T) {
	m := newSpinnerModel("Installing")
	assert.Contains(t, m.View(), "Installing...")

	next, _ := m.Update(spinnerDoneMsg{})
	assert.Equal(t, "✅ Installing\n", next.View())

	m = newSpinnerModel("Installing")
	next, _ = m.Update(spinnerDoneMsg{err: fmt.Errorf("boom")})
	assert.Equal(t, "❌ Installing\n", next.View())
}
