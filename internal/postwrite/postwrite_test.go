package postwrite

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/firebird-suite/hatch/internal/answers"
	"github.com/simonhull/firebird-suite/hatch/internal/logger"
)

// fakeRunner records command lines and fails the ones listed in fail.
// Tools listed in missing fail every call.
type fakeRunner struct {
	calls   []string
	fail    map[string]error
	missing map[string]bool
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{fail: map[string]error{}, missing: map[string]bool{}}
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	line := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, line)
	if f.missing[name] {
		return errors.New("executable not found")
	}
	return f.fail[line]
}

func (f *fakeRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	if err := f.Run(ctx, name, args...); err != nil {
		return nil, err
	}
	return []byte(name + "-1.0.0\n"), nil
}

func record(git, scripts bool) answers.Record {
	return answers.Record{PackageName: "my-lib", PackageType: answers.CommonJS, RunGitInit: git, RunPackageScripts: scripts}
}

func TestProbe(t *testing.T) {
	r := newFakeRunner()
	r.missing["yarn"] = true

	got := Probe(context.Background(), r, "yarn")
	assert.Equal(t, NotFound, got.Status)
	assert.Error(t, got.Err)

	got = Probe(context.Background(), r, "npm")
	assert.Equal(t, Available, got.Status)
	assert.Equal(t, "npm-1.0.0", got.Version)
}

func TestFirstAvailable_PreferenceOrder(t *testing.T) {
	r := newFakeRunner()
	r.missing["yarn"] = true

	got, ok := FirstAvailable(context.Background(), r, []string{"yarn", "npm"})

	require.True(t, ok)
	assert.Equal(t, "npm", got.Name)
	assert.Equal(t, []string{"yarn --version", "npm --version"}, r.calls)
}

func TestFinalize_NothingRequested(t *testing.T) {
	r := newFakeRunner()

	report := New(r, Options{Install: true}).Finalize(context.Background(), record(false, false))

	assert.Empty(t, r.calls)
	assert.True(t, report.OK())
}

func TestFinalize_FullRun(t *testing.T) {
	r := newFakeRunner()

	report := New(r, Options{Install: true}).Finalize(context.Background(), record(true, true))

	assert.Equal(t, []string{
		"git init",
		"yarn --version",
		"yarn install",
		"yarn run init",
		"yarn run documentation:create",
		"yarn run test",
		"yarn run build",
	}, r.calls)
	assert.True(t, report.GitInitialized)
	assert.Equal(t, "yarn", report.Manager)
	assert.True(t, report.OK())
}

func TestFinalize_GitFailureIsNotFatal(t *testing.T) {
	r := newFakeRunner()
	r.fail["git init"] = errors.New("exit status 128")

	report := New(r, Options{}).Finalize(context.Background(), record(true, true))

	assert.False(t, report.GitInitialized)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "git init", report.Errors[0].Step)
	assert.Contains(t, r.calls, "yarn run build")
}

func TestFinalize_NoManager(t *testing.T) {
	r := newFakeRunner()
	r.missing["yarn"] = true
	r.missing["npm"] = true
	var logs bytes.Buffer

	report := New(r, Options{Install: true, Logger: logger.NewLogger(logger.LevelWarn, &logs)}).
		Finalize(context.Background(), record(false, true))

	assert.Empty(t, report.Manager)
	require.Len(t, report.Errors, 1)
	assert.ErrorIs(t, report.Errors[0], ErrNoManager)
	assert.Equal(t, []string{"yarn --version", "npm --version"}, r.calls)
	assert.Contains(t, logs.String(), "skipping package scripts")
}

func TestFinalize_ScriptFailureContinues(t *testing.T) {
	r := newFakeRunner()
	r.fail["npm run test"] = errors.New("exit status 1")

	report := New(r, Options{Managers: []string{"npm"}}).Finalize(context.Background(), record(false, true))

	assert.Equal(t, "npm", report.Manager)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "test", report.Errors[0].Step)
	assert.Equal(t, []string{"init", "documentation:create", "build"}, report.Ran)
}

func TestFinalize_FailedInstallSkipsScripts(t *testing.T) {
	r := newFakeRunner()
	r.fail["yarn install"] = errors.New("network down")

	report := New(r, Options{Install: true}).Finalize(context.Background(), record(false, true))

	require.Len(t, report.Errors, 1)
	assert.Equal(t, "yarn install", report.Errors[0].Step)
	assert.NotContains(t, r.calls, "yarn run init")
}

func TestFinalize_CancelledBeforeScripts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := newFakeRunner()

	report := New(r, Options{}).Finalize(ctx, record(false, true))

	require.NotEmpty(t, report.Errors)
	assert.ErrorIs(t, report.Errors[len(report.Errors)-1], context.Canceled)
	assert.NotContains(t, r.calls, "yarn run init")
}

func TestPostProcessError(t *testing.T) {
	inner := errors.New("boom")
	err := &PostProcessError{Step: "build", Err: inner}

	assert.Equal(t, "build: boom", err.Error())
	assert.ErrorIs(t, err, inner)
}
