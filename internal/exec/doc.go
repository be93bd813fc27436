// Package exec runs external tools (git, yarn, npm) for the post-writing
// steps.
//
// Commands run in a fixed working directory with context support. Output
// either streams to the configured writers or, with Spinner enabled, is
// captured behind a progress spinner and attached to the error when the
// command fails.
//
//	executor := exec.NewExecutor(&exec.Options{Dir: dest, Spinner: true})
//	err := executor.Run(ctx, "git", "init")
//
// A missing binary is reported with a hint and can be detected with
// IsNotFound.
package exec
