package postwrite

import (
	"context"
	"strings"
)

// Status is the outcome of probing a tool.
type Status int

const (
	NotFound Status = iota
	Available
)

func (s Status) String() string {
	if s == Available {
		return "available"
	}
	return "not found"
}

// ProbeResult describes one probed tool.
type ProbeResult struct {
	Name    string
	Status  Status
	Version string
	Err     error
}

// Probe runs `<name> --version`. Any failure, a missing binary included,
// yields NotFound; Probe never returns an error.
func Probe(ctx context.Context, r Runner, name string) ProbeResult {
	out, err := r.Output(ctx, name, "--version")
	if err != nil {
		return ProbeResult{Name: name, Status: NotFound, Err: err}
	}
	return ProbeResult{
		Name:    name,
		Status:  Available,
		Version: strings.TrimSpace(string(out)),
	}
}

// FirstAvailable probes managers in preference order and returns the first
// one found. ok is false when none is.
func FirstAvailable(ctx context.Context, r Runner, managers []string) (result ProbeResult, ok bool) {
	for _, m := range managers {
		result = Probe(ctx, r, m)
		if result.Status == Available {
			return result, true
		}
	}
	return ProbeResult{}, false
}
