// Package gdctltest provides test doubles for the gdctl package.
package gdctltest

import (
	"strings"

	"github.com/rileyhilliard/gms/internal/gdctl"
)

// response is a scripted reaction to one gdctl invocation.
type response struct {
	result gdctl.Result
	err    error
}

// FakeRunner simulates gdctl for testing. Responses are scripted per argv
// (joined with spaces); unscripted invocations succeed with empty output
// unless a default is installed.
type FakeRunner struct {
	responses map[string][]response
	fallback  *response

	// Calls records every invocation's argv for assertions.
	Calls [][]string
}

// NewFakeRunner creates an empty fake runner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{responses: make(map[string][]response)}
}

// Stub scripts stdout for an invocation. Repeated stubs for the same argv
// are consumed in order, the last one sticking.
func (f *FakeRunner) Stub(args string, stdout string) *FakeRunner {
	f.responses[args] = append(f.responses[args], response{
		result: gdctl.Result{Stdout: stdout},
	})
	return f
}

// StubFailure scripts a non-zero exit with the given stderr text.
func (f *FakeRunner) StubFailure(args string, stderr string) *FakeRunner {
	f.responses[args] = append(f.responses[args], response{
		result: gdctl.Result{Stderr: stderr, ExitCode: 1},
	})
	return f
}

// StubError scripts an execution error (gdctl missing, not a non-zero exit).
func (f *FakeRunner) StubError(args string, err error) *FakeRunner {
	f.responses[args] = append(f.responses[args], response{
		result: gdctl.Result{ExitCode: -1},
		err:    err,
	})
	return f
}

// SetDefault installs the reaction for unscripted invocations.
func (f *FakeRunner) SetDefault(result gdctl.Result, err error) *FakeRunner {
	f.fallback = &response{result: result, err: err}
	return f
}

// Run implements gdctl.Runner.
func (f *FakeRunner) Run(args ...string) (gdctl.Result, error) {
	f.Calls = append(f.Calls, args)

	key := strings.Join(args, " ")
	if queue, ok := f.responses[key]; ok && len(queue) > 0 {
		r := queue[0]
		if len(queue) > 1 {
			f.responses[key] = queue[1:]
		}
		return r.result, r.err
	}

	if f.fallback != nil {
		return f.fallback.result, f.fallback.err
	}
	return gdctl.Result{}, nil
}

// SetCalls returns the argv of every "set" invocation recorded.
func (f *FakeRunner) SetCalls() [][]string {
	var calls [][]string
	for _, c := range f.Calls {
		if len(c) > 0 && c[0] == "set" {
			calls = append(calls, c)
		}
	}
	return calls
}
