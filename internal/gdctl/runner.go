package gdctl

import (
	"bytes"
	"os/exec"

	"github.com/rileyhilliard/gms/internal/errors"
)

// DefaultBinary is the gdctl executable looked up on PATH when the config
// doesn't name one.
const DefaultBinary = "gdctl"

// Result holds the outcome of one gdctl invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Ok reports whether the invocation exited zero.
func (r Result) Ok() bool { return r.ExitCode == 0 }

// Runner invokes gdctl and captures its output. The call blocks until the
// tool exits; gdctl applies changes synchronously so no timeout is used.
type Runner interface {
	Run(args ...string) (Result, error)
}

// execRunner is the production Runner backed by os/exec.
type execRunner struct {
	binary string
}

// NewRunner returns a Runner that executes the given gdctl binary.
// An empty binary means DefaultBinary.
func NewRunner(binary string) Runner {
	if binary == "" {
		binary = DefaultBinary
	}
	return &execRunner{binary: binary}
}

func (r *execRunner) Run(args ...string) (Result, error) {
	cmd := exec.Command(r.binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	result := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	if runErr != nil {
		// Non-zero exit is a result, not an execution failure.
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		result.ExitCode = -1
		return result, errors.WrapWithCode(runErr, errors.ErrExec,
			"Couldn't run "+r.binary,
			"Make sure gdctl is installed (GNOME 48+) and on your PATH.")
	}

	return result, nil
}
