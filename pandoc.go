package nbexport

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// CommandRunner abstracts command execution to enable testing without
// real subprocesses.
type CommandRunner interface {
	Run(stdin string, name string, args ...string) (stdout string, stderr string, err error)
}

// execRunner implements CommandRunner using os/exec.
type execRunner struct{}

func (r *execRunner) Run(stdin string, name string, args ...string) (string, string, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return "", "", fmt.Errorf("creating stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return "", "", fmt.Errorf("starting command: %w", err)
	}

	stderrContent, err := io.ReadAll(stderrPipe)
	if err != nil {
		return "", "", fmt.Errorf("reading stderr: %w", err)
	}

	err = cmd.Wait()
	return stdout.String(), string(stderrContent), err
}

// PandocConverter converts between markup formats by invoking the
// pandoc CLI.
type PandocConverter struct {
	Runner CommandRunner
}

// NewPandocConverter creates a PandocConverter with a real command runner.
func NewPandocConverter() *PandocConverter {
	return &PandocConverter{Runner: &execRunner{}}
}

// Convert pipes source through pandoc from one markup format to another.
// Extra arguments are passed to pandoc verbatim.
func (c *PandocConverter) Convert(source, from, to string, extraArgs ...string) (string, error) {
	if source == "" {
		return "", ErrEmptyContent
	}

	args := []string{"-f", from, "-t", to}
	args = append(args, extraArgs...)

	stdout, stderr, err := c.Runner.Run(source, "pandoc", args...)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrPandocRun, strings.TrimSpace(stderr), err)
	}

	return stdout, nil
}

// ConvertPandoc converts source between markup formats using the system
// pandoc binary. Convenience wrapper around PandocConverter.
func ConvertPandoc(source, from, to string, extraArgs ...string) (string, error) {
	return NewPandocConverter().Convert(source, from, to, extraArgs...)
}
