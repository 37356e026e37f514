package command

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/franz/codec-toolbox/internal/util"
)

// Run instantiates the template against an input/output file pair and
// executes it as a child process with the inherited environment.
//
// With both sinks nil the process runs to completion with its output
// discarded. With either sink supplied, stdout and stderr are drained
// line by line to the respective sink until the process exits. A nil
// sink for one stream discards that stream.
//
// The exit code is returned as data; a non-zero code is logged, not
// raised. Run blocks until the child exits and imposes no timeout.
// The returned error covers setup failures only: invalid template,
// unresolvable executable, spawn errors.
func (t *Template) Run(r *Resolver, inputPath, outputPath string, stdout, stderr io.Writer) (int, error) {
	program, ok := r.Resolve(t.Executable())
	if !ok {
		return -1, fmt.Errorf("%w: %s", ErrNotAvailable, t.Executable())
	}

	args, err := t.Instantiate(inputPath, outputPath)
	if err != nil {
		return -1, err
	}

	cmd := exec.Command(program, args[1:]...)

	if stdout == nil && stderr == nil {
		// Buffered mode: run to completion, keep only the exit code
		cmd.Stdout = io.Discard
		cmd.Stderr = io.Discard
		err = cmd.Run()
	} else {
		err = t.runStreaming(cmd, stdout, stderr)
	}

	code, err := exitCode(err)
	if err != nil {
		return -1, fmt.Errorf("failed to run %s: %w", t.Executable(), err)
	}

	if code != 0 {
		util.WarnLog("command exited with code %d: %s", code, strings.Join(args, " "))
	}
	return code, nil
}

// runStreaming starts the command and drains both output streams line
// by line, one goroutine per pipe, until the process exits
func (t *Template) runStreaming(cmd *exec.Cmd, stdout, stderr io.Writer) error {
	outPipe, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	errPipe, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go drainLines(&wg, outPipe, stdout)
	go drainLines(&wg, errPipe, stderr)

	// The pipes must be fully drained before Wait closes them
	wg.Wait()
	return cmd.Wait()
}

// maxLineBytes bounds one scanned output line. Encoders that render
// progress with carriage returns can emit very long "lines".
const maxLineBytes = 1024 * 1024

// drainLines copies lines from a pipe to a sink, dropping them when
// the sink is nil. The pipe is always drained to EOF: a stalled drain
// would block the child on a full pipe and Wait would never return.
func drainLines(wg *sync.WaitGroup, pipe io.Reader, sink io.Writer) {
	defer wg.Done()

	scanner := bufio.NewScanner(pipe)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if sink != nil {
			fmt.Fprintln(sink, scanner.Text())
		}
	}
	if err := scanner.Err(); err != nil {
		// A line over maxLineBytes stops the scan; keep consuming
		// the rest of the stream so the child can exit
		util.DebugLog("dropping unscannable command output: %v", err)
		io.Copy(io.Discard, pipe)
	}
}

// exitCode unwraps a Run/Wait error into the child's exit code.
// A non-zero exit is not an error at this layer.
func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
