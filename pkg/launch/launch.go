// Package launch runs the game client as a child process and reports when
// its main window is up, based on a marker line in the client's output.
package launch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultReady matches the lines common game clients print once their window is up.
const DefaultReady = `(?i)window shown|sound engine started`

// Command describes the child process to run.
type Command struct {
	Path  string
	Args  []string
	Ready *regexp.Regexp

	// Stdout and Stderr receive the child's output. Nil means the launcher's own.
	Stdout io.Writer
	Stderr io.Writer
}

// ErrNoCommand is returned when Command.Path is empty.
var ErrNoCommand = errors.New("no command to launch")

// Run starts the child, mirrors its output and calls onReady at most once,
// when Ready first matches a line. It returns when the child exits.
func Run(ctx context.Context, c Command, onReady func()) error {
	if c.Path == "" {
		return ErrNoCommand
	}
	if c.Ready == nil {
		c.Ready = regexp.MustCompile(DefaultReady)
	}
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}

	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", c.Path, err)
	}

	var once sync.Once
	ready := func() {
		once.Do(func() {
			if onReady != nil {
				onReady()
			}
		})
	}

	var g errgroup.Group
	g.Go(func() error { return Watch(stdout, c.Stdout, c.Ready, ready) })
	g.Go(func() error { return Watch(stderr, c.Stderr, c.Ready, ready) })

	// Pipes must be drained before Wait closes them.
	pumpErr := g.Wait()
	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("%s: %w", c.Path, err)
	}
	return pumpErr
}

// Watch copies r to w line by line and calls onMatch for every line ready matches.
func Watch(r io.Reader, w io.Writer, ready *regexp.Regexp, onMatch func()) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if w != nil {
			if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
				return fmt.Errorf("mirror output: %w", err)
			}
		}
		if ready.Match(line) {
			onMatch()
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read output: %w", err)
	}
	return nil
}
