// Package pipe delivers rendered lines to the status bar.
package pipe

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/charmbracelet/colorprofile"

	"github.com/chatter/zjhints/internal/logger"
)

// Emitter delivers one rendered line.
type Emitter interface {
	Emit(ctx context.Context, line string) error
}

// Envelope builds the zjstatus pipe payload:
// "<prefix>::pipe_<name>::<line>".
func Envelope(prefix, name, line string) string {
	return prefix + "::pipe_" + name + "::" + line
}

// DefaultCommand sends its final argument to zellij as a pipe message.
var DefaultCommand = []string{"zellij", "pipe", "--name", "pipe", "--"}

// Zellij pipes lines to zjstatus by running the zellij CLI.
type Zellij struct {
	Prefix string
	Name   string

	// Command is run with the envelope appended as the last argument.
	// Nil means DefaultCommand.
	Command []string

	log *logger.Logger
}

// NewZellij returns an emitter for the given channel prefix and pipe name.
func NewZellij(prefix, name string, log *logger.Logger) *Zellij {
	return &Zellij{Prefix: prefix, Name: name, log: log}
}

// Emit runs the pipe command. Empty lines are not sent.
func (z *Zellij) Emit(ctx context.Context, line string) error {
	if line == "" {
		return nil
	}

	argv := z.Command
	if argv == nil {
		argv = DefaultCommand
	}
	args := append(append([]string(nil), argv[1:]...), Envelope(z.Prefix, z.Name, line))

	cmd := exec.CommandContext(ctx, argv[0], args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		pipeErr := &PipeError{
			Command: strings.Join(argv, " "),
			Stderr:  strings.TrimSpace(stderr.String()),
			Err:     err,
		}
		if z.log != nil {
			z.log.Debug("pipe command failed", "command", pipeErr.Command, "err", err)
		}
		return pipeErr
	}
	return nil
}

// PipeError represents a failed pipe command.
type PipeError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *PipeError) Error() string {
	if e.Stderr == "" {
		return e.Command + ": " + e.Err.Error()
	}
	return e.Command + ": " + e.Stderr
}

func (e *PipeError) Unwrap() error {
	return e.Err
}

// Writer writes every line, empty ones included, to an io.Writer with
// colors downsampled to a profile.
type Writer struct {
	mu  sync.Mutex
	out *colorprofile.Writer
}

// NewWriter returns a line writer for w using profile p.
func NewWriter(w io.Writer, p colorprofile.Profile) *Writer {
	return &Writer{out: &colorprofile.Writer{Forward: w, Profile: p}}
}

// Emit writes line followed by a newline.
func (w *Writer) Emit(_ context.Context, line string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, err := w.out.WriteString(line + "\n")
	return err
}

// Multi fans a line out to several emitters. Every emitter is tried; the
// failures are joined.
type Multi []Emitter

// Emit sends line to every emitter in order.
func (m Multi) Emit(ctx context.Context, line string) error {
	var errs []error
	for _, e := range m {
		if err := e.Emit(ctx, line); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Func adapts a function to Emitter.
type Func func(ctx context.Context, line string) error

// Emit calls f.
func (f Func) Emit(ctx context.Context, line string) error {
	return f(ctx, line)
}
