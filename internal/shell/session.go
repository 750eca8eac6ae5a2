// Package shell implements a line-oriented notepad session.
//
// Each input line is split into words (see Split), the first word picks a
// command and the rest are its arguments. Commands drive a view.Controller;
// errors are reported on the output and the session carries on.
package shell

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/notepad/pkg/view"
)

const (
	// DefaultPrompt is written before each line is read.
	DefaultPrompt = "notepad> "
	// DefaultMaxLineSize bounds a single command line.
	DefaultMaxLineSize = 10 * 1024 * 1024
)

// Session reads commands and applies them to a controller.
type Session struct {
	ctrl    *view.Controller
	out     io.Writer
	render  *Renderer
	logger  *slog.Logger
	prompt  string
	color   bool
	maxLine int
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for the session.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithColor toggles lipgloss styling of the output.
func WithColor(color bool) Option {
	return func(s *Session) {
		s.color = color
	}
}

// WithPrompt replaces DefaultPrompt. An empty prompt disables it.
func WithPrompt(prompt string) Option {
	return func(s *Session) {
		s.prompt = prompt
	}
}

// WithMaxLineSize sets the longest command line, in bytes, the session accepts.
// Longer lines are reported as ErrLineTooLong and skipped.
func WithMaxLineSize(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxLine = n
		}
	}
}

// NewSession creates a session over ctrl that writes to out.
func NewSession(ctrl *view.Controller, out io.Writer, opts ...Option) *Session {
	s := &Session{
		ctrl:    ctrl,
		out:     out,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		prompt:  DefaultPrompt,
		color:   true,
		maxLine: DefaultMaxLineSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.render = NewRenderer(s.color, ctrl.PreviewWidth())
	return s
}

// Controller returns the controller the session drives.
func (s *Session) Controller() *view.Controller { return s.ctrl }

// Run reads lines from in until it is exhausted, a quit command is read or
// ctx is done. Command errors, including over-long lines, are printed and do
// not stop the session.
//
// Lines are read on a separate goroutine so cancelling ctx ends the session
// even while a read is pending. That read is abandoned, not interrupted.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan inputLine)
	lifecycle.Go(ctx, func(ctx context.Context) error {
		readLines(ctx, in, s.maxLine, lines)
		return nil
	})

	s.writePrompt()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if l.readErr != nil {
				return l.readErr
			}

			quit, err := s.exec(l)
			if err != nil {
				s.logger.Debug("command failed", "error", err)
				s.printf("error: %v\n", err)
			}
			if quit {
				return nil
			}
			s.writePrompt()
		}
	}
}

func (s *Session) exec(l inputLine) (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	return s.Exec(l.text)
}

// Exec runs a single command line. It reports whether the session should end.
func (s *Session) Exec(line string) (bool, error) {
	words, err := Split(line)
	if err != nil {
		return false, err
	}
	if len(words) == 0 {
		return false, nil
	}

	name, args := strings.ToLower(words[0]), words[1:]
	if name == "quit" || name == "exit" {
		return true, nil
	}

	cmd, ok := commands[name]
	if !ok {
		return false, fmt.Errorf("%w %q, try help", ErrUnknownCommand, name)
	}
	return false, cmd.run(s, args)
}

func (s *Session) writePrompt() {
	if s.prompt != "" {
		fmt.Fprint(s.out, s.prompt)
	}
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Session) println(text string) {
	fmt.Fprintln(s.out, text)
}
