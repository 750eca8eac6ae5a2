package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

// inputLine is one line handed from the reader to the session.
// err is a per-line problem the session reports and survives; readErr ends it.
type inputLine struct {
	text    string
	err     error
	readErr error
}

// readLines sends every line of in to out and closes out at end of input or
// when ctx is done.
func readLines(ctx context.Context, in io.Reader, limit int, out chan<- inputLine) {
	defer close(out)

	r := bufio.NewReader(in)
	for {
		text, err := readLine(r, limit)

		var l inputLine
		switch {
		case err == nil:
			l.text = text
		case errors.Is(err, ErrLineTooLong):
			l.err = err
		case errors.Is(err, io.EOF):
			return
		default:
			l.readErr = err
		}

		select {
		case out <- l:
		case <-ctx.Done():
			return
		}
		if l.readErr != nil {
			return
		}
	}
}

// readLine returns the next line without its line ending. A line longer than
// limit bytes is consumed and reported as ErrLineTooLong.
func readLine(r *bufio.Reader, limit int) (string, error) {
	var (
		buf     []byte
		tooLong bool
	)
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			return "", err
		}
		if !tooLong {
			if len(buf)+len(chunk) > limit {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", fmt.Errorf("%w: limit is %d bytes", ErrLineTooLong, limit)
	}
	return string(buf), nil
}
