package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

const (
	countPrompt = "Enter number of lines:"
	linePrompt  = "Enter line:"
	noDataMark  = "-"
)

// Session owns the store for one run and connects it to the input and
// output streams.
type Session struct {
	Store  *Store
	Engine *QueryEngine

	in     *bufio.Reader
	out    io.Writer
	sl     *zap.SugaredLogger
	prompt bool

	queries int
}

type SessionOption func(*Session)

// WithPrompt makes the session print the interactive prompts before the
// line count and before every command line.
func WithPrompt(on bool) SessionOption {
	return func(s *Session) { s.prompt = on }
}

func NewSession(in io.Reader, out io.Writer, sl *zap.SugaredLogger, opts ...SessionOption) *Session {
	store := NewStore()
	s := &Session{
		Store:  store,
		Engine: NewQueryEngine(store),
		in:     bufio.NewReader(in),
		out:    out,
		sl:     sl,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Run reads the line count and then exactly that many command lines.
// The first malformed line aborts the run.
func (s *Session) Run() error {
	s.ask(countPrompt)
	first, ok, err := s.readLine()
	if err != nil {
		return xerrors.Errorf("read count: %w", err)
	}
	if !ok {
		return &ErrTruncatedInput{Want: 1, Got: 0}
	}
	n, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil || n < 0 {
		return xerrors.Errorf("line count: %w", &MalformedIntegerError{Value: first})
	}
	s.sl.Debugw("Expecting lines", "count", n)

	for i := 0; i < n; i++ {
		s.ask(linePrompt)
		line, ok, err := s.readLine()
		if err != nil {
			return xerrors.Errorf("read line %d: %w", i+2, err)
		}
		if !ok {
			return &ErrTruncatedInput{Want: n, Got: i}
		}
		if err := s.Exec(line); err != nil {
			return xerrors.Errorf("line %d: %w", i+2, err)
		}
	}
	s.sl.Infow("Done", "records", s.Store.Len(), "queries", s.queries)
	return nil
}

// Exec parses and applies a single command line.
func (s *Session) Exec(line string) error {
	cmd, err := ParseCommand(line)
	if err != nil {
		return err
	}
	switch c := cmd.(type) {
	case *AddCommand:
		s.Store.Append(c.Record)
		s.sl.Debugw("Added record",
			"service", c.Record.Service,
			"question", c.Record.QuestionType,
			"response", c.Record.Response,
			"date", c.Record.Date.Format(DateLayout),
			"wait", c.Record.WaitTime)
	case *QueryCommand:
		s.queries++
		m := s.Engine.Stats(c.Filter)
		avg := m.Avg()
		s.sl.Debugw("Query",
			"service", c.Filter.Service,
			"question", c.Filter.QuestionType,
			"response", c.Filter.Response,
			"matched", m.Count,
			"sum", m.Sum,
			"avg", avg)
		if err := s.writeResult(avg); err != nil {
			return xerrors.Errorf("write: %w", err)
		}
	default:
		s.sl.Warnw("Skipping unknown command", "line", line)
	}
	return nil
}

func (s *Session) writeResult(avg int) error {
	if avg == NoData {
		_, err := fmt.Fprintln(s.out, noDataMark)
		return err
	}
	_, err := fmt.Fprintln(s.out, avg)
	return err
}

func (s *Session) ask(prompt string) {
	if !s.prompt {
		return
	}
	fmt.Fprintln(s.out, prompt)
	if f, ok := s.out.(interface{ Flush() error }); ok {
		f.Flush()
	}
}

// readLine returns the next line without its terminator. ok is false when
// the input is exhausted.
func (s *Session) readLine() (line string, ok bool, err error) {
	line, err = s.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, err
	}
	if err == io.EOF && line == "" {
		return "", false, nil
	}
	return strings.TrimRight(line, "\r\n"), true, nil
}
