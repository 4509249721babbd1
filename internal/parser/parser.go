// Package parser reads question definitions from .sll files.
//
// Each non-blank, non-comment line holds one question and one accepted
// answer separated by a single pipe:
//
//	# comments start with a hash
//	list files      | ls
//	show the date   | date
//
// Whitespace around and inside each side is collapsed. One trailing pipe is
// allowed. Lines that do not split into exactly two non-empty sides are
// reported and skipped.
package parser

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shellingo/shellingo/internal/logging"
	"github.com/shellingo/shellingo/internal/question"
	"github.com/shellingo/shellingo/internal/textnorm"
)

const (
	// Delimiter separates the question from its answer.
	Delimiter = "|"

	// CommentPrefix marks a line that is ignored.
	CommentPrefix = "#"

	maxLineSize = 1024 * 1024
)

// ErrMalformedLine is returned for lines that are neither skippable nor a
// valid question definition.
var ErrMalformedLine = errors.New("malformed question line")

// Diagnostic describes a line that was rejected.
type Diagnostic struct {
	Location string
	Line     int
	Text     string
	Err      error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d: %v: %q", d.Location, d.Line, d.Err, d.Text)
}

// ParseLine parses a single line read from location. It returns nil and no
// error for lines that carry no question (empty, whitespace only, comments).
func ParseLine(line, location string) (*question.Question, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, CommentPrefix) {
		return nil, nil
	}

	// A single trailing delimiter closes the line rather than opening an
	// empty third field.
	parts := strings.Split(strings.TrimSuffix(trimmed, Delimiter), Delimiter)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: expected 1 %q delimiter, found %d", ErrMalformedLine, Delimiter, len(parts)-1)
	}

	text := textnorm.Collapse(parts[0])
	answer := textnorm.Collapse(parts[1])
	if text == "" {
		return nil, fmt.Errorf("%w: empty question", ErrMalformedLine)
	}
	if answer == "" {
		return nil, fmt.Errorf("%w: empty answer", ErrMalformedLine)
	}
	return question.New(location, text, answer), nil
}

// ParseReader parses every line of r. Malformed lines do not stop parsing;
// they are returned as diagnostics. The error is non-nil only when r itself
// fails.
func ParseReader(r io.Reader, location string) ([]*question.Question, []Diagnostic, error) {
	var (
		questions []*question.Question
		diags     []Diagnostic
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		q, err := ParseLine(line, location)
		if err != nil {
			diags = append(diags, Diagnostic{
				Location: location,
				Line:     lineNo,
				Text:     line,
				Err:      err,
			})
			continue
		}
		if q != nil {
			questions = append(questions, q)
		}
	}
	if err := scanner.Err(); err != nil {
		return questions, diags, fmt.Errorf("read %s: %w", location, err)
	}
	return questions, diags, nil
}

// ParseFile opens path and parses it.
func ParseFile(path string) ([]*question.Question, []Diagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ParseReader(f, path)
}

// ParseFiles parses every path and returns all questions found, unmerged.
// Unreadable files and malformed lines are logged as warnings through the
// context logger and skipped. Questions read before a file fails are kept.
func ParseFiles(ctx context.Context, paths []string) []*question.Question {
	log := logging.FromContext(ctx)
	var all []*question.Question
	for _, path := range paths {
		qs, diags, err := ParseFile(path)
		for _, d := range diags {
			log.Warn().
				Str("path", d.Location).
				Int("line", d.Line).
				Str("text", d.Text).
				Err(d.Err).
				Msg("skipping malformed question")
		}
		all = append(all, qs...)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Int("kept", len(qs)).Msg("skipping unreadable file")
		}
	}
	return all
}
