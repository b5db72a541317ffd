package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-logfmt/logfmt"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file is not an error.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Field is one key=value pair from a structured log line. Value is unquoted.
type Field struct {
	Key   string
	Value string
}

// String renders f back into logfmt, quoting the value when needed.
func (f Field) String() string {
	b, err := logfmt.MarshalKeyvals(f.Key, f.Value)
	if err != nil {
		return f.Key + "=" + f.Value
	}
	return string(b)
}

// Entry is a parsed charmbracelet/log text line:
//
//	2026/10/18 14:32:15 WARN page fetch failed component=feed feed=idols err="timeout"
type Entry struct {
	Time    string
	Level   string
	Message string
	Fields  []Field
}

// Field returns the value of the first field named key, or "".
func (e Entry) Field(key string) string {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value
		}
	}
	return ""
}

var (
	timePattern  = regexp.MustCompile(`^\d{4}[/-]\d{2}[/-]\d{2} \d{2}:\d{2}:\d{2}`)
	fieldPattern = regexp.MustCompile(`(^|\s)[A-Za-z_][\w.-]*=`)
	levels       = map[string]string{
		"DEBU": "DEBUG", "DEBUG": "DEBUG",
		"INFO": "INFO",
		"WARN": "WARN",
		"ERRO": "ERROR", "ERROR": "ERROR",
		"FATA": "FATAL", "FATAL": "FATAL",
	}
)

// Parse splits a log line into its parts. ok is false when the line does not
// carry a recognised level, for example a wrapped continuation line.
func Parse(line string) (Entry, bool) {
	var e Entry
	rest := line
	if ts := timePattern.FindString(rest); ts != "" {
		e.Time = ts
		rest = strings.TrimLeft(rest[len(ts):], " ")
	}
	word, after, _ := strings.Cut(rest, " ")
	level, ok := levels[word]
	if !ok {
		return Entry{}, false
	}
	e.Level = level
	rest = after

	e.Message = strings.TrimSpace(rest)
	if loc := fieldPattern.FindStringIndex(rest); loc != nil {
		// A tail that is not valid logfmt stays part of the message.
		if fields, err := parseFields(rest[loc[0]:]); err == nil {
			e.Message = strings.TrimSpace(rest[:loc[0]])
			e.Fields = fields
		}
	}
	return e, true
}

func parseFields(s string) ([]Field, error) {
	var fields []Field
	dec := logfmt.NewDecoder(strings.NewReader(strings.TrimSpace(s)))
	for dec.ScanRecord() {
		for dec.ScanKeyval() {
			fields = append(fields, Field{Key: string(dec.Key()), Value: string(dec.Value())})
		}
	}
	if err := dec.Err(); err != nil {
		return nil, err
	}
	return fields, nil
}

// Palette styles each part of a colorized line.
type Palette struct {
	Time  lipgloss.Style
	Debug lipgloss.Style
	Info  lipgloss.Style
	Warn  lipgloss.Style
	Error lipgloss.Style
	Key   lipgloss.Style
	Value lipgloss.Style
	Plain lipgloss.Style
}

func (p Palette) level(level string) lipgloss.Style {
	switch level {
	case "DEBUG":
		return p.Debug
	case "WARN":
		return p.Warn
	case "ERROR", "FATAL":
		return p.Error
	default:
		return p.Info
	}
}

// Colorize renders a log line with p. Lines that do not parse are rendered
// with the plain style.
func Colorize(line string, p Palette) string {
	e, ok := Parse(line)
	if !ok {
		if line == "" {
			return ""
		}
		return p.Plain.Render(line)
	}

	parts := make([]string, 0, 3+len(e.Fields))
	if e.Time != "" {
		parts = append(parts, p.Time.Render(e.Time))
	}
	parts = append(parts, p.level(e.Level).Render(e.Level))
	if e.Message != "" {
		parts = append(parts, p.Plain.Render(e.Message))
	}
	for _, f := range e.Fields {
		key, value, _ := strings.Cut(f.String(), "=")
		parts = append(parts, p.Key.Render(key+"=")+p.Value.Render(value))
	}
	return strings.Join(parts, " ")
}

// ColorizeLines applies Colorize to every line.
func ColorizeLines(lines []string, p Palette) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Colorize(line, p)
	}
	return out
}
