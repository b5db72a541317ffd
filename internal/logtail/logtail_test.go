package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	// Create a temporary log file
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	// Write 10 lines of content
	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "read all (0)",
			maxLines: 0,
			expected: expectedAll,
		},
		{
			name:     "read all (negative)",
			maxLines: -1,
			expected: expectedAll,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil || got != nil {
		t.Fatalf("Read(missing) = %v, %v; want nil, nil", got, err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
		want  Entry
	}{
		{
			name:  "warn with fields",
			input: `2026/10/18 14:32:15 WARN page fetch failed component=feed feed=idols err="context deadline exceeded"`,
			ok:    true,
			want: Entry{
				Time:    "2026/10/18 14:32:15",
				Level:   "WARN",
				Message: "page fetch failed",
				Fields: []Field{
					{"component", "feed"},
					{"feed", "idols"},
					{"err", "context deadline exceeded"},
				},
			},
		},
		{
			name:  "abbreviated level",
			input: "2026/10/18 14:32:15 ERRO boom",
			ok:    true,
			want:  Entry{Time: "2026/10/18 14:32:15", Level: "ERROR", Message: "boom"},
		},
		{
			name:  "no timestamp",
			input: "DEBU page loaded total=8",
			ok:    true,
			want:  Entry{Level: "DEBUG", Message: "page loaded", Fields: []Field{{"total", "8"}}},
		},
		{
			name:  "escaped quote in value",
			input: `INFO saved path="a \"b\"" done=true`,
			ok:    true,
			want:  Entry{Level: "INFO", Message: "saved", Fields: []Field{{"path", `a "b"`}, {"done", "true"}}},
		},
		{
			name:  "unterminated quote stays in message",
			input: `INFO saved path="a b`,
			ok:    true,
			want:  Entry{Level: "INFO", Message: `saved path="a b`},
		},
		{
			name:  "continuation line",
			input: "    at something",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if ok != tt.ok {
				t.Fatalf("Parse ok = %v, want %v", ok, tt.ok)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestColorizeLines_UnstyledPaletteRoundTrips(t *testing.T) {
	input := []string{
		"2026/10/18 14:32:15 INFO fandom started logFile=/tmp/fandom.log",
		"    continuation",
		"",
		`2026/10/18 14:32:16 WARN chart poll failed component=poller err="api down"`,
		`2026/10/18 14:32:17 INFO saved path="a \"b\"" empty= done=true`,
	}
	got := ColorizeLines(input, Palette{})
	if !reflect.DeepEqual(got, input) {
		t.Errorf("ColorizeLines() = %q, want %q", got, input)
	}
}

func TestEntryField(t *testing.T) {
	entry, ok := Parse(`2026/10/18 14:32:15 WARN chart poll failed component=poller err="api down"`)
	if !ok {
		t.Fatal("Parse failed")
	}
	if got := entry.Field("component"); got != "poller" {
		t.Errorf("component = %q, want poller", got)
	}
	if got := entry.Field("err"); got != "api down" {
		t.Errorf("err = %q, want unquoted value", got)
	}
	if got := entry.Field("missing"); got != "" {
		t.Errorf("missing = %q, want empty", got)
	}
}
