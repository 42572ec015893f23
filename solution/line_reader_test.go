package solution_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/willibrandon/gosln/solution"
)

func TestStringLineReader_ReadsLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"unix endings", "a\nb\nc", []string{"a", "b", "c"}},
		{"windows endings", "a\r\nb\r\nc", []string{"a", "b", "c"}},
		{"mixed endings", "a\r\nb\nc", []string{"a", "b", "c"}},
		{"empty text", "", []string{""}},
		{"trailing newline", "a\n", []string{"a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := solution.NewStringLineReader(tt.text)
			var got []string
			for r.HasMore() {
				line, err := r.ReadLine()
				if err != nil {
					t.Fatalf("ReadLine() error = %v", err)
				}
				got = append(got, line)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("read %d lines, want %d (%q)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestStringLineReader_ReadPastEnd(t *testing.T) {
	r := solution.NewStringLineReader("only")

	if _, err := r.ReadLine(); err != nil {
		t.Fatalf("ReadLine() error = %v", err)
	}
	if r.HasMore() {
		t.Error("HasMore() = true after last line")
	}
	if _, err := r.ReadLine(); !errors.Is(err, solution.ErrEndOfInput) {
		t.Errorf("ReadLine() after exhaustion = %v, want ErrEndOfInput", err)
	}
}

func TestStringLineReader_TracksLineNumbers(t *testing.T) {
	r := solution.NewStringLineReader("a\nb")
	if r.Line() != 0 {
		t.Errorf("Line() before first read = %d, want 0", r.Line())
	}
	_, _ = r.ReadLine()
	if r.Line() != 1 {
		t.Errorf("Line() after first read = %d, want 1", r.Line())
	}
}

func TestFileLineReader_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.txt")
	if err := os.WriteFile(path, []byte("first\r\nsecond\nthird\n"), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := solution.OpenFileLineReader(path)
	if err != nil {
		t.Fatalf("OpenFileLineReader() error = %v", err)
	}
	defer func() { _ = r.Close() }()

	want := []string{"first", "second", "third"}
	for i, w := range want {
		if !r.HasMore() {
			t.Fatalf("HasMore() = false before line %d", i+1)
		}
		line, err := r.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine() error = %v", err)
		}
		if line != w {
			t.Errorf("line %d = %q, want %q", i+1, line, w)
		}
	}

	if r.HasMore() {
		t.Error("HasMore() = true after last line")
	}
	if _, err := r.ReadLine(); !errors.Is(err, solution.ErrEndOfInput) {
		t.Errorf("ReadLine() after exhaustion = %v, want ErrEndOfInput", err)
	}
}

func TestOpenFileLineReader_MissingFile(t *testing.T) {
	if _, err := solution.OpenFileLineReader(filepath.Join(t.TempDir(), "absent.sln")); err == nil {
		t.Error("OpenFileLineReader() should error on missing file")
	}
}
