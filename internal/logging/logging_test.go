package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelInfo, Format: FormatText, Output: &buf})

	logger.Debug("dropped below info")
	logger.Info("autocomplete", Fields{"buffer": "he", "match": "help"})

	output := buf.String()
	if strings.Contains(output, "dropped below info") {
		t.Error("debug entry written at info level")
	}
	if !strings.Contains(output, "INFO: autocomplete buffer=he match=help\n") {
		t.Errorf("output = %q, want sorted fields after the message", output)
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelInfo, Format: FormatJSON, Output: &buf})

	logger.WithFields(Fields{"session": "abc"}).Error("launch failed", errors.New("exec format error"), Fields{"command": "./a.out"})

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if entry.Level != "ERROR" || entry.Message != "launch failed" {
		t.Errorf("entry = %+v", entry)
	}
	if entry.Error != "exec format error" {
		t.Errorf("Error = %q", entry.Error)
	}
	if entry.Fields["session"] != "abc" || entry.Fields["command"] != "./a.out" {
		t.Errorf("Fields = %v, want preset and call fields merged", entry.Fields)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input  string
		want   Format
		wantOK bool
	}{
		{"", FormatText, true},
		{"text", FormatText, true},
		{"JSON", FormatJSON, true},
		{"xml", FormatText, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseFormat(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseFormat(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestOpenFile_AppendsAndCloses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "error.log")

	logger, err := OpenFile(path, Options{Level: LevelDebug, Format: FormatText})
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	logger.Info("first")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Second open must append, not truncate
	logger, err = OpenFile(path, Options{Level: LevelDebug, Format: FormatText})
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	logger.Info("second")
	logger.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "first") || !strings.Contains(content, "second") {
		t.Errorf("log file missing entries: %q", content)
	}
	if strings.Index(content, "first") > strings.Index(content, "second") {
		t.Error("entries out of order")
	}
}

func TestOpenFile_Unwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0600); err != nil {
		t.Fatal(err)
	}

	// A regular file cannot be used as a directory
	if _, err := OpenFile(filepath.Join(blocker, "error.log"), Options{}); err == nil {
		t.Error("OpenFile() should fail when the directory cannot be created")
	}
}

func TestLogger_CloseIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelDebug, Output: &buf})

	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}

	logger.Error("after close", errors.New("ignored"))
	if buf.Len() > 0 {
		t.Errorf("expected no output after Close, got %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic
	Discard().Error("dropped", errors.New("x"), Fields{"k": "v"})
}
