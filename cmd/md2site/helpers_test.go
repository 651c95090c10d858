package main

// Notes:
// - This file contains shared test infrastructure: captured dependencies,
//   a scripted converter and a temp-site builder.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	md2site "github.com/alnah/go-md2site"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Dependencies
// ---------------------------------------------------------------------------

// testDeps returns dependencies writing into buffers with a fixed clock.
func testDeps() (*Dependencies, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	return &Dependencies{
		Now:    func() time.Time { return fixed },
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

// ---------------------------------------------------------------------------
// Test Infrastructure - Scripted converter
// ---------------------------------------------------------------------------

// errMockConvert is returned by scriptedConverter for markdown containing "FAIL".
var errMockConvert = errors.New("mock conversion failure")

// scriptedConverter returns a fixed page, or errMockConvert for markdown
// containing "FAIL". It records the peak number of concurrent calls.
type scriptedConverter struct {
	mu     sync.Mutex
	active int
	peak   int
	calls  int
	delay  time.Duration
}

func (s *scriptedConverter) Convert(_ context.Context, input md2site.Input) (*md2site.Result, error) {
	s.mu.Lock()
	s.calls++
	s.active++
	if s.active > s.peak {
		s.peak = s.active
	}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.active--
		s.mu.Unlock()
	}()

	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if strings.Contains(input.Markdown, "FAIL") {
		return nil, errMockConvert
	}
	return &md2site.Result{Title: "T", HTML: []byte("<p>" + input.Markdown + "</p>")}, nil
}

// ---------------------------------------------------------------------------
// Test Infrastructure - Temp site
// ---------------------------------------------------------------------------

// writeFiles creates files relative to root, with parent directories.
func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

// readFile returns the content of root/name or fails the test.
func readFile(t *testing.T, root, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(data)
}
