package fileutil_test

// Notes:
// - WriteFileAtomic write/close/chmod failure branches need a failing disk;
//   only the directory-creation failure is exercised.

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-md2site/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestFileExists / TestDirExists - Stat helpers
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "test.md")
	if err := os.WriteFile(testFile, []byte("content"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	tests := []struct {
		name     string
		path     string
		wantFile bool
		wantDir  bool
	}{
		{name: "existing file", path: testFile, wantFile: true},
		{name: "directory", path: tempDir, wantDir: true},
		{name: "nonexistent path", path: filepath.Join(tempDir, "nonexistent")},
		{name: "empty path", path: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.wantFile {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.wantFile)
			}
			if got := fileutil.DirExists(tt.path); got != tt.wantDir {
				t.Errorf("DirExists(%q) = %v, want %v", tt.path, got, tt.wantDir)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath / TestIsMarkdown - Name classification
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{input: "default", want: false},
		{input: "my-template", want: false},
		{input: "./page.html", want: true},
		{input: "../shared/page.html", want: true},
		{input: "/abs/page.html", want: true},
		{input: `C:\site\page.html`, want: true},
		{input: "", want: false},
	}

	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{path: "index.md", want: true},
		{path: "notes.markdown", want: true},
		{path: "README.MD", want: true},
		{path: "dir.md/page.txt", want: false},
		{path: "page.html", want: false},
		{path: "md", want: false},
	}

	for _, tt := range tests {
		if got := fileutil.IsMarkdown(tt.path); got != tt.want {
			t.Errorf("IsMarkdown(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestOutputPath - Mirroring content paths under the output directory
// ---------------------------------------------------------------------------

func TestOutputPath(t *testing.T) {
	t.Parallel()

	content := filepath.Join("site", "content")
	public := filepath.Join("site", "public")

	tests := []struct {
		name    string
		root    string
		src     string
		want    string
		wantErr error
	}{
		{
			name: "top level page",
			root: content,
			src:  filepath.Join(content, "index.md"),
			want: filepath.Join(public, "index.html"),
		},
		{
			name: "nested page",
			root: content,
			src:  filepath.Join(content, "blog", "post.markdown"),
			want: filepath.Join(public, "blog", "post.html"),
		},
		{
			name: "no content root",
			root: "",
			src:  filepath.Join("elsewhere", "about.md"),
			want: filepath.Join(public, "about.html"),
		},
		{
			name:    "outside root",
			root:    content,
			src:     filepath.Join("site", "other", "x.md"),
			wantErr: fileutil.ErrOutsideRoot,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fileutil.OutputPath(tt.root, public, tt.src)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("OutputPath() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("OutputPath() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("OutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Page writes
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "page.html")

	if err := fileutil.WriteFileAtomic(path, []byte("<p>one</p>")); err != nil {
		t.Fatalf("WriteFileAtomic() unexpected error: %v", err)
	}
	if err := fileutil.WriteFileAtomic(path, []byte("<p>two</p>")); err != nil {
		t.Fatalf("WriteFileAtomic() overwrite unexpected error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(got) != "<p>two</p>" {
		t.Errorf("content = %q, want %q", got, "<p>two</p>")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the page in the directory, found %d entries", len(entries))
	}
}

func TestWriteFileAtomic_ParentIsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if err := fileutil.WriteFileAtomic(filepath.Join(blocker, "page.html"), []byte("x")); err == nil {
		t.Error("WriteFileAtomic() expected error when parent is a file")
	}
}

// ---------------------------------------------------------------------------
// TestCopyDir - Static tree copy
// ---------------------------------------------------------------------------

func TestCopyDir(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	files := map[string]string{
		"index.css":                          "body{}",
		filepath.Join("images", "logo.svg"):  "<svg/>",
		filepath.Join("images", "deep", "x"): "x",
	}
	for rel, content := range files {
		path := filepath.Join(src, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	dst := filepath.Join(t.TempDir(), "public")
	n, err := fileutil.CopyDir(src, dst)
	if err != nil {
		t.Fatalf("CopyDir() unexpected error: %v", err)
	}
	if n != len(files) {
		t.Errorf("CopyDir() copied %d files, want %d", n, len(files))
	}

	for rel, want := range files {
		got, err := os.ReadFile(filepath.Join(dst, rel))
		if err != nil {
			t.Errorf("missing %s: %v", rel, err)
			continue
		}
		if string(got) != want {
			t.Errorf("%s = %q, want %q", rel, got, want)
		}
	}
}

func TestCopyDir_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing source", func(t *testing.T) {
		t.Parallel()

		_, err := fileutil.CopyDir(filepath.Join(t.TempDir(), "nope"), t.TempDir())
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("CopyDir() error = %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("source is a file", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "f.txt")
		if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}
		_, err := fileutil.CopyDir(file, t.TempDir())
		if !errors.Is(err, fileutil.ErrNotDirectory) {
			t.Errorf("CopyDir() error = %v, want ErrNotDirectory", err)
		}
	})
}
