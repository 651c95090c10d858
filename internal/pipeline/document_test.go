package pipeline

import (
	"errors"
	"sync"
	"testing"

	"github.com/alnah/go-md2site/internal/htmlnode"
)

func convertToString(t *testing.T, markdown string) (string, error) {
	t.Helper()
	root, err := ConvertDocument(markdown)
	if err != nil {
		return "", err
	}
	return htmlnode.Serialize(root)
}

// ---------------------------------------------------------------------------
// TestConvertDocument - Whole document assembly
// ---------------------------------------------------------------------------

func TestConvertDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{
			name:     "title and body",
			markdown: "# Title\n\nBody **bold**",
			want:     "<div><h1>Title</h1><p>Body <b>bold</b></p></div>",
		},
		{
			name:     "CRLF line endings",
			markdown: "# Title\r\n\r\nBody",
			want:     "<div><h1>Title</h1><p>Body</p></div>",
		},
		{
			name:     "byte order mark",
			markdown: "\uFEFF# Title",
			want:     "<div><h1>Title</h1></div>",
		},
		{
			name: "every block type",
			markdown: "# Tolkien Fan Club\n\n" +
				"**I like Tolkien**. Read my [first post here](/majesty)\n\n" +
				"> All that is gold does not glitter\n\n" +
				"## Reasons I like Tolkien\n\n" +
				"* You can spend years studying the legendarium\n" +
				"* It's the first fantasy I ever read\n\n" +
				"1. Gandalf\n2. Bilbo\n3. Sam\n\n" +
				"```\nfunc main() {}\n```",
			want: "<div>" +
				"<h1>Tolkien Fan Club</h1>" +
				`<p><b>I like Tolkien</b>. Read my <a href="/majesty">first post here</a></p>` +
				"<blockquote>All that is gold does not glitter</blockquote>" +
				"<h2>Reasons I like Tolkien</h2>" +
				"<ul><li>You can spend years studying the legendarium</li><li>It's the first fantasy I ever read</li></ul>" +
				"<ol><li>Gandalf</li><li>Bilbo</li><li>Sam</li></ol>" +
				"<pre><code>\nfunc main() {}\n</code></pre>" +
				"</div>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := convertToString(t, tt.markdown)
			if err != nil {
				t.Fatalf("ConvertDocument() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ConvertDocument() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestConvertDocument_OneBadBlockFailsDocument(t *testing.T) {
	t.Parallel()

	root, err := ConvertDocument("# Fine\n\nstill fine\n\nbad *markup")
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("ConvertDocument() error = %v, want ErrSyntax", err)
	}
	if root != nil {
		t.Errorf("ConvertDocument() returned partial tree %v", root)
	}
}

func TestConvertDocument_EmptyDocument(t *testing.T) {
	t.Parallel()

	root, err := ConvertDocument("\n\n")
	if err != nil {
		t.Fatalf("ConvertDocument() unexpected error: %v", err)
	}
	if len(root.Children) != 0 {
		t.Errorf("expected no children, got %d", len(root.Children))
	}
	if _, err := htmlnode.Serialize(root); !errors.Is(err, htmlnode.ErrValue) {
		t.Errorf("Serialize(empty div) error = %v, want htmlnode.ErrValue", err)
	}
}

func TestConvertDocument_Concurrent(t *testing.T) {
	t.Parallel()

	const md = "# Title\n\nBody **bold** and `code`"
	want, err := convertToString(t, md)
	if err != nil {
		t.Fatalf("ConvertDocument() unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			root, err := ConvertDocument(md)
			if err != nil {
				errs <- err.Error()
				return
			}
			got, err := htmlnode.Serialize(root)
			if err != nil || got != want {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Errorf("concurrent conversion mismatch: %s", e)
	}
}

// ---------------------------------------------------------------------------
// TestExtractTitle - h1 lookup
// ---------------------------------------------------------------------------

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "converted document",
			html: "<div><h1>Title</h1><p>Body <b>bold</b></p></div>",
			want: "Title",
		},
		{
			name: "first h1 on a line",
			html: "<h1>A</h1><h1>B</h1>",
			want: "A",
		},
		{
			name: "h1 on a later line",
			html: "<p>one\ntwo</p><h1>Second</h1>",
			want: "Second",
		},
		{
			name: "inline markup kept",
			html: "<h1>Hello <i>world</i></h1>",
			want: "Hello <i>world</i>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ExtractTitle(tt.html)
			if err != nil {
				t.Fatalf("ExtractTitle(%q) unexpected error: %v", tt.html, err)
			}
			if got != tt.want {
				t.Errorf("ExtractTitle(%q) = %q, want %q", tt.html, got, tt.want)
			}
		})
	}
}

func TestExtractTitle_Missing(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"<div><h2>Not a title</h2></div>",
		"<h1></h1>",
		"<h1>split\nacross lines</h1>",
	}

	for _, in := range inputs {
		_, err := ExtractTitle(in)
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("ExtractTitle(%q) error = %v, want ErrSyntax", in, err)
		}
		if !errors.Is(err, ErrNoTitle) {
			t.Errorf("ExtractTitle(%q) error = %v, want ErrNoTitle", in, err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestFillTemplate - Placeholder substitution
// ---------------------------------------------------------------------------

func TestFillTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		tmpl    string
		title   string
		content string
		want    string
	}{
		{
			name:    "both placeholders",
			tmpl:    "<title>{{ Title }}</title><body>{{ Content }}</body>",
			title:   "T",
			content: "<div>c</div>",
			want:    "<title>T</title><body><div>c</div></body>",
		},
		{
			name:    "first occurrence only",
			tmpl:    "{{ Title }} {{ Title }}",
			title:   "T",
			content: "c",
			want:    "T {{ Title }}",
		},
		{
			name:    "no escaping",
			tmpl:    "{{ Title }}",
			title:   "a & <b>",
			content: "",
			want:    "a & <b>",
		},
		{
			name:    "no placeholders",
			tmpl:    "static",
			title:   "T",
			content: "c",
			want:    "static",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FillTemplate(tt.tmpl, tt.title, tt.content); got != tt.want {
				t.Errorf("FillTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}
