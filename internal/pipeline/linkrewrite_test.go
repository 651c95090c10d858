package pipeline

import "testing"

// ---------------------------------------------------------------------------
// TestRewriteMarkdownLinks - Relative .md links point at generated pages
// ---------------------------------------------------------------------------

func TestRewriteMarkdownLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "relative markdown link",
			in:   `<p>See <a href="guide/intro.md">intro</a></p>`,
			want: `<p>See <a href="guide/intro.html">intro</a></p>`,
		},
		{
			name: "fragment kept",
			in:   `<p><a href="intro.md#setup">setup</a></p>`,
			want: `<p><a href="intro.html#setup">setup</a></p>`,
		},
		{
			name: "upper case extension",
			in:   `<p><a href="../README.MD">readme</a></p>`,
			want: `<p><a href="../README.html">readme</a></p>`,
		},
		{
			name: "long extension",
			in:   `<p><a href="notes.markdown">notes</a></p>`,
			want: `<p><a href="notes.html">notes</a></p>`,
		},
		{
			name: "every link in a fragment",
			in:   `<ul><li><a href="a.md">a</a></li></ul><p><a href="b.md">b</a></p>`,
			want: `<ul><li><a href="a.html">a</a></li></ul><p><a href="b.html">b</a></p>`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteMarkdownLinks(tt.in)
			if err != nil {
				t.Fatalf("RewriteMarkdownLinks() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("RewriteMarkdownLinks() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestRewriteMarkdownLinks_Unchanged(t *testing.T) {
	t.Parallel()

	// Inputs are returned byte for byte, including markup the HTML
	// renderer would otherwise normalize.
	inputs := []string{
		`<p>no links at all</p>`,
		`<p><a href="https://example.com/readme.md">abs</a></p>`,
		`<p><a href="//cdn.example.com/x.md">scheme relative</a></p>`,
		`<p><a href="/docs/page.md">root relative</a></p>`,
		`<p><a href="#section">anchor</a></p>`,
		`<p><a href="page.html">already html</a><img alt="a" src="u.png"></p>`,
		`<p><a>no href</a></p>`,
	}

	for _, in := range inputs {
		got, err := RewriteMarkdownLinks(in)
		if err != nil {
			t.Fatalf("RewriteMarkdownLinks(%q) unexpected error: %v", in, err)
		}
		if got != in {
			t.Errorf("RewriteMarkdownLinks(%q) = %q, want input unchanged", in, got)
		}
	}
}

func TestRewriteMarkdownLinks_FullDocument(t *testing.T) {
	t.Parallel()

	in := `<!DOCTYPE html><html><head><title>T</title></head><body><a href="next.md">next</a></body></html>`
	want := `<!DOCTYPE html><html><head><title>T</title></head><body><a href="next.html">next</a></body></html>`

	got, err := RewriteMarkdownLinks(in)
	if err != nil {
		t.Fatalf("RewriteMarkdownLinks() unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("RewriteMarkdownLinks() =\n%q\nwant\n%q", got, want)
	}
}

func TestRewriteHref(t *testing.T) {
	t.Parallel()

	tests := []struct {
		href   string
		want   string
		wantOK bool
	}{
		{href: "a.md", want: "a.html", wantOK: true},
		{href: "dir/a.md?x=1", want: "dir/a.html?x=1", wantOK: true},
		{href: "a.txt", wantOK: false},
		{href: "mailto:someone@example.com", wantOK: false},
		{href: "", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := rewriteHref(tt.href)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("rewriteHref(%q) = (%q, %v), want (%q, %v)", tt.href, got, ok, tt.want, tt.wantOK)
		}
	}
}
