package md2site

import (
	"github.com/microcosm-cc/bluemonday"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

const htmlMediaType = "text/html"

// newMinifier keeps document and end tags so generated pages stay valid
// standalone documents.
func newMinifier() *minify.M {
	m := minify.New()
	m.Add(htmlMediaType, &html.Minifier{
		KeepDocumentTags: true,
		KeepEndTags:      true,
		KeepQuotes:       true,
	})
	return m
}

// newContentPolicy allows the markup the converter emits and strips the rest.
// Site links are the author's own, so they are not marked nofollow.
func newContentPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(false)
	return p
}

// newTitlePolicy removes every tag; the title ends up inside <title>.
func newTitlePolicy() *bluemonday.Policy {
	return bluemonday.StrictPolicy()
}
