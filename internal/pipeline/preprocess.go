package pipeline

import (
	"regexp"
	"strings"
)

// byteOrderMark is stripped from the start of documents saved by some editors.
const byteOrderMark = "\uFEFF"

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Preprocess prepares raw markdown for block splitting.
func Preprocess(content string) string {
	content = strings.TrimPrefix(content, byteOrderMark)
	return normalizeLineEndings(content)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
