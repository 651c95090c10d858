package pipeline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// BlockType classifies a block of markdown.
type BlockType int

// Block types.
const (
	BlockParagraph BlockType = iota
	BlockHeading
	BlockCode
	BlockQuote
	BlockUnorderedList
	BlockOrderedList
)

func (t BlockType) String() string {
	switch t {
	case BlockParagraph:
		return "paragraph"
	case BlockHeading:
		return "heading"
	case BlockCode:
		return "code"
	case BlockQuote:
		return "quote"
	case BlockUnorderedList:
		return "unordered list"
	case BlockOrderedList:
		return "ordered list"
	default:
		return fmt.Sprintf("BlockType(%d)", int(t))
	}
}

const codeFence = "```"

var (
	headingPattern     = regexp.MustCompile(`^#+ `)
	orderedItemPattern = regexp.MustCompile(`^\d\.`)
)

// SplitBlocks splits a document into blocks separated by blank lines.
// Lines inside a block keep their newlines.
func SplitBlocks(text string) []string {
	var blocks []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = current[:0]
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return blocks
}

// Classify determines the type of a block. The first matching rule wins:
// heading, code, quote, unordered list, ordered list, then paragraph.
func Classify(block string) BlockType {
	if headingPattern.MatchString(block) {
		return BlockHeading
	}
	if strings.HasPrefix(block, codeFence) && strings.HasSuffix(block, codeFence) {
		return BlockCode
	}

	lines := strings.Split(block, "\n")
	switch {
	case allLines(lines, isQuoteLine):
		return BlockQuote
	case allLines(lines, isUnorderedItem):
		return BlockUnorderedList
	case isOrderedList(lines):
		return BlockOrderedList
	default:
		return BlockParagraph
	}
}

func allLines(lines []string, pred func(string) bool) bool {
	for _, line := range lines {
		if !pred(line) {
			return false
		}
	}
	return true
}

func isQuoteLine(line string) bool {
	return strings.HasPrefix(line, ">")
}

func isUnorderedItem(line string) bool {
	return strings.HasPrefix(line, "* ") || strings.HasPrefix(line, "- ")
}

// isOrderedList requires line i to start with the digit i+1 followed by ".".
func isOrderedList(lines []string) bool {
	for i, line := range lines {
		if !orderedItemPattern.MatchString(line) || line[:1] != strconv.Itoa(i+1) {
			return false
		}
	}
	return true
}
