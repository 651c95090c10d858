package pipeline

import "strings"

// Template placeholders.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// FillTemplate substitutes the first occurrence of each placeholder,
// title first. Neither value is escaped.
func FillTemplate(tmpl, title, content string) string {
	page := strings.Replace(tmpl, TitlePlaceholder, title, 1)
	return strings.Replace(page, ContentPlaceholder, content, 1)
}
