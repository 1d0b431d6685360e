package notes

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Preview returns a short single-line summary of the note text for list
// rows. The text is treated as markdown: headings are skipped and the first
// paragraphs are joined, then the result is truncated to maxLen.
func (n Note) Preview(maxLen int) string {
	source := []byte(n.Text)
	reader := text.NewReader(source)
	parser := goldmark.DefaultParser()
	doc := parser.Parse(reader)

	var preview strings.Builder
	lineCount := 0
	maxLines := 2

	ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		if node.Kind() == ast.KindHeading {
			return ast.WalkSkipChildren, nil
		}

		if node.Kind() == ast.KindParagraph {
			if lineCount >= maxLines {
				return ast.WalkStop, nil
			}

			para := string(node.Text(source))
			if para != "" {
				if preview.Len() > 0 {
					preview.WriteString(" ")
				}
				preview.WriteString(para)
				lineCount++
			}

			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	previewText := preview.String()
	if previewText == "" {
		// Heading-only or otherwise empty after parsing: fall back to the
		// raw text collapsed onto one line.
		previewText = strings.Join(strings.Fields(n.Text), " ")
	}

	if maxLen > 3 {
		if runes := []rune(previewText); len(runes) > maxLen {
			previewText = string(runes[:maxLen-3]) + "..."
		}
	}

	return previewText
}
