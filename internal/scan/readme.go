package scan

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeMaxBytes bounds how much of a README is parsed for a description.
const readmeMaxBytes = 64 * 1024

// readmeDescription extracts a one-line description from the project's
// README.md: the first paragraph when there is one, otherwise the first
// heading. Returns "" when no README exists or nothing usable is found.
func readmeDescription(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "README.md"))
	if err != nil {
		return ""
	}
	if len(data) > readmeMaxBytes {
		data = data[:readmeMaxBytes]
	}
	return firstProse(data)
}

func firstProse(source []byte) string {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var paragraph, heading string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Paragraph:
			if paragraph == "" {
				paragraph = nodeText(node, source)
			}
			if paragraph != "" {
				return ast.WalkStop, nil
			}
		case *ast.Heading:
			if heading == "" {
				heading = nodeText(node, source)
			}
		}
		return ast.WalkContinue, nil
	})

	if paragraph != "" {
		return firstLine(paragraph)
	}
	return firstLine(heading)
}

func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(source))
		default:
			// Inline containers (emphasis, links) keep their text children.
			b.WriteString(nodeText(child, source))
		}
	}
	return strings.TrimSpace(b.String())
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
