package parser

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// strictPolicy drops every tag from raw HTML embedded in markdown, keeping
// the text between them.
var strictPolicy = bluemonday.StrictPolicy()

// MarkdownParser parses markdown articles
type MarkdownParser struct{}

// CanParse returns true if this parser can handle the file
func (p *MarkdownParser) CanParse(path string) bool {
	return GetFormat(path) == FormatMarkdown
}

// Parse parses a markdown article. The frontmatter title wins over the first
// heading; code blocks are not part of the body.
func (p *MarkdownParser) Parse(source string, content []byte) (*Article, error) {
	frontmatter, body := ParseFrontmatter(content)

	doc := goldmark.New().Parser().Parse(text.NewReader(body))

	title, _ := frontmatter["title"].(string)
	title = collapseSpace(title)
	blocks := p.extractBlocks(doc, body, title == "")
	if title == "" && len(blocks) > 0 && blocks[0].heading {
		title = blocks[0].text
		blocks = blocks[1:]
	}

	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, b.text)
	}

	article := &Article{
		Source:      source,
		Format:      FormatMarkdown,
		Title:       title,
		Body:        strings.Join(parts, "\n\n"),
		Frontmatter: frontmatter,
	}
	article.ID = frontmatterID(frontmatter["id"])
	return article, nil
}

// frontmatterID formats a scalar id; YAML reads `id: 37` as an int.
func frontmatterID(v interface{}) string {
	switch v.(type) {
	case nil, map[string]interface{}, []interface{}:
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

type block struct {
	text    string
	heading bool
}

// extractBlocks walks the AST and collects the text of every prose block.
// When wantTitle is set, headings before the first paragraph are candidates
// for the title and are flagged.
func (p *MarkdownParser) extractBlocks(doc ast.Node, source []byte, wantTitle bool) []block {
	var blocks []block

	add := func(s string, heading bool) {
		if s != "" {
			blocks = append(blocks, block{text: s, heading: heading && wantTitle && len(blocks) == 0})
		}
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			add(inlineText(node, source), true)
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph, *ast.TextBlock:
			add(inlineText(node, source), false)
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.ThematicBreak:
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock:
			add(sanitizeHTML(htmlBlockSource(node, source)), false)
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return blocks
}

// inlineText concatenates the text of inline children, turning line breaks
// into spaces. Images and raw inline HTML tags contribute nothing.
func inlineText(n ast.Node, source []byte) string {
	var sb strings.Builder

	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := c.(type) {
		case *ast.Text:
			sb.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(node.Value)
		case *ast.AutoLink:
			sb.Write(node.Label(source))
			return ast.WalkSkipChildren, nil
		case *ast.Image, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return collapseSpace(sb.String())
}

func htmlBlockSource(node *ast.HTMLBlock, source []byte) string {
	var buf bytes.Buffer
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	if node.HasClosure() {
		buf.Write(node.ClosureLine.Value(source))
	}
	return buf.String()
}

// sanitizeHTML reduces an HTML fragment to its visible text
func sanitizeHTML(fragment string) string {
	return collapseSpace(html.UnescapeString(strictPolicy.Sanitize(fragment)))
}
