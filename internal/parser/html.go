package parser

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLParser extracts an article from a web page: the <title> text and the
// text of every <p> element, joined by single spaces.
type HTMLParser struct{}

// CanParse returns true if this parser can handle the file
func (p *HTMLParser) CanParse(path string) bool {
	return GetFormat(path) == FormatHTML
}

// Parse parses an HTML page
func (p *HTMLParser) Parse(source string, content []byte) (*Article, error) {
	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	title := findTitle(doc)
	if title == "" {
		title = findFirst(doc, atom.H1)
	}

	var paragraphs []string
	collectParagraphs(doc, &paragraphs)

	return &Article{
		Source: source,
		Format: FormatHTML,
		Title:  title,
		Body:   strings.Join(paragraphs, " "),
	}, nil
}

// findTitle extracts the <title> text
func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.DataAtom == atom.Title {
		return collapseSpace(nodeText(n))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findFirst(n *html.Node, a atom.Atom) string {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return collapseSpace(nodeText(n))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findFirst(c, a); t != "" {
			return t
		}
	}
	return ""
}

func collectParagraphs(n *html.Node, out *[]string) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Noscript, atom.Template:
			return
		case atom.P:
			if text := collapseSpace(nodeText(n)); text != "" {
				*out = append(*out, text)
			}
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectParagraphs(c, out)
	}
}

// nodeText concatenates the text nodes below n, skipping non-visible elements
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Noscript, atom.Template:
				return
			case atom.Br:
				sb.WriteByte(' ')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
