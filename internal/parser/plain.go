package parser

import (
	"strings"
)

// PlainParser reads text files, including the articles saved by the batch
// runner. The whole file is the body.
type PlainParser struct{}

// CanParse returns true (fallback parser)
func (p *PlainParser) CanParse(path string) bool {
	return true
}

// Parse parses a plain text file
func (p *PlainParser) Parse(source string, content []byte) (*Article, error) {
	return &Article{
		Source: source,
		Format: FormatPlain,
		Body:   strings.TrimSpace(strings.ToValidUTF8(string(content), "\uFFFD")),
	}, nil
}
