package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Article is the title and body text of one news article
type Article struct {
	ID          string // work-list URL_ID, or the file name without extension
	Source      string // path or URL the article was read from
	Format      Format
	Title       string
	Body        string
	Frontmatter map[string]interface{} // YAML frontmatter from markdown files
}

// Text joins title and body the way extracted articles are saved: the title,
// a blank line, then the body. An empty title is left out.
func (a *Article) Text() string {
	switch {
	case a.Title == "":
		return a.Body
	case a.Body == "":
		return a.Title
	default:
		return a.Title + "\n\n" + a.Body
	}
}

// Format represents the markup an article was read from
type Format int

const (
	FormatPlain Format = iota
	FormatMarkdown
	FormatHTML
)

func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatHTML:
		return "html"
	default:
		return "plain"
	}
}

// Parser defines the interface for article parsers
type Parser interface {
	Parse(source string, content []byte) (*Article, error)
	CanParse(path string) bool
}

// ParseFile reads and parses an article file using the parser for its extension
func ParseFile(path string) (*Article, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBytes(path, content)
}

// ParseBytes parses content as if it had been read from name
func ParseBytes(name string, content []byte) (*Article, error) {
	article, err := getParser(name).Parse(name, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	if article.ID == "" {
		article.ID = idFromName(name)
	}
	return article, nil
}

// getParser returns the appropriate parser for a file
func getParser(path string) Parser {
	switch GetFormat(path) {
	case FormatMarkdown:
		return &MarkdownParser{}
	case FormatHTML:
		return &HTMLParser{}
	default:
		return &PlainParser{}
	}
}

// GetFormat returns the Format for a given path
func GetFormat(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".md", ".markdown":
		return FormatMarkdown
	case ".html", ".htm", ".xhtml":
		return FormatHTML
	default:
		return FormatPlain
	}
}

// idFromName strips directory and extension; "-" (stdin) has no id
func idFromName(name string) string {
	if name == "" || name == "-" {
		return ""
	}
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ParseFrontmatter extracts YAML frontmatter from content between --- delimiters
// Returns the parsed frontmatter and the remaining content without frontmatter
func ParseFrontmatter(content []byte) (map[string]interface{}, []byte) {
	s := string(content)

	// Must start with ---
	if !strings.HasPrefix(s, "---") {
		return nil, content
	}

	rest := s[3:]
	endIdx := strings.Index(rest, "\n---")
	if endIdx == -1 {
		return nil, content
	}

	var frontmatter map[string]interface{}
	if err := yaml.Unmarshal([]byte(strings.TrimSpace(rest[:endIdx])), &frontmatter); err != nil {
		return nil, content
	}

	remaining := rest[endIdx+4:] // +4 for "\n---"
	remaining = strings.TrimPrefix(remaining, "\n")

	return frontmatter, []byte(remaining)
}

// collapseSpace replaces every run of whitespace with a single space
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
