package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"extracted_articles/37.txt", FormatPlain},
		{"notes.md", FormatMarkdown},
		{"NOTES.MARKDOWN", FormatMarkdown},
		{"page.html", FormatHTML},
		{"page.htm", FormatHTML},
		{"page.xhtml", FormatHTML},
		{"README", FormatPlain},
		{"stdin.html", FormatHTML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := GetFormat(tt.path); got != tt.expected {
				t.Errorf("GetFormat(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format   Format
		expected string
	}{
		{FormatPlain, "plain"},
		{FormatMarkdown, "markdown"},
		{FormatHTML, "html"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.expected {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.expected)
		}
	}
}

func TestArticleText(t *testing.T) {
	tests := []struct {
		name     string
		article  Article
		expected string
	}{
		{"both", Article{Title: "Title", Body: "Body."}, "Title\n\nBody."},
		{"no title", Article{Body: "Body."}, "Body."},
		{"no body", Article{Title: "Title"}, "Title"},
		{"empty", Article{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.article.Text(); got != tt.expected {
				t.Errorf("Text() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPlainParser(t *testing.T) {
	article, err := ParseBytes("37.txt", []byte("  Markets rally\n\nStocks rose.\n"))
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	if article.Format != FormatPlain {
		t.Errorf("Format = %v, want plain", article.Format)
	}
	if article.ID != "37" {
		t.Errorf("ID = %q, want %q", article.ID, "37")
	}
	if article.Title != "" {
		t.Errorf("Title = %q, want empty", article.Title)
	}
	if want := "Markets rally\n\nStocks rose."; article.Body != want {
		t.Errorf("Body = %q, want %q", article.Body, want)
	}

	article, err = ParseBytes("bad.txt", []byte("a\xffb"))
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	if want := "a\uFFFDb"; article.Body != want {
		t.Errorf("Body = %q, want %q", article.Body, want)
	}
}

func TestMarkdownParser(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantID    string
		wantTitle string
		wantBody  string
	}{
		{
			name: "frontmatter title",
			content: "---\ntitle: Markets rally\nid: \"37\"\n---\n\n" +
				"Stocks rose\nsharply today.\n\n```\ncode here\n```\n\n---\n\nBonds fell.\n",
			wantID:    "37",
			wantTitle: "Markets rally",
			wantBody:  "Stocks rose sharply today.\n\nBonds fell.",
		},
		{
			name:     "numeric frontmatter id",
			content:  "---\nid: 37\n---\nStocks rose.\n",
			wantID:   "37",
			wantBody: "Stocks rose.",
		},
		{
			name:     "non-scalar frontmatter id",
			content:  "---\nid: [1, 2]\n---\nStocks rose.\n",
			wantID:   "story",
			wantBody: "Stocks rose.",
		},
		{
			name:      "leading heading",
			content:   "# Markets rally\n\nStocks *rose* today. ![chart](c.png)\n\n## Outlook\n\nMore gains.\n",
			wantID:    "story",
			wantTitle: "Markets rally",
			wantBody:  "Stocks rose today.\n\nOutlook\n\nMore gains.",
		},
		{
			name:     "heading after text",
			content:  "Intro para.\n\n# Heading\n",
			wantID:   "story",
			wantBody: "Intro para.\n\nHeading",
		},
		{
			name:     "html block",
			content:  "<div class=\"note\">\n<b>Breaking</b> &amp; news\n</div>\n\nAfter.\n",
			wantID:   "story",
			wantBody: "Breaking & news\n\nAfter.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			article, err := ParseBytes("story.md", []byte(tt.content))
			if err != nil {
				t.Fatalf("ParseBytes: %v", err)
			}
			if article.Format != FormatMarkdown {
				t.Errorf("Format = %v, want markdown", article.Format)
			}
			if article.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", article.ID, tt.wantID)
			}
			if article.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", article.Title, tt.wantTitle)
			}
			if article.Body != tt.wantBody {
				t.Errorf("Body = %q, want %q", article.Body, tt.wantBody)
			}
		})
	}
}

func TestHTMLParser(t *testing.T) {
	page := `<html><head><title> Markets
  rally </title><script>var x = "<p>no</p>";</script></head>
<body><h1>Headline</h1><p>Stocks <b>rose</b>.</p>
<div><p>Bonds<br>fell.</p></div>
<noscript><p>Enable JavaScript</p></noscript>
<p>   </p></body></html>`

	article, err := (&HTMLParser{}).Parse("https://example.com/story", []byte(page))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if article.Title != "Markets rally" {
		t.Errorf("Title = %q, want %q", article.Title, "Markets rally")
	}
	if want := "Stocks rose. Bonds fell."; article.Body != want {
		t.Errorf("Body = %q, want %q", article.Body, want)
	}
	if article.Source != "https://example.com/story" {
		t.Errorf("Source = %q", article.Source)
	}
}

func TestHTMLParserHeadingFallback(t *testing.T) {
	page := `<body><h1>Rates <em>hold</em></h1><p>The bank waited.</p></body>`

	article, err := (&HTMLParser{}).Parse("page.html", []byte(page))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if article.Title != "Rates hold" {
		t.Errorf("Title = %q, want %q", article.Title, "Rates hold")
	}
	if got := article.Text(); got != "Rates hold\n\nThe bank waited." {
		t.Errorf("Text() = %q", got)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blackassign0001.txt")
	if err := os.WriteFile(path, []byte("Title\n\nBody text."), 0o644); err != nil {
		t.Fatal(err)
	}

	article, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if article.ID != "blackassign0001" {
		t.Errorf("ID = %q, want %q", article.ID, "blackassign0001")
	}
	if article.Source != path {
		t.Errorf("Source = %q, want %q", article.Source, path)
	}
	if article.Text() != "Title\n\nBody text." {
		t.Errorf("Text() = %q", article.Text())
	}

	if _, err := ParseFile(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("ParseFile on a missing file should fail")
	}
}

func TestParseFrontmatter(t *testing.T) {
	fm, rest := ParseFrontmatter([]byte("---\ntitle: T\n---\nbody"))
	if fm["title"] != "T" {
		t.Errorf("title = %v, want T", fm["title"])
	}
	if string(rest) != "body" {
		t.Errorf("rest = %q, want %q", rest, "body")
	}

	fm, rest = ParseFrontmatter([]byte("no frontmatter"))
	if fm != nil || string(rest) != "no frontmatter" {
		t.Errorf("ParseFrontmatter without delimiters = %v, %q", fm, rest)
	}

	fm, _ = ParseFrontmatter([]byte("---\n: [broken\n---\nbody"))
	if fm != nil {
		t.Errorf("invalid YAML frontmatter = %v, want nil", fm)
	}
}

func TestHTMLToMarkdown(t *testing.T) {
	page := `<html><body><h1>Markets rally</h1>
<p>Stocks <strong>rose</strong> today. <a href="/more">More</a></p></body></html>`

	md, err := HTMLToMarkdown("https://example.com/story", []byte(page))
	if err != nil {
		t.Fatalf("HTMLToMarkdown: %v", err)
	}
	for _, want := range []string{"# Markets rally", "**rose**", "https://example.com/more"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}

	article, err := ParseBytes("story.md", []byte(md))
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}
	if article.Title != "Markets rally" {
		t.Errorf("Title = %q, want %q", article.Title, "Markets rally")
	}
	if !strings.HasPrefix(article.Body, "Stocks rose today. More") {
		t.Errorf("Body = %q", article.Body)
	}
}
