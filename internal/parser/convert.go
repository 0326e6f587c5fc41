package parser

import (
	"strings"
	"sync"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
)

var mdConverter = sync.OnceValue(func() *converter.Converter {
	return converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
})

// HTMLToMarkdown converts a web page to markdown, resolving relative links
// against source. The result parses back with MarkdownParser.
func HTMLToMarkdown(source string, content []byte) (string, error) {
	var opts []converter.ConvertOptionFunc
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		opts = append(opts, converter.WithDomain(source))
	}
	md, err := mdConverter().ConvertString(string(content), opts...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}
