package worklist

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
)

// FeedHeader is the header of a work list built from a feed.
var FeedHeader = []string{"URL_ID", "URL", "Title", "Published"}

// FromFeed downloads an RSS, Atom or JSON feed and lists its entries.
func FromFeed(ctx context.Context, feedURL, userAgent string) (*List, error) {
	fp := gofeed.NewParser()
	if userAgent != "" {
		fp.UserAgent = userAgent
	}

	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", feedURL, err)
	}
	return fromFeed(feed), nil
}

// ParseFeed lists the entries of a feed document.
func ParseFeed(r io.Reader) (*List, error) {
	feed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	return fromFeed(feed), nil
}

// fromFeed keeps entries that link somewhere. Entry ids are derived from the
// link so re-running a feed maps an article to the same saved file.
func fromFeed(feed *gofeed.Feed) *List {
	list := &List{Header: FeedHeader}
	seen := make(map[string]bool)

	for _, entry := range feed.Items {
		link := strings.TrimSpace(entry.Link)
		if link == "" || seen[link] {
			continue
		}
		seen[link] = true

		id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(link)).String()
		list.Items = append(list.Items, Item{
			ID:  id,
			URL: link,
			Row: []string{id, link, strings.TrimSpace(entry.Title), entry.Published},
		})
	}
	return list
}
