package collect

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"social-momentum-scanner/internal/logger"
	"social-momentum-scanner/internal/types"
)

// RedditParams configures a community collector.
type RedditParams struct {
	BaseURL   string // listing host serving classic markup, e.g. https://old.reddit.com
	Community string // community name without the r/ prefix
	UserAgent string
	Timeout   time.Duration
}

// RedditCollector scrapes one community's hot listing into Documents.
// Pinned posts are skipped, matching upstream semantics where announcements
// drown out signal.
type RedditCollector struct {
	params RedditParams
}

func NewRedditCollector(params RedditParams) *RedditCollector {
	if params.Timeout <= 0 {
		params.Timeout = 30 * time.Second
	}
	return &RedditCollector{params: params}
}

func (r *RedditCollector) Name() string { return "reddit:" + r.params.Community }

func (r *RedditCollector) ValidateCredentials(ctx context.Context) error {
	if r.params.UserAgent == "" {
		return errors.New("reddit collector requires a user agent")
	}
	if r.params.Community == "" {
		return errors.New("reddit collector requires a community")
	}
	if _, err := url.Parse(r.params.BaseURL); err != nil || r.params.BaseURL == "" {
		return fmt.Errorf("invalid base URL %q", r.params.BaseURL)
	}
	return nil
}

func (r *RedditCollector) Collect(ctx context.Context, limit int) ([]types.Document, error) {
	var docs []types.Document

	c := colly.NewCollector(
		colly.AllowedDomains(getDomain(r.params.BaseURL)),
		colly.MaxDepth(1),
		colly.Async(false),
	)
	c.SetRequestTimeout(r.params.Timeout)

	c.OnRequest(func(req *colly.Request) {
		req.Headers.Set("User-Agent", r.params.UserAgent)
	})

	c.OnHTML("div.thing", func(e *colly.HTMLElement) {
		if limit > 0 && len(docs) >= limit {
			return
		}
		if strings.Contains(e.Attr("class"), "stickied") {
			return
		}

		title := strings.TrimSpace(e.ChildText("a.title"))
		if title == "" {
			return
		}

		doc := types.Document{
			Source:       r.params.Community,
			Title:        title,
			Engagement:   parseCount(e.ChildText("div.score.unvoted")),
			CommentCount: parseCommentCount(e.DOM),
			Permalink:    r.params.BaseURL + e.Attr("data-permalink"),
		}
		if ts := e.ChildAttr("time", "datetime"); ts != "" {
			if t, err := time.Parse(time.RFC3339, ts); err == nil {
				doc.CreatedAt = t
			}
		}
		docs = append(docs, doc)
	})

	listURL := fmt.Sprintf("%s/r/%s/", r.params.BaseURL, r.params.Community)
	if err := c.Visit(listURL); err != nil {
		return nil, fmt.Errorf("visit %s: %w", listURL, err)
	}
	c.Wait()

	logger.Debug(ctx, "Reddit listing scraped",
		"community", r.params.Community, "documents", len(docs))
	return docs, nil
}

// parseCommentCount reads the trailing comment link, e.g. "128 comments".
func parseCommentCount(sel *goquery.Selection) int {
	text := strings.TrimSpace(sel.Find("a.comments").First().Text())
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0
	}
	n := parseCount(fields[0])
	if n < 0 {
		return 0
	}
	return n
}

// parseCount handles listing score text: plain integers, "1.2k"-style
// abbreviations, and the "•" placeholder for hidden scores (treated as 0).
func parseCount(s string) int {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "•" {
		return 0
	}

	mult := 1.0
	switch {
	case strings.HasSuffix(s, "k"):
		mult = 1_000
		s = strings.TrimSuffix(s, "k")
	case strings.HasSuffix(s, "m"):
		mult = 1_000_000
		s = strings.TrimSuffix(s, "m")
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return int(v * mult)
}

func getDomain(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	return u.Host
}
