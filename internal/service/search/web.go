package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/maumcare/counseling-backend/internal/config"
)

// WebSearcher queries the DuckDuckGo HTML endpoint for support institutions.
// No API key is required. The payload it returns is a plain []map[string]any
// so callers normalize it like any other collaborator response.
type WebSearcher struct {
	client     *http.Client
	timeout    time.Duration
	maxResults int
}

// NewWebSearcher builds a searcher from the search configuration.
func NewWebSearcher(cfg config.SearchConfig) *WebSearcher {
	return &WebSearcher{
		client:     &http.Client{},
		timeout:    cfg.Timeout,
		maxResults: cfg.MaxResults,
	}
}

// Search issues one query and returns the raw result payload. Errors are
// returned as-is; the caller decides how to degrade.
func (s *WebSearcher) Search(ctx context.Context, query string) (any, error) {
	searchURL := fmt.Sprintf("https://html.duckduckgo.com/html/?q=%s", url.QueryEscape(query))

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "ko-KR,ko;q=0.9,en;q=0.5")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1MB limit
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	results, err := parseResultsHTML(string(body), s.maxResults)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// parseResultsHTML extracts search hits from the DuckDuckGo HTML page.
// Each hit becomes a loose record; the snippet usually carries the address
// or phone number for institution queries.
func parseResultsHTML(htmlContent string, maxResults int) ([]map[string]any, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	results := make([]map[string]any, 0, maxResults)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if len(results) >= maxResults {
			return
		}

		if n.Type == html.ElementNode && n.Data == "a" && hasClass(n, "result__a") {
			title := strings.TrimSpace(textContent(n))
			href := attrValue(n, "href")
			if title != "" && href != "" {
				results = append(results, map[string]any{
					"name":        title,
					"address":     "",
					"contact":     "",
					"sourceUrl":   resolveRedirect(href),
					"sourceTitle": title,
				})
			}
			return
		}

		if n.Type == html.ElementNode && hasClass(n, "result__snippet") {
			if len(results) > 0 {
				last := results[len(results)-1]
				if last["address"] == "" {
					last["address"] = strings.TrimSpace(textContent(n))
				}
			}
			return
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return results, nil
}

// resolveRedirect unwraps DuckDuckGo's /l/?uddg= redirect links.
func resolveRedirect(href string) string {
	if !strings.Contains(href, "uddg=") {
		return href
	}
	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := parsed.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key == "class" && strings.Contains(attr.Val, class) {
			return true
		}
	}
	return false
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}
