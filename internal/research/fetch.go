// Package research gathers web-grounded context about the hiring company and
// condenses it into the brief the question generator consumes.
package research

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies the agent to fetched sites.
const DefaultUserAgent = "Mozilla/5.0 (compatible; InterviewNavigator/1.0)"

// maxPageText caps how much extracted text one page contributes to the prompt.
const maxPageText = 8000

// FetchError represents an error while fetching a company page.
type FetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Fetcher retrieves readable text from a URL. The HTTP implementation below
// is the only one in-tree; tests substitute their own.
type Fetcher interface {
	FetchText(ctx context.Context, pageURL string) (string, error)
}

// HTTPFetcher fetches pages over plain HTTP and extracts readable text.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// NewHTTPFetcher returns a fetcher with the default timeout and user agent.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		client:    &http.Client{Timeout: DefaultTimeout},
		userAgent: DefaultUserAgent,
	}
}

// FetchText retrieves the page and extracts its readable text.
func (f *HTTPFetcher) FetchText(ctx context.Context, pageURL string) (string, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &FetchError{URL: pageURL, Message: "invalid URL", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", &FetchError{URL: pageURL, Message: "failed to build request", Cause: err}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: pageURL, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{URL: pageURL, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", &FetchError{URL: pageURL, Message: "failed to read body", Cause: err}
	}

	return ExtractReadableText(string(body))
}

// ExtractReadableText strips scripts, styles, and navigation chrome from HTML
// and returns the remaining text, whitespace-normalized and length-capped.
func ExtractReadableText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, nav, header, footer, iframe").Remove()

	text := doc.Find("body").Text()
	if text == "" {
		text = doc.Text()
	}

	fields := strings.Fields(text)
	text = strings.Join(fields, " ")
	// Cap counts runes, not bytes, so multi-byte pages are never cut mid-rune.
	if utf8.RuneCountInString(text) > maxPageText {
		text = string([]rune(text)[:maxPageText])
	}
	return text, nil
}
