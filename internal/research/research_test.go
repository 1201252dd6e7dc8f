package research

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/interview-navigator/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	response string
	err      error
	prompt   string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

type fakeFetcher struct {
	pages map[string]string
}

func (f *fakeFetcher) FetchText(_ context.Context, pageURL string) (string, error) {
	text, ok := f.pages[pageURL]
	if !ok {
		return "", &FetchError{URL: pageURL, Message: "unexpected status 404"}
	}
	return text, nil
}

func TestExtractReadableText_StripsChrome(t *testing.T) {
	html := `<html><head><style>body{color:red}</style></head>
	<body>
		<nav>Home About</nav>
		<script>alert(1)</script>
		<main><p>We build   rockets.</p><p>Join us.</p></main>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractReadableText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "We build rockets.")
	assert.Contains(t, text, "Join us.")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color:red")
	assert.NotContains(t, text, "Home About")
	assert.NotContains(t, text, "Copyright")
}

func TestExtractReadableText_CapsLength(t *testing.T) {
	html := "<body><p>" + strings.Repeat("word ", 5000) + "</p></body>"
	text, err := ExtractReadableText(html)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(text), maxPageText)
}

func TestExtractReadableText_CapsOnRuneBoundary(t *testing.T) {
	html := "<body><p>" + strings.Repeat("가", maxPageText+500) + "</p></body>"
	text, err := ExtractReadableText(html)
	require.NoError(t, err)

	assert.True(t, utf8.ValidString(text))
	assert.Equal(t, maxPageText, utf8.RuneCountInString(text))
}

func TestHTTPFetcher_FetchesAndExtracts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "<html><body><p>Our mission is bold.</p></body></html>")
	}))
	defer srv.Close()

	text, err := NewHTTPFetcher().FetchText(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Our mission is bold.", text)
}

func TestHTTPFetcher_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewHTTPFetcher().FetchText(context.Background(), srv.URL)
	require.Error(t, err)

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Message, "503")
}

func TestHTTPFetcher_InvalidURL(t *testing.T) {
	_, err := NewHTTPFetcher().FetchText(context.Background(), "not a url")
	assert.Error(t, err)
}

func TestRun_PoolsPagesAndParsesBrief(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{
		"https://acme.example/about":   "Acme builds rockets.",
		"https://acme.example/careers": "We hire owners.",
	}}
	client := &fakeClient{response: `{
		"company_name": "Acme",
		"values": ["ownership"],
		"talent_profile": ["self-directed engineers"],
		"recent_projects": ["reusable booster"],
		"summary": "Acme builds rockets and hires owners."
	}`}

	result, err := Run(context.Background(), fetcher, client, "Acme",
		[]string{"https://acme.example/about", "https://acme.example/careers"})
	require.NoError(t, err)

	assert.Equal(t, "Acme", result.CompanyName)
	assert.Equal(t, []string{"ownership"}, result.Values)
	assert.Len(t, result.SourceURLs, 2)
	assert.Contains(t, client.prompt, "Acme builds rockets.")
	assert.Contains(t, client.prompt, "We hire owners.")
}

func TestRun_SkipsFailedPages(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{
		"https://acme.example/about": "Acme builds rockets.",
	}}
	client := &fakeClient{response: `{"summary": "ok"}`}

	result, err := Run(context.Background(), fetcher, client, "Acme",
		[]string{"https://acme.example/about", "https://acme.example/missing"})
	require.NoError(t, err)

	assert.Equal(t, []string{"https://acme.example/about"}, result.SourceURLs)
	assert.Equal(t, "Acme", result.CompanyName, "company name falls back when extraction omits it")
}

func TestRun_AllPagesFailed(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{}}
	_, err := Run(context.Background(), fetcher, &fakeClient{}, "Acme", []string{"https://acme.example/a"})
	assert.Error(t, err)
}

func TestRun_NoSeeds(t *testing.T) {
	_, err := Run(context.Background(), &fakeFetcher{}, &fakeClient{}, "Acme", nil)
	assert.Error(t, err)
}

func TestRun_BadJSONFromModel(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{"https://acme.example/a": "text"}}
	client := &fakeClient{response: "not json"}

	_, err := Run(context.Background(), fetcher, client, "Acme", []string{"https://acme.example/a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse research JSON")
}
