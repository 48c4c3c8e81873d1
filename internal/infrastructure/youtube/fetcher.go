package youtube

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Conte777/tubedigest/internal/infrastructure/metrics"
	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

// ChannelMetadata is the display data scraped from a channel page.
// Values are stored as-is.
type ChannelMetadata struct {
	Name         string
	Description  string
	ThumbnailURL string
	CanonicalURL string
}

// Fetcher reads OpenGraph metadata from public channel pages
type Fetcher struct {
	client    *http.Client
	userAgent string
	timeout   time.Duration
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// NewFetcher wires an HTTP client; every fetch is bounded by timeout
func NewFetcher(client *http.Client, userAgent string, timeout time.Duration, m *metrics.Metrics, logger zerolog.Logger) *Fetcher {
	if client == nil {
		client = &http.Client{}
	}
	return &Fetcher{
		client:    client,
		userAgent: userAgent,
		timeout:   timeout,
		metrics:   m,
		logger:    logger,
	}
}

// FetchChannel downloads pageURL and extracts the channel metadata
func (f *Fetcher) FetchChannel(ctx context.Context, pageURL string) (ChannelMetadata, error) {
	start := time.Now()

	meta, err := f.fetch(ctx, pageURL)

	if f.metrics != nil {
		f.metrics.MetadataFetchDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			f.metrics.MetadataFetchErrors.Inc()
		}
	}
	if err != nil {
		f.logger.Warn().Err(err).Str("url", pageURL).Dur("elapsed", time.Since(start)).Msg("channel metadata fetch failed")
		return ChannelMetadata{}, err
	}

	f.logger.Debug().Str("url", pageURL).Str("name", meta.Name).Msg("channel metadata fetched")
	return meta, nil
}

func (f *Fetcher) fetch(ctx context.Context, pageURL string) (ChannelMetadata, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	doc, err := f.fetchDocument(ctx, pageURL)
	if err != nil {
		return ChannelMetadata{}, err
	}

	meta := ChannelMetadata{
		Name:         firstNonEmpty(metaContent(doc, "og:title"), strings.TrimSpace(doc.Find("title").First().Text())),
		Description:  firstNonEmpty(metaContent(doc, "og:description"), metaNamed(doc, "description")),
		ThumbnailURL: metaContent(doc, "og:image"),
		CanonicalURL: firstNonEmpty(attr(doc, `link[rel="canonical"]`, "href"), metaContent(doc, "og:url")),
	}
	meta.Name = strings.TrimSuffix(meta.Name, " - YouTube")

	if meta.Name == "" {
		return ChannelMetadata{}, fmt.Errorf("no channel title found at %s", pageURL)
	}
	return meta, nil
}

func (f *Fetcher) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	req.Header.Set("Accept-Language", "en")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("channel page returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return doc, nil
}

func metaContent(doc *goquery.Document, property string) string {
	return attr(doc, fmt.Sprintf(`meta[property=%q]`, property), "content")
}

func metaNamed(doc *goquery.Document, name string) string {
	return attr(doc, fmt.Sprintf(`meta[name=%q]`, name), "content")
}

func attr(doc *goquery.Document, selector, name string) string {
	v, _ := doc.Find(selector).First().Attr(name)
	return strings.TrimSpace(v)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
