package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

// oEmbedResponse is the subset of the oEmbed payload we care about
type oEmbedResponse struct {
	ThumbnailURL string `json:"thumbnail_url"`
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
}

// Thumbnail is the reduced metadata returned to API clients
type Thumbnail struct {
	Thumbnail string `json:"thumbnail"`
	Title     string `json:"title"`
	Author    string `json:"author"`
}

// OEmbedClient fetches public oEmbed metadata for supported video platforms.
// Pure passthrough: no caching, no retries, no rate limiting. A transient
// upstream failure is the caller's problem to surface.
type OEmbedClient struct {
	HTTPClient *http.Client
	Endpoints  map[string]string
}

// NewOEmbedClient returns a client covering the platforms the site embeds.
func NewOEmbedClient() *OEmbedClient {
	return &OEmbedClient{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Endpoints: map[string]string{
			"tiktok":  "https://www.tiktok.com/oembed",
			"youtube": "https://www.youtube.com/oembed",
		},
	}
}

// SupportedPlatform reports whether the client knows an oEmbed endpoint for
// the given platform name.
func (c *OEmbedClient) SupportedPlatform(platform string) bool {
	_, ok := c.Endpoints[platform]
	return ok
}

// FetchThumbnail calls the platform's oEmbed endpoint for videoURL and
// reduces the response to {thumbnail, title, author}.
func (c *OEmbedClient) FetchThumbnail(ctx context.Context, platform, videoURL string) (*Thumbnail, error) {
	endpoint, ok := c.Endpoints[platform]
	if !ok {
		return nil, fmt.Errorf("unsupported platform: %s", platform)
	}

	oembedURL := fmt.Sprintf("%s?format=json&url=%s", endpoint, url.QueryEscape(videoURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, oembedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build oEmbed request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s data: %w", platform, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Warn().
			Str("platform", platform).
			Int("status", resp.StatusCode).
			Str("body", string(body)).
			Msg("oEmbed endpoint returned non-200 status")
		return nil, fmt.Errorf("failed to fetch %s data: status %d", platform, resp.StatusCode)
	}

	var data oEmbedResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode %s oEmbed response: %w", platform, err)
	}

	return &Thumbnail{
		Thumbnail: data.ThumbnailURL,
		Title:     data.Title,
		Author:    data.AuthorName,
	}, nil
}
