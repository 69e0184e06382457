package genius

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// fetchLyrics downloads a song page and extracts its lyrics text, retrying
// with exponential backoff when the page fetch fails.
func (c *Client) fetchLyrics(ctx context.Context, songURL string) (string, error) {
	var lastErr error
	cooldown := c.opts.RetryCooldown

	for tries := 0; tries < c.opts.MaxRetries; tries++ {
		if tries > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(cooldown):
			}
			cooldown *= 2
		}

		resp, err := c.web.R().SetContext(ctx).Get(songURL)
		if err != nil {
			lastErr = err
			continue
		}
		if resp.IsError() {
			lastErr = fmt.Errorf("HTTP %s", resp.Status())
			continue
		}

		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
		if err != nil {
			return "", fmt.Errorf("parsing song page: %w", err)
		}

		lyrics := extractLyrics(doc)
		if lyrics == "" {
			return "", fmt.Errorf("no lyrics container on page %s", songURL)
		}
		return lyrics, nil
	}

	return "", fmt.Errorf("fetching %s failed after %d attempts: %w", songURL, c.opts.MaxRetries, lastErr)
}

// extractLyrics pulls the lyrics text out of a Genius song page document.
//
// Genius renders lyrics inside one or more div[data-lyrics-container]
// elements, with <br> elements for line breaks. The <br>s are replaced with
// newlines before taking the text so line structure survives.
func extractLyrics(doc *goquery.Document) string {
	containers := doc.Find(`div[data-lyrics-container="true"]`)
	if containers.Length() == 0 {
		return ""
	}

	containers.Find("br").Each(func(_ int, br *goquery.Selection) {
		br.ReplaceWithHtml("\n")
	})

	var parts []string
	containers.Each(func(_ int, container *goquery.Selection) {
		parts = append(parts, container.Text())
	})

	return strings.TrimSpace(strings.Join(parts, "\n"))
}
