package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"fund-directory/internal/directory/config"
	"fund-directory/internal/directory/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const publishFixture = `{
  "generatedAt": "2026-10-18T06:00:00Z",
  "funds": [
    {"fundName": "Sequoia Fund XX", "firm": "Sequoia Capital", "amountUsdMillions": 1500, "announcementDate": "2026-10-01"},
    {"fundName": "Accel Growth VII", "firm": "Accel", "announcementDate": "2026-09-20"},
    {"fundName": "", "firm": "Nameless"}
  ]
}`

const duplicateGUIDFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Fund Directory</title>
    <link>http://localhost:8080</link>
    <description>dupes</description>
    <item><title>One</title><guid isPermaLink="false">accel-growth-vii</guid></item>
    <item><title>Two</title><guid isPermaLink="false">accel-growth-vii</guid></item>
  </channel>
</rss>`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func renderedFeed(t *testing.T) string {
	t.Helper()
	result, err := service.DecodeSnapshot([]byte(publishFixture))
	require.NoError(t, err)
	return service.RenderFeed(result.Snapshot, service.Channel{
		Title:   "Fund Directory",
		SiteURL: "http://localhost:8080",
		FeedURL: "http://localhost:8080/feed.xml",
	})
}

func TestReadForPublish(t *testing.T) {
	path := writeFile(t, "fund-directory.json", publishFixture)

	raw, result, err := readForPublish(path)

	require.NoError(t, err)
	assert.JSONEq(t, publishFixture, string(raw))
	assert.Len(t, result.Snapshot.Funds, 2)
	assert.Equal(t, 1, result.DroppedFunds)
}

func TestReadForPublish_RefusesInvalidSnapshot(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "html error page", content: "<html>502 Bad Gateway</html>"},
		{name: "missing generatedAt", content: `{"funds": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "fund-directory.json", tt.content)

			raw, result, err := readForPublish(path)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "refusing to publish")
			assert.Nil(t, raw)
			assert.Nil(t, result)
		})
	}
}

func TestReadForPublish_MissingFile(t *testing.T) {
	_, _, err := readForPublish(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewPublisher_UnknownTarget(t *testing.T) {
	publisher, release, err := newPublisher(&config.Config{}, "s3")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown publish target "s3"`)
	assert.Nil(t, publisher)
	assert.Nil(t, release)
}

func TestParseFeed_RenderedFeedFromFile(t *testing.T) {
	path := writeFile(t, "feed.xml", renderedFeed(t))

	feed, err := parseFeed(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "rss", feed.FeedType)
	require.Len(t, feed.Items, 2)
	assert.Equal(t, "sequoia-capital-sequoia-fund-xx", feed.Items[0].GUID)
	assert.NoError(t, uniqueGUIDs(feed))
}

func TestParseFeed_FromURL(t *testing.T) {
	doc := renderedFeed(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(doc))
	}))
	defer server.Close()

	feed, err := parseFeed(context.Background(), server.URL+"/feed.xml")

	require.NoError(t, err)
	assert.Len(t, feed.Items, 2)
	assert.NoError(t, uniqueGUIDs(feed))
}

func TestUniqueGUIDs_Duplicate(t *testing.T) {
	path := writeFile(t, "feed.xml", duplicateGUIDFeed)
	feed, err := parseFeed(context.Background(), path)
	require.NoError(t, err)

	err = uniqueGUIDs(feed)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate guid "accel-growth-vii"`)
}

func TestParseFeed_NotAFeed(t *testing.T) {
	path := writeFile(t, "feed.xml", "not a feed at all")

	_, err := parseFeed(context.Background(), path)
	assert.Error(t, err)
}
