// ABOUTME: Static site artifacts accompanying the feeds in the output directory
// ABOUTME: index.html feed listing, sitemap.xml and robots.txt

package rss

import (
	"encoding/xml"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
)

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>HN RSS Translator - Available Feeds</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; max-width: 800px; margin: 40px auto; padding: 20px; line-height: 1.6; }
        h1 { color: #ff6600; }
        .feed-list { list-style: none; padding: 0; }
        .feed-item { margin: 15px 0; padding: 15px; background: #f6f6f6; border-radius: 8px; }
        .feed-link { color: #0066cc; text-decoration: none; font-weight: 500; }
        .feed-link:hover { text-decoration: underline; }
        .feed-url { color: #666; font-size: 0.9em; margin-top: 5px; word-break: break-all; }
        .updated { color: #666; font-size: 0.9em; margin-top: 20px; }
    </style>
</head>
<body>
    <h1>🗞️ HN RSS Translator</h1>
    <p>Hacker News articles automatically summarized and translated into multiple languages.</p>

    <h2>Available Feeds</h2>
    <ul class="feed-list">
%s    </ul>

    <p class="updated">Last updated: %s</p>
</body>
</html>
`

// WriteIndex saves an index.html page listing every configured feed.
func (s *Service) WriteIndex(languages []Language, outputDir string) error {
	var entries strings.Builder
	for _, lang := range languages {
		name := lang.Name
		if name == "" {
			name = strings.ToUpper(lang.Code)
		}
		fmt.Fprintf(&entries, `        <li class="feed-item">
            <a href="%s" class="feed-link">📡 %s</a>
            <div class="feed-url">%s/%s</div>
        </li>
`, html.EscapeString(lang.File()), html.EscapeString(name), html.EscapeString(s.baseURL), html.EscapeString(lang.File()))
	}

	content := fmt.Sprintf(indexTemplate, entries.String(),
		s.now().UTC().Format("2006-01-02 15:04:05 UTC"))
	return os.WriteFile(filepath.Join(outputDir, "index.html"), []byte(content), 0o644)
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	NS      string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
}

// WriteSitemap saves a sitemap.xml covering the index page and every feed.
func (s *Service) WriteSitemap(languages []Language, outputDir string) error {
	lastMod := s.now().UTC().Format("2006-01-02")

	urls := []sitemapURL{
		{Loc: s.baseURL + "/", LastMod: lastMod, ChangeFreq: "hourly"},
	}
	for _, lang := range languages {
		urls = append(urls, sitemapURL{
			Loc:        s.baseURL + "/" + lang.File(),
			LastMod:    lastMod,
			ChangeFreq: "hourly",
		})
	}

	body, err := xml.MarshalIndent(sitemapURLSet{
		NS:   "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: urls,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sitemap: %w", err)
	}

	content := append([]byte(xml.Header), append(body, '\n')...)
	return os.WriteFile(filepath.Join(outputDir, "sitemap.xml"), content, 0o644)
}

// WriteRobots saves a robots.txt pointing crawlers at the sitemap.
func (s *Service) WriteRobots(outputDir string) error {
	content := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", s.baseURL)
	return os.WriteFile(filepath.Join(outputDir, "robots.txt"), []byte(content), 0o644)
}
