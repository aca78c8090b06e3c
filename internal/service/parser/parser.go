package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
	"github.com/gocolly/colly/v2/extensions"
)

// FetchError is returned when the target page could not be fetched. It
// keeps the response around so callers can surface a single user-facing
// message.
type FetchError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch failed (status %d): %v", e.StatusCode, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Message extracts the most specific failure message available: a JSON
// error field, then plain body text, then the status code.
func (e *FetchError) Message() string {
	var payload map[string]interface{}
	if json.Unmarshal(e.Body, &payload) == nil {
		for _, key := range []string{"error", "message"} {
			if msg, ok := payload[key].(string); ok && msg != "" {
				return msg
			}
		}
	}
	if text := strings.TrimSpace(string(e.Body)); text != "" && len(text) <= 200 {
		return text
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return e.Err.Error()
}

// PageData contains everything the category analyzers need from one page
type PageData struct {
	URL         string            `json:"url"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Lang        string            `json:"lang"`
	MetaTags    map[string]string `json:"meta_tags"`
	HasViewport bool              `json:"has_viewport"`
	H1          []string          `json:"h1"`
	H2          []string          `json:"h2"`
	H3          []string          `json:"h3"`
	Links       []Link            `json:"links"`
	Images      []Image           `json:"images"`
	Scripts     []Script          `json:"scripts"`
	Stylesheets int               `json:"stylesheets"`
	Buttons     []Button          `json:"buttons"`
	Forms       int               `json:"forms"`
	FormsWithLabels int           `json:"forms_with_labels"`
	InlineColors []string         `json:"inline_colors"`
	FontFamilies []string         `json:"font_families"`
	HasStructuredData bool        `json:"has_structured_data"`
	HTML        string            `json:"html"`
	TextContent string            `json:"text_content"`
	StatusCode  int               `json:"status_code"`
	LoadTime    time.Duration     `json:"load_time"`
	PageBytes   int               `json:"page_bytes"`
}

// Link represents a hyperlink on the page
type Link struct {
	URL        string `json:"url"`
	Text       string `json:"text"`
	IsInternal bool   `json:"is_internal"`
	NoFollow   bool   `json:"no_follow"`
}

// Image represents an image on the page
type Image struct {
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	Width  string `json:"width"`
	Height string `json:"height"`
	Lazy   bool   `json:"lazy"`
}

// Script represents a JavaScript file on the page
type Script struct {
	URL        string `json:"url"`
	IsAsync    bool   `json:"is_async"`
	IsDeferred bool   `json:"is_deferred"`
}

// Button represents a clickable control, used for tap-target checks
type Button struct {
	Text  string `json:"text"`
	Style string `json:"style"`
}

// ParseOptions allows customizing the fetch behavior
type ParseOptions struct {
	Timeout   time.Duration
	UserAgent string
}

// DefaultParseOptions returns the default fetch options
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		Timeout: 30 * time.Second,
	}
}

// ParsePage fetches a page and extracts the structured data the analyzers
// consume
func ParsePage(targetURL string, options ...ParseOptions) (*PageData, error) {
	opts := DefaultParseOptions()
	if len(options) > 0 {
		opts = options[0]
	}

	if !strings.HasPrefix(targetURL, "http://") && !strings.HasPrefix(targetURL, "https://") {
		targetURL = "https://" + targetURL
	}

	parsedURL, err := url.Parse(targetURL)
	if err != nil {
		return nil, err
	}

	data := &PageData{
		URL:      targetURL,
		MetaTags: make(map[string]string),
	}

	c := colly.NewCollector(
		colly.AllowedDomains(parsedURL.Hostname()),
		colly.MaxDepth(1),
	)
	if opts.UserAgent != "" {
		c.UserAgent = opts.UserAgent
	} else {
		extensions.RandomUserAgent(c)
	}
	c.SetRequestTimeout(opts.Timeout)

	c.OnHTML("a[href]", func(e *colly.HTMLElement) {
		href := e.Attr("href")
		if href == "" || href == "#" || strings.HasPrefix(href, "javascript:") {
			return
		}
		link := Link{
			URL:      e.Request.AbsoluteURL(href),
			Text:     strings.TrimSpace(e.Text),
			NoFollow: strings.Contains(e.Attr("rel"), "nofollow"),
		}
		if linkURL, err := url.Parse(link.URL); err == nil && linkURL.Hostname() == parsedURL.Hostname() {
			link.IsInternal = true
		}
		data.Links = append(data.Links, link)
	})

	c.OnHTML("img[src]", func(e *colly.HTMLElement) {
		data.Images = append(data.Images, Image{
			URL:    e.Request.AbsoluteURL(e.Attr("src")),
			Alt:    e.Attr("alt"),
			Width:  e.Attr("width"),
			Height: e.Attr("height"),
			Lazy:   e.Attr("loading") == "lazy",
		})
	})

	c.OnHTML("script[src]", func(e *colly.HTMLElement) {
		data.Scripts = append(data.Scripts, Script{
			URL:        e.Request.AbsoluteURL(e.Attr("src")),
			IsAsync:    e.Attr("async") != "",
			IsDeferred: e.Attr("defer") != "",
		})
	})

	c.OnHTML("link[rel='stylesheet'][href]", func(e *colly.HTMLElement) {
		data.Stylesheets++
	})

	start := time.Now()

	c.OnResponse(func(r *colly.Response) {
		data.StatusCode = r.StatusCode
		data.LoadTime = time.Since(start)
		data.PageBytes = len(r.Body)
		data.HTML = string(r.Body)
		extractDocument(data, r.Body)
	})

	var fetchErr error
	c.OnError(func(r *colly.Response, err error) {
		ferr := &FetchError{Err: err}
		if r != nil {
			ferr.StatusCode = r.StatusCode
			ferr.Body = r.Body
			data.StatusCode = r.StatusCode
		}
		fetchErr = ferr
	})

	if err := c.Visit(targetURL); err != nil {
		if fetchErr != nil {
			return nil, fetchErr
		}
		return nil, &FetchError{Err: err}
	}
	c.Wait()

	if fetchErr != nil {
		return nil, fetchErr
	}
	return data, nil
}

// extractDocument runs the goquery pass for everything colly's element
// callbacks don't cover
func extractDocument(data *PageData, body []byte) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return
	}

	data.Title = strings.TrimSpace(doc.Find("title").First().Text())
	data.Lang, _ = doc.Find("html").Attr("lang")

	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		name, _ := s.Attr("name")
		if name == "" {
			name, _ = s.Attr("property")
		}
		content, _ := s.Attr("content")
		if name != "" && content != "" {
			data.MetaTags[name] = content
			if name == "description" {
				data.Description = content
			}
			if name == "viewport" {
				data.HasViewport = true
			}
		}
	})

	doc.Find("h1").Each(func(_ int, s *goquery.Selection) {
		data.H1 = append(data.H1, strings.TrimSpace(s.Text()))
	})
	doc.Find("h2").Each(func(_ int, s *goquery.Selection) {
		data.H2 = append(data.H2, strings.TrimSpace(s.Text()))
	})
	doc.Find("h3").Each(func(_ int, s *goquery.Selection) {
		data.H3 = append(data.H3, strings.TrimSpace(s.Text()))
	})

	doc.Find("button, a.btn, input[type='submit'], [role='button']").Each(func(_ int, s *goquery.Selection) {
		style, _ := s.Attr("style")
		data.Buttons = append(data.Buttons, Button{
			Text:  strings.TrimSpace(s.Text()),
			Style: style,
		})
	})

	data.Forms = doc.Find("form").Length()
	doc.Find("form").Each(func(_ int, s *goquery.Selection) {
		if s.Find("label").Length() > 0 {
			data.FormsWithLabels++
		}
	})

	doc.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		style, _ := s.Attr("style")
		for _, decl := range strings.Split(style, ";") {
			decl = strings.TrimSpace(decl)
			if v, ok := strings.CutPrefix(decl, "color:"); ok {
				data.InlineColors = append(data.InlineColors, strings.TrimSpace(v))
			}
			if v, ok := strings.CutPrefix(decl, "font-family:"); ok {
				data.FontFamilies = append(data.FontFamilies, strings.TrimSpace(v))
			}
		}
	})

	data.HasStructuredData = doc.Find("script[type='application/ld+json']").Length() > 0
	data.TextContent = strings.TrimSpace(doc.Find("body").Text())
}
