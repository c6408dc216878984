package extractor

import (
	"testing"
)

const fullPage = `<!doctype html>
<html><head>
<title>  Fallback
  Title </title>
<meta name="description" content="Plain description">
<meta property="og:title" content="OG Title">
<meta property="og:description" content="OG Description">
<meta property="og:image" content="/img/card.png">
<meta property="og:url" content="https://example.com/post">
<meta property="og:type" content="article">
<meta property="og:site_name" content="Example Blog">
<meta name="twitter:card" content="summary_large_image">
<meta property="twitter:title" content="Twitter Title">
<link rel="icon" href="/favicon.ico">
</head><body><p>hello</p></body></html>`

func TestExtractHTML(t *testing.T) {
	snap, err := ExtractHTML(fullPage, "https://example.com/post?id=1")
	if err != nil {
		t.Fatalf("ExtractHTML() error = %v", err)
	}

	wantOG := map[string]string{
		"og:title":       "OG Title",
		"og:description": "OG Description",
		"og:image":       "/img/card.png",
		"og:url":         "https://example.com/post",
		"og:type":        "article",
		"og:site_name":   "Example Blog",
	}
	if len(snap.OGTags) != len(wantOG) {
		t.Errorf("len(OGTags) = %d, want %d (%v)", len(snap.OGTags), len(wantOG), snap.OGTags)
	}
	for k, v := range wantOG {
		if got := snap.OGTags[k]; got != v {
			t.Errorf("OGTags[%q] = %q, want %q", k, got, v)
		}
	}

	if got := snap.TwitterTags["twitter:card"]; got != "summary_large_image" {
		t.Errorf("twitter:card = %q", got)
	}
	if got := snap.TwitterTags["twitter:title"]; got != "Twitter Title" {
		t.Errorf("twitter:title from property attribute = %q", got)
	}

	if snap.Title != "OG Title" {
		t.Errorf("Title = %q, want og:title", snap.Title)
	}
	if snap.Description != "OG Description" {
		t.Errorf("Description = %q, want og:description", snap.Description)
	}
	if snap.SiteName != "Example Blog" {
		t.Errorf("SiteName = %q", snap.SiteName)
	}
	if snap.Favicon != "https://example.com/favicon.ico" {
		t.Errorf("Favicon = %q", snap.Favicon)
	}
	if snap.URL != "https://example.com/post?id=1" {
		t.Errorf("URL = %q", snap.URL)
	}
}

func TestExtractFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		wantTtl  string
		wantDesc string
	}{
		{
			name:     "no meta tags at all",
			html:     `<html><head><title>Doc Title</title></head><body></body></html>`,
			wantTtl:  "Doc Title",
			wantDesc: "",
		},
		{
			name:     "description meta only",
			html:     `<html><head><title>T</title><meta name="description" content="D"></head></html>`,
			wantTtl:  "T",
			wantDesc: "D",
		},
		{
			name:     "empty document",
			html:     ``,
			wantTtl:  "",
			wantDesc: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := ExtractHTML(tt.html, "https://www.example.org:8443/a")
			if err != nil {
				t.Fatalf("ExtractHTML() error = %v", err)
			}
			if snap.OGTags == nil || snap.TwitterTags == nil {
				t.Fatal("tag maps must be non-nil")
			}
			if len(snap.OGTags) != 0 || len(snap.TwitterTags) != 0 {
				t.Errorf("expected empty maps, got og=%v twitter=%v", snap.OGTags, snap.TwitterTags)
			}
			if snap.Title != tt.wantTtl {
				t.Errorf("Title = %q, want %q", snap.Title, tt.wantTtl)
			}
			if snap.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", snap.Description, tt.wantDesc)
			}
			if snap.SiteName != "www.example.org" {
				t.Errorf("SiteName = %q, want hostname", snap.SiteName)
			}
		})
	}
}

func TestExtractDuplicateKeys(t *testing.T) {
	html := `<head>
<meta property="og:title" content="first">
<meta property="og:title" content="second">
<meta property="og:image" content="keep.png">
<meta property="og:image" content="   ">
<meta name="twitter:card" content="summary">
<meta property="twitter:card" content="summary_large_image">
</head>`

	snap, err := ExtractHTML(html, "https://example.com")
	if err != nil {
		t.Fatalf("ExtractHTML() error = %v", err)
	}

	if got := snap.OGTags["og:title"]; got != "second" {
		t.Errorf("og:title = %q, want last occurrence", got)
	}
	if got := snap.OGTags["og:image"]; got != "keep.png" {
		t.Errorf("og:image = %q, blank duplicate must not overwrite", got)
	}
	if got := snap.TwitterTags["twitter:card"]; got != "summary_large_image" {
		t.Errorf("twitter:card = %q, want last occurrence", got)
	}
}

func TestExtractTwitterKeyAttribute(t *testing.T) {
	html := `<head>
<meta name="description" property="twitter:description" content="mixed">
<meta name="twitter:site" property="og:site_name" content="@example">
</head>`

	snap, err := ExtractHTML(html, "https://example.com")
	if err != nil {
		t.Fatalf("ExtractHTML() error = %v", err)
	}

	if got := snap.TwitterTags["twitter:description"]; got != "mixed" {
		t.Errorf("twitter:description = %q, want key from property", got)
	}
	if _, ok := snap.TwitterTags["description"]; ok {
		t.Error("non-twitter name must not become a twitter key")
	}
	if got := snap.TwitterTags["twitter:site"]; got != "@example" {
		t.Errorf("twitter:site = %q", got)
	}
	if got := snap.OGTags["og:site_name"]; got != "@example" {
		t.Errorf("og:site_name = %q", got)
	}
}

func TestFaviconOrder(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "shortcut icon when no icon",
			html: `<link rel="apple-touch-icon" href="/apple.png"><link rel="Shortcut Icon" href="/short.ico">`,
			want: "https://example.com/short.ico",
		},
		{
			name: "apple touch icon last resort",
			html: `<link rel="stylesheet" href="/s.css"><link rel="apple-touch-icon" href="https://cdn.example.com/a.png">`,
			want: "https://cdn.example.com/a.png",
		},
		{
			name: "icon without href skipped",
			html: `<link rel="icon"><link rel="icon" href="fav.png">`,
			want: "https://example.com/dir/fav.png",
		},
		{
			name: "none",
			html: `<link rel="stylesheet" href="/s.css">`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := ExtractHTML("<head>"+tt.html+"</head>", "https://example.com/dir/page")
			if err != nil {
				t.Fatalf("ExtractHTML() error = %v", err)
			}
			if snap.Favicon != tt.want {
				t.Errorf("Favicon = %q, want %q", snap.Favicon, tt.want)
			}
		})
	}
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		ref, base, want string
	}{
		{"", "https://example.com", ""},
		{"/a.png", "https://example.com/x/y", "https://example.com/a.png"},
		{"b.png", "https://example.com/x/y", "https://example.com/x/b.png"},
		{"//cdn.example.com/c.png", "https://example.com", "https://cdn.example.com/c.png"},
		{"https://other.com/d.png", "https://example.com", "https://other.com/d.png"},
	}
	for _, tt := range tests {
		if got := ResolveURL(tt.ref, tt.base); got != tt.want {
			t.Errorf("ResolveURL(%q, %q) = %q, want %q", tt.ref, tt.base, got, tt.want)
		}
	}
}
