package parser

import (
	"strings"
	"testing"
)

func TestParseDocumentOrder(t *testing.T) {
	p := &Parser{}
	doc, err := p.Parse([]byte(`<html><head><link href="a.css"></head>
<body><div><a href="/one"><img src="one.png"></a></div><script src="two.js"></script></body></html>`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var names []string
	for _, tag := range doc.Tags {
		names = append(names, tag.Name)
	}
	want := []string{"html", "head", "link", "body", "div", "a", "img", "script"}
	if len(names) != len(want) {
		t.Fatalf("Parse() tags = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("tag %d = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestParseAttributes(t *testing.T) {
	p := &Parser{}
	doc, err := p.Parse([]byte(`<a HREF="/About" href="/dup" data-x="1">x</a>`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var found bool
	for _, tag := range doc.Tags {
		if tag.Name != "a" {
			continue
		}
		found = true
		if v, ok := tag.Attr("href"); !ok || v != "/dup" {
			t.Errorf("Attr(href) = %q, %v; want %q, true", v, ok, "/dup")
		}
		if v, ok := tag.Attr("data-x"); !ok || v != "1" {
			t.Errorf("Attr(data-x) = %q, %v; want %q, true", v, ok, "1")
		}
		if _, ok := tag.Attr("src"); ok {
			t.Error("Attr(src) reported present on a tag without src")
		}
	}
	if !found {
		t.Fatal("no <a> tag parsed")
	}
}

func TestParseKeepsSourceOrder(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "noscript in head and body",
			in:   `<head><noscript><img src="pixel.gif"></noscript></head><body><noscript><a href="/nojs.php">x</a><img src="t.png"></noscript></body>`,
			want: []string{"head", "noscript", "img", "body", "noscript", "a", "img"},
		},
		{
			name: "stray tag inside table",
			in:   `<table><tr><td><img src="1.png"></td></tr><img src="2.png"></table>`,
			want: []string{"table", "tr", "td", "img", "img"},
		},
		{
			name: "image is not renamed",
			in:   `<image src="4.png"><img src="5.png">`,
			want: []string{"image", "img"},
		},
		{
			name: "script body is text",
			in:   `<script>var s = '<img src="x.png">';</script><a href="/y">`,
			want: []string{"script", "a"},
		},
		{
			name: "self closing",
			in:   `<link href="a.css"/><br/>`,
			want: []string{"link", "br"},
		},
	}

	p := &Parser{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := p.Parse([]byte(tt.in))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			var names []string
			for _, tag := range doc.Tags {
				names = append(names, tag.Name)
			}
			if strings.Join(names, ",") != strings.Join(tt.want, ",") {
				t.Errorf("Parse() tags = %v, want %v", names, tt.want)
			}
		})
	}
}

func TestParseTableSrcOrder(t *testing.T) {
	p := &Parser{}
	doc, err := p.Parse([]byte(`<table><tr><td><img src="1.png"></td></tr><img src="2.png"></table>`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var srcs []string
	for _, tag := range doc.Tags {
		if v, ok := tag.Attr("src"); ok {
			srcs = append(srcs, v)
		}
	}
	if strings.Join(srcs, ",") != "1.png,2.png" {
		t.Errorf("src values = %v, want [1.png 2.png]", srcs)
	}
}

func TestParseToleratesGarbage(t *testing.T) {
	p := &Parser{}
	inputs := [][]byte{
		nil,
		[]byte("not html at all"),
		[]byte("<a href='x'><div></span></a"),
		{0xff, 0xfe, 0x00, 0x3c},
	}
	for _, in := range inputs {
		if _, err := p.Parse(in); err != nil {
			t.Errorf("Parse(%q) error = %v", in, err)
		}
	}
}
