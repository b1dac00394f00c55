package parser

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dtnitsch/html-link-parser/models"
	"golang.org/x/net/html"
)

type Parser struct{}

// Parse builds a Document from raw HTML by tokenizing it, so tags are kept
// exactly as written: no tree repair, no renaming, nothing moved out of tables.
// The tokenizer is tolerant of malformed markup, so an error only surfaces on a
// read failure.
func (p *Parser) Parse(body []byte) (*models.Document, error) {
	doc := &models.Document{}
	z := html.NewTokenizer(bytes.NewReader(body))

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("failed to parse HTML: %w", err)
			}
			return doc, nil
		case html.StartTagToken, html.SelfClosingTagToken:
			token := z.Token()
			doc.Tags = append(doc.Tags, toTag(token))
			// only script and style hold raw text; markup inside noscript,
			// iframe, textarea and the like is still tokenized as tags
			if tt == html.StartTagToken && token.Data != "script" && token.Data != "style" {
				z.NextIsNotRawText()
			}
		}
	}
}

func toTag(token html.Token) models.Tag {
	tag := models.Tag{Name: token.Data}
	if len(token.Attr) == 0 {
		return tag
	}
	tag.Attrs = make(map[string]string, len(token.Attr))
	for _, a := range token.Attr {
		// a repeated attribute keeps its last value
		tag.Attrs[a.Key] = a.Val
	}
	return tag
}
