package lyric

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/tidwall/gjson"
	"golang.org/x/text/unicode/norm"
)

const (
	itunesNamespace = "http://music.apple.com/lyric-ttml-internal"
	itunesPrefix    = "itunes"

	envelopePath = "data.0.attributes.ttmlLocalizations"
)

var (
	embeddedTTMLRegex = regexp.MustCompile(`(?s)<tt.*?</tt>`)
	xmlPrologRegex    = regexp.MustCompile(`^<\?xml.*?\?>`)

	transliterationExpr = xpath.MustCompile(`//*[local-name()='transliteration']`)
	textExpr            = xpath.MustCompile(`.//*[local-name()='text']`)
	paragraphExpr       = xpath.MustCompile(`//*[local-name()='p']`)
	spanExpr            = xpath.MustCompile(`.//*[local-name()='span']`)
)

// ExtractFile reads a TTML (or JSON-enveloped TTML) file and extracts its
// timed spans.
func ExtractFile(path string) ([]Span, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lyric file: %w", err)
	}

	spans, err := Extract(data)
	if err != nil {
		if fe, ok := err.(*FormatError); ok {
			fe.Path = path
		}
		return nil, err
	}
	return spans, nil
}

// Extract returns the timed spans of TTML markup in document order. When the
// document carries a transliteration, its spans are used instead of the
// body's.
func Extract(data []byte) ([]Span, error) {
	markup, err := unwrapEnvelope(string(bytes.TrimPrefix(data, []byte("\ufeff"))))
	if err != nil {
		return nil, err
	}

	markup = strings.TrimSpace(xmlPrologRegex.ReplaceAllString(markup, ""))

	doc, err := xmlquery.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, &FormatError{Reason: "invalid TTML markup", Err: err}
	}
	if firstElement(doc) == nil {
		return nil, &FormatError{Reason: "TTML document has no root element"}
	}

	if trans := xmlquery.QuerySelector(doc, transliterationExpr); trans != nil {
		var spans []Span
		for _, text := range xmlquery.QuerySelectorAll(trans, textExpr) {
			id, ok := attr(text, "", "", "for")
			spans = appendSpans(spans, text, id, ok)
		}
		return spans, nil
	}

	var spans []Span
	for _, p := range xmlquery.QuerySelectorAll(doc, paragraphExpr) {
		id, ok := attr(p, itunesNamespace, itunesPrefix, "key")
		spans = appendSpans(spans, p, id, ok)
	}
	return spans, nil
}

// pulls the TTML document out of a JSON envelope, or returns content as is
func unwrapEnvelope(content string) (string, error) {
	if !strings.HasPrefix(strings.TrimSpace(content), "{") {
		return content, nil
	}

	if !gjson.Valid(content) {
		return "", &FormatError{Reason: "invalid JSON envelope"}
	}

	if payload := gjson.Get(content, envelopePath); payload.Type == gjson.String {
		return payload.String(), nil
	}

	if match := embeddedTTMLRegex.FindString(content); match != "" {
		return match, nil
	}

	return "", &FormatError{Reason: "could not find TTML content in JSON"}
}

func appendSpans(spans []Span, line *xmlquery.Node, lineID string, hasLineID bool) []Span {
	for _, n := range xmlquery.QuerySelectorAll(line, spanExpr) {
		text := leadingText(n)
		begin := n.SelectAttr("begin")
		end := n.SelectAttr("end")
		if text == "" || begin == "" || end == "" {
			continue
		}

		spans = append(spans, Span{
			Start:      ParseTime(begin),
			End:        ParseTime(end),
			Text:       norm.NFC.String(text),
			LineID:     lineID,
			HasLineID:  hasLineID,
			SpaceAfter: followedBySpace(n),
		})
	}
	return spans
}

// text before the first child element
func leadingText(n *xmlquery.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			break
		}
		if c.Type == xmlquery.TextNode || c.Type == xmlquery.CharDataNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

// reports whether whitespace (or the end of the line) follows n, climbing
// out of nested spans
func followedBySpace(n *xmlquery.Node) bool {
	for n.NextSibling == nil {
		if n.Parent == nil || n.Parent.Data != "span" {
			return true
		}
		n = n.Parent
	}

	next := n.NextSibling
	if next.Type != xmlquery.TextNode && next.Type != xmlquery.CharDataNode {
		return false
	}
	r, _ := utf8.DecodeRuneInString(next.Data)
	return unicode.IsSpace(r)
}

// attribute lookup by local name, matching the namespace by URI or by its
// conventional prefix. An empty namespace matches unqualified attributes.
func attr(n *xmlquery.Node, namespace, prefix, local string) (string, bool) {
	for _, a := range n.Attr {
		if a.Name.Local != local {
			continue
		}
		if namespace == "" {
			if a.Name.Space == "" {
				return a.Value, true
			}
			continue
		}
		if a.NamespaceURI == namespace || a.Name.Space == namespace || a.Name.Space == prefix {
			return a.Value, true
		}
	}
	return "", false
}

func firstElement(doc *xmlquery.Node) *xmlquery.Node {
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return c
		}
	}
	return nil
}
