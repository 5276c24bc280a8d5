// Package classify turns rendered document HTML into a normalized article
// record: title, lead and body, with navigation noise stripped out.
package classify

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document is the classified shape of one source file.
type Document struct {
	Title string
	Lead  string
	Body  string
}

const (
	shortParagraphMin = 20
	shortParagraphMax = 150

	leadMinLen = 100

	// Fraction of aligned character positions that must match for two texts
	// to count as restatements of each other.
	similarityThreshold = 0.8
)

var (
	emptyParagraphRe = regexp.MustCompile(`(?i)<p>(\s|&nbsp;|\x{00a0})*</p>`)
	interTagSpaceRe  = regexp.MustCompile(`>\s+<`)
	whitespaceRe     = regexp.MustCompile(`\s+`)
)

// Classify parses rendered HTML into {title, lead, body}. The filename is
// the last-resort title source; if a filename was supplied the title is
// never empty.
func Classify(html, filename string) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Document{}, fmt.Errorf("parse html: %w", err)
	}

	paragraphs := extractTexts(doc, "p")

	title := findTitle(doc, paragraphs, filename)
	lead := findLead(paragraphs, title)
	body := buildBody(doc, title, lead)

	return Document{Title: title, Lead: lead, Body: body}, nil
}

type element struct {
	selection *goquery.Selection
	text      string
}

func extractTexts(doc *goquery.Document, selector string) []element {
	var out []element
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		if text := normalizeText(s.Text()); text != "" {
			out = append(out, element{selection: s, text: text})
		}
	})
	return out
}

// normalizeText strips markup artifacts from element text: non-breaking
// spaces become regular spaces and surrounding whitespace is trimmed.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// findTitle applies the selection priority: first H1, else the first short
// paragraph, else the first H2, else a title derived from the filename.
func findTitle(doc *goquery.Document, paragraphs []element, filename string) string {
	if t := firstHeadingText(doc, "h1"); t != "" {
		return t
	}
	for _, p := range paragraphs {
		if n := len([]rune(p.text)); n >= shortParagraphMin && n <= shortParagraphMax {
			return p.text
		}
	}
	if t := firstHeadingText(doc, "h2"); t != "" {
		return t
	}
	return TitleFromFilename(filename)
}

func firstHeadingText(doc *goquery.Document, tag string) string {
	var found string
	doc.Find(tag).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if text := normalizeText(s.Text()); text != "" {
			found = text
			return false
		}
		return true
	})
	return found
}

// TitleFromFilename derives a display title from a source filename by
// stripping the extension and replacing separators with spaces.
func TitleFromFilename(filename string) string {
	if filename == "" {
		return ""
	}
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	name = normalizeText(name)
	if name == "" {
		return "Untitled"
	}
	return name
}

// findLead picks the first paragraph longer than 100 characters that is not
// the title and not a near-restatement of it. A document whose only long
// paragraph mirrors the title therefore ends up with an empty lead, which is
// the intended outcome.
func findLead(paragraphs []element, title string) string {
	for _, p := range paragraphs {
		if len([]rune(p.text)) <= leadMinLen {
			continue
		}
		if p.text == title {
			continue
		}
		if Similar(p.text, title) {
			continue
		}
		return p.text
	}
	return ""
}

// Similar reports whether more than 80% of aligned character positions match
// across the shorter of the two strings. This is a cheap positional
// heuristic, not edit distance: it is sensitive to position, not meaning,
// and downstream behavior depends on exactly that.
func Similar(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	ra, rb := []rune(a), []rune(b)
	n := len(ra)
	if len(rb) < n {
		n = len(rb)
	}
	same := 0
	for i := 0; i < n; i++ {
		if ra[i] == rb[i] {
			same++
		}
	}
	return float64(same)/float64(n) > similarityThreshold
}

// buildBody removes the title heading, the title and lead paragraphs, every
// anchor and image tag, then collapses empty paragraphs and redundant
// whitespace. The result never contains the title or lead as a standalone
// paragraph and never contains <a> or <img> regardless of the source.
func buildBody(doc *goquery.Document, title, lead string) string {
	if title != "" {
		removeFirstMatching(doc, "h1,h2,h3,h4,h5,h6", func(text string) bool { return text == title })
		removeFirstMatching(doc, "p", func(text string) bool { return text == title })
		// Headings that merely restate the title are duplicates too.
		doc.Find("h1").Each(func(_ int, s *goquery.Selection) {
			if Similar(normalizeText(s.Text()), title) {
				s.Remove()
			}
		})
	}
	if lead != "" {
		removeFirstMatching(doc, "p", func(text string) bool { return text == lead })
	}

	doc.Find("a").Remove()
	doc.Find("img").Remove()

	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if normalizeText(s.Text()) == "" {
			s.Remove()
		}
	})

	body, err := doc.Find("body").Html()
	if err != nil || body == "" {
		return ""
	}
	body = emptyParagraphRe.ReplaceAllString(body, "")
	body = whitespaceRe.ReplaceAllString(body, " ")
	body = interTagSpaceRe.ReplaceAllString(body, "><")
	return strings.TrimSpace(body)
}

func removeFirstMatching(doc *goquery.Document, selector string, match func(string) bool) {
	doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if match(normalizeText(s.Text())) {
			s.Remove()
			return false
		}
		return true
	})
}
