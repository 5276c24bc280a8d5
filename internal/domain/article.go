package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Article statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

type Article struct {
	ID               int64
	ArticleID        string // e.g. "ART1735689600123_a9f3c", immutable
	Title            string
	TitleHotnews     string
	TitleSocial      string
	TitleSeo         string
	Lead             string
	Body             string // HTML without title, lead, anchors and images
	Author           string
	Sources          []string
	Categories       []string
	Tags             []string
	Status           string
	ImportedFrom     string // "manual", "google_drive_incremental", ...
	DrivePath        string // "JULY 2025/Some Article"
	OriginalFilename string
	ImageFilename    *string
	PhotoAuthor      *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewArticleID generates a unique article identifier. The millisecond
// timestamp plus a random suffix keeps ids from colliding within a run.
func NewArticleID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:5]
	return fmt.Sprintf("ART%d_%s", time.Now().UnixMilli(), suffix)
}

// PhotoCredit derives the photo author from an image filename. The newsroom
// convention is that the last underscore-separated segment of the base name
// carries the credit, e.g. "sunset_beach_Pexels.jpg" -> "Pexels".
func PhotoCredit(imageFilename string) *string {
	if imageFilename == "" {
		return nil
	}
	base := filepath.Base(imageFilename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	segments := strings.Split(base, "_")
	credit := strings.TrimSpace(segments[len(segments)-1])
	if credit == "" {
		return nil
	}
	return &credit
}

// Field names tracked by AI-origin markers.
const (
	FieldTitle        = "title"
	FieldLead         = "lead"
	FieldBody         = "body"
	FieldTitleHotnews = "title_hotnews"
	FieldTitleSocial  = "title_social"
	FieldTitleSeo     = "title_seo"
	FieldCategories   = "categories"
	FieldTags         = "tags"
)

// AIFieldMarker records whether a field's current value came from the
// import/AI pipeline or from an editor. Once flipped to manual it is never
// flipped back automatically.
type AIFieldMarker struct {
	ArticleID   string
	FieldName   string
	AIGenerated bool
	Confidence  float64
	GeneratedAt time.Time
}

// ImportMarkers returns the marker set written when an article is first
// imported: the generated titles, categories and tags are AI-origin, the
// parsed title, lead and body are not.
func ImportMarkers(articleID string) []AIFieldMarker {
	markers := make([]AIFieldMarker, 0, 8)
	for _, f := range []string{FieldTitleHotnews, FieldTitleSocial, FieldTitleSeo, FieldCategories, FieldTags} {
		markers = append(markers, AIFieldMarker{ArticleID: articleID, FieldName: f, AIGenerated: true, Confidence: 0.9})
	}
	for _, f := range []string{FieldTitle, FieldLead, FieldBody} {
		markers = append(markers, AIFieldMarker{ArticleID: articleID, FieldName: f, AIGenerated: false, Confidence: 1.0})
	}
	return markers
}

// EditEntry is one row of the per-field edit history.
type EditEntry struct {
	ID        int64
	ArticleID string
	FieldName string
	OldValue  string
	NewValue  string
	EditedBy  string
	EditedAt  time.Time
}

// MatchKind classifies how a candidate file matched an existing article.
type MatchKind int

const (
	NoMatch MatchKind = iota
	MatchedByTitle
	MatchedByPath
)

// ArticleMatch is the result of the duplicate-lookup chain: exact title
// first, then (drive path, original filename).
type ArticleMatch struct {
	Kind    MatchKind
	Article *Article
}
