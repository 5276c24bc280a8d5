package export

import (
	"encoding/json"

	"content_sync/internal/domain"
)

// Item is one article in the exported feed. Body travels as "description"
// for compatibility with the downstream consumer.
type Item struct {
	ArticleID    string   `json:"articleId"`
	Title        string   `json:"title"`
	TitleHotnews string   `json:"titleHotnews"`
	TitleSocial  string   `json:"titleSocial"`
	TitleSeo     string   `json:"titleSeo"`
	Lead         string   `json:"lead"`
	Description  string   `json:"description"`
	Author       string   `json:"author"`
	Sources      []string `json:"sources"`
	Categories   []string `json:"categories"`
	Tags         []string `json:"tags"`
	Image        *string  `json:"image,omitempty"`
	PhotoAuthor  *string  `json:"photoAuthor,omitempty"`
}

type Feed struct {
	Articles []Item `json:"articles"`
}

func BuildFeed(articles []*domain.Article) Feed {
	items := make([]Item, 0, len(articles))
	for _, a := range articles {
		items = append(items, Item{
			ArticleID:    a.ArticleID,
			Title:        a.Title,
			TitleHotnews: a.TitleHotnews,
			TitleSocial:  a.TitleSocial,
			TitleSeo:     a.TitleSeo,
			Lead:         a.Lead,
			Description:  a.Body,
			Author:       a.Author,
			Sources:      a.Sources,
			Categories:   a.Categories,
			Tags:         a.Tags,
			Image:        a.ImageFilename,
			PhotoAuthor:  a.PhotoAuthor,
		})
	}
	return Feed{Articles: items}
}

func (f Feed) Marshal() ([]byte, error) {
	return json.Marshal(f)
}
