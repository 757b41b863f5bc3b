package domain

import (
	"errors"
	"time"
)

var ErrArticleNotFound = errors.New("news article not found")
var ErrIDMismatch = errors.New("id mismatch")

// NewsArticle is the core aggregate. CreatedByID and CreatedDate are stamped
// once by the service layer at creation and never editable afterwards; the
// Tags association is fully replaced on every update.
type NewsArticle struct {
	NewsArticleID int64      `json:"newsArticleId"`
	NewsTitle     string     `json:"newsTitle"`
	Headline      string     `json:"headline"`
	NewsContent   string     `json:"newsContent"`
	NewsSource    string     `json:"newsSource"`
	CategoryID    int64      `json:"categoryId"`
	NewsStatus    bool       `json:"newsStatus"`
	CreatedByID   int64      `json:"createdById"`
	CreatedDate   time.Time  `json:"createdDate"`
	UpdatedByID   *int64     `json:"updatedById,omitempty"`
	ModifiedDate  *time.Time `json:"modifiedDate,omitempty"`
	Tags          []Tag      `json:"tags"`
}
