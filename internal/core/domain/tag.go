package domain

import "errors"

var ErrTagNotFound = errors.New("tag not found")

// Tag labels news articles. Tags and articles are linked many-to-many; a tag
// carries no delete guard.
type Tag struct {
	TagID   int64  `json:"tagId"`
	TagName string `json:"tagName"`
	Note    string `json:"note,omitempty"`
}
