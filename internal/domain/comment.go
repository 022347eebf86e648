package domain

import (
	"strings"
	"time"
)

// GeneralLocation marks a comment that is not tied to a diff line.
const GeneralLocation = 0

// Comment is a review remark anchored to a line offset of a patch diff.
type Comment struct {
	ID             int64     `json:"id" db:"id"`
	MergeRequestID int64     `json:"merge_request_id" db:"merge_request_id"`
	PatchVersion   int       `json:"patch_version" db:"patch_version"`
	AuthorID       UserID    `json:"author_id" db:"author_id"`
	Content        string    `json:"content" db:"content"`
	Location       int       `json:"location" db:"location"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// IsGeneral reports whether the comment applies to the patch as a whole.
func (c Comment) IsGeneral() bool {
	return c.Location == GeneralLocation
}

// LocatedText is one (location, text) entry of a comment batch.
type LocatedText struct {
	Location int    `json:"location"`
	Text     string `json:"text"`
}

// BuildComments turns a batch into comments, dropping blank texts.
func BuildComments(author UserID, patch Patch, batch []LocatedText, now time.Time) []Comment {
	comments := make([]Comment, 0, len(batch))
	for _, entry := range batch {
		if strings.TrimSpace(entry.Text) == "" {
			continue
		}
		comments = append(comments, Comment{
			MergeRequestID: patch.MergeRequestID,
			PatchVersion:   patch.Version,
			AuthorID:       author,
			Content:        entry.Text,
			Location:       entry.Location,
			CreatedAt:      now,
		})
	}
	return comments
}
