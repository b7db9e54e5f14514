package entity

import "time"

// Comment is a message left on an ad. It always belongs to the ad it was created under.
type Comment struct {
	ID        int64
	Text      string
	AdID      int64     // Parent ad, immutable.
	AuthorID  int64     // Owner of the comment.
	Author    *User     // Loaded alongside the comment when available.
	CreatedAt time.Time // Set once at creation.
	Version   int64
}

// BelongsTo reports whether the comment is addressed under the given ad.
func (c *Comment) BelongsTo(adID int64) bool {
	return c != nil && c.AdID == adID
}
