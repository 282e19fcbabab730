package structedit

import "time"

// Author identifies who wrote a comment.
type Author struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Comment is one entry in a thread. Comments are created by the host's
// effect handler (which assigns the ID) and are immutable once stored;
// ordering within a thread is insertion order, oldest first.
type Comment struct {
	ID        string    `json:"id,omitempty"`
	Content   string    `json:"content"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}
