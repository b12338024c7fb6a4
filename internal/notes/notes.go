// Package notes holds the client-side mirror of the remote note list.
package notes

import "time"

// Note is a single saved document. ID is the server-assigned opaque key
// (the "filename" on the wire) and never changes once assigned.
type Note struct {
	ID          string
	Title       string
	Content     string
	UpdatedAt   time.Time
	DriveFileID string
}

// Linked reports whether the note is mirrored to the user's Drive.
func (n Note) Linked() bool {
	return n.DriveFileID != ""
}
