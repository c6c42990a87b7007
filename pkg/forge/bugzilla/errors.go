package bugzilla

import "errors"

var (
	// ErrBugNotFound is returned when a bug lookup comes back empty.
	ErrBugNotFound = errors.New("bug not found")
	// ErrAttachmentNotFound is returned when an attachment lookup comes back
	// without the requested attachment.
	ErrAttachmentNotFound = errors.New("attachment not found")
)
