package order

import (
	"printery/internal/pkg/errs"
	"printery/internal/pkg/guard"
)

// ErrAttachmentIsNotConstructed is returned when an Attachment was not created
// through NewAttachment.
var ErrAttachmentIsNotConstructed = errs.NewValueIsRequiredError("Attachment must be created via NewAttachment")

// fallbackAttachmentName is used when the transport does not carry a display
// name for the uploaded document.
const fallbackAttachmentName = "document"

// Attachment references the uploaded file to print. The file itself stays with
// the transport; the order only keeps the opaque handle needed to retrieve it
// and a display name for summaries and operator notifications.
type Attachment struct {
	fileID string
	name   string

	guard guard.ConstructorGuard
}

// NewAttachment creates an attachment reference from the transport's file
// handle and display name. The handle is required; an empty display name
// falls back to a generic label.
func NewAttachment(fileID, name string) (Attachment, error) {
	if fileID == "" {
		return Attachment{}, errs.NewValueIsRequiredError("file handle")
	}
	if name == "" {
		name = fallbackAttachmentName
	}
	return Attachment{
		fileID: fileID,
		name:   name,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// FileID returns the opaque transport handle of the uploaded file.
func (a Attachment) FileID() string {
	return a.fileID
}

// Name returns the display name of the uploaded file.
func (a Attachment) Name() string {
	return a.name
}

// Validate ensures the attachment was created through NewAttachment.
func (a Attachment) Validate() error {
	return a.guard.Validate(ErrAttachmentIsNotConstructed)
}
