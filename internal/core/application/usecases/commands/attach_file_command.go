package commands

import (
	"errors"

	"printery/internal/core/domain/model/kernel"
	"printery/internal/pkg/guard"
)

var (
	ErrAttachFileCommandIsNotConstructed = errors.New(
		"AttachFileCommand must be created via NewAttachFileCommand constructor",
	)
	ErrFileIDIsRequired = errors.New("file id is required")
)

// AttachFileCommand carries an uploaded document for the session's order.
// The file itself stays with the transport; only the opaque handle and the
// display name travel through the core.
type AttachFileCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.SessionID
	fileID    string
	fileName  string

	guard guard.ConstructorGuard
}

// NewAttachFileCommand creates a command from one uploaded document.
// The display name may be empty; the file handle may not.
func NewAttachFileCommand(sessionID kernel.SessionID, fileID, fileName string) (AttachFileCommand, error) {
	cmd := AttachFileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setFileID(fileID),
	); err != nil {
		return AttachFileCommand{}, err
	}

	cmd.fileName = fileName
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAttachFileCommandIsNotConstructed if validation fails.
func (c AttachFileCommand) Validate() error {
	return c.guard.Validate(ErrAttachFileCommandIsNotConstructed)
}

// SessionID returns the session the upload belongs to.
func (c AttachFileCommand) SessionID() kernel.SessionID {
	return c.sessionID
}

// FileID returns the transport's opaque file handle.
func (c AttachFileCommand) FileID() string {
	return c.fileID
}

// FileName returns the display name of the uploaded document.
func (c AttachFileCommand) FileName() string {
	return c.fileName
}

func (c *AttachFileCommand) setSessionID(sessionID kernel.SessionID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *AttachFileCommand) setFileID(fileID string) error {
	if fileID == "" {
		return ErrFileIDIsRequired
	}

	c.fileID = fileID
	return nil
}
