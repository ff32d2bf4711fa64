package order

import (
	"errors"
	"time"

	"printery/internal/core/domain/model/kernel"
	"printery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents one session's print order in progress. It is the aggregate
// root that manages the intake workflow from the opening prompt through
// payment.
//
// Order follows these invariants:
//   - Keyed by a valid session identifier; at most one order per session
//   - Fields are populated monotonically, one stage at a time
//   - The side mode is set before pricing for multi-page orders; single-page
//     orders keep it unset and price as single-sided
//   - The total is never stored: pricing always recomputes from current fields
//   - Can only be created through NewOrder or restored via RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated transition methods.
type Order struct {
	// id is the order's reference identity, used in notifications and logs
	id kernel.UUID

	// sessionID is the chat scope that owns the order; key of the store
	sessionID kernel.SessionID

	// stage is the current position in the intake workflow
	stage Stage

	// colorMode, sideMode, paperFormat, pageCount are the priced attributes
	colorMode   ColorMode
	sideMode    SideMode
	paperFormat PaperFormat
	pageCount   int

	// attachment references the uploaded file (nil until attached)
	attachment *Attachment

	// comment is optional free text for the operator
	comment string

	// touchedAt is the last mutation instant; drives the idle-order reaper
	touchedAt time.Time

	// isConstructed ensures the order was created via NewOrder/RestoreOrder
	isConstructed bool
}

// NewOrder opens a fresh order for a session at the Started stage.
// A previously stored order for the same session is replaced wholesale by
// saving the new aggregate; no field ever leaks between the two.
func NewOrder(sessionID kernel.SessionID) (*Order, error) {
	if err := sessionID.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            kernel.NewUUID(),
		sessionID:     sessionID,
		stage:         Started,
		touchedAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. All stored values are
// re-validated so a corrupted row cannot smuggle an invalid aggregate back
// into the domain.
func RestoreOrder(
	id kernel.UUID,
	sessionID kernel.SessionID,
	stage Stage,
	colorMode ColorMode,
	sideMode SideMode,
	paperFormat PaperFormat,
	pageCount int,
	attachment *Attachment,
	comment string,
	touchedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		sessionID.Validate(),
		stage.Validate(),
	); err != nil {
		return nil, err
	}

	if colorMode != ColorModeUnknown {
		if err := colorMode.Validate(); err != nil {
			return nil, err
		}
	}
	if sideMode != SideModeUnknown {
		if err := sideMode.Validate(); err != nil {
			return nil, err
		}
	}
	if paperFormat != PaperFormatUnknown {
		if err := paperFormat.Validate(); err != nil {
			return nil, err
		}
	}
	if pageCount < 0 {
		return nil, errs.NewValueIsOutOfRangeError("page count", pageCount, 1, maxPageCount)
	}
	if attachment != nil {
		if err := attachment.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		sessionID:     sessionID,
		stage:         stage,
		colorMode:     colorMode,
		sideMode:      sideMode,
		paperFormat:   paperFormat,
		pageCount:     pageCount,
		attachment:    attachment,
		comment:       comment,
		touchedAt:     touchedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their reference identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's reference identity.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// SessionID returns the owning session.
func (o *Order) SessionID() kernel.SessionID {
	return o.sessionID
}

// Stage returns the current workflow position.
func (o *Order) Stage() Stage {
	return o.stage
}

// ColorMode returns the chosen print color (ColorModeUnknown until chosen).
func (o *Order) ColorMode() ColorMode {
	return o.colorMode
}

// SideMode returns the chosen side mode (SideModeUnknown until chosen or for
// single-page orders).
func (o *Order) SideMode() SideMode {
	return o.sideMode
}

// EffectiveSideMode returns the side mode to price with: the chosen one, or
// SingleSided when the order never reached the side stage.
func (o *Order) EffectiveSideMode() SideMode {
	if o.sideMode == SideModeUnknown {
		return SingleSided
	}
	return o.sideMode
}

// PaperFormat returns the chosen paper format (PaperFormatUnknown until chosen).
func (o *Order) PaperFormat() PaperFormat {
	return o.paperFormat
}

// PageCount returns the page count (0 until set).
func (o *Order) PageCount() int {
	return o.pageCount
}

// MultiPage reports whether the order has more than one page and therefore
// takes the side-selection branch.
func (o *Order) MultiPage() bool {
	return o.pageCount > 1
}

// Attachment returns the uploaded file reference, or nil before the upload.
func (o *Order) Attachment() *Attachment {
	return o.attachment
}

// Comment returns the optional operator comment.
func (o *Order) Comment() string {
	return o.comment
}

// TouchedAt returns the last mutation instant.
func (o *Order) TouchedAt() time.Time {
	return o.touchedAt
}

// ExpectsFile reports whether the next expected event is a file upload.
func (o *Order) ExpectsFile() bool {
	if o.stage == SideChosen {
		return true
	}
	return o.stage == FormatChosen && !o.MultiPage()
}

// ChooseColor records the print color and advances Started -> ColorChosen.
func (o *Order) ChooseColor(mode ColorMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	newStage, err := o.stage.ChooseColor()
	if err != nil {
		return err
	}

	o.colorMode = mode
	o.setStage(newStage)
	return nil
}

// SetPageCount records the page count and advances ColorChosen -> PageCountSet.
func (o *Order) SetPageCount(count int) error {
	if count < 1 || count > maxPageCount {
		return errs.NewValueIsOutOfRangeError("page count", count, 1, maxPageCount)
	}

	newStage, err := o.stage.SetPageCount()
	if err != nil {
		return err
	}

	o.pageCount = count
	o.setStage(newStage)
	return nil
}

// ChooseFormat records the paper format and advances PageCountSet -> FormatChosen.
func (o *Order) ChooseFormat(format PaperFormat) error {
	if err := format.Validate(); err != nil {
		return err
	}

	newStage, err := o.stage.ChooseFormat()
	if err != nil {
		return err
	}

	o.paperFormat = format
	o.setStage(newStage)
	return nil
}

// ChooseSide records the side mode and advances FormatChosen -> SideChosen.
// Only multi-page orders take this branch; a single-page order skips it and
// prices as single-sided.
func (o *Order) ChooseSide(mode SideMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	if !o.MultiPage() {
		return o.stage.invalidTransition("choose print sides for a single-page order")
	}

	newStage, err := o.stage.ChooseSide()
	if err != nil {
		return err
	}

	o.sideMode = mode
	o.setStage(newStage)
	return nil
}

// Attach records the uploaded file and advances to FileAttached.
func (o *Order) Attach(attachment Attachment) error {
	if err := attachment.Validate(); err != nil {
		return err
	}

	newStage, err := o.stage.AttachFile(o.MultiPage())
	if err != nil {
		return err
	}

	o.attachment = &attachment
	o.setStage(newStage)
	return nil
}

// SetComment records the operator comment and advances FileAttached -> CommentResolved.
func (o *Order) SetComment(text string) error {
	newStage, err := o.stage.ResolveComment()
	if err != nil {
		return err
	}

	o.comment = text
	o.setStage(newStage)
	return nil
}

// SkipComment advances FileAttached -> CommentResolved without a comment.
func (o *Order) SkipComment() error {
	newStage, err := o.stage.ResolveComment()
	if err != nil {
		return err
	}

	o.setStage(newStage)
	return nil
}

// ShowSummary advances to SummaryShown. Re-entrant: showing the summary again
// after it was already shown is a no-op beyond the recomputed price.
func (o *Order) ShowSummary() error {
	newStage, err := o.stage.ShowSummary()
	if err != nil {
		return err
	}

	o.setStage(newStage)
	return nil
}

// Confirm advances SummaryShown -> Confirmed.
func (o *Order) Confirm() error {
	newStage, err := o.stage.Confirm()
	if err != nil {
		return err
	}

	o.setStage(newStage)
	return nil
}

// AwaitPayment advances Confirmed -> AwaitingPayment once the invoice request
// was handed to the transport.
func (o *Order) AwaitPayment() error {
	newStage, err := o.stage.AwaitPayment()
	if err != nil {
		return err
	}

	o.setStage(newStage)
	return nil
}

func (o *Order) setStage(stage Stage) {
	o.stage = stage
	o.touchedAt = time.Now().UTC()
}
