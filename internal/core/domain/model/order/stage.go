package order

import (
	"fmt"

	"printery/internal/pkg/errs"
)

// Stage represents the workflow position of an order.
// It implements a state machine with defined transitions so orders follow the
// correct intake sequence and cannot reach payment half-built.
//
// Stage transitions:
//
//	Started -> ColorChosen -> PageCountSet -> FormatChosen ──┬─> SideChosen ──┐
//	                                         (multi-page) ───┘                │
//	                                         (single page) ───────────────────┤
//	                                                                          v
//	                   AwaitingPayment <- Confirmed <- SummaryShown <- CommentResolved <- FileAttached
//	                                                        │  ^
//	                                                        └──┘ (summary is re-entrant)
//
// Cancelled and Paid are not stages: both terminal outcomes remove the order
// from the store entirely.
type Stage int

const (
	// Unknown represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	Unknown Stage = iota

	// Started is the initial stage right after the order is opened.
	// The session is being asked for the print color.
	Started

	// ColorChosen means the color is set and the page count is awaited.
	ColorChosen

	// PageCountSet means the page count is set and the paper format is awaited.
	PageCountSet

	// FormatChosen means the format is set. Multi-page orders are asked for
	// sides next; single-page orders go straight to the file upload.
	FormatChosen

	// SideChosen means the side mode is set and the file upload is awaited.
	SideChosen

	// FileAttached means the file is stored and the comment is awaited.
	FileAttached

	// CommentResolved means the comment was provided or skipped and the
	// priced summary is about to be shown.
	CommentResolved

	// SummaryShown means the session has seen the priced summary and must
	// confirm, cancel, or edit.
	SummaryShown

	// Confirmed means the session accepted the summary; an invoice is being issued.
	Confirmed

	// AwaitingPayment means the invoice went out and the provider's checkout
	// is the next expected event. This is the only stage where a pre-checkout
	// query is approved.
	AwaitingPayment
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		Unknown:         "Unknown",
		Started:         "Started",
		ColorChosen:     "ColorChosen",
		PageCountSet:    "PageCountSet",
		FormatChosen:    "FormatChosen",
		SideChosen:      "SideChosen",
		FileAttached:    "FileAttached",
		CommentResolved: "CommentResolved",
		SummaryShown:    "SummaryShown",
		Confirmed:       "Confirmed",
		AwaitingPayment: "AwaitingPayment",
	}
}

func getValidStageStrings() map[Stage]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Stage]string{
		Started:         "Started",
		ColorChosen:     "ColorChosen",
		PageCountSet:    "PageCountSet",
		FormatChosen:    "FormatChosen",
		SideChosen:      "SideChosen",
		FileAttached:    "FileAttached",
		CommentResolved: "CommentResolved",
		SummaryShown:    "SummaryShown",
		Confirmed:       "Confirmed",
		AwaitingPayment: "AwaitingPayment",
	}
}

// Validate checks if the Stage value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Stage) Validate() error {
	if _, ok := getValidStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid",
			fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// String returns the human-readable name of the stage.
// Implements fmt.Stringer and is safe on any Stage value.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func (s Stage) invalidTransition(action string) error {
	return errs.NewValueIsInvalidErrorWithCause("stage is invalid",
		fmt.Errorf("%s is not a valid stage to %s", s, action))
}

// ChooseColor transitions Started -> ColorChosen.
func (s Stage) ChooseColor() (Stage, error) {
	if s != Started {
		return 0, s.invalidTransition("choose a print color")
	}
	return ColorChosen, nil
}

// SetPageCount transitions ColorChosen -> PageCountSet.
func (s Stage) SetPageCount() (Stage, error) {
	if s != ColorChosen {
		return 0, s.invalidTransition("set the page count")
	}
	return PageCountSet, nil
}

// ChooseFormat transitions PageCountSet -> FormatChosen.
func (s Stage) ChooseFormat() (Stage, error) {
	if s != PageCountSet {
		return 0, s.invalidTransition("choose a paper format")
	}
	return FormatChosen, nil
}

// ChooseSide transitions FormatChosen -> SideChosen.
// The branch is only taken for multi-page orders; the aggregate enforces that.
func (s Stage) ChooseSide() (Stage, error) {
	if s != FormatChosen {
		return 0, s.invalidTransition("choose print sides")
	}
	return SideChosen, nil
}

// AttachFile transitions to FileAttached. Multi-page orders attach from
// SideChosen; single-page orders attach directly from FormatChosen.
func (s Stage) AttachFile(multiPage bool) (Stage, error) {
	if multiPage && s != SideChosen {
		return 0, s.invalidTransition("attach a file")
	}
	if !multiPage && s != FormatChosen {
		return 0, s.invalidTransition("attach a file")
	}
	return FileAttached, nil
}

// ResolveComment transitions FileAttached -> CommentResolved, whether the
// comment was provided or skipped.
func (s Stage) ResolveComment() (Stage, error) {
	if s != FileAttached {
		return 0, s.invalidTransition("resolve the comment")
	}
	return CommentResolved, nil
}

// ShowSummary transitions CommentResolved -> SummaryShown.
// SummaryShown -> SummaryShown is allowed: the summary is re-entrant and may
// be recomputed and shown again without side effects.
func (s Stage) ShowSummary() (Stage, error) {
	if s != CommentResolved && s != SummaryShown {
		return 0, s.invalidTransition("show the summary")
	}
	return SummaryShown, nil
}

// Confirm transitions SummaryShown -> Confirmed.
func (s Stage) Confirm() (Stage, error) {
	if s != SummaryShown {
		return 0, s.invalidTransition("confirm the order")
	}
	return Confirmed, nil
}

// AwaitPayment transitions Confirmed -> AwaitingPayment, after the invoice
// request went out to the transport.
func (s Stage) AwaitPayment() (Stage, error) {
	if s != Confirmed {
		return 0, s.invalidTransition("await payment")
	}
	return AwaitingPayment, nil
}

// IsPayable reports whether a pre-checkout query may be approved at this
// stage. Only an order whose invoice actually went out is payable.
func (s Stage) IsPayable() bool {
	return s == AwaitingPayment
}
