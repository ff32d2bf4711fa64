package commands

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"printery/internal/core/domain/model/order"
)

// Reply keyboard sentinels. The inbound adapter routes these before any
// stage-specific decoding, so they work from every stage.
const (
	StartOrderSentinel = "🖨 Start order"
	ConfirmSentinel    = "✅ Confirm order"
	CancelSentinel     = "❌ Cancel"
	EditSentinel       = "✏️ Edit"
	SkipSentinel       = "Skip"
)

const (
	filePromptText    = "Please attach the file to print (PDF, DOCX, JPG):"
	commentPromptText = "Add a comment to the order?"
)

// promptFor returns the question and reply choices for the input the order
// expects next. Called after every successful transition and on every
// retry-in-place re-prompt.
func promptFor(o *order.Order) (string, []string) {
	switch o.Stage() {
	case order.Started:
		return "Choose the print color:", order.ColorModeChoices()
	case order.ColorChosen:
		return "Enter the number of pages:", nil
	case order.PageCountSet:
		return "Choose the paper format:", order.PaperFormatChoices()
	case order.FormatChosen:
		if o.MultiPage() {
			return "Choose the print sides:", order.SideModeChoices()
		}
		return filePromptText, nil
	case order.SideChosen:
		return filePromptText, nil
	case order.FileAttached:
		return commentPromptText, []string{SkipSentinel}
	case order.SummaryShown, order.AwaitingPayment:
		return "Confirm the order, edit it, or cancel:", summaryChoices()
	default:
		return "Send " + StartOrderSentinel + " to begin.", []string{StartOrderSentinel}
	}
}

func summaryChoices() []string {
	return []string{ConfirmSentinel, EditSentinel, CancelSentinel}
}

// renderSummary formats the order recap shown before confirmation.
// Optional fields appear only when collected.
func renderSummary(o *order.Order, quote decimal.Decimal, currency string) string {
	var b strings.Builder
	b.WriteString("📝 Your order:\n")
	fmt.Fprintf(&b, "Color: %s\n", o.ColorMode())
	fmt.Fprintf(&b, "Pages: %d\n", o.PageCount())
	fmt.Fprintf(&b, "Format: %s\n", o.PaperFormat())
	if o.SideMode() != order.SideModeUnknown {
		fmt.Fprintf(&b, "Sides: %s\n", o.SideMode())
	}
	if a := o.Attachment(); a != nil {
		fmt.Fprintf(&b, "File: %s\n", a.Name())
	}
	if o.Comment() != "" {
		fmt.Fprintf(&b, "Comment: %s\n", o.Comment())
	}
	fmt.Fprintf(&b, "\nTotal: %s %s", quote, currency)
	return b.String()
}
