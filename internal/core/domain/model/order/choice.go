package order

import (
	"fmt"
	"strconv"
	"strings"

	"printery/internal/pkg/errs"
)

// maxPageCount bounds page-count input. Orders beyond this size are taken up
// with the operator directly rather than through the bot.
const maxPageCount = 10000

// ColorMode is the print color choice.
type ColorMode int

const (
	// ColorModeUnknown represents an invalid or undefined color mode.
	ColorModeUnknown ColorMode = iota

	// Monochrome is black-and-white printing.
	Monochrome

	// Color is full-color printing.
	Color
)

func getColorModeStrings() map[ColorMode]string {
	return map[ColorMode]string{
		Monochrome: "Black & white",
		Color:      "Color",
	}
}

// ColorModeChoices returns the keyboard labels offered at the color stage.
func ColorModeChoices() []string {
	return []string{getColorModeStrings()[Monochrome], getColorModeStrings()[Color]}
}

// ParseColorMode decodes a keyboard label into a ColorMode.
// Returns a value-is-invalid error for anything else.
func ParseColorMode(text string) (ColorMode, error) {
	for mode, label := range getColorModeStrings() {
		if strings.EqualFold(strings.TrimSpace(text), label) {
			return mode, nil
		}
	}
	return ColorModeUnknown, errs.NewValueIsInvalidErrorWithCause("color mode",
		fmt.Errorf("%q is not a known print color", text))
}

// String returns the keyboard label for the color mode.
func (m ColorMode) String() string {
	if s, ok := getColorModeStrings()[m]; ok {
		return s
	}
	return "Unknown"
}

// Validate checks that the color mode is one of the known choices.
func (m ColorMode) Validate() error {
	if _, ok := getColorModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("color mode",
			fmt.Errorf("%d is not a valid color mode", m))
	}
	return nil
}

// SideMode is the single- or double-sided printing choice.
type SideMode int

const (
	// SideModeUnknown represents an unset side mode. A single-page order keeps
	// this value and is priced as single-sided.
	SideModeUnknown SideMode = iota

	// SingleSided prints on one side of each sheet.
	SingleSided

	// DoubleSided prints on both sides of each sheet.
	DoubleSided
)

func getSideModeStrings() map[SideMode]string {
	return map[SideMode]string{
		SingleSided: "Single-sided",
		DoubleSided: "Double-sided",
	}
}

// SideModeChoices returns the keyboard labels offered at the sides stage.
func SideModeChoices() []string {
	return []string{getSideModeStrings()[SingleSided], getSideModeStrings()[DoubleSided]}
}

// ParseSideMode decodes a keyboard label into a SideMode.
func ParseSideMode(text string) (SideMode, error) {
	for mode, label := range getSideModeStrings() {
		if strings.EqualFold(strings.TrimSpace(text), label) {
			return mode, nil
		}
	}
	return SideModeUnknown, errs.NewValueIsInvalidErrorWithCause("side mode",
		fmt.Errorf("%q is not a known print side option", text))
}

// String returns the keyboard label for the side mode.
func (m SideMode) String() string {
	if s, ok := getSideModeStrings()[m]; ok {
		return s
	}
	return "Unknown"
}

// Validate checks that the side mode is one of the known choices.
func (m SideMode) Validate() error {
	if _, ok := getSideModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("side mode",
			fmt.Errorf("%d is not a valid side mode", m))
	}
	return nil
}

// PaperFormat is the paper size choice.
type PaperFormat int

const (
	// PaperFormatUnknown represents an invalid or undefined paper format.
	PaperFormatUnknown PaperFormat = iota

	FormatA5
	FormatA4
	FormatA3
	FormatA2
)

func getPaperFormatStrings() map[PaperFormat]string {
	return map[PaperFormat]string{
		FormatA5: "A5",
		FormatA4: "A4",
		FormatA3: "A3",
		FormatA2: "A2",
	}
}

// PaperFormatChoices returns the keyboard labels offered at the format stage,
// smallest format first.
func PaperFormatChoices() []string {
	return []string{"A5", "A4", "A3", "A2"}
}

// ParsePaperFormat decodes a keyboard label into a PaperFormat.
func ParsePaperFormat(text string) (PaperFormat, error) {
	for format, label := range getPaperFormatStrings() {
		if strings.EqualFold(strings.TrimSpace(text), label) {
			return format, nil
		}
	}
	return PaperFormatUnknown, errs.NewValueIsInvalidErrorWithCause("paper format",
		fmt.Errorf("%q is not a known paper format", text))
}

// String returns the keyboard label for the paper format.
func (f PaperFormat) String() string {
	if s, ok := getPaperFormatStrings()[f]; ok {
		return s
	}
	return "Unknown"
}

// Validate checks that the paper format is one of the known choices.
func (f PaperFormat) Validate() error {
	if _, ok := getPaperFormatStrings()[f]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paper format",
			fmt.Errorf("%d is not a valid paper format", f))
	}
	return nil
}

// ParsePageCount decodes free-form text into a positive page count.
// Non-numeric or non-positive input yields a recoverable validation error so
// the caller re-prompts the same stage.
func ParsePageCount(text string) (int, error) {
	count, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("page count", err)
	}
	if count < 1 || count > maxPageCount {
		return 0, errs.NewValueIsOutOfRangeError("page count", count, 1, maxPageCount)
	}
	return count, nil
}
