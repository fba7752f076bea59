package lib

import (
	"errors"
	"fmt"
)

/*
	RejectReason is a stable tag for why a component was left out of a library
*/
type RejectReason string

const (
	NoSymbolMapping     RejectReason = "NO_SYMBOL_MAPPING"
	NoDeviceName        RejectReason = "NO_DEVICE_NAME"
	UnknownPackage      RejectReason = "UNKNOWN_PACKAGE"
	PinPadCountMismatch RejectReason = "PIN_PAD_COUNT_MISMATCH"
)

/*
	Rejection is returned by Validate for a component that cannot be built
*/
type Rejection struct {
	Reason    RejectReason
	Candidate *Candidate
	Message   string
	Details   map[string]any
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("%s: %s", r.Reason, r.Message)
}

/*
	IsReason reports whether err is a Rejection with the given reason
*/
func IsReason(err error, reason RejectReason) bool {
	var r *Rejection
	if errors.As(err, &r) {
		return r.Reason == reason
	}
	return false
}

func newRejection(c *Candidate, reason RejectReason, details map[string]any, format string, args ...any) *Rejection {
	return &Rejection{
		Reason:    reason,
		Candidate: c,
		Message:   fmt.Sprintf(format, args...),
		Details:   details,
	}
}

/*
	Match is a validated candidate bound to its template definitions
*/
type Match struct {
	Candidate *Candidate
	Symbol    *EagleLibrarySymbol
	Package   *EagleLibraryPackage
	Bespoke   bool
}

func (m *Match) SymbolName() string {
	return m.Symbol.Name
}

/*
	Validate checks a candidate against the template library. Checks run in
	order and stop at the first failure.
*/
func Validate(c *Candidate, t *Template) (*Match, error) {
	if c.Symbol == NoSymbol {
		return nil, newRejection(c, NoSymbolMapping,
			map[string]any{"first_category": c.Component.FirstCategory, "second_category": c.Component.SecondCategory},
			"could not pick a symbol suitable for category %s / %s", c.Component.FirstCategory, c.Component.SecondCategory)
	}

	if c.DeviceName == "" {
		return nil, newRejection(c, NoDeviceName,
			map[string]any{"mfr_part": c.Component.MFRPart},
			"could not derive a device name from %q", c.Component.MFRPart)
	}

	pkg := t.Package(c.PackageID)
	if pkg == nil {
		return nil, newRejection(c, UnknownPackage,
			map[string]any{"package": c.PackageID},
			"package %s doesn't exist", c.PackageID)
	}

	m := &Match{Candidate: c, Package: pkg}
	if bespoke := t.Symbol(c.GateSymbol); bespoke != nil && bespoke.PinCount() > 0 {
		m.Symbol = bespoke
		m.Bespoke = true
	} else {
		m.Symbol = t.Symbol(string(c.Symbol))
	}

	pins := 0
	symbolName := string(c.Symbol)
	if m.Symbol != nil {
		pins = m.Symbol.PinCount()
		symbolName = m.Symbol.Name
	}
	pads := pkg.PadCount()

	// A missing symbol is never accepted, even for a zero pad count.
	if m.Symbol == nil || pins != c.Component.PadCount || pads != c.Component.PadCount {
		return nil, newRejection(c, PinPadCountMismatch,
			map[string]any{"symbol": symbolName, "package": pkg.Name, "pins": pins, "pads": pads, "declared": c.Component.PadCount},
			"pins (%d) and pads (%d) count don't add up to %d (symbol %s, package %s)",
			pins, pads, c.Component.PadCount, symbolName, pkg.Name)
	}

	return m, nil
}
