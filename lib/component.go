package lib

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

/*
	LCSC Part	First Category	Second Category	MFR.Part	Package	Solder Joint	Manufacturer	Library Type
	C25725	Resistors	Resistor Networks & Arrays	4D02WGJ0103TCE	0402_x4	8	Uniroyal Elec	base
*/
const (
	ColumnLCSCPart       = "LCSC Part"
	ColumnMFRPart        = "MFR.Part"
	ColumnFirstCategory  = "First Category"
	ColumnSecondCategory = "Second Category"
	ColumnPackage        = "Package"
	ColumnSolderJoint    = "Solder Joint"
	ColumnManufacturer   = "Manufacturer"
	ColumnLibraryType    = "Library Type"
)

var RequiredColumns = []string{
	ColumnLCSCPart,
	ColumnFirstCategory,
	ColumnSecondCategory,
	ColumnMFRPart,
	ColumnPackage,
	ColumnSolderJoint,
	ColumnManufacturer,
	ColumnLibraryType,
}

/*
	Row maps column names to cell values
*/
type Row map[string]string

/*
	RowError reports a row that could not be turned into a Component
*/
type RowError struct {
	Row    int
	LCSC   string
	Column string
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d (%s): %s %q: %s", e.Row, e.LCSC, e.Column, e.Value, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

var (
	ErrSolderJoint = errors.New("unknown solder joint count")
	ErrLibraryType = errors.New("unknown library type")
)

/*
	Component is one catalog row
*/
type Component struct {
	LCSCPart       string
	MFRPart        string
	FirstCategory  string
	SecondCategory string
	Package        string
	PadCount       int
	Manufacturer   string
	Expanded       bool

	packageID *string
}

/*
	NewComponent builds a component from a sheet row. n is the 1-based sheet
	row used in error reports.
*/
func NewComponent(n int, row Row) (*Component, error) {
	field := func(column string) string {
		return strings.TrimSpace(row[column])
	}

	c := &Component{
		LCSCPart:       field(ColumnLCSCPart),
		MFRPart:        field(ColumnMFRPart),
		FirstCategory:  field(ColumnFirstCategory),
		SecondCategory: field(ColumnSecondCategory),
		Package:        field(ColumnPackage),
		Manufacturer:   field(ColumnManufacturer),
	}

	joints := field(ColumnSolderJoint)
	count, err := strconv.Atoi(joints)
	if err != nil || count < 0 {
		return nil, &RowError{
			Row: n, LCSC: c.LCSCPart,
			Column: ColumnSolderJoint, Value: row[ColumnSolderJoint],
			Err: ErrSolderJoint,
		}
	}
	c.PadCount = count

	switch field(ColumnLibraryType) {
	case "base":
		c.Expanded = false
	case "expand":
		c.Expanded = true
	default:
		return nil, &RowError{
			Row: n, LCSC: c.LCSCPart,
			Column: ColumnLibraryType, Value: row[ColumnLibraryType],
			Err: ErrLibraryType,
		}
	}

	return c, nil
}

func (c *Component) Symbol() Symbol {
	return Classify(c.FirstCategory, c.SecondCategory)
}

/*
	PackageID returns the template package id for this component. It is
	resolved once and cached.
*/
func (c *Component) PackageID() string {
	if c.packageID == nil {
		id := ResolvePackage(c.Symbol(), c.Package)
		c.packageID = &id
	}

	return *c.packageID
}

func (c *Component) Value() string {
	return PickValue(c.MFRPart)
}

/*
	GateName is the gate used inside the component's device-set, e.g. R$1
*/
func (c *Component) GateName() string {
	if c.FirstCategory == "" {
		return "G$1"
	}

	first, _ := utf8.DecodeRuneInString(c.FirstCategory)
	return string(unicode.ToUpper(first)) + "$1"
}

/*
	DeviceVariant is the device name inside a device-set, derived from the
	LCSC part number
*/
func (c *Component) DeviceVariant() string {
	if len(c.LCSCPart) > 24 {
		return c.LCSCPart[:24]
	}

	return c.LCSCPart
}

func (c *Component) Tier() string {
	if c.Expanded {
		return "expanded"
	}

	return "basic"
}

func (c *Component) GroupName() string {
	return c.FirstCategory + "." + c.Tier()
}

/*
	Candidate is the library identity proposed for a component
*/
type Candidate struct {
	Component *Component

	DeviceName string
	Symbol     Symbol
	GateSymbol string
	PackageID  string
	Prefix     string
	Value      string
}

/*
	Identify derives the candidate identity of a component
*/
func (n *Normalizer) Identify(c *Component) *Candidate {
	symbol := c.Symbol()
	name := n.NormalizeName(c.MFRPart)

	return &Candidate{
		Component:  c,
		DeviceName: name,
		Symbol:     symbol,
		GateSymbol: string(symbol) + "_" + name,
		PackageID:  c.PackageID(),
		Prefix:     symbol.Prefix(),
		Value:      c.Value(),
	}
}

/*
	DisplayName is used in log lines, e.g. "Yageo's RC0402FR-0710KL"
*/
func (c *Candidate) DisplayName() string {
	return fmt.Sprintf("%s's %s", c.Component.Manufacturer, c.DeviceName)
}
