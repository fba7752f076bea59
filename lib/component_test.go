package lib

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComponent(t *testing.T) {
	c := testComponent(t, testRow("C25744", "0402WGF1002TCE", "Resistors", "Chip Resistor - Surface Mount", "0402", 2, "base"))

	assert.Equal(t, "C25744", c.LCSCPart)
	assert.Equal(t, "0402WGF1002TCE", c.MFRPart)
	assert.Equal(t, 2, c.PadCount)
	assert.False(t, c.Expanded)
	assert.Equal(t, Resistor, c.Symbol())
	assert.Equal(t, "RESISTOR_0402", c.PackageID())
	assert.Equal(t, "0402WGF1002TCE", c.Value())
	assert.Equal(t, "R$1", c.GateName())
	assert.Equal(t, "basic", c.Tier())
	assert.Equal(t, "Resistors.basic", c.GroupName())

	c = testComponent(t, testRow("C2286", "KT-0603R", "Optocouplers & LEDs & Infrared", "Light Emitting Diodes (LED)", "LED_0603", 2, "expand"))
	assert.True(t, c.Expanded)
	assert.Equal(t, "expanded", c.Tier())
	assert.Equal(t, "O$1", c.GateName())
	assert.Equal(t, "LED_0603", c.PackageID())
	assert.Equal(t, "Optocouplers & LEDs & Infrared.expanded", c.GroupName())
}

func TestNewComponentTrimsFields(t *testing.T) {
	row := testRow(" C1 ", " 10K 1% ", " Resistors ", "", " 0402 ", 2, " base ")
	row[ColumnSolderJoint] = " 2 "

	c := testComponent(t, row)
	assert.Equal(t, "C1", c.LCSCPart)
	assert.Equal(t, "10K 1%", c.MFRPart)
	assert.Equal(t, "10K", c.Value())
	assert.Equal(t, Resistor, c.Symbol())
	assert.Equal(t, 2, c.PadCount)
}

func TestNewComponentRowErrors(t *testing.T) {
	tests := []struct {
		name   string
		row    Row
		column string
		err    error
	}{
		{
			name:   "joints not a number",
			row:    testRow("C1", "X", "Resistors", "", "0402", 0, "base"),
			column: ColumnSolderJoint,
			err:    ErrSolderJoint,
		},
		{
			name:   "negative joints",
			row:    testRow("C2", "X", "Resistors", "", "0402", -1, "base"),
			column: ColumnSolderJoint,
			err:    ErrSolderJoint,
		},
		{
			name:   "unknown library type",
			row:    testRow("C3", "X", "Resistors", "", "0402", 2, "preferred"),
			column: ColumnLibraryType,
			err:    ErrLibraryType,
		},
		{
			name:   "missing library type",
			row:    testRow("C4", "X", "Resistors", "", "0402", 2, ""),
			column: ColumnLibraryType,
			err:    ErrLibraryType,
		},
	}
	tests[0].row[ColumnSolderJoint] = "two"

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewComponent(7, tt.row)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, tt.err))

			var rerr *RowError
			require.True(t, errors.As(err, &rerr))
			assert.Equal(t, 7, rerr.Row)
			assert.Equal(t, tt.column, rerr.Column)
			assert.Equal(t, tt.row[ColumnLCSCPart], rerr.LCSC)
			assert.Contains(t, rerr.Error(), "row 7")
		})
	}
}

func TestZeroJointsAllowed(t *testing.T) {
	c := testComponent(t, testRow("C5", "X", "Resistors", "", "0402", 0, "base"))
	assert.Equal(t, 0, c.PadCount)
}

func TestGateNameWithoutCategory(t *testing.T) {
	c := testComponent(t, testRow("C1", "X", "", "", "0402", 2, "base"))
	assert.Equal(t, "G$1", c.GateName())
	assert.Equal(t, NoSymbol, c.Symbol())
}

func TestDeviceVariantTruncated(t *testing.T) {
	c := testComponent(t, testRow("C123456789012345678901234567890", "X", "Resistors", "", "0402", 2, "base"))
	assert.Equal(t, "C12345678901234567890123", c.DeviceVariant())
	assert.Len(t, c.DeviceVariant(), 24)
}

func TestIdentify(t *testing.T) {
	n := NewNormalizer(nil)
	c := testComponent(t, testRow("C25744", "0402WGF1002TCE (reel)", "Resistors", "", "0402", 2, "base"))

	candidate := n.Identify(c)
	assert.Same(t, c, candidate.Component)
	assert.Equal(t, "0402WGF1002TCE_REEL", candidate.DeviceName)
	assert.Equal(t, Resistor, candidate.Symbol)
	assert.Equal(t, "RESISTOR_0402WGF1002TCE_REEL", candidate.GateSymbol)
	assert.Equal(t, "RESISTOR_0402", candidate.PackageID)
	assert.Equal(t, "R", candidate.Prefix)
	assert.Equal(t, "0402WGF1002TCE", candidate.Value)
	assert.Equal(t, "UNI-ROYAL(Uniroyal Elec)'s 0402WGF1002TCE_REEL", candidate.DisplayName())
}

func TestGateNameNonASCII(t *testing.T) {
	c := testComponent(t, testRow("C1", "X", "Éclairage", "", "0402", 2, "base"))
	assert.Equal(t, "É$1", c.GateName())

	c = testComponent(t, testRow("C2", "X", "ölfilter", "", "0402", 2, "base"))
	assert.Equal(t, "Ö$1", c.GateName())
}
