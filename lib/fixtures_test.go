package lib

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const templateXML = `<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE eagle SYSTEM "eagle.dtd">
<eagle version="9.6.2">
<drawing>
<settings>
<setting alwaysvectorfont="no"/>
</settings>
<grid distance="0.1" unitdist="inch" unit="inch" style="lines" multiple="1" display="no" altdistance="0.01" altunitdist="inch" altunit="inch"/>
<layers>
<layer number="1" name="Top" color="4" fill="1" visible="yes" active="yes"/>
<layer number="94" name="Symbols" color="4" fill="1" visible="yes" active="yes"/>
</layers>
<library>
<packages>
<package name="RESISTOR_0402">
<smd name="1" x="-0.5" y="0" dx="0.6" dy="0.6" layer="1"/>
<smd name="2" x="0.5" y="0" dx="0.6" dy="0.6" layer="1"/>
</package>
<package name="RESISTOR_0603">
<smd name="1" x="-0.8" y="0" dx="0.8" dy="0.9" layer="1"/>
<smd name="2" x="0.8" y="0" dx="0.8" dy="0.9" layer="1"/>
</package>
<package name="CAPACITOR_0805">
<smd name="1" x="-1" y="0" dx="1" dy="1.2" layer="1"/>
<smd name="2" x="1" y="0" dx="1" dy="1.2" layer="1"/>
</package>
<package name="DIODE_SOD-123">
<smd name="C" x="-1.6" y="0" dx="0.9" dy="1.2" layer="1"/>
<smd name="A" x="1.6" y="0" dx="0.9" dy="1.2" layer="1"/>
</package>
<package name="LED_0603">
<smd name="C" x="-0.8" y="0" dx="0.8" dy="0.9" layer="1"/>
<smd name="A" x="0.8" y="0" dx="0.8" dy="0.9" layer="1"/>
</package>
<package name="IC_SOT-23-3">
<smd name="1" x="-0.95" y="-1" dx="0.6" dy="0.7" layer="1"/>
<smd name="2" x="0.95" y="-1" dx="0.6" dy="0.7" layer="1"/>
<smd name="3" x="0" y="1" dx="0.6" dy="0.7" layer="1"/>
</package>
</packages>
<symbols>
<symbol name="RESISTOR">
<wire x1="-2.54" y1="0" x2="2.54" y2="0" width="0.254" layer="94"/>
<pin name="1" x="-5.08" y="0" visible="off" length="short"/>
<pin name="2" x="5.08" y="0" visible="off" length="short" rot="R180"/>
</symbol>
<symbol name="CAPACITOR">
<pin name="1" x="0" y="2.54" length="short" rot="R270"/>
<pin name="2" x="0" y="-2.54" length="short" rot="R90"/>
</symbol>
<symbol name="DIODE">
<pin name="C" x="-2.54" y="0" length="short"/>
<pin name="A" x="2.54" y="0" length="short" rot="R180"/>
</symbol>
<symbol name="DIODE_1N4148W">
<pin name="K" x="-2.54" y="0" length="short"/>
<pin name="A" x="2.54" y="0" length="short" rot="R180"/>
</symbol>
<symbol name="LED">
<pin name="C" x="0" y="-2.54" length="short" rot="R90"/>
<pin name="A" x="0" y="2.54" length="short" rot="R270"/>
</symbol>
<symbol name="IC">
<pin name="IN" x="-7.62" y="0" length="short"/>
<pin name="GND" x="0" y="-7.62" length="short" rot="R90"/>
<pin name="OUT" x="7.62" y="0" length="short" rot="R180"/>
</symbol>
<symbol name="IC_EMPTY">
</symbol>
</symbols>
<devicesets>
<deviceset name="OLD" prefix="X">
<gates>
<gate name="G$1" symbol="RESISTOR" x="0" y="0"/>
</gates>
<devices>
<device name="" package="RESISTOR_0402">
<connects>
<connect gate="G$1" pin="1" pad="1"/>
<connect gate="G$1" pin="2" pad="2"/>
</connects>
</device>
</devices>
</deviceset>
</devicesets>
</library>
</drawing>
</eagle>
`

func testLibrary(t *testing.T) *EagleLibrary {
	t.Helper()

	elibrary, err := ReadEagleLibrary(strings.NewReader(templateXML))
	require.NoError(t, err)

	return elibrary
}

func testTemplate(t *testing.T) *Template {
	t.Helper()
	return NewTemplate(testLibrary(t))
}

func writeTemplate(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "template.lbr")
	require.NoError(t, os.WriteFile(path, []byte(templateXML), 0644))

	return path
}

func testRow(lcsc, mfrPart, first, second, pkg string, joints int, libraryType string) Row {
	return Row{
		ColumnLCSCPart:       lcsc,
		ColumnMFRPart:        mfrPart,
		ColumnFirstCategory:  first,
		ColumnSecondCategory: second,
		ColumnPackage:        pkg,
		ColumnSolderJoint:    strconv.Itoa(joints),
		ColumnManufacturer:   "UNI-ROYAL(Uniroyal Elec)",
		ColumnLibraryType:    libraryType,
	}
}

func testComponent(t *testing.T, row Row) *Component {
	t.Helper()

	component, err := NewComponent(2, row)
	require.NoError(t, err)

	return component
}

var sheetHeader = []interface{}{
	ColumnLCSCPart, ColumnFirstCategory, ColumnSecondCategory, ColumnMFRPart,
	ColumnPackage, ColumnSolderJoint, ColumnManufacturer, ColumnLibraryType,
	"Description",
}

// writeCatalog writes rows in the catalog's column order.
func writeCatalog(t *testing.T, dst string, rows ...[]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	all := append([][]interface{}{sheetHeader}, rows...)
	for i, row := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	require.NoError(t, f.SaveAs(dst))
}

func catalogRow(lcsc, first, second, mfrPart, pkg, joints, manufacturer, libraryType string) []interface{} {
	return []interface{}{lcsc, first, second, mfrPart, pkg, joints, manufacturer, libraryType, "description"}
}

func testLog(t *testing.T) *Log {
	t.Helper()

	l, err := NewLog(nil, "")
	require.NoError(t, err)

	return l
}
