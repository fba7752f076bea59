package lib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAssembler(t *testing.T) *Assembler {
	t.Helper()
	return &Assembler{Template: testTemplate(t), Normalizer: NewNormalizer(nil), Log: testLog(t)}
}

func resistorComponents(t *testing.T) []*Component {
	return []*Component{
		testComponent(t, testRow("C25744", "0402WGF1002TCE", "Resistors", "", "0402", 2, "base")),
		testComponent(t, testRow("C1", "HDR-1x2", "Connectors", "", "P=2.54mm", 2, "base")),
		testComponent(t, testRow("C11702", "0402WGF1002TCE", "Resistors", "", "0402", 2, "base")),
		testComponent(t, testRow("C25744", "0402WGF1002TCE", "Resistors", "", "0402", 2, "base")),
		testComponent(t, testRow("C25804", "0603WAF1002T5E", "Resistors", "", "0603", 2, "base")),
	}
}

func TestAssemble(t *testing.T) {
	assembly := testAssembler(t).Assemble("Resistors.basic", resistorComponents(t))

	assert.Equal(t, "Resistors.basic", assembly.Group)
	assert.Equal(t, 3, assembly.Accepted)
	assert.Len(t, assembly.Matches, 3)
	require.Len(t, assembly.Rejections, 1)
	assert.Equal(t, NoSymbolMapping, assembly.Rejections[0].Reason)

	library := assembly.Library
	assert.Equal(t, GeneratedDescription, library.Description)
	assert.Equal(t, "9.6.2", library.Version)

	require.Len(t, library.DeviceSets, 2)
	first := library.DeviceSets[0]
	assert.Equal(t, "0402WGF1002TCE", first.Name)
	assert.Equal(t, "R", first.Prefix)
	require.Len(t, first.Gates, 1)
	assert.Equal(t, "R$1", first.Gates[0].Name)
	assert.Equal(t, "RESISTOR", first.Gates[0].Symbol)

	require.Len(t, first.Devices, 2)
	assert.Equal(t, "C25744", first.Devices[0].Name)
	assert.Equal(t, "C11702", first.Devices[1].Name)

	device := first.Devices[0]
	assert.Equal(t, "RESISTOR_0402", device.Package)
	assert.Equal(t, []*EagleLibraryConnect{
		{Gate: "R$1", Pin: "1", Pad: "1"},
		{Gate: "R$1", Pin: "2", Pad: "2"},
	}, device.Connects)
	require.Len(t, device.Technologies, 1)
	assert.Equal(t, []*EagleLibraryAttribute{
		{Name: "LCSC_PART", Value: "C25744", Constant: "no"},
		{Name: "JLCPCB_IS_BASIC", Value: "yes", Constant: "no"},
		{Name: "VALUE", Value: "0402WGF1002TCE", Constant: "no"},
	}, device.Technologies[0].Attributes)

	assert.Equal(t, "0603WAF1002T5E", library.DeviceSets[1].Name)
}

func TestAssemblePrunesTemplate(t *testing.T) {
	a := testAssembler(t)
	assembly := a.Assemble("Resistors.basic", resistorComponents(t))

	symbols := []string{}
	for _, symbol := range assembly.Library.Symbols {
		symbols = append(symbols, symbol.Name)
	}
	packages := []string{}
	for _, pkg := range assembly.Library.Packages {
		packages = append(packages, pkg.Name)
	}

	assert.Equal(t, []string{"RESISTOR"}, symbols)
	assert.Equal(t, []string{"RESISTOR_0402", "RESISTOR_0603"}, packages)
	for _, deviceset := range assembly.Library.DeviceSets {
		assert.NotEqual(t, "OLD", deviceset.Name)
	}

	// The template is left untouched for the next group.
	template := a.Template.Library()
	assert.Len(t, template.Symbols, 7)
	assert.Len(t, template.Packages, 6)
	require.Len(t, template.DeviceSets, 1)
	assert.Equal(t, "OLD", template.DeviceSets[0].Name)
	assert.Empty(t, template.Description)
}

func TestAssembleBespokeSymbol(t *testing.T) {
	components := []*Component{
		testComponent(t, testRow("C81598", "1N4148W", "Diodes", "Switching Diode", "SOD-123FL", 2, "expand")),
		testComponent(t, testRow("C2128", "1N4148", "Diodes", "Switching Diode", "SOD-123", 2, "expand")),
	}

	assembly := testAssembler(t).Assemble("Diodes.expanded", components)
	require.Equal(t, 2, assembly.Accepted)

	bespoke := assembly.Library.DeviceSets[0]
	assert.Equal(t, "1N4148W", bespoke.Name)
	assert.Equal(t, "D", bespoke.Prefix)
	assert.Equal(t, "DIODE_1N4148W", bespoke.Gates[0].Symbol)
	assert.Equal(t, []*EagleLibraryConnect{
		{Gate: "D$1", Pin: "K", Pad: "C"},
		{Gate: "D$1", Pin: "A", Pad: "A"},
	}, bespoke.Devices[0].Connects)
	assert.Equal(t, "no", bespoke.Devices[0].Technologies[0].Attributes[1].Value)

	assert.Equal(t, "DIODE", assembly.Library.DeviceSets[1].Gates[0].Symbol)

	symbols := []string{}
	for _, symbol := range assembly.Library.Symbols {
		symbols = append(symbols, symbol.Name)
	}
	assert.Equal(t, []string{"DIODE", "DIODE_1N4148W"}, symbols)
}

func TestAssembleDeterministic(t *testing.T) {
	first, err := testAssembler(t).Assemble("Resistors.basic", resistorComponents(t)).Library.Encode()
	require.NoError(t, err)
	second, err := testAssembler(t).Assemble("Resistors.basic", resistorComponents(t)).Library.Encode()
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestAssemblyWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "lbr")
	l := testLog(t)

	assembly := testAssembler(t).Assemble("Resistors.basic", resistorComponents(t))
	dst, written, err := assembly.Write(dir, l)
	require.NoError(t, err)
	assert.True(t, written)
	assert.Equal(t, filepath.Join(dir, "Resistors.basic.lbr"), dst)

	library, err := OpenEagleLibrary(dst)
	require.NoError(t, err)
	assert.Equal(t, GeneratedDescription, library.Description)
	require.Len(t, library.DeviceSets, 2)
	assert.Len(t, library.DeviceSets[0].Devices, 2)
	assert.Equal(t, "LCSC_PART", library.DeviceSets[0].Devices[0].Technologies[0].Attributes[0].Name)
}

func TestAssemblyWriteNothingAccepted(t *testing.T) {
	dir := t.TempDir()
	components := []*Component{
		testComponent(t, testRow("C1", "HDR-1x2", "Connectors", "", "P=2.54mm", 2, "base")),
	}

	assembly := testAssembler(t).Assemble("Connectors.basic", components)
	assert.Equal(t, 0, assembly.Accepted)
	assert.Empty(t, assembly.Library.DeviceSets)
	assert.Empty(t, assembly.Library.Symbols)
	assert.Empty(t, assembly.Library.Packages)

	dst, written, err := assembly.Write(dir, testLog(t))
	require.NoError(t, err)
	assert.False(t, written)
	_, err = os.Stat(dst)
	assert.True(t, os.IsNotExist(err))
}

func TestLibraryPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "Resistors.basic.lbr"), LibraryPath("out", "Resistors.basic"))
	assert.Equal(t, filepath.Join("out", "Crystals-Oscillators.basic.lbr"), LibraryPath("out", "Crystals/Oscillators.basic"))
	assert.Equal(t, filepath.Join("out", "A-B.expanded.lbr"), LibraryPath("out", `A\B.expanded`))
}
