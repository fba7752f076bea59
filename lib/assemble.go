package lib

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const GeneratedDescription = "JLCPCB automatically generated library"

/*
	Assembler folds the components of one group into an Eagle library
*/
type Assembler struct {
	Template   *Template
	Normalizer *Normalizer
	Log        *Log
}

/*
	Assembly is the result of assembling one group
*/
type Assembly struct {
	Group      string
	Library    *EagleLibrary
	Accepted   int
	Matches    []*Match
	Rejections []*Rejection
}

/*
	Assemble validates each component in order and merges the accepted ones
	into device-sets keyed by device name. The returned library holds only the
	template symbols and packages that accepted devices reference.
*/
func (a *Assembler) Assemble(group string, components []*Component) *Assembly {
	assembly := &Assembly{Group: group}

	devicesets := []*EagleLibraryDeviceSet{}
	byName := make(map[string]*EagleLibraryDeviceSet)
	variants := make(map[string]bool)
	symbols := make(map[string]bool)
	packages := make(map[string]bool)

	for _, component := range components {
		candidate := a.Normalizer.Identify(component)
		match, err := Validate(candidate, a.Template)
		if err != nil {
			rejection := err.(*Rejection)
			assembly.Rejections = append(assembly.Rejections, rejection)
			a.Log.Reject(rejection)
			continue
		}

		deviceset, ok := byName[candidate.DeviceName]
		if !ok {
			/*
				<gates>
					<gate name="R$1" symbol="RESISTOR" x="0" y="0"/>
				</gates>
			*/
			deviceset = &EagleLibraryDeviceSet{
				Name:   candidate.DeviceName,
				Prefix: candidate.Prefix,
				Gates: []*EagleLibraryGate{
					{
						Name:   component.GateName(),
						Symbol: match.SymbolName(),
						X:      "0",
						Y:      "0",
					},
				},
			}
			byName[candidate.DeviceName] = deviceset
			devicesets = append(devicesets, deviceset)
		}

		variant := deviceset.Name + "/" + component.DeviceVariant()
		if variants[variant] {
			a.Log.Infof("Skipped duplicate part %s in %s", component.LCSCPart, deviceset.Name)
			continue
		}
		variants[variant] = true

		deviceset.Devices = append(deviceset.Devices, newDevice(match, deviceset.Gates[0].Name))
		symbols[match.SymbolName()] = true
		packages[match.Package.Name] = true
		assembly.Matches = append(assembly.Matches, match)
		assembly.Accepted++
	}

	assembly.Library = a.Template.Pruned(symbols, packages)
	assembly.Library.Description = GeneratedDescription
	assembly.Library.DeviceSets = devicesets

	return assembly
}

/*
	<device name="C25744" package="RESISTOR_0402">
		<connects>
			<connect gate="R$1" pin="1" pad="1"/>
			<connect gate="R$1" pin="2" pad="2"/>
		</connects>
		<technologies>
			<technology name="">
				<attribute name="LCSC_PART" value="C25744" constant="no"/>
				<attribute name="JLCPCB_IS_BASIC" value="yes" constant="no"/>
				<attribute name="VALUE" value="0402WGF1002TCE" constant="no"/>
			</technology>
		</technologies>
	</device>
*/
func newDevice(m *Match, gate string) *EagleLibraryDevice {
	component := m.Candidate.Component

	/*
		Pin i connects to pad i. The template must list pins and pads in
		electrically matching order.
	*/
	connects := make([]*EagleLibraryConnect, 0, component.PadCount)
	for i := 0; i < component.PadCount; i++ {
		connects = append(connects, &EagleLibraryConnect{
			Gate: gate,
			Pin:  m.Symbol.Pins[i].Name,
			Pad:  m.Package.SMDs[i].Name,
		})
	}

	basic := "yes"
	if component.Expanded {
		basic = "no"
	}

	return &EagleLibraryDevice{
		Name:     component.DeviceVariant(),
		Package:  m.Package.Name,
		Connects: connects,
		Technologies: []*EagleLibraryTechnology{
			{
				Name: "",
				Attributes: []*EagleLibraryAttribute{
					{Name: "LCSC_PART", Value: component.LCSCPart, Constant: "no"},
					{Name: "JLCPCB_IS_BASIC", Value: basic, Constant: "no"},
					{Name: "VALUE", Value: m.Candidate.Value, Constant: "no"},
				},
			},
		},
	}
}

/*
	LibraryPath is where the library for a group is written
*/
func LibraryPath(dir, group string) string {
	name := strings.NewReplacer("/", "-", "\\", "-").Replace(group)
	return filepath.Join(dir, name+".lbr")
}

/*
	Write serializes the assembly into dir. Nothing is written when no
	component was accepted; the returned bool reports whether a file was
	written.
*/
func (a *Assembly) Write(dir string, l *Log) (string, bool, error) {
	dst := LibraryPath(dir, a.Group)
	if a.Accepted == 0 {
		l.Infof("Skipped writing to %s, no components generated", dst)
		return dst, false, nil
	}

	data, err := a.Library.Encode()
	if err != nil {
		return dst, false, err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return dst, false, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return dst, false, fmt.Errorf("failed to write library: %w", err)
	}

	l.Infof("Wrote %d components in %.2fKB to %s", a.Accepted, float64(len(data))/1024, dst)

	return dst, true, nil
}
