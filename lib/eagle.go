package lib

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

/*
	Eagle .lbr document model. Attributes and elements the generator does
	not read are kept raw so that template definitions survive unchanged.
*/

const eagleDoctype = `<!DOCTYPE eagle SYSTEM "eagle.dtd">` + "\n"

type EagleLibrary struct {
	Version     string
	Name        string
	Settings    []*EagleLibrarySetting
	Grid        *EagleLibraryGrid
	Layers      []*EagleLibraryLayer
	Description string
	Packages    []*EagleLibraryPackage
	Symbols     []*EagleLibrarySymbol
	DeviceSets  []*EagleLibraryDeviceSet

	extras eagleExtras
}

/*
	Attributes and elements of the eagle, drawing and library levels that
	the model does not name. They are written back unchanged.
*/
type eagleExtras struct {
	attrs           []xml.Attr
	elements        []*EagleLibraryElement
	drawing         []*EagleLibraryElement
	libraryAttrs    []xml.Attr
	libraryElements []*EagleLibraryElement
}

/*
	On-disk layout of an .lbr document
*/
type eagleDocument struct {
	XMLName  xml.Name               `xml:"eagle"`
	Version  string                 `xml:"version,attr,omitempty"`
	Attrs    []xml.Attr             `xml:",any,attr"`
	Drawing  eagleDrawing           `xml:"drawing"`
	Elements []*EagleLibraryElement `xml:",any"`
}

type eagleDrawing struct {
	Settings []*EagleLibrarySetting `xml:"settings>setting"`
	Grid     *EagleLibraryGrid      `xml:"grid"`
	Layers   []*EagleLibraryLayer   `xml:"layers>layer"`
	Library  eagleLibrary           `xml:"library"`
	Elements []*EagleLibraryElement `xml:",any"`
}

type eagleLibrary struct {
	Name        string                   `xml:"name,attr,omitempty"`
	Attrs       []xml.Attr               `xml:",any,attr"`
	Description string                   `xml:"description,omitempty"`
	Packages    []*EagleLibraryPackage   `xml:"packages>package"`
	Symbols     []*EagleLibrarySymbol    `xml:"symbols>symbol"`
	DeviceSets  []*EagleLibraryDeviceSet `xml:"devicesets>deviceset"`
	Elements    []*EagleLibraryElement   `xml:",any"`
}

/*
	EagleLibraryElement is an element kept verbatim, e.g. <hole> or <frame>
*/
type EagleLibraryElement struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Inner   string     `xml:",innerxml"`
}

func (l *EagleLibrary) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	doc := eagleDocument{}
	if err := d.DecodeElement(&doc, &start); err != nil {
		return err
	}

	library := doc.Drawing.Library
	*l = EagleLibrary{
		Version:     doc.Version,
		Name:        library.Name,
		Settings:    doc.Drawing.Settings,
		Grid:        doc.Drawing.Grid,
		Layers:      doc.Drawing.Layers,
		Description: library.Description,
		Packages:    library.Packages,
		Symbols:     library.Symbols,
		DeviceSets:  library.DeviceSets,
		extras: eagleExtras{
			attrs:           doc.Attrs,
			elements:        doc.Elements,
			drawing:         doc.Drawing.Elements,
			libraryAttrs:    library.Attrs,
			libraryElements: library.Elements,
		},
	}

	return nil
}

func (l *EagleLibrary) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.Encode(&eagleDocument{
		Version: l.Version,
		Attrs:   l.extras.attrs,
		Drawing: eagleDrawing{
			Settings: l.Settings,
			Grid:     l.Grid,
			Layers:   l.Layers,
			Library: eagleLibrary{
				Name:        l.Name,
				Attrs:       l.extras.libraryAttrs,
				Description: l.Description,
				Packages:    l.Packages,
				Symbols:     l.Symbols,
				DeviceSets:  l.DeviceSets,
				Elements:    l.extras.libraryElements,
			},
			Elements: l.extras.drawing,
		},
		Elements: l.extras.elements,
	})
}

type EagleLibrarySetting struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

type EagleLibraryGrid struct {
	Distance    string `xml:"distance,attr,omitempty"`
	Unitdist    string `xml:"unitdist,attr,omitempty"`
	Unit        string `xml:"unit,attr,omitempty"`
	Style       string `xml:"style,attr,omitempty"`
	Multiple    string `xml:"multiple,attr,omitempty"`
	Display     string `xml:"display,attr,omitempty"`
	Altdistance string `xml:"altdistance,attr,omitempty"`
	Altunitdist string `xml:"altunitdist,attr,omitempty"`
	Altunit     string `xml:"altunit,attr,omitempty"`
}

type EagleLibraryLayer struct {
	Number  string `xml:"number,attr"`
	Name    string `xml:"name,attr"`
	Color   string `xml:"color,attr,omitempty"`
	Fill    string `xml:"fill,attr,omitempty"`
	Visible string `xml:"visible,attr,omitempty"`
	Active  string `xml:"active,attr,omitempty"`
}

type EagleLibraryPackage struct {
	Name        string                    `xml:"name,attr"`
	Description string                    `xml:"description,omitempty"`
	Wires       []*EagleLibraryWire       `xml:"wire"`
	SMDs        []*EagleLibrarySMD        `xml:"smd"`
	Pads        []*EagleLibraryPackagePad `xml:"pad"`
	Texts       []*EagleLibraryText       `xml:"text"`
	Rectangles  []*EagleLibraryRectangle  `xml:"rectangle"`
	Polygons    []*EagleLibraryPolygon    `xml:"polygon"`
	Circles     []*EagleLibraryCircle     `xml:"circle"`
	Attrs       []xml.Attr                `xml:",any,attr"`
	Elements    []*EagleLibraryElement    `xml:",any"`
}

type EagleLibrarySMD struct {
	Name      string     `xml:"name,attr"`
	X         string     `xml:"x,attr,omitempty"`
	Y         string     `xml:"y,attr,omitempty"`
	Dx        string     `xml:"dx,attr,omitempty"`
	Dy        string     `xml:"dy,attr,omitempty"`
	Layer     string     `xml:"layer,attr,omitempty"`
	Roundness string     `xml:"roundness,attr,omitempty"`
	Rot       string     `xml:"rot,attr,omitempty"`
	Attrs     []xml.Attr `xml:",any,attr"`
}

type EagleLibraryText struct {
	X     string `xml:"x,attr,omitempty"`
	Y     string `xml:"y,attr,omitempty"`
	Size  string `xml:"size,attr,omitempty"`
	Layer string `xml:"layer,attr,omitempty"`
	Font  string `xml:"font,attr,omitempty"`
	Ratio string `xml:"ratio,attr,omitempty"`
	Rot   string `xml:"rot,attr,omitempty"`
	Align string `xml:"align,attr,omitempty"`
	Text  string `xml:",chardata"`
}

type EagleLibraryWire struct {
	X1    string `xml:"x1,attr"`
	Y1    string `xml:"y1,attr"`
	X2    string `xml:"x2,attr"`
	Y2    string `xml:"y2,attr"`
	Width string `xml:"width,attr,omitempty"`
	Layer string `xml:"layer,attr,omitempty"`
	Curve string `xml:"curve,attr,omitempty"`
}

type EagleLibraryRectangle struct {
	X1    string `xml:"x1,attr"`
	Y1    string `xml:"y1,attr"`
	X2    string `xml:"x2,attr"`
	Y2    string `xml:"y2,attr"`
	Layer string `xml:"layer,attr,omitempty"`
	Rot   string `xml:"rot,attr,omitempty"`
}

type EagleLibraryPackagePad struct {
	Name     string     `xml:"name,attr"`
	X        string     `xml:"x,attr,omitempty"`
	Y        string     `xml:"y,attr,omitempty"`
	Drill    string     `xml:"drill,attr,omitempty"`
	Diameter string     `xml:"diameter,attr,omitempty"`
	Shape    string     `xml:"shape,attr,omitempty"`
	Stop     string     `xml:"stop,attr,omitempty"`
	Attrs    []xml.Attr `xml:",any,attr"`
}

type EagleLibraryPolygon struct {
	Width    string                `xml:"width,attr,omitempty"`
	Layer    string                `xml:"layer,attr,omitempty"`
	Vertices []*EagleLibraryVertex `xml:"vertex"`
}

type EagleLibraryVertex struct {
	X     string `xml:"x,attr"`
	Y     string `xml:"y,attr"`
	Curve string `xml:"curve,attr,omitempty"`
}

type EagleLibraryCircle struct {
	X      string `xml:"x,attr"`
	Y      string `xml:"y,attr"`
	Radius string `xml:"radius,attr"`
	Width  string `xml:"width,attr,omitempty"`
	Layer  string `xml:"layer,attr,omitempty"`
}

type EagleLibraryPin struct {
	Name      string     `xml:"name,attr"`
	X         string     `xml:"x,attr,omitempty"`
	Y         string     `xml:"y,attr,omitempty"`
	Visible   string     `xml:"visible,attr,omitempty"`
	Length    string     `xml:"length,attr,omitempty"`
	Direction string     `xml:"direction,attr,omitempty"`
	Swaplevel string     `xml:"swaplevel,attr,omitempty"`
	Rot       string     `xml:"rot,attr,omitempty"`
	Attrs     []xml.Attr `xml:",any,attr"`
}

type EagleLibrarySymbol struct {
	Name        string                   `xml:"name,attr"`
	Description string                   `xml:"description,omitempty"`
	Wires       []*EagleLibraryWire      `xml:"wire"`
	Polygons    []*EagleLibraryPolygon   `xml:"polygon"`
	Rectangles  []*EagleLibraryRectangle `xml:"rectangle"`
	Circles     []*EagleLibraryCircle    `xml:"circle"`
	Texts       []*EagleLibraryText      `xml:"text"`
	Pins        []*EagleLibraryPin       `xml:"pin"`
	Attrs       []xml.Attr               `xml:",any,attr"`
	Elements    []*EagleLibraryElement   `xml:",any"`
}

type EagleLibraryDeviceSet struct {
	Name        string                `xml:"name,attr"`
	Prefix      string                `xml:"prefix,attr,omitempty"`
	Description string                `xml:"description,omitempty"`
	Gates       []*EagleLibraryGate   `xml:"gates>gate"`
	Devices     []*EagleLibraryDevice `xml:"devices>device"`
}

type EagleLibraryGate struct {
	Name   string `xml:"name,attr"`
	Symbol string `xml:"symbol,attr"`
	X      string `xml:"x,attr"`
	Y      string `xml:"y,attr"`
}

type EagleLibraryDevice struct {
	Name         string                    `xml:"name,attr"`
	Package      string                    `xml:"package,attr"`
	Connects     []*EagleLibraryConnect    `xml:"connects>connect"`
	Technologies []*EagleLibraryTechnology `xml:"technologies>technology"`
}

type EagleLibraryConnect struct {
	Gate string `xml:"gate,attr"`
	Pin  string `xml:"pin,attr"`
	Pad  string `xml:"pad,attr"`
}

type EagleLibraryTechnology struct {
	Name       string                   `xml:"name,attr"`
	Attributes []*EagleLibraryAttribute `xml:"attribute"`
}

type EagleLibraryAttribute struct {
	Name     string `xml:"name,attr"`
	Value    string `xml:"value,attr"`
	Constant string `xml:"constant,attr,omitempty"`
}

/*
	ReadEagleLibrary decodes an .lbr document
*/
func ReadEagleLibrary(r io.Reader) (*EagleLibrary, error) {
	elibrary := &EagleLibrary{}
	dec := xml.NewDecoder(r)
	dec.Strict = false
	if err := dec.Decode(elibrary); err != nil {
		return nil, fmt.Errorf("failed to decode library: %w", err)
	}

	return elibrary, nil
}

func OpenEagleLibrary(src string) (*EagleLibrary, error) {
	fp, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	return ReadEagleLibrary(fp)
}

/*
	Encode renders the library as an indented .lbr document
*/
func (l *EagleLibrary) Encode() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteString(xml.Header)
	buf.WriteString(eagleDoctype)

	enc := xml.NewEncoder(buf)
	enc.Indent("", "  ")
	if err := enc.Encode(l); err != nil {
		return nil, fmt.Errorf("failed to encode library: %w", err)
	}
	buf.WriteString("\n")

	return buf.Bytes(), nil
}

/*
	Shell returns a copy of the document root with an empty library section.
	Shared settings, grid and layers are referenced, not copied; they are
	never modified.
*/
func (l *EagleLibrary) Shell() *EagleLibrary {
	return &EagleLibrary{
		Version:     l.Version,
		Name:        l.Name,
		Settings:    l.Settings,
		Grid:        l.Grid,
		Layers:      l.Layers,
		Description: l.Description,
		extras:      l.extras,
	}
}

func (s *EagleLibrarySymbol) PinCount() int {
	return len(s.Pins)
}

func (p *EagleLibraryPackage) PadCount() int {
	return len(p.SMDs)
}
