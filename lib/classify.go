package lib

/*
	Symbol is the name of a generic schematic symbol in the template library
*/
type Symbol string

const (
	NoSymbol  Symbol = ""
	Resistor  Symbol = "RESISTOR"
	Capacitor Symbol = "CAPACITOR"
	Diode     Symbol = "DIODE"
	Crystal   Symbol = "CRYSTAL"
	Fuse      Symbol = "FUSE"
	LED       Symbol = "LED"
	IC        Symbol = "IC"
)

var firstCategorySymbols = map[string]Symbol{
	"Resistors":                         Resistor,
	"Capacitors":                        Capacitor,
	"Diodes":                            Diode,
	"Crystals":                          Crystal,
	"Fuses":                             Fuse,
	"Embedded Processors & Controllers": IC,
	"Power Management ICs":              IC,
	"Driver ICs":                        IC,
	"Logic ICs":                         IC,
	"Analog ICs":                        IC,
	"Interface ICs":                     IC,
	"Memory":                            IC,
}

/*
	Categories whose symbol depends on the second category. Second categories
	missing from the inner table are unmapped.
*/
var secondCategorySymbols = map[string]map[string]Symbol{
	"Optocouplers & LEDs & Infrared": {
		"Light Emitting Diodes (LED)": LED,
	},
}

/*
	Classify maps a catalog category pair onto a generic symbol. NoSymbol means
	the pair cannot be classified.
*/
func Classify(first, second string) Symbol {
	if seconds, ok := secondCategorySymbols[first]; ok {
		return seconds[second]
	}

	return firstCategorySymbols[first]
}

/*
	Prefix returns the reference designator prefix used for a symbol
*/
func (s Symbol) Prefix() string {
	switch s {
	case NoSymbol:
		return ""
	case Crystal:
		return "Y"
	case LED:
		return "D"
	case IC:
		return "U"
	}

	return string(s)[:1]
}
