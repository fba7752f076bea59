package lib

import "strings"

// Catalog package names that share a footprint with a template package.
var packageAliases = map[string]string{
	"SOT-23-3L":      "SOT-23-3",
	"SOT-23-6L":      "SOT-23-6",
	"SOT-323F":       "SOT-323",
	"SOD-123FL":      "SOD-123",
	"SMBF":           "SMB",
	"SOIC-16_300mil": "SOIC-16",
}

// Applied to composed package ids.
var packageFixups = strings.NewReplacer(
	"LED_LED_", "LED_",
)

/*
	ResolvePackage composes the template package id for a symbol and a raw
	catalog package field. Only the first comma separated package is used.
*/
func ResolvePackage(symbol Symbol, raw string) string {
	candidate := strings.TrimSpace(strings.SplitN(raw, ",", 2)[0])
	if alias, ok := packageAliases[candidate]; ok {
		candidate = alias
	}

	return packageFixups.Replace(strings.ToUpper(string(symbol) + "_" + candidate))
}
