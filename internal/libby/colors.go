package libby

// colorSymbols maps the raw highlight color codes Libby uses to display
// symbols. The mapping is a presentation contract: the three known codes
// must resolve exactly, everything else falls back to the default.
var colorSymbols = map[string]string{
	"#FFB": "🟡",
	"#DFC": "🟢",
	"#CFF": "🔵",
}

const defaultColorSymbol = "🟡"

// resolveColor returns the display symbol for a raw color code.
// Unknown and absent codes map to the default symbol.
func resolveColor(code string) string {
	if symbol, ok := colorSymbols[code]; ok {
		return symbol
	}
	return defaultColorSymbol
}
