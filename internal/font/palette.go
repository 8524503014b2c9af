package font

import "mad-hud/internal/core"

// shadowFactor darkens the shadow pass to a quarter of the text colour.
const shadowFactor = 0.25

var palette = [16]core.Color{
	core.Hex(0x000000),
	core.Hex(0x0000AA),
	core.Hex(0x00AA00),
	core.Hex(0x00AAAA),
	core.Hex(0xAA0000),
	core.Hex(0xAA00AA),
	core.Hex(0xFFAA00),
	core.Hex(0xAAAAAA),
	core.Hex(0x555555),
	core.Hex(0x5555FF),
	core.Hex(0x55FF55),
	core.Hex(0x55FFFF),
	core.Hex(0xFF5555),
	core.Hex(0xFF55FF),
	core.Hex(0xFFFF55),
	core.Hex(0xFFFFFF),
}

// PaletteColor maps a colour code ('0'-'9', 'a'-'f', case-insensitive) to
// its palette entry.
func PaletteColor(code rune) (core.Color, bool) {
	switch {
	case code >= '0' && code <= '9':
		return palette[code-'0'], true
	case code >= 'a' && code <= 'f':
		return palette[code-'a'+10], true
	case code >= 'A' && code <= 'F':
		return palette[code-'A'+10], true
	}
	return core.Color{}, false
}
