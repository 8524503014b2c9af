// Package textcode scans overlay text for formatting escapes.
package textcode

import (
	"strings"
	"unicode/utf8"
)

// Marker introduces a formatting escape.
const Marker = '§'

// Kind classifies a scanned token.
type Kind int

const (
	// Glyph is a visible rune.
	Glyph Kind = iota
	// Code is a two-rune escape such as "§c".
	Code
	// Tag is a bracketed escape such as "§[bold]".
	Tag
)

// Token is a single scanned element of a string.
type Token struct {
	Kind Kind
	// Rune is the visible rune for Glyph and the code rune for Code.
	Rune rune
	// Tag holds the text between the brackets for Tag.
	Tag string
}

// Scan calls fn for every token in text, left to right. An unterminated tag
// swallows the rest of the string and a trailing lone marker is dropped.
func Scan(text string, fn func(Token)) {
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r != Marker {
			fn(Token{Kind: Glyph, Rune: r})
			i += size
			continue
		}
		i += size
		if i >= len(text) {
			return
		}
		next, nsize := utf8.DecodeRuneInString(text[i:])
		if next == '[' {
			rest := text[i+nsize:]
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				fn(Token{Kind: Tag, Tag: rest})
				return
			}
			fn(Token{Kind: Tag, Tag: rest[:end]})
			i += nsize + end + 1
			continue
		}
		fn(Token{Kind: Code, Rune: next})
		i += nsize
	}
}

// Width measures text as the sum of charWidth plus spacing for every visible
// rune, minus one trailing spacing. The empty string measures -spacing.
func Width(text string, charWidth func(rune) int, spacing int) int {
	width := 0
	Scan(text, func(t Token) {
		if t.Kind == Glyph {
			width += charWidth(t.Rune) + spacing
		}
	})
	return width - spacing
}

// Strip returns text with every escape removed.
func Strip(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	Scan(text, func(t Token) {
		if t.Kind == Glyph {
			b.WriteRune(t.Rune)
		}
	})
	return b.String()
}
