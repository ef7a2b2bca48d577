// Package typography maps vertical-rhythm multipliers onto concrete CSS lengths.
package typography

import (
	"math"
	"strconv"
)

const (
	defaultFontSize   = 21
	defaultLineHeight = 1.75
)

// Typography describes the base scale of the site theme.
type Typography struct {
	BaseFontSize   float64 // px
	BaseLineHeight float64 // unitless, relative to BaseFontSize
}

// Default returns the blog theme scale: 21px type on a 1.75 line height.
func Default() Typography {
	return Typography{BaseFontSize: defaultFontSize, BaseLineHeight: defaultLineHeight}
}

// Rhythm returns multiplier lines of the base line height in rem.
func (t Typography) Rhythm(multiplier float64) string {
	lh := t.BaseLineHeight
	if lh <= 0 {
		lh = defaultLineHeight
	}
	v := math.Round(multiplier*lh*1e5) / 1e5
	return strconv.FormatFloat(v, 'f', -1, 64) + "rem"
}
