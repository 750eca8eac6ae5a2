package view

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Palette holds the decorative card colors, as hex RGB.
var Palette = []string{
	"#bbf7d0", // green
	"#bfdbfe", // blue
	"#e9d5ff", // purple
	"#fecaca", // red
	"#fef08a", // yellow
	"#fbcfe8", // pink
	"#c7d2fe", // indigo
	"#99f6e4", // teal
	"#a5f3fc", // cyan
	"#fde68a", // amber
	"#d9f99d", // lime
	"#fed7aa", // orange
	"#f5d0fe", // fuchsia
	"#a7f3d0", // emerald
	"#34d399", // emerald, darker
	"#a78bfa", // violet
}

// Swatch picks a palette color for a note.
// The choice depends only on the id, so a card keeps its color across renders.
func Swatch(id int64) string {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id))
	return Palette[xxhash.Sum64(buf[:])%uint64(len(Palette))]
}
