package rendering

import "github.com/jonathan/resume-builder/internal/types"

// Tokens is the spacing and type scale of one density profile. Every size in
// the preview comes from this table.
type Tokens struct {
	HeaderPadding string
	BodyPadding   string
	ColumnGap     string
	SectionGap    string
	EntryGap      string
	HeadingGap    string

	NameSize    string
	TitleSize   string
	HeadingSize string
	BodySize    string
	SmallSize   string
	LineHeight  string
}

var densityTokens = map[types.Density]Tokens{
	types.DensityComfortable: {
		HeaderPadding: "40px 40px 24px",
		BodyPadding:   "24px 40px 40px",
		ColumnGap:     "32px",
		SectionGap:    "24px",
		EntryGap:      "20px",
		HeadingGap:    "16px",
		NameSize:      "36px",
		TitleSize:     "20px",
		HeadingSize:   "16px",
		BodySize:      "14px",
		SmallSize:     "12px",
		LineHeight:    "1.625",
	},
	types.DensityCompact: {
		HeaderPadding: "24px 32px 16px",
		BodyPadding:   "16px 32px 24px",
		ColumnGap:     "24px",
		SectionGap:    "16px",
		EntryGap:      "12px",
		HeadingGap:    "10px",
		NameSize:      "30px",
		TitleSize:     "17px",
		HeadingSize:   "14px",
		BodySize:      "12.5px",
		SmallSize:     "11px",
		LineHeight:    "1.4",
	},
}

// TokensFor returns the token table of density; unknown densities use comfortable.
func TokensFor(density types.Density) Tokens {
	if t, ok := densityTokens[density]; ok {
		return t
	}
	return densityTokens[types.DensityComfortable]
}
