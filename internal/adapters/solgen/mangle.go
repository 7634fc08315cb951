package solgen

import (
	"strings"
	"unicode"
)

// FacetConstantName mangles a facet name into its generated constant
// identifier: strip a trailing "Facet" suffix, insert an underscore
// before each internal uppercase letter, uppercase everything, strip a
// leading underscore, append "_FACET".
//
//	DiamondCutFacet -> DIAMOND_CUT_FACET
//	Ownership       -> OWNERSHIP_FACET
func FacetConstantName(name string) string {
	base := strings.TrimSuffix(name, "Facet")
	if base == "" {
		base = name
	}

	var b strings.Builder
	for i, r := range base {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}

	return strings.TrimPrefix(b.String(), "_") + "_FACET"
}
