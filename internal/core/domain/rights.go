package domain

// RightsBracket associates a minimum weight threshold with the statutory
// rights unlocked at that threshold.
type RightsBracket struct {
	Threshold Weight   `json:"threshold"`
	Rights    []string `json:"rights"`
}

// shareholderRights lists the statutory rights of minority shareholders by
// minimum weight, in ascending threshold order. A shareholder holds the
// concatenation of every bracket at or below its weight.
var shareholderRights = []RightsBracket{
	{
		Threshold: Fraction(1, 20), // 5%
		Rights: []string{
			"apply to court to prevent the conversion of a public company into a private company",
			"call a general meeting",
			"require the circulation of a written resolution to shareholders (in private companies)",
			"require the passing of a resolution at an annual general meeting (AGM) of a public company.",
		},
	},
	{
		Threshold: Fraction(1, 10), // 10%
		Rights: []string{
			"call for a poll vote on a resolution",
			"right to prevent a meeting being held on short notice (in private companies).",
		},
	},
	{
		Threshold: Fraction(3, 20), // 15%
		Rights: []string{
			"apply to the court to cancel a variation of class rights, provided such shareholders did not consent to, or vote in favour of, the variation.",
		},
	},
	{
		Threshold: Fraction(1, 4), // 25%
		Rights: []string{
			"prevent the passing of a special resolution",
		},
	},
}

// RightsBrackets returns a copy of the rights table.
func RightsBrackets() []RightsBracket {
	out := make([]RightsBracket, len(shareholderRights))
	copy(out, shareholderRights)
	return out
}

// RightsFor returns the rights of a shareholder with the given weight:
// all brackets whose threshold is at or below the weight, concatenated in
// ascending threshold order, duplicates preserved.
func RightsFor(w Weight) []string {
	rights := []string{}
	for _, bracket := range shareholderRights {
		if w.AtLeast(bracket.Threshold) {
			rights = append(rights, bracket.Rights...)
		}
	}
	return rights
}
