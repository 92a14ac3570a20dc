package match

import (
	"math"

	"github.com/agext/levenshtein"
)

// ExactThreshold is the score of an exact (post-normalization) match.
const ExactThreshold = 100

// indelParams weights a substitution as a delete plus an insert, so the
// distance counts unmatched characters and 100·(total-dist)/total equals
// the 2·matches/total similarity ratio.
var indelParams = levenshtein.NewParams().InsCost(1).DelCost(1).SubCost(2)

// Score returns the best similarity between the response and the accepted
// strings as an integer in [0,100]. Both sides are normalized first;
// identical normalized strings score exactly 100.
func Score(response string, accepted []string) int {
	score, _ := BestMatch(response, accepted)
	return score
}

// BestMatch returns the best score and the index of the accepted string
// that produced it. Ties go to the earliest accepted string.
func BestMatch(response string, accepted []string) (score, index int) {
	normResp := Normalize(response)
	index = -1
	for i, a := range accepted {
		if r := ratio(normResp, Normalize(a)); r > score || index < 0 {
			score, index = r, i
		}
	}
	return score, index
}

// IsValid reports whether the response scores at or above the threshold
// against any accepted string. Exact-match review modes pass 100; fuzzy
// modes pass their configured minimum.
func IsValid(response string, accepted []string, threshold int) bool {
	return Score(response, accepted) >= threshold
}

// ratio computes the 0-100 similarity of two already-normalized strings.
func ratio(a, b string) int {
	total := len([]rune(a)) + len([]rune(b))
	if total == 0 {
		return ExactThreshold
	}
	dist := levenshtein.Distance(a, b, indelParams)
	return int(math.Round(100 * float64(total-dist) / float64(total)))
}
