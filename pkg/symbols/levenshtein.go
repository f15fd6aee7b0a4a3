package symbols

// maxEditInput bounds the strings fed to the full DP matrix. Catalog names
// and normalized labels are short; anything past this length is treated as
// maximally dissimilar rather than spending O(n*m) memory on it.
const maxEditInput = 1000

// Levenshtein computes the classic edit distance (insert, delete,
// substitute, all cost 1) between a and b over runes.
//
// Inputs longer than maxEditInput runes short-circuit to
// max(len(a), len(b)) - a safety valve, not an approximation used in
// normal operation.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)

	if la > maxEditInput || lb > maxEditInput {
		return max(la, lb)
	}
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Two-row rolling window over the full edit matrix.
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[lb]
}

// editScore converts an edit distance to a [0,1] similarity.
// Two empty strings are identical by definition.
func editScore(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}
	return 1 - float64(Levenshtein(a, b))/float64(longest)
}
