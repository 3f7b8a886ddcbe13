package report

// CompetitionRanks assigns standard competition ranks (1,2,2,4) to n items
// already sorted into ranking order. sameAs reports whether item i ties with
// item i-1. Tied items share a rank and the next distinct item's rank skips
// by the number of ties.
func CompetitionRanks(n int, sameAs func(i int) bool) []int {
	if n == 0 {
		return nil
	}

	ranks := make([]int, n)
	ranks[0] = 1
	for i := 1; i < n; i++ {
		if sameAs(i) {
			ranks[i] = ranks[i-1]
		} else {
			ranks[i] = i + 1
		}
	}
	return ranks
}
