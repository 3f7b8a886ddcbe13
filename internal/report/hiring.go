package report

import (
	"sort"
	"strconv"

	"github.com/iamsumansaha/MNC-HR-Analysis/internal/dataset"
)

// YearRow is one row of Q5.
type YearRow struct {
	Year  int
	Hires int
}

// HiresPerYear computes Q5 over the normalized rows (the only report that
// needs the parsed hire date). Count desc, then year asc.
func HiresPerYear(rows []dataset.NormalizedEmployee) []YearRow {
	counts := make(map[int]int)
	for _, e := range rows {
		counts[e.DateOfHire.Year()]++
	}

	out := make([]YearRow, 0, len(counts))
	for year, n := range counts {
		out = append(out, YearRow{Year: year, Hires: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Hires != out[j].Hires {
			return out[i].Hires > out[j].Hires
		}
		return out[i].Year < out[j].Year
	})
	return out
}

// CommonTitle is one row of Q10: the most common job title in a department.
// A department with tied top titles contributes one row per tied title.
type CommonTitle struct {
	Department string
	JobTitle   string
	Count      int
}

// MostCommonTitlePerDepartment computes Q10. Department asc, title asc among
// ties.
func MostCommonTitlePerDepartment(rows []dataset.Employee) []CommonTitle {
	groups := groupBy(rows, byDepartment)

	var out []CommonTitle
	for _, dept := range sortedKeys(groups) {
		counts := make(map[string]int)
		for _, e := range groups[dept] {
			counts[e.JobTitle]++
		}

		best := 0
		for _, n := range counts {
			if n > best {
				best = n
			}
		}
		for _, title := range sortedKeys(counts) {
			if counts[title] == best {
				out = append(out, CommonTitle{
					Department: dept,
					JobTitle:   title,
					Count:      best,
				})
			}
		}
	}
	return out
}

func formatYear(y int) string { return strconv.Itoa(y) }
