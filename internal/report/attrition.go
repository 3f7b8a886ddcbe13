package report

import (
	"sort"

	"github.com/iamsumansaha/MNC-HR-Analysis/internal/dataset"
)

// StatusResigned is the status value counted towards attrition. Status is
// canonicalized to lower case at load (dataset.Build), so comparisons here
// are plain equality.
const StatusResigned = "resigned"

// AttritionRow is one row of Q3: headcount, resigned count and the resigned
// percentage for a department. Departments with zero resignations are kept
// with a 0.00% rate, so Resigned plus the non-resigned remainder always adds
// back up to Total.
type AttritionRow struct {
	Department string
	Total      int
	Resigned   int
	Rate       float64
}

// AttritionByDepartment computes Q3, department asc.
func AttritionByDepartment(rows []dataset.Employee) []AttritionRow {
	groups := groupBy(rows, byDepartment)

	var out []AttritionRow
	for _, dept := range sortedKeys(groups) {
		members := groups[dept]

		resigned := 0
		for _, e := range members {
			if e.Status == StatusResigned {
				resigned++
			}
		}
		out = append(out, AttritionRow{
			Department: dept,
			Total:      len(members),
			Resigned:   resigned,
			Rate:       Round2(float64(resigned) / float64(len(members)) * 100),
		})
	}
	return out
}

// StatusRow is one row of Q9: headcount, average salary and average
// experience for one status value present in the table.
type StatusRow struct {
	Status        string
	Count         int
	AvgSalary     float64
	AvgExperience float64
}

// ProfileByStatus computes Q9, status asc. The groups partition the table:
// every employee lands in exactly one row's count.
func ProfileByStatus(rows []dataset.Employee) []StatusRow {
	groups := groupBy(rows, func(e dataset.Employee) string { return e.Status })

	var out []StatusRow
	for _, status := range sortedKeys(groups) {
		members := groups[status]

		exp := make([]float64, len(members))
		for i, e := range members {
			exp[i] = e.ExperienceYears
		}
		out = append(out, StatusRow{
			Status:        status,
			Count:         len(members),
			AvgSalary:     Round2(Mean(salaries(members))),
			AvgExperience: Round2(Mean(exp)),
		})
	}
	return out
}

// RankedAttrition is one row of Q13: Q3's rate competition-ranked across
// departments, highest attrition first.
type RankedAttrition struct {
	Department string
	Total      int
	Resigned   int
	Rate       float64
	Rank       int
}

// AttritionRanking computes Q13. Rank asc, department asc among equal rates.
func AttritionRanking(rows []dataset.Employee) []RankedAttrition {
	base := AttritionByDepartment(rows)
	sort.Slice(base, func(i, j int) bool {
		if base[i].Rate != base[j].Rate {
			return base[i].Rate > base[j].Rate
		}
		return base[i].Department < base[j].Department
	})

	ranks := CompetitionRanks(len(base), func(i int) bool {
		return base[i].Rate == base[i-1].Rate
	})

	out := make([]RankedAttrition, len(base))
	for i, row := range base {
		out[i] = RankedAttrition{
			Department: row.Department,
			Total:      row.Total,
			Resigned:   row.Resigned,
			Rate:       row.Rate,
			Rank:       ranks[i],
		}
	}
	return out
}
