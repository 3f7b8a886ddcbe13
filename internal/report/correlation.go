package report

import (
	"sort"

	"github.com/iamsumansaha/MNC-HR-Analysis/internal/dataset"
)

// DeptCorrelation is one row of Q14. Defined is false when the department has
// zero variance in experience or salary (or fewer than two employees); the
// coefficient is undefined there, never a crash.
type DeptCorrelation struct {
	Department string
	R          float64
	Defined    bool
}

// ExperienceSalaryCorrelation computes Q14: population Pearson r between
// experience_years and salary_inr per department. Defined rows first, sorted
// by coefficient desc; undefined rows last, department asc.
func ExperienceSalaryCorrelation(rows []dataset.Employee) []DeptCorrelation {
	groups := groupBy(rows, byDepartment)

	out := make([]DeptCorrelation, 0, len(groups))
	for _, dept := range sortedKeys(groups) {
		members := groups[dept]

		xs := make([]float64, len(members))
		ys := make([]float64, len(members))
		for i, e := range members {
			xs[i] = e.ExperienceYears
			ys[i] = e.SalaryINR
		}

		r, ok := Pearson(xs, ys)
		out = append(out, DeptCorrelation{
			Department: dept,
			R:          Round2(r),
			Defined:    ok,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Defined != out[j].Defined {
			return out[i].Defined
		}
		if !out[i].Defined {
			return out[i].Department < out[j].Department
		}
		if out[i].R != out[j].R {
			return out[i].R > out[j].R
		}
		return out[i].Department < out[j].Department
	})
	return out
}
