package report

import (
	"sort"

	"github.com/iamsumansaha/MNC-HR-Analysis/internal/dataset"
)

// groupBy partitions rows by a key. Iteration over the result must go through
// sortedKeys so output order is a total order, never map order.
func groupBy(rows []dataset.Employee, key func(dataset.Employee) string) map[string][]dataset.Employee {
	groups := make(map[string][]dataset.Employee)
	for _, e := range rows {
		k := key(e)
		groups[k] = append(groups[k], e)
	}
	return groups
}

func byDepartment(e dataset.Employee) string { return e.Department }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func salaries(rows []dataset.Employee) []float64 {
	out := make([]float64, len(rows))
	for i, e := range rows {
		out[i] = e.SalaryINR
	}
	return out
}

func deptAverages(rows []dataset.Employee) map[string]float64 {
	avgs := make(map[string]float64)
	for dept, members := range groupBy(rows, byDepartment) {
		avgs[dept] = Round2(Mean(salaries(members)))
	}
	return avgs
}
