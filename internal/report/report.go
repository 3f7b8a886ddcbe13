package report

import (
	"fmt"
	"strconv"

	"github.com/iamsumansaha/MNC-HR-Analysis/internal/dataset"
)

// ResultSet is one report's render-ready output: an ordered table.
type ResultSet struct {
	Columns []string
	Rows    [][]string
}

// Report couples one analytical question with its computation and its fixed
// one-line insight.
type Report struct {
	ID      string
	Title   string
	Insight string
	Run     func(ds *dataset.Dataset) (*ResultSet, error)
}

// All returns the 14 reports in their fixed declared sequence. The runner
// may execute them in any order; rendering always follows this one.
func All() []Report {
	return []Report{
		{
			ID:      "Q1",
			Title:   "Top 5 salaries per department",
			Insight: "The best-paid five in every department, ties included.",
			Run: func(ds *dataset.Dataset) (*ResultSet, error) {
				return rankedEmployeeTable(TopSalariesPerDepartment(ds.Employees, 5)), nil
			},
		},
		{
			ID:      "Q2",
			Title:   "Average salary by department and work mode",
			Insight: "How pay differs between remote and on-site staff inside each department.",
			Run: func(ds *dataset.Dataset) (*ResultSet, error) {
				rows := AvgSalaryByDeptAndMode(ds.Employees)
				rs := &ResultSet{Columns: []string{"department", "work_mode", "headcount", "avg_salary"}}
				for _, r := range rows {
					rs.Rows = append(rs.Rows, []string{
						r.Department, r.WorkMode, strconv.Itoa(r.Headcount), money(r.AvgSalary),
					})
				}
				return rs, nil
			},
		},
		{
			ID:      "Q3",
			Title:   "Attrition rate per department",
			Insight: "Share of each department's headcount that has resigned.",
			Run: func(ds *dataset.Dataset) (*ResultSet, error) {
				rows := AttritionByDepartment(ds.Employees)
				rs := &ResultSet{Columns: []string{"department", "total", "resigned", "attrition_rate"}}
				for _, r := range rows {
					rs.Rows = append(rs.Rows, []string{
						r.Department, strconv.Itoa(r.Total), strconv.Itoa(r.Resigned), FormatPercent(r.Rate),
					})
				}
				return rs, nil
			},
		},
		{
			ID:      "Q4",
			Title:   "Average performance rating by experience bucket",
			Insight: "Whether seniority tracks with performance scores.",
			Run: func(ds *dataset.Dataset) (*ResultSet, error) {
				rows := RatingByExperienceBucket(ds.Employees)
				rs := &ResultSet{Columns: []string{"experience_bucket", "headcount", "avg_rating"}}
				for _, r := range rows {
					rs.Rows = append(rs.Rows, []string{
						r.Bucket, strconv.Itoa(r.Count), money(r.AvgRating),
					})
				}
				return rs, nil
			},
		},
		{
			ID:      "Q5",
			Title:   "Hires per year",
			Insight: "Which years saw the heaviest hiring.",
			Run: func(ds *dataset.Dataset) (*ResultSet, error) {
				rows := HiresPerYear(ds.Normalized)
				rs := &ResultSet{Columns: []string{"hire_year", "hires"}}
				for _, r := range rows {
					rs.Rows = append(rs.Rows, []string{formatYear(r.Year), strconv.Itoa(r.Hires)})
				}
				return rs, nil
			},
		},
		{
			ID:      "Q6",
			Title:   "Employees earning above their department average",
			Insight: "Everyone paid strictly above their department's mean salary.",
			Run: func(ds *dataset.Dataset) (*ResultSet, error) {
				rows := EmployeesAboveDeptAverage(ds.Employees)
				rs := &ResultSet{Columns: []string{"department", "employee_id", "full_name", "salary_inr", "dept_avg"}}
				for _, r := range rows {
					rs.Rows = append(rs.Rows, []string{
						r.Department, r.EmployeeID, r.FullName, money(r.Salary), money(r.DeptAvg),
					})
				}
				return rs, nil
			},
		},
		{
			ID:      "Q7",
			Title:   "Salary delta between work modes",
			Insight: "The pay gap between remote and on-site averages.",
			Run: func(ds *dataset.Dataset) (*ResultSet, error) {
				rows := SalaryDeltaByWorkMode(ds.Employees)
				rs := &ResultSet{Columns: []string{"work_mode", "avg_salary", "delta_to_next"}}
				for _, r := range rows {
					delta := "—"
					if r.HasDelta {
						delta = money(r.Delta)
					}
					rs.Rows = append(rs.Rows, []string{r.WorkMode, money(r.AvgSalary), delta})
				}
				return rs, nil
			},
		},
		{
			ID:      "Q8",
			Title:   "Top 3 job titles by average performance",
			Insight: "The roles whose holders score highest on average.",
			Run: func(ds *dataset.Dataset) (*ResultSet, error) {
				rows := TopTitlesByRating(ds.Employees, 3)
				rs := &ResultSet{Columns: []string{"job_title", "headcount", "avg_rating"}}
				for _, r := range rows {
					rs.Rows = append(rs.Rows, []string{r.JobTitle, strconv.Itoa(r.Count), money(r.AvgRating)})
				}
				return rs, nil
			},
		},
		{
			ID:      "Q9",
			Title:   "Active vs resigned: salary and experience profile",
			Insight: "How leavers compare to stayers on pay and tenure.",
			Run: func(ds *dataset.Dataset) (*ResultSet, error) {
				rows := ProfileByStatus(ds.Employees)
				rs := &ResultSet{Columns: []string{"status", "headcount", "avg_salary", "avg_experience"}}
				for _, r := range rows {
					rs.Rows = append(rs.Rows, []string{
						r.Status, strconv.Itoa(r.Count), money(r.AvgSalary), money(r.AvgExperience),
					})
				}
				return rs, nil
			},
		},
		{
			ID:      "Q10",
			Title:   "Most common job title per department",
			Insight: "Each department's dominant role, ties listed side by side.",
			Run: func(ds *dataset.Dataset) (*ResultSet, error) {
				rows := MostCommonTitlePerDepartment(ds.Employees)
				rs := &ResultSet{Columns: []string{"department", "job_title", "headcount"}}
				for _, r := range rows {
					rs.Rows = append(rs.Rows, []string{r.Department, r.JobTitle, strconv.Itoa(r.Count)})
				}
				return rs, nil
			},
		},
		{
			ID:      "Q11",
			Title:   "Top 3 salaries per department",
			Insight: "The podium of earners in every department.",
			Run: func(ds *dataset.Dataset) (*ResultSet, error) {
				return rankedEmployeeTable(TopSalariesPerDepartment(ds.Employees, 3)), nil
			},
		},
		{
			ID:      "Q12",
			Title:   "Share of employees above department average",
			Insight: "How top-heavy each department's pay distribution is.",
			Run: func(ds *dataset.Dataset) (*ResultSet, error) {
				rows := ShareAboveDeptAverage(ds.Employees)
				rs := &ResultSet{Columns: []string{"department", "above_avg", "total", "share"}}
				for _, r := range rows {
					rs.Rows = append(rs.Rows, []string{
						r.Department, strconv.Itoa(r.Above), strconv.Itoa(r.Total), FormatPercent(r.Percent),
					})
				}
				return rs, nil
			},
		},
		{
			ID:      "Q13",
			Title:   "Attrition rate per department, ranked",
			Insight: "Departments ordered by how badly they bleed people.",
			Run: func(ds *dataset.Dataset) (*ResultSet, error) {
				rows := AttritionRanking(ds.Employees)
				rs := &ResultSet{Columns: []string{"rank", "department", "total", "resigned", "attrition_rate"}}
				for _, r := range rows {
					rs.Rows = append(rs.Rows, []string{
						strconv.Itoa(r.Rank), r.Department, strconv.Itoa(r.Total),
						strconv.Itoa(r.Resigned), FormatPercent(r.Rate),
					})
				}
				return rs, nil
			},
		},
		{
			ID:      "Q14",
			Title:   "Experience vs salary correlation per department",
			Insight: "Where tenure actually buys pay, and where it does not.",
			Run: func(ds *dataset.Dataset) (*ResultSet, error) {
				rows := ExperienceSalaryCorrelation(ds.Employees)
				rs := &ResultSet{Columns: []string{"department", "correlation"}}
				for _, r := range rows {
					corr := "undefined"
					if r.Defined {
						corr = fmt.Sprintf("%.2f", r.R)
					}
					rs.Rows = append(rs.Rows, []string{r.Department, corr})
				}
				return rs, nil
			},
		},
	}
}

func rankedEmployeeTable(rows []RankedEmployee) *ResultSet {
	rs := &ResultSet{Columns: []string{"department", "rank", "employee_id", "full_name", "job_title", "salary_inr"}}
	for _, r := range rows {
		rs.Rows = append(rs.Rows, []string{
			r.Department, strconv.Itoa(r.Rank), r.EmployeeID, r.FullName, r.JobTitle, money(r.Salary),
		})
	}
	return rs
}

func money(v float64) string { return fmt.Sprintf("%.2f", v) }
