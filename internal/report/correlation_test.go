package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iamsumansaha/MNC-HR-Analysis/internal/dataset"
	"github.com/iamsumansaha/MNC-HR-Analysis/internal/report"
)

func TestExperienceSalaryCorrelation(t *testing.T) {
	withExp := func(e dataset.Employee, years float64) dataset.Employee {
		e.ExperienceYears = years
		return e
	}

	rows := []dataset.Employee{
		// Eng: salary rises perfectly with experience → r = 1.
		withExp(emp("E1", "A", "Eng", 50000), 1),
		withExp(emp("E2", "B", "Eng", 60000), 2),
		withExp(emp("E3", "C", "Eng", 70000), 3),
		// Sales: salary falls as experience rises → r = -1.
		withExp(emp("S1", "D", "Sales", 70000), 1),
		withExp(emp("S2", "E", "Sales", 50000), 3),
		// HR: everyone has identical experience → undefined.
		withExp(emp("H1", "F", "HR", 40000), 5),
		withExp(emp("H2", "G", "HR", 45000), 5),
	}

	got := report.ExperienceSalaryCorrelation(rows)

	assert.Len(t, got, 3)

	// Defined rows first, coefficient desc.
	assert.Equal(t, "Eng", got[0].Department)
	assert.True(t, got[0].Defined)
	assert.Equal(t, 1.0, got[0].R)

	assert.Equal(t, "Sales", got[1].Department)
	assert.True(t, got[1].Defined)
	assert.Equal(t, -1.0, got[1].R)

	// Zero variance surfaces as an undefined marker row, not a crash.
	assert.Equal(t, "HR", got[2].Department)
	assert.False(t, got[2].Defined)
}

func TestExperienceSalaryCorrelation_SingleEmployeeDept(t *testing.T) {
	got := report.ExperienceSalaryCorrelation([]dataset.Employee{
		emp("E1", "A", "Eng", 50000),
	})
	assert.Len(t, got, 1)
	assert.False(t, got[0].Defined)
}
