package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srishti-3/CV-Align/internal/models"
)

func TestNormalizeBranch(t *testing.T) {
	assert.Equal(t, "cs", NormalizeBranch("CSE"))
	assert.Equal(t, "cs", NormalizeBranch("Computer Science and Engineering"))
	assert.Equal(t, "dsai", NormalizeBranch("Data Science"))

	// Canonical tokens map to themselves.
	assert.Equal(t, "cs", NormalizeBranch(NormalizeBranch("information technology")))

	// Unknown names pass through lowercased.
	assert.Equal(t, "underwater basket weaving", NormalizeBranch("Underwater Basket Weaving"))
}

func csCV(score string) *models.StructuredCV {
	return &models.StructuredCV{
		Branch: "Computer Science and Engineering",
		Education: []models.EducationEntry{
			{
				Degree: "B.Tech - Computer Science and Engineering (Major)",
				Score:  score,
			},
		},
	}
}

func TestCheckEligibilityBranchGate(t *testing.T) {
	jd := &models.StructuredJD{Branches: []string{"Computer Science"}}

	result := CheckEligibility(jd, csCV("8.2 (CGPA)"))
	assert.True(t, result.Eligible)
	assert.Equal(t, ReasonEligible, result.Reason)

	mech := &models.StructuredCV{
		Branch: "Mechanical Engineering",
		Education: []models.EducationEntry{
			{Degree: "B.Tech - Mechanical Engineering (Major)", Score: "9.1"},
		},
	}
	result = CheckEligibility(jd, mech)
	assert.False(t, result.Eligible)
	assert.Equal(t, ReasonBranchMismatch, result.Reason)
}

func TestCheckEligibilityBranchSynonymsInDegreeLine(t *testing.T) {
	// Branch match works even when the structured Branch field is empty,
	// via the raw degree lines.
	jd := &models.StructuredJD{Branches: []string{"CSE"}}
	cv := &models.StructuredCV{
		Education: []models.EducationEntry{
			{Degree: "B.Tech - Computer Science and Engineering (Major)"},
		},
	}

	assert.True(t, CheckEligibility(jd, cv).Eligible)
}

func TestCheckEligibilityCGPAGate(t *testing.T) {
	min := 7.5
	jd := &models.StructuredJD{MinCGPA: &min}

	assert.True(t, CheckEligibility(jd, csCV("8.2 (CGPA)")).Eligible)

	higher := 8.5
	jd.MinCGPA = &higher
	result := CheckEligibility(jd, csCV("8.2 (CGPA)"))
	assert.False(t, result.Eligible)
	assert.Equal(t, ReasonLowCGPA, result.Reason)
}

func TestCheckEligibilityCGPAMonotone(t *testing.T) {
	// Raising the CV's CGPA never flips eligible to ineligible.
	min := 8.0
	jd := &models.StructuredJD{MinCGPA: &min}

	lower := CheckEligibility(jd, csCV("7.9"))
	higher := CheckEligibility(jd, csCV("8.7"))

	assert.False(t, lower.Eligible)
	assert.True(t, higher.Eligible)
}

func TestCheckEligibilityNoGates(t *testing.T) {
	// A JD with no branches and no minimum CGPA lets everyone through.
	result := CheckEligibility(&models.StructuredJD{}, &models.StructuredCV{})
	assert.True(t, result.Eligible)
	assert.Equal(t, ReasonEligible, result.Reason)
}

func TestCheckEligibilityBranchBeforeCGPA(t *testing.T) {
	// Both gates failing reports the branch reason, the first gate.
	min := 9.9
	jd := &models.StructuredJD{
		Branches: []string{"Mechanical Engineering"},
		MinCGPA:  &min,
	}

	result := CheckEligibility(jd, csCV("8.2 (CGPA)"))
	assert.False(t, result.Eligible)
	assert.Equal(t, ReasonBranchMismatch, result.Reason)
}
