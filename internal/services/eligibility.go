package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/srishti-3/CV-Align/internal/models"
)

const (
	ReasonEligible       = "Eligible"
	ReasonBranchMismatch = "Branch not allowed"
	ReasonLowCGPA        = "CGPA below required minimum"
)

var numericScoreRe = regexp.MustCompile(`(\d{1,2}(?:\.\d{1,2})?)`)

// NormalizeBranch maps a branch name to its canonical token via the
// synonym table. Already-canonical tokens map to themselves; unknown names
// pass through lowercased.
func NormalizeBranch(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for canonical, synonyms := range BranchEquivalents {
		for _, syn := range synonyms {
			if name == syn {
				return canonical
			}
		}
	}
	return name
}

// CheckEligibility evaluates the two hard gates in order: branch first,
// then minimum CGPA. Either gate failing halts evaluation with its reason.
func CheckEligibility(jd *models.StructuredJD, cv *models.StructuredCV) models.EligibilityResult {
	jdBranches := make(map[string]struct{}, len(jd.Branches))
	for _, b := range jd.Branches {
		jdBranches[NormalizeBranch(b)] = struct{}{}
	}

	cvBranches := make(map[string]struct{})
	if cv.Branch != "" {
		cvBranches[NormalizeBranch(cv.Branch)] = struct{}{}
	}
	// Branch synonyms also hide inside raw degree lines
	// ("B.Tech - Computer Science and Engineering (Major)").
	for _, edu := range cv.Education {
		degree := strings.ToLower(edu.Degree)
		for canonical, synonyms := range BranchEquivalents {
			for _, syn := range synonyms {
				if strings.Contains(degree, syn) {
					cvBranches[canonical] = struct{}{}
					break
				}
			}
		}
	}

	if len(jdBranches) > 0 {
		intersects := false
		for b := range cvBranches {
			if _, ok := jdBranches[b]; ok {
				intersects = true
				break
			}
		}
		if !intersects {
			return models.EligibilityResult{Eligible: false, Reason: ReasonBranchMismatch}
		}
	}

	if jd.MinCGPA != nil {
		for _, edu := range cv.Education {
			m := numericScoreRe.FindStringSubmatch(edu.Score)
			if m == nil {
				continue
			}
			cgpa, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			if cgpa >= *jd.MinCGPA {
				return models.EligibilityResult{Eligible: true, Reason: ReasonEligible}
			}
		}
		return models.EligibilityResult{Eligible: false, Reason: ReasonLowCGPA}
	}

	return models.EligibilityResult{Eligible: true, Reason: ReasonEligible}
}
