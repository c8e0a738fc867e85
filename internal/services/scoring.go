package services

import (
	"context"
	"math"
	"strings"

	"github.com/srishti-3/CV-Align/internal/models"
)

const (
	// Weight of the required-skill similarity inside the skill score.
	defaultAlpha = 0.7
	// Weight of the skill signal inside the composite score.
	defaultSkillWeight = 0.7
	// Blend between the categorical and flattened skill runs. The
	// flattened signal is denser and more reliable, hence 0.8.
	categoryBlendWeight  = 0.2
	flattenedBlendWeight = 0.8
)

// ScoringEngine fuses the skill, course, and semantic signals into one
// normalized score. It holds only read-only shared state (the skill space
// via the matcher-independent scorer) and is safe for concurrent use.
type ScoringEngine struct {
	space       *SkillSpace
	matcher     *SemanticMatcher
	alpha       float64
	skillWeight float64
}

func NewScoringEngine(space *SkillSpace, matcher *SemanticMatcher) *ScoringEngine {
	return &ScoringEngine{
		space:       space,
		matcher:     matcher,
		alpha:       defaultAlpha,
		skillWeight: defaultSkillWeight,
	}
}

// ScoreSkills represents each token set as the mean of its embeddings and
// scores the CV vector against the required and preferred vectors by
// cosine similarity. An empty or fully-unknown CV set yields all zeros.
func (e *ScoringEngine) ScoreSkills(cvSkills, required, preferred []string) models.SkillScore {
	cvVec := e.space.AvgVector(cvSkills)
	requiredVec := e.space.AvgVector(required)
	preferredVec := e.space.AvgVector(preferred)

	requiredScore := Cosine(cvVec, requiredVec)
	preferredScore := Cosine(cvVec, preferredVec)

	return models.SkillScore{
		Required:  round3(requiredScore),
		Preferred: round3(preferredScore),
		Final:     round3(e.alpha*requiredScore + (1-e.alpha)*preferredScore),
	}
}

// Evaluate runs the full quantitative pipeline for one CV/JD pair.
// Eligibility is checked before any scoring; an ineligible candidate
// short-circuits to a zero breakdown regardless of other signals.
func (e *ScoringEngine) Evaluate(ctx context.Context, jd *models.StructuredJD, cv *models.StructuredCV) (*models.ScoreBreakdown, error) {
	breakdown := &models.ScoreBreakdown{}

	eligibility := CheckEligibility(jd, cv)
	breakdown.Eligible = eligibility.Eligible
	breakdown.EligibilityReason = eligibility.Reason
	if !eligibility.Eligible {
		return breakdown, nil
	}

	courseScore, err := e.matcher.CourseMatch(ctx, jd, cv.Courses)
	if err != nil {
		return nil, err
	}
	breakdown.CourseScore = courseScore.Score

	// Two skill runs: category names carry a weak grouping signal, the
	// flattened token list carries the real one.
	categories := sortedKeys(cv.Skills)
	flattened := flattenSkills(cv.Skills)
	categoryScore := e.ScoreSkills(categories, jd.Technologies, jd.RequiredSkills)
	flattenedScore := e.ScoreSkills(flattened, jd.Technologies, jd.RequiredSkills)

	breakdown.SkillScore = models.SkillScore{
		Required:  round3(categoryBlendWeight*categoryScore.Required + flattenedBlendWeight*flattenedScore.Required),
		Preferred: round3(categoryBlendWeight*categoryScore.Preferred + flattenedBlendWeight*flattenedScore.Preferred),
		Final:     round3(categoryBlendWeight*categoryScore.Final + flattenedBlendWeight*flattenedScore.Final),
	}

	components, err := e.matcher.SubjectiveFit(ctx, jd, cv)
	if err != nil {
		return nil, err
	}
	breakdown.SemanticComponents = components
	breakdown.SemanticScore = round3(
		0.4*components.JobRoleFit.Score +
			0.3*components.ResponsibilityAlignment.Score +
			0.3*components.ValuesMatch.Score)

	// The composite uses the flattened run's final score as its skill
	// term; the blended value above is what gets reported.
	breakdown.FinalScore = round3(e.skillWeight*flattenedScore.Final + (1-e.skillWeight)*breakdown.SemanticScore)

	return breakdown, nil
}

func flattenSkills(skills map[string][]string) []string {
	var flattened []string
	for _, category := range sortedKeys(skills) {
		for _, skill := range skills[category] {
			flattened = append(flattened, strings.ToLower(skill))
		}
	}
	return flattened
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
