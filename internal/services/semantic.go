package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/srishti-3/CV-Align/internal/models"
)

// Embedder produces sentence embeddings for free text. The production
// implementation is the Gemini service; tests substitute a deterministic
// stub.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

const (
	matchTypeEmbedding = "embedding"
	matchTypeFuzzy     = "fuzzy"

	courseTopK    = 5
	paragraphTopK = 3
)

// SemanticMatcher scores CV free-text units against a JD query using two
// independent signals per unit: sentence-embedding cosine similarity and
// token-level fuzzy partial-ratio similarity. Per unit the higher of the
// two wins, so a candidate is rewarded for either exact wording or
// semantic closeness.
type SemanticMatcher struct {
	embedder Embedder
}

func NewSemanticMatcher(embedder Embedder) *SemanticMatcher {
	return &SemanticMatcher{embedder: embedder}
}

// MatchUnits ranks units against the query and averages the top-k merged
// scores. Empty queries or unit sets yield a zero score, not an error.
func (m *SemanticMatcher) MatchUnits(ctx context.Context, query string, units []string, topK int) (models.SectionScore, error) {
	query = CollapseWhitespace(query)
	cleaned := make([]string, 0, len(units))
	for _, unit := range units {
		if unit = CollapseWhitespace(unit); unit != "" {
			cleaned = append(cleaned, unit)
		}
	}
	if query == "" || len(cleaned) == 0 {
		return models.SectionScore{}, nil
	}

	embeddings, err := m.embedder.EmbedTexts(ctx, append([]string{query}, cleaned...))
	if err != nil {
		return models.SectionScore{}, fmt.Errorf("failed to embed match units: %w", err)
	}
	if len(embeddings) != len(cleaned)+1 {
		return models.SectionScore{}, fmt.Errorf("embedder returned %d vectors, want %d", len(embeddings), len(cleaned)+1)
	}
	queryEmb := embeddings[0]

	// Merged per-unit maximum across the two signals.
	merged := make(map[string]models.MatchedUnit, len(cleaned))
	for i, unit := range cleaned {
		candidates := []models.MatchedUnit{
			{Text: unit, Score: Cosine(queryEmb, embeddings[i+1]), MatchType: matchTypeEmbedding},
			{Text: unit, Score: float64(fuzzy.PartialRatio(unit, query)) / 100, MatchType: matchTypeFuzzy},
		}
		for _, cand := range candidates {
			if best, ok := merged[unit]; !ok || cand.Score > best.Score {
				merged[unit] = cand
			}
		}
	}

	ranked := make([]models.MatchedUnit, 0, len(merged))
	for _, unit := range merged {
		ranked = append(ranked, unit)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Text < ranked[j].Text
	})
	if topK > 0 && len(ranked) > topK {
		ranked = ranked[:topK]
	}

	sum := 0.0
	for i := range ranked {
		sum += ranked[i].Score
		ranked[i].Score = round3(ranked[i].Score)
		if len(ranked[i].Text) > 120 {
			ranked[i].Text = ranked[i].Text[:120]
		}
	}
	return models.SectionScore{
		Score:      round3(sum / float64(len(ranked))),
		TopMatches: ranked,
	}, nil
}

// CourseMatch scores the relevance of the CV's course list against the
// JD's role, skills, and detected technologies.
func (m *SemanticMatcher) CourseMatch(ctx context.Context, jd *models.StructuredJD, courses map[string][]string) (models.SectionScore, error) {
	parts := []string{
		strings.Join(jd.Technologies, " "),
		jd.JobRole,
		strings.Join(jd.RequiredSkills, " "),
		strings.Join(jd.PreferredSkills, " "),
	}
	var nonEmpty []string
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	query := strings.Join(nonEmpty, " ")

	var courseList []string
	for _, category := range sortedKeys(courses) {
		courseList = append(courseList, courses[category]...)
	}
	if query == "" || len(courseList) == 0 {
		return models.SectionScore{}, nil
	}
	return m.MatchUnits(ctx, query, courseList, courseTopK)
}

// SubjectiveFit computes the three paragraph-level signals: role fit
// against project summaries, responsibility alignment against projects,
// positions, and activities, and values match against achievements,
// activities, and positions.
func (m *SemanticMatcher) SubjectiveFit(ctx context.Context, jd *models.StructuredJD, cv *models.StructuredCV) (models.SemanticComponents, error) {
	var components models.SemanticComponents

	projects := make([]string, 0, len(cv.Projects))
	for _, p := range cv.Projects {
		projects = append(projects, p.Summary)
	}

	var err error
	components.JobRoleFit, err = m.MatchUnits(ctx, jd.JobRole, projects, paragraphTopK)
	if err != nil {
		return components, err
	}

	respUnits := concat(projects, cv.Positions, cv.Extracurriculars)
	components.ResponsibilityAlignment, err = m.MatchUnits(ctx, strings.Join(jd.Responsibilities, " "), respUnits, paragraphTopK)
	if err != nil {
		return components, err
	}

	valueUnits := concat(cv.Achievements, cv.Extracurriculars, cv.Positions)
	components.ValuesMatch, err = m.MatchUnits(ctx, strings.Join(jd.Values, " "), valueUnits, paragraphTopK)
	if err != nil {
		return components, err
	}

	return components, nil
}

func concat(slices ...[]string) []string {
	var out []string
	for _, s := range slices {
		out = append(out, s...)
	}
	return out
}
