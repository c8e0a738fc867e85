package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/srishti-3/CV-Align/internal/models"
)

// The delimiter tokens below are a contract shared by the prompt template
// and ParseFeedback. Changing one side requires changing the other.
const (
	markerScore          = "Score:"
	markerStrengths      = "Strengths:"
	markerWeaknesses     = "Weaknesses:"
	markerRecommendation = "Final Recommendation:"
)

const (
	// Weight of the manual composite percentage in the blended score.
	// Qualitative feedback dominates.
	manualBlendAlpha = 0.2
	// Manual percentages below this are considered unreliable and are
	// discarded in favor of the qualitative score alone.
	manualScoreFloor = 30.0
	// Fallback qualitative score when a parsed response carries no
	// usable integer.
	defaultLLMScore = 60
)

var llmScoreRe = regexp.MustCompile(`\b([1-9][0-9])\b`)

// BuildFeedbackPrompt assembles the narrative-feedback request from the JD
// query, the candidate's extracted text, and the top-ranked resume chunks.
func BuildFeedbackPrompt(jdText, cvText string, cvChunks []string) string {
	return fmt.Sprintf(`You are an HR assistant evaluating a candidate's suitability for a job role.

Your task is to:
1. Score the candidate's resume **out of 100**, based only on your analysis strictly from 10-98.
2. Provide specific **strengths** that align with the role.
3. Mention **weaknesses** or areas of mismatch.
4. Give a final recommendation: **Strong / Moderate / Weak fit**, with a short justification.

The system may internally estimate some match, but you must ignore those and give your own independent judgment.

Job Description:
%s

Resume Overview:
%s

Top Matching Resume Chunks:
%s

Respond in the following format:

<<Score:>>
(Must be a plain integer between 10 and 98 only. Do NOT return decimal or percentage.)

<<Strengths:>>
- ...

<<Weaknesses:>>
- ...

<<Final Recommendation:>>
<Strong / Moderate / Weak fit> — <your short justification>`,
		jdText, cvText, strings.Join(cvChunks, "\n"))
}

// BuildJDQuery flattens the structured JD into the query string used both
// for chunk retrieval and inside the feedback prompt.
func BuildJDQuery(jd *models.StructuredJD) string {
	parts := []string{
		jd.JobRole,
		strings.Join(jd.RequiredSkills, " "),
		strings.Join(jd.Responsibilities, " "),
		strings.Join(jd.PreferredSkills, " "),
		strings.Join(jd.Branches, " "),
		strings.Join(jd.Technologies, " "),
		strings.Join(jd.NonTechSkills, " "),
		jd.Domain,
	}
	var nonEmpty []string
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// ParseFeedback extracts the four ordered delimited blocks from the
// capability's free text. Any missing block makes the whole response
// unparseable: the raw text is kept and no score or lists are extracted.
func ParseFeedback(text string) models.Feedback {
	scoreText, ok1 := extractBetween(text, markerScore, markerStrengths)
	strengthsText, ok2 := extractBetween(text, markerStrengths, markerWeaknesses)
	weaknessesText, ok3 := extractBetween(text, markerWeaknesses, markerRecommendation)
	recommendation, ok4 := extractBetween(text, markerRecommendation, "")
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return models.Feedback{Raw: text}
	}

	score := 0
	if m := llmScoreRe.FindStringSubmatch(scoreText); m != nil {
		score, _ = strconv.Atoi(m[1])
	}

	return models.Feedback{
		Raw: text,
		Record: &models.FeedbackRecord{
			Score:          score,
			Strengths:      bulletItems(strengthsText),
			Weaknesses:     bulletItems(weaknessesText),
			Recommendation: strings.TrimSpace(recommendation),
		},
	}
}

// extractBetween returns the substring between two markers; an empty end
// marker means until end of text.
func extractBetween(text, start, end string) (string, bool) {
	idx := strings.Index(text, start)
	if idx < 0 {
		return "", false
	}
	idx += len(start)
	rest := text[idx:]
	if end == "" {
		return strings.TrimSpace(rest), true
	}
	endIdx := strings.Index(rest, end)
	if endIdx < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:endIdx]), true
}

func bulletItems(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "-") {
			if item := strings.TrimSpace(strings.TrimLeft(line, "- ")); item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}

// ManualScorePercent scales the mean of the four quantitative signals to
// the 0-100 range.
func ManualScorePercent(breakdown *models.ScoreBreakdown) float64 {
	sum := breakdown.CourseScore +
		breakdown.SkillScore.Final +
		breakdown.SemanticScore +
		breakdown.FinalScore
	return 100 * sum / 4
}

// BlendScores combines the manual composite percentage with the parsed
// qualitative score. A manual percentage under the floor is discarded
// entirely and the qualitative score stands alone.
func BlendScores(breakdown *models.ScoreBreakdown, record *models.FeedbackRecord) models.CombinedEvaluation {
	manual := ManualScorePercent(breakdown)
	llmScore := record.Score
	if llmScore == 0 {
		llmScore = defaultLLMScore
	}

	combined := float64(llmScore)
	if manual >= manualScoreFloor {
		combined = round2(manualBlendAlpha*manual + (1-manualBlendAlpha)*float64(llmScore))
	}

	return models.CombinedEvaluation{
		CombinedScore: combined,
		Feedback:      record.Recommendation,
		Strengths:     record.Strengths,
		Weaknesses:    record.Weaknesses,
	}
}
