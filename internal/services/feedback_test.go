package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srishti-3/CV-Align/internal/models"
)

const sampleFeedbackResponse = `Score:
85

Strengths:
- Strong Python background
- Relevant backend projects

Weaknesses:
- No cloud deployment experience

Final Recommendation:
Strong fit - solid alignment with the role`

func TestParseFeedback(t *testing.T) {
	feedback := ParseFeedback(sampleFeedbackResponse)

	require.True(t, feedback.Parsed())
	assert.Equal(t, 85, feedback.Record.Score)
	assert.Equal(t, []string{"Strong Python background", "Relevant backend projects"}, feedback.Record.Strengths)
	assert.Equal(t, []string{"No cloud deployment experience"}, feedback.Record.Weaknesses)
	assert.Equal(t, "Strong fit - solid alignment with the role", feedback.Record.Recommendation)
	assert.Equal(t, sampleFeedbackResponse, feedback.Raw)
}

func TestParseFeedbackMissingMarker(t *testing.T) {
	// Dropping any one delimiter invalidates the whole response; the raw
	// text is preserved for inspection.
	broken := strings.Replace(sampleFeedbackResponse, "Weaknesses:", "Gaps:", 1)

	feedback := ParseFeedback(broken)

	assert.False(t, feedback.Parsed())
	assert.Nil(t, feedback.Record)
	assert.Equal(t, broken, feedback.Raw)
}

func TestParseFeedbackNoUsableScore(t *testing.T) {
	noScore := strings.Replace(sampleFeedbackResponse, "85", "excellent", 1)

	feedback := ParseFeedback(noScore)

	require.True(t, feedback.Parsed())
	assert.Zero(t, feedback.Record.Score)
}

func TestManualScorePercent(t *testing.T) {
	breakdown := &models.ScoreBreakdown{
		CourseScore:   0.8,
		SkillScore:    models.SkillScore{Final: 0.6},
		SemanticScore: 0.4,
		FinalScore:    0.6,
	}

	assert.InDelta(t, 60.0, ManualScorePercent(breakdown), 1e-9)
}

func TestBlendScores(t *testing.T) {
	breakdown := &models.ScoreBreakdown{
		CourseScore:   0.8,
		SkillScore:    models.SkillScore{Final: 0.6},
		SemanticScore: 0.4,
		FinalScore:    0.6,
	}
	record := &models.FeedbackRecord{
		Score:          80,
		Strengths:      []string{"solid projects"},
		Weaknesses:     []string{"no cloud"},
		Recommendation: "Strong fit",
	}

	combined := BlendScores(breakdown, record)

	// 0.2 * 60 + 0.8 * 80.
	assert.InDelta(t, 76.0, combined.CombinedScore, 1e-9)
	assert.Equal(t, "Strong fit", combined.Feedback)
	assert.Equal(t, record.Strengths, combined.Strengths)
	assert.Equal(t, record.Weaknesses, combined.Weaknesses)
}

func TestBlendScoresManualBelowFloor(t *testing.T) {
	// A manual composite under 30 is discarded and the qualitative score
	// stands alone.
	breakdown := &models.ScoreBreakdown{
		CourseScore:   0.1,
		SkillScore:    models.SkillScore{Final: 0.1},
		SemanticScore: 0.1,
		FinalScore:    0.1,
	}
	record := &models.FeedbackRecord{Score: 72}

	combined := BlendScores(breakdown, record)
	assert.InDelta(t, 72.0, combined.CombinedScore, 1e-9)
}

func TestBlendScoresDefaultLLMScore(t *testing.T) {
	breakdown := &models.ScoreBreakdown{
		CourseScore:   0.8,
		SkillScore:    models.SkillScore{Final: 0.8},
		SemanticScore: 0.8,
		FinalScore:    0.8,
	}
	record := &models.FeedbackRecord{Score: 0}

	combined := BlendScores(breakdown, record)

	// 0.2 * 80 + 0.8 * 60 (the fallback qualitative score).
	assert.InDelta(t, 64.0, combined.CombinedScore, 1e-9)
}

func TestBuildJDQuerySkipsEmptyParts(t *testing.T) {
	jd := &models.StructuredJD{
		JobRole:        "backend developer",
		RequiredSkills: []string{"python", "sql"},
		Domain:         "Technology",
	}

	query := BuildJDQuery(jd)

	assert.Equal(t, "backend developer python sql Technology", query)
}

func TestBuildFeedbackPromptCarriesInputs(t *testing.T) {
	prompt := BuildFeedbackPrompt("jd text here", "cv text here", []string{"chunk one", "chunk two"})

	assert.Contains(t, prompt, "jd text here")
	assert.Contains(t, prompt, "cv text here")
	assert.Contains(t, prompt, "chunk one\nchunk two")
	assert.Contains(t, prompt, "<<Score:>>")
	assert.Contains(t, prompt, "<<Final Recommendation:>>")
}
