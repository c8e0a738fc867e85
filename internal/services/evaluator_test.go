package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/srishti-3/CV-Align/internal/models"
	"github.com/srishti-3/CV-Align/internal/repositories"
)

type memDocRepo struct{ docs map[uuid.UUID]*models.Document }

func (m *memDocRepo) Create(d *models.Document) error { m.docs[d.ID] = d; return nil }

func (m *memDocRepo) FindByID(id uuid.UUID) (*models.Document, error) {
	if d, ok := m.docs[id]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("document not found")
}

func (m *memDocRepo) FindByIDs(ids []uuid.UUID) ([]models.Document, error) {
	var out []models.Document
	for _, id := range ids {
		if d, ok := m.docs[id]; ok {
			out = append(out, *d)
		}
	}
	return out, nil
}

type memJobRepo struct{ jobs map[uuid.UUID]*models.Job }

func (m *memJobRepo) Create(j *models.Job) error { m.jobs[j.ID] = j; return nil }

func (m *memJobRepo) FindByID(id uuid.UUID) (*models.Job, error) {
	if j, ok := m.jobs[id]; ok {
		return j, nil
	}
	return nil, fmt.Errorf("job not found")
}

func (m *memJobRepo) FindActive() ([]models.Job, error) { return nil, nil }
func (m *memJobRepo) Deactivate(uuid.UUID) error        { return nil }

type memAppRepo struct {
	apps    map[uuid.UUID]*models.Application
	updates map[uuid.UUID]*repositories.ApplicationUpdateData
	errors  map[uuid.UUID]string
}

func newMemAppRepo() *memAppRepo {
	return &memAppRepo{
		apps:    make(map[uuid.UUID]*models.Application),
		updates: make(map[uuid.UUID]*repositories.ApplicationUpdateData),
		errors:  make(map[uuid.UUID]string),
	}
}

func (m *memAppRepo) Create(a *models.Application) error { m.apps[a.ID] = a; return nil }

func (m *memAppRepo) FindByID(id uuid.UUID) (*models.Application, error) {
	if a, ok := m.apps[id]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("application not found")
}

func (m *memAppRepo) FindByStudentAndJob(string, uuid.UUID) (*models.Application, error) {
	return nil, gorm.ErrRecordNotFound
}

func (m *memAppRepo) FindByJob(uuid.UUID) ([]models.Application, error) { return nil, nil }

func (m *memAppRepo) UpdateStatus(id uuid.UUID, status models.ApplicationStatus) error {
	app, ok := m.apps[id]
	if !ok {
		return fmt.Errorf("application not found")
	}
	app.Status = status
	return nil
}

func (m *memAppRepo) UpdateEvaluation(id uuid.UUID, data *repositories.ApplicationUpdateData) error {
	m.updates[id] = data
	m.apps[id].Status = models.StatusEvaluated
	return nil
}

func (m *memAppRepo) UpdateError(id uuid.UUID, msg string) error {
	m.errors[id] = msg
	m.apps[id].Status = models.StatusFailed
	return nil
}

func (m *memAppRepo) FindPendingJobs(int) ([]models.Application, error)         { return nil, nil }
func (m *memAppRepo) FindUnscoredByJob(uuid.UUID) ([]models.Application, error) { return nil, nil }

// stubGemini serves fixed embeddings and a canned feedback response, and
// counts text generations so tests can assert the LLM was skipped.
type stubGemini struct {
	feedback  string
	textCalls int
}

func (s *stubGemini) GenerateEmbedding(context.Context, string) ([]float32, error) {
	return []float32{1, 1}, nil
}

func (s *stubGemini) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{1, 1}
	}
	return out, nil
}

func (s *stubGemini) GenerateText(context.Context, string, float32) (string, error) {
	s.textCalls++
	return s.feedback, nil
}

func (s *stubGemini) GenerateTextWithRetry(ctx context.Context, prompt string, temp float32, _ int) (string, error) {
	return s.GenerateText(ctx, prompt, temp)
}

type stubVectorIndex struct{ indexed map[string][]string }

func (s *stubVectorIndex) InitCollection() error { return nil }

func (s *stubVectorIndex) ReindexResume(_ context.Context, resumeID string, chunks []string, _ [][]float32) error {
	s.indexed[resumeID] = chunks
	return nil
}

func (s *stubVectorIndex) QueryTopChunks(_ context.Context, resumeID string, _ []float32, limit int) ([]ChunkResult, error) {
	var out []ChunkResult
	for i, chunk := range s.indexed[resumeID] {
		if i == limit {
			break
		}
		out = append(out, ChunkResult{Text: chunk, ResumeID: resumeID})
	}
	return out, nil
}

func (s *stubVectorIndex) DeleteResume(context.Context, string) error { return nil }

// passthroughPDFParser treats the stored bytes as plain text, so fixtures
// can be written without real PDF files.
type passthroughPDFParser struct{}

func (passthroughPDFParser) ExtractTextFromBytes(data []byte) (string, error) {
	return string(data), nil
}

type evaluatorFixture struct {
	appRepo   *memAppRepo
	gemini    *stubGemini
	index     *stubVectorIndex
	evaluator EvaluatorService
	appID     uuid.UUID
}

func newEvaluatorFixture(t *testing.T, jdText string) *evaluatorFixture {
	t.Helper()

	dir := t.TempDir()
	cvPath := filepath.Join(dir, "cv.pdf")
	jdPath := filepath.Join(dir, "jd.pdf")
	require.NoError(t, os.WriteFile(cvPath, []byte(sampleResume), 0644))
	require.NoError(t, os.WriteFile(jdPath, []byte(jdText), 0644))

	cvDoc := &models.Document{ID: uuid.New(), FilePath: cvPath, FileType: "cv"}
	jdDoc := &models.Document{ID: uuid.New(), FilePath: jdPath, FileType: "jd"}
	docRepo := &memDocRepo{docs: map[uuid.UUID]*models.Document{cvDoc.ID: cvDoc, jdDoc.ID: jdDoc}}

	job := &models.Job{ID: uuid.New(), Title: "Backend Developer Intern", JDDocumentID: jdDoc.ID, IsActive: true}
	jobRepo := &memJobRepo{jobs: map[uuid.UUID]*models.Job{job.ID: job}}

	appRepo := newMemAppRepo()
	app := &models.Application{
		ID:           uuid.New(),
		StudentEmail: "srishti@iitg.ac.in",
		JobID:        job.ID,
		CVDocumentID: cvDoc.ID,
		Status:       models.StatusPending,
	}
	require.NoError(t, appRepo.Create(app))

	space, err := NewSkillSpace(map[string][]float32{
		"python": {1, 0},
		"java":   {0, 1},
		"sql":    {0.6, 0.8},
		"docker": {0.8, 0.6},
	})
	require.NoError(t, err)

	gemini := &stubGemini{feedback: sampleFeedbackResponse}
	index := &stubVectorIndex{indexed: make(map[string][]string)}
	matcher := NewSemanticMatcher(gemini)

	evaluator := NewEvaluatorService(
		appRepo,
		jobRepo,
		docRepo,
		gemini,
		index,
		passthroughPDFParser{},
		NewCVParserService(),
		NewJDParserService(space, 0.99),
		NewStorageService(dir),
		NewScoringEngine(space, matcher),
		3,
		2,
	)

	return &evaluatorFixture{
		appRepo:   appRepo,
		gemini:    gemini,
		index:     index,
		evaluator: evaluator,
		appID:     app.ID,
	}
}

func TestEvaluateApplication(t *testing.T) {
	f := newEvaluatorFixture(t, sampleJD)

	require.NoError(t, f.evaluator.EvaluateApplication(context.Background(), f.appID))

	assert.Equal(t, models.StatusEvaluated, f.appRepo.apps[f.appID].Status)

	update := f.appRepo.updates[f.appID]
	require.NotNil(t, update)
	require.NotNil(t, update.Score)
	assert.Equal(t, "Strong fit - solid alignment with the role", *update.Feedback)
	assert.Equal(t, "Strong Python background\nRelevant backend projects", *update.Strengths)
	assert.Equal(t, "No cloud deployment experience", *update.Weaknesses)

	// The combined score is 0.2 of the manual composite percentage plus
	// 0.8 of the qualitative score from the parsed feedback.
	manual := 100 * (*update.CourseScore + *update.SkillScore + *update.SemanticScore + *update.FinalScore) / 4
	require.GreaterOrEqual(t, manual, 30.0)
	assert.InDelta(t, round2(0.2*manual+0.8*85), *update.Score, 1e-9)

	// Resume chunks were indexed for retrieval.
	assert.NotEmpty(t, f.index.indexed)
	assert.Equal(t, 1, f.gemini.textCalls)
}

func TestEvaluateApplicationIneligible(t *testing.T) {
	mechJD := strings.Replace(sampleJD, "Computer Science", "Mechanical Engineering", 1)
	f := newEvaluatorFixture(t, mechJD)

	require.NoError(t, f.evaluator.EvaluateApplication(context.Background(), f.appID))

	assert.Equal(t, models.StatusEvaluated, f.appRepo.apps[f.appID].Status)

	update := f.appRepo.updates[f.appID]
	require.NotNil(t, update)
	require.NotNil(t, update.Score)
	assert.Zero(t, *update.Score)
	assert.Equal(t, ReasonBranchMismatch, *update.EligibilityReason)

	// No chunks indexed and no LLM call for an ineligible candidate.
	assert.Empty(t, f.index.indexed)
	assert.Zero(t, f.gemini.textCalls)
}

func TestEvaluateApplicationMissingDocumentFails(t *testing.T) {
	f := newEvaluatorFixture(t, sampleJD)
	f.appRepo.apps[f.appID].CVDocumentID = uuid.New()

	err := f.evaluator.EvaluateApplication(context.Background(), f.appID)
	require.Error(t, err)
	assert.Equal(t, models.StatusFailed, f.appRepo.apps[f.appID].Status)
	assert.NotEmpty(t, f.appRepo.errors[f.appID])
}
