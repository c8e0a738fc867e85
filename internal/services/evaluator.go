package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/srishti-3/CV-Align/internal/models"
	"github.com/srishti-3/CV-Align/internal/repositories"
)

const topChunkLimit = 5

type EvaluatorService interface {
	EvaluateApplication(ctx context.Context, appID uuid.UUID) error
}

type evaluatorService struct {
	appRepo       repositories.ApplicationRepository
	jobRepo       repositories.JobRepository
	docRepo       repositories.DocumentRepository
	geminiService GeminiService
	vectorIndex   VectorIndexService
	pdfParser     PDFParserService
	cvParser      CVParserService
	jdParser      JDParserService
	storage       StorageService
	scoringEngine *ScoringEngine
	maxRetries    int

	// Bounds concurrent LLM calls across all workers.
	llmSem chan struct{}

	// Extracted-text cache keyed by document checksum. Re-evaluating an
	// application never re-parses an unchanged PDF.
	cacheMu   sync.Mutex
	textCache map[string]string
}

func NewEvaluatorService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	docRepo repositories.DocumentRepository,
	geminiService GeminiService,
	vectorIndex VectorIndexService,
	pdfParser PDFParserService,
	cvParser CVParserService,
	jdParser JDParserService,
	storage StorageService,
	scoringEngine *ScoringEngine,
	maxRetries int,
	llmConcurrency int,
) EvaluatorService {
	if llmConcurrency < 1 {
		llmConcurrency = 1
	}
	return &evaluatorService{
		appRepo:       appRepo,
		jobRepo:       jobRepo,
		docRepo:       docRepo,
		geminiService: geminiService,
		vectorIndex:   vectorIndex,
		pdfParser:     pdfParser,
		cvParser:      cvParser,
		jdParser:      jdParser,
		storage:       storage,
		scoringEngine: scoringEngine,
		maxRetries:    maxRetries,
		llmSem:        make(chan struct{}, llmConcurrency),
		textCache:     make(map[string]string),
	}
}

func (e *evaluatorService) EvaluateApplication(ctx context.Context, appID uuid.UUID) error {
	// Update status to processing
	if err := e.appRepo.UpdateStatus(appID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting evaluation for application: %s\n", appID)

	application, err := e.appRepo.FindByID(appID)
	if err != nil {
		e.appRepo.UpdateError(appID, err.Error())
		return fmt.Errorf("failed to get application: %w", err)
	}

	job, err := e.jobRepo.FindByID(application.JobID)
	if err != nil {
		e.appRepo.UpdateError(appID, fmt.Sprintf("job not found: %v", err))
		return fmt.Errorf("failed to get job: %w", err)
	}

	cvDoc, err := e.docRepo.FindByID(application.CVDocumentID)
	if err != nil {
		e.appRepo.UpdateError(appID, fmt.Sprintf("CV document not found: %v", err))
		return fmt.Errorf("failed to get CV document: %w", err)
	}

	jdDoc, err := e.docRepo.FindByID(job.JDDocumentID)
	if err != nil {
		e.appRepo.UpdateError(appID, fmt.Sprintf("JD document not found: %v", err))
		return fmt.Errorf("failed to get JD document: %w", err)
	}

	// Step 1: Extract raw text (cached by checksum)
	log.Println("📄 Parsing CV...")
	cvText, err := e.extractText(ctx, cvDoc)
	if err != nil {
		e.appRepo.UpdateError(appID, fmt.Sprintf("failed to parse CV: %v", err))
		return fmt.Errorf("failed to parse CV: %w", err)
	}

	log.Println("📄 Parsing JD...")
	jdText, err := e.extractText(ctx, jdDoc)
	if err != nil {
		e.appRepo.UpdateError(appID, fmt.Sprintf("failed to parse JD: %v", err))
		return fmt.Errorf("failed to parse JD: %w", err)
	}

	// Step 2: Structure both documents
	cv := e.cvParser.ParseCV(cvText)
	jd := e.jdParser.ParseJD(jdText)

	// Step 3: Quantitative scoring
	log.Println("🧮 Scoring candidate...")
	breakdown, err := e.scoringEngine.Evaluate(ctx, jd, cv)
	if err != nil {
		e.appRepo.UpdateError(appID, fmt.Sprintf("failed to score candidate: %v", err))
		return fmt.Errorf("failed to score candidate: %w", err)
	}

	// An ineligible candidate gets a zero score with the gate's reason;
	// no LLM call is made.
	if !breakdown.Eligible {
		log.Printf("🚫 Candidate ineligible: %s\n", breakdown.EligibilityReason)
		zero := 0.0
		return e.saveResult(appID, &repositories.ApplicationUpdateData{
			Score:             &zero,
			EligibilityReason: &breakdown.EligibilityReason,
			FinalScore:        &breakdown.FinalScore,
			SkillScore:        &breakdown.SkillScore.Final,
			SemanticScore:     &breakdown.SemanticScore,
			CourseScore:       &breakdown.CourseScore,
		})
	}

	// Step 4: Index resume chunks for retrieval
	log.Println("🔍 Indexing resume chunks...")
	topChunks, err := e.indexAndRetrieve(ctx, application.CVDocumentID.String(), cv, jd)
	if err != nil {
		// Retrieval failure degrades the prompt but does not fail the
		// evaluation.
		log.Printf("⚠️  Warning: chunk retrieval failed: %v\n", err)
		topChunks = nil
	}

	// Step 5: Qualitative feedback from the LLM
	log.Println("🤖 Generating feedback...")
	feedback, err := e.generateFeedback(ctx, jd, cvText, topChunks)
	if err != nil {
		e.appRepo.UpdateError(appID, fmt.Sprintf("failed to generate feedback: %v", err))
		return fmt.Errorf("failed to generate feedback: %w", err)
	}

	// Step 6: Blend and persist
	log.Println("💾 Saving evaluation results...")
	update := e.buildUpdate(breakdown, feedback)
	if err := e.saveResult(appID, update); err != nil {
		return err
	}

	log.Printf("✅ Evaluation completed successfully for application: %s\n", appID)
	return nil
}

// extractText resolves the document to bytes (fetching remote paths to a
// temp file first), then serves the normalized text from the checksum
// cache or a fresh parse.
func (e *evaluatorService) extractText(ctx context.Context, doc *models.Document) (string, error) {
	path := doc.FilePath
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		tmpPath, cleanup, err := e.storage.FetchToTempFile(ctx, path)
		if err != nil {
			return "", err
		}
		defer cleanup()
		path = tmpPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}

	checksum := doc.Checksum
	if checksum == "" {
		sum := sha256.Sum256(data)
		checksum = hex.EncodeToString(sum[:])
	}

	e.cacheMu.Lock()
	cached, ok := e.textCache[checksum]
	e.cacheMu.Unlock()
	if ok {
		return cached, nil
	}

	text, err := e.pdfParser.ExtractTextFromBytes(data)
	if err != nil {
		return "", err
	}
	text = NormalizeText(text)

	e.cacheMu.Lock()
	e.textCache[checksum] = text
	e.cacheMu.Unlock()

	return text, nil
}

// indexAndRetrieve re-indexes the resume's chunks and returns the ones
// closest to the JD query.
func (e *evaluatorService) indexAndRetrieve(ctx context.Context, resumeID string, cv *models.StructuredCV, jd *models.StructuredJD) ([]string, error) {
	chunks := ChunkResume(cv)
	if len(chunks) == 0 {
		return nil, nil
	}

	embeddings, err := e.geminiService.EmbedTexts(ctx, chunks)
	if err != nil {
		return nil, fmt.Errorf("failed to embed resume chunks: %w", err)
	}

	if err := e.vectorIndex.ReindexResume(ctx, resumeID, chunks, embeddings); err != nil {
		return nil, err
	}

	queryEmbedding, err := e.geminiService.GenerateEmbedding(ctx, BuildJDQuery(jd))
	if err != nil {
		return nil, fmt.Errorf("failed to embed JD query: %w", err)
	}

	results, err := e.vectorIndex.QueryTopChunks(ctx, resumeID, queryEmbedding, topChunkLimit)
	if err != nil {
		return nil, err
	}

	texts := make([]string, 0, len(results))
	for _, r := range results {
		texts = append(texts, r.Text)
	}
	return texts, nil
}

func (e *evaluatorService) generateFeedback(ctx context.Context, jd *models.StructuredJD, cvText string, topChunks []string) (models.Feedback, error) {
	prompt := BuildFeedbackPrompt(BuildJDQuery(jd), cvText, topChunks)

	select {
	case e.llmSem <- struct{}{}:
	case <-ctx.Done():
		return models.Feedback{}, fmt.Errorf("context cancelled: %w", ctx.Err())
	}
	defer func() { <-e.llmSem }()

	response, err := e.geminiService.GenerateTextWithRetry(ctx, prompt, 0.4, e.maxRetries)
	if err != nil {
		return models.Feedback{}, err
	}

	return ParseFeedback(response), nil
}

// buildUpdate blends the quantitative breakdown with the parsed feedback.
// An unparseable response falls back to the raw text and the manual
// composite percentage alone.
func (e *evaluatorService) buildUpdate(breakdown *models.ScoreBreakdown, feedback models.Feedback) *repositories.ApplicationUpdateData {
	update := &repositories.ApplicationUpdateData{
		FinalScore:    &breakdown.FinalScore,
		SkillScore:    &breakdown.SkillScore.Final,
		SemanticScore: &breakdown.SemanticScore,
		CourseScore:   &breakdown.CourseScore,
	}
	reason := breakdown.EligibilityReason
	update.EligibilityReason = &reason

	if feedback.Parsed() {
		combined := BlendScores(breakdown, feedback.Record)
		update.Score = &combined.CombinedScore
		update.Feedback = &combined.Feedback
		strengths := strings.Join(combined.Strengths, "\n")
		weaknesses := strings.Join(combined.Weaknesses, "\n")
		update.Strengths = &strengths
		update.Weaknesses = &weaknesses
		return update
	}

	manual := round2(ManualScorePercent(breakdown))
	update.Score = &manual
	raw := feedback.Raw
	update.Feedback = &raw
	return update
}

func (e *evaluatorService) saveResult(appID uuid.UUID, data *repositories.ApplicationUpdateData) error {
	if err := e.appRepo.UpdateEvaluation(appID, data); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}
	return nil
}
