package models

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	FileType     string `json:"file_type"`
}

type CreateJobRequest struct {
	Title          string `json:"title" validate:"required"`
	Company        string `json:"company" validate:"required"`
	Location       string `json:"location"`
	JobType        string `json:"job_type"`
	RecruiterEmail string `json:"recruiter_email" validate:"required,email"`
	JDDocumentID   string `json:"jd_document_id" validate:"required,uuid"`
}

type ApplyRequest struct {
	StudentEmail string `json:"student_email" validate:"required,email"`
	StudentName  string `json:"student_name"`
	JobID        string `json:"job_id" validate:"required,uuid"`
	CVDocumentID string `json:"cv_document_id" validate:"required,uuid"`
}

type EvaluateRequest struct {
	ApplicationID string `json:"application_id" validate:"required,uuid"`
}

type EvaluateResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ResultResponse struct {
	ID           string          `json:"id"`
	Status       string          `json:"status"`
	Result       *EvaluationData `json:"result,omitempty"`
	ErrorMessage *string         `json:"error_message,omitempty"`
}

type EvaluationData struct {
	Score             float64  `json:"score"`
	Feedback          string   `json:"feedback"`
	Strengths         []string `json:"strengths,omitempty"`
	Weaknesses        []string `json:"weaknesses,omitempty"`
	EligibilityReason string   `json:"eligibility_reason,omitempty"`
	FinalScore        float64  `json:"final_score"`
	SkillScore        float64  `json:"skill_score"`
	SemanticScore     float64  `json:"semantic_score"`
	CourseScore       float64  `json:"course_score"`
}
