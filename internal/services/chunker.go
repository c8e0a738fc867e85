package services

import (
	"strings"

	"github.com/srishti-3/CV-Align/internal/models"
)

// ChunkResume flattens a structured resume into the text chunks indexed by
// the vector store. Chunk order is deterministic so re-indexing the same
// resume produces the same payloads.
func ChunkResume(cv *models.StructuredCV) []string {
	var chunks []string
	add := func(text string) {
		if text = strings.TrimSpace(text); text != "" {
			chunks = append(chunks, text)
		}
	}

	add(cv.Name)
	for _, email := range cv.Emails {
		add(email)
	}
	for _, phone := range cv.Phones {
		add(phone)
	}
	add(cv.Branch)
	add(cv.CGPA)
	for _, edu := range cv.Education {
		add(strings.Join([]string{edu.Degree, edu.Institution, edu.Score, edu.Year}, " "))
	}
	for _, project := range cv.Projects {
		add(strings.Join([]string{project.Title, project.Date, project.Summary}, " "))
	}
	for _, achievement := range cv.Achievements {
		add(achievement)
	}
	add(joinCategorized(cv.Skills))
	for _, skill := range cv.ExtractedSkills {
		add(skill)
	}
	add(joinCategorized(cv.Courses))
	for _, activity := range cv.Extracurriculars {
		add(activity)
	}
	for _, position := range cv.Positions {
		add(position)
	}

	return chunks
}

func joinCategorized(m map[string][]string) string {
	var parts []string
	for _, category := range sortedKeys(m) {
		parts = append(parts, strings.Join(m[category], " "))
	}
	return strings.Join(parts, " ")
}
