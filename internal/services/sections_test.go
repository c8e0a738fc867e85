package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentTextCV(t *testing.T) {
	text := `Srishti Sharma

EDUCATION
B.Tech - Computer Science and Engineering (Major)
Indian Institute of Technology

PROJECTS
• Resume Ranker
Jan 2024

TECHNICAL SKILLS
Languages: Python, Java
`

	sections := SegmentText(text, CVSectionRules())

	assert.Contains(t, sections["education"], "Indian Institute of Technology")
	assert.Contains(t, sections["projects"], "Resume Ranker")
	assert.Contains(t, sections["skills"], "Languages: Python, Java")

	// Sections with no content never appear as empty placeholders.
	_, ok := sections["achievements"]
	assert.False(t, ok)
}

func TestSegmentTextPreservesLineOrder(t *testing.T) {
	text := "ACHIEVEMENTS\nfirst\nsecond\nthird"

	sections := SegmentText(text, CVSectionRules())

	assert.Equal(t, "first\nsecond\nthird", sections["achievements"])
}

func TestSegmentTextHeaderNormalization(t *testing.T) {
	// Punctuation and case in the header line must not matter.
	text := "*** Achievements: ***\nWon the hackathon"

	sections := SegmentText(text, CVSectionRules())

	assert.Equal(t, "Won the hackathon", sections["achievements"])
}

func TestSegmentTextJDPriority(t *testing.T) {
	// "Technical Skills" is a required-skills synonym in the JD rules.
	text := "Technical Skills\nPython\nSQL"

	sections := SegmentText(text, JDSectionRules())

	assert.Equal(t, "Python\nSQL", sections["required_skills"])
}

func TestSegmentTextIdempotent(t *testing.T) {
	text := `Responsibilities
Design APIs
Required Skills
Python`

	first := SegmentText(text, JDSectionRules())
	second := SegmentText(text, JDSectionRules())

	assert.Equal(t, first, second)
}
