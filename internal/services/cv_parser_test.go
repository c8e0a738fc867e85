package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Srishti Sharma
B.Tech - Computer Science and Engineering
srishti@iitg.ac.in
+91 9876543210

EDUCATION
B.Tech - Computer Science and Engineering (Major)
Indian Institute of Technology Guwahati
8.2 (CGPA)
2021-2025
Senior Secondary
Delhi Public School
95.2%
2020

PROJECTS
• Resume Ranker
Jan 2024
- Built a scoring engine in Python
- Deployed with Docker

TECHNICAL SKILLS
Languages: Python, Java, C++
Frameworks: Django, React

KEY COURSES TAKEN
Core: Data Structures, Algorithms
Operating Systems

ACHIEVEMENTS
• Won Smart India Hackathon
• AIR 512 in JEE Advanced

EXTRACURRICULAR ACTIVITIES
• Member of the coding club

POSITIONS OF RESPONSIBILITY
• Placement coordinator
`

func TestParseCV(t *testing.T) {
	cv := NewCVParserService().ParseCV(sampleResume)

	assert.Equal(t, "Srishti Sharma", cv.Name)
	assert.Equal(t, []string{"srishti@iitg.ac.in"}, cv.Emails)
	assert.Equal(t, []string{"+91 9876543210"}, cv.Phones)
	assert.Equal(t, "Computer Science and Engineering", cv.Branch)
	assert.Equal(t, "8.2", cv.CGPA)
}

func TestParseCVEducation(t *testing.T) {
	cv := NewCVParserService().ParseCV(sampleResume)

	require.Len(t, cv.Education, 2)
	assert.Equal(t, "B.Tech - Computer Science and Engineering (Major)", cv.Education[0].Degree)
	assert.Equal(t, "Indian Institute of Technology Guwahati", cv.Education[0].Institution)
	assert.Equal(t, "8.2 (CGPA)", cv.Education[0].Score)
	assert.Equal(t, "2021-2025", cv.Education[0].Year)
	assert.Equal(t, "Senior Secondary", cv.Education[1].Degree)
	assert.Equal(t, "95.2%", cv.Education[1].Score)
}

func TestParseCVProjects(t *testing.T) {
	cv := NewCVParserService().ParseCV(sampleResume)

	require.Len(t, cv.Projects, 1)
	assert.Equal(t, "Resume Ranker", cv.Projects[0].Title)
	assert.Equal(t, "Jan 2024", cv.Projects[0].Date)
	assert.Equal(t, "Built a scoring engine in Python Deployed with Docker", cv.Projects[0].Summary)
}

func TestParseCVSkillsAndCourses(t *testing.T) {
	cv := NewCVParserService().ParseCV(sampleResume)

	assert.Equal(t, []string{"Python", "Java", "C++"}, cv.Skills["languages"])
	assert.Equal(t, []string{"Django", "React"}, cv.Skills["frameworks"])

	// Vocabulary matching is boundary-aware; "c" still matches inside
	// "c++" because '+' is not a word character.
	assert.Equal(t, []string{"c", "c++", "django", "java", "python", "react"}, cv.ExtractedSkills)

	// Continuation lines without a colon append to the last category.
	assert.Equal(t, []string{"Data Structures", "Algorithms", "Operating Systems"}, cv.Courses["core"])
}

func TestParseCVBulletSections(t *testing.T) {
	cv := NewCVParserService().ParseCV(sampleResume)

	assert.Equal(t, []string{"Won Smart India Hackathon", "AIR 512 in JEE Advanced"}, cv.Achievements)
	assert.Equal(t, []string{"Member of the coding club"}, cv.Extracurriculars)
	assert.Equal(t, []string{"Placement coordinator"}, cv.Positions)
}

func TestParseCVEmptyInput(t *testing.T) {
	cv := NewCVParserService().ParseCV("")

	assert.Empty(t, cv.Name)
	assert.Empty(t, cv.Education)
	assert.Empty(t, cv.Projects)
	assert.Empty(t, cv.Skills)
}

func TestParseCVDeterministic(t *testing.T) {
	parser := NewCVParserService()
	assert.Equal(t, parser.ParseCV(sampleResume), parser.ParseCV(sampleResume))
}
