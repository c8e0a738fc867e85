package services

import (
	"regexp"
	"sort"
	"strings"

	"github.com/srishti-3/CV-Align/internal/models"
)

// CVParserService turns raw resume text into a StructuredCV. Every field
// extractor is independently testable and tolerant of malformed input: a
// field that cannot be extracted stays empty, the build never fails.
type CVParserService interface {
	ParseCV(rawText string) *models.StructuredCV
}

type cvParserService struct{}

func NewCVParserService() CVParserService {
	return &cvParserService{}
}

func (p *cvParserService) ParseCV(rawText string) *models.StructuredCV {
	sections := SegmentText(rawText, CVSectionRules())

	education := extractEducation(sections["education"])
	branch, cgpa := extractBranchAndCGPA(rawText, education)
	skills := extractCategorized(sections["skills"], false)

	return &models.StructuredCV{
		Name:             extractName(rawText),
		Emails:           extractEmails(rawText),
		Phones:           extractPhones(rawText),
		Branch:           branch,
		CGPA:             cgpa,
		Education:        education,
		Projects:         extractProjects(sections["projects"]),
		Achievements:     extractBulletLines(sections["achievements"]),
		Skills:           skills,
		ExtractedSkills:  extractFlatSkills(skills, TechKeywords),
		Courses:          extractCategorized(sections["courses"], true),
		Extracurriculars: extractBulletLines(sections["extracurriculars"]),
		Positions:        extractBulletLines(sections["positions"]),
	}
}

var (
	alphaWordRe = regexp.MustCompile(`\b[A-Za-z]{2,}\b`)
	emailRe     = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`)
	phoneRe     = regexp.MustCompile(`(?:(?:\+91[\s\-]*)|(?:\b0))?[6-9]\d{9}\b`)
	degreeRe    = regexp.MustCompile(`B\.?Tech\.?\s*-\s*(.*)`)
	cgpaValueRe = regexp.MustCompile(`\b(\d\.\d{1,2})\b`)
	bulletOrNL  = regexp.MustCompile(`•|\n`)
)

// extractName picks, from the first five lines, the first line with at
// least two alphabetic words and no email sign.
func extractName(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(alphaWordRe.FindAllString(line, -1)) >= 2 && !strings.Contains(line, "@") {
			return line
		}
	}
	return ""
}

// extractEmails scans the whole document, not just a section, and
// de-duplicates.
func extractEmails(text string) []string {
	return dedupeSorted(emailRe.FindAllString(text, -1))
}

func extractPhones(text string) []string {
	return dedupeSorted(phoneRe.FindAllString(text, -1))
}

// extractEducation scans rows of the education table. A row holding a
// degree marker opens a four-line record; the cursor advances four lines
// per record and one line otherwise, so malformed tables yield partial
// records instead of errors.
func extractEducation(text string) []models.EducationEntry {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	rows := strings.Split(strings.TrimSpace(text), "\n")
	var entries []models.EducationEntry
	for i := 0; i < len(rows); {
		row := strings.ToLower(rows[i])
		if !strings.Contains(row, "b.tech") && !strings.Contains(row, "secondary") {
			i++
			continue
		}
		entry := models.EducationEntry{Degree: rows[i]}
		if i+1 < len(rows) {
			entry.Institution = rows[i+1]
		}
		if i+2 < len(rows) {
			entry.Score = rows[i+2]
		}
		if i+3 < len(rows) {
			entry.Year = rows[i+3]
		}
		entries = append(entries, entry)
		i += 4
	}
	return entries
}

// extractCategorized parses "category: item, item" lines into a map. With
// continuations enabled, lines without a colon append to the last-seen
// category (course lists wrap across lines in the template).
func extractCategorized(text string, continuations bool) map[string][]string {
	grouped := make(map[string][]string)
	current := ""
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.Trim(line, "•*- "))
		if line == "" {
			continue
		}
		if key, rest, found := strings.Cut(line, ":"); found {
			current = strings.ToLower(strings.TrimSpace(key))
			if items := splitCommaItems(rest); len(items) > 0 {
				grouped[current] = items
			} else if !continuations {
				current = ""
			}
		} else if continuations && current != "" {
			grouped[current] = append(grouped[current], splitCommaItems(line)...)
		}
	}
	return grouped
}

func splitCommaItems(text string) []string {
	var items []string
	for _, item := range strings.Split(text, ",") {
		item = strings.TrimSpace(strings.Trim(strings.TrimSpace(item), "* "))
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// extractProjects splits the section on bullet markers. A block needs at
// least two lines (title, date); everything after becomes the summary.
// Shorter blocks are dropped silently.
func extractProjects(text string) []models.Project {
	var projects []models.Project
	for _, block := range strings.Split(text, "• ") {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 2 {
			continue
		}
		title := strings.TrimSpace(lines[0])
		if title == "" {
			continue
		}
		var details []string
		for _, l := range lines[2:] {
			l = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(l), "–- "))
			if l != "" {
				details = append(details, l)
			}
		}
		projects = append(projects, models.Project{
			Title:   title,
			Date:    strings.TrimSpace(lines[1]),
			Summary: strings.Join(details, " "),
		})
	}
	return projects
}

// extractBulletLines cleans free-text bullet sections (achievements,
// extracurriculars, positions) into one item per bullet or line.
func extractBulletLines(text string) []string {
	var items []string
	for _, part := range bulletOrNL.Split(text, -1) {
		part = strings.Trim(part, "•–\t ")
		part = strings.ReplaceAll(part, "–", "-")
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}

// extractFlatSkills matches the technology vocabulary against the joined
// skill category values, word-boundary aware.
func extractFlatSkills(skills map[string][]string, keywords []string) []string {
	var parts []string
	for _, category := range sortedKeys(skills) {
		for _, skill := range skills[category] {
			parts = append(parts, strings.ToLower(skill))
		}
	}
	combined := strings.Join(parts, " ")

	var matched []string
	for _, kw := range keywords {
		if ContainsKeyword(combined, kw) {
			matched = append(matched, strings.ToLower(kw))
		}
	}
	return dedupeSorted(matched)
}

// extractBranchAndCGPA pulls the B.Tech major from the full text and the
// CGPA from the major education entry's score column.
func extractBranchAndCGPA(text string, education []models.EducationEntry) (string, string) {
	branch := ""
	if m := degreeRe.FindStringSubmatch(text); m != nil {
		branch = strings.TrimSpace(m[1])
	}

	cgpa := ""
	for _, edu := range education {
		degree := strings.ToLower(edu.Degree)
		if strings.Contains(degree, "b.tech") && strings.Contains(degree, "major") {
			if m := cgpaValueRe.FindStringSubmatch(edu.Score); m != nil {
				cgpa = m[1]
				break
			}
		}
	}
	return branch, cgpa
}

func dedupeSorted(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	var out []string
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			out = append(out, item)
		}
	}
	sort.Strings(out)
	return out
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
