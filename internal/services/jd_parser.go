package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/srishti-3/CV-Align/internal/models"
)

// JDParserService turns raw job-description text into a StructuredJD,
// combining section cleanup with branch/technology/domain/CGPA inference.
// Parsing the same text twice yields identical records.
type JDParserService interface {
	ParseJD(rawText string) *models.StructuredJD
}

type jdParserService struct {
	space     *SkillSpace
	threshold float64
	titler    cases.Caser
}

// NewJDParserService builds a parser around the shared skill embedding
// space. threshold gates technology detection (see extractTechnologies).
func NewJDParserService(space *SkillSpace, threshold float64) JDParserService {
	return &jdParserService{
		space:     space,
		threshold: threshold,
		titler:    cases.Title(language.English),
	}
}

var (
	locationRe = regexp.MustCompile(`(?i)\b(Remote|On-site|Hybrid)\b`)
	minCGPARe  = regexp.MustCompile(`(?i)(?:CGPA|CPI|GPA)[^0-9]{0,5}(\d{1,2}(?:\.\d{1,2})?)`)
	sentenceRe = regexp.MustCompile(`•|\n|\.\s+`)
	jobTitleRe = regexp.MustCompile(`Job Title:\s*(.*)`)
	jobTypeRe  = regexp.MustCompile(`Job Type:\s*(.*)`)
	expLevelRe = regexp.MustCompile(`Experience Level:\s*(.*)`)
)

func (p *jdParserService) ParseJD(rawText string) *models.StructuredJD {
	sections := SegmentText(rawText, JDSectionRules())

	jd := &models.StructuredJD{
		JobRole:          NormalizeText(collapseSection(sections["job_role"])),
		Responsibilities: splitListSection(sections["responsibilities"]),
		RequiredSkills:   splitListSection(sections["required_skills"]),
		PreferredSkills:  splitListSection(sections["preferred_skills"]),
		Eligibility:      NormalizeText(collapseSection(sections["eligibility"])),
		Locations:        extractLocations(sections["locations"]),
		Values:           splitListSection(sections["values"]),
	}

	jd.JobTitle, jd.JobType, jd.ExperienceLevel = extractJDMetadata(rawText)

	fullText := strings.ToLower(collapseSection(strings.Join(sectionValues(sections), " ")))
	jd.Branches = p.extractBranches(fullText)
	jd.Technologies = extractTechnologies(fullText, p.space, p.threshold)
	jd.NonTechSkills = extractNonTechSkills(fullText)
	jd.MinCGPA = extractMinCGPA(fullText)
	jd.Domain = DetectDomain(fullText)

	return jd
}

func collapseSection(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func sectionValues(sections SectionMap) []string {
	keys := make([]string, 0, len(sections))
	for k := range sections {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	values := make([]string, 0, len(keys))
	for _, k := range keys {
		values = append(values, sections[k])
	}
	return values
}

// splitListSection splits a bulletable section on bullet glyphs. When the
// split yields at most one item the formatting is assumed poor and the text
// is re-split on periods and newlines, keeping fragments longer than five
// characters.
func splitListSection(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	items := splitBullets(text)
	if len(items) > 1 {
		for i, item := range items {
			items[i] = NormalizeText(collapseSection(item))
		}
		return items
	}

	var fallback []string
	for _, part := range sentenceRe.Split(text, -1) {
		part = strings.TrimSpace(part)
		if len(part) > 5 {
			fallback = append(fallback, NormalizeText(collapseSection(part)))
		}
	}
	return fallback
}

// extractLocations keeps only the recognized work modes and defaults to
// Remote when none are present.
func extractLocations(text string) string {
	matches := locationRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return "Remote"
	}
	return strings.Join(matches, ", ")
}

func extractJDMetadata(text string) (title, jobType, expLevel string) {
	if m := jobTitleRe.FindStringSubmatch(text); m != nil {
		title = NormalizeText(m[1])
	}
	if m := jobTypeRe.FindStringSubmatch(text); m != nil {
		jobType = NormalizeText(m[1])
	}
	if m := expLevelRe.FindStringSubmatch(text); m != nil {
		expLevel = NormalizeText(m[1])
	}
	return title, jobType, expLevel
}

// extractBranches collects exact-phrase hits from the canonical branch
// vocabulary, title-cased. Synonym canonicalization happens later, in the
// eligibility filter.
func (p *jdParserService) extractBranches(fullText string) []string {
	var branches []string
	for _, branch := range BranchKeywords {
		if ContainsKeyword(fullText, branch) {
			branches = append(branches, p.titler.String(branch))
		}
	}
	return branches
}

// extractTechnologies runs a two-stage filter over the embedding
// vocabulary: a cheap substring check between JD words and each vocabulary
// term first, then cosine-similarity confirmation against the threshold.
// The substring pre-filter bounds the vector lookups.
func extractTechnologies(fullText string, space *SkillSpace, threshold float64) []string {
	words := strings.Fields(fullText)
	var matched []string
	for _, term := range space.Vocab() {
		for _, word := range words {
			if !strings.Contains(word, term) && !strings.Contains(term, word) {
				continue
			}
			if sim, ok := space.Similarity(word, term); ok && sim >= threshold {
				matched = append(matched, term)
				break
			}
		}
	}
	return dedupeSorted(matched)
}

func extractNonTechSkills(fullText string) []string {
	var matched []string
	for _, kw := range NonTechKeywords {
		if ContainsKeyword(fullText, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}

// extractMinCGPA finds a CGPA/CPI/GPA label followed within five
// characters by a one-or-two digit, optionally decimal, number.
func extractMinCGPA(fullText string) *float64 {
	m := minCGPARe.FindStringSubmatch(fullText)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &v
}

// DetectDomain returns the first domain whose keyword list has a substring
// hit in the lowercased text, or General.
func DetectDomain(fullText string) string {
	for _, rule := range DomainRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(fullText, kw) {
				return rule.Name
			}
		}
	}
	return "General"
}
