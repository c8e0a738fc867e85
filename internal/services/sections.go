package services

import (
	"regexp"
	"strings"
)

// SectionRule binds a section key to the header synonyms that open it.
// Rules are priority-ordered: when a line could match several keys, the
// first rule in the slice wins.
type SectionRule struct {
	Key      string
	Synonyms []string
}

// SectionMap maps section keys to their raw text. Sections with no content
// are absent, never empty placeholders.
type SectionMap map[string]string

func CVSectionRules() []SectionRule {
	return []SectionRule{
		{"education", []string{"education"}},
		{"projects", []string{"projects"}},
		{"achievements", []string{"achievements"}},
		{"skills", []string{"technical skills"}},
		{"courses", []string{"key courses taken"}},
		{"extracurriculars", []string{"extracurricular activities", "extracurricular"}},
		{"positions", []string{"positions of responsibility"}},
	}
}

func JDSectionRules() []SectionRule {
	return []SectionRule{
		{"job_role", []string{"about the role", "introduction", "overview", "position overview"}},
		{"responsibilities", []string{"responsibilities", "what you'll do", "key responsibilities"}},
		{"required_skills", []string{"required skills", "technical skills", "required capabilities"}},
		{"preferred_skills", []string{"preferred skills", "preferred qualifications", "preferred capabilities", "good to have"}},
		{"eligibility", []string{"eligibility", "qualification criteria", "who can apply"}},
		{"locations", []string{"locations", "location", "you may join in"}},
		{"values", []string{"our values", "values", "what we value"}},
	}
}

var nonLetterRe = regexp.MustCompile(`[^a-z\s]`)

// matchHeader returns the section key a line opens, or "" if the line is
// not a header. The line is lowercased and stripped of non-letters before
// the synonym containment check.
func matchHeader(line string, rules []SectionRule) string {
	normalized := nonLetterRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(line)), "")
	for _, rule := range rules {
		for _, syn := range rule.Synonyms {
			if strings.Contains(normalized, syn) {
				return rule.Key
			}
		}
	}
	return ""
}

// SegmentText scans lines top to bottom in a single pass. A line matching a
// header synonym opens that section; subsequent lines accumulate into it
// until the next header. Line order within a section is preserved.
func SegmentText(text string, rules []SectionRule) SectionMap {
	lines := strings.Split(text, "\n")
	collected := make(map[string][]string)
	current := ""

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if key := matchHeader(line, rules); key != "" {
			current = key
			continue
		}
		if current != "" {
			collected[current] = append(collected[current], line)
		}
	}

	sections := make(SectionMap, len(collected))
	for key, lines := range collected {
		sections[key] = strings.Join(lines, "\n")
	}
	return sections
}
