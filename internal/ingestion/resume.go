package ingestion

import (
	"regexp"
	"strings"
	"unicode"
)

const maxProjectNames = 6

var (
	sectionHeaderPattern = regexp.MustCompile(`(?im)(?:^|\n)[ \t]*(?:PROJECTS?|KEY PROJECTS?|NOTABLE PROJECTS?|PROJECT EXPERIENCE|PERSONAL PROJECTS?|TECHNICAL PROJECTS?|SOFTWARE PROJECTS?)[ \t]*(?:\n|$)`)
	nextSectionPattern   = regexp.MustCompile(`(?im)\n[ \t]*(?:EXPERIENCE|EDUCATION|SKILLS|CERTIFICATIONS|WORK HISTORY|EMPLOYMENT|ABOUT|SUMMARY)[ \t]*(?:\n|$)`)
	bulletPrefixPattern  = regexp.MustCompile(`^[•·▪▫]\s*|^\d+\.\s*`)
	titleDescPattern     = regexp.MustCompile(`^([^:\x{2013}\x{2014}\n-]{8,60})\s*[-:\x{2013}\x{2014}]\s*`)
	titleCasePattern     = regexp.MustCompile(`^[A-Z][a-zA-Z ]{5,50}(\s|$)`)
	splitTitlePattern    = regexp.MustCompile(`[-:;\x{2013}\x{2014}]`)
	trailingPunctPattern = regexp.MustCompile(`[.,:;!?]+$`)
	quotePattern         = regexp.MustCompile(`^["']|["']$`)

	buildVerbPattern  = regexp.MustCompile(`(?i)(?:Built|Developed|Created|Implemented|Designed|Engineered)\s+(?:a\s+|an\s+|the\s+)?([A-Z][^.]{10,60}?)\s+(?:using|with|that|to)`)
	labeledPattern    = regexp.MustCompile(`(?i)(?:Project|System|Tool|Platform|Application)(?:\s+Name)?[:\s-]+([A-Z][^\n]{8,50}?)(?:\s*[-\x{2013}\x{2014}]\s*|\n|$)`)
	githubRepoPattern = regexp.MustCompile(`github\.com/[^/\s]+/([a-zA-Z0-9\-_]{3,30})`)

	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern    = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[A-Za-z0-9\-]+`)
	githubPattern   = regexp.MustCompile(`(?i)github\.com/[A-Za-z0-9\-]+`)
)

// invalid first words for a candidate project name
var invalidNameStarters = []string{
	"using", "with", "in", "for", "that", "to", "and", "or", "but",
	"the", "a", "an", "this", "these", "those", "my", "our", "their",
	"experience", "work", "job", "role", "position", "responsibilities",
	"skills", "technologies", "tools", "languages", "frameworks",
}

// ProjectNames extracts project names from plain resume text. It looks for a
// projects section first, falls back to global patterns when none is found,
// and returns at most six cleaned names.
func ProjectNames(resumeText string) []string {
	if resumeText == "" {
		return nil
	}

	var candidates []string
	for _, section := range findProjectSections(resumeText) {
		candidates = append(candidates, projectsFromSection(section)...)
	}
	if len(candidates) == 0 {
		candidates = projectsGlobalFallback(resumeText)
	}

	seen := make(map[string]struct{})
	var names []string
	for _, candidate := range candidates {
		cleaned, ok := cleanProjectName(candidate)
		if !ok {
			continue
		}
		if _, dup := seen[cleaned]; dup {
			continue
		}
		seen[cleaned] = struct{}{}
		names = append(names, cleaned)
		if len(names) >= maxProjectNames {
			break
		}
	}
	return names
}

// findProjectSections returns the text regions under project headers, cut at
// the next major section header.
func findProjectSections(text string) []string {
	var sections []string
	for _, match := range sectionHeaderPattern.FindAllStringIndex(text, -1) {
		start := match[1]
		end := len(text)
		if next := nextSectionPattern.FindStringIndex(text[start:]); next != nil {
			end = start + next[0]
		}
		section := strings.TrimSpace(text[start:end])
		if len(section) > 50 {
			sections = append(sections, section)
		}
	}
	return sections
}

func projectsFromSection(section string) []string {
	var projects []string
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 30 {
			continue
		}
		if name := projectNameFromLine(line); name != "" {
			projects = append(projects, name)
		}
	}
	return projects
}

// projectNameFromLine recognizes "Name: description" or "Name - description"
// shapes, and bare title-case names.
func projectNameFromLine(line string) string {
	line = strings.TrimSpace(bulletPrefixPattern.ReplaceAllString(line, ""))

	if m := titleDescPattern.FindStringSubmatch(line); m != nil {
		name := strings.TrimSpace(m[1])
		if isValidProjectName(name) {
			return name
		}
	}

	if titleCasePattern.MatchString(line) {
		name := strings.TrimSpace(splitTitlePattern.Split(line, 2)[0])
		if isValidProjectName(name) {
			return name
		}
	}
	return ""
}

// projectsGlobalFallback scans the whole resume for project-shaped phrases
// when no projects section exists.
func projectsGlobalFallback(text string) []string {
	var projects []string
	for _, pattern := range []*regexp.Regexp{buildVerbPattern, labeledPattern, githubRepoPattern} {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			projects = append(projects, match[1])
		}
	}
	return projects
}

func isValidProjectName(name string) bool {
	if len(name) < 5 || len(name) > 80 {
		return false
	}

	nameLower := strings.ToLower(strings.TrimSpace(name))
	for _, starter := range invalidNameStarters {
		if strings.HasPrefix(nameLower, starter+" ") {
			return false
		}
	}

	hasLetter := false
	digits := 0
	for _, r := range name {
		if unicode.IsLetter(r) {
			hasLetter = true
		}
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if !hasLetter {
		return false
	}
	// Mostly digits is a date or phone number, not a project
	if digits*2 > len(name) {
		return false
	}
	// Long all-caps strings are section headers
	if len(name) > 20 && name == strings.ToUpper(name) {
		return false
	}
	return true
}

func cleanProjectName(name string) (string, bool) {
	name = strings.TrimSpace(name)
	name = spacePattern.ReplaceAllString(name, " ")
	name = trailingPunctPattern.ReplaceAllString(name, "")
	name = quotePattern.ReplaceAllString(name, "")
	if !isValidProjectName(name) {
		return "", false
	}
	return name, true
}

// ContactInfo holds contact details found in a resume.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// ExtractContactInfo finds the first email, phone number, LinkedIn profile,
// and GitHub profile in resume text.
func ExtractContactInfo(resumeText string) ContactInfo {
	return ContactInfo{
		Email:    emailPattern.FindString(resumeText),
		Phone:    phonePattern.FindString(resumeText),
		LinkedIn: linkedinPattern.FindString(resumeText),
		GitHub:   githubPattern.FindString(resumeText),
	}
}

// TruncateText cuts text to maxLength, preferring a word boundary when one
// is close enough to the limit.
func TruncateText(text string, maxLength int) string {
	if text == "" || len(text) <= maxLength {
		return text
	}
	truncated := text[:maxLength]
	lastSpace := strings.LastIndex(truncated, " ")
	if lastSpace > maxLength*4/5 {
		return truncated[:lastSpace] + "..."
	}
	return truncated + "..."
}
