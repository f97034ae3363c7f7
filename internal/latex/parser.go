// Package latex parses resume projects out of LaTeX source in the
// resumeProjectHeading format.
package latex

import (
	"strings"

	"github.com/therrshan/resume-feedback/internal/types"
)

const (
	headingMarker   = `\resumeProjectHeading`
	itemListStart   = `\resumeItemListStart`
	itemListEnd     = `\resumeItemListEnd`
	itemMarker      = `\resumeItem`
	hrefMarker      = `\href`
	boldMarker      = `\textbf`
	emphasisMarker  = `\emph`
	underlineMarker = `\underline`
)

// ParseProjects extracts all projects found in the LaTeX content. A project
// block is a \resumeProjectHeading with two brace groups (header and date
// range) followed by a \resumeItemListStart ... \resumeItemListEnd region of
// \resumeItem entries. Blocks missing a name or all description points are
// skipped. Returns a ParseError when the content contains no project
// headings at all.
func ParseProjects(content string) ([]types.Project, error) {
	if !strings.Contains(content, headingMarker) {
		return nil, &ParseError{Message: "no \\resumeProjectHeading blocks found"}
	}

	var projects []types.Project
	rest := content
	for {
		idx := strings.Index(rest, headingMarker)
		if idx < 0 {
			break
		}
		rest = rest[idx+len(headingMarker):]

		header, next, ok := readBraceGroup(rest, 0)
		if !ok {
			continue
		}
		dateRange, next, ok := readBraceGroup(rest, next)
		if !ok {
			continue
		}

		listStart := strings.Index(rest[next:], itemListStart)
		if listStart < 0 {
			continue
		}
		itemsFrom := next + listStart + len(itemListStart)
		listEnd := strings.Index(rest[itemsFrom:], itemListEnd)
		if listEnd < 0 {
			continue
		}

		name, techStack, link := parseHeader(header)
		points := parseItems(rest[itemsFrom : itemsFrom+listEnd])

		rest = rest[itemsFrom+listEnd+len(itemListEnd):]

		if name == "" || len(points) == 0 {
			continue
		}
		projects = append(projects, types.Project{
			Name:              name,
			TechStack:         techStack,
			DateRange:         strings.TrimSpace(dateRange),
			GithubLink:        link,
			DescriptionPoints: points,
		})
	}

	return projects, nil
}

// parseHeader pulls the project name, tech stack, and repository link out of
// a heading's first brace group. The expected shape is
// \textbf{Name} $|$ \emph{Tech, Tech, ..., \href{url}{\underline{Link}}}.
func parseHeader(header string) (name string, techStack []string, link string) {
	link, header = extractLink(header)

	if content, _, ok := findCommandArg(header, boldMarker); ok {
		name = strings.TrimSpace(content)
	}
	if content, _, ok := findCommandArg(header, emphasisMarker); ok {
		for _, tech := range strings.Split(content, ",") {
			cleaned := CleanText(tech)
			if cleaned != "" {
				techStack = append(techStack, cleaned)
			}
		}
	}
	return name, techStack, link
}

// extractLink finds the first \href{url}{display} in the header, returning
// the url and the header with the whole command removed.
func extractLink(header string) (string, string) {
	idx := strings.Index(header, hrefMarker)
	if idx < 0 {
		return "", header
	}
	after := header[idx+len(hrefMarker):]
	url, next, ok := readBraceGroup(after, 0)
	if !ok {
		return "", header
	}
	_, end, ok := readBraceGroup(after, next)
	if !ok {
		end = next
	}
	return strings.TrimSpace(url), header[:idx] + after[end:]
}

// parseItems collects the cleaned text of every \resumeItem in the list
// region, dropping entries that clean down to nothing.
func parseItems(region string) []string {
	var points []string
	rest := region
	for {
		idx := strings.Index(rest, itemMarker)
		if idx < 0 {
			break
		}
		rest = rest[idx+len(itemMarker):]
		content, next, ok := readBraceGroup(rest, 0)
		if !ok {
			continue
		}
		rest = rest[next:]
		if cleaned := CleanText(content); cleaned != "" {
			points = append(points, cleaned)
		}
	}
	return points
}

// findCommandArg locates the first occurrence of the command followed by a
// balanced brace group and returns the group's content and the index just
// past it.
func findCommandArg(s, command string) (content string, end int, ok bool) {
	idx := strings.Index(s, command)
	if idx < 0 {
		return "", 0, false
	}
	content, next, ok := readBraceGroup(s, idx+len(command))
	if !ok {
		return "", 0, false
	}
	return content, next, true
}

// readBraceGroup reads a balanced {...} group starting at or after offset,
// skipping leading whitespace. It returns the group's inner content and the
// index just past the closing brace. Nested braces are kept intact, which
// matters for items that contain formatting commands.
func readBraceGroup(s string, offset int) (content string, next int, ok bool) {
	i := offset
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	if i >= len(s) || s[i] != '{' {
		return "", 0, false
	}
	depth := 0
	for j := i; j < len(s); j++ {
		switch s[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[i+1 : j], j + 1, true
			}
		}
	}
	return "", 0, false
}
