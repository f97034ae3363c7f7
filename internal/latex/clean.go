package latex

import (
	"regexp"
	"strings"
)

var (
	boldPattern      = regexp.MustCompile(`\\textbf\{([^}]*)\}`)
	emphasisPattern  = regexp.MustCompile(`\\emph\{([^}]*)\}`)
	hrefPattern      = regexp.MustCompile(`\\href\{[^}]*\}\{([^}]*)\}`)
	underlinePattern = regexp.MustCompile(`\\underline\{([^}]*)\}`)
	commandPattern   = regexp.MustCompile(`\\[a-zA-Z]+\*?(?:\[[^\]]*\])?\{([^}]*)\}`)
	mathPattern      = regexp.MustCompile(`\$([^$]*)\$`)
	spacePattern     = regexp.MustCompile(`\s+`)
)

// CleanText strips LaTeX formatting commands from text, keeping their
// arguments. Formatting can nest (a \textbf inside an \href display), so the
// command patterns are applied until the text stops changing.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	for {
		previous := text
		text = hrefPattern.ReplaceAllString(text, "$1")
		text = boldPattern.ReplaceAllString(text, "$1")
		text = emphasisPattern.ReplaceAllString(text, "$1")
		text = underlinePattern.ReplaceAllString(text, "$1")
		text = commandPattern.ReplaceAllString(text, "$1")
		if text == previous {
			break
		}
	}
	text = mathPattern.ReplaceAllString(text, "$1")
	text = spacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
