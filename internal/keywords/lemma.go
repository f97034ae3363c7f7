package keywords

import "strings"

// Lemmatize reduces a token to a base form with ordered suffix rules, so that
// inflections ("developing", "developed", "develops") aggregate under one
// frequency count. The rules are intentionally shallow; they only need to
// collapse the regular English inflections that dominate job text.
func Lemmatize(token string) string {
	switch {
	case len(token) > 4 && strings.HasSuffix(token, "ies"):
		return token[:len(token)-3] + "y"
	case len(token) > 5 && strings.HasSuffix(token, "sses"):
		return token[:len(token)-2]
	case len(token) > 5 && strings.HasSuffix(token, "ing"):
		return trimDoubledConsonant(token[:len(token)-3])
	case len(token) > 4 && strings.HasSuffix(token, "ied"):
		return token[:len(token)-3] + "y"
	case len(token) > 4 && strings.HasSuffix(token, "ed") && !strings.HasSuffix(token, "eed"):
		return trimDoubledConsonant(token[:len(token)-2])
	case len(token) > 3 && strings.HasSuffix(token, "s") && !strings.HasSuffix(token, "ss") && !strings.HasSuffix(token, "us"):
		return token[:len(token)-1]
	default:
		return token
	}
}

// trimDoubledConsonant undoes gemination left behind by suffix stripping
// ("planning" -> "plann" -> "plan").
func trimDoubledConsonant(stem string) string {
	if len(stem) < 3 {
		return stem
	}
	last := stem[len(stem)-1]
	if last == stem[len(stem)-2] && !isVowel(last) && last != 'l' && last != 's' {
		return stem[:len(stem)-1]
	}
	return stem
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
