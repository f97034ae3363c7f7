package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("analysis.json", "resume-analysis")
	require.NoError(t, err)
	assert.Contains(t, prompt, "expert resume analyst")
}

func TestGet_UnknownFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_UnknownKey(t *testing.T) {
	ClearCache()

	_, err := Get("analysis.json", "nonexistent-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet(t *testing.T) {
	ClearCache()

	assert.NotEmpty(t, MustGet("analysis.json", "resume-analysis"))
	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestFormat(t *testing.T) {
	template := "Analyze {{.Resume}} against {{.Job}}."
	result := Format(template, map[string]string{
		"Resume": "the resume",
		"Job":    "the posting",
	})

	assert.Equal(t, "Analyze the resume against the posting.", result)
}

func TestFormat_UnmatchedPlaceholderKept(t *testing.T) {
	template := "Analyze {{.Resume}}."

	assert.Equal(t, template, Format(template, map[string]string{}))
}

func TestList(t *testing.T) {
	ClearCache()

	keys, err := List("analysis.json")
	require.NoError(t, err)
	assert.Contains(t, keys, "resume-analysis")
	assert.Contains(t, keys, "improve-phrasing")
}

func TestGet_CachedResultStable(t *testing.T) {
	ClearCache()

	first, err := Get("analysis.json", "resume-analysis")
	require.NoError(t, err)
	second, err := Get("analysis.json", "resume-analysis")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
