// Package llm provides the model configuration and client abstraction shared
// by the feedback collaborators (resume critic, keyword categorizer, phrasing
// improver).
package llm

// ModelTier selects how much model capability a call needs. Each collaborator
// picks the cheapest tier that produces reliable structured output.
type ModelTier string

const (
	// TierLite covers classification-style calls such as keyword categorization.
	TierLite ModelTier = "lite"
	// TierStandard covers structured judgement calls such as the resume critic.
	TierStandard ModelTier = "standard"
	// TierAdvanced covers rewriting calls such as phrasing improvement.
	TierAdvanced ModelTier = "advanced"
)

// Provider identifies an LLM provider.
type Provider string

// ProviderGemini is the Google Gemini provider, currently the only one wired.
const ProviderGemini Provider = "gemini"

// Config maps model tiers to concrete model names for one provider.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default provider configuration.
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the Gemini tier mapping used when the caller
// does not override models.
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel resolves the model name for a tier, falling back to standard and
// then lite when the requested tier is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	for _, t := range []ModelTier{tier, TierStandard, TierLite} {
		if model, ok := c.Models[t]; ok {
			return model
		}
	}
	return ""
}

// WithModel returns a copy of the config with one tier overridden. The
// receiver is not modified.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	models := make(map[ModelTier]string, len(c.Models)+1)
	for k, v := range c.Models {
		models[k] = v
	}
	models[tier] = model
	return &Config{Provider: c.Provider, Models: models}
}
