package extract

// ModelConfig pairs a backend model identifier with its sampling temperature.
type ModelConfig struct {
	ID          string
	Temperature float32
}

// DefaultModel is the selector used when none is given or the given one is
// unknown.
const DefaultModel = "gemini-2.0-flash"

// Models maps a model selector to its backend configuration. The selector is
// the user-facing name; ID is the concrete model identifier sent to the API.
var Models = map[string]ModelConfig{
	"gemini-2.0-flash": {
		ID:          "gemini-2.0-flash",
		Temperature: 0.7,
	},
	"gemini-3-flash-preview": {
		ID:          "gemini-3-pro-preview",
		Temperature: 1.0,
	},
}

// ResolveModel maps a selector to its configuration, falling back to the
// default entry for unrecognized selectors.
func ResolveModel(selector string) ModelConfig {
	if cfg, ok := Models[selector]; ok {
		return cfg
	}
	return Models[DefaultModel]
}

// ModelNames lists the known selectors for CLI help output.
func ModelNames() []string {
	names := make([]string, 0, len(Models))
	for name := range Models {
		names = append(names, name)
	}
	return names
}
