package opt

import (
	"io"

	// Packages
	gemini "github.com/docloom/go-gemini"
	schema "github.com/docloom/go-gemini/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Option keys
const (
	SystemPromptKey  = "system"
	TemperatureKey   = "temperature"
	TopPKey          = "top_p"
	TopKKey          = "top_k"
	MaxTokensKey     = "max_tokens"
	StopSequencesKey = "stop"
	SeedKey          = "seed"
	SafetyKey        = "safety"
	ConfigKey        = "config"
	AttachmentKey    = "attachment"
)

///////////////////////////////////////////////////////////////////////////////
// GENERATION OPTIONS
//
// See: https://ai.google.dev/api/generate-content

// WithSystemPrompt sets the system instruction for the request
func WithSystemPrompt(value string) Opt {
	return SetString(SystemPromptKey, value)
}

// WithTemperature sets the temperature for the request (0.0 to 2.0).
// Higher values produce more random output, lower values more deterministic.
func WithTemperature(value float64) Opt {
	if value < 0 || value > 2 {
		return Error(gemini.ErrBadParameter.With("temperature must be between 0.0 and 2.0"))
	}
	return SetFloat64(TemperatureKey, value)
}

// WithTopP sets the nucleus sampling parameter (0.0 to 1.0)
func WithTopP(value float64) Opt {
	if value < 0 || value > 1 {
		return Error(gemini.ErrBadParameter.With("top_p must be between 0.0 and 1.0"))
	}
	return SetFloat64(TopPKey, value)
}

// WithTopK sets the top-K sampling parameter (minimum 1)
func WithTopK(value uint) Opt {
	if value < 1 {
		return Error(gemini.ErrBadParameter.With("top_k must be at least 1"))
	}
	return SetUint(TopKKey, value)
}

// WithMaxTokens sets the maximum number of tokens to generate (minimum 1)
func WithMaxTokens(value uint) Opt {
	if value < 1 {
		return Error(gemini.ErrBadParameter.With("max_tokens must be at least 1"))
	}
	return SetUint(MaxTokensKey, value)
}

// WithStopSequences sets custom stop sequences for the request
func WithStopSequences(values ...string) Opt {
	if len(values) == 0 {
		return Error(gemini.ErrBadParameter.With("at least one stop sequence is required"))
	}
	return AddString(StopSequencesKey, values...)
}

// WithSeed sets the seed for deterministic generation
func WithSeed(value int) Opt {
	return SetInt(SeedKey, value)
}

// WithSafety adds a blocking threshold for one harm category
func WithSafety(category, threshold string) Opt {
	if category == "" || threshold == "" {
		return Error(gemini.ErrBadParameter.With("safety setting requires a category and a threshold"))
	}
	return func(o *Options) error {
		o.Add(SafetyKey, &schema.SafetySetting{Category: category, Threshold: threshold})
		return nil
	}
}

// WithGenerationConfig sets raw generation parameters, passed through to the
// request unmodified. Parameters set through typed options take precedence.
func WithGenerationConfig(config map[string]any) Opt {
	return SetAny(ConfigKey, config)
}

// WithAttachment reads media from the reader and attaches it to the request
func WithAttachment(r io.Reader) Opt {
	return func(o *Options) error {
		attachment, err := gemini.ReadAttachment(r)
		if err != nil {
			return err
		}
		o.Add(AttachmentKey, attachment)
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// GenerationConfig assembles the wire generation config from the applied
// options. Returns nil when no generation parameters were set, so the
// generationConfig key is omitted from the serialized request.
func (o *Options) GenerationConfig() schema.GenerationConfig {
	config := make(schema.GenerationConfig)
	if raw, ok := o.Get(ConfigKey).(map[string]any); ok {
		for key, value := range raw {
			config[key] = value
		}
	}
	if o.Has(TemperatureKey) {
		config["temperature"] = o.GetFloat64(TemperatureKey)
	}
	if o.Has(TopPKey) {
		config["topP"] = o.GetFloat64(TopPKey)
	}
	if o.Has(TopKKey) {
		config["topK"] = int(o.GetUint(TopKKey))
	}
	if o.Has(MaxTokensKey) {
		config["maxOutputTokens"] = int(o.GetUint(MaxTokensKey))
	}
	if stop := o.GetStringArray(StopSequencesKey); len(stop) > 0 {
		config["stopSequences"] = stop
	}
	if o.Has(SeedKey) {
		config["seed"] = o.GetInt(SeedKey)
	}
	if len(config) == 0 {
		return nil
	}
	return config
}

// SystemPrompt returns the system instruction, or empty string if not set
func (o *Options) SystemPrompt() string {
	return o.GetString(SystemPromptKey)
}

// SafetySettings returns the applied safety settings, in order
func (o *Options) SafetySettings() []*schema.SafetySetting {
	values, ok := o.values[SafetyKey]
	if !ok {
		return nil
	}
	result := make([]*schema.SafetySetting, 0, len(values))
	for _, value := range values {
		if v, ok := value.(*schema.SafetySetting); ok {
			result = append(result, v)
		}
	}
	return result
}

// Attachments returns the applied attachments, in order
func (o *Options) Attachments() []*gemini.Attachment {
	values, ok := o.values[AttachmentKey]
	if !ok {
		return nil
	}
	result := make([]*gemini.Attachment, 0, len(values))
	for _, value := range values {
		if v, ok := value.(*gemini.Attachment); ok {
			result = append(result, v)
		}
	}
	return result
}
