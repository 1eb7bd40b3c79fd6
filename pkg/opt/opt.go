package opt

import (
	"net/url"
	"strconv"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// A generic option type, which can set options on a request
type Opt func(*Options) error

// Options is a set of applied options, keyed by name. String and numeric
// values are stored as strings; arbitrary values are stored as-is.
type Options struct {
	values map[string][]any
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Apply returns a structure of applied options
func Apply(opts ...Opt) (*Options, error) {
	options := &Options{values: make(map[string][]any)}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Set replaces the values for a key
func (o *Options) Set(key string, value ...any) {
	o.values[key] = value
}

// Add appends values for a key
func (o *Options) Add(key string, value ...any) {
	o.values[key] = append(o.values[key], value...)
}

// Get returns the first value for key, or nil if not set
func (o *Options) Get(key string) any {
	if values, ok := o.values[key]; ok && len(values) > 0 {
		return values[0]
	}
	return nil
}

// Has returns true if the key exists
func (o *Options) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Query returns the string values for the given keys, for use as
// query parameters. Non-string values are skipped.
func (o *Options) Query(keys ...string) url.Values {
	query := make(url.Values)
	for _, key := range keys {
		for _, value := range o.values[key] {
			if v, ok := value.(string); ok {
				query.Add(key, v)
			}
		}
	}
	return query
}

// GetString returns the trimmed value for key, or empty string if not set
func (o *Options) GetString(key string) string {
	if v, ok := o.Get(key).(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// GetStringArray returns all string values for key, each trimmed
func (o *Options) GetStringArray(key string) []string {
	values, ok := o.values[key]
	if !ok {
		return nil
	}
	result := make([]string, 0, len(values))
	for _, value := range values {
		if v, ok := value.(string); ok {
			result = append(result, strings.TrimSpace(v))
		}
	}
	return result
}

// GetBool returns the boolean value for key, or false if not set or invalid
func (o *Options) GetBool(key string) bool {
	if v, err := strconv.ParseBool(o.GetString(key)); err == nil {
		return v
	}
	return false
}

// GetFloat64 returns the float64 value for key, or 0 if not set or invalid
func (o *Options) GetFloat64(key string) float64 {
	if v, err := strconv.ParseFloat(o.GetString(key), 64); err == nil {
		return v
	}
	return 0
}

// GetUint returns the uint value for key, or 0 if not set or invalid
func (o *Options) GetUint(key string) uint {
	if v, err := strconv.ParseUint(o.GetString(key), 10, 64); err == nil {
		return uint(v)
	}
	return 0
}

// GetInt returns the int value for key, or 0 if not set or invalid
func (o *Options) GetInt(key string) int {
	if v, err := strconv.ParseInt(o.GetString(key), 10, 64); err == nil {
		return int(v)
	}
	return 0
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// Error returns an option that always returns an error
func Error(err error) Opt {
	return func(o *Options) error {
		return err
	}
}

// WithOpts combines multiple options into a single option
func WithOpts(options ...Opt) Opt {
	return func(o *Options) error {
		for _, opt := range options {
			if err := opt(o); err != nil {
				return err
			}
		}
		return nil
	}
}

// SetString replaces the value for key
func SetString(key, value string) Opt {
	return func(o *Options) error {
		o.Set(key, value)
		return nil
	}
}

// AddString appends string values for key
func AddString(key string, value ...string) Opt {
	return func(o *Options) error {
		for _, v := range value {
			o.Add(key, v)
		}
		return nil
	}
}

// SetUint replaces the value for key, stored as a string
func SetUint(key string, value uint) Opt {
	return func(o *Options) error {
		o.Set(key, strconv.FormatUint(uint64(value), 10))
		return nil
	}
}

// AddUint appends uint values for key, stored as strings
func AddUint(key string, value ...uint) Opt {
	return func(o *Options) error {
		for _, v := range value {
			o.Add(key, strconv.FormatUint(uint64(v), 10))
		}
		return nil
	}
}

// SetInt replaces the value for key, stored as a string
func SetInt(key string, value int) Opt {
	return func(o *Options) error {
		o.Set(key, strconv.FormatInt(int64(value), 10))
		return nil
	}
}

// SetFloat64 replaces the value for key, stored as a string
func SetFloat64(key string, value float64) Opt {
	return func(o *Options) error {
		o.Set(key, strconv.FormatFloat(value, 'f', -1, 64))
		return nil
	}
}

// AddFloat64 appends float64 values for key, stored as strings
func AddFloat64(key string, value ...float64) Opt {
	return func(o *Options) error {
		for _, v := range value {
			o.Add(key, strconv.FormatFloat(v, 'f', -1, 64))
		}
		return nil
	}
}

// SetBool replaces the value for key, stored as a string
func SetBool(key string, value bool) Opt {
	return func(o *Options) error {
		o.Set(key, strconv.FormatBool(value))
		return nil
	}
}

// SetAny replaces the value for key, stored as-is
func SetAny(key string, value any) Opt {
	return func(o *Options) error {
		o.Set(key, value)
		return nil
	}
}
