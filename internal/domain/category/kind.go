package category

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

type FieldType string

const (
	TypeText     FieldType = "text"
	TypeTextarea FieldType = "textarea"
	TypeSelect   FieldType = "select"
	TypeDate     FieldType = "date"
	TypeNumber   FieldType = "number"
	TypeBoolean  FieldType = "boolean"
	TypeUpload   FieldType = "upload"
)

var ErrUnknownFieldType = errors.New("unknown field type")

// FieldError is a validation failure attributed to a single form field.
// Message always names the field by its label.
type FieldError struct {
	Slug    string
	Label   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// FieldKind is the closed set of dynamic field behaviours. Each kind carries
// its own rule payload and knows how to check a non-empty value.
type FieldKind interface {
	Type() FieldType
	check(label string, value any) string
	sealed()
}

type StringRules struct {
	MinLength *int
	MaxLength *int
	Pattern   *regexp.Regexp
	Message   string
}

func (r StringRules) check(label, s string) string {
	n := utf8.RuneCountInString(s)
	if r.MinLength != nil && n < *r.MinLength {
		return fmt.Sprintf("%s must be at least %d characters", label, *r.MinLength)
	}
	if r.MaxLength != nil && n > *r.MaxLength {
		return fmt.Sprintf("%s must be at most %d characters", label, *r.MaxLength)
	}
	if r.Pattern != nil && !r.Pattern.MatchString(s) {
		if r.Message != "" {
			return r.Message
		}
		return fmt.Sprintf("%s has an invalid format", label)
	}
	return ""
}

type NumberRules struct {
	Min *float64
	Max *float64
}

type TextKind struct{ Rules StringRules }
type TextareaKind struct{ Rules StringRules }
type SelectKind struct{ Options []OptionNode }
type DateKind struct{}
type NumberKind struct{ Rules NumberRules }
type BooleanKind struct{}
type UploadKind struct{}

func (TextKind) Type() FieldType     { return TypeText }
func (TextareaKind) Type() FieldType { return TypeTextarea }
func (SelectKind) Type() FieldType   { return TypeSelect }
func (DateKind) Type() FieldType     { return TypeDate }
func (NumberKind) Type() FieldType   { return TypeNumber }
func (BooleanKind) Type() FieldType  { return TypeBoolean }
func (UploadKind) Type() FieldType   { return TypeUpload }

func (TextKind) sealed()     {}
func (TextareaKind) sealed() {}
func (SelectKind) sealed()   {}
func (DateKind) sealed()     {}
func (NumberKind) sealed()   {}
func (BooleanKind) sealed()  {}
func (UploadKind) sealed()   {}

func (k TextKind) check(label string, v any) string {
	s, ok := asString(v)
	if !ok {
		return fmt.Sprintf("%s must be text", label)
	}
	return k.Rules.check(label, strings.TrimSpace(s))
}

func (k TextareaKind) check(label string, v any) string {
	s, ok := asString(v)
	if !ok {
		return fmt.Sprintf("%s must be text", label)
	}
	return k.Rules.check(label, strings.TrimSpace(s))
}

// An empty option list means the options could not be loaded; membership is
// then not enforced.
func (k SelectKind) check(label string, v any) string {
	s, ok := asString(v)
	if !ok {
		return fmt.Sprintf("%s must be one of the listed options", label)
	}
	if len(k.Options) == 0 {
		return ""
	}
	s = strings.TrimSpace(s)
	for _, o := range k.Options {
		if o.Value == s {
			return ""
		}
	}
	return fmt.Sprintf("%s must be one of the listed options", label)
}

func (DateKind) check(label string, v any) string {
	s, ok := v.(string)
	if !ok {
		return fmt.Sprintf("%s must be a date", label)
	}
	s = strings.TrimSpace(s)
	if _, err := time.Parse(time.DateOnly, s); err == nil {
		return ""
	}
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return ""
	}
	return fmt.Sprintf("%s must be a date (YYYY-MM-DD)", label)
}

func (k NumberKind) check(label string, v any) string {
	n, ok := asNumber(v)
	if !ok {
		return fmt.Sprintf("%s must be a number", label)
	}
	if k.Rules.Min != nil && n < *k.Rules.Min {
		return fmt.Sprintf("%s must be at least %s", label, formatNumber(*k.Rules.Min))
	}
	if k.Rules.Max != nil && n > *k.Rules.Max {
		return fmt.Sprintf("%s must be at most %s", label, formatNumber(*k.Rules.Max))
	}
	return ""
}

func (BooleanKind) check(label string, v any) string {
	if _, ok := asBool(v); !ok {
		return fmt.Sprintf("%s must be true or false", label)
	}
	return ""
}

func (UploadKind) check(label string, v any) string {
	var urls []string
	switch t := v.(type) {
	case string:
		urls = []string{t}
	case []string:
		urls = t
	case []any:
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return fmt.Sprintf("%s must be a list of file URLs", label)
			}
			urls = append(urls, s)
		}
	default:
		return fmt.Sprintf("%s must be a list of file URLs", label)
	}
	for _, raw := range urls {
		u, err := url.Parse(strings.TrimSpace(raw))
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Sprintf("%s contains an invalid file URL", label)
		}
	}
	return ""
}

// FieldSpec is a field definition ready to validate submitted answers.
type FieldSpec struct {
	Slug     string
	Label    string
	Required bool
	Kind     FieldKind
}

// KindOf builds the kind for a stored field type and rule set.
func KindOf(t FieldType, rules ValidationRules, options []OptionNode) (FieldKind, error) {
	switch t {
	case TypeText, TypeTextarea:
		sr := StringRules{MinLength: rules.MinLength, MaxLength: rules.MaxLength, Message: rules.ErrorMessage}
		if rules.Pattern != "" {
			re, err := regexp.Compile(rules.Pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", rules.Pattern, err)
			}
			sr.Pattern = re
		}
		if t == TypeText {
			return TextKind{Rules: sr}, nil
		}
		return TextareaKind{Rules: sr}, nil
	case TypeSelect:
		return SelectKind{Options: options}, nil
	case TypeDate:
		return DateKind{}, nil
	case TypeNumber:
		return NumberKind{Rules: NumberRules{Min: rules.Min, Max: rules.Max}}, nil
	case TypeBoolean:
		return BooleanKind{}, nil
	case TypeUpload:
		return UploadKind{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFieldType, t)
}

// Validate checks one submitted value. A nil return means the value is
// acceptable, including an absent value for an optional field.
func (f FieldSpec) Validate(value any) *FieldError {
	if _, isBool := f.Kind.(BooleanKind); isBool {
		if _, ok := asBool(value); !ok && isBlank(value) {
			if f.Required {
				return f.fail(fmt.Sprintf("%s is required", f.Label))
			}
			return nil
		}
	} else if isBlank(value) {
		if f.Required {
			return f.fail(fmt.Sprintf("%s is required", f.Label))
		}
		return nil
	}
	if msg := f.Kind.check(f.Label, value); msg != "" {
		return f.fail(msg)
	}
	return nil
}

func (f FieldSpec) fail(msg string) *FieldError {
	return &FieldError{Slug: f.Slug, Label: f.Label, Message: msg}
}

func isBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []any:
		return len(t) == 0
	case []string:
		return len(t) == 0
	}
	return false
}

func asString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case json.Number:
		return t.String(), true
	}
	return "", false
}

func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	}
	return 0, false
}

func asBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		switch strings.TrimSpace(t) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
