package persist

import (
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
)

// TagKey is the struct tag key read by RegisterType.
const TagKey = "persist"

// Settings marks a struct for declarative registration. Embed it in a type
// and attach the annotation to its tag:
//
//	type Widget struct {
//	    persist.Settings `persist:"config_dir=conf/, file_name=alpha"`
//	}
//
// The marker carries no data; only its tag matters.
type Settings struct{}

// Annotation keys recognized by the tag parser. Anything else is ignored
// with a diagnostic.
const (
	keyConfigDir    = "config_dir"
	keyFileName     = "file_name"
	keySaveFormat   = "save_format"
	keyPanicOnError = "panic_on_error"
)

// ParseTag parses a declarative key=value annotation into Parameters.
//
// The grammar is a flat token stream: identifiers name one of the recognized
// keys, "=" arms value capture, and the next literal is captured as that
// key's value. Literals may be quoted with single or double quotes (quotes
// stripped) or written as bare words. Any other punctuation, including the
// comma separator, clears a pending key. A parenthesized group is parsed
// recursively and merged into the running result, later groups winning for
// their explicit fields.
//
// Unknown keys and unrecognized save_format values are soft failures (a
// diagnostic, then ignored). A non-boolean panic_on_error, an unterminated
// quote, or an unbalanced group fail with ErrInvalidTag: tag text is
// programmer intent, not runtime data, so malformed tags are never masked.
func ParseTag(tag string) (Parameters, error) {
	return parseAnnotation(tag)
}

func parseAnnotation(input string) (Parameters, error) {
	var out Parameters

	var pending string

	armed := false

	for i := 0; i < len(input); {
		c := input[i]

		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '(':
			end, err := matchingParen(input, i)
			if err != nil {
				return Parameters{}, err
			}

			nested, err := parseAnnotation(input[i+1 : end])
			if err != nil {
				return Parameters{}, err
			}

			out = Merge(out, nested)
			pending, armed = "", false
			i = end + 1
		case c == ')':
			return Parameters{}, fmt.Errorf("%w: unbalanced group in %q", ErrInvalidTag, input)
		case c == '\'' || c == '"':
			rest := input[i+1:]

			end := strings.IndexByte(rest, c)
			if end < 0 {
				return Parameters{}, fmt.Errorf("%w: unterminated quote in %q", ErrInvalidTag, input)
			}

			if armed {
				err := assign(&out, pending, rest[:end])
				if err != nil {
					return Parameters{}, err
				}
			}

			pending, armed = "", false
			i += end + 2
		case c == '=':
			// Arms capture only directly after a recognized key.
			armed = pending != ""
			i++
		case isWordByte(c):
			j := i
			for j < len(input) && isWordByte(input[j]) {
				j++
			}

			word := input[i:j]

			switch {
			case armed:
				err := assign(&out, pending, word)
				if err != nil {
					return Parameters{}, err
				}

				pending, armed = "", false
			case recognizedKey(word):
				pending = word
			default:
				logger().Warn("ignoring unknown key in persist tag", slog.String("key", word))

				pending = ""
			}

			i = j
		default:
			// Any other punctuation clears the pending key.
			pending, armed = "", false
			i++
		}
	}

	return out, nil
}

// matchingParen returns the index of the parenthesis closing the group opened
// at input[open], skipping over quoted runs.
func matchingParen(input string, open int) (int, error) {
	depth := 0

	for i := open; i < len(input); i++ {
		switch input[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, nil
			}
		case '\'', '"':
			quote := input[i]

			end := strings.IndexByte(input[i+1:], quote)
			if end < 0 {
				return 0, fmt.Errorf("%w: unterminated quote in %q", ErrInvalidTag, input)
			}

			i += end + 1
		}
	}

	return 0, fmt.Errorf("%w: unbalanced group in %q", ErrInvalidTag, input)
}

func isWordByte(c byte) bool {
	switch c {
	case ' ', '\t', ',', '=', '(', ')', '\'', '"':
		return false
	default:
		return true
	}
}

func recognizedKey(word string) bool {
	switch word {
	case keyConfigDir, keyFileName, keySaveFormat, keyPanicOnError:
		return true
	default:
		return false
	}
}

func assign(out *Parameters, key, value string) error {
	switch key {
	case keyConfigDir:
		out.Dir = value
	case keyFileName:
		out.FileName = value
	case keySaveFormat:
		// Unrecognized format names silently fall back to the default.
		out.Format = ParseFormat(value)
	case keyPanicOnError:
		strict, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: panic_on_error=%q is not a boolean", ErrInvalidTag, value)
		}

		if strict {
			out.OnError = PolicyStrict
		} else {
			out.OnError = PolicyLenient
		}
	}

	return nil
}

// findTag returns the persist tag attached to t, looking at every struct
// field so the annotation works on the embedded Settings marker or on any
// other field the author chose.
func findTag(t reflect.Type) (string, bool) {
	if t.Kind() != reflect.Struct {
		return "", false
	}

	for i := range t.NumField() {
		tag, ok := t.Field(i).Tag.Lookup(TagKey)
		if ok {
			return tag, true
		}
	}

	return "", false
}

// RegisterType resolves T's declarative persist tag, merges it onto the
// defaults, and stores the result keyed by T. A type without a tag is
// registered with pure defaults. The registration is visible to every
// subsequent Save and Load; call it from an init function or through Module
// so it runs before application code touches the store.
func RegisterType[T any]() error {
	t := reflect.TypeFor[T]()

	key := keyOfType(t)
	if key.IsZero() {
		return fmt.Errorf("%w: %v", ErrUnnamedType, t)
	}

	params := DefaultParameters()

	tag, ok := findTag(t)
	if ok {
		parsed, err := ParseTag(tag)
		if err != nil {
			return err
		}

		params = Merge(params, parsed)
	}

	if params.FileName == "" {
		params.FileName = key.Name
	}

	Configs().Put(key, params)
	logger().Debug("registered persistence settings",
		slog.String("type", key.String()),
		slog.String("path", params.TargetPath()),
		slog.String("policy", params.OnError.String()))

	return nil
}

// MustRegisterType is RegisterType that panics on a malformed tag.
// Useful from init functions, where a bad annotation should stop the program.
func MustRegisterType[T any]() {
	err := RegisterType[T]()
	if err != nil {
		panic(err)
	}
}
