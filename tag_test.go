package persist_test

import (
	"testing"

	"github.com/0xalexb/persist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		tag      string
		expected persist.Parameters
	}{
		{
			name: "bare key=value pairs",
			tag:  "config_dir=conf/, file_name=alpha, save_format=yaml",
			expected: persist.Parameters{
				Dir:      "conf/",
				FileName: "alpha",
				Format:   persist.FormatYAML,
			},
		},
		{
			name: "quoted values have quotes stripped",
			tag:  `config_dir='conf/', file_name="alpha"`,
			expected: persist.Parameters{
				Dir:      "conf/",
				FileName: "alpha",
			},
		},
		{
			name:     "empty tag yields zero parameters",
			tag:      "",
			expected: persist.Parameters{},
		},
		{
			name: "unknown key is ignored",
			tag:  "colour=red, file_name=alpha",
			expected: persist.Parameters{
				FileName: "alpha",
			},
		},
		{
			name:     "unrecognized save_format falls back to default",
			tag:      "save_format=xml",
			expected: persist.Parameters{Format: persist.FormatTOML},
		},
		{
			name:     "panic_on_error false selects lenient",
			tag:      "panic_on_error=false",
			expected: persist.Parameters{OnError: persist.PolicyLenient},
		},
		{
			name:     "panic_on_error true selects strict",
			tag:      "panic_on_error=true",
			expected: persist.Parameters{OnError: persist.PolicyStrict},
		},
		{
			name:     "punctuation clears a pending key",
			tag:      "config_dir, file_name=alpha",
			expected: persist.Parameters{FileName: "alpha"},
		},
		{
			name:     "equals without a pending key captures nothing",
			tag:      "=alpha, file_name=beta",
			expected: persist.Parameters{FileName: "beta"},
		},
		{
			name: "nested group merges over earlier fields",
			tag:  "file_name=alpha (file_name=beta, config_dir=conf/)",
			expected: persist.Parameters{
				Dir:      "conf/",
				FileName: "beta",
			},
		},
		{
			name:     "later nested group wins",
			tag:      "(file_name=alpha) (file_name=beta)",
			expected: persist.Parameters{FileName: "beta"},
		},
		{
			name: "nested group without panic_on_error resets the policy",
			tag:  "panic_on_error=false (config_dir=conf/)",
			expected: persist.Parameters{
				Dir:     "conf/",
				OnError: persist.PolicyStrict,
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			params, err := persist.ParseTag(testCase.tag)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, params)
		})
	}
}

func TestParseTag_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		tag  string
	}{
		{name: "non-boolean panic_on_error", tag: "panic_on_error=maybe"},
		{name: "non-boolean in nested group", tag: "(panic_on_error=maybe)"},
		{name: "unterminated quote", tag: `file_name="alpha`},
		{name: "unterminated group", tag: "(file_name=alpha"},
		{name: "stray closing parenthesis", tag: "file_name=alpha)"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := persist.ParseTag(testCase.tag)
			require.Error(t, err)
			assert.ErrorIs(t, err, persist.ErrInvalidTag)
		})
	}
}

// widget carries the declarative annotation used across registration tests.
type widget struct {
	persist.Settings `persist:"config_dir=conf/, file_name=alpha, save_format=toml"`

	Label string `json:"label" toml:"label" yaml:"label"`
}

func TestRegisterType_TagResolution(t *testing.T) {
	t.Parallel()

	require.NoError(t, persist.RegisterType[widget]())

	params, ok := persist.Configs().Get(persist.KeyOf[widget]())
	require.True(t, ok)
	assert.Equal(t, "conf/", params.Dir)
	assert.Equal(t, "alpha", params.FileName)
	assert.Equal(t, persist.FormatTOML, params.Format)
	assert.Equal(t, persist.PolicyStrict, params.OnError)
}

type untagged struct {
	Name string `json:"name"`
}

func TestRegisterType_NoTagUsesDefaults(t *testing.T) {
	t.Parallel()

	require.NoError(t, persist.RegisterType[untagged]())

	params, ok := persist.Configs().Get(persist.KeyOf[untagged]())
	require.True(t, ok)
	assert.Equal(t, persist.DefaultDir, params.Dir)
	assert.Equal(t, "untagged", params.FileName, "file stem falls back to the type name")
	assert.Equal(t, persist.FormatTOML, params.Format)
}

type badTag struct {
	persist.Settings `persist:"panic_on_error=maybe"`
}

func TestRegisterType_MalformedTag(t *testing.T) {
	t.Parallel()

	err := persist.RegisterType[badTag]()
	require.Error(t, err)
	assert.ErrorIs(t, err, persist.ErrInvalidTag)

	_, ok := persist.Configs().Get(persist.KeyOf[badTag]())
	assert.False(t, ok, "a malformed tag must not register anything")
}

func TestMustRegisterType_PanicsOnMalformedTag(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		persist.MustRegisterType[badTag]()
	})
}
