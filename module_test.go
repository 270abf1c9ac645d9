package persist_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/0xalexb/persist"
	"github.com/0xalexb/persist/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

type fxPrefs struct {
	Theme string `json:"theme"`
}

func TestModule_RegistersBeforeInvocations(t *testing.T) {
	t.Parallel()

	var observed bool

	app := fx.New(
		fx.NopLogger,
		persist.Module(
			persist.Typed[fxPrefs](
				persist.WithDir("out"),
				persist.WithFormat(persist.FormatJSON),
			),
		),
		fx.Invoke(func() {
			_, observed = persist.Configs().Get(persist.KeyOf[fxPrefs]())
		}),
	)

	require.NoError(t, app.Start(context.Background()))
	t.Cleanup(func() { _ = app.Stop(context.Background()) })

	assert.True(t, observed, "later invocations must see the populated store")

	params, ok := persist.Configs().Get(persist.KeyOf[fxPrefs]())
	require.True(t, ok)
	assert.Equal(t, "out", params.Dir)
	assert.Equal(t, persist.FormatJSON, params.Format)
}

type fxTagged struct {
	persist.Settings `persist:"config_dir=grid/, save_format=yaml"`

	Name string `yaml:"name"`
}

func TestModule_TaggedRegistration(t *testing.T) {
	t.Parallel()

	app := fx.New(
		fx.NopLogger,
		persist.Module(persist.Tagged[fxTagged]()),
	)

	require.NoError(t, app.Start(context.Background()))
	t.Cleanup(func() { _ = app.Stop(context.Background()) })

	params, ok := persist.Configs().Get(persist.KeyOf[fxTagged]())
	require.True(t, ok)
	assert.Equal(t, "grid/", params.Dir)
	assert.Equal(t, "fxTagged", params.FileName)
	assert.Equal(t, persist.FormatYAML, params.Format)
}

func TestModule_MalformedTagFailsStart(t *testing.T) {
	t.Parallel()

	app := fx.New(
		fx.NopLogger,
		persist.Module(persist.Tagged[badTag]()),
	)

	err := app.Start(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid persist tag")
}

func TestModule_ManualRegistration(t *testing.T) {
	t.Parallel()

	key := registry.Key{Package: "manual", Name: "Entry"}

	app := fx.New(
		fx.NopLogger,
		persist.Module(
			persist.Manual(key, persist.Parameters{Dir: "manual-dir", Format: persist.FormatJSON}),
		),
	)

	require.NoError(t, app.Start(context.Background()))
	t.Cleanup(func() { _ = app.Stop(context.Background()) })

	params, ok := persist.Configs().Get(key)
	require.True(t, ok)
	assert.Equal(t, "manual-dir", params.Dir)
	assert.Equal(t, "Entry", params.FileName, "manual entries default the stem to the key name")
}

func TestManual_ZeroKey(t *testing.T) {
	t.Parallel()

	err := persist.Manual(registry.Key{}, persist.Parameters{})()
	require.Error(t, err)
	assert.ErrorIs(t, err, persist.ErrUnnamedType)
}

type fxLoggerDoc struct {
	Name string `toml:"name"`
}

func TestModule_AdoptsContainerLogger(t *testing.T) {
	// Not parallel: the module routes package diagnostics through the
	// container's logger, which is process-wide state.
	logger := slog.Default()

	app := fx.New(
		fx.NopLogger,
		fx.Provide(func() *slog.Logger { return logger }),
		persist.Module(persist.Typed[fxLoggerDoc]()),
	)

	require.NoError(t, app.Start(context.Background()))

	t.Cleanup(func() {
		_ = app.Stop(context.Background())
		persist.SetLogger(nil)
	})

	_, ok := persist.Configs().Get(persist.KeyOf[fxLoggerDoc]())
	assert.True(t, ok)
}
