package persist

import (
	"log/slog"

	"github.com/0xalexb/persist/logging"
	"github.com/0xalexb/persist/registry"

	"go.uber.org/fx"
)

// Registration populates the parameter store. Module runs registrations
// during application start, before any lifecycle hook, so components resolved
// by the container always observe a fully populated store.
type Registration func() error

// Tagged builds a Registration from T's declarative persist tag.
func Tagged[T any]() Registration {
	return RegisterType[T]
}

// Typed builds a Registration for T from the given options.
func Typed[T any](opts ...Option) Registration {
	return func() error {
		return Register[T](opts...)
	}
}

// Manual builds a Registration that stores params under an explicit key,
// bypassing type derivation entirely.
func Manual(key registry.Key, params Parameters) Registration {
	return func() error {
		if key.IsZero() {
			return ErrUnnamedType
		}

		if params.FileName == "" {
			params.FileName = key.Name
		}

		Configs().Put(key, params)

		return nil
	}
}

// moduleParams lets Module pick up the application's logger when one is in
// the container, without requiring it.
type moduleParams struct {
	fx.In

	Logger *slog.Logger `optional:"true"`
}

// Module returns an Fx option that applies the given registrations when the
// application starts. If the container provides a *slog.Logger, persistence
// diagnostics are routed through it; otherwise a JSON logger tagged with
// component=persist is built, so masked lenient failures always leave a
// structured trace.
//
//	app := fx.New(
//	    persist.Module(
//	        persist.Tagged[Widget](),
//	        persist.Typed[Prefs](persist.WithDir("out"), persist.WithFormat(persist.FormatJSON)),
//	    ),
//	    fx.Invoke(run),
//	)
func Module(regs ...Registration) fx.Option {
	return fx.Module("persist",
		fx.Invoke(func(p moduleParams) error {
			if p.Logger != nil {
				SetLogger(p.Logger)
			} else {
				SetLogger(logging.NewLogger(logging.Config{Component: "persist"}, nil))
			}

			for _, register := range regs {
				err := register()
				if err != nil {
					return err
				}
			}

			return nil
		}),
	)
}
