package nbexport

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Module is a resolved front-end module.
type Module struct {
	Name   string // Requested module name
	URL    string // URL the module was fetched from
	Source string // Module script source
}

// LoaderConfig carries path configuration for a ModuleLoader.
type LoaderConfig struct {
	// Paths maps module names to the URL they should be loaded from.
	Paths map[string]string
}

// ModuleLoader is the capability interface for the underlying module
// loading mechanism. Implementations own a shared registry of path
// mappings and resolved modules; Resolver mutates that registry during
// fallback, so implementations used concurrently must tolerate concurrent
// mutation (NewScriptLoader does).
type ModuleLoader interface {
	// Load resolves the given module ids and returns the first module.
	// On failure the error should carry an *UnresolvedError listing the
	// ids that could not be resolved; without it no fallback is possible.
	Load(ctx context.Context, ids []string) (Module, error)

	// Unregister drops a module from the loader's resolved-module cache
	// so a retry does not reuse a failed or partial load.
	Unregister(id string)

	// Configure merges path mappings into the loader's registry.
	Configure(cfg LoaderConfig)
}

// UnresolvedError reports module ids a ModuleLoader failed to resolve.
type UnresolvedError struct {
	// Modules lists the unresolved module ids, most specific first.
	Modules []string
	// Err is the underlying cause, if any.
	Err error
}

func (e *UnresolvedError) Error() string {
	msg := fmt.Sprintf("unresolved modules: %s", strings.Join(e.Modules, ", "))
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UnresolvedError) Unwrap() error { return e.Err }

// Resolver resolves a module by name and version through a ModuleLoader,
// falling back to a CDN-derived URL when the primary attempt fails.
type Resolver struct {
	loader  ModuleLoader
	baseCDN string
	trace   func(format string, args ...any)
}

// NewResolver creates a Resolver around the given loader.
// An empty baseCDN falls back to DefaultBaseCDN.
func NewResolver(loader ModuleLoader, baseCDN string) (*Resolver, error) {
	if loader == nil {
		return nil, ErrLoaderMissing
	}
	if baseCDN == "" {
		baseCDN = DefaultBaseCDN
	}
	return &Resolver{loader: loader, baseCDN: baseCDN}, nil
}

// SetTrace installs a diagnostic trace function. The only trace emitted
// is the fallback URL; it carries no behavior.
func (r *Resolver) SetTrace(fn func(format string, args ...any)) {
	r.trace = fn
}

// Resolve attempts to load moduleName through the loader. If the primary
// attempt fails with an identifiable unresolved module, the first failed
// id is unregistered, the loader is pointed at a CDN URL derived from
// (moduleName, moduleVersion, baseCDN), and the load is retried exactly
// once. The retry's outcome, success or failure, is final.
//
// The version participates only in the fallback URL; the primary attempt
// is made for the bare module name. Failures without an UnresolvedError
// are terminal and surface unchanged.
func (r *Resolver) Resolve(ctx context.Context, moduleName, moduleVersion string) (Module, error) {
	if r.loader == nil {
		return Module{}, ErrLoaderMissing
	}
	if moduleName == "" {
		return Module{}, ErrEmptyModuleName
	}
	if moduleVersion == "" {
		return Module{}, ErrEmptyVersion
	}

	module, err := r.loader.Load(ctx, []string{moduleName})
	if err == nil {
		return module, nil
	}

	var unresolved *UnresolvedError
	if !errors.As(err, &unresolved) || len(unresolved.Modules) == 0 {
		// No fallback candidate: surface the original failure.
		return Module{}, err
	}

	// Only the first unresolved id is retried; any remaining entries are
	// left to subsequent Resolve calls.
	failedID := unresolved.Modules[0]

	cdnURL := DeriveCDNURL(moduleName, moduleVersion, r.baseCDN)
	if r.trace != nil {
		r.trace("falling back to CDN for module %s: %s", moduleName, cdnURL)
	}

	r.loader.Unregister(failedID)
	r.loader.Configure(LoaderConfig{Paths: map[string]string{moduleName: cdnURL}})

	return r.loader.Load(ctx, []string{moduleName})
}
