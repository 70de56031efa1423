package nbexport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// maxScriptSize caps a fetched module script at 16MB.
const maxScriptSize = 16 << 20

// defaultFetchTimeout bounds a single module fetch when the caller's
// context has no deadline.
const defaultFetchTimeout = 30 * time.Second

// ScriptLoader is an HTTP-backed ModuleLoader. A module id resolves to
// its registered path mapping when one exists, otherwise to the default
// registry pattern baseURL + id. Fetched modules are cached until
// unregistered.
type ScriptLoader struct {
	client  *http.Client
	baseURL string

	mu    sync.Mutex
	paths map[string]string
	cache map[string]Module
}

// Compile-time interface check.
var _ ModuleLoader = (*ScriptLoader)(nil)

// NewScriptLoader creates a ScriptLoader. A nil client uses a default
// client with a 30 second timeout. The base URL is used for ids without
// a registered path mapping.
func NewScriptLoader(client *http.Client) *ScriptLoader {
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}
	return &ScriptLoader{
		client:  client,
		baseURL: DefaultBaseCDN,
		paths:   make(map[string]string),
		cache:   make(map[string]Module),
	}
}

// SetBaseURL overrides the default registry URL prefix.
func (l *ScriptLoader) SetBaseURL(base string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.baseURL = base
}

// Configure merges path mappings into the loader's registry.
// Later mappings overwrite earlier ones for the same id.
func (l *ScriptLoader) Configure(cfg LoaderConfig) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, url := range cfg.Paths {
		l.paths[id] = url
	}
}

// Unregister drops a module from the resolved-module cache and removes
// its path mapping.
func (l *ScriptLoader) Unregister(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.cache, id)
	delete(l.paths, id)
}

// Load fetches the given module ids and returns the first one. All ids
// must resolve; any failure aborts the load and the error carries an
// *UnresolvedError listing every id that failed.
func (l *ScriptLoader) Load(ctx context.Context, ids []string) (Module, error) {
	if len(ids) == 0 {
		return Module{}, ErrEmptyModuleName
	}

	var modules []Module
	var failed []string
	var cause error

	for _, id := range ids {
		module, err := l.loadOne(ctx, id)
		if err != nil {
			failed = append(failed, id)
			if cause == nil {
				cause = err
			}
			continue
		}
		modules = append(modules, module)
	}

	if len(failed) > 0 {
		return Module{}, &UnresolvedError{Modules: failed, Err: cause}
	}
	return modules[0], nil
}

// loadOne fetches a single module, serving from cache when possible.
func (l *ScriptLoader) loadOne(ctx context.Context, id string) (Module, error) {
	l.mu.Lock()
	if module, ok := l.cache[id]; ok {
		l.mu.Unlock()
		return module, nil
	}
	url, ok := l.paths[id]
	if !ok {
		url = l.baseURL + id
	}
	l.mu.Unlock()

	source, err := l.fetch(ctx, url)
	if err != nil {
		return Module{}, err
	}

	module := Module{Name: id, URL: url, Source: source}

	l.mu.Lock()
	l.cache[id] = module
	l.mu.Unlock()

	return module, nil
}

// fetch retrieves a script over HTTP.
func (l *ScriptLoader) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModuleFetch, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModuleFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s returned %s", ErrModuleFetch, url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxScriptSize))
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", ErrModuleFetch, url, err)
	}

	return string(body), nil
}
