package nbexport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestScriptLoaderLoad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/foo":
			_, _ = w.Write([]byte("// foo module"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	loader := NewScriptLoader(srv.Client())
	loader.SetBaseURL(srv.URL + "/")

	module, err := loader.Load(context.Background(), []string{"foo"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if module.Source != "// foo module" {
		t.Errorf("module source = %q", module.Source)
	}
	if module.URL != srv.URL+"/foo" {
		t.Errorf("module URL = %q", module.URL)
	}
}

func TestScriptLoaderLoadFailureCarriesUnresolvedIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(http.NotFound))
	defer srv.Close()

	loader := NewScriptLoader(srv.Client())
	loader.SetBaseURL(srv.URL + "/")

	_, err := loader.Load(context.Background(), []string{"missing"})
	var unresolved *UnresolvedError
	if !errors.As(err, &unresolved) {
		t.Fatalf("Load() error = %v, want *UnresolvedError", err)
	}
	if len(unresolved.Modules) != 1 || unresolved.Modules[0] != "missing" {
		t.Errorf("unresolved modules = %v, want [missing]", unresolved.Modules)
	}
	if !errors.Is(err, ErrModuleFetch) {
		t.Errorf("error should wrap ErrModuleFetch, got %v", err)
	}
}

func TestScriptLoaderConfigureOverridesPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/mirror/foo.js" {
			_, _ = w.Write([]byte("// mirrored"))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	loader := NewScriptLoader(srv.Client())
	loader.SetBaseURL(srv.URL + "/")
	loader.Configure(LoaderConfig{Paths: map[string]string{"foo": srv.URL + "/mirror/foo.js"}})

	module, err := loader.Load(context.Background(), []string{"foo"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if module.Source != "// mirrored" {
		t.Errorf("module source = %q, want mirrored content", module.Source)
	}
}

func TestScriptLoaderCachesAndUnregisters(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte("// module"))
	}))
	defer srv.Close()

	loader := NewScriptLoader(srv.Client())
	loader.SetBaseURL(srv.URL + "/")

	for i := 0; i < 2; i++ {
		if _, err := loader.Load(context.Background(), []string{"foo"}); err != nil {
			t.Fatalf("Load() error = %v", err)
		}
	}
	if hits != 1 {
		t.Errorf("server hits = %d, want 1 (second load served from cache)", hits)
	}

	loader.Unregister("foo")
	if _, err := loader.Load(context.Background(), []string{"foo"}); err != nil {
		t.Fatalf("Load() after Unregister error = %v", err)
	}
	if hits != 2 {
		t.Errorf("server hits = %d, want 2 (unregister evicts the cache)", hits)
	}
}

func TestScriptLoaderEmptyIDs(t *testing.T) {
	loader := NewScriptLoader(nil)
	if _, err := loader.Load(context.Background(), nil); !errors.Is(err, ErrEmptyModuleName) {
		t.Errorf("Load(nil) error = %v, want ErrEmptyModuleName", err)
	}
}

func TestScriptLoaderResolverIntegration(t *testing.T) {
	// Primary registry serves nothing; the CDN path serves the module.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/cdn/widgets@1.0.0/dist/index" {
			_, _ = w.Write([]byte("// widget manager"))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	loader := NewScriptLoader(srv.Client())
	loader.SetBaseURL(srv.URL + "/registry/")

	res, err := NewResolver(loader, srv.URL+"/cdn/")
	if err != nil {
		t.Fatal(err)
	}

	module, err := res.Resolve(context.Background(), "widgets", "1.0.0")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if module.Source != "// widget manager" {
		t.Errorf("module source = %q", module.Source)
	}
}
