// Package assets resolves CSS styles and HTML page templates.
//
// Built-in assets are embedded in the binary. A base path, when set,
// overrides them with filesystem content, falling back to the embedded
// defaults for names that don't exist on disk:
//
//	assets/
//	├── styles/
//	│   └── custom.css
//	└── templates/
//	    └── custom.html
package assets

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed styles templates
var embedded embed.FS

// Sentinel errors for asset resolution.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidBasePath  = errors.New("asset base path is not a readable directory")
	ErrInvalidName      = errors.New("invalid asset name")
)

// Resolver loads styles and templates by name.
type Resolver struct {
	basePath string // empty = embedded only
}

// NewResolver creates a Resolver. An empty basePath uses only embedded
// assets; otherwise basePath must be a readable directory.
func NewResolver(basePath string) (*Resolver, error) {
	if basePath != "" {
		info, err := os.Stat(basePath)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidBasePath, basePath)
		}
	}
	return &Resolver{basePath: basePath}, nil
}

// LoadStyle returns the CSS content for a style name (no extension).
func (r *Resolver) LoadStyle(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}

	if r.basePath != "" {
		path := filepath.Join(r.basePath, "styles", name+".css")
		if content, err := os.ReadFile(path); err == nil { // #nosec G304 -- path is validated against traversal above
			return string(content), nil
		}
	}

	content, err := embedded.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrStyleNotFound, name)
	}
	return string(content), nil
}

// LoadTemplate returns the HTML page template for a template name.
func (r *Resolver) LoadTemplate(name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}

	if r.basePath != "" {
		path := filepath.Join(r.basePath, "templates", name+".html")
		if content, err := os.ReadFile(path); err == nil { // #nosec G304 -- path is validated against traversal above
			return string(content), nil
		}
	}

	content, err := embedded.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	return string(content), nil
}

// validateName rejects names that could traverse outside the asset tree.
func validateName(name string) error {
	if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
