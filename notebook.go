package nbexport

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Cell type constants (nbformat 4).
const (
	CellMarkdown = "markdown"
	CellCode     = "code"
	CellRaw      = "raw"
)

// Output type constants (nbformat 4).
const (
	OutputStream        = "stream"
	OutputDisplayData   = "display_data"
	OutputExecuteResult = "execute_result"
	OutputError         = "error"
)

// WidgetViewMIME identifies a Jupyter widget view in an output bundle.
const WidgetViewMIME = "application/vnd.jupyter.widget-view+json"

// WidgetStateMIME identifies embedded widget state in notebook metadata.
const WidgetStateMIME = "application/vnd.jupyter.widget-state+json"

// MultilineString accepts both JSON forms the notebook format allows for
// textual fields: a plain string or an array of line strings.
type MultilineString string

// UnmarshalJSON joins array form into a single string.
func (m *MultilineString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = MultilineString(s)
		return nil
	}
	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return fmt.Errorf("string or string array expected: %w", err)
	}
	*m = MultilineString(strings.Join(lines, ""))
	return nil
}

func (m MultilineString) String() string { return string(m) }

// MIMEBundle maps MIME types to their data. Textual values arrive as
// strings or line arrays; rich values (widget views, JSON) arrive as
// arbitrary JSON and are kept raw.
type MIMEBundle map[string]json.RawMessage

// Text returns the bundle entry for mime decoded as text.
// Returns "" when the entry is absent or not textual.
func (b MIMEBundle) Text(mime string) string {
	raw, ok := b[mime]
	if !ok {
		return ""
	}
	var m MultilineString
	if err := json.Unmarshal(raw, &m); err != nil {
		return ""
	}
	return m.String()
}

// Has reports whether the bundle contains mime.
func (b MIMEBundle) Has(mime string) bool {
	_, ok := b[mime]
	return ok
}

// Output is a single cell output (nbformat 4).
type Output struct {
	Type      string          `json:"output_type"`
	Name      string          `json:"name,omitempty"`   // stream: "stdout" or "stderr"
	Text      MultilineString `json:"text,omitempty"`   // stream text
	Data      MIMEBundle      `json:"data,omitempty"`   // display_data / execute_result
	ErrName   string          `json:"ename,omitempty"`  // error name
	ErrValue  string          `json:"evalue,omitempty"` // error value
	Traceback []string        `json:"traceback,omitempty"`
}

// Cell is a single notebook cell (nbformat 4).
type Cell struct {
	Type     string          `json:"cell_type"`
	Source   MultilineString `json:"source"`
	Outputs  []Output        `json:"outputs,omitempty"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// Notebook is the nbformat 4 document model.
type Notebook struct {
	Cells         []Cell           `json:"cells"`
	Metadata      NotebookMetadata `json:"metadata"`
	NBFormat      int              `json:"nbformat"`
	NBFormatMinor int              `json:"nbformat_minor"`
}

// NotebookMetadata carries the metadata fields the exporter consumes.
type NotebookMetadata struct {
	Language LanguageInfo    `json:"language_info"`
	Widgets  json.RawMessage `json:"widgets,omitempty"`
}

// LanguageInfo names the notebook's kernel language for highlighting.
type LanguageInfo struct {
	Name string `json:"name"`
}

// ParseNotebook decodes and validates nbformat 4 JSON.
func ParseNotebook(data []byte) (*Notebook, error) {
	if len(data) == 0 {
		return nil, ErrEmptyNotebook
	}

	var nb Notebook
	if err := json.Unmarshal(data, &nb); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotebookParse, err)
	}

	if nb.NBFormat != 4 {
		return nil, fmt.Errorf("%w: nbformat %d (want 4)", ErrUnsupportedNB, nb.NBFormat)
	}

	return &nb, nil
}

// HasWidgets reports whether any cell output contains a widget view.
func (nb *Notebook) HasWidgets() bool {
	for _, cell := range nb.Cells {
		for _, out := range cell.Outputs {
			if out.Data.Has(WidgetViewMIME) {
				return true
			}
		}
	}
	return false
}

// WidgetState returns the embedded widget state from notebook metadata,
// or nil when none is present.
func (nb *Notebook) WidgetState() json.RawMessage {
	if len(nb.Metadata.Widgets) == 0 {
		return nil
	}
	var widgets map[string]json.RawMessage
	if err := json.Unmarshal(nb.Metadata.Widgets, &widgets); err != nil {
		return nil
	}
	return widgets[WidgetStateMIME]
}

// Language returns the kernel language name, defaulting to "python".
func (nb *Notebook) Language() string {
	if nb.Metadata.Language.Name == "" {
		return "python"
	}
	return nb.Metadata.Language.Name
}
