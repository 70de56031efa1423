package nbexport

import (
	"errors"
	"testing"
)

const minimalNotebook = `{
  "cells": [
    {"cell_type": "markdown", "source": ["# Title\n", "text"]},
    {"cell_type": "code", "source": "print('hi')", "outputs": [
      {"output_type": "stream", "name": "stdout", "text": ["hi\n"]}
    ]}
  ],
  "metadata": {"language_info": {"name": "python"}},
  "nbformat": 4,
  "nbformat_minor": 5
}`

func TestParseNotebook(t *testing.T) {
	nb, err := ParseNotebook([]byte(minimalNotebook))
	if err != nil {
		t.Fatalf("ParseNotebook() error = %v", err)
	}

	if len(nb.Cells) != 2 {
		t.Fatalf("cells = %d, want 2", len(nb.Cells))
	}
	if got := nb.Cells[0].Source.String(); got != "# Title\ntext" {
		t.Errorf("markdown source = %q (array form must join)", got)
	}
	if got := nb.Cells[1].Source.String(); got != "print('hi')" {
		t.Errorf("code source = %q (string form must pass through)", got)
	}
	if got := nb.Cells[1].Outputs[0].Text.String(); got != "hi\n" {
		t.Errorf("stream text = %q", got)
	}
}

func TestParseNotebookErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "empty input", data: "", wantErr: ErrEmptyNotebook},
		{name: "invalid JSON", data: "{", wantErr: ErrNotebookParse},
		{name: "wrong format version", data: `{"cells": [], "nbformat": 3, "nbformat_minor": 0}`, wantErr: ErrUnsupportedNB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNotebook([]byte(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseNotebook() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNotebookWidgets(t *testing.T) {
	data := `{
	  "cells": [
	    {"cell_type": "code", "source": "w", "outputs": [
	      {"output_type": "display_data", "data": {
	        "application/vnd.jupyter.widget-view+json": {"model_id": "abc", "version_major": 2},
	        "text/plain": "Widget()"
	      }}
	    ]}
	  ],
	  "metadata": {
	    "widgets": {"application/vnd.jupyter.widget-state+json": {"state": {}}}
	  },
	  "nbformat": 4,
	  "nbformat_minor": 5
	}`

	nb, err := ParseNotebook([]byte(data))
	if err != nil {
		t.Fatalf("ParseNotebook() error = %v", err)
	}
	if !nb.HasWidgets() {
		t.Error("HasWidgets() = false, want true")
	}
	if nb.WidgetState() == nil {
		t.Error("WidgetState() = nil, want embedded state")
	}
}

func TestNotebookWithoutWidgets(t *testing.T) {
	nb, err := ParseNotebook([]byte(minimalNotebook))
	if err != nil {
		t.Fatal(err)
	}
	if nb.HasWidgets() {
		t.Error("HasWidgets() = true, want false")
	}
	if nb.WidgetState() != nil {
		t.Error("WidgetState() != nil, want nil")
	}
}

func TestNotebookLanguageDefault(t *testing.T) {
	nb := &Notebook{}
	if got := nb.Language(); got != "python" {
		t.Errorf("Language() = %q, want python", got)
	}

	nb.Metadata.Language.Name = "julia"
	if got := nb.Language(); got != "julia" {
		t.Errorf("Language() = %q, want julia", got)
	}
}

func TestMIMEBundleText(t *testing.T) {
	nb, err := ParseNotebook([]byte(`{
	  "cells": [
	    {"cell_type": "code", "source": "x", "outputs": [
	      {"output_type": "execute_result", "data": {
	        "text/plain": ["line1\n", "line2"],
	        "application/vnd.jupyter.widget-view+json": {"model_id": "m"}
	      }}
	    ]}
	  ],
	  "nbformat": 4, "nbformat_minor": 5
	}`))
	if err != nil {
		t.Fatal(err)
	}

	bundle := nb.Cells[0].Outputs[0].Data
	if got := bundle.Text("text/plain"); got != "line1\nline2" {
		t.Errorf("Text(text/plain) = %q", got)
	}
	if got := bundle.Text(WidgetViewMIME); got != "" {
		t.Errorf("Text on non-textual entry = %q, want empty", got)
	}
	if !bundle.Has(WidgetViewMIME) {
		t.Error("Has(widget view) = false, want true")
	}
}
