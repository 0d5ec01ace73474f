package cvgen

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-cvgen/pkg/augment"
	"github.com/goliatone/go-cvgen/pkg/extract"
	"github.com/goliatone/go-cvgen/pkg/renderers/typescript"
	"github.com/goliatone/go-cvgen/pkg/source"
)

const fixture = "internal/extract/testdata/cv.txt"

func TestExtractFile(t *testing.T) {
	record, err := ExtractFile(filepath.FromSlash(fixture))
	if err != nil {
		t.Fatalf("extract file: %v", err)
	}
	if record.Name != "Jane Q. Doe" {
		t.Fatalf("name = %q", record.Name)
	}
	if len(record.Experience) != 2 {
		t.Fatalf("expected 2 experience entries, got %d", len(record.Experience))
	}
}

func TestExtractFileMissing(t *testing.T) {
	if _, err := ExtractFile(filepath.Join("testdata", "nope.tex")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestExtractEmptyInput(t *testing.T) {
	record := Extract("")
	if record.Name != "" || record.Projects == nil || record.Skills.Tools == nil {
		t.Fatalf("empty input should yield an empty, fully shaped record: %#v", record)
	}
}

func TestNewExtractorOptions(t *testing.T) {
	record := NewExtractor(extract.WithDefaultLocation("On-site")).Extract(`
\section{Experience}
\begin{twocolentry}{2020}
\textbf{Engineer}, Initech\end{twocolentry}
`)
	if len(record.Experience) != 1 || record.Experience[0].Location != "On-site" {
		t.Fatalf("default location option not applied: %#v", record.Experience)
	}
}

func TestGenerate(t *testing.T) {
	out, err := Generate(context.Background(), source.FromFile(filepath.FromSlash(fixture)), "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), `  name: "Jane Q. Doe",`) {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestGenerateFromDocument(t *testing.T) {
	doc := source.MustNewDocument(source.FromFile("inline.tex"), []byte(`\fontsize{25 pt}{25 pt}\selectfont Ada Lovelace`))
	out, err := GenerateFromDocument(context.Background(), doc, "json")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), `"name": "Ada Lovelace"`) {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	if _, err := fs.ReadFile(EmbeddedTemplates(), typescript.TemplateName); err != nil {
		t.Fatalf("expected embedded template to be readable: %v", err)
	}
}

func TestDefaultAugmentationDecodes(t *testing.T) {
	layer, err := augment.Decode(DefaultAugmentation())
	if err != nil {
		t.Fatalf("decode defaults: %v", err)
	}
	if layer.Icons.Experience == "" {
		t.Fatalf("default icons missing")
	}
}
