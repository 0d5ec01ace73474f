package augment

import (
	"os"
	"path/filepath"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/go-cmp/cmp"
)

func TestDefaultDecodesEmbeddedLayer(t *testing.T) {
	layer, err := Default()
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	if err := layer.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	if layer.Title == "" || layer.Summary == "" {
		t.Fatalf("expected title and summary, got %+v", layer)
	}
	if layer.Icons.Experience != "Briefcase" {
		t.Fatalf("experience icon = %q", layer.Icons.Experience)
	}
	if len(layer.GeneralSkills) != 3 {
		t.Fatalf("expected 3 general skills, got %d", len(layer.GeneralSkills))
	}
	if len(layer.Certifications) != 2 {
		t.Fatalf("expected 2 placeholder certifications, got %d", len(layer.Certifications))
	}
	for _, cert := range layer.Certifications {
		if cert.Name == "" || cert.Issuer == "" || cert.Date == "" {
			t.Fatalf("placeholder certification is incomplete: %+v", cert)
		}
	}
}

func TestDecodeOverridesOnlyPresentKeys(t *testing.T) {
	layer, err := Decode([]byte(`
title: "Data Engineer"
certifications:
  - name: "Cloud Practitioner"
    issuer: "AWS"
    date: "May 2024"
icons:
  tool: "Wrench"
`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	defaults := MustDefault()
	if layer.Title != "Data Engineer" {
		t.Fatalf("title = %q", layer.Title)
	}
	if layer.ShortIntro != defaults.ShortIntro {
		t.Fatalf("short intro should keep default, got %q", layer.ShortIntro)
	}
	if layer.Icons.Tool != "Wrench" || layer.Icons.Experience != defaults.Icons.Experience {
		t.Fatalf("unexpected icons %+v", layer.Icons)
	}
	want := []Certification{{Name: "Cloud Practitioner", Issuer: "AWS", Date: "May 2024"}}
	if diff := cmp.Diff(want, layer.Certifications); diff != "" {
		t.Fatalf("certifications mismatch (-want +got):\n%s", diff)
	}
	if got := layer.CertificationIcon(layer.Certifications[0]); got != "Award" {
		t.Fatalf("certification icon fallback = %q", got)
	}
}

func TestDecodeRejectsInvalidIcon(t *testing.T) {
	_, err := Decode([]byte("icons:\n  email: \"Mail; alert(1)\"\n"))
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestDecodeRejectsMalformedYAML(t *testing.T) {
	if _, err := Decode([]byte("title: [unterminated")); err == nil {
		t.Fatalf("expected yaml error")
	}
}

func TestLoad(t *testing.T) {
	layer, err := Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if diff := cmp.Diff(MustDefault(), layer); diff != "" {
		t.Fatalf("empty path should load defaults (-want +got):\n%s", diff)
	}

	path := filepath.Join(t.TempDir(), "augment.yaml")
	if err := os.WriteFile(path, []byte("cv_path: /resume.pdf\n"), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}
	layer, err = Load(path)
	if err != nil {
		t.Fatalf("load override: %v", err)
	}
	if layer.CVPath != "/resume.pdf" {
		t.Fatalf("cv path = %q", layer.CVPath)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestIconNames(t *testing.T) {
	layer := MustDefault()

	got := layer.IconNames(Usage{})
	want := []string{"Award", "Github", "Linkedin", "Mail", "Star", "Users"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("icons without sections (-want +got):\n%s", diff)
	}

	got = layer.IconNames(Usage{Experience: true, Languages: true})
	want = []string{"Award", "Briefcase", "Code", "Github", "Linkedin", "Mail", "Star", "Users"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("icons with sections (-want +got):\n%s", diff)
	}
}
