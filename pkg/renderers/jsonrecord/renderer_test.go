package jsonrecord_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-cvgen/pkg/render"
	"github.com/goliatone/go-cvgen/pkg/renderers/jsonrecord"
	"github.com/goliatone/go-cvgen/pkg/resume"
)

func TestRenderer_ReparsesToSameRecord(t *testing.T) {
	record := resume.New()
	record.Name = `Jane "JJ" Doe & <Co>`
	record.Skills.Languages = []string{"Go", "", "Go"}
	record.Experience = []resume.ExperienceEntry{{Role: "Engineer", Location: "Remote", Responsibilities: []string{}}}

	out, err := jsonrecord.New().Render(context.Background(), record, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), `& <Co>`) {
		t.Fatalf("html characters should not be escaped: %s", out)
	}

	var decoded resume.Record
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(record, &decoded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_EmptyListsAreArrays(t *testing.T) {
	out, err := jsonrecord.New(jsonrecord.WithIndent("")).Render(context.Background(), resume.New(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, fragment := range []string{`"education":[]`, `"languages":[]`, `"gpa":""`} {
		if !strings.Contains(string(out), fragment) {
			t.Errorf("compact output missing %s: %s", fragment, out)
		}
	}
}

func TestRenderer_NilRecord(t *testing.T) {
	_, err := jsonrecord.New().Render(context.Background(), nil, render.RenderOptions{})
	if !errors.Is(err, render.ErrNilRecord) {
		t.Fatalf("expected ErrNilRecord, got %v", err)
	}
}
