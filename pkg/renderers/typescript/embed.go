package typescript

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplateName is the entry template rendered for every record.
const TemplateName = "templates/cv.ts.tmpl"

// TemplatesFS exposes the embedded template bundle so callers can copy it
// as a starting point for a customised module layout.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
