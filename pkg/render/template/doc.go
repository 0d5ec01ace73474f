// Package template defines the template engine seam used by renderers. The
// pongo sub-package backs it with pongo2.
package template
