// Package source describes where résumé documents come from: file and fs.FS
// sources, the Document wrapper, the Loader contract and candidate discovery
// inside a data directory.
package source
