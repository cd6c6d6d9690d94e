// Package interchange decodes a JSON document describing one compilation
// unit's graphs directly into the data model (pkg/types), as a stand-in for
// the external surface-syntax parser this module assumes away. Every
// document is validated against a fixed JSON Schema before being walked, so
// a malformed document fails with a schema error rather than a confusing
// panic deep inside graph construction.
package interchange
