// Package idgen generates snapshot revision identifiers. Callers treat
// revisions as opaque strings; tests may stub the generator.
package idgen
