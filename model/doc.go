// Package model contains the in-memory representation of workflow
// definitions and the groups they belong to.
//
// Raw candidates arrive as loosely typed, ordered Fields (usually decoded
// from YAML by the discovery layer). The validator turns an accepted
// candidate into an immutable Workflow; nothing else in the code base
// constructs one.
package model
