// Package gotemplate runs pongo2 templates loaded from an fs.FS. Template data
// is normalised through JSON, so struct fields are addressed by their json
// names.
package gotemplate
