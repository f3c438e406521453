// Package text renders wizard screens as plain text using pongo2 templates.
// The category, sub-type and specification screens each have a template;
// the specification screen also lists results or the failure notice.
package text
