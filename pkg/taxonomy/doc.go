// Package taxonomy defines the hull category and sub-type catalog the wizard
// walks through. A Catalog is immutable once built; it is loaded from a JSON
// or YAML document (the bundled default lives under data/catalog.yaml) and
// injected into the state machine rather than hard-coded in a screen.
//
// Every category must declare its sub-type list. An explicitly empty list is
// valid and renders as an empty selection grid; an omitted list is a load
// error. Category icons are optional inline SVG snippets that are sanitised
// on load so renderers can emit them verbatim.
package taxonomy
