// Package form holds the specification form: the nine named numeric fields,
// their raw text values, and the request payload built from them. Values stay
// as the user typed them; parsing and defaulting belong to the calculation
// service.
package form
