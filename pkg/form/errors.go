package form

import "errors"

// ErrIncompleteSelection is returned by BuildRequest when the wizard has not
// recorded both a category and a sub-type. Reaching it means the caller
// skipped the state machine.
var ErrIncompleteSelection = errors.New("form: category and sub-type must be selected")
