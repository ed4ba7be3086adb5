// Package commands contains the write-side use cases of the batch labeling
// core: composing printable label documents and driving batch status
// transitions. Commands are validated value objects created through
// constructors; handlers orchestrate the domain services and the order
// source port.
package commands

import "errors"

// ErrNoGroupsSelected is returned when a print or transition command is
// created with an empty group selection. The selection is rejected before
// any network call is made.
var ErrNoGroupsSelected = errors.New("no groups selected")
