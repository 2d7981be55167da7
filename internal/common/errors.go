// Package common defines shared sentinel errors used across server layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

// ErrorNotFound is returned by repositories when a lookup matches no row.
var ErrorNotFound = errors.New("not found")
