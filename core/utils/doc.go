// Package utils provides total conversion helpers for loosely typed JSON values.
//
// Every function here is defined for all inputs: a missing key, a null, or a value of
// the wrong type yields the caller's default instead of an error. The property
// normalizers are built on these accessors so that a malformed listing degrades field
// by field rather than failing as a whole.
package utils
