// Package holder wraps the value under test as either a borrowed reference or an
// owned value.
//
// Both variants are read through Borrow. Only an owned value can be moved out of a
// holder again; asking a borrowed holder for ownership is reported as an
// OwnershipError instead of silently copying the referenced value.
package holder
