// Package types contains the enumerations and value shapes shared by the
// SageMaker operations.
//
// Scalar fields are pointers and nil means unset. List and map fields treat nil
// as unset and a non nil empty collection as an explicitly empty value. Enum
// fields hold the raw string and the empty string means unset; values that are
// not listed by Values are kept as is.
package types
