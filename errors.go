package persist

import "errors"

// ErrNotRegistered is returned by Save and Load when the value's type has no
// entry in the parameter store. It is never masked by the error policy.
var ErrNotRegistered = errors.New("no persistence settings registered for type")

// ErrEncode is returned when a codec fails to serialize a value.
var ErrEncode = errors.New("encoding failed")

// ErrDecode is returned when a codec fails to deserialize stored data.
var ErrDecode = errors.New("decoding failed")

// ErrInvalidTag is returned when a declarative persist tag cannot be parsed.
// Tag text is programmer-authored, so this is never masked or recovered.
var ErrInvalidTag = errors.New("invalid persist tag")

// ErrNotPointer is returned by Load when the target is not a non-nil pointer.
var ErrNotPointer = errors.New("load target must be a non-nil pointer")

// ErrUnnamedType is returned when a type has no stable name to key the store
// with, such as an anonymous struct.
var ErrUnnamedType = errors.New("type has no stable name")
