package domain

import "errors"

var (
	// ErrEmptyPattern is returned when no pattern text was supplied.
	ErrEmptyPattern = errors.New("pattern must not be empty")
	// ErrInvalidPattern is returned when the pattern does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrInvalidPolicy is returned for an unknown file error policy.
	ErrInvalidPolicy = errors.New("invalid file error policy")
	// ErrEnumerate is returned when traversal fails under the abort policy.
	ErrEnumerate = errors.New("failed to enumerate files")
	// ErrReadFile is returned when reading a file fails under the abort policy.
	ErrReadFile = errors.New("failed to read file")
	// ErrWriteResults is returned when the matched lines cannot be written.
	ErrWriteResults = errors.New("failed to write results")
)
