package javadoclink

import "errors"

var (
	// ErrUnsupportedOperation is returned for capabilities a javadoc version never had.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrInvalidDescriptor is matched by every *DescriptorError.
	ErrInvalidDescriptor = errors.New("invalid method descriptor")
)

// DescriptorError reports a malformed method descriptor.
type DescriptorError struct {
	Descriptor string
}

func (e *DescriptorError) Error() string {
	return "Invalid method descriptor: " + e.Descriptor
}

func (e *DescriptorError) Is(target error) bool {
	return target == ErrInvalidDescriptor
}

type unsupportedError struct {
	msg string
}

func (e *unsupportedError) Error() string { return e.msg }

func (e *unsupportedError) Unwrap() error { return ErrUnsupportedOperation }

var errModulesUnsupported = &unsupportedError{msg: "Modules not supported before Java 9."}
