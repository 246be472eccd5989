package audio

import "fmt"

// DecodeError indicates the uploaded bytes could not be decoded.
// Fatal for the run: the bytes will not change on a re-attempt.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode audio: %v", e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
