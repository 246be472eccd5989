package audio

// Handle is an opaque reference to decoded audio in the working format.
// Immutable once produced; slicing and concatenation return new handles.
type Handle struct {
	Path       string
	DurationMs int64
	Channels   int
}
