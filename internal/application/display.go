package application

// Display is the two-line surface of the wearable: a clock line and a
// short message line. Render must be safe with an empty message; the
// surface clips the message at the panel width.
type Display interface {
	Open() error
	Render(clock, message string) error
	Close() error
}
