package service

// Thumbnailer produces resized copies of encoded images.
type Thumbnailer interface {
	// Resize scales src to the given width, keeping the aspect ratio.
	// The result is encoded in the format of src.
	Resize(src []byte, width int) ([]byte, error)
}
