package window

// WindowBuilderOption is a functional option for configuring a window
// before it is spawned.
type WindowBuilderOption func(w *windowImpl)

// WithTitle sets the text shown in the OS title bar.
//
// Parameters:
//   - title: the window title
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *windowImpl) {
		w.title = title
	}
}

// WithWidth sets the requested initial width. The framebuffer the surface
// is configured against may come out larger on high-DPI displays.
//
// Parameters:
//   - width: initial width in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithWidth(width int) WindowBuilderOption {
	return func(w *windowImpl) {
		w.width = width
	}
}

// WithHeight sets the requested initial height.
//
// Parameters:
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithHeight(height int) WindowBuilderOption {
	return func(w *windowImpl) {
		w.height = height
	}
}
