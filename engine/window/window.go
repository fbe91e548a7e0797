package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window owns the OS window that hosts the render surface and drives the
// frame loop. The viewer needs exactly three event surfaces: per-frame
// updates, framebuffer resizes, and key presses. Escape always closes.
type Window interface {
	// SetUpdateCallback sets the function called once per message loop
	// iteration. The frame loop lives in this callback.
	//
	// Parameters:
	//   - callback: function to call each iteration (nil disables)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer
	// size changes. The surface must be reconfigured from here.
	//
	// Parameters:
	//   - callback: function receiving the new size in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback sets the function called on key press or repeat.
	// Escape is consumed internally to close the window and is never
	// forwarded.
	//
	// Parameters:
	//   - callback: function receiving the GLFW key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SurfaceDescriptor returns the platform-appropriate descriptor for
	// creating a WebGPU surface on this window, or nil before the window
	// is spawned.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: descriptor from the wgpuglfw bridge
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning reports whether the window is still open.
	//
	// Returns:
	//   - bool: false once the window has been closed
	IsRunning() bool

	// Close destroys the window and shuts down the windowing library.
	//
	// Returns:
	//   - error: error if the window was never spawned
	Close() error

	// ProcessMessages runs the message loop until the window closes,
	// invoking the update callback each iteration.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// windowImpl is the unexported implementation of Window.
type windowImpl struct {
	// title shown in the OS title bar.
	title string

	// width and height track the framebuffer size in pixels, which on
	// high-DPI displays differs from the requested window size.
	width  int
	height int

	// platform holds the GLFW-specific state (glfwWindow).
	platform any

	onUpdate  func()
	onResize  func(width, height int)
	onKeyDown func(keyCode uint32)
}

var _ Window = &windowImpl{}

// NewWindow spawns the viewer window. Defaults are applied first, then each
// option in order. Panics if the platform window cannot be created, since
// nothing downstream can run without a surface.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the spawned window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &windowImpl{
		title:  "quadfield",
		width:  1280,
		height: 720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *windowImpl) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *windowImpl) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *windowImpl) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *windowImpl) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *windowImpl) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *windowImpl) Close() error {
	return platformCloseWindow(w)
}

func (w *windowImpl) ProcessMessages() {
	for w.IsRunning() {
		if ok := platformProcessMessages(w); !ok {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *windowImpl) Width() int {
	return w.width
}

func (w *windowImpl) Height() int {
	return w.height
}
