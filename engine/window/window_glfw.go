package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwWindow is the GLFW half of windowImpl.
type glfwWindow struct {
	parent  *windowImpl
	window  *glfw.Window
	running bool
}

// newPlatformWindow creates the GLFW window and registers the key and
// framebuffer-resize callbacks. GLFW requires the creating goroutine to
// stay on its OS thread for the lifetime of the window.
func newPlatformWindow(w *windowImpl) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	// The surface is WebGPU's, so suppress GLFW's own context creation.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %v", err)
	}

	gw := &glfwWindow{
		parent:  w,
		window:  win,
		running: true,
	}
	w.platform = gw

	// Escape closes; everything else is forwarded on press and repeat.
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			gw.running = false
			win.SetShouldClose(true)
			return
		}
		if (action == glfw.Press || action == glfw.Repeat) && w.onKeyDown != nil {
			w.onKeyDown(uint32(key))
		}
	})

	// Resize events come from the framebuffer-size callback rather than
	// the window-size one: the surface wants pixels, and the two differ
	// on high-DPI displays.
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width = width
		w.height = height
		if w.onResize != nil {
			w.onResize(width, height)
		}
	})

	fbWidth, fbHeight := win.GetFramebufferSize()
	w.width = fbWidth
	w.height = fbHeight

	return nil
}

// platformGetSurfaceDescriptor asks the wgpuglfw bridge for a surface
// descriptor matching the platform (Win32, X11, Wayland, Metal).
func platformGetSurfaceDescriptor(w *windowImpl) *wgpu.SurfaceDescriptor {
	if w.platform == nil {
		return nil
	}
	gw := w.platform.(*glfwWindow)
	return wgpuglfw.GetSurfaceDescriptor(gw.window)
}

func platformIsRunningCheck(w *windowImpl) bool {
	if w.platform == nil {
		return false
	}
	gw := w.platform.(*glfwWindow)
	return gw.running && !gw.window.ShouldClose()
}

func platformCloseWindow(w *windowImpl) error {
	if w.platform == nil {
		return fmt.Errorf("window is not initialized")
	}
	gw := w.platform.(*glfwWindow)
	gw.running = false
	gw.window.SetShouldClose(true)
	gw.window.Destroy()
	glfw.Terminate()
	return nil
}

// platformProcessMessages polls pending GLFW events without blocking.
func platformProcessMessages(w *windowImpl) bool {
	glfw.PollEvents()
	return platformIsRunningCheck(w)
}
