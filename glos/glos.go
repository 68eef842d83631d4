// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glos is a minimal glfw window and event wrapper for glgpu.
// Everything here must run on the main OS thread: call
// runtime.LockOSThread in an init function of the main package.
package glos

import (
	"fmt"
	"image"
	"time"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/glgpu"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Init initializes the glfw library. Must be called before any other
// call in this package, on the main initial thread.
// NewWindow calls this automatically if needed.
func Init() error {
	if initialized {
		return nil
	}
	if err := glfw.Init(); err != nil {
		return errors.Log(err)
	}
	initialized = true
	return nil
}

var initialized bool

// Terminate shuts down the glfw system; call as the last thing
// before quitting, on the main initial thread.
func Terminate() {
	if !initialized {
		return
	}
	glfw.Terminate()
	initialized = false
}

// Options are the options for NewWindow.
type Options struct {
	// Title of the window
	Title string

	// Size of the window in screen coordinates
	Size image.Point

	// Samples is the multisample count for the default framebuffer;
	// 0 = no multisampling
	Samples int

	// Resizable makes the window user-resizable
	Resizable bool
}

// Window wraps a glfw window with a current GL context.
type Window struct {
	glw *glfw.Window

	// Opts are the options the window was created with
	Opts Options
}

// NewWindow creates a new window with an OpenGL 3.3 core context,
// makes the context current, and loads the GL function pointers
// (glgpu.Init). Vsync is enabled. Must be called on the main thread.
func NewWindow(opts Options) (*Window, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	if opts.Size.X <= 0 || opts.Size.Y <= 0 {
		return nil, errors.Log(fmt.Errorf("glos.NewWindow: invalid size %v", opts.Size))
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True) // needed on darwin
	if opts.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}
	if opts.Samples > 1 {
		glfw.WindowHint(glfw.Samples, opts.Samples)
	}
	glw, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, nil, nil)
	if err != nil {
		return nil, errors.Log(err)
	}
	glw.MakeContextCurrent()
	glfw.SwapInterval(1)
	if err := glgpu.Init(); err != nil {
		glw.Destroy()
		return nil, err
	}
	w := &Window{glw: glw, Opts: opts}
	w.glw.SetKeyCallback(w.defaultKey)
	return w, nil
}

// Glw returns the underlying glfw window, for direct access to
// anything not wrapped here.
func (w *Window) Glw() *glfw.Window {
	return w.glw
}

// Size returns the size of the window in screen coordinates.
func (w *Window) Size() image.Point {
	x, y := w.glw.GetSize()
	return image.Point{x, y}
}

// FramebufferSize returns the size of the window framebuffer in
// pixels, which can differ from Size on high-dpi displays.
func (w *Window) FramebufferSize() image.Point {
	x, y := w.glw.GetFramebufferSize()
	return image.Point{x, y}
}

// ShouldClose returns true if the window has been asked to close.
func (w *Window) ShouldClose() bool {
	return w.glw.ShouldClose()
}

// SetShouldClose asks the window to close.
func (w *Window) SetShouldClose(close bool) {
	w.glw.SetShouldClose(close)
}

// SwapBuffers swaps the front and back buffers of the window,
// presenting the rendered frame.
func (w *Window) SwapBuffers() {
	w.glw.SwapBuffers()
}

// Destroy destroys the window and its context.
func (w *Window) Destroy() {
	w.glw.Destroy()
}

// PollEvents processes pending window events and returns false if
// the window should close. Must be called on the main thread.
func (w *Window) PollEvents() bool {
	if w.glw.ShouldClose() {
		return false
	}
	glfw.PollEvents()
	return true
}

// WaitEvents waits up to given poll interval for window events,
// processes any, and returns false if the window should close.
// Must be called on the main thread.
func (w *Window) WaitEvents(timeout time.Duration) bool {
	if w.glw.ShouldClose() {
		return false
	}
	glfw.WaitEventsTimeout(timeout.Seconds())
	return true
}

// defaultKey closes the window on Escape; replaced by SetKeyFunc.
func (w *Window) defaultKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.glw.SetShouldClose(true)
	}
}

// SetKeyFunc sets the key event callback, replacing the default
// Escape-closes-window handler.
func (w *Window) SetKeyFunc(fn func(key glfw.Key, action glfw.Action, mods glfw.ModifierKey)) {
	w.glw.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.glw.SetShouldClose(true)
			return
		}
		fn(key, action, mods)
	})
}

// SetCursorPosFunc sets the cursor position callback.
func (w *Window) SetCursorPosFunc(fn func(x, y float64)) {
	w.glw.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		fn(x, y)
	})
}

// SetMouseButtonFunc sets the mouse button callback.
func (w *Window) SetMouseButtonFunc(fn func(button glfw.MouseButton, action glfw.Action)) {
	w.glw.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		fn(button, action)
	})
}

// SetScrollFunc sets the scroll callback.
func (w *Window) SetScrollFunc(fn func(dx, dy float64)) {
	w.glw.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		fn(dx, dy)
	})
}

// SetSizeFunc sets the framebuffer resize callback.
func (w *Window) SetSizeFunc(fn func(size image.Point)) {
	w.glw.SetFramebufferSizeCallback(func(_ *glfw.Window, wd, ht int) {
		fn(image.Point{wd, ht})
	})
}
