// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu provides a thin, data-oriented convenience layer over
// OpenGL 3.3 core and glfw, for creating, using, and releasing GPU
// objects: textures, renderbuffers, framebuffers, vertex and index
// buffers, shader and program objects.
//
// The GL context is implicitly global: every call here operates on
// whatever context is current on the calling goroutine's OS thread,
// and mutates whatever object was last bound to the relevant target.
// All GPU-touching calls must therefore be made on the main thread,
// locked with runtime.LockOSThread, with a current context
// (see the glos package for window / context creation).
//
// Object handles are owned by the GL driver: wrappers only issue
// create and release calls, and never track handle validity beyond
// their own lazily-set init flag. Releasing twice through the same
// wrapper is a no-op; using a wrapper after Release is caller error.
package glgpu

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Init loads the OpenGL function pointers for the current context.
// Must be called once after the first context is made current,
// on the main thread, before any other call in this package.
// glos.NewWindow calls this automatically.
func Init() error {
	return errors.Log(gl.Init())
}

var glErrStrings = map[uint32]string{
	gl.INVALID_ENUM:                  "GL_INVALID_ENUM",
	gl.INVALID_VALUE:                 "GL_INVALID_VALUE",
	gl.INVALID_OPERATION:             "GL_INVALID_OPERATION",
	gl.INVALID_FRAMEBUFFER_OPERATION: "GL_INVALID_FRAMEBUFFER_OPERATION",
	gl.OUT_OF_MEMORY:                 "GL_OUT_OF_MEMORY",
}

// ErrString returns the standard name for given GL error code,
// or a hex rendering of the code if it is not a standard error.
func ErrString(code uint32) string {
	if es, ok := glErrStrings[code]; ok {
		return es
	}
	return fmt.Sprintf("GL error %#04x", code)
}

// ErrCheck checks the GL error state, and if an error is pending,
// logs and returns it tagged with given context string.
// The error state is cleared by the check, per GetError semantics.
func ErrCheck(ctxt string) error {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	return errors.Log(fmt.Errorf("glgpu %s: %s", ctxt, ErrString(code)))
}

// CString returns a null-terminated version of given string,
// as required by the GL string functions. If the string already
// ends in \x00 it is returned unchanged.
func CString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// GoString removes any null terminator from given string.
func GoString(s string) string {
	return strings.TrimRight(s, "\x00")
}
