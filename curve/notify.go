// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

// Handle identifies one registered change listener, so that it can
// be disconnected later. Handles are unique per notifying object.
type Handle int

// notifier registers listener functions to be called whenever the
// underlying path geometry changes. Listeners are closures with all
// context captured. It is embedded in [Node], [Bezier], and [Spline].
type notifier struct {
	listeners  map[Handle]func()
	nextHandle Handle
}

// Connect registers fun to be called on every change,
// returning a [Handle] that can be passed to Disconnect.
func (nf *notifier) Connect(fun func()) Handle {
	if nf.listeners == nil {
		nf.listeners = make(map[Handle]func())
	}
	h := nf.nextHandle
	nf.nextHandle++
	nf.listeners[h] = fun
	return h
}

// Disconnect removes the listener with the given handle.
// Disconnecting an unknown handle is a no-op.
func (nf *notifier) Disconnect(h Handle) {
	delete(nf.listeners, h)
}

// NumListeners returns the number of currently connected listeners.
func (nf *notifier) NumListeners() int {
	return len(nf.listeners)
}

// send calls all registered listeners.
func (nf *notifier) send() {
	for _, fun := range nf.listeners {
		fun()
	}
}
