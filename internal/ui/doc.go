package ui

// Package ui implements the Fyne desktop shell: a URL field, mode buttons,
// a metadata preview row and a progress readout. Pipeline callbacks arrive
// on a worker goroutine and are marshalled onto the render thread with
// fyne.Do before touching any widget.
