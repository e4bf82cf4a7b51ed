package sonar

// Window is a fixed-capacity first-in-first-out buffer of recent
// measurements, backed by a ring.
type Window struct {
	values []int
	head   int // index of the oldest value
	size   int
}

// NewWindow creates an empty window holding at most capacity values.
func NewWindow(capacity int) *Window {
	if capacity < 1 {
		capacity = 1
	}
	return &Window{values: make([]int, capacity)}
}

// Push appends v as the newest value. A full window drops its oldest value
// first.
func (w *Window) Push(v int) {
	if w.Full() {
		w.Pop()
	}
	w.values[(w.head+w.size)%len(w.values)] = v
	w.size++
}

// Pop removes and returns the oldest value.
func (w *Window) Pop() (int, bool) {
	if w.size == 0 {
		return 0, false
	}
	v := w.values[w.head]
	w.head = (w.head + 1) % len(w.values)
	w.size--
	return v, true
}

// Oldest returns the least recently pushed value.
func (w *Window) Oldest() (int, bool) {
	if w.size == 0 {
		return 0, false
	}
	return w.values[w.head], true
}

// Newest returns the most recently pushed value.
func (w *Window) Newest() (int, bool) {
	if w.size == 0 {
		return 0, false
	}
	return w.values[(w.head+w.size-1)%len(w.values)], true
}

// Full reports whether the window is at capacity.
func (w *Window) Full() bool { return w.size == len(w.values) }
