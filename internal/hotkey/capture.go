package hotkey

import "sync"

// CaptureSession records the binding a user presses during an interactive
// rebind flow. Each capture is its own session object owned by the caller;
// there is no process-wide capture state, so overlapping UI flows cannot
// clobber each other.
type CaptureSession struct {
	mu       sync.Mutex
	captured *Spec
	stopped  bool
}

// StartCapture begins a capture session.
func StartCapture() *CaptureSession {
	return &CaptureSession{}
}

// Feed offers one key event to the session. Events with an unrecognized or
// missing key are ignored. Returns true when the event completed a binding.
func (c *CaptureSession) Feed(mods Modifier, key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return false
	}
	canonical, ok := canonicalKey(normalizeToken(key))
	if !ok {
		return false
	}
	c.captured = &Spec{Mods: mods, Key: canonical}
	return true
}

// Stop ends the session and returns the captured binding, if any. Further
// Feed calls are ignored.
func (c *CaptureSession) Stop() (Spec, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopped = true
	if c.captured == nil {
		return Spec{}, false
	}
	return *c.captured, true
}

func normalizeToken(key string) string {
	out := make([]byte, 0, len(key))
	for i := 0; i < len(key); i++ {
		ch := key[i]
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		out = append(out, ch)
	}
	return string(out)
}
