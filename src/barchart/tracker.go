package barchart

// NameTracker remembers the display name of the last composed chart so a
// host can detect identity changes between render passes. The host calls
// Update after each pass; the recorded name has no effect on composition.
// All mutation happens on the single rendering thread between passes.
type NameTracker struct {
	last string
}

// Update records name and reports whether it differs from the previous pass.
func (t *NameTracker) Update(name string) bool {
	changed := name != t.last
	t.last = name
	return changed
}

// Last returns the name recorded by the most recent Update.
func (t *NameTracker) Last() string { return t.last }
