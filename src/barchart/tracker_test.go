package barchart

import "testing"

func TestNameTracker(t *testing.T) {
	var tr NameTracker
	if !tr.Update("cpu-usage") {
		t.Fatalf("first update should report a change")
	}
	if tr.Update("cpu-usage") {
		t.Fatalf("same name should not report a change")
	}
	if !tr.Update("memory-usage") {
		t.Fatalf("new name should report a change")
	}
	if tr.Last() != "memory-usage" {
		t.Fatalf("Last: got %q", tr.Last())
	}
}
