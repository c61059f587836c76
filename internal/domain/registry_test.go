package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewRegistry()

	spec := &DomainSpec{
		ID:    "coding",
		Model: "gemini-2.0-flash",
		Tools: []string{"read_file", "write_file"},
	}
	replaced, err := reg.Register(spec)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if replaced {
		t.Errorf("Register() replaced = true, want false for first registration")
	}

	got, ok := reg.Get("coding")
	if !ok {
		t.Fatalf("Get(coding) returned false")
	}
	if diff := cmp.Diff(spec, got); diff != "" {
		t.Errorf("Get(coding) mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_GetReturnsCopy(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Register(&DomainSpec{ID: "general", Tools: []string{"grep"}}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	first, _ := reg.Get("general")
	first.Tools[0] = "mutated"
	first.ID = "mutated"

	second, _ := reg.Get("general")
	if second.ID != "general" || second.Tools[0] != "grep" {
		t.Errorf("Get() returned a live view, want isolated copy: %+v", second)
	}
}

func TestRegistry_DuplicateIsLastWriteWins(t *testing.T) {
	reg := NewRegistry()

	_, _ = reg.Register(&DomainSpec{ID: "coding", Model: "old-model"})
	replaced, err := reg.Register(&DomainSpec{ID: "coding", Model: "new-model"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if !replaced {
		t.Errorf("Register() replaced = false, want true for duplicate ID")
	}

	got, _ := reg.Get("coding")
	if got.Model != "new-model" {
		t.Errorf("Get(coding).Model = %q, want new-model (last write wins)", got.Model)
	}
	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}
}

func TestRegistry_RejectsInvalidSpec(t *testing.T) {
	reg := NewRegistry()

	if _, err := reg.Register(nil); err == nil {
		t.Errorf("Register(nil) error = nil, want error")
	}
	if _, err := reg.Register(&DomainSpec{}); err == nil {
		t.Errorf("Register(empty id) error = nil, want error")
	}
	if _, err := reg.Register(&DomainSpec{ID: "Bad ID"}); err == nil {
		t.Errorf("Register(bad id chars) error = nil, want error")
	}
	if reg.Len() != 0 {
		t.Errorf("Len() = %d after rejected registrations, want 0", reg.Len())
	}
}

func TestRegistry_IDsSorted(t *testing.T) {
	reg := NewRegistry()
	for _, id := range []string{"zeta", "alpha", "mid"} {
		if _, err := reg.Register(&DomainSpec{ID: id}); err != nil {
			t.Fatalf("Register(%s) error = %v", id, err)
		}
	}

	got := reg.IDs()
	want := []string{"alpha", "mid", "zeta"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("IDs() mismatch (-want +got):\n%s", diff)
	}
}
