package instructions

import (
	"testing"
)

func TestStore_ForUnknownReturnsDefault(t *testing.T) {
	store := NewStore()

	got := store.For("nope")
	if got != DefaultInstruction {
		t.Errorf("For(nope) = %q, want the default instruction", got)
	}
	if store.Known("nope") {
		t.Errorf("Known(nope) = true, want false")
	}
}

func TestStore_SetAndFor(t *testing.T) {
	store := NewStore()

	replaced := store.Set("coding", "write careful code")
	if replaced {
		t.Errorf("Set() replaced = true on first registration, want false")
	}
	if got := store.For("coding"); got != "write careful code" {
		t.Errorf("For(coding) = %q", got)
	}

	replaced = store.Set("coding", "second version")
	if !replaced {
		t.Errorf("Set() replaced = false on overwrite, want true")
	}
	if got := store.For("coding"); got != "second version" {
		t.Errorf("For(coding) after overwrite = %q, want last write", got)
	}
}

func TestStore_IDsSorted(t *testing.T) {
	store := NewStore()
	store.Set("zeta", "z")
	store.Set("alpha", "a")

	ids := store.IDs()
	if len(ids) != 2 || ids[0] != "alpha" || ids[1] != "zeta" {
		t.Errorf("IDs() = %v, want sorted [alpha zeta]", ids)
	}
}

func TestSeed_InstallsBuiltins(t *testing.T) {
	store := NewStore()
	Seed(store)

	for _, id := range []string{"general", "coding", "research"} {
		if !store.Known(id) {
			t.Errorf("Known(%s) = false after Seed", id)
		}
		if store.For(id) == DefaultInstruction {
			t.Errorf("For(%s) returned the default, want builtin text", id)
		}
	}
}
