package macrostore

import "testing"

func TestMemoryRegistryFirstMatchWins(t *testing.T) {
	a := NewFilter("dup", "first query", 0)
	b := NewFilter("dup", "second query", 0)
	reg := NewMemoryRegistry(a, b)

	got, found := reg.FindByName("dup")
	if !found {
		t.Fatalf("expected to find %q", "dup")
	}
	if got.ID != a.ID || got.QueryText != "first query" {
		t.Fatalf("FindByName returned %+v, want the first-registered filter %+v", got, a)
	}
}

func TestMemoryRegistryNotFound(t *testing.T) {
	reg := NewMemoryRegistry()
	if _, found := reg.FindByName("missing"); found {
		t.Fatalf("FindByName on an empty registry should report not found")
	}
}

func TestMemoryRegistryAdd(t *testing.T) {
	reg := NewMemoryRegistry()
	f := NewFilter("dev", "ext:go", 0)
	reg.Add(f)

	got, found := reg.FindByName("dev")
	if !found || got.ID != f.ID {
		t.Fatalf("Add then FindByName = %+v, %v, want %+v, true", got, found, f)
	}
}

func TestNewFilterGeneratesDistinctIdentities(t *testing.T) {
	a := NewFilter("same-name", "a", 0)
	b := NewFilter("same-name", "b", 0)
	if a.ID == b.ID {
		t.Fatalf("two filters aliasing the same name must still have distinct identities")
	}
}

func TestRegistryInterfaceSatisfiedByMemoryRegistry(t *testing.T) {
	var _ Registry = NewMemoryRegistry()
}
