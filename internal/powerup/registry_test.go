package powerup

import "testing"

func TestDefaultRegistryContents(t *testing.T) {
	reg := Default()
	for _, want := range []Type{TypeSpeed, TypeJump, TypeLife} {
		if !reg.Contains(want) {
			t.Fatalf("default registry missing %q", want)
		}
	}
	if reg.Len() != 3 {
		t.Fatalf("default registry has %d types, want 3", reg.Len())
	}
}

func TestTypesAreSorted(t *testing.T) {
	reg := NewRegistry()
	reg.Register("zeta")
	reg.Register("alpha")
	reg.Register("mid")

	types := reg.Types()
	want := []Type{"alpha", "mid", "zeta"}
	if len(types) != len(want) {
		t.Fatalf("Types() returned %d entries, want %d", len(types), len(want))
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("Types()[%d] = %q, want %q", i, types[i], want[i])
		}
	}
}

func TestRegisterIsIdempotent(t *testing.T) {
	reg := NewRegistry()
	reg.Register(TypeJump)
	reg.Register(TypeJump)
	if reg.Len() != 1 {
		t.Fatalf("duplicate registration changed registry size: %d", reg.Len())
	}
}

func TestValidateRejectsUnknownType(t *testing.T) {
	reg := Default()
	err := reg.Validate(map[Type]float64{TypeJump: 0.5, "shield": 0.5})
	if err == nil {
		t.Fatalf("expected error for unregistered type in probability table")
	}
	if err := reg.Validate(map[Type]float64{TypeJump: 1.0}); err != nil {
		t.Fatalf("valid table rejected: %v", err)
	}
}
