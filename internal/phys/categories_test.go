package phys

import "testing"

func TestMassUnits(t *testing.T) {
	tests := []struct {
		category string
		expected float64
	}{
		{"light", 1},
		{"medium", 5},
		{"heavy", 10},
	}

	for _, tt := range tests {
		got, err := MassUnits(tt.category)
		if err != nil {
			t.Fatalf("MassUnits(%q) returned error: %v", tt.category, err)
		}
		if got != tt.expected {
			t.Errorf("MassUnits(%q) = %v, want %v", tt.category, got, tt.expected)
		}
	}
}

func TestMassUnits_Unknown(t *testing.T) {
	if _, err := MassUnits("feather"); err == nil {
		t.Error("expected error for unknown mass category")
	}
}

func TestSwingStep(t *testing.T) {
	slow, err := SwingStep("slow")
	if err != nil {
		t.Fatal(err)
	}
	fast, err := SwingStep("fast")
	if err != nil {
		t.Fatal(err)
	}
	if slow <= 0 || fast <= slow {
		t.Errorf("expected 0 < slow < fast, got slow=%v fast=%v", slow, fast)
	}

	if _, err := SwingStep("ludicrous"); err == nil {
		t.Error("expected error for unknown speed category")
	}
}

func TestCelestialMassScales(t *testing.T) {
	expected := []float64{0.5, 1.0, 1.5, 2.0}
	if len(CelestialMassScales) != len(expected) {
		t.Fatalf("expected %d scales, got %d", len(expected), len(CelestialMassScales))
	}
	for i, s := range expected {
		if CelestialMassScales[i] != s {
			t.Errorf("scale %d = %v, want %v", i, CelestialMassScales[i], s)
		}
	}
}
