package flow

import "testing"

func TestIntClamp_Apply(t *testing.T) {
	clamp := IntClamp{Min: 1, Max: 10, Default: 5}

	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"in range", "7", 7},
		{"at min", "1", 1},
		{"at max", "10", 10},
		{"below min", "0", 1},
		{"above max", "11", 10},
		{"negative", "-3", 1},
		{"non-numeric", "abc", 5},
		{"empty", "", 5},
		{"float input", "3.5", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clamp.Apply(tt.raw); got != tt.want {
				t.Errorf("Apply(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestForm_SetClampedOnEveryEdit(t *testing.T) {
	f := NewForm()
	clamp := IntClamp{Min: 1, Max: 8, Default: 4}

	f.SetClamped("lessonsPerModule", "12", clamp)
	if got := f.Int("lessonsPerModule", 0); got != 8 {
		t.Errorf("after edit %q: got %d, want 8", "12", got)
	}

	f.SetClamped("lessonsPerModule", "x", clamp)
	if got := f.Int("lessonsPerModule", 0); got != 4 {
		t.Errorf("after edit %q: got %d, want default 4", "x", got)
	}
}

func TestForm_IntDefault(t *testing.T) {
	f := NewForm()
	if got := f.Int("missing", 9); got != 9 {
		t.Errorf("Int on unset field = %d, want fallback 9", got)
	}
}
