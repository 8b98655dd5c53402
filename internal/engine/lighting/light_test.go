package lighting

import "testing"

func TestDirection(t *testing.T) {
	tests := []struct {
		name       string
		yaw, pitch float32
		want       [3]float32
	}{
		{"forward", 0, 0, [3]float32{0, 0, 1}},
		{"right", 90, 0, [3]float32{1, 0, 0}},
		{"behind", 180, 0, [3]float32{0, 0, -1}},
		{"overhead", 0, 90, [3]float32{0, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Direction(tt.yaw, tt.pitch)
			for i := range got {
				if diff := got[i] - tt.want[i]; diff > 1e-5 || diff < -1e-5 {
					t.Errorf("Direction(%v, %v) = %v, want %v", tt.yaw, tt.pitch, got, tt.want)
					break
				}
			}
		})
	}
}

func TestHeadlightMatchesZeroAngles(t *testing.T) {
	h := Headlight()
	l := New(0, 0, DefaultAmbient)
	if h != l {
		t.Errorf("expected %+v, got %+v", h, l)
	}
}

func TestNewClampsAmbient(t *testing.T) {
	if a := New(0, 0, -1).Ambient; a != 0 {
		t.Errorf("expected ambient 0, got %v", a)
	}
	if a := New(0, 0, 3).Ambient; a != 1 {
		t.Errorf("expected ambient 1, got %v", a)
	}
}
