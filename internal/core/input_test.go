package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Len() != 0 || f.Has(ActionFire) {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionFire)
	f.Set(ActionLeft)
	f.Set(ActionFire)
	f.Set(ActionNone)
	f.Set(Action(200))

	if f.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", f.Len())
	}
	if !f.Has(ActionFire) || !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Errorf("unexpected frame contents %v", f)
	}
	if got := f.String(); got != "[left fire]" {
		t.Errorf("String() = %q, expected [left fire]", got)
	}

	f.Clear()
	if f.Len() != 0 {
		t.Errorf("Clear left %v", f)
	}
}

func TestActionString(t *testing.T) {
	if ActionShield.String() != "shield" {
		t.Errorf("ActionShield = %q", ActionShield.String())
	}
	if Action(99).String() != "unknown" {
		t.Errorf("Action(99) = %q", Action(99).String())
	}
}

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, ""},
		{ColorGray, "245"},
		{ColorBrightWhite, "15"},
		{NumColors, ""},
	}
	for _, tc := range tests {
		if got := tc.c.ANSI(); got != tc.want {
			t.Errorf("Color(%d).ANSI() = %q, expected %q", tc.c, got, tc.want)
		}
	}
}
