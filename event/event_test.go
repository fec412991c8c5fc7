package event

import "testing"

func TestFunctionKeys(t *testing.T) {
	if F(1) != KeyF1 || F(12) != KeyF12 {
		t.Errorf("F(1)=%v F(12)=%v", F(1), F(12))
	}
	if F(5).String() != "F5" {
		t.Errorf("F(5).String() = %q", F(5).String())
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for F(13)")
		}
	}()
	F(13)
}

func TestEventComparability(t *testing.T) {
	if Char('a') != Char('a') {
		t.Error("identical char events compare unequal")
	}
	if Char('a') == CtrlChar('a') {
		t.Error("char and ctrl-char events compare equal")
	}
	if Ctrl(KeyUp) == Alt(KeyUp) {
		t.Error("differently modified keys compare equal")
	}

	m := Mouse(Press(MouseLeft), Pos{X: 1, Y: 2})
	if m != Mouse(Press(MouseLeft), Pos{X: 1, Y: 2}) {
		t.Error("identical mouse events compare unequal")
	}
	if m == Mouse(Release(MouseLeft), Pos{X: 1, Y: 2}) {
		t.Error("press and release compare equal")
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{Char('x'), `Char('x')`},
		{CtrlChar('a'), `CtrlChar('a')`},
		{KeyPress(KeyEsc), "Key(Esc)"},
		{CtrlAlt(KeyDel), "CtrlAlt(Del)"},
		{Mouse(WheelDown(), Pos{X: 3, Y: 4}), "Mouse(WheelDown at 3,4)"},
		{Exit(), "Exit"},
		{WindowResize(), "WindowResize"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
