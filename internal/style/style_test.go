package style

import "testing"

func TestDisabledPassthrough(t *testing.T) {
	prev := Enabled()
	defer SetEnabled(prev)

	SetEnabled(false)
	if got := Warning("aviso"); got != "aviso" {
		t.Errorf("Warning with color off = %q, want plain text", got)
	}
	if got := Bold("texto"); got != "texto" {
		t.Errorf("Bold with color off = %q, want plain text", got)
	}
}

func TestEnabledToggle(t *testing.T) {
	prev := Enabled()
	defer SetEnabled(prev)

	SetEnabled(true)
	if !Enabled() {
		t.Error("Enabled() = false after SetEnabled(true)")
	}
	SetEnabled(false)
	if Enabled() {
		t.Error("Enabled() = true after SetEnabled(false)")
	}
}
