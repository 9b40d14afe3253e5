package escseq

import "testing"

func TestClearScreen(t *testing.T) {
	SetColors(true)
	result := ClearScreen()
	expected := string(eraseScreen) + string(cursorHome)
	if result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}
}

func TestColorStripping(t *testing.T) {
	// Ensure colors are enabled first
	SetColors(true)
	if len(CyanBoldText("test")) == 4 {
		t.Error("CyanBoldText should contain escape sequences when colors are enabled")
	}

	SetColors(false)
	if CyanBoldText("test") != "test" {
		t.Errorf("CyanBoldText should be plain 'test' when colors are disabled, got %q", CyanBoldText("test"))
	}

	// Reset for other tests
	SetColors(true)
}
