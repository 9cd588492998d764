package cli

import (
	"strings"
	"testing"
)

func TestReadTwoLayouts_Basic(t *testing.T) {
	start, goal, err := ReadTwoLayouts(strings.NewReader("9 7 8\n7 8 9\n"))
	if err != nil {
		t.Fatalf("ReadTwoLayouts: %v", err)
	}
	if start.Format() != "9 7 8" {
		t.Errorf("start = %q, want %q", start.Format(), "9 7 8")
	}
	if goal.Format() != "7 8 9" {
		t.Errorf("goal = %q, want %q", goal.Format(), "7 8 9")
	}
}

func TestReadTwoLayouts_MissingSecondLine(t *testing.T) {
	_, _, err := ReadTwoLayouts(strings.NewReader("9 7 8\n"))
	if err == nil {
		t.Fatal("expected an error for a missing second line")
	}
}

func TestReadTwoLayouts_InvalidToken(t *testing.T) {
	_, _, err := ReadTwoLayouts(strings.NewReader("9 seven 8\n7 8 9\n"))
	if err == nil {
		t.Fatal("expected a parse error")
	}
}
