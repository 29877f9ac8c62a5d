package models

import "testing"

func TestNormalizePosition(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Position
	}{
		{"captain", "Captain", PositionCaptain},
		{"member", "Member", PositionMember},
		{"empty defaults to member", "", PositionMember},
		{"unknown defaults to member", "Coach", PositionMember},
		{"case sensitive", "captain", PositionMember},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePosition(tt.input); got != tt.want {
				t.Errorf("NormalizePosition(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
