package core

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same ID",
			content: "Alice Johnson",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "A much longer name string that should still hash consistently",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %s vs %s", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("Alice")
	id2 := IDFromContent("Bob")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestParseAvailability(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Availability
		wantErr error
	}{
		{name: "available", input: "available", want: AvailabilityAvailable},
		{name: "uppercase", input: "AVAILABLE", want: AvailabilityAvailable},
		{name: "busy", input: "busy", want: AvailabilityBusy},
		{name: "on-leave hyphenated", input: "on-leave", want: AvailabilityOnLeave},
		{name: "on_leave underscored", input: "on_leave", want: AvailabilityOnLeave},
		{name: "padded", input: "  busy ", want: AvailabilityBusy},
		{name: "unknown", input: "vacationing", wantErr: ErrInvalidAvailability},
		{name: "empty", input: "", wantErr: ErrInvalidAvailability},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAvailability(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseAvailability(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAvailability(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAvailability(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAvailability_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Availability
		wantErr bool
	}{
		{name: "string enum", input: `"available"`, want: AvailabilityAvailable},
		{name: "bool true", input: `true`, want: AvailabilityAvailable},
		{name: "bool false", input: `false`, want: AvailabilityBusy},
		{name: "on-leave", input: `"on-leave"`, want: AvailabilityOnLeave},
		{name: "bad string", input: `"maybe"`, wantErr: true},
		{name: "number", input: `3`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Availability
			err := json.Unmarshal([]byte(tt.input), &a)
			if tt.wantErr {
				if err == nil {
					t.Errorf("UnmarshalJSON(%s) expected error, got none", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("UnmarshalJSON(%s) unexpected error: %v", tt.input, err)
			}
			if a != tt.want {
				t.Errorf("UnmarshalJSON(%s) = %v, want %v", tt.input, a, tt.want)
			}
		})
	}
}

func TestAvailability_RoundTrip(t *testing.T) {
	for _, a := range []Availability{AvailabilityAvailable, AvailabilityBusy, AvailabilityOnLeave} {
		data, err := json.Marshal(a)
		if err != nil {
			t.Fatalf("Marshal(%v) error: %v", a, err)
		}
		var back Availability
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal(%s) error: %v", data, err)
		}
		if back != a {
			t.Errorf("round trip changed %v to %v", a, back)
		}
	}
}

func TestEmployeeProfile_HasSkill(t *testing.T) {
	profile := &EmployeeProfile{
		Id:     "e1",
		Name:   "Alice",
		Skills: []string{"Python", "Machine Learning", " Go "},
	}

	tests := []struct {
		name  string
		skill string
		want  bool
	}{
		{name: "exact", skill: "Python", want: true},
		{name: "case-insensitive", skill: "python", want: true},
		{name: "multi-word", skill: "machine learning", want: true},
		{name: "padded entry", skill: "go", want: true},
		{name: "missing", skill: "java", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := profile.HasSkill(tt.skill); got != tt.want {
				t.Errorf("HasSkill(%q) = %v, want %v", tt.skill, got, tt.want)
			}
		})
	}
}
