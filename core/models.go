package core

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// IDFromContent generates a deterministic profile ID from text content using
// BLAKE2b hashing. Records that arrive without an explicit id (the dataset
// allows "id or name") get a stable id derived from their name.
func IDFromContent(text string) string {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return strconv.FormatUint(binary.LittleEndian.Uint64(sum), 16)
}

// Availability describes whether an employee can take on new work.
type Availability int

const (
	// AvailabilityAvailable means the employee can start immediately.
	AvailabilityAvailable Availability = iota + 1
	// AvailabilityBusy means the employee is committed to other work.
	AvailabilityBusy
	// AvailabilityOnLeave means the employee is temporarily away.
	AvailabilityOnLeave
)

// String returns the canonical lowercase form used in dataset files.
func (a Availability) String() string {
	switch a {
	case AvailabilityAvailable:
		return "available"
	case AvailabilityBusy:
		return "busy"
	case AvailabilityOnLeave:
		return "on-leave"
	default:
		return "unknown"
	}
}

// ParseAvailability converts a dataset string into an Availability.
// Accepts "available", "busy", "on-leave" and "on_leave", case-insensitive.
func ParseAvailability(s string) (Availability, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "available":
		return AvailabilityAvailable, nil
	case "busy":
		return AvailabilityBusy, nil
	case "on-leave", "on_leave", "on leave":
		return AvailabilityOnLeave, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidAvailability, s)
	}
}

// MarshalJSON emits the canonical string form.
func (a Availability) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts either the string enum or a boolean
// (true = available, false = busy), since both appear in upstream datasets.
func (a *Availability) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		if b {
			*a = AvailabilityAvailable
		} else {
			*a = AvailabilityBusy
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAvailability, string(data))
	}
	parsed, err := ParseAvailability(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// EmployeeProfile is a single employee record from the dataset.
type EmployeeProfile struct {
	Id               string       `json:"id"`
	Name             string       `json:"name"`
	Title            string       `json:"title,omitempty"`
	Skills           []string     `json:"skills"`
	ExperienceYears  float64      `json:"experience_years"`
	Projects         []string     `json:"projects,omitempty"`
	DomainExperience []string     `json:"domain_experience,omitempty"`
	Location         string       `json:"location,omitempty"`
	Availability     Availability `json:"availability"`
	Bio              string       `json:"bio,omitempty"`
}

// HasSkill reports whether the profile lists the skill, case-insensitive.
func (p *EmployeeProfile) HasSkill(skill string) bool {
	skill = strings.ToLower(strings.TrimSpace(skill))
	for _, s := range p.Skills {
		if strings.ToLower(strings.TrimSpace(s)) == skill {
			return true
		}
	}
	return false
}

// QueryIntent is the structured interpretation of a free-text query.
// It is transient, created once per request.
type QueryIntent struct {
	RawQuery         string
	MinExperience    *float64 // nil when the query carries no threshold
	RequiredSkills   []string // lowercased, empty when none recognized
	RequireAvailable bool
	SemanticText     string // text fed to the embedder; never empty
}

// RankedResult is a single entry in the ranked output of a query.
type RankedResult struct {
	ProfileID         string
	Rank              int // 1-based position after sorting
	Score             float64
	Similarity        float64
	MatchedSkills     []string
	MeetsExperience   bool
	MeetsAvailability bool
}
