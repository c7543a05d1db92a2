// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"strings"
)

// ValidateProfile validates an EmployeeProfile according to domain rules.
//
// Validation rules:
//   - Id or Name must be present (Id can be derived from Name)
//   - Skills must contain at least one non-blank entry
//   - ExperienceYears must not be negative
//   - Availability must be a known value
//
// NOT validated:
//   - Title, Projects, DomainExperience, Location, Bio (optional fields)
func ValidateProfile(profile *EmployeeProfile) error {
	if profile == nil {
		return fmt.Errorf("%w: profile is nil", ErrInvalidProfile)
	}

	if strings.TrimSpace(profile.Id) == "" && strings.TrimSpace(profile.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrMissingIdentity)
	}

	if !hasNonBlank(profile.Skills) {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptySkills)
	}

	if profile.ExperienceYears < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrNegativeExperience)
	}

	if err := ValidateAvailability(profile.Availability); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}

	return nil
}

// ValidateAvailability validates that an Availability has a known value.
func ValidateAvailability(availability Availability) error {
	switch availability {
	case AvailabilityAvailable, AvailabilityBusy, AvailabilityOnLeave:
		return nil
	default:
		return fmt.Errorf("%w: value %d", ErrInvalidAvailability, availability)
	}
}

func hasNonBlank(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
