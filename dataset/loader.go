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


package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/poiesic/staffmatch/core"
)

// LoadResult holds the accepted profiles and the per-record rejections of a
// single load.
type LoadResult struct {
	Profiles []core.EmployeeProfile
	Rejected []*RecordError
}

// LoadFile loads a dataset file, dispatching on the extension (.json or .csv).
func LoadFile(path string) (*LoadResult, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".json" && ext != ".csv" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if ext == ".csv" {
		return LoadCSV(f)
	}
	return LoadJSON(f)
}

// LoadJSON reads a JSON array of employee records, or an object with an
// "employees" array. A whole-file parse failure is fatal; individual bad
// records are rejected and reported.
func LoadJSON(r io.Reader) (*LoadResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// Accept the wrapper form {"employees": [...]}
		var wrapper struct {
			Employees []json.RawMessage `json:"employees"`
		}
		if wrapErr := json.Unmarshal(data, &wrapper); wrapErr != nil || wrapper.Employees == nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
		}
		raw = wrapper.Employees
	}

	result := &LoadResult{}
	for i, msg := range raw {
		var profile core.EmployeeProfile
		if err := json.Unmarshal(msg, &profile); err != nil {
			result.reject(i, "", err)
			continue
		}
		result.accept(i, profile)
	}

	return result, nil
}

// LoadCSV reads a CSV file with a header row. List-valued columns (skills,
// projects, domain_experience) are semicolon-separated.
func LoadCSV(r io.Reader) (*LoadResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}
	if len(rows) == 0 {
		return &LoadResult{}, nil
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(row []string, name string) string {
		idx, ok := header[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	result := &LoadResult{}
	for i, row := range rows[1:] {
		profile := core.EmployeeProfile{
			Id:               field(row, "id"),
			Name:             field(row, "name"),
			Title:            field(row, "title"),
			Skills:           splitList(field(row, "skills")),
			Projects:         splitList(field(row, "projects")),
			DomainExperience: splitList(field(row, "domain_experience")),
			Location:         field(row, "location"),
			Bio:              field(row, "bio"),
		}

		if raw := field(row, "experience_years"); raw != "" {
			years, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				result.reject(i, profile.Id, fmt.Errorf("experience_years: %w", err))
				continue
			}
			profile.ExperienceYears = years
		}

		availability := field(row, "availability")
		if availability == "" {
			availability = "available"
		}
		parsed, err := core.ParseAvailability(availability)
		if err != nil {
			result.reject(i, profile.Id, err)
			continue
		}
		profile.Availability = parsed

		result.accept(i, profile)
	}

	return result, nil
}

// Merge combines two profile sets. Records in added replace existing records
// with the same id; genuinely new records are appended in input order.
func Merge(existing, added []core.EmployeeProfile) []core.EmployeeProfile {
	merged := make([]core.EmployeeProfile, len(existing))
	copy(merged, existing)

	byId := make(map[string]int, len(merged))
	for i, p := range merged {
		byId[p.Id] = i
	}

	for _, p := range added {
		if i, ok := byId[p.Id]; ok {
			merged[i] = p
			continue
		}
		byId[p.Id] = len(merged)
		merged = append(merged, p)
	}

	return merged
}

// accept normalizes and validates a record, tracking it either as a profile
// or as a rejection.
func (lr *LoadResult) accept(index int, profile core.EmployeeProfile) {
	if strings.TrimSpace(profile.Id) == "" && strings.TrimSpace(profile.Name) != "" {
		profile.Id = core.IDFromContent(profile.Name)
	}

	if err := core.ValidateProfile(&profile); err != nil {
		lr.reject(index, profile.Id, err)
		return
	}

	lr.Profiles = append(lr.Profiles, profile)
}

func (lr *LoadResult) reject(index int, id string, err error) {
	slog.Warn("rejecting dataset record", "index", index, "id", id, "err", err)
	lr.Rejected = append(lr.Rejected, &RecordError{Index: index, Id: id, Err: err})
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
