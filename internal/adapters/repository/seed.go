package repository

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/mergington/internal/domain/model"
)

// DefaultSeed returns the built-in activity catalog.
func DefaultSeed() []model.Activity {
	return []model.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Basketball Team",
			Description:     "Practice drills and compete in inter-school basketball games",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu"},
		},
		{
			Name:            "Tennis Club",
			Description:     "Improve your serve and play singles and doubles matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 10,
			Participants:    []string{"lucas@mergington.edu"},
		},
		{
			Name:            "Art Studio",
			Description:     "Explore painting, drawing and sculpture",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"amelia@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Act, direct and produce school theater performances",
			Schedule:        "Thursdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 25,
			Participants:    []string{"isabella@mergington.edu"},
		},
		{
			Name:            "Debate Team",
			Description:     "Sharpen public speaking and argumentation skills",
			Schedule:        "Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"ethan@mergington.edu"},
		},
		{
			Name:            "Science Club",
			Description:     "Hands-on experiments and science fair preparation",
			Schedule:        "Mondays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"mia@mergington.edu"},
		},
	}
}

// seedFile is the YAML layout read by LoadSeedFile:
//
//	activities:
//	  - name: Chess Club
//	    description: ...
//	    schedule: ...
//	    max_participants: 12
//	    participants: [michael@mergington.edu]
type seedFile struct {
	Activities []model.Activity `koanf:"activities"`
}

// LoadSeedFile reads an activity catalog from a YAML file.
func LoadSeedFile(path string) ([]model.Activity, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load seed %s: %w", path, err)
	}

	var sf seedFile
	if err := k.UnmarshalWithConf("", &sf, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decode seed %s: %w", path, err)
	}
	if err := validateSeed(sf.Activities); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sf.Activities, nil
}

func validateSeed(activities []model.Activity) error {
	if len(activities) == 0 {
		return fmt.Errorf("%w: no activities", ErrInvalidSeed)
	}
	seen := make(map[string]struct{}, len(activities))
	for i, a := range activities {
		name := strings.TrimSpace(a.Name)
		switch {
		case name == "":
			return fmt.Errorf("%w: activity %d has no name", ErrInvalidSeed, i)
		case a.MaxParticipants < 0:
			return fmt.Errorf("%w: %q has negative max_participants", ErrInvalidSeed, a.Name)
		}
		if _, dup := seen[a.Name]; dup {
			return fmt.Errorf("%w: duplicate activity %q", ErrInvalidSeed, a.Name)
		}
		seen[a.Name] = struct{}{}
	}
	return nil
}
