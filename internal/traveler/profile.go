// Package traveler supplies the passenger profile attached to a
// booking. The profile is external input: it flows into the booking
// payload unchanged.
package traveler

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mzielin/kiwibook/pkg/protocol"
)

// Default returns the built-in test passenger, used when no profile
// file is given. In a production setup this would come from a user
// profile or a completed booking form.
func Default() *protocol.TravelerProfile {
	return &protocol.TravelerProfile{
		Name:        "test",
		Surname:     "test",
		Title:       "ms",
		Phone:       "+44 45662344432",
		Birthday:    326246400,
		Expiration:  1760054400,
		CardNo:      "XXXXXXXX",
		Nationality: "CZ",
		Email:       "email.address@gmail.com",
		Category:    "adults",
	}
}

// Load reads a traveler profile from a YAML file.
func Load(path string) (*protocol.TravelerProfile, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is user-provided input
	if err != nil {
		return nil, fmt.Errorf("failed to read traveler profile: %w", err)
	}

	var profile protocol.TravelerProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse traveler profile %s: %w", path, err)
	}

	return &profile, nil
}

// Resolve returns the profile at path, or the built-in default when no
// path was given.
func Resolve(path string) (*protocol.TravelerProfile, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
