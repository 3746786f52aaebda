package model

import (
	"fmt"
	"strings"
)

// Profile selects which notes file is targeted.
type Profile string

const (
	ProfileWork    Profile = "work"
	ProfilePrivate Profile = "private"
)

func (p Profile) String() string { return string(p) }

// ParseProfile resolves a profile name; the empty string means work.
func ParseProfile(s string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "work":
		return ProfileWork, nil
	case "private", "personal":
		return ProfilePrivate, nil
	}
	return "", fmt.Errorf("unknown profile %q (want work or private)", s)
}
