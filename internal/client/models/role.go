package models

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleExecutive Role = "executive"
)

// ParseRole accepts "admin" or "executive" in any letter case.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleExecutive:
		return RoleExecutive, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Title returns the capitalized form used in prompts, e.g. "Admin".
func (r Role) Title() string {
	if r == "" {
		return ""
	}
	return strings.ToUpper(string(r[:1])) + string(r[1:])
}
