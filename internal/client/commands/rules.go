package commands

import (
	"regexp"
	"slices"
	"strings"
)

var (
	upiPattern    = regexp.MustCompile(`^[\w.-]+@[\w]+$`)
	mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
	namePattern   = regexp.MustCompile(`^[A-Za-z ]+$`)
)

// Banks that may back a UPI entry.
var Banks = []string{
	"State Bank of India",
	"HDFC Bank",
	"ICICI Bank",
	"Axis Bank",
	"Punjab National Bank",
	"Kotak Mahindra Bank",
	"Bank of Baroda",
	"Canara Bank",
	"Union Bank of India",
	"IndusInd Bank",
}

const DefaultDesignation = "Executive"

var Designations = []string{"Manager", "Supervisor", "Team Lead", "Coordinator", DefaultDesignation}

var Permissions = []string{"Read", "Write", "Both"}

const (
	ActionApprove = "approve"
	ActionBlock   = "block"
)

func ValidUPI(s string) bool    { return upiPattern.MatchString(s) }
func ValidMobile(s string) bool { return mobilePattern.MatchString(s) }

func ValidName(s string) bool {
	return strings.TrimSpace(s) != "" && namePattern.MatchString(s)
}

func ValidBank(s string) bool { return slices.Contains(Banks, s) }
