package voice

import "regexp"

// phonePattern accepts international numbers: optional leading +,
// 9 to 15 significant digits, no leading zero.
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{8,14}$`)

var phoneStripper = regexp.MustCompile(`[\s\-()]`)

// NormalizePhone strips spaces, hyphens and parentheses, validates the
// remainder against phonePattern and returns the number with a leading +.
// Rejecting locally keeps malformed numbers from burning upstream quota.
func NormalizePhone(raw string) (string, error) {
	cleaned := phoneStripper.ReplaceAllString(raw, "")
	if cleaned == "" {
		return "", &ValidationError{Field: "phoneNumber", Reason: "required"}
	}
	if !phonePattern.MatchString(cleaned) {
		return "", &ValidationError{Field: "phoneNumber", Reason: "must be international format with 9-15 digits"}
	}
	if cleaned[0] != '+' {
		cleaned = "+" + cleaned
	}
	return cleaned, nil
}
