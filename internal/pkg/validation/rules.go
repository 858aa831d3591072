package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Indian mobile number, 10 digits with optional +91 prefix
	PhonePattern = `^(\+91)?[6-9]\d{9}$`

	// Slug pattern, output of the slug deriver
	SlugPattern = `^[a-z0-9]+(-[a-z0-9]+)*$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Phone *regexp.Regexp
	Slug  *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Phone: regexp.MustCompile(PhonePattern),
	Slug:  regexp.MustCompile(SlugPattern),
}

// IsValidSlug reports whether s is a well-formed slug
func IsValidSlug(s string) bool {
	return s != "" && CompiledPatterns.Slug.MatchString(s)
}

// IsValidPhone reports whether s looks like an Indian mobile number
func IsValidPhone(s string) bool {
	return CompiledPatterns.Phone.MatchString(s)
}
