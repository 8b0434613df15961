package validators

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	namePattern = regexp.MustCompile(`^[a-zA-ZÑñ\s\-']+$`)

	// local-part @ domain . TLD of at least two characters
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

	// +63 / 63 / 0 prefix, then 9, then nine more digits
	phMobilePattern = regexp.MustCompile(`^(\+63|63|0)9\d{9}$`)

	// area code 2 (Metro Manila) or two-digit provincial codes, 7-8 digits
	phLandlinePattern = regexp.MustCompile(`^(\+63|63|0)(2|3[2-8]|4[2-9]|5[2-9]|6[2-9]|7[2-9]|8[2-9])\d{7,8}$`)

	addressPattern    = regexp.MustCompile(`^[a-zA-Z0-9Ññ\s,.#\-/():]+$`)
	addressHasLetters = regexp.MustCompile(`[a-zA-ZÑñ]`)

	htmlTagPattern  = regexp.MustCompile(`<[^>]*>`)
	safeTextPattern = regexp.MustCompile(`^[a-zA-Z0-9Ññ\s.,!?"'()#&@:;\-+=%/*]*$`)

	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// IsValidName accepts Filipino/Western names: letters (including Ñ/ñ),
// spaces, hyphens and apostrophes, at least two characters.
func IsValidName(name string) bool {
	trimmed := strings.TrimSpace(name)
	return utf8.RuneCountInString(trimmed) >= 2 && namePattern.MatchString(trimmed)
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// IsValidPHMobile matches Philippine mobile numbers such as 09171234567,
// +639171234567 and 639171234567. Spaces, hyphens and parentheses are
// stripped before matching.
func IsValidPHMobile(phone string) bool {
	return phMobilePattern.MatchString(phoneSeparators.Replace(phone))
}

// IsValidPHLandline matches 8-digit Metro Manila and 7-digit provincial
// landlines with their area codes.
func IsValidPHLandline(phone string) bool {
	return phLandlinePattern.MatchString(phoneSeparators.Replace(phone))
}

func IsValidPHPhone(phone string) bool {
	return IsValidPHMobile(phone) || IsValidPHLandline(phone)
}

// IsValidAddress accepts street addresses of at least five characters that
// contain at least one letter, so strings of digits or punctuation alone do
// not pass.
func IsValidAddress(address string, allowEmpty bool) bool {
	trimmed := strings.TrimSpace(address)
	if allowEmpty && trimmed == "" {
		return true
	}
	return utf8.RuneCountInString(trimmed) >= 5 &&
		addressPattern.MatchString(trimmed) &&
		addressHasLetters.MatchString(trimmed)
}

// IsSafeText screens free-text notes: no HTML tags, printable characters
// only. Empty text is fine.
func IsSafeText(text string) bool {
	if text == "" {
		return true
	}
	if htmlTagPattern.MatchString(text) {
		return false
	}
	return safeTextPattern.MatchString(text)
}
