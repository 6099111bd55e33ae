package domain

import "strings"

const minPasswordLength = 8

// commonPasswords is a short denylist of passwords seen constantly in breach
// dumps. Checked case-insensitively.
var commonPasswords = map[string]struct{}{
	"password":  {},
	"password1": {},
	"12345678":  {},
	"123456789": {},
	"qwerty123": {},
	"letmein":   {},
	"iloveyou":  {},
	"admin123":  {},
	"welcome1":  {},
	"abc12345":  {},
}

// CheckPasswordStrength validates a plaintext password against the account
// password policy and returns one message per violated rule. An empty slice
// means the password is acceptable.
func CheckPasswordStrength(password string) []string {
	var msgs []string

	if len(password) < minPasswordLength {
		msgs = append(msgs, "password must contain at least 8 characters")
	}

	numeric := password != ""
	for _, r := range password {
		if r < '0' || r > '9' {
			numeric = false
			break
		}
	}
	if numeric {
		msgs = append(msgs, "password cannot be entirely numeric")
	}

	if _, ok := commonPasswords[strings.ToLower(password)]; ok {
		msgs = append(msgs, "password is too common")
	}

	return msgs
}
