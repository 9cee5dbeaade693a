package utils

import (
	"crypto/rand"
	"fmt"
	"regexp"
)

const passwordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// GeneratePassword returns a random password of n characters drawn from
// a letters/digits/punctuation alphabet (cryptographically random).
func GeneratePassword(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	pw := make([]byte, n)
	for i := 0; i < n; i++ {
		pw[i] = passwordChars[int(bytes[i])%len(passwordChars)]
	}
	return string(pw), nil
}

// ValidateEmail does a basic shape check on an email address.
func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}
