package validators

import (
	"regexp"
	"strings"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_.]{3,50}$`)

// IsUsernameValid accepts 3-50 word characters, dots and underscores.
func IsUsernameValid(username string) bool {
	return usernameRe.MatchString(username)
}

// IsEmailValid is a syntactic check only; deliverability is not our problem.
func IsEmailValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if !strings.Contains(domain, ".") {
		return false
	}
	if strings.ContainsAny(email, " \t") {
		return false
	}

	return true
}
