package identity

import (
	"regexp"
	"strings"
)

var (
	// DefaultInstitutionalDomains are accepted by ValidateInstitutionalEmail when no domains are given.
	DefaultInstitutionalDomains = []string{"@uta.edu.ec", "@uta.ec"}

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

type EmailResult struct {
	Result
	IsInstitutional bool
}

// ValidateInstitutionalEmail requires a well-formed address that ends with one of domains, ignoring case.
func ValidateInstitutionalEmail(email string, domains ...string) EmailResult {
	if !emailPattern.MatchString(email) {
		return EmailResult{Result: invalid(ReasonEmailFormat, "email format is not valid")}
	}
	if len(domains) == 0 {
		domains = DefaultInstitutionalDomains
	}
	lower := strings.ToLower(email)
	for _, domain := range domains {
		if strings.HasSuffix(lower, strings.ToLower(domain)) {
			return EmailResult{Result: valid(), IsInstitutional: true}
		}
	}
	return EmailResult{Result: invalid(ReasonEmailDomain, "must use an institutional email ("+domains[0]+")")}
}
