package validators

import (
	"context"
	"net"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail lowercases and trims an address before it is stored or
// looked up.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func IsEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// DomainChecker decides whether an address can plausibly receive mail.
type DomainChecker interface {
	ValidDomain(ctx context.Context, email string) bool
}

// DNSChecker accepts domains with an MX record or, failing that, an address.
type DNSChecker struct {
	Resolver *net.Resolver
}

func NewDNSChecker() *DNSChecker {
	return &DNSChecker{Resolver: net.DefaultResolver}
}

func (d *DNSChecker) ValidDomain(ctx context.Context, email string) bool {
	domain, ok := domainOf(email)
	if !ok {
		return false
	}

	if mx, err := d.Resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := d.Resolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

// AnyDomain accepts every address. Used in tests and when DNS checks are off.
type AnyDomain struct{}

func (AnyDomain) ValidDomain(context.Context, string) bool {
	return true
}

func domainOf(email string) (string, bool) {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return "", false
	}
	return email[at+1:], true
}
