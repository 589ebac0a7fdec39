package resolve

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"strings"
)

// Resolver performs reverse-DNS lookups.
// Implementations have a narrow contract: return the hostname for the
// given address, or an error when the address has no name. Lookups are
// never retried.
type Resolver interface {
	// LookupAddr returns the hostname for addr.
	LookupAddr(ctx context.Context, addr netip.Addr) (string, error)
}

// SystemResolver resolves hostnames through the operating system
// resolver (nsswitch, /etc/hosts, configured nameservers).
type SystemResolver struct {
	resolver *net.Resolver
}

// NewSystemResolver creates a Resolver backed by the system resolver.
func NewSystemResolver() *SystemResolver {
	return &SystemResolver{resolver: &net.Resolver{}}
}

// LookupAddr performs a reverse lookup for addr and returns the first
// name found, with any trailing dot removed.
func (r *SystemResolver) LookupAddr(ctx context.Context, addr netip.Addr) (string, error) {
	names, err := r.resolver.LookupAddr(ctx, addr.String())
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no PTR record for %s", addr)
	}
	return strings.TrimSuffix(names[0], "."), nil
}
