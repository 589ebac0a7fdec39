package resolve

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"strings"

	"github.com/miekg/dns"
)

// defaultDNSPort is appended to a server address given without a port.
const defaultDNSPort = "53"

// ServerResolver sends PTR queries directly to a single DNS server,
// bypassing the system resolver. This is useful when the occurrence
// report should be resolved against an internal nameserver that knows
// the scanned network, rather than whatever the host is configured with.
type ServerResolver struct {
	client *dns.Client
	server string
}

// NewServerResolver creates a Resolver that queries the DNS server at
// addr, given as "host:port" or bare "host" (port 53 assumed).
func NewServerResolver(addr string) *ServerResolver {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, defaultDNSPort)
	}
	return &ServerResolver{
		client: new(dns.Client),
		server: addr,
	}
}

// Server returns the server address queried by this resolver.
func (r *ServerResolver) Server() string {
	return r.server
}

// LookupAddr sends a PTR query for addr to the configured server and
// returns the first PTR target, with any trailing dot removed.
func (r *ServerResolver) LookupAddr(ctx context.Context, addr netip.Addr) (string, error) {
	name, err := dns.ReverseAddr(addr.String())
	if err != nil {
		return "", fmt.Errorf("could not build reverse name for %s: %w", addr, err)
	}

	msg := new(dns.Msg)
	msg.SetQuestion(name, dns.TypePTR)

	resp, _, err := r.client.ExchangeContext(ctx, msg, r.server)
	if err != nil {
		return "", fmt.Errorf("PTR query to %s failed: %w", r.server, err)
	}
	if resp.Rcode != dns.RcodeSuccess {
		return "", fmt.Errorf("PTR query for %s returned %s", addr, dns.RcodeToString[resp.Rcode])
	}

	for _, rr := range resp.Answer {
		if ptr, ok := rr.(*dns.PTR); ok {
			return strings.TrimSuffix(ptr.Ptr, "."), nil
		}
	}
	return "", fmt.Errorf("no PTR record for %s", addr)
}
