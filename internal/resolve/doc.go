// Package resolve performs reverse-DNS lookups for report rendering.
//
// Two implementations are provided behind the Resolver interface:
//   - SystemResolver: Uses the operating system resolver via net.Resolver
//   - ServerResolver: Sends PTR queries directly to a configured DNS server
//
// Design decision: We hide resolution behind a small interface so the
// report writers can be tested with a stub resolver and so the CLI can
// swap in the server-directed resolver when --resolver is given.
package resolve
