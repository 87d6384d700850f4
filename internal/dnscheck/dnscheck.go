// Package dnscheck probes a resolver with a real DNS query.
//
// The probe is how install verifies the freshly restarted resolver
// actually answers, instead of trusting the service manager's idea of
// "active".
package dnscheck

import (
	"context"
	"fmt"
	"time"

	"github.com/miekg/dns"
)

// DefaultTimeout bounds a single probe exchange.
const DefaultTimeout = 3 * time.Second

// Probe describes one resolution attempt.
type Probe struct {
	// Server is the resolver address, host:port.
	Server string

	// Name is the domain to resolve.
	Name string

	// Timeout bounds the exchange. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Run sends an A query for the probe name and returns the round-trip
// time. A transport failure, a non-success rcode, and an empty answer
// section are all failures.
func (p Probe) Run(ctx context.Context) (time.Duration, error) {
	timeout := p.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	client := &dns.Client{Timeout: timeout}

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(p.Name), dns.TypeA)
	msg.RecursionDesired = true

	resp, rtt, err := client.ExchangeContext(ctx, msg, p.Server)
	if err != nil {
		return 0, fmt.Errorf("query %s against %s failed: %w", p.Name, p.Server, err)
	}
	if resp.Rcode != dns.RcodeSuccess {
		return rtt, fmt.Errorf("query %s against %s returned %s", p.Name, p.Server, dns.RcodeToString[resp.Rcode])
	}
	if len(resp.Answer) == 0 {
		return rtt, fmt.Errorf("query %s against %s returned no answers", p.Name, p.Server)
	}
	return rtt, nil
}
