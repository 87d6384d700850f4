package dnscheck

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/miekg/dns"
)

// startServer runs a DNS server on a random loopback port with the
// given handler and returns its address.
func startServer(t *testing.T, handler dns.Handler) string {
	t.Helper()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("ListenPacket() = %v", err)
	}

	srv := &dns.Server{PacketConn: pc, Handler: handler}
	go func() { _ = srv.ActivateAndServe() }()
	t.Cleanup(func() { _ = srv.Shutdown() })

	return pc.LocalAddr().String()
}

func answerHandler(t *testing.T) dns.Handler {
	return dns.HandlerFunc(func(w dns.ResponseWriter, r *dns.Msg) {
		m := new(dns.Msg)
		m.SetReply(r)
		rr, err := dns.NewRR(r.Question[0].Name + " 60 IN A 192.0.2.1")
		if err != nil {
			t.Errorf("NewRR() = %v", err)
		}
		m.Answer = append(m.Answer, rr)
		_ = w.WriteMsg(m)
	})
}

func TestProbeSuccess(t *testing.T) {
	addr := startServer(t, answerHandler(t))

	p := Probe{Server: addr, Name: "example.com"}
	rtt, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if rtt <= 0 {
		t.Errorf("rtt = %v, want > 0", rtt)
	}
}

func TestProbeServfail(t *testing.T) {
	addr := startServer(t, dns.HandlerFunc(func(w dns.ResponseWriter, r *dns.Msg) {
		m := new(dns.Msg)
		m.SetRcode(r, dns.RcodeServerFailure)
		_ = w.WriteMsg(m)
	}))

	p := Probe{Server: addr, Name: "example.com"}
	if _, err := p.Run(context.Background()); err == nil {
		t.Fatal("Run() = nil, want error for SERVFAIL")
	} else if !strings.Contains(err.Error(), "SERVFAIL") {
		t.Errorf("Run() = %v, want rcode in message", err)
	}
}

func TestProbeEmptyAnswer(t *testing.T) {
	addr := startServer(t, dns.HandlerFunc(func(w dns.ResponseWriter, r *dns.Msg) {
		m := new(dns.Msg)
		m.SetReply(r)
		_ = w.WriteMsg(m)
	}))

	p := Probe{Server: addr, Name: "example.com"}
	if _, err := p.Run(context.Background()); err == nil {
		t.Fatal("Run() = nil, want error for empty answer")
	}
}

func TestProbeUnreachable(t *testing.T) {
	// A port nothing listens on: bind one, close it, probe it.
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := pc.LocalAddr().String()
	pc.Close()

	p := Probe{Server: addr, Name: "example.com", Timeout: 500 * time.Millisecond}
	if _, err := p.Run(context.Background()); err == nil {
		t.Fatal("Run() = nil, want error for unreachable resolver")
	}
}
