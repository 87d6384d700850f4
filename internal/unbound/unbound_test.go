package unbound

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/Salarvand-Education/unboundctl/internal/paths"
	"github.com/Salarvand-Education/unboundctl/internal/run"
)

const wantConfig = `server:
    interface: 127.0.0.1
    interface: ::1
    port: 53
    do-ip4: yes
    do-ip6: yes
    do-udp: yes
    do-tcp: yes
    access-control: 127.0.0.0/8 allow
    access-control: ::1 allow
    hide-identity: yes
    hide-version: yes
    harden-glue: yes
    harden-dnssec-stripped: yes
    use-caps-for-id: yes
    prefetch: yes
    cache-min-ttl: 300
    cache-max-ttl: 86400

forward-zone:
    name: "."
    forward-addr: 1.1.1.1
    forward-addr: 1.0.0.1
    forward-addr: 8.8.8.8
    forward-addr: 8.8.4.4
`

func TestRender(t *testing.T) {
	got := Render([]string{"1.1.1.1", "1.0.0.1", "8.8.8.8", "8.8.4.4"})
	if got != wantConfig {
		t.Errorf("Render() mismatch:\ngot:\n%s\nwant:\n%s", got, wantConfig)
	}
}

func TestRenderSingleForwarder(t *testing.T) {
	got := Render([]string{"9.9.9.9"})
	if !strings.HasSuffix(got, "forward-addr: 9.9.9.9\n") {
		t.Errorf("Render() = %q, want trailing forward-addr line", got)
	}
	if strings.Count(got, "forward-addr:") != 1 {
		t.Errorf("Render() has %d forward-addr lines, want 1", strings.Count(got, "forward-addr:"))
	}
}

func TestWriteConfigOverwrites(t *testing.T) {
	p := paths.Under(t.TempDir())
	m := New(p.UnboundDir, p.UnboundConf, run.NewFake())

	if err := m.WriteConfig([]string{"9.9.9.9"}); err != nil {
		t.Fatalf("WriteConfig() = %v", err)
	}
	if err := m.WriteConfig([]string{"1.1.1.1"}); err != nil {
		t.Fatalf("WriteConfig() = %v", err)
	}

	data, err := os.ReadFile(p.UnboundConf)
	if err != nil {
		t.Fatalf("ReadFile() = %v", err)
	}
	if strings.Contains(string(data), "9.9.9.9") {
		t.Error("old forwarder survived a rewrite")
	}
	if !strings.Contains(string(data), "forward-addr: 1.1.1.1") {
		t.Errorf("config = %q, missing new forwarder", data)
	}

	if !m.ConfigPresent() {
		t.Error("ConfigPresent() = false after write")
	}
}

func TestCheckAndSetupControl(t *testing.T) {
	f := run.NewFake()
	m := New("/etc/unbound", "/etc/unbound/unbound.conf.d/unboundctl.conf", f)
	ctx := context.Background()

	if err := m.SetupControl(ctx); err != nil {
		t.Fatalf("SetupControl() = %v", err)
	}
	if err := m.Check(ctx); err != nil {
		t.Fatalf("Check() = %v", err)
	}

	calls := f.Calls()
	if len(calls) != 2 || calls[0] != "unbound-control-setup" || calls[1] != "unbound-checkconf" {
		t.Errorf("calls = %q", calls)
	}
}

func TestRemoveAll(t *testing.T) {
	p := paths.Under(t.TempDir())
	m := New(p.UnboundDir, p.UnboundConf, run.NewFake())

	if err := m.WriteConfig([]string{"1.1.1.1"}); err != nil {
		t.Fatal(err)
	}
	if err := m.RemoveAll(); err != nil {
		t.Fatalf("RemoveAll() = %v", err)
	}
	if _, err := os.Stat(p.UnboundDir); !os.IsNotExist(err) {
		t.Error("configuration directory still present after RemoveAll")
	}
	if m.ConfigPresent() {
		t.Error("ConfigPresent() = true after RemoveAll")
	}

	// Removing an absent directory is not an error.
	if err := m.RemoveAll(); err != nil {
		t.Errorf("RemoveAll() on absent dir = %v", err)
	}
}
