package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Salarvand-Education/unboundctl/internal/unbound"
)

var statusJSONOutput bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show resolver and pointer file state",
	Long: `Display the current provisioning state:

  - Whether the unbound service is active
  - Whether the resolver configuration is in place
  - The resolver pointer file's nameservers and immutable attribute`,
	Run: func(cmd *cobra.Command, args []string) {
		status := getStatus(cmd.Context())

		if statusJSONOutput {
			outputStatusJSON(status)
		} else {
			outputStatusText(status)
		}
	},
}

// Status represents the provisioning state of the host.
type Status struct {
	ServiceActive bool     `json:"service_active"`
	ConfigPresent bool     `json:"config_present"`
	Nameservers   []string `json:"nameservers"`
	PointerLocked bool     `json:"pointer_locked"`
}

func getStatus(ctx context.Context) Status {
	seq := newSequencer(loadConfig())

	status := Status{
		ServiceActive: seq.Units().IsActive(ctx, unbound.Unit),
		ConfigPresent: seq.Resolver().ConfigPresent(),
		Nameservers:   []string{},
	}

	if content, err := seq.Pointer().Read(); err == nil {
		for _, line := range strings.Split(content, "\n") {
			fields := strings.Fields(line)
			if len(fields) == 2 && fields[0] == "nameserver" {
				status.Nameservers = append(status.Nameservers, fields[1])
			}
		}
	}

	if locked, err := seq.Pointer().Locked(ctx); err == nil {
		status.PointerLocked = locked
	}

	return status
}

func outputStatusText(status Status) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "unbound service:\t%s\n", activeString(status.ServiceActive))
	fmt.Fprintf(w, "resolver config:\t%s\n", presentString(status.ConfigPresent))
	if len(status.Nameservers) == 0 {
		fmt.Fprintf(w, "nameservers:\tnone\n")
	} else {
		fmt.Fprintf(w, "nameservers:\t%s\n", strings.Join(status.Nameservers, ", "))
	}
	fmt.Fprintf(w, "resolv.conf lock:\t%s\n", lockedString(status.PointerLocked))
	w.Flush()
}

func outputStatusJSON(status Status) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(status)
}

func activeString(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}

func presentString(present bool) string {
	if present {
		return "present"
	}
	return "missing"
}

func lockedString(locked bool) string {
	if locked {
		return "immutable"
	}
	return "unlocked"
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSONOutput, "json", false, "Output in JSON format")
	rootCmd.AddCommand(statusCmd)
}
