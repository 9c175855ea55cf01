package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"casedesk/internal/dashboard/client"
	"casedesk/internal/dashboard/view"
	"casedesk/internal/platform/logger"
	"casedesk/pkg/platform/circuit"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	server   string
	timezone string
	timeout  time.Duration
	logLevel string
}

var rootCmd = &cobra.Command{
	Use:   "casedesk",
	Short: "Review compliance cases from the terminal",
	Long:  "casedesk reads cases, explainability data, documents and audit history\nfrom a running casedesk server and renders the review dashboard.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&rootFlags.server, "server", "http://localhost:8080", "casedesk server base URL")
	f.StringVar(&rootFlags.timezone, "timezone", "America/Argentina/Buenos_Aires", "display timezone for dates")
	f.DurationVar(&rootFlags.timeout, "timeout", 30*time.Second, "HTTP timeout per request")
	f.StringVar(&rootFlags.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(casesCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(copySummaryCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newEnv builds the component environment for the configured server.
func newEnv(cmd *cobra.Command) (view.Env, error) {
	loc, err := time.LoadLocation(rootFlags.timezone)
	if err != nil {
		return view.Env{}, fmt.Errorf("load timezone %q: %w", rootFlags.timezone, err)
	}
	base := strings.TrimRight(rootFlags.server, "/") + "/api"
	return view.Env{
		Fetcher:  client.New(base, &http.Client{Timeout: rootFlags.timeout}).WithBreaker(circuit.New("case-api", circuit.WithFailureThreshold(2))),
		Logger:   logger.NewWithWriter(cmd.ErrOrStderr(), "text", rootFlags.logLevel),
		Location: loc,
	}, nil
}
