// Package adpulse parses server command flags and starts the MCP server
// on the selected transport.
package adpulse

import (
	"context"
	"flag"
	"log"
	"net"
	"strconv"

	campaign "github.com/louisbranch/adpulse/internal/campaign/domain"
	"github.com/louisbranch/adpulse/internal/mcp/service"
	"github.com/louisbranch/adpulse/internal/platform/branding"
	"github.com/louisbranch/adpulse/internal/platform/cmd"
)

// Config holds the server command configuration.
type Config struct {
	Host      string `env:"HOST"              envDefault:"0.0.0.0"`
	Port      int    `env:"PORT"              envDefault:"8000"`
	Transport string `env:"ADPULSE_TRANSPORT" envDefault:"http"`
	Locale    string `env:"ADPULSE_LOCALE"    envDefault:"en-US"`

	ReportTargetCPA        float64 `env:"ADPULSE_REPORT_TARGET_CPA"         envDefault:"150"`
	ReportDailyBudgetLimit float64 `env:"ADPULSE_REPORT_DAILY_BUDGET_LIMIT" envDefault:"1000"`

	// Reserved for the Direct API provider. The demo provider ignores
	// them.
	YandexAPIToken string `env:"YANDEX_API_TOKEN"`
	YandexAPIURL   string `env:"YANDEX_API_URL"`
}

// HTTPAddr joins the configured host and port into a listen address.
func (c Config) HTTPAddr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := cmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Host, "host", cfg.Host, "HTTP bind host")
	fs.IntVar(&cfg.Port, "port", cfg.Port, "HTTP bind port")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Serving locale for tool payloads")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP server with telemetry installed and blocks until the
// context ends.
func Run(ctx context.Context, cfg Config) error {
	return cmd.RunWithTelemetry(ctx, cmd.ServiceMCP, func(runCtx context.Context) error {
		logStartup(cfg)
		return service.Run(runCtx, serviceConfig(cfg))
	})
}

// serviceConfig maps command configuration onto the MCP service.
func serviceConfig(cfg Config) service.Config {
	return service.Config{
		Transport: service.TransportKind(cfg.Transport),
		HTTPAddr:  cfg.HTTPAddr(),
		Locale:    cfg.Locale,
		ReportTargets: campaign.Targets{
			TargetCPA:        cfg.ReportTargetCPA,
			DailyBudgetLimit: cfg.ReportDailyBudgetLimit,
		},
	}
}

// logStartup prints the banner once so operators can see the effective
// transport, address, and locale.
func logStartup(cfg Config) {
	log.Printf("Starting %s MCP server (transport: %s)", branding.AppName, cfg.Transport)
	if service.TransportKind(cfg.Transport) == service.TransportHTTP {
		log.Printf("Listening on http://%s/mcp", cfg.HTTPAddr())
	}
	log.Printf("Locale: %s", cfg.Locale)
}
