package main

import (
	"os"
	"os/signal"
	"syscall"

	"portfolio3d/internal/config"
	"portfolio3d/internal/contact"
	"portfolio3d/internal/site"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	backend "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio website",
	Long: `Serves the portfolio pages and the contact form endpoint. Contact
messages are relayed to the mail service when relay credentials are set,
and throttled per client through Redis when throttle.redisAddr is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Site.Addr = addr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		submitter, closeFn := buildSubmitter(cfg, log)
		defer closeFn()

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		profile := cfg.Site.Profile
		profile.MaxHistory = cfg.Editor.MaxHistory
		handler, err := site.NewHandler(site.Deps{
			Profile:  profile,
			Contact:  submitter,
			Logger:   log,
			Registry: reg,
		})
		if err != nil {
			return err
		}
		return site.ListenAndServe(ctx, cfg.Site.Addr, handler, log)
	},
}

// buildSubmitter wires the contact service from cfg. It returns a nil
// Submitter when no relay is configured so the endpoint reports itself
// unavailable.
func buildSubmitter(cfg *config.Config, log *zap.Logger) (site.Submitter, func()) {
	if !cfg.RelayConfigured() {
		log.Warn("contact relay not configured; contact form disabled")
		return nil, func() {}
	}

	var throttle contact.Throttle = contact.NopThrottle{}
	closeFn := func() {}
	if t := cfg.Throttle; t.RedisAddr != "" {
		client := backend.NewClient(&backend.Options{
			Addr:     t.RedisAddr,
			Password: t.Password,
			DB:       t.DB,
		})
		throttle = contact.NewRedisThrottle(client, t.Prefix, t.Limit, t.Window)
		closeFn = func() {
			if err := client.Close(); err != nil {
				log.Warn("close redis client", zap.Error(err))
			}
		}
		log.Info("contact throttle enabled",
			zap.String("redis", t.RedisAddr),
			zap.Int("limit", t.Limit),
			zap.Duration("window", t.Window))
	}

	relay := contact.NewRelayClient(cfg.Relay, nil)
	return contact.NewService(relay, throttle, cfg.Site.ContactDelay, log), closeFn
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Listen address (overrides site.addr)")
}

