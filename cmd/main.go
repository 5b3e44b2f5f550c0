package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/jonboulle/clockwork"
	"gopkg.in/yaml.v3"

	"renti/internal/app"
	"renti/internal/caching"
	"renti/internal/config"
)

type Globals struct {
	EnvFile string `name:"env-file" type:"path" help:"Load environment variables from this file instead of ./.env."`
}

type cli struct {
	Globals

	Serve serveCmd `cmd:"" default:"1" help:"Run the dashboard API, USSD callback and background jobs."`
	KPIs  kpisCmd  `cmd:"" name:"kpis" help:"Print the KPI overview of the demo data."`
}

type serveCmd struct{}

type kpisCmd struct {
	Format string `enum:"json,yaml" default:"json" help:"Output format (json or yaml)."`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var c cli
	kctx := kong.Parse(&c,
		kong.Name("renti"),
		kong.Description("Renti landlord dashboard backend."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	kctx.FatalIfErrorf(kctx.Run(&c.Globals))
}

func (g *Globals) loadConfig() (*config.AppConfig, error) {
	cfg, err := config.LoadConfig(g.EnvFile)
	if err != nil {
		return nil, fmt.Errorf("renti: load config: %w", err)
	}
	return cfg, nil
}

func (cmd *serveCmd) Run(ctx context.Context, g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	application, err := app.New(cfg, clockwork.NewRealClock(), nil)
	if err != nil {
		return fmt.Errorf("renti: build app: %w", err)
	}
	return application.Run(ctx)
}

func (cmd *kpisCmd) Run(ctx context.Context, g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	cache := caching.NewMemoryCacheService(16)
	defer cache.Close()

	application, err := app.New(cfg, clockwork.NewRealClock(), cache)
	if err != nil {
		return fmt.Errorf("renti: build app: %w", err)
	}
	kpis, err := application.Overview(ctx)
	if err != nil {
		return err
	}
	return writeKPIs(os.Stdout, kpis, cmd.Format)
}

// writeKPIs goes through JSON first so YAML keys match the API field names.
func writeKPIs(w io.Writer, kpis any, format string) error {
	data, err := json.MarshalIndent(kpis, "", "  ")
	if err != nil {
		return fmt.Errorf("renti: encode kpis: %w", err)
	}
	if format == "json" {
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	var generic map[string]any
	if err := json.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("renti: encode kpis: %w", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return fmt.Errorf("renti: encode kpis: %w", err)
	}
	return enc.Close()
}
