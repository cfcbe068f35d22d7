package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/smarthub/hubfare/internal/catalog"
	"github.com/smarthub/hubfare/internal/config"
	"github.com/smarthub/hubfare/internal/logging"
	"github.com/smarthub/hubfare/internal/providers"
	"github.com/smarthub/hubfare/internal/service"
)

type deps struct {
	engine *service.Engine
	bridge *service.Bridge
}

func load(ctx context.Context) (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	// keep stdout clean for JSON
	log, err := logging.New("warn", "console")
	if err != nil {
		return nil, err
	}
	cat, err := catalog.Open(ctx, cfg.CatalogFile, cfg.CatalogDSN)
	if err != nil {
		return nil, err
	}
	return &deps{
		engine: service.NewEngine(cat),
		bridge: service.NewBridge(providers.NewKiwi(cfg), cat, cfg.ProviderTimeout, log),
	}, nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// Register adds every hubctl subcommand to root.
func Register(root *cobra.Command) {
	root.AddCommand(compareCmd())
	root.AddCommand(recommendCmd())
	root.AddCommand(searchCmd())
	root.AddCommand(hubStatsCmd())
	root.AddCommand(hubsCmd())
	root.AddCommand(routesCmd())
}
