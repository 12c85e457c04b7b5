// HADIKIT - терминальная витрина джерси с AI стилистом.
// Основная точка входа: без аргументов запускает TUI.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ilkoid/hadikit/internal/ui"
	appcomponents "github.com/ilkoid/hadikit/pkg/app"
	"github.com/ilkoid/hadikit/pkg/utils"
	"github.com/spf13/cobra"
)

const version = "3.0"

// cli - глобальные флаги и компоненты, собранные в PersistentPreRunE.
type cli struct {
	configPath string
	debug      bool

	components *appcomponents.Components
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "hadikit",
		Short: "HADIKIT - premium jersey storefront in your terminal",
		Long: `HADIKIT is a terminal storefront for football, basketball, baseball
and classic jerseys with an AI stylist.

Run without arguments to start the interactive storefront.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			utils.Info("Application exited normally")
			utils.Close()
		},
		RunE: c.runTUI,
	}

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to config.yaml")
	root.PersistentFlags().BoolVar(&c.debug, "debug", false, "enable debug logging")

	root.AddCommand(newAskCmd(c), newCatalogCmd(c))
	return root
}

// setup загружает конфиг, поднимает логгер и собирает компоненты.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, cfgPath, err := appcomponents.InitializeConfig(&appcomponents.DefaultConfigPathFinder{ConfigFlag: c.configPath})
	if err != nil {
		return err
	}

	if err := utils.InitLogger(cfg.App.LogDir, c.debug || cfg.App.Debug); err != nil {
		log.Printf("Warning: failed to init logger: %v", err)
	}
	utils.Info("Application started", "version", version, "command", cmd.Name())
	utils.Info("Config loaded", "path", cfgPath, "default_model", cfg.Models.DefaultChat)

	c.components, err = appcomponents.Initialize(cmdContext(cmd), cfg, cfgPath)
	return err
}

// runTUI запускает Bubble Tea программу.
func (c *cli) runTUI(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmdContext(cmd))
	defer utils.SetupGracefulShutdown(cancel)()

	comps := c.components
	model := ui.New(comps.State, ui.Options{
		Context:      ctx,
		Renderer:     comps.Renderer,
		Advisor:      comps.Stylist,
		Commands:     comps.Commands,
		Scheme:       comps.Scheme,
		ConfirmDelay: comps.Config.Checkout.ConfirmDelay,
		SuccessDelay: comps.Config.Checkout.SuccessDelay,
		Debug:        c.debug || comps.Config.App.Debug,
	})

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	// Без AltScreen можно выделять текст мышкой
	if comps.Config.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	utils.Info("Starting TUI")
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		utils.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
