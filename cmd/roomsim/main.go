package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hearthlab/roomsim/cmd/app"
	"github.com/hearthlab/roomsim/internal/publish/mqttpub"
	"github.com/hearthlab/roomsim/internal/report"
	"github.com/hearthlab/roomsim/internal/room"
	"github.com/hearthlab/roomsim/internal/sim"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:           "roomsim",
		Short:         "lumped-parameter thermal model of a single heated room",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config file (.yaml/.yml/.json)")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "run",
			Short: "run the simulation and report the result",
			RunE:  runSimulation,
		},
		&cobra.Command{
			Use:   "params",
			Short: "print the derived physical constants and exit",
			RunE:  printParams,
		},
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runSimulation(_ *cobra.Command, _ []string) error {
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return err
	}
	params, err := cfg.PipelineParams()
	if err != nil {
		return err
	}

	p, err := sim.New(params)
	if err != nil {
		return err
	}

	log.Printf("roomsim: stepping %d s, drive %s", params.Horizon, params.Mode)
	res, err := p.Run()
	if err != nil {
		return err
	}

	fmt.Println(p.Summary())
	if every := cfg.Report.TableEverySeconds; every > 0 {
		fmt.Println()
		if err := report.WriteTable(os.Stdout, res, every); err != nil {
			return err
		}
	}
	if cfg.Report.Plot {
		fmt.Println()
		fmt.Println(report.TemperaturePlot(res, 80, 10))
	}
	if cfg.Report.CSVPath != "" {
		if err := writeCSVFile(cfg.Report.CSVPath, res); err != nil {
			return err
		}
		log.Printf("history written to %s", cfg.Report.CSVPath)
	}

	if cfg.Publish.Enabled {
		pub, err := mqttpub.New(p, cfg.PublisherConfig())
		if err != nil {
			return err
		}
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		if err := pub.Run(ctx); err != nil {
			return fmt.Errorf("publish: %w", err)
		}
	}
	return nil
}

func writeCSVFile(path string, res *room.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()
	return report.WriteCSV(f, res)
}

func printParams(_ *cobra.Command, _ []string) error {
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return err
	}
	params, err := cfg.PipelineParams()
	if err != nil {
		return err
	}
	p, err := sim.New(params)
	if err != nil {
		return err
	}

	phys := p.Physical()
	fmt.Printf("Surface Area: %.2f m^2\nVolume: %.2f m^3\n", phys.SurfaceArea, phys.Volume)
	fmt.Printf("Thermal Conductance: %.2f W/K\nHeat Capacity: %.2f kJ/K\n", phys.WallConductance, phys.CAir/1000.0)
	return nil
}
