package main

import (
	"braess-route-service/internal/config"
	"braess-route-service/internal/report"
	"braess-route-service/internal/services"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"
)

const defaultDrivers = 10000

// main runs one evaluation and prints the optimal, no-shortcut and greedy splits.
func main() {
	config.Load()

	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	envDrivers, err := config.GetInt("DRIVERS", defaultDrivers)
	if err != nil {
		return err
	}
	envWorkers, err := config.GetInt("WORKERS", 0)
	if err != nil {
		return err
	}

	fs := pflag.NewFlagSet("braess", pflag.ContinueOnError)
	drivers := fs.Int("drivers", envDrivers, "total number of drivers to split over the three routes")
	workers := fs.Int("workers", envWorkers, "search goroutines (1 = sequential, 0 = GOMAXPROCS)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	r, err := services.EvaluateScenarios(ctx, services.EvaluateRequest{Drivers: *drivers, Workers: *workers})
	if err != nil {
		return fmt.Errorf("braess: %w", err)
	}

	return report.WriteText(stdout, r)
}
