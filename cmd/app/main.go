package main

import (
	"context"
	"fmt"
	"log"
	"os"

	authservice "fuelgo/internal/auth-service"
	"fuelgo/internal/config"
	"fuelgo/internal/mylogger"
	orderservice "fuelgo/internal/order-service"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: fuelgo <auth-service|order-service>")
		os.Exit(1)
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	mylog, err := mylogger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "auth-service":
		if err := authservice.Execute(ctx, mylog, cfg); err != nil {
			os.Exit(1)
		}
	case "order-service":
		if err := orderservice.Execute(ctx, mylog, cfg); err != nil {
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown service %q\n", os.Args[1])
		os.Exit(1)
	}
}
