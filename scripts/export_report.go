package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/linesmerrill/haemo-report-api/api/handlers"
	"github.com/linesmerrill/haemo-report-api/config"
	"github.com/linesmerrill/haemo-report-api/export"
)

// Quick utility to print a patient export from the configured store
// Usage: go run scripts/export_report.go <csv|excel|pdf> > report.txt
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/export_report.go <csv|excel|pdf>")
		fmt.Println("Example: DB_URI=mongodb://localhost:27017 DB_NAME=haemo go run scripts/export_report.go pdf")
		os.Exit(1)
	}

	format, err := export.ParseFormat(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	a := handlers.App{Config: *config.New()}
	if err := a.Initialize(); err != nil {
		fmt.Printf("Error opening patient store: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer a.Close(ctx)

	cases, err := a.Store.All(ctx)
	if err != nil {
		fmt.Printf("Error reading patients: %v\n", err)
		os.Exit(1)
	}

	if err := export.Write(os.Stdout, format, cases, time.Now()); err != nil {
		fmt.Printf("Error writing export: %v\n", err)
		os.Exit(1)
	}
}
