// Command setup creates the HR schema in the database file and loads
// the sample dataset, then prints the per-table record counts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/locvowork/hr_sql_practice/internal/bootstrap"
	"github.com/locvowork/hr_sql_practice/internal/database"
	"github.com/locvowork/hr_sql_practice/internal/logger"
	"github.com/locvowork/hr_sql_practice/internal/repository"
)

func main() {
	dbPath := flag.String("db", "", "Database file path (overrides HR_DB_PATH)")
	action := flag.String("action", "setup", "Action to perform: setup, verify")
	flag.Parse()

	ctx := context.Background()

	fmt.Println("🚀 HR Practice Database Setup")
	fmt.Println(strings.Repeat("=", 50))

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx, bootstrap.Options{DBPath: *dbPath}); err != nil {
		log.Fatal(err)
	}
	defer app.Close()

	data, err := database.LoadDataset()
	if err != nil {
		logger.ErrorLog(ctx, "Failed to load dataset", err)
		log.Fatal(err)
	}

	seeder := database.NewDataSeeder(app.Store)

	switch *action {
	case "setup":
		fmt.Println("📦 Creating tables...")
		if err := app.Store.CreateSchema(ctx); err != nil {
			logger.ErrorLog(ctx, "Failed to create schema", err)
			log.Fatal(err)
		}
		fmt.Println("✅ Tables created successfully")

		fmt.Println("📋 Loading data...")
		if err := seeder.Seed(ctx, data); err != nil {
			logger.ErrorLog(ctx, "Failed to load data", err)
			log.Fatal(err)
		}
		fmt.Println("✅ Data loaded successfully")

		printCounts(ctx, seeder, data)
		fmt.Println("\nHR database is ready for practice!")

	case "verify":
		printCounts(ctx, seeder, data)

	default:
		log.Fatalf("unknown action %q (expected setup or verify)", *action)
	}
}

func printCounts(ctx context.Context, seeder *database.DataSeeder, data *database.Dataset) {
	counts, err := seeder.VerifyCounts(ctx, data)
	if err != nil {
		logger.ErrorLog(ctx, "Count verification failed", err)
		log.Fatal(err)
	}

	fmt.Println("\nRecord counts:")
	for _, table := range repository.Tables {
		fmt.Printf("  %-12s %d records\n", table, counts[table])
	}
}
