// cmd/migrate/main.go
package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/protouch/protouch/internal/database"
	"github.com/protouch/protouch/internal/database/seed"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	migrateCmd := flag.Bool("migrate", false, "Run migrations")
	seedCmd := flag.Bool("seed", false, "Seed roles and the admin account")
	dsn := flag.String("dsn", os.Getenv("POSTGRES_URI"), "PostgreSQL connection string")
	flag.Parse()

	if !(*migrateCmd || *seedCmd) {
		flag.Usage()
		os.Exit(1)
	}

	db, err := gorm.Open(postgres.Open(*dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	if *migrateCmd {
		log.Println("Running migrations...")
		if err := database.RunMigrations(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Migrations completed successfully")
	}

	if *seedCmd {
		log.Println("Seeding roles and admin account...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
		log.Println("Seeding completed successfully")
	}
}
