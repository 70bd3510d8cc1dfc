package main

import (
	"log"

	"Sentinel/CronJobs"
	"Sentinel/FiberConfig"
	"Sentinel/Importer"
	"Sentinel/Models"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	Models.Connect()

	// Backfill from the legacy portal on a schedule, when configured
	importer := Importer.New()
	if importer.Enabled() {
		scheduler := CronJobs.NewImportScheduler(importer, true)
		if err := scheduler.Start(); err != nil {
			log.Printf("Failed to start import scheduler: %v", err)
		}
	}

	FiberConfig.FiberConfig()
}
