package main

import (
	"log"

	"yelpcamp/config"
	"yelpcamp/database"
	"yelpcamp/jobs"
	"yelpcamp/routers"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sweeper := jobs.NewSweeper(db)
	if err := sweeper.Start(cfg.SweepSchedule); err != nil {
		log.Fatalf("Failed to start review sweeper: %v", err)
	}
	defer sweeper.Stop()

	app := routers.New(db)

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
