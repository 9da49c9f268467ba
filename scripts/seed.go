package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Seeds the database with a small set of neighborhoods, venues and
// events for local development. Coordinate columns hold JSON arrays.
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Build connection string
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	// Connect to database
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	log.Println("Connected to database successfully")

	var centroID, barraoID int64
	err = db.QueryRow(
		`INSERT INTO neighborhoods (description, coordinates) VALUES ($1, $2) RETURNING id`,
		"Centro", `[[-22.9055,-47.0608],[-22.9021,-47.0534],[-22.8987,-47.0601]]`,
	).Scan(&centroID)
	if err != nil {
		log.Fatalf("Failed to seed neighborhoods: %v", err)
	}
	err = db.QueryRow(
		`INSERT INTO neighborhoods (description, coordinates) VALUES ($1, $2) RETURNING id`,
		"Barão Geraldo", `[[-22.8235,-47.0789],[-22.8198,-47.0701],[-22.8150,-47.0775]]`,
	).Scan(&barraoID)
	if err != nil {
		log.Fatalf("Failed to seed neighborhoods: %v", err)
	}

	var barID, theaterID int64
	err = db.QueryRow(
		`INSERT INTO venues (name, type, description, stars, coordinates, schedule, neighborhood_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
		"Bar do Zé", "Bar", "Live music most weekends", 8.5, `[-22.9031,-47.0571]`, "18:00:00", centroID,
	).Scan(&barID)
	if err != nil {
		log.Fatalf("Failed to seed venues: %v", err)
	}
	err = db.QueryRow(
		`INSERT INTO venues (name, type, stars, coordinates, neighborhood_id)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		"Teatro Municipal", "Theater", 9.2, `[-22.8201,-47.0744]`, barraoID,
	).Scan(&theaterID)
	if err != nil {
		log.Fatalf("Failed to seed venues: %v", err)
	}

	_, err = db.Exec(
		`INSERT INTO events (venue_id, name, type, category, keywords, price_range, date) VALUES
		 ($1, 'Noite de Samba', 'Música', 'Samba', '["samba","ao vivo"]', '[20,50]', '2025-11-15'),
		 ($1, 'Jazz Session', 'Música', 'Jazz', '["jazz"]', '[30,60]', '2025-11-18'),
		 ($2, 'Hamlet', 'Teatro', 'Drama', NULL, '[40,120]', '2025-11-20')`,
		barID, theaterID,
	)
	if err != nil {
		log.Fatalf("Failed to seed events: %v", err)
	}

	log.Println("Seed data inserted successfully")
}
