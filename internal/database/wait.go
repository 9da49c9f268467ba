package database

import (
	"fmt"
	"log"
	"time"
)

// ConnectWithRetry keeps trying to connect until the database answers or
// the attempts run out. The database container is often still starting
// when the API process comes up.
func ConnectWithRetry(dsn string, attempts int, delay time.Duration) error {
	var err error

	for i := 1; i <= attempts; i++ {
		if err = Connect(dsn); err == nil {
			return nil
		}
		log.Printf("Database not ready (attempt %d/%d): %v", i, attempts, err)
		time.Sleep(delay)
	}

	return fmt.Errorf("database not reachable after %d attempts: %w", attempts, err)
}
