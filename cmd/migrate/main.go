package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/levitenleser/levitenleser/internal/pkg/env"
)

// Schema-Runner für die Redaktions-Datenbank. Mehr als up, down und
// status braucht der Betrieb nicht; gezielte Versionssprünge macht
// niemand von Hand.
func main() {
	env.SetupEnvFile()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	m, err := migrate.New("file://migrations", databaseURL())
	if err != nil {
		log.Fatalf("Migration konnte nicht initialisiert werden: %v", err)
	}
	defer func() {
		if sourceErr, dbErr := m.Close(); sourceErr != nil || dbErr != nil {
			log.Printf("Migrationsressourcen nicht sauber geschlossen: %v, %v", sourceErr, dbErr)
		}
	}()

	if err := run(m, os.Args[1]); err != nil {
		log.Fatal(err)
	}
}

// databaseURL baut die DSN aus denselben Umgebungsvariablen, die auch der
// Webserver liest. multiStatements erlaubt mehrere Statements pro Datei.
func databaseURL() string {
	return fmt.Sprintf("mysql://%s:%s@tcp(%s:%s)/%s?multiStatements=true",
		env.GetEnv("DB_USER", "levitenleser"),
		env.GetEnv("DB_PASSWORD", "levitenleser"),
		env.GetEnv("DB_HOST", "db"),
		env.GetEnv("DB_PORT", "3306"),
		env.GetEnv("DB_NAME", "levitenleser_db"),
	)
}

func run(m *migrate.Migrate, command string) error {
	switch command {
	case "up":
		err := m.Up()
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("Schema ist bereits aktuell")
			return nil
		}
		if err != nil {
			return fmt.Errorf("Migrationen fehlgeschlagen: %w", err)
		}
		log.Println("Migrationen angewendet")
		return nil

	case "down":
		if err := m.Steps(-1); err != nil {
			return fmt.Errorf("Rollback fehlgeschlagen: %w", err)
		}
		log.Println("Letzte Migration zurückgerollt")
		return nil

	case "status":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			log.Println("Noch keine Migration angewendet")
			return nil
		}
		if err != nil {
			return fmt.Errorf("Version nicht lesbar: %w", err)
		}
		if dirty {
			log.Printf("Schema-Version %d (dirty)", version)
		} else {
			log.Printf("Schema-Version %d", version)
		}
		return nil

	default:
		printUsage()
		os.Exit(1)
		return nil
	}
}

func printUsage() {
	fmt.Println("Verwendung: migrate [up|down|status]")
	fmt.Println("  up     - alle ausstehenden Migrationen anwenden")
	fmt.Println("  down   - letzte Migration zurückrollen")
	fmt.Println("  status - aktuelle Schema-Version anzeigen")
}
