package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/lib/pq"

	"github.com/yourusername/trivia-bank/internal/config"
	"github.com/yourusername/trivia-bank/pkg/database"
)

// Утилита оператора: применяет, откатывает или принудительно выставляет версию схемы.
//
//	migrate -cmd up
//	migrate -cmd down
//	migrate -cmd force -version 1
//	migrate -cmd version
func main() {
	configPath := flag.String("config", "config/config.yaml", "путь к файлу конфигурации")
	command := flag.String("cmd", "up", "команда: up | down | force | version")
	version := flag.Int("version", -1, "версия для команды force")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Database.IsSQLite() {
		log.Fatal("Миграции применяются только к PostgreSQL; для SQLite схема создается при старте API")
	}

	db, err := sql.Open("postgres", cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	m, err := database.NewMigrator(db, cfg.Database.MigrationsPath)
	if err != nil {
		log.Fatal(err)
	}

	switch *command {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "force":
		if *version < 0 {
			log.Fatal("Для force нужен -version >= 0")
		}
		fmt.Printf("Forcing migration version to %d to clean dirty state...\n", *version)
		err = m.Force(*version)
	case "version":
		v, dirty, verr := m.Version()
		if errors.Is(verr, migrate.ErrNilVersion) {
			fmt.Println("Миграции еще не применялись")
			return
		}
		if verr != nil {
			log.Fatal(verr)
		}
		fmt.Printf("version=%d dirty=%t\n", v, dirty)
		return
	default:
		fmt.Fprintf(os.Stderr, "неизвестная команда %q\n", *command)
		flag.Usage()
		os.Exit(2)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("Migration %s failed: %v", *command, err)
	}
	fmt.Printf("Success! %s completed.\n", *command)
}
