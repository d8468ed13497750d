// Command seed migrates and populates a durable Culture Quest database with
// the built-in culture catalog, question bank, and achievement definitions.
package main

import (
	"flag"
	"log"

	authrepo "github.com/GenKoKo/culture-quest/internal/auth/repository"
	"github.com/GenKoKo/culture-quest/internal/common/database"
	"github.com/GenKoKo/culture-quest/internal/quest/seed"
	"github.com/GenKoKo/culture-quest/internal/quest/storage"
)

func main() {
	var (
		dbType = flag.String("db-type", "sqlite", "Database type: sqlite or postgres")
		dsn    = flag.String("dsn", "./data/culture_quest.db?mode=rwc", "Database DSN")
		force  = flag.Bool("force", false, "Seed even if cultures already exist")
	)
	flag.Parse()

	if err := database.InitWithType(*dbType, *dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	store := storage.NewGormStore(database.GetDB())
	if err := store.Migrate(); err != nil {
		log.Fatalf("Failed to migrate quest tables: %v", err)
	}
	userStore := authrepo.NewGormUserStore(database.GetDB())
	if err := userStore.Migrate(); err != nil {
		log.Fatalf("Failed to migrate users table: %v", err)
	}

	cultures, err := store.ListCultures()
	if err != nil {
		log.Fatalf("Failed to inspect database: %v", err)
	}
	if len(cultures) > 0 && !*force {
		log.Printf("Database already holds %d cultures, nothing to do (use -force to reseed)", len(cultures))
		return
	}

	if err := seed.Apply(store); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	log.Printf("Seeded %d cultures, %d questions, %d achievements",
		len(seed.Cultures()), len(seed.Questions()), len(seed.Achievements()))
}
