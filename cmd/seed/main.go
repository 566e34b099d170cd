// One-off: go run ./cmd/seed inserts a demo user and a few todos for local
// development. Requires PG_DSN; SEED_USER_ID overrides the demo subject id.
package main

import (
	"context"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	dom "github.com/kosukesaigusa/poker-hand-history/internal/domain"
	"github.com/kosukesaigusa/poker-hand-history/internal/repo"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	dsn := os.Getenv("PG_DSN")
	if dsn == "" {
		log.Fatal().Msg("PG_DSN is required")
	}
	userID := os.Getenv("SEED_USER_ID")
	if userID == "" {
		userID = "demo-user"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("pg connect")
	}
	defer pool.Close()

	userRepo := repo.NewPGUserRepo(pool)
	if _, err := userRepo.Upsert(ctx, userID); err != nil {
		log.Fatal().Err(err).Msg("seed user")
	}

	desc := "今週の食材を購入するためのリストを作成"
	seed := []dom.Todo{
		{Title: "買い物リストを作成する", Description: &desc},
		{Title: "write project proposal"},
		{Title: "review pull requests", IsCompleted: true},
	}

	todoRepo := repo.NewPGTodoRepo(pool)
	for _, t := range seed {
		now := time.Now().UTC()
		t.TodoID = dom.NewTodoID()
		t.UserID = userID
		t.CreatedAt = now
		t.UpdatedAt = now
		if _, err := todoRepo.Insert(ctx, t); err != nil {
			log.Fatal().Err(err).Str("title", t.Title).Msg("seed todo")
		}
	}
	log.Info().Str("user_id", userID).Int("todos", len(seed)).Msg("seeded")
}
