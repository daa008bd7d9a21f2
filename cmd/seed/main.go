// Command seed fills a development database with fake users, posts,
// friendships, follows and guestbook entries.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"strings"
	"unicode"

	"github.com/anonto42/red-social/backend/internal/events"
	"github.com/anonto42/red-social/backend/internal/models"
	"github.com/anonto42/red-social/backend/internal/repositories"
	"github.com/anonto42/red-social/backend/internal/services"
	"github.com/anonto42/red-social/backend/pkg/config"
	"github.com/brianvoe/gofakeit/v6"
)

const defaultPassword = "123456"

func main() {
	users := flag.Int("users", 20, "number of users to create")
	posts := flag.Int("posts", 3, "posts per user")
	friends := flag.Int("friends", 3, "friend requests sent per user")
	seed := flag.Int64("seed", 0, "random seed (0 picks one)")
	flag.Parse()

	gofakeit.Seed(*seed)

	cfg := config.Load()
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB()

	if err := repositories.AutoMigrate(db.SQL); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}

	userRepo := repositories.NewGormUserRepository(db.SQL)
	friendshipRepo := repositories.NewGormFriendshipRepository(db.SQL)
	settingsRepo := repositories.NewGormSettingsRepository(db.SQL)

	var postRepo repositories.PostRepository = repositories.NewGormPostRepository(db.SQL)
	if db.Mongo != nil {
		postRepo = repositories.NewMongoPostRepository(db.Mongo.Database(cfg.MongoDatabase), userRepo)
	}

	authService := services.NewAuthService(userRepo, repositories.NewGormSessionRepository(db.SQL), cfg.SessionSecret, cfg.SessionTTL)
	relationships := services.NewRelationshipService(
		userRepo,
		friendshipRepo,
		repositories.NewGormFollowRepository(db.SQL),
		repositories.NewGormNotificationRepository(db.SQL),
		settingsRepo,
		events.PublisherFunc(func(context.Context, events.Event) error { return nil }),
	)
	postService := services.NewPostService(postRepo, cfg.HomeFeedSize)
	guestbook := services.NewGuestbookService(userRepo, friendshipRepo, settingsRepo, repositories.NewGormGuestbookRepository(db.SQL))

	ctx := context.Background()

	created := make([]*models.User, 0, *users)
	for len(created) < *users {
		u, err := authService.Register(ctx, fakeUsername(), defaultPassword)
		if errors.Is(err, services.ErrUsernameTaken) {
			continue
		}
		if err != nil {
			log.Fatalf("Failed to register user: %v", err)
		}
		if err := userRepo.UpdateMood(ctx, u.ID, gofakeit.Adjective()); err != nil {
			log.Printf("update mood of %s: %v", u.Username, err)
		}
		if err := userRepo.UpdateProfileHTML(ctx, u.ID, "<p>"+gofakeit.Sentence(15)+"</p>"); err != nil {
			log.Printf("update profile of %s: %v", u.Username, err)
		}
		created = append(created, u)
	}
	log.Printf("Created %d users (password %q).", len(created), defaultPassword)
	if len(created) < 2 {
		return
	}

	for _, u := range created {
		for i := 0; i < *posts; i++ {
			if _, err := postService.Create(ctx, u.ID, gofakeit.Sentence(gofakeit.Number(4, 20))); err != nil {
				log.Printf("create post for %s: %v", u.Username, err)
			}
		}
	}

	var accepted, follows, entries int
	for _, u := range created {
		for i := 0; i < *friends; i++ {
			other := pick(created, u.ID)
			n, err := relationships.RequestFriendship(ctx, u.ID, other.ID)
			if err != nil {
				continue
			}
			if gofakeit.Bool() {
				if _, err := relationships.RespondToRequest(ctx, n.ID, other.ID, services.DecisionAccept); err == nil {
					accepted++
				}
			}
		}

		target := pick(created, u.ID)
		if err := relationships.Follow(ctx, u.ID, target.ID); err == nil {
			follows++
		}

		owner := pick(created, u.ID)
		if entry, err := guestbook.Sign(ctx, u.ID, owner.ID, gofakeit.Quote()); err == nil && entry != nil {
			entries++
		}
	}

	log.Printf("Seeded %d posts, %d friendships, %d follows, %d guestbook entries.",
		len(created)**posts, accepted, follows, entries)
}

// fakeUsername returns a letters-and-digits name that passes registration
// validation.
func fakeUsername() string {
	name := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return -1
	}, gofakeit.Username())
	for len(name) < 3 {
		name += gofakeit.Digit()
	}
	if len(name) > 80 {
		name = name[:80]
	}
	return name
}

func pick(users []*models.User, not uint) *models.User {
	for {
		u := users[gofakeit.Number(0, len(users)-1)]
		if u.ID != not {
			return u
		}
	}
}
