package main

import (
	"context"
	"log"
	"os"

	"github.com/crypt0g30rgy/anony/internal/config"
	"github.com/crypt0g30rgy/anony/internal/handler"
	"github.com/crypt0g30rgy/anony/internal/live"
	"github.com/crypt0g30rgy/anony/internal/mailer"
	"github.com/crypt0g30rgy/anony/internal/mongodb"
	repoFeedback "github.com/crypt0g30rgy/anony/internal/repository/feedback"
	repoInvite "github.com/crypt0g30rgy/anony/internal/repository/invite"
	repoToken "github.com/crypt0g30rgy/anony/internal/repository/token"
	repoUser "github.com/crypt0g30rgy/anony/internal/repository/user"
	"github.com/crypt0g30rgy/anony/internal/router"
	"github.com/crypt0g30rgy/anony/internal/schedule"
	feedbackService "github.com/crypt0g30rgy/anony/internal/service/feedback"
	inviteService "github.com/crypt0g30rgy/anony/internal/service/invite"
	userService "github.com/crypt0g30rgy/anony/internal/service/user"
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	//env
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found")
	}
	if ok := testEnvs([]string{
		"PORT",
		"BASE_URL",
		"MONGODB_URI",
		"DB_NAME",
		"JWT_ACCESS_SECRET",
		"JWT_REFRESH_SECRET",
		"WS_PORT",
		"MAIL_SERVER",
		"MAIL_PORT",
		"MAIL_USE_TLS",
		"MAIL_USE_SSL",
		"MAIL_USERNAME",
		"MAIL_PASSWORD",
		"MAIL_DEFAULT_SENDER"}); !ok {
		log.Fatalln("Please add required envs")
	}

	cfg := config.Load()

	ctx := context.Background()
	client, err := mongodb.NewClient(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatalln("Mongo connect failed:", err)
	}
	defer client.Close(ctx)

	smtpMailer, err := mailer.NewSmtpMailer(cfg.Mail)
	if err != nil {
		log.Fatalln("Mailer setup failed:", err)
	}

	userRepo := repoUser.NewUserRepository(client)
	tokenRepo := repoToken.NewTokenRepository(client)
	inviteRepo := repoInvite.NewInviteRepository(client)
	feedbackRepo := repoFeedback.NewFeedbackRepository(client)

	socketServer := live.NewSocketServer(cfg.WSPort)

	users := userService.NewUserService(userRepo, tokenRepo)
	invites := inviteService.NewInviteService(inviteRepo, smtpMailer, cfg.BaseURL, cfg.InviteTTL, cfg.InviteReminderAfter)
	feedbacks := feedbackService.NewFeedbackService(feedbackRepo, inviteRepo, socketServer)

	schedule.Start(invites)

	//Http server
	app := fiber.New()

	router.Register(app, router.Handlers{
		Common:   handler.NewCommonHandler(),
		User:     handler.NewUserHandler(users),
		Invite:   handler.NewInviteHandler(invites),
		Feedback: handler.NewFeedbackHandler(feedbacks),
	})

	go socketServer.Start()
	log.Fatal(app.Listen(":" + cfg.Port))
}

func testEnvs(enums []string) bool {
	successful := true
	for _, enum := range enums {
		if _, ok := os.LookupEnv(enum); !ok {
			successful = false
			log.Printf("Env \"%s\" not found\n", enum)
		}
	}
	return successful
}
