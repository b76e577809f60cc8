package schedule

import (
	"context"
	"time"

	"github.com/crypt0g30rgy/anony/internal/service/invite"
	"github.com/go-co-op/gocron/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Start runs the periodic invite maintenance: reminder mails for pending
// invites and removal of expired ones.
func Start(inviteService *invite.InviteService) {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Error("Error while creating scheduler:", err)
		return
	}

	_, err = s.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(func() {
			ctx := context.Background()
			inviteService.RemindPending(ctx)
			inviteService.SweepExpired(ctx)
		}),
	)
	if err != nil {
		log.Error("Error while creating job:", err)
	}

	s.Start()
}
