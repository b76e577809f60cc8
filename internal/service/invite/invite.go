package invite

import (
	"context"
	"fmt"
	"time"

	"github.com/crypt0g30rgy/anony/internal/mailer"
	"github.com/crypt0g30rgy/anony/internal/metrics"
	"github.com/crypt0g30rgy/anony/internal/model"
	repoInvite "github.com/crypt0g30rgy/anony/internal/repository/invite"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type InviteService struct {
	inviteRepo    repoInvite.Repository
	mailer        mailer.Mailer
	baseURL       string
	ttl           time.Duration
	reminderAfter time.Duration
}

func NewInviteService(inviteRepo repoInvite.Repository, m mailer.Mailer, baseURL string, ttl, reminderAfter time.Duration) *InviteService {
	return &InviteService{
		inviteRepo:    inviteRepo,
		mailer:        m,
		baseURL:       baseURL,
		ttl:           ttl,
		reminderAfter: reminderAfter,
	}
}

func (s *InviteService) formLink(token string) string {
	return fmt.Sprintf("%s/feedback_form?uuid=%s", s.baseURL, token)
}

// SendInvites creates an invite per address and mails the feedback link.
// Addresses are processed independently: one bad address never blocks the
// rest, and the caller gets a per-address success and error report.
func (s *InviteService) SendInvites(ctx context.Context, emails []string) (success, errors []string) {
	success = []string{}
	errors = []string{}

	for _, email := range emails {
		if existing, err := s.inviteRepo.FindByEmail(ctx, email); err == nil && existing != nil {
			errors = append(errors, fmt.Sprintf("Email '%s' already invited!", email))
			continue
		}

		now := time.Now()
		inv := model.Invite{
			Id:        uuid.NewString(),
			Email:     email,
			InvitedAt: now,
			ExpiresAt: now.Add(s.ttl),
		}

		if err := s.inviteRepo.AddInvite(ctx, inv); err != nil {
			errors = append(errors, fmt.Sprintf("Error sending invite to %s: %s", email, err))
			continue
		}

		body := fmt.Sprintf("Click the following link to provide anonymous feedback: %s", s.formLink(inv.Id))
		if err := s.mailer.Send(email, "Feedback Invitation", body); err != nil {
			log.Error("Error while sending invite mail:", err)
			metrics.MailFailures.Inc()
			// do not keep an invite nobody was told about
			if delErr := s.inviteRepo.DeleteInvite(ctx, inv.Id); delErr != nil {
				log.Error("Error while removing orphaned invite:", delErr)
			}
			errors = append(errors, fmt.Sprintf("Error sending invite to %s: %s", email, err))
			continue
		}

		metrics.InvitesSent.Inc()
		success = append(success, fmt.Sprintf("Invite sent successfully to %s", email))
	}

	return success, errors
}

// RemindPending re-mails invites that are still unanswered after the
// configured delay. Each invite is reminded at most once.
func (s *InviteService) RemindPending(ctx context.Context) {
	cutoff := time.Now().Add(-s.reminderAfter)
	pending, err := s.inviteRepo.PendingOlderThan(ctx, cutoff)
	if err != nil {
		return
	}

	for _, inv := range pending {
		if inv.Expired(time.Now()) {
			continue
		}

		body := fmt.Sprintf("A reminder: you can still provide anonymous feedback at %s", s.formLink(inv.Id))
		if err := s.mailer.Send(inv.Email, "Feedback Invitation Reminder", body); err != nil {
			log.Error("Error while sending reminder mail:", err)
			metrics.MailFailures.Inc()
			continue
		}

		if err := s.inviteRepo.MarkReminded(ctx, inv.Id, time.Now()); err != nil {
			log.Error("Error while stamping reminder:", err)
		}
	}
}

// SweepExpired removes unconsumed invites past their expiry.
func (s *InviteService) SweepExpired(ctx context.Context) {
	deleted, err := s.inviteRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		return
	}
	if deleted > 0 {
		metrics.InvitesExpired.Add(float64(deleted))
		log.Info("Swept expired invites:", deleted)
	}
}
