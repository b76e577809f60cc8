package feedback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/crypt0g30rgy/anony/internal/model"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type fakeInviteRepo struct {
	invites map[string]*model.Invite
}

func newFakeInviteRepo() *fakeInviteRepo {
	return &fakeInviteRepo{invites: make(map[string]*model.Invite)}
}

func (r *fakeInviteRepo) AddInvite(_ context.Context, inv model.Invite) error {
	r.invites[inv.Id] = &inv
	return nil
}

func (r *fakeInviteRepo) GetInvite(_ context.Context, id string) (*model.Invite, error) {
	inv, ok := r.invites[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *inv
	return &copied, nil
}

func (r *fakeInviteRepo) FindByEmail(_ context.Context, email string) (*model.Invite, error) {
	for _, inv := range r.invites {
		if inv.Email == email {
			copied := *inv
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeInviteRepo) MarkSubmitted(_ context.Context, id string) error {
	r.invites[id].Submitted = true
	return nil
}

func (r *fakeInviteRepo) MarkReminded(_ context.Context, id string, at time.Time) error {
	r.invites[id].RemindedAt = at
	return nil
}

func (r *fakeInviteRepo) DeleteInvite(_ context.Context, id string) error {
	delete(r.invites, id)
	return nil
}

func (r *fakeInviteRepo) PendingOlderThan(_ context.Context, cutoff time.Time) ([]model.Invite, error) {
	var pending []model.Invite
	for _, inv := range r.invites {
		if !inv.Submitted && inv.InvitedAt.Before(cutoff) && inv.RemindedAt.IsZero() {
			pending = append(pending, *inv)
		}
	}
	return pending, nil
}

func (r *fakeInviteRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var deleted int64
	for id, inv := range r.invites {
		if !inv.Submitted && inv.Expired(now) {
			delete(r.invites, id)
			deleted++
		}
	}
	return deleted, nil
}

// failingInviteRepo fails every lookup with the given error.
type failingInviteRepo struct {
	*fakeInviteRepo
	err error
}

func (r *failingInviteRepo) GetInvite(_ context.Context, _ string) (*model.Invite, error) {
	return nil, r.err
}

type fakeFeedbackRepo struct {
	feedbacks []model.Feedback
}

func (r *fakeFeedbackRepo) AddFeedback(_ context.Context, fb model.Feedback) error {
	r.feedbacks = append(r.feedbacks, fb)
	return nil
}

func (r *fakeFeedbackRepo) AllFeedback(_ context.Context) ([]model.Feedback, error) {
	return append([]model.Feedback(nil), r.feedbacks...), nil
}

type fakeNotifier struct {
	events []model.Feedback
}

func (n *fakeNotifier) FeedbackSubmitted(f model.Feedback) {
	n.events = append(n.events, f)
}

func addInvite(t *testing.T, repo *fakeInviteRepo, email string, expiresAt time.Time) model.Invite {
	t.Helper()
	inv := model.Invite{
		Id:        uuid.NewString(),
		Email:     email,
		InvitedAt: time.Now(),
		ExpiresAt: expiresAt,
	}
	if err := repo.AddInvite(context.Background(), inv); err != nil {
		t.Fatalf("AddInvite failed: %v", err)
	}
	return inv
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("stores anonymous record and consumes invite", func(t *testing.T) {
		inviteRepo := newFakeInviteRepo()
		feedbackRepo := &fakeFeedbackRepo{}
		notifier := &fakeNotifier{}
		svc := NewFeedbackService(feedbackRepo, inviteRepo, notifier)

		inv := addInvite(t, inviteRepo, "alice@example.com", time.Now().Add(time.Hour))

		err := svc.Submit(ctx, inv.Id, "The onboarding flow is confusing.")
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}

		if len(feedbackRepo.feedbacks) != 1 {
			t.Fatalf("Expected 1 stored feedback, got %d", len(feedbackRepo.feedbacks))
		}

		fb := feedbackRepo.feedbacks[0]
		if fb.Id == inv.Id {
			t.Error("Feedback id must not reuse the invite token")
		}
		if fb.Text != "The onboarding flow is confusing." {
			t.Errorf("Unexpected text: %q", fb.Text)
		}
		if fb.Lang == "" {
			t.Error("Expected detected language to be set")
		}
		if fb.SubmittedAt.IsZero() {
			t.Error("Expected SubmittedAt to be set")
		}

		if !inviteRepo.invites[inv.Id].Submitted {
			t.Error("Expected invite to be marked submitted")
		}

		if len(notifier.events) != 1 {
			t.Errorf("Expected 1 notification, got %d", len(notifier.events))
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		svc := NewFeedbackService(&fakeFeedbackRepo{}, newFakeInviteRepo(), nil)

		err := svc.Submit(ctx, uuid.NewString(), "text")
		if err != ErrInviteNotFound {
			t.Errorf("Expected ErrInviteNotFound, got %v", err)
		}
	})

	t.Run("second submission rejected", func(t *testing.T) {
		inviteRepo := newFakeInviteRepo()
		svc := NewFeedbackService(&fakeFeedbackRepo{}, inviteRepo, nil)

		inv := addInvite(t, inviteRepo, "bob@example.com", time.Now().Add(time.Hour))

		if err := svc.Submit(ctx, inv.Id, "first"); err != nil {
			t.Fatalf("First submit failed: %v", err)
		}
		if err := svc.Submit(ctx, inv.Id, "second"); err != ErrAlreadySubmitted {
			t.Errorf("Expected ErrAlreadySubmitted, got %v", err)
		}
	})

	t.Run("store failure is not reported as unknown token", func(t *testing.T) {
		storeErr := context.DeadlineExceeded
		svc := NewFeedbackService(&fakeFeedbackRepo{}, &failingInviteRepo{newFakeInviteRepo(), storeErr}, nil)

		err := svc.Submit(ctx, uuid.NewString(), "text")
		if errors.Is(err, ErrInviteNotFound) {
			t.Error("A store failure must not look like an unknown token")
		}
		if !errors.Is(err, storeErr) {
			t.Errorf("Expected the store error to surface, got %v", err)
		}
	})

	t.Run("expired invite rejected", func(t *testing.T) {
		inviteRepo := newFakeInviteRepo()
		feedbackRepo := &fakeFeedbackRepo{}
		svc := NewFeedbackService(feedbackRepo, inviteRepo, nil)

		inv := addInvite(t, inviteRepo, "carol@example.com", time.Now().Add(-time.Hour))

		if err := svc.Submit(ctx, inv.Id, "too late"); err != ErrInviteExpired {
			t.Errorf("Expected ErrInviteExpired, got %v", err)
		}
		if len(feedbackRepo.feedbacks) != 0 {
			t.Error("Expired submission must not be stored")
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	seed := []model.Feedback{
		{Id: uuid.NewString(), Text: "The dashboard loads very slowly on mobile", Lang: "en"},
		{Id: uuid.NewString(), Text: "Great support team, keep it up", Lang: "en"},
		{Id: uuid.NewString(), Text: "La interfaz es muy intuitiva", Lang: "es"},
	}
	svc := NewFeedbackService(&fakeFeedbackRepo{feedbacks: seed}, newFakeInviteRepo(), nil)

	t.Run("no filters returns everything", func(t *testing.T) {
		got, err := svc.List(ctx, "", "")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(got) != 3 {
			t.Errorf("Expected 3 entries, got %d", len(got))
		}
	})

	t.Run("language filter", func(t *testing.T) {
		got, err := svc.List(ctx, "", "es")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(got) != 1 || got[0].Lang != "es" {
			t.Errorf("Expected only the Spanish entry, got %v", got)
		}
	})

	t.Run("fuzzy search matches related text", func(t *testing.T) {
		got, err := svc.List(ctx, "dashboard slow", "")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(got) == 0 {
			t.Fatal("Expected at least one match")
		}
		if got[0].Text != seed[0].Text {
			t.Errorf("Expected the dashboard entry first, got %q", got[0].Text)
		}
	})

	t.Run("fuzzy search with no match", func(t *testing.T) {
		got, err := svc.List(ctx, "zzzzzzzz", "")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("Expected no matches, got %d", len(got))
		}
	})
}
