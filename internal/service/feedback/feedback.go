package feedback

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	appmetrics "github.com/crypt0g30rgy/anony/internal/metrics"
	"github.com/crypt0g30rgy/anony/internal/model"
	repoFeedback "github.com/crypt0g30rgy/anony/internal/repository/feedback"
	repoInvite "github.com/crypt0g30rgy/anony/internal/repository/invite"
	"github.com/crypt0g30rgy/anony/internal/utility"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

var (
	ErrInviteNotFound   = errors.New("invite not found")
	ErrAlreadySubmitted = errors.New("feedback already submitted")
	ErrInviteExpired    = errors.New("invite expired")
)

// Notifier pushes a submitted feedback record to listening admin clients.
type Notifier interface {
	FeedbackSubmitted(f model.Feedback)
}

type FeedbackService struct {
	feedbackRepo repoFeedback.Repository
	inviteRepo   repoInvite.Repository
	notifier     Notifier
}

func NewFeedbackService(feedbackRepo repoFeedback.Repository, inviteRepo repoInvite.Repository, notifier Notifier) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		inviteRepo:   inviteRepo,
		notifier:     notifier,
	}
}

// Submit consumes the invite token and stores the feedback text under a
// fresh id. The stored record carries no email and no invite reference.
func (s *FeedbackService) Submit(ctx context.Context, token, text string) error {
	inv, err := s.inviteRepo.GetInvite(ctx, token)
	if err != nil {
		// only a missing document means an unknown token; a store
		// failure must not masquerade as one
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrInviteNotFound
		}
		return err
	}
	if inv == nil {
		return ErrInviteNotFound
	}

	if inv.Submitted {
		return ErrAlreadySubmitted
	}

	if inv.Expired(time.Now()) {
		return ErrInviteExpired
	}

	fb := model.Feedback{
		Id:          uuid.NewString(),
		Text:        text,
		Lang:        utility.LangDetect(text),
		SubmittedAt: time.Now(),
	}

	if err := s.feedbackRepo.AddFeedback(ctx, fb); err != nil {
		return err
	}

	if err := s.inviteRepo.MarkSubmitted(ctx, inv.Id); err != nil {
		log.Error("Error while consuming invite:", err)
		return err
	}

	appmetrics.FeedbackSubmitted.Inc()

	if s.notifier != nil {
		s.notifier.FeedbackSubmitted(fb)
	}

	return nil
}

type feedbackRating struct {
	feedback model.Feedback
	rank     float64
}

// List returns stored feedback, optionally filtered by language and ranked
// against a fuzzy search query.
func (s *FeedbackService) List(ctx context.Context, query, lang string) ([]model.Feedback, error) {
	all, err := s.feedbackRepo.AllFeedback(ctx)
	if err != nil {
		return nil, err
	}

	if lang != "" {
		filtered := all[:0]
		for _, fb := range all {
			if fb.Lang == lang {
				filtered = append(filtered, fb)
			}
		}
		all = filtered
	}

	if query == "" {
		return all, nil
	}

	swg := metrics.NewSmithWatermanGotoh()
	swg.CaseSensitive = false
	swg.GapPenalty = -0.1
	swg.Substitution = metrics.MatchMismatch{
		Match:    1,
		Mismatch: -0.5,
	}

	var results []feedbackRating
	for _, fb := range all {
		if similarity := strutil.Similarity(query, fb.Text, swg); similarity >= 0.6 {
			results = append(results, feedbackRating{fb, similarity})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].rank > results[j].rank
	})

	matched := make([]model.Feedback, 0, len(results))
	for _, r := range results {
		matched = append(matched, r.feedback)
	}
	return matched, nil
}
