package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FeedbackSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "anony_feedback_submitted_total",
		Help: "Feedback records persisted.",
	})

	InvitesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "anony_invites_sent_total",
		Help: "Invitation emails sent.",
	})

	MailFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "anony_mail_failures_total",
		Help: "Outgoing mail attempts that failed.",
	})

	InvitesExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "anony_invites_expired_total",
		Help: "Unconsumed invites removed by the expiry sweep.",
	})
)
