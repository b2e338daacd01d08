// Package reminder runs the background worker that turns approaching expiry
// dates into notification records. It reuses the urgency classifier for the
// "how close is too close" decision instead of duplicating threshold logic.
package reminder

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/rogerio-castellano/expiry-tracker/internal/expiry"
	"github.com/rogerio-castellano/expiry-tracker/internal/models"
	"github.com/rogerio-castellano/expiry-tracker/internal/repo"
)

// MetricsRecorder receives a count of reminders created per cycle.
type MetricsRecorder interface {
	RecordReminderCycle(sent int)
}

// Scheduler periodically sweeps every push-enabled user's products and files
// one notification per product per day once the product enters the user's
// reminder window.
type Scheduler struct {
	profiles      repo.ProfileRepository
	products      repo.ProductRepository
	notifications repo.NotificationRepository
	metrics       MetricsRecorder
}

func NewScheduler(
	profiles repo.ProfileRepository,
	products repo.ProductRepository,
	notifications repo.NotificationRepository,
	metrics MetricsRecorder,
) *Scheduler {
	return &Scheduler{
		profiles:      profiles,
		products:      products,
		notifications: notifications,
		metrics:       metrics,
	}
}

// Start runs reminder cycles on a fixed interval until the context is
// cancelled. The first cycle runs immediately.
func (s *Scheduler) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if _, err := s.RunOnce(time.Now()); err != nil {
		log.Printf("reminder cycle failed: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			log.Println("reminder scheduler stopped")
			return
		case <-ticker.C:
			if _, err := s.RunOnce(time.Now()); err != nil {
				log.Printf("reminder cycle failed: %v", err)
			}
		}
	}
}

// RunOnce executes a single reminder sweep against the given "now" and
// returns how many notifications it created. Duplicate creations (already
// notified for that product today) are skipped silently — the unique
// constraint is the dedupe mechanism, not an error condition.
func (s *Scheduler) RunOnce(now time.Time) (int, error) {
	profiles, err := s.profiles.GetPushEnabled()
	if err != nil {
		return 0, fmt.Errorf("load push-enabled profiles: %w", err)
	}

	today := now.Format(expiry.DateLayout)
	sent := 0
	for _, profile := range profiles {
		products, err := s.products.GetAllByUser(profile.UserID)
		if err != nil {
			log.Printf("reminder: load products for user %s: %v", profile.UserID, err)
			continue
		}

		for _, p := range products {
			expiryDate, err := expiry.ParseDate(p.ExpiryDate)
			if err != nil {
				log.Printf("reminder: product %s has malformed expiry date %q", p.ID, p.ExpiryDate)
				continue
			}
			days := expiry.DaysUntil(expiryDate, now)
			if days > profile.NotificationDaysBefore {
				continue
			}

			urgency := expiry.Classify(expiryDate, now)
			_, err = s.notifications.Create(models.Notification{
				UserID:      profile.UserID,
				ProductID:   p.ID,
				Urgency:     string(urgency),
				Message:     reminderMessage(p, days),
				NotifiedFor: today,
			})
			if errors.Is(err, repo.ErrDuplicatedValueUnique) {
				continue
			}
			if err != nil {
				log.Printf("reminder: create notification for product %s: %v", p.ID, err)
				continue
			}
			sent++
		}
	}

	if s.metrics != nil {
		s.metrics.RecordReminderCycle(sent)
	}
	return sent, nil
}

func reminderMessage(p models.Product, days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("%s expired on %s", p.Name, p.ExpiryDate)
	case days == 0:
		return fmt.Sprintf("%s expires today", p.Name)
	case days == 1:
		return fmt.Sprintf("%s expires tomorrow", p.Name)
	default:
		return fmt.Sprintf("%s expires in %d days (%s)", p.Name, days, p.ExpiryDate)
	}
}
