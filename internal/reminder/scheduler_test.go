package reminder

import (
	"testing"
	"time"

	"github.com/rogerio-castellano/expiry-tracker/internal/models"
	"github.com/rogerio-castellano/expiry-tracker/internal/repo"
)

type recordedCycle struct {
	sent   int
	cycles int
}

func (r *recordedCycle) RecordReminderCycle(sent int) {
	r.sent += sent
	r.cycles++
}

func setupScheduler() (*Scheduler, *repo.InMemoryProfileRepository, *repo.InMemoryProductRepository, *repo.InMemoryNotificationRepository, *recordedCycle) {
	profiles := repo.NewInMemoryProfileRepository()
	products := repo.NewInMemoryProductRepository()
	notifications := repo.NewInMemoryNotificationRepository()
	rec := &recordedCycle{}
	return NewScheduler(profiles, products, notifications, rec), profiles, products, notifications, rec
}

var now = time.Date(2024, time.June, 10, 9, 0, 0, 0, time.Local)

func TestRunOnce_NotifiesWithinWindow(t *testing.T) {
	s, profiles, products, notifications, rec := setupScheduler()

	profiles.Create(models.Profile{UserID: "u-1", NotificationDaysBefore: 3, PushNotificationsEnabled: true})
	products.Create(models.Product{ID: "p-near", UserID: "u-1", Name: "Milk", ExpiryDate: "2024-06-12", Quantity: 1})
	products.Create(models.Product{ID: "p-far", UserID: "u-1", Name: "Rice", ExpiryDate: "2024-09-01", Quantity: 1})

	sent, err := s.RunOnce(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sent != 1 {
		t.Fatalf("sent = %d, want 1", sent)
	}

	got, _ := notifications.GetAllByUser("u-1")
	if len(got) != 1 {
		t.Fatalf("stored %d notifications, want 1", len(got))
	}
	if got[0].ProductID != "p-near" {
		t.Errorf("notified product = %s, want p-near", got[0].ProductID)
	}
	if got[0].Urgency != "critical" {
		t.Errorf("urgency = %s, want critical", got[0].Urgency)
	}
	if got[0].Message != "Milk expires in 2 days (2024-06-12)" {
		t.Errorf("message = %q", got[0].Message)
	}
	if rec.cycles != 1 || rec.sent != 1 {
		t.Errorf("metrics cycle = %+v", rec)
	}
}

func TestRunOnce_DedupesWithinSameDay(t *testing.T) {
	s, profiles, products, _, _ := setupScheduler()

	profiles.Create(models.Profile{UserID: "u-1", NotificationDaysBefore: 3, PushNotificationsEnabled: true})
	products.Create(models.Product{ID: "p-1", UserID: "u-1", Name: "Milk", ExpiryDate: "2024-06-11", Quantity: 1})

	if sent, _ := s.RunOnce(now); sent != 1 {
		t.Fatalf("first cycle sent %d, want 1", sent)
	}
	if sent, _ := s.RunOnce(now.Add(time.Hour)); sent != 0 {
		t.Fatalf("second cycle same day sent %d, want 0", sent)
	}
	if sent, _ := s.RunOnce(now.AddDate(0, 0, 1)); sent != 1 {
		t.Fatalf("next day sent %d, want 1", sent)
	}
}

func TestRunOnce_SkipsPushDisabledUsers(t *testing.T) {
	s, profiles, products, notifications, _ := setupScheduler()

	profiles.Create(models.Profile{UserID: "u-quiet", NotificationDaysBefore: 3, PushNotificationsEnabled: false})
	products.Create(models.Product{ID: "p-1", UserID: "u-quiet", Name: "Milk", ExpiryDate: "2024-06-10", Quantity: 1})

	if sent, _ := s.RunOnce(now); sent != 0 {
		t.Fatalf("sent %d, want 0", sent)
	}
	if got, _ := notifications.GetAllByUser("u-quiet"); len(got) != 0 {
		t.Errorf("stored %d notifications, want 0", len(got))
	}
}

func TestRunOnce_ExpiredProductStillNotifies(t *testing.T) {
	s, profiles, products, notifications, _ := setupScheduler()

	profiles.Create(models.Profile{UserID: "u-1", NotificationDaysBefore: 3, PushNotificationsEnabled: true})
	products.Create(models.Product{ID: "p-old", UserID: "u-1", Name: "Yogurt", ExpiryDate: "2024-06-01", Quantity: 1})

	if sent, _ := s.RunOnce(now); sent != 1 {
		t.Fatalf("sent %d, want 1", sent)
	}
	got, _ := notifications.GetAllByUser("u-1")
	if got[0].Message != "Yogurt expired on 2024-06-01" {
		t.Errorf("message = %q", got[0].Message)
	}
}

func TestRunOnce_RespectsPerUserWindow(t *testing.T) {
	s, profiles, products, _, _ := setupScheduler()

	// 7 days out: inside a 10-day window, outside a 3-day one.
	profiles.Create(models.Profile{UserID: "u-wide", NotificationDaysBefore: 10, PushNotificationsEnabled: true})
	profiles.Create(models.Profile{UserID: "u-narrow", NotificationDaysBefore: 3, PushNotificationsEnabled: true})
	products.Create(models.Product{ID: "p-wide", UserID: "u-wide", Name: "Cheese", ExpiryDate: "2024-06-17", Quantity: 1})
	products.Create(models.Product{ID: "p-narrow", UserID: "u-narrow", Name: "Cheese", ExpiryDate: "2024-06-17", Quantity: 1})

	sent, err := s.RunOnce(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sent != 1 {
		t.Fatalf("sent = %d, want 1 (only the wide-window user)", sent)
	}
}
