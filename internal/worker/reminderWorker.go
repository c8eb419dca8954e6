package worker

import (
	"context"
	"time"

	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/entity"
	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/service"

	"github.com/sirupsen/logrus"
)

// ReminderWorker runs the reminder evaluator once at startup and then on
// every tick.
type ReminderWorker struct {
	reminderService service.ReminderService
	interval        time.Duration
}

func NewReminderWorker(reminderService service.ReminderService, interval time.Duration) *ReminderWorker {
	return &ReminderWorker{
		reminderService: reminderService,
		interval:        interval,
	}
}

func (w *ReminderWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logrus.Info("Reminder worker started")

	// check immediately so a same-day birthday isn't delayed by a full
	// interval
	w.checkBirthdays(ctx)

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Reminder worker stopped")
			return
		case <-ticker.C:
			w.checkBirthdays(ctx)
		}
	}
}

func (w *ReminderWorker) checkBirthdays(ctx context.Context) {
	created, err := w.reminderService.CheckBirthdays(ctx, entity.Today())
	if err != nil {
		logrus.Errorf("Failed to evaluate birthday reminders: %v", err)
		return
	}

	if created > 0 {
		logrus.Infof("Created %d birthday notification(s)", created)
	}
}
