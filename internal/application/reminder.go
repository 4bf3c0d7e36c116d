package application

import (
	"context"
	"log"
	"time"

	"igrejaconnect/internal/ports/output"
)

// ReminderService sends a push notification to every participant of the
// events happening today. It runs from a cron schedule; delivery is
// best-effort and failures are only logged.
type ReminderService struct {
	eventRepo  output.EventRepository
	userRepo   output.UserRepository
	push       output.PushGateway
	translator output.T
	locale     string
	loc        *time.Location
	now        func() time.Time
}

func NewReminderService(
	eventRepo output.EventRepository,
	userRepo output.UserRepository,
	push output.PushGateway,
	translator output.T,
	locale string,
	loc *time.Location,
) *ReminderService {
	return &ReminderService{
		eventRepo:  eventRepo,
		userRepo:   userRepo,
		push:       push,
		translator: translator,
		locale:     locale,
		loc:        loc,
		now:        time.Now,
	}
}

// SendDailyReminders notifies participants of every event dated today.
func (s *ReminderService) SendDailyReminders(ctx context.Context) error {
	now := s.now().In(s.loc)
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, s.loc)
	tomorrow := today.AddDate(0, 0, 1)

	events, err := s.eventRepo.FindByDateRange(ctx, today, tomorrow)
	if err != nil {
		return err
	}

	sent := 0
	for _, event := range events {
		title := s.translator.T(s.locale, "push.reminder.title", nil)
		body := s.translator.T(s.locale, "push.reminder.body", map[string]any{
			"Title": event.Title,
			"Start": event.StartTime,
			"Place": event.Location,
		})
		for _, userID := range event.ParticipantIDs {
			user, err := s.userRepo.FindByID(ctx, userID)
			if err != nil {
				log.Printf("lembrete: perfil não encontrado (user=%s): %v", userID, err)
				continue
			}
			if user.PushToken == "" {
				continue
			}
			if err := s.push.Send(ctx, user.PushToken, title, body); err != nil {
				log.Printf("lembrete: falha no envio (user=%s, event=%s): %v", userID, event.ID, err)
				continue
			}
			sent++
		}
	}
	if sent > 0 {
		log.Printf("✅ Lembretes enviados: %d (eventos de hoje: %d)", sent, len(events))
	}
	return nil
}
