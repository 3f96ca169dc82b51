package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/diegoclair/staff-desk-bot/internal/domain/contract"
)

// stopper is the part of *time.Timer the scheduler needs
type stopper interface {
	Stop() bool
}

// NextAnchor returns the next weekday at hour:00 strictly ahead of now, in now's location.
// On the anchor day itself the hour is already taken once now.Hour() >= hour.
func NextAnchor(now time.Time, weekday time.Weekday, hour int) time.Time {
	daysAhead := (int(weekday) - int(now.Weekday()) + 7) % 7
	if daysAhead == 0 && now.Hour() >= hour {
		daysAhead = 7
	}

	day := now.AddDate(0, 0, daysAhead)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, now.Location())
}

// scheduler fires the reminder dispatcher once a week and re-arms itself after every firing
type scheduler struct {
	dispatcher contract.ReminderDispatcher
	loc        *time.Location
	weekday    time.Weekday
	hour       int
	now        func() time.Time
	afterFunc  func(d time.Duration, f func()) stopper

	mu      sync.Mutex
	timer   stopper
	next    time.Time
	running bool
}

func newScheduler(dispatcher contract.ReminderDispatcher, loc *time.Location, weekday time.Weekday, hour int) *scheduler {
	return &scheduler{
		dispatcher: dispatcher,
		loc:        loc,
		weekday:    weekday,
		hour:       hour,
		now:        time.Now,
		afterFunc: func(d time.Duration, f func()) stopper {
			return time.AfterFunc(d, f)
		},
	}
}

func (s *scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	log.Println("Scheduler starting...")
	s.arm()
}

func (s *scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	log.Println("Scheduler stopping...")
	s.running = false
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// NextRun is the zero time when the scheduler is stopped
func (s *scheduler) NextRun() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return time.Time{}
	}
	return s.next
}

// arm must be called with mu held
func (s *scheduler) arm() {
	now := s.now().In(s.loc)
	s.next = NextAnchor(now, s.weekday, s.hour)
	s.timer = s.afterFunc(s.next.Sub(now), s.fire)
	log.Printf("Next reminder run at %s", s.next.Format("2006-01-02 15:04:05 MST"))
}

func (s *scheduler) fire() {
	s.mu.Lock()
	running := s.running
	s.mu.Unlock()
	if !running {
		return
	}

	now := s.now().In(s.loc)
	if now.Weekday() == s.weekday && now.Hour() == s.hour && now.Minute() == 0 {
		summary, err := s.dispatcher.Dispatch(context.Background())
		if err != nil {
			log.Printf("Reminder run failed: %v", err)
		} else {
			log.Printf("Reminder run %s finished", summary.RunID)
		}
	} else {
		log.Printf("Timer fired off schedule at %s, re-arming", now.Format("2006-01-02 15:04:05 MST"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		s.arm()
	}
}
