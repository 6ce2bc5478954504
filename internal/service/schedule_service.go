package service

import (
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/inclusivo-app/campus-api/internal/models"
)

// ScheduleService computes weekly, daily and next-class views over a fixed
// roster of class sessions. The roster is immutable after construction, so
// reads need no locking. The clock is injected so temporal behaviour is
// testable.
type ScheduleService struct {
	roster []models.ClassSession
	now    func() time.Time
	logger *zap.Logger
}

// NewScheduleService instantiates ScheduleService. A nil clock defaults to
// the local wall clock.
func NewScheduleService(roster []models.ClassSession, now func() time.Time, logger *zap.Logger) *ScheduleService {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{roster: roster, now: now, logger: logger}
}

// Weekly buckets the roster by weekday. All seven buckets are present,
// empty ones included, and each is sorted ascending by start time.
// Zero-padded "HH:MM" strings make the lexicographic sort a time sort.
func (s *ScheduleService) Weekly() models.WeeklySchedule {
	schedule := make(models.WeeklySchedule, len(models.WeekDays))
	for _, day := range models.WeekDays {
		schedule[day] = []models.ClassSession{}
	}
	for _, session := range s.roster {
		schedule[session.Day] = append(schedule[session.Day], session)
	}
	for day := range schedule {
		sortByStartTime(schedule[day])
	}
	return schedule
}

// ByDay returns the sessions of one weekday, sorted by start time.
func (s *ScheduleService) ByDay(day models.DayOfWeek) []models.ClassSession {
	var sessions []models.ClassSession
	for _, session := range s.roster {
		if session.Day == day {
			sessions = append(sessions, session)
		}
	}
	sortByStartTime(sessions)
	return sessions
}

// Today returns the current weekday's sessions.
func (s *ScheduleService) Today() []models.ClassSession {
	return s.ByDay(models.DayFromTime(s.now()))
}

// Next returns the first session today whose start time is still ahead of
// the clock; when today is exhausted it scans the following weekdays,
// wrapping after Sunday, and returns the first session of the first
// non-empty day. Nil when the roster holds nothing upcoming.
func (s *ScheduleService) Next() *models.ClassSession {
	now := s.now()
	currentTime := now.Format("15:04")

	for _, session := range s.Today() {
		if session.StartTime > currentTime {
			session := session
			return &session
		}
	}

	todayIndex := dayIndex(models.DayFromTime(now))
	for i := 1; i < len(models.WeekDays); i++ {
		day := models.WeekDays[(todayIndex+i)%len(models.WeekDays)]
		if sessions := s.ByDay(day); len(sessions) > 0 {
			session := sessions[0]
			return &session
		}
	}

	return nil
}

// MinutesUntilNext returns the minutes between the next class's start time
// applied to the current date and now, or nil when there is no next class.
// The value is negative when the lookup returned a class already in
// progress; consumers use that to render "in progress" instead of a
// countdown.
func (s *ScheduleService) MinutesUntilNext() *int {
	next := s.Next()
	if next == nil {
		return nil
	}

	now := s.now()
	start, err := time.Parse("15:04", next.StartTime)
	if err != nil {
		s.logger.Warn("unparseable session start time", zap.String("session_id", next.ID), zap.String("start_time", next.StartTime))
		return nil
	}
	classTime := time.Date(now.Year(), now.Month(), now.Day(), start.Hour(), start.Minute(), 0, 0, now.Location())

	minutes := int(math.Floor(classTime.Sub(now).Minutes()))
	return &minutes
}

func sortByStartTime(sessions []models.ClassSession) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartTime < sessions[j].StartTime
	})
}

func dayIndex(day models.DayOfWeek) int {
	for i, d := range models.WeekDays {
		if d == day {
			return i
		}
	}
	return 0
}
