package service

import (
	"context"
	"sort"
	"time"

	"github.com/tarnowskisean-beep/cook-book/internal/models"
	"github.com/tarnowskisean-beep/cook-book/internal/repository"
	"github.com/tarnowskisean-beep/cook-book/internal/transfer"
)

// CalendarService is a read-only projection over scheduled posts. No
// mutation happens here.
type CalendarService interface {
	Calendar(ctx context.Context, from, to time.Time) ([]*transfer.CalendarDay, error)
	Queue(ctx context.Context, from, to time.Time) ([]*transfer.ScheduledEntry, error)
}

type calendarService struct {
	pr repository.PostRepository
}

func NewCalendarService(pr repository.PostRepository) CalendarService {
	return &calendarService{pr: pr}
}

// Calendar groups scheduled posts by calendar date, days ordered
// chronologically, posts within a day ordered by time.
func (s *calendarService) Calendar(ctx context.Context, from, to time.Time) ([]*transfer.CalendarDay, error) {
	entries, err := s.Queue(ctx, from, to)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]*transfer.ScheduledEntry)
	for _, entry := range entries {
		key := entry.ScheduledTime.Format("2006-01-02")
		grouped[key] = append(grouped[key], entry)
	}

	dates := make([]string, 0, len(grouped))
	for date := range grouped {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	days := make([]*transfer.CalendarDay, 0, len(dates))
	for _, date := range dates {
		days = append(days, &transfer.CalendarDay{Date: date, Posts: grouped[date]})
	}
	return days, nil
}

// Queue returns the flat upcoming list ordered by scheduled time.
func (s *calendarService) Queue(ctx context.Context, from, to time.Time) ([]*transfer.ScheduledEntry, error) {
	rows, err := s.pr.ListScheduled(ctx, from, to)
	if err != nil {
		return nil, err
	}

	entries := make([]*transfer.ScheduledEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, scheduledEntry(row))
	}
	return entries, nil
}

func scheduledEntry(row *repository.ScheduledPostRow) *transfer.ScheduledEntry {
	entry := &transfer.ScheduledEntry{
		PostID:        row.PostID,
		ContentID:     row.ContentID,
		ScheduledTime: row.ScheduledTime,
		Platform:      row.Platform,
		MediaType:     row.MediaType,
		URL:           row.URL,
		Script:        row.Script,
		ItemName:      row.ItemName,
		ProjectEmoji:  row.ProjectEmoji,
	}
	if entry.Script == "" {
		entry.Script = models.DecodeMetrics(row.Metrics).Script
	}
	return entry
}
