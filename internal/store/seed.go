package store

import (
	"context"
	"fmt"

	"github.com/livinghopeag/churchapi/internal/model"
)

// Seed inserts sample sermons, events, and announcements so a fresh install
// has content to render. It is a no-op for any table that already has rows.
// Returns the number of records inserted.
func (s *Store) Seed(ctx context.Context) (int, error) {
	inserted := 0

	var mediaCount int
	if err := s.db.GetContext(ctx, &mediaCount, "SELECT COUNT(*) FROM media"); err != nil {
		return 0, fmt.Errorf("count media: %w", err)
	}
	if mediaCount == 0 {
		for _, m := range sampleMedia() {
			m := m
			if err := s.CreateMedia(ctx, &m); err != nil {
				return inserted, err
			}
			inserted++
		}
	}

	var eventCount int
	if err := s.db.GetContext(ctx, &eventCount, "SELECT COUNT(*) FROM events"); err != nil {
		return inserted, fmt.Errorf("count events: %w", err)
	}
	if eventCount == 0 {
		for _, e := range sampleEvents() {
			e := e
			if err := s.CreateEvent(ctx, &e); err != nil {
				return inserted, err
			}
			inserted++
		}
	}

	var annCount int
	if err := s.db.GetContext(ctx, &annCount, "SELECT COUNT(*) FROM announcements"); err != nil {
		return inserted, fmt.Errorf("count announcements: %w", err)
	}
	if annCount == 0 {
		for _, a := range sampleAnnouncements() {
			a := a
			if err := s.CreateAnnouncement(ctx, &a); err != nil {
				return inserted, err
			}
			inserted++
		}
	}

	return inserted, nil
}

func sampleMedia() []model.Media {
	return []model.Media{
		{
			Title:       "Faith That Moves Mountains",
			Speaker:     "Pastor John",
			Date:        "March 15, 2025",
			Description: "A powerful message about stepping out in faith and trusting God's promises.",
			VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			IsActive:    true,
		},
		{
			Title:       "The Living Water",
			Speaker:     "Pastor Sarah",
			Date:        "March 8, 2025",
			Description: "Discovering the eternal source of life and refreshment in Jesus Christ.",
			VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			IsActive:    true,
		},
		{
			Title:       "Walking in Love",
			Speaker:     "Pastor David",
			Date:        "March 1, 2025",
			Description: "Understanding how to live out Christ's love in our daily relationships and interactions.",
			VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			IsActive:    true,
		},
	}
}

func sampleEvents() []model.Event {
	return []model.Event{
		{
			Title:       "Baptism Service",
			Description: "Join us for a special baptism service at the beach. If you're ready to take this step of faith, contact us to participate.",
			Date:        "March 25, 2025",
			Time:        "10:00 AM",
			Location:    "Qantab Beach",
			ImageURL:    "https://images.unsplash.com/photo-1516474642997-b86ccf7065a4",
			IsActive:    true,
		},
		{
			Title:       "Easter Celebration",
			Description: "Celebrate the resurrection of Jesus Christ with us. Special music, messages, and fellowship meal following the service.",
			Date:        "April 1, 2025",
			Time:        "10:00 AM",
			Location:    "Church Main Hall",
			ImageURL:    "https://images.unsplash.com/photo-1655636237961-1fa3457c19a9",
			IsActive:    true,
		},
		{
			Title:       "Worship Night",
			Description: "An evening of worship and praise to God.",
			Date:        "February 28, 2025",
			Time:        "7:00 PM",
			Location:    "Church Main Hall",
			ImageURL:    "https://images.unsplash.com/photo-1579975096649-e773152b04cb",
			IsActive:    false,
		},
	}
}

func sampleAnnouncements() []model.Announcement {
	return []model.Announcement{
		{
			Title:    "Welcome to Our New Website",
			Content:  "We are excited to launch our new church website. Explore sermons, events, and more.",
			Date:     "March 1, 2025",
			Icon:     "Megaphone",
			IsActive: true,
		},
		{
			Title:    "Friday Service Time",
			Content:  "Our main service meets every Friday at 10:00 AM. All are welcome.",
			Date:     "March 1, 2025",
			Icon:     "Calendar",
			IsActive: true,
		},
	}
}
