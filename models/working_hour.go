package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/labourhub/booking-app/scheduling"
)

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// WorkingHours is one weekday of a provider's availability profile.
type WorkingHours struct {
	gorm.Model
	ProviderID uint      `json:"provider_id"`
	Provider   User      `json:"provider" gorm:"foreignKey:ProviderID"`
	DayOfWeek  DayOfWeek `json:"day_of_week"`
	StartTime  string    `json:"start_time"` // Format "HH:MM" in 24h
	EndTime    string    `json:"end_time"`   // Format "HH:MM" in 24h
	IsWorkDay  bool      `json:"is_work_day" gorm:"default:true"`
	BreakStart *string   `json:"break_start"` // Optional break start time
	BreakEnd   *string   `json:"break_end"`   // Optional break end time
}

// WeekProfileOf normalizes working-hours rows into a scheduling profile.
// Malformed rows leave the day unavailable instead of failing the whole
// profile: a missing or broken profile degrades, it is never an error.
func WeekProfileOf(rows []WorkingHours) scheduling.WeekProfile {
	if len(rows) == 0 {
		return nil
	}
	profile := make(scheduling.WeekProfile, len(rows))
	for _, row := range rows {
		wd := time.Weekday(row.DayOfWeek)
		if !row.IsWorkDay {
			profile[wd] = scheduling.DayHours{}
			continue
		}
		start, startErr := scheduling.ParseClock(row.StartTime)
		end, endErr := scheduling.ParseClock(row.EndTime)
		if startErr != nil || endErr != nil {
			profile[wd] = scheduling.DayHours{}
			continue
		}
		day := scheduling.DayHours{Available: true, Start: start, End: end}
		if row.BreakStart != nil && row.BreakEnd != nil {
			bs, bsErr := scheduling.ParseClock(*row.BreakStart)
			be, beErr := scheduling.ParseClock(*row.BreakEnd)
			if bsErr == nil && beErr == nil && bs < be {
				day.Breaks = append(day.Breaks, scheduling.Interval{Start: bs, End: be})
			}
		}
		profile[wd] = day
	}
	return profile
}
