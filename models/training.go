package models

import (
	"fmt"
	"strings"
	"time"
)

// ActivityType is persisted as its string code so reordering the constants
// can never reinterpret stored rows.
type ActivityType string

const (
	ActivityRunning  ActivityType = "RUNNING"
	ActivityCycling  ActivityType = "CYCLING"
	ActivityWalking  ActivityType = "WALKING"
	ActivitySwimming ActivityType = "SWIMMING"
	ActivityTennis   ActivityType = "TENNIS"
)

// ParseActivityType matches codes case-insensitively and returns the
// canonical uppercase form.
func ParseActivityType(s string) (ActivityType, error) {
	switch ActivityType(strings.ToUpper(s)) {
	case ActivityRunning:
		return ActivityRunning, nil
	case ActivityCycling:
		return ActivityCycling, nil
	case ActivityWalking:
		return ActivityWalking, nil
	case ActivitySwimming:
		return ActivitySwimming, nil
	case ActivityTennis:
		return ActivityTennis, nil
	}
	return "", fmt.Errorf("unknown activity type: %q", s)
}

type Training struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	UserID       uint         `gorm:"index;not null" json:"userId"`
	User         User         `json:"-"`
	StartTime    time.Time    `gorm:"not null" json:"-"`
	EndTime      time.Time    `gorm:"not null" json:"-"`
	ActivityType ActivityType `gorm:"type:varchar(16);not null" json:"activityType"`
	Distance     float64      `json:"distance"`
	AverageSpeed float64      `json:"averageSpeed"`
}
