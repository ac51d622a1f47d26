package repoargs

import "time"

type EventCreate struct {
	Name         string
	StartsAt     time.Time
	EndsAt       time.Time
	Capacity     int64
	PointsBudget int64
	Organizers   []int64
}
