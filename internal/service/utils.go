package service

import "time"

// utcDay обрезает момент времени до календарной даты в UTC. Дневной лимит кликов
// ключуется этой датой.
func utcDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
