package utils

import "time"

const millisPerDay = 86_400_000

// RentalDays returns the number of billable rental days between start and
// end: the ceiling of the elapsed time in whole days. A range that runs past
// a day boundary by any amount bills the next full day. Callers must reject
// ranges where end is not strictly after start before calling.
func RentalDays(start, end time.Time) int64 {
	millis := end.Sub(start).Milliseconds()
	if millis <= 0 {
		return 0
	}
	return (millis + millisPerDay - 1) / millisPerDay
}

// TotalPrice returns the rental total for the given day count and daily rate
// in minor currency units.
func TotalPrice(days, dailyRate int64) int64 {
	return days * dailyRate
}

// SplitProfit divides a booking total between the vehicle owner and the
// platform. The platform share truncates toward zero and the owner receives
// the remainder, so the two always sum exactly to total.
func SplitProfit(total, platformFeePercent int64) (owner, platform int64) {
	platform = total * platformFeePercent / 100
	owner = total - platform
	return owner, platform
}
