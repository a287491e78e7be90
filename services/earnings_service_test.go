package services

import (
	"testing"
	"time"

	"github.com/drivelink/driving_school/models"
)

func booking(status string, price float64, date time.Time) models.Booking {
	return models.Booking{Status: status, TotalPrice: price, LessonDate: date}
}

func TestComputeEarningsCurrentMonth(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		booking(models.BookingStatusCompleted, 9000, now.AddDate(0, 0, -3)),
		booking(models.BookingStatusCompleted, 34000, now.AddDate(0, 0, -1)),
	}

	summary := ComputeEarnings(bookings, now, 0.2)

	cm := summary.CurrentMonth
	if cm.Gross != 43000 {
		t.Errorf("gross = %v, want 43000", cm.Gross)
	}
	if cm.Commission != 8600.00 {
		t.Errorf("commission = %v, want 8600.00", cm.Commission)
	}
	if cm.Earnings != 34400.00 {
		t.Errorf("earnings = %v, want 34400.00", cm.Earnings)
	}
	if cm.LessonCount != 2 {
		t.Errorf("lesson count = %d, want 2", cm.LessonCount)
	}
}

func TestComputeEarningsIgnoresNonCompleted(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		booking(models.BookingStatusCompleted, 10000, now),
		booking(models.BookingStatusPending, 5000, now),
		booking(models.BookingStatusCancelled, 7000, now),
	}

	summary := ComputeEarnings(bookings, now, 0.2)

	if summary.CurrentMonth.Gross != 10000 {
		t.Errorf("gross = %v, want 10000 (pending/cancelled must not count)", summary.CurrentMonth.Gross)
	}
	if summary.PendingEarnings != 0 {
		t.Errorf("pending = %v, want 0", summary.PendingEarnings)
	}
}

func TestComputeEarningsPendingEstimate(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		booking(models.BookingStatusConfirmed, 10000, now.AddDate(0, 0, 5)),
		booking(models.BookingStatusConfirmed, 2500, now.AddDate(0, 0, 7)),
	}

	summary := ComputeEarnings(bookings, now, 0.2)

	if summary.PendingEarnings != 10000.00 {
		t.Errorf("pending = %v, want 10000.00 (net of 12500)", summary.PendingEarnings)
	}
	if summary.CurrentMonth.Gross != 0 {
		t.Errorf("confirmed bookings must not count toward gross, got %v", summary.CurrentMonth.Gross)
	}
}

func TestComputeEarningsMonthlyWindow(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		// Inside the window.
		booking(models.BookingStatusCompleted, 8000, time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)),
		// 13 months back: outside the window but still lifetime.
		booking(models.BookingStatusCompleted, 9999, time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)),
	}

	summary := ComputeEarnings(bookings, now, 0.2)

	if len(summary.Monthly) != 12 {
		t.Fatalf("monthly window length = %d, want 12", len(summary.Monthly))
	}
	if summary.Monthly[0].Month != "2025-04" {
		t.Errorf("oldest month = %q, want 2025-04", summary.Monthly[0].Month)
	}
	if summary.Monthly[11].Month != "2026-03" {
		t.Errorf("newest month = %q, want 2026-03", summary.Monthly[11].Month)
	}
	if summary.Monthly[0].Gross != 8000 {
		t.Errorf("oldest bucket gross = %v, want 8000", summary.Monthly[0].Gross)
	}
	if summary.LifetimeGross != 17999 {
		t.Errorf("lifetime gross = %v, want 17999", summary.LifetimeGross)
	}
	if summary.LifetimeLessons != 2 {
		t.Errorf("lifetime lessons = %d, want 2", summary.LifetimeLessons)
	}
}

func TestComputeEarningsRounding(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		booking(models.BookingStatusCompleted, 333, now),
	}

	summary := ComputeEarnings(bookings, now, 0.2)

	if summary.CurrentMonth.Commission != 66.6 {
		t.Errorf("commission = %v, want 66.6", summary.CurrentMonth.Commission)
	}
	if summary.CurrentMonth.Earnings != 266.4 {
		t.Errorf("earnings = %v, want 266.4", summary.CurrentMonth.Earnings)
	}
}

func TestComputeEarningsEmpty(t *testing.T) {
	summary := ComputeEarnings(nil, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), 0.2)

	if summary.LifetimeGross != 0 || summary.PendingEarnings != 0 {
		t.Errorf("empty snapshot must aggregate to zero, got %+v", summary)
	}
	if len(summary.Monthly) != 12 {
		t.Errorf("monthly window length = %d, want 12", len(summary.Monthly))
	}
}
