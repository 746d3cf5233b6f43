package domain

import (
	"testing"
	"time"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusPending, false},
		{StatusConfirmed, StatusCancelled, false},
		{StatusConfirmed, StatusPending, false},
		{StatusConfirmed, StatusConfirmed, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCancelled, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("CanTransitionTo(%s → %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestBooking_CanActorTransition(t *testing.T) {
	b := &Booking{StudentID: "student_1", Status: StatusPending}
	const ownerID = "owner_1"

	cases := []struct {
		name   string
		actor  Actor
		target BookingStatus
		want   bool
	}{
		{"owner confirms", Actor{ID: ownerID, Role: RoleOwner}, StatusConfirmed, true},
		{"admin confirms", Actor{ID: "admin_1", Role: RoleAdmin}, StatusConfirmed, true},
		{"creating student confirms", Actor{ID: "student_1", Role: RoleStudent}, StatusConfirmed, false},
		{"creating student cancels", Actor{ID: "student_1", Role: RoleStudent}, StatusCancelled, true},
		{"other student cancels", Actor{ID: "student_2", Role: RoleStudent}, StatusCancelled, false},
		{"owner cancels", Actor{ID: ownerID, Role: RoleOwner}, StatusCancelled, true},
		{"other owner confirms", Actor{ID: "owner_2", Role: RoleOwner}, StatusConfirmed, false},
		{"admin cancels", Actor{ID: "admin_1", Role: RoleAdmin}, StatusCancelled, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.CanActorTransition(tc.actor, tc.target, ownerID); got != tc.want {
				t.Fatalf("CanActorTransition(%+v, %s) = %v, want %v", tc.actor, tc.target, got, tc.want)
			}
		})
	}
}

func TestBooking_Overlaps(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, time.September, d, 0, 0, 0, 0, time.UTC)
	}
	b := &Booking{DateFrom: day(10), DateTo: day(20)}

	cases := []struct {
		name     string
		from, to time.Time
		want     bool
	}{
		{"inside", day(12), day(15), true},
		{"covering", day(1), day(30), true},
		{"leading edge", day(5), day(11), true},
		{"trailing edge", day(19), day(25), true},
		{"before", day(1), day(10), false},
		{"after", day(20), day(25), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Overlaps(tc.from, tc.to); got != tc.want {
				t.Fatalf("Overlaps(%v, %v) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleStudent, RoleOwner, RoleAdmin} {
		if !ValidRole(role) {
			t.Errorf("ValidRole(%q) = false", role)
		}
	}
	if ValidRole("superuser") || ValidRole("") {
		t.Errorf("unexpected role accepted")
	}
}
