package models

import "testing"

func TestBookingTotalDerived(t *testing.T) {
	b := Booking{BaseRate: 200, HoursBooked: 2}
	if got := b.Total(); got != 400.00 {
		t.Errorf("derived total = %v, want 400.00", got)
	}
}

func TestBookingTotalStoredWins(t *testing.T) {
	stored := 375.0
	b := Booking{BaseRate: 200, HoursBooked: 2, TotalAmount: &stored}
	if got := b.Total(); got != 375.0 {
		t.Errorf("total = %v, want stored 375.0", got)
	}
}

func TestValidPaymentStatus(t *testing.T) {
	for _, status := range []string{PaymentPending, PaymentPartial, PaymentPaid} {
		if !ValidPaymentStatus(status) {
			t.Errorf("%q rejected", status)
		}
	}
	for _, status := range []string{"", "overdue", "Pending"} {
		if ValidPaymentStatus(status) {
			t.Errorf("%q accepted", status)
		}
	}
}
