package model

import "testing"

func TestOrderStatusCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"received to preparation", OrderStatusReceived, OrderStatusInPreparation, true},
		{"received to cancelled", OrderStatusReceived, OrderStatusCancelled, true},
		{"received to dispatched", OrderStatusReceived, OrderStatusDispatched, false},
		{"received to delivered", OrderStatusReceived, OrderStatusDelivered, false},
		{"preparation to dispatched", OrderStatusInPreparation, OrderStatusDispatched, true},
		{"preparation to cancelled", OrderStatusInPreparation, OrderStatusCancelled, true},
		{"preparation to delivered", OrderStatusInPreparation, OrderStatusDelivered, false},
		{"dispatched to delivered", OrderStatusDispatched, OrderStatusDelivered, true},
		{"dispatched to cancelled", OrderStatusDispatched, OrderStatusCancelled, true},
		{"dispatched to preparation", OrderStatusDispatched, OrderStatusInPreparation, false},
		{"delivered is terminal", OrderStatusDelivered, OrderStatusCancelled, false},
		{"cancelled is terminal", OrderStatusCancelled, OrderStatusReceived, false},
		{"no self transition", OrderStatusReceived, OrderStatusReceived, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.CanTransition(tc.to); got != tc.want {
				t.Fatalf("CanTransition(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestOrderStatusIsValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusReceived, OrderStatusInPreparation, OrderStatusDispatched, OrderStatusDelivered, OrderStatusCancelled} {
		if !s.IsValid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if OrderStatus("SHIPPED").IsValid() {
		t.Fatal("expected unknown status to be invalid")
	}
}

func TestUserTypeValues(t *testing.T) {
	cases := []struct {
		got   UserType
		value string
	}{
		{UserTypeAdmin, "ADMIN"},
		{UserTypeClient, "CLIENT"},
	}
	for _, tc := range cases {
		if string(tc.got) != tc.value {
			t.Fatalf("expected %s, got %s", tc.value, tc.got)
		}
	}
}

func TestPaymentStatusValues(t *testing.T) {
	cases := []struct {
		got   PaymentStatus
		value string
	}{
		{PaymentStatusConfirmed, "CONFIRMED"},
		{PaymentStatusDeclined, "DECLINED"},
	}
	for _, tc := range cases {
		if string(tc.got) != tc.value {
			t.Fatalf("expected %s, got %s", tc.value, tc.got)
		}
	}
}
