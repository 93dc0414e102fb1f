package domain

import "testing"

func TestRequestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to RequestStatus
		want     bool
	}{
		{RequestPending, RequestProcessing, true},
		{RequestPending, RequestRejected, true},
		{RequestPending, RequestReleased, false},
		{RequestProcessing, RequestReleased, true},
		{RequestProcessing, RequestRejected, true},
		{RequestProcessing, RequestPending, false},
		{RequestReleased, RequestProcessing, false},
		{RequestRejected, RequestProcessing, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
