package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"itemshare/model"
)

func TestParseBookingState(t *testing.T) {
	cases := []struct {
		in   string
		want model.BookingState
		ok   bool
	}{
		{"", model.StateAll, true},
		{"ALL", model.StateAll, true},
		{"all", model.StateAll, true},
		{"Current", model.StateCurrent, true},
		{"PAST", model.StatePast, true},
		{"future", model.StateFuture, true},
		{"WAITING", model.StateWaiting, true},
		{"rejected", model.StateRejected, true},
		{"APPROVED", "", false},
		{"bogus", "", false},
	}
	for _, tc := range cases {
		got, ok := model.ParseBookingState(tc.in)
		require.Equal(t, tc.ok, ok, "input %q", tc.in)
		require.Equal(t, tc.want, got, "input %q", tc.in)
	}
}
