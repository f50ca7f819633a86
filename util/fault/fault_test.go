package fault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"itemshare/util/fault"
)

func TestCodeOf(t *testing.T) {
	err := fault.New(fault.UserNotFound, "user %d does not exist", 7)
	require.EqualError(t, err, "user 7 does not exist")
	require.Equal(t, fault.UserNotFound, fault.CodeOf(err))
}

func TestCodeOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("list bookings: %w", fault.New(fault.UnknownState, "Unknown state: %s", "BOGUS"))
	require.Equal(t, fault.UnknownState, fault.CodeOf(err))
}

func TestCodeOf_Uncoded(t *testing.T) {
	require.Equal(t, fault.Code(""), fault.CodeOf(errors.New("plain")))
	require.Equal(t, fault.Code(""), fault.CodeOf(nil))
}
