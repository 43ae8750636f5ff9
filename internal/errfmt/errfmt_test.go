package errfmt

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Eng-Denzel/NaTourCam/internal/api"
)

func TestFormat_NilError(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", Format(nil))
}

func TestFormat_KnownStatusesUseFixedSentences(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status int
		want   string
	}{
		{400, "Bad request - please check your input"},
		{401, "Unauthorized - please log in again"},
		{403, "Forbidden - you do not have permission to perform this action"},
		{404, "Not found - the requested resource was not found"},
		{409, "Conflict - the request could not be completed due to a conflict"},
		{500, "Internal server error - please try again later"},
		{502, "Bad gateway - please try again later"},
		{503, "Service unavailable - please try again later"},
	}
	for _, tc := range cases {
		// The fixed sentence wins even when the body carries a detail.
		err := api.NewRequestError(tc.status, []byte(`{"detail":"server says otherwise"}`))
		require.Equal(t, tc.want, Format(err), "status %d", tc.status)
	}
}

func TestFormat_UnknownStatusProbesPayload(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
		want string
	}{
		{"detail field", `{"detail":"booking date is in the past"}`, "Booking date is in the past"},
		{"message field", `{"message":"try later"}`, "Try later"},
		{"field errors", `{"booking_date":["this field may not be blank"]}`, "This field may not be blank"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := api.NewRequestError(422, []byte(tc.body))
			require.Equal(t, tc.want, Format(err))
		})
	}
}

func TestFormat_UnknownStatusWithoutPayload(t *testing.T) {
	t.Parallel()

	err := api.NewRequestError(418, []byte("i am not json"))
	require.Equal(t, "HTTP 418 - an error occurred", Format(err))
}

func TestFormat_NetworkError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("%w: dial tcp: connection refused", api.ErrNetwork)
	require.Equal(t, "Network error - please check your connection", Format(err))
}

func TestFormat_PlainErrorFallsBackCapitalized(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Something odd happened", Format(errors.New("something odd happened")))
}
