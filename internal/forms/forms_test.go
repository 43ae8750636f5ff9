package forms

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Eng-Denzel/NaTourCam/internal/validation"
)

func postForm(t *testing.T, values url.Values) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestParse_ReadsNamedFields(t *testing.T) {
	t.Parallel()

	r := postForm(t, url.Values{
		"email":    {"tourist@example.cm"},
		"password": {"Passw0rd"},
		"ignored":  {"dropped"},
	})

	f, err := Parse(r, "email", "password")
	require.NoError(t, err)
	require.Equal(t, "tourist@example.cm", f.Get("email"))
	require.Equal(t, "Passw0rd", f.Get("password"))
	require.Empty(t, f.Get("ignored"))
}

func TestValidate_RecordsErrorsAndKeepsValues(t *testing.T) {
	t.Parallel()

	r := postForm(t, url.Values{"email": {"not-an-email"}})
	f, err := Parse(r, "email", "password")
	require.NoError(t, err)

	rules := validation.RuleSet{
		"email":    {{Kind: validation.Required}, {Kind: validation.Email}},
		"password": {{Kind: validation.Required, Message: "Password is required"}},
	}
	require.False(t, f.Validate(rules))
	require.Equal(t, "Please enter a valid email", f.Error("email"))
	require.Equal(t, "Password is required", f.Error("password"))
	// Submitted values survive for the re-render.
	require.Equal(t, "not-an-email", f.Get("email"))
}

func TestValidate_CleanForm(t *testing.T) {
	t.Parallel()

	r := postForm(t, url.Values{"email": {"a@b.co"}, "password": {"Passw0rd"}})
	f, err := Parse(r, "email", "password")
	require.NoError(t, err)

	rules := validation.RuleSet{
		"email":    {{Kind: validation.Required}, {Kind: validation.Email}},
		"password": {{Kind: validation.Required}, {Kind: validation.Password}},
	}
	require.True(t, f.Validate(rules))
	require.Empty(t, f.Errors)
}
