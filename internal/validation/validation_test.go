package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate_RequiredOnlyFailsOnEmpty(t *testing.T) {
	t.Parallel()

	rules := RuleSet{
		"email": {{Kind: Required}, {Kind: Email}},
	}

	res := Validate(map[string]string{"email": ""}, rules)
	require.False(t, res.Valid)
	require.Equal(t, "email is required", res.Errors["email"])

	res = Validate(map[string]string{"email": "   "}, rules)
	require.False(t, res.Valid)
	require.Equal(t, "email is required", res.Errors["email"])
}

func TestValidate_OptionalFieldSkipsWhenEmpty(t *testing.T) {
	t.Parallel()

	// No Required rule: an empty value must pass every other kind.
	rules := RuleSet{
		"phone_number": {{Kind: Phone}},
		"date":         {{Kind: Date}},
		"visitors":     {{Kind: Number}},
	}
	res := Validate(map[string]string{}, rules)
	require.True(t, res.Valid)
	require.Empty(t, res.Errors)
}

func TestValidate_FirstFailureWinsPerField(t *testing.T) {
	t.Parallel()

	rules := RuleSet{
		"password": {
			{Kind: Required},
			{Kind: MinLength, Param: 8, Message: "too short"},
			{Kind: Password, Message: "too weak"},
		},
	}
	res := Validate(map[string]string{"password": "abc"}, rules)
	require.False(t, res.Valid)
	require.Equal(t, "too short", res.Errors["password"])
}

func TestValidate_CustomMessageOverridesDefault(t *testing.T) {
	t.Parallel()

	rules := RuleSet{
		"email": {{Kind: Required, Message: "Email is required"}},
	}
	res := Validate(map[string]string{}, rules)
	require.Equal(t, "Email is required", res.Errors["email"])
}

func TestValidate_CustomRule(t *testing.T) {
	t.Parallel()

	match := func(v string) bool { return v == "secret1A" }
	rules := RuleSet{
		"password_confirm": {{Kind: Custom, Message: "Passwords do not match", Check: match}},
	}

	res := Validate(map[string]string{"password_confirm": "nope"}, rules)
	require.False(t, res.Valid)
	require.Equal(t, "Passwords do not match", res.Errors["password_confirm"])

	res = Validate(map[string]string{"password_confirm": "secret1A"}, rules)
	require.True(t, res.Valid)
}

func TestValidate_Email(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value string
		valid bool
	}{
		{"a@b.co", true},
		{"tourist@example.cm", true},
		{"a@b", false},
		{"a b@c.de", false},
		{"@example.com", false},
		{"plainaddress", false},
	}
	rules := RuleSet{"email": {{Kind: Email}}}
	for _, tc := range cases {
		res := Validate(map[string]string{"email": tc.value}, rules)
		require.Equal(t, tc.valid, res.Valid, "email %q", tc.value)
	}
}

func TestValidPassword(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value string
		valid bool
	}{
		{"Passw0rd", true},
		{"longenoughA1", true},
		{"short1A", false},     // 7 chars
		{"alllowercase1", false},
		{"ALLUPPERCASE1", false},
		{"NoDigitsHere", false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.valid, ValidPassword(tc.value), "password %q", tc.value)
	}
}

func TestValidate_Phone(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value string
		valid bool
	}{
		{"650123456", true},
		{"237650123456", true},
		{"+237650123456", true},
		{"22212345", true},
		{"123", false},
		{"+1 555 0100", false},
		{"950123456", false}, // 9 is not a valid block prefix
	}
	rules := RuleSet{"phone_number": {{Kind: Phone}}}
	for _, tc := range cases {
		res := Validate(map[string]string{"phone_number": tc.value}, rules)
		require.Equal(t, tc.valid, res.Valid, "phone %q", tc.value)
	}
}

func TestValidDate(t *testing.T) {
	t.Parallel()

	require.True(t, ValidDate("2026-08-29"))
	require.True(t, ValidDate("29/08/2026"))
	require.True(t, ValidDate("2026-08-29T10:00:00Z"))
	require.False(t, ValidDate("not a date"))
	require.False(t, ValidDate("2026-13-45"))
}

func TestValidNumber(t *testing.T) {
	t.Parallel()

	require.True(t, ValidNumber("3"))
	require.True(t, ValidNumber(" 2.5 "))
	require.False(t, ValidNumber("0"))
	require.False(t, ValidNumber("-1"))
	require.False(t, ValidNumber("abc"))
	require.False(t, ValidNumber("Inf"))
	require.False(t, ValidNumber("NaN"))
}

func TestValidate_LengthBounds(t *testing.T) {
	t.Parallel()

	rules := RuleSet{
		"special_requests": {{Kind: MaxLength, Param: 10}},
		"username":         {{Kind: MinLength, Param: 3}},
	}

	res := Validate(map[string]string{"special_requests": "0123456789X", "username": "ab"}, rules)
	require.False(t, res.Valid)
	require.Equal(t, "Maximum length is 10 characters", res.Errors["special_requests"])
	require.Equal(t, "Minimum length is 3 characters", res.Errors["username"])

	res = Validate(map[string]string{"special_requests": "  short  ", "username": "abc"}, rules)
	require.True(t, res.Valid)
}
