package users_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NeedsOnboardingFlow_EvaluatedAgainstSpaceCount(t *testing.T) {
	tests := []struct {
		name            string
		needsOnboarding bool
		spaceCount      int64
		expected        bool
	}{
		{
			name:            "new user with no spaces needs onboarding",
			needsOnboarding: true,
			spaceCount:      0,
			expected:        true,
		},
		{
			name:            "flagged user with spaces still needs onboarding",
			needsOnboarding: true,
			spaceCount:      2,
			expected:        true,
		},
		{
			name:            "cleared user with no spaces is routed back to onboarding",
			needsOnboarding: false,
			spaceCount:      0,
			expected:        true,
		},
		{
			name:            "cleared user with spaces goes straight to dashboard",
			needsOnboarding: false,
			spaceCount:      1,
			expected:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &User{NeedsOnboarding: tt.needsOnboarding}
			assert.Equal(t, tt.expected, user.NeedsOnboardingFlow(tt.spaceCount))
		})
	}
}

func Test_FullName_PrefersFirstAndLastNameOverDisplayName(t *testing.T) {
	user := &User{FirstName: "Ada", LastName: "Lovelace", DisplayName: "ada"}
	assert.Equal(t, "Ada Lovelace", user.FullName())

	user = &User{DisplayName: "ada"}
	assert.Equal(t, "ada", user.FullName())

	user = &User{FirstName: "Ada"}
	assert.Equal(t, "Ada", user.FullName())
}

func Test_HasPassword_EmptyOrNilHash_ReturnsFalse(t *testing.T) {
	user := &User{}
	assert.False(t, user.HasPassword())

	empty := ""
	user.HashedPassword = &empty
	assert.False(t, user.HasPassword())

	hash := "$2a$10$abcdefghijklmnopqrstuv"
	user.HashedPassword = &hash
	assert.True(t, user.HasPassword())
}
