package service_test

import (
	"testing"

	"competition-registration-backend/internal/database/models"
	apperrors "competition-registration-backend/internal/errors"
	"competition-registration-backend/internal/service"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func relayRoster(ids ...uuid.UUID) *models.TeamRoster {
	roster := &models.TeamRoster{Name: "Comets", Kind: models.DisciplineKindRelay}
	for i, id := range ids {
		roster.Members = append(roster.Members, models.NewRelayMember(id, i+1, i == 0))
	}
	return roster
}

func TestValidateSingleCaptain(t *testing.T) {
	policy := service.NewCaptainPolicy()
	a, b := uuid.New(), uuid.New()

	assert.True(t, policy.ValidateSingleCaptain(&models.TeamRoster{Kind: models.DisciplineKindGroup}))
	assert.True(t, policy.ValidateSingleCaptain(relayRoster(a, b)))

	none := relayRoster(a, b)
	none.Members[0].Captain = false
	assert.False(t, policy.ValidateSingleCaptain(none))

	two := relayRoster(a, b)
	two.Members[1].Captain = true
	assert.False(t, policy.ValidateSingleCaptain(two))
}

func TestReassignOnRemoval(t *testing.T) {
	policy := service.NewCaptainPolicy()
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	t.Run("captain removed promotes first remaining", func(t *testing.T) {
		out := policy.ReassignOnRemoval(relayRoster(a, b, c), a)
		want := []models.Member{
			models.NewRelayMember(b, 2, true),
			models.NewRelayMember(c, 3, false),
		}
		if diff := cmp.Diff(want, out.Members); diff != "" {
			t.Errorf("roster mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("ordinary member removed keeps captain", func(t *testing.T) {
		out := policy.ReassignOnRemoval(relayRoster(a, b, c), b)
		assert.Equal(t, []uuid.UUID{a, c}, out.StudentIDs())
		assert.True(t, out.IsCaptain(a))
		assert.False(t, out.IsCaptain(c))
	})

	t.Run("last member removed leaves empty roster", func(t *testing.T) {
		out := policy.ReassignOnRemoval(relayRoster(a), a)
		assert.Equal(t, 0, out.Size())
		assert.True(t, policy.ValidateSingleCaptain(out))
	})

	t.Run("unknown member is a no-op and input is untouched", func(t *testing.T) {
		in := relayRoster(a, b)
		out := policy.ReassignOnRemoval(in, c)
		assert.Equal(t, in, out)
		out.Members[0].Captain = false
		assert.True(t, in.Members[0].Captain)
	})
}

func TestAssignInitialCaptain(t *testing.T) {
	policy := service.NewCaptainPolicy()
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	roster := relayRoster(a, b)
	out, err := policy.AssignInitialCaptain(roster, b)
	require.NoError(t, err)
	assert.True(t, out.IsCaptain(b))
	assert.False(t, out.IsCaptain(a))
	assert.True(t, policy.ValidateSingleCaptain(out))

	_, err = policy.AssignInitialCaptain(roster, c)
	assert.ErrorIs(t, err, apperrors.ErrInitiatorNotOnRoster)
}
