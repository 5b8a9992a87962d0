package service_test

import (
	"testing"

	"competition-registration-backend/internal/database/models"
	"competition-registration-backend/internal/service"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRenumber(t *testing.T) {
	assigner := service.NewRunOrderAssigner()
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	t.Run("closes gaps following current order", func(t *testing.T) {
		roster := &models.TeamRoster{Kind: models.DisciplineKindRelay, Members: []models.Member{
			models.NewRelayMember(a, 1, true),
			models.NewRelayMember(c, 4, false),
			models.NewRelayMember(b, 2, false),
		}}
		out := assigner.Renumber(roster)
		want := []models.Member{
			models.NewRelayMember(a, 1, true),
			models.NewRelayMember(b, 2, false),
			models.NewRelayMember(c, 3, false),
		}
		if diff := cmp.Diff(want, out.Members); diff != "" {
			t.Errorf("run order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unassigned members follow assigned ones in list order", func(t *testing.T) {
		roster := &models.TeamRoster{Kind: models.DisciplineKindRelay, Members: []models.Member{
			{StudentID: d},
			models.NewRelayMember(a, 2, true),
			{StudentID: c},
			models.NewRelayMember(b, 1, false),
		}}
		out := assigner.Renumber(roster)
		assert.Equal(t, []uuid.UUID{b, a, d, c}, out.StudentIDs())
		for i, m := range out.Members {
			assert.Equal(t, i+1, m.RunOrder)
		}
	})

	t.Run("group rosters are untouched", func(t *testing.T) {
		roster := &models.TeamRoster{Kind: models.DisciplineKindGroup, Members: []models.Member{
			models.NewGroupMember(a, true),
			models.NewGroupMember(b, false),
		}}
		out := assigner.Renumber(roster)
		assert.Equal(t, roster, out)
		assert.Zero(t, out.Members[1].RunOrder)
	})

	t.Run("renumbering is stable", func(t *testing.T) {
		roster := &models.TeamRoster{Kind: models.DisciplineKindRelay, Members: []models.Member{
			models.NewRelayMember(a, 1, true),
			models.NewRelayMember(b, 2, false),
		}}
		once := assigner.Renumber(roster)
		assert.Equal(t, once, assigner.Renumber(once))
	})
}

func TestNextOrder(t *testing.T) {
	assigner := service.NewRunOrderAssigner()
	assert.Equal(t, 1, assigner.NextOrder(&models.TeamRoster{Kind: models.DisciplineKindRelay}))
	assert.Equal(t, 3, assigner.NextOrder(relayRoster(uuid.New(), uuid.New())))
}
