package technician_test

import (
	"testing"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/technician"
	"fieldops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContact(t *testing.T) {
	t.Run("creates_contact_with_phone", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := technician.NewContact(id, "Ravi Kumar", "+919900112233")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, id.IsEqual(c.ID()))
		assert.Equal(t, "Ravi Kumar", c.Name())
		assert.Equal(t, "+919900112233", c.Phone())
		assert.True(t, c.HasPhone())
	})

	t.Run("phone_is_optional", func(t *testing.T) {
		c, err := technician.NewContact(kernel.NewUUID(), "Ravi Kumar", "")

		require.NoError(t, err)
		assert.False(t, c.HasPhone())
	})

	t.Run("name_is_required", func(t *testing.T) {
		_, err := technician.NewContact(kernel.NewUUID(), "", "+919900112233")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_zero_id", func(t *testing.T) {
		var id kernel.UUID

		_, err := technician.NewContact(id, "Ravi Kumar", "")
		require.Error(t, err)
	})
}

func TestContact_Validate(t *testing.T) {
	t.Run("zero_value_is_not_constructed", func(t *testing.T) {
		var c technician.Contact

		err := c.Validate()

		require.Error(t, err)
		assert.Equal(t, technician.ErrContactIsNotConstructed, err)
	})
}
