package events

import (
	"errors"
	"testing"

	"storefront/pkg/domain/model"
	"storefront/pkg/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestDispatcher(t *testing.T) {
	t.Run("DeliversToMatchingHandlers", func(t *testing.T) {
		d := NewDispatcher(nil)

		var seen []service.Event
		d.Subscribe("ProductDeleted", func(e service.Event) error {
			seen = append(seen, e)
			return nil
		})
		d.Subscribe("ProductCreated", func(e service.Event) error {
			t.Fatal("handler for a different type must not run")
			return nil
		})

		id := uuid.Must(uuid.NewV7())
		require.NoError(t, d.Dispatch(model.ProductDeleted{ProductID: id}))
		require.Len(t, seen, 1)
		require.Equal(t, model.ProductDeleted{ProductID: id}, seen[0])
	})

	t.Run("NoHandlersIsFine", func(t *testing.T) {
		d := NewDispatcher(nil)
		require.NoError(t, d.Dispatch(model.UserLoggedOut{UserID: uuid.New()}))
	})

	t.Run("HandlerFailureDoesNotStopDelivery", func(t *testing.T) {
		d := NewDispatcher(nil)

		boom := errors.New("boom")
		ran := 0
		d.Subscribe("OrderPlaced", func(e service.Event) error {
			ran++
			return boom
		})
		d.Subscribe("OrderPlaced", func(e service.Event) error {
			ran++
			return nil
		})

		err := d.Dispatch(model.OrderPlaced{OrderID: uuid.New()})
		require.ErrorIs(t, err, boom)
		require.Equal(t, 2, ran)
	})
}
