package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []Event
	d.Subscribe(EventEntityCreated, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	e := NewEvent(EventEntityCreated, "Amenity", 7, "System")
	err := d.Publish(context.Background(), e)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "Amenity", got[0].Entity)
	assert.Equal(t, 7, got[0].EntityID)
	assert.NotEmpty(t, got[0].ID)
	assert.False(t, got[0].Timestamp.IsZero())
}

func TestDispatcherIgnoresOtherEventTypes(t *testing.T) {
	d := NewInMemoryDispatcher()

	called := false
	d.Subscribe(EventEntityDeleted, func(context.Context, Event) error {
		called = true
		return nil
	})

	_ = d.Publish(context.Background(), NewEvent(EventEntityCreated, "Room", 1, "System"))

	assert.False(t, called)
}

// A failing handler must not stop delivery to the remaining handlers.
func TestDispatcherContinuesPastFailingHandler(t *testing.T) {
	d := NewInMemoryDispatcher()

	d.Subscribe(EventRoleAssigned, func(context.Context, Event) error {
		return errors.New("boom")
	})
	second := false
	d.Subscribe(EventRoleAssigned, func(context.Context, Event) error {
		second = true
		return nil
	})

	err := d.Publish(context.Background(), NewEvent(EventRoleAssigned, "User", 5, "System"))

	assert.NoError(t, err)
	assert.True(t, second)
}
