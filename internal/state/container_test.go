package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/statedeck/internal/ports"
)

func TestContainerInitialSnapshot(t *testing.T) {
	t.Parallel()

	snap := New().Snapshot()
	assert.Equal(t, ModeLight, snap.Mode)
	assert.Nil(t, snap.User)
	assert.NotNil(t, snap.Notifications)
	assert.Empty(t, snap.Notifications)
}

func TestContainerWorkedExample(t *testing.T) {
	t.Parallel()

	c := New(WithClock(fixedClock(1_700_000_000_000)))

	c.UserOps().Login("a@b.com", "x")
	snap := c.Snapshot()
	require.NotNil(t, snap.User)
	assert.Equal(t, User{ID: 1, Name: DefaultPlaceholderName, Email: "a@b.com"}, *snap.User)
	require.Len(t, snap.Notifications, 1)
	t0 := snap.Notifications[0]
	assert.Equal(t, int64(1_700_000_000_000), t0.ID)
	assert.Equal(t, DefaultMessages().LoginSuccess, t0.Message)
	assert.Equal(t, NotificationSuccess, t0.Type)

	c.ThemeOps().Toggle()
	after := c.Snapshot()
	assert.Equal(t, ModeDark, after.Mode)
	assert.Equal(t, snap.User, after.User)
	assert.Equal(t, snap.Notifications, after.Notifications)

	c.NotificationOps().Remove(t0.ID)
	assert.Empty(t, c.Snapshot().Notifications)
}

func TestOperationHandlesAreStable(t *testing.T) {
	t.Parallel()

	c := New()
	assert.Same(t, c.ThemeOps(), c.ThemeOps())
	assert.Same(t, c.UserOps(), c.UserOps())
	assert.Same(t, c.NotificationOps(), c.NotificationOps())

	c.ThemeOps().Toggle()
	c.UserOps().Login("a@b.com", "")
	assert.Same(t, c.NotificationOps(), c.Handles().NotificationOps)
	assert.Same(t, c.UserOps(), c.Handles().UserOps)
}

func TestContainersAreIndependent(t *testing.T) {
	t.Parallel()

	a, b := New(), New()
	a.ThemeOps().Toggle()
	a.UserOps().Login("a@b.com", "")

	assert.Equal(t, ModeLight, b.Theme().Mode())
	assert.Nil(t, b.User().Current())
	assert.Empty(t, b.Notifications().Snapshot())
}

func TestContainerPublishesEventsInOperationOrder(t *testing.T) {
	t.Parallel()

	publisher := &recordingPublisher{}
	c := New(WithPublisher(publisher), WithClock(fixedClock(3)))

	c.UserOps().Login("a@b.com", "")
	c.ThemeOps().Toggle()
	c.NotificationOps().Remove(3)
	c.NotificationOps().Remove(3)
	c.UserOps().Logout()

	assert.Equal(t, []string{
		ports.EventSessionLogin,
		ports.EventNotificationAdded,
		ports.EventThemeToggled,
		ports.EventNotificationRemoved,
		ports.EventSessionLogout,
		ports.EventNotificationAdded,
	}, publisher.types())

	toggled := publisher.events[2]
	assert.Equal(t, "dark", toggled.Data["mode"])
	assert.Equal(t, "theme", toggled.Data["slice"])
	assert.Equal(t, 0, publisher.events[3].Data["count"])
}

func TestPublisherFailureDoesNotBlockMutation(t *testing.T) {
	t.Parallel()

	publisher := &recordingPublisher{err: errors.New("sink down")}
	c := New(WithPublisher(publisher))

	c.ThemeOps().Toggle()
	assert.Equal(t, ModeDark, c.Theme().Mode())
}
