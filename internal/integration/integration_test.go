package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/stigoleg/wiggle-mouse/internal/config"
	"github.com/stigoleg/wiggle-mouse/internal/pointer"
	"github.com/stigoleg/wiggle-mouse/internal/pointer/pointertest"
	"github.com/stigoleg/wiggle-mouse/internal/scheduler"
)

// writeFastConfig writes a config that cycles quickly enough for tests.
func writeFastConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	body := "# fast config for tests\n" +
		"time_between_mouse_movement = 0.1   # idle window\n" +
		"time_mouse_spends_moving = 0.02\n" +
		"time_between_user_movement_check = 0.02\n" +
		"distance_mouse_moves = 4\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// TestDefaultConfigRoundTrip verifies a freshly created file loads into the
// documented defaults.
func TestDefaultConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)

	created, err := config.EnsureFileExists(path)
	require.NoError(t, err)
	require.True(t, created)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		SwipeTimeDelay:           0.025,
		SwipePixelDistance:       40,
		UserMovementRecheckDelay: 0.5,
		TimeBetweenSwipes:        5.0,
	}, cfg)
}

// TestSchedulerWithLoadedConfig runs the loop on a real clock until the
// context expires.
func TestSchedulerWithLoadedConfig(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg, err := config.Load(writeFastConfig(t, t.TempDir()))
	require.NoError(t, err)

	ptr := pointertest.New(pointer.Position{X: 640, Y: 480})

	ctx, cancel := context.WithTimeout(context.Background(), 400*time.Millisecond)
	defer cancel()

	start := time.Now()
	err = scheduler.New(cfg, ptr, nil).Run(ctx)
	require.NoError(t, err, "cancellation is a clean exit")

	assert.Less(t, time.Since(start), 2*time.Second, "scheduler should stop promptly")
	assert.Equal(t, pointer.Position{X: 640, Y: 480}, ptr.Pos, "pointer ends where it started")

	nudges := ptr.Nudges()
	require.NotEmpty(t, nudges)
	for _, p := range nudges {
		assert.Equal(t, 480, p.Y, "swipes are horizontal")
		assert.GreaterOrEqual(t, p.X, 640)
		assert.Less(t, p.X, 644)
	}
}
