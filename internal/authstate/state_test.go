package authstate_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yogastudio/web/internal/authstate"
	"yogastudio/web/internal/models"
)

type recorder struct {
	mu     sync.Mutex
	values []bool
}

func (r *recorder) observe(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder) all() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.values...)
}

func TestFreshStateIsLoggedOut(t *testing.T) {
	state := authstate.New()

	_, ok := state.Identity()
	assert.False(t, ok)
	assert.False(t, state.IsLogged())
	assert.False(t, state.IsAdmin())
	assert.Empty(t, state.Token())
}

func TestLogInStoresIdentity(t *testing.T) {
	state := authstate.New()
	identity := models.SessionIdentity{
		Token:     "jwt",
		Type:      "Bearer",
		ID:        1,
		Username:  "yoga@studio.com",
		FirstName: "Yoga",
		LastName:  "Studio",
		Admin:     true,
	}

	state.LogIn(identity)

	got, ok := state.Identity()
	require.True(t, ok)
	assert.Equal(t, identity, got)
	assert.True(t, state.IsLogged())
	assert.True(t, state.IsAdmin())
	assert.Equal(t, "jwt", state.Token())
}

func TestLogInReplacesIdentity(t *testing.T) {
	state := authstate.New()
	rec := &recorder{}
	state.Subscribe(rec.observe)

	state.LogIn(models.SessionIdentity{ID: 1, Admin: true})
	state.LogIn(models.SessionIdentity{ID: 2})

	got, ok := state.Identity()
	require.True(t, ok)
	assert.Equal(t, int64(2), got.ID)
	assert.False(t, state.IsAdmin())
	assert.Equal(t, []bool{false, true, true}, rec.all())
}

func TestSubscribeAfterLogInEmitsTrueFirst(t *testing.T) {
	state := authstate.New()
	state.LogIn(models.SessionIdentity{ID: 1, Admin: false})

	rec := &recorder{}
	state.Subscribe(rec.observe)

	assert.Equal(t, []bool{true}, rec.all())
}

func TestSignalSequence(t *testing.T) {
	state := authstate.New()
	rec := &recorder{}
	state.Subscribe(rec.observe)

	state.LogIn(models.SessionIdentity{ID: 1})
	state.LogOut()

	assert.Equal(t, []bool{false, true, false}, rec.all())
}

func TestLogOutIsIdempotent(t *testing.T) {
	state := authstate.New()
	state.LogIn(models.SessionIdentity{ID: 1})

	rec := &recorder{}
	state.Subscribe(rec.observe)

	state.LogOut()
	state.LogOut()

	assert.False(t, state.IsLogged())
	assert.Equal(t, []bool{true, false}, rec.all())
}

func TestLogOutTokenOnlyMatchingIdentity(t *testing.T) {
	state := authstate.New()
	state.LogIn(models.SessionIdentity{ID: 1, Token: "new"})

	assert.False(t, state.LogOutToken("old"))
	assert.True(t, state.IsLogged())

	assert.True(t, state.LogOutToken("new"))
	assert.False(t, state.IsLogged())
	assert.False(t, state.LogOutToken("new"))
}

func TestCancelStopsDelivery(t *testing.T) {
	state := authstate.New()
	rec := &recorder{}
	cancel := state.Subscribe(rec.observe)
	assert.Equal(t, 1, state.Observers())

	cancel()
	cancel()
	state.LogIn(models.SessionIdentity{ID: 1})

	assert.Equal(t, 0, state.Observers())
	assert.Equal(t, []bool{false}, rec.all())
}

func TestBroadcastReachesEveryObserver(t *testing.T) {
	state := authstate.New()
	recs := []*recorder{{}, {}, {}}
	for _, rec := range recs {
		state.Subscribe(rec.observe)
	}

	state.LogIn(models.SessionIdentity{ID: 9})

	for _, rec := range recs {
		assert.Equal(t, []bool{false, true}, rec.all())
	}
}

func TestWatchDeliversCurrentThenChanges(t *testing.T) {
	state := authstate.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := state.Watch(ctx)
	assert.False(t, receive(t, ch))

	state.LogIn(models.SessionIdentity{ID: 1})
	assert.True(t, receive(t, ch))

	state.LogOut()
	assert.False(t, receive(t, ch))
}

func TestWatchSeesIdentitySwitch(t *testing.T) {
	state := authstate.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	state.LogIn(models.SessionIdentity{ID: 1, Admin: true})
	ch := state.Watch(ctx)
	assert.True(t, receive(t, ch))

	state.LogIn(models.SessionIdentity{ID: 2})
	assert.True(t, receive(t, ch))
	assert.False(t, state.IsAdmin())
}

func TestWatchKeepsOnlyLatestValue(t *testing.T) {
	state := authstate.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := state.Watch(ctx)
	state.LogIn(models.SessionIdentity{ID: 1})
	state.LogOut()
	state.LogIn(models.SessionIdentity{ID: 2})

	assert.True(t, receive(t, ch))
	select {
	case v := <-ch:
		t.Fatalf("unexpected buffered value %v", v)
	default:
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	state := authstate.New()
	ctx, cancel := context.WithCancel(context.Background())

	ch := state.Watch(ctx)
	receive(t, ch)
	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-ch:
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, state.Observers())

	// publishing after the watcher is gone must not panic
	state.LogIn(models.SessionIdentity{ID: 1})
}

func TestConcurrentMutationsKeepInvariant(t *testing.T) {
	state := authstate.New()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(id int64) {
			defer wg.Done()
			state.LogIn(models.SessionIdentity{ID: id})
		}(int64(i))
		go func() {
			defer wg.Done()
			state.LogOut()
		}()
	}
	wg.Wait()

	_, ok := state.Identity()
	assert.Equal(t, ok, state.IsLogged())
}

func receive(t *testing.T, ch <-chan bool) bool {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for signal")
		return false
	}
}
