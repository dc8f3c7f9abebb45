package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Autum7899/My-Portfolio/internal/domain/content"
	"github.com/Autum7899/My-Portfolio/internal/session"
	"github.com/Autum7899/My-Portfolio/pkg/apperror"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

// fakeGateway simulates the admin API: toggleable offline mode, serial id
// assignment, and a hook to delay individual update acks.
type fakeGateway struct {
	mu               sync.Mutex
	offline          bool
	nextID           int64
	snapshot         content.Snapshot
	hasSnapshot      bool
	password         string
	updateCareerHook func(e content.CareerEntry) error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{password: "correct-password"}
}

func (g *fakeGateway) fail() error {
	return apperror.NewUnavailable("fake gateway offline", errors.New("connection refused"))
}

func (g *fakeGateway) assignID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextID++
	return g.nextID
}

func (g *fakeGateway) FetchSnapshot(ctx context.Context) (content.Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.offline || !g.hasSnapshot {
		return content.Snapshot{}, g.fail()
	}
	return g.snapshot.Clone(), nil
}

func (g *fakeGateway) Login(ctx context.Context, password string) (string, error) {
	if g.offline {
		return "", g.fail()
	}
	if password != g.password {
		return "", apperror.NewUnauthorized("invalid password", nil)
	}
	return "issued-token", nil
}

func (g *fakeGateway) CreateCareer(ctx context.Context, e content.CareerEntry) (int64, error) {
	if g.offline {
		return 0, g.fail()
	}
	return g.assignID(), nil
}

func (g *fakeGateway) UpdateCareer(ctx context.Context, e content.CareerEntry) error {
	if g.updateCareerHook != nil {
		return g.updateCareerHook(e)
	}
	if g.offline {
		return g.fail()
	}
	return nil
}

func (g *fakeGateway) DeleteCareer(ctx context.Context, id int64) error {
	if g.offline {
		return g.fail()
	}
	return nil
}

func (g *fakeGateway) CreateProject(ctx context.Context, p content.Project) (int64, error) {
	if g.offline {
		return 0, g.fail()
	}
	return g.assignID(), nil
}

func (g *fakeGateway) UpdateProject(ctx context.Context, p content.Project) error {
	if g.offline {
		return g.fail()
	}
	return nil
}

func (g *fakeGateway) DeleteProject(ctx context.Context, id int64) error {
	if g.offline {
		return g.fail()
	}
	return nil
}

func (g *fakeGateway) CreateSkill(ctx context.Context, s content.CategorizedSkill) (int64, error) {
	if g.offline {
		return 0, g.fail()
	}
	return g.assignID(), nil
}

func (g *fakeGateway) UpdateSkill(ctx context.Context, s content.CategorizedSkill) error {
	if g.offline {
		return g.fail()
	}
	return nil
}

func (g *fakeGateway) DeleteSkill(ctx context.Context, id int64) error {
	if g.offline {
		return g.fail()
	}
	return nil
}

func (g *fakeGateway) UpdateProfile(ctx context.Context, p content.Profile) error {
	if g.offline {
		return g.fail()
	}
	return nil
}

// memFallback records the last saved snapshot for readback assertions. The
// optional hook runs before the write lands, so tests can stall a save
// mid-flight.
type memFallback struct {
	mu       sync.Mutex
	snap     content.Snapshot
	saved    bool
	saveHook func(snap content.Snapshot)
}

func (f *memFallback) Save(_ context.Context, snap content.Snapshot) {
	if f.saveHook != nil {
		f.saveHook(snap)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snap = snap.Clone()
	f.saved = true
}

func (f *memFallback) Load(_ context.Context) (content.Snapshot, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.saved {
		return content.Snapshot{}, false
	}
	return f.snap.Clone(), true
}

func newTestStore(gw *fakeGateway) (*PortfolioStore, *memFallback, *session.MemoryStore) {
	fb := &memFallback{}
	sess := session.NewMemoryStore()
	return New(gw, fb, sess, logger.NewNop()), fb, sess
}

func TestLoad_GatewaySuccessPersistsFallback(t *testing.T) {
	gw := newFakeGateway()
	gw.hasSnapshot = true
	gw.snapshot = content.DefaultSnapshot()
	gw.snapshot.Profile.Name = "From Gateway"

	st, fb, _ := newTestStore(gw)
	st.Load(context.Background())

	assert.Equal(t, StateReady, st.State())
	assert.Equal(t, "From Gateway", st.Profile().Name)

	cached, ok := fb.Load(context.Background())
	require.True(t, ok)
	assert.Equal(t, "From Gateway", cached.Profile.Name)
}

func TestLoad_GatewayDownUsesFallback(t *testing.T) {
	gw := newFakeGateway()
	gw.offline = true

	st, fb, _ := newTestStore(gw)
	cached := content.DefaultSnapshot()
	cached.Profile.Name = "From Fallback"
	fb.Save(context.Background(), cached)

	st.Load(context.Background())

	assert.Equal(t, StateReady, st.State())
	assert.Equal(t, "From Fallback", st.Profile().Name)
}

func TestLoad_GatewayAndFallbackDownUsesDefaults(t *testing.T) {
	gw := newFakeGateway()
	gw.offline = true

	st, _, _ := newTestStore(gw)
	st.Load(context.Background())

	assert.Equal(t, StateReady, st.State())
	assert.Equal(t, content.DefaultSnapshot().Profile, st.Profile())
}

func TestAddProject_OfflineKeepsLocalChangeAndFallback(t *testing.T) {
	gw := newFakeGateway()
	gw.offline = true
	st, fb, _ := newTestStore(gw)
	st.Load(context.Background())
	before := len(st.Projects())

	id, remoteOK := st.AddProject(context.Background(), content.Project{
		Title:       "X",
		Description: "Y",
		Tags:        []string{"react"},
		Demo:        content.LinkPlaceholder,
		Repo:        content.LinkPlaceholder,
	})

	assert.False(t, remoteOK)
	assert.Negative(t, id, "offline creates get a synthesized local id")

	projects := st.Projects()
	require.Len(t, projects, before+1)
	added := projects[len(projects)-1]
	assert.Equal(t, id, added.ID)
	assert.Equal(t, []string{"react"}, added.Tags)

	cached, ok := fb.Load(context.Background())
	require.True(t, ok)
	assert.Equal(t, added, cached.Projects[len(cached.Projects)-1])
}

func TestAddProject_OnlineAssignsDistinctConfirmedIDs(t *testing.T) {
	gw := newFakeGateway()
	st, _, _ := newTestStore(gw)

	seen := map[int64]bool{}
	for i := 0; i < 5; i++ {
		id, remoteOK := st.AddProject(context.Background(), content.Project{Title: "P"})
		assert.True(t, remoteOK)
		assert.Positive(t, id)
		assert.False(t, seen[id], "ids must be pairwise distinct")
		seen[id] = true
	}

	for _, p := range st.Projects() {
		if p.Title == "P" {
			assert.Positive(t, p.ID, "pending ids must be promoted to confirmed ones")
		}
	}
}

func TestDeleteSkill_OfflineStillRemovesLocally(t *testing.T) {
	gw := newFakeGateway()
	gw.offline = true
	st, fb, _ := newTestStore(gw)
	st.Load(context.Background())
	require.NotEmpty(t, st.Skills()[content.CategoryFrontend])

	remoteOK := st.DeleteSkill(context.Background(), content.CategoryFrontend, 1)

	assert.False(t, remoteOK)
	assert.Empty(t, st.Skills()[content.CategoryFrontend])

	cached, _ := fb.Load(context.Background())
	assert.Empty(t, cached.Skills[content.CategoryFrontend])
}

func TestUpdateCareer_LocalApplicationOrderWins(t *testing.T) {
	// The first update's ack is held until the second update has fully
	// completed; the snapshot must still reflect the second (last issued)
	// write.
	gw := newFakeGateway()
	firstArrived := make(chan struct{})
	releaseFirst := make(chan struct{})
	var once sync.Once
	gw.updateCareerHook = func(e content.CareerEntry) error {
		if e.Description == "first" {
			once.Do(func() { close(firstArrived) })
			<-releaseFirst
		}
		return nil
	}

	st, _, _ := newTestStore(gw)
	st.Load(context.Background())
	entry := st.Career()[0]

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		e := entry
		e.Description = "first"
		st.UpdateCareer(context.Background(), e)
	}()

	<-firstArrived
	e := entry
	e.Description = "second"
	st.UpdateCareer(context.Background(), e)

	close(releaseFirst)
	wg.Wait()

	assert.Equal(t, "second", st.Career()[0].Description)
}

func TestUpdateCareer_SlowFallbackSaveCannotRegressPersistedState(t *testing.T) {
	// The first update's fallback save is held until a second update has
	// swapped the snapshot in memory; once released, the fallback must still
	// end up holding the second write.
	gw := newFakeGateway()
	st, fb, _ := newTestStore(gw)
	st.Load(context.Background())
	entry := st.Career()[0]

	firstSaveArrived := make(chan struct{})
	releaseFirstSave := make(chan struct{})
	var once sync.Once
	fb.saveHook = func(snap content.Snapshot) {
		if len(snap.Career) > 0 && snap.Career[0].Description == "first" {
			once.Do(func() { close(firstSaveArrived) })
			<-releaseFirstSave
		}
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		e := entry
		e.Description = "first"
		st.UpdateCareer(context.Background(), e)
	}()
	<-firstSaveArrived

	wg.Add(1)
	go func() {
		defer wg.Done()
		e := entry
		e.Description = "second"
		st.UpdateCareer(context.Background(), e)
	}()
	require.Eventually(t, func() bool {
		return st.Career()[0].Description == "second"
	}, time.Second, 5*time.Millisecond, "second update must land in memory while the first save is stalled")

	close(releaseFirstSave)
	wg.Wait()

	cached, ok := fb.Load(context.Background())
	require.True(t, ok)
	assert.Equal(t, "second", cached.Career[0].Description)
}

func TestUpdateCareer_RejectedTokenForcesReauth(t *testing.T) {
	gw := newFakeGateway()
	st, _, sess := newTestStore(gw)
	st.Load(context.Background())
	require.True(t, st.Login(context.Background(), "correct-password"))

	gw.updateCareerHook = func(content.CareerEntry) error {
		return apperror.NewUnauthorized("token expired", nil)
	}
	entry := st.Career()[0]
	entry.Description = "kept locally"
	remoteOK := st.UpdateCareer(context.Background(), entry)

	assert.False(t, remoteOK)
	assert.Equal(t, "kept locally", st.Career()[0].Description)
	assert.True(t, st.ReauthRequired())
	assert.False(t, st.IsAuthenticated())
	_, stored := sess.Load()
	assert.False(t, stored, "a rejected token must not survive in the session")

	// A fresh login clears the signal.
	gw.updateCareerHook = nil
	require.True(t, st.Login(context.Background(), "correct-password"))
	assert.False(t, st.ReauthRequired())
}

func TestReplaceProjects_DetachedFromCallerSlice(t *testing.T) {
	gw := newFakeGateway()
	st, _, _ := newTestStore(gw)
	st.Load(context.Background())

	projects := []content.Project{{ID: 1, Title: "Original", Tags: []string{"go"}}}
	require.True(t, st.ReplaceProjects(context.Background(), projects))

	projects[0].Title = "Mutated"
	projects[0].Tags[0] = "rust"

	got := st.Projects()
	require.Len(t, got, 1)
	assert.Equal(t, "Original", got[0].Title)
	assert.Equal(t, []string{"go"}, got[0].Tags)
}

func TestReplaceCareer_DetachedFromCallerSlice(t *testing.T) {
	gw := newFakeGateway()
	st, _, _ := newTestStore(gw)
	st.Load(context.Background())

	entries := []content.CareerEntry{{ID: 1, Institution: "Original"}}
	require.True(t, st.ReplaceCareer(context.Background(), entries))
	entries[0].Institution = "Mutated"

	require.Len(t, st.Career(), 1)
	assert.Equal(t, "Original", st.Career()[0].Institution)
}

func TestExportImport_RoundTrip(t *testing.T) {
	gw := newFakeGateway()
	st, _, _ := newTestStore(gw)
	st.Load(context.Background())
	st.AddProject(context.Background(), content.Project{Title: "Extra", Tags: []string{"go"}})
	original := st.Snapshot()

	doc, err := st.Export()
	require.NoError(t, err)

	st.ResetToDefault(context.Background())
	require.NoError(t, st.Import(context.Background(), doc))

	assert.Equal(t, original, st.Snapshot())
}

func TestImport_MalformedLeavesStateUntouched(t *testing.T) {
	gw := newFakeGateway()
	st, _, _ := newTestStore(gw)
	st.Load(context.Background())
	before := st.Snapshot()

	err := st.Import(context.Background(), []byte("not valid json{"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrImportParse))
	assert.Equal(t, before, st.Snapshot())
}

func TestLogin_WrongPasswordLeavesStateClean(t *testing.T) {
	gw := newFakeGateway()
	st, _, sess := newTestStore(gw)

	ok := st.Login(context.Background(), "wrong-password")

	assert.False(t, ok)
	assert.False(t, st.IsAuthenticated())
	_, stored := sess.Load()
	assert.False(t, stored)
}

func TestLogin_SuccessStoresTokenAndSession(t *testing.T) {
	gw := newFakeGateway()
	st, _, sess := newTestStore(gw)

	ok := st.Login(context.Background(), "correct-password")

	assert.True(t, ok)
	assert.True(t, st.IsAuthenticated())
	assert.Equal(t, "issued-token", st.Token())

	token, stored := sess.Load()
	assert.True(t, stored)
	assert.Equal(t, "issued-token", token)

	st.Logout()
	assert.False(t, st.IsAuthenticated())
	_, stored = sess.Load()
	assert.False(t, stored)
}

func TestNew_RehydratesSession(t *testing.T) {
	gw := newFakeGateway()
	sess := session.NewMemoryStore()
	sess.Save("earlier-token")

	st := New(gw, &memFallback{}, sess, logger.NewNop())

	assert.True(t, st.IsAuthenticated())
	assert.Equal(t, "earlier-token", st.Token())
}

func TestRefresh_DropsPendingLocalIDs(t *testing.T) {
	gw := newFakeGateway()
	gw.offline = true
	st, _, _ := newTestStore(gw)
	st.Load(context.Background())

	id, remoteOK := st.AddProject(context.Background(), content.Project{Title: "Pending"})
	require.False(t, remoteOK)
	require.Negative(t, id)

	// Server comes back with its own truth.
	gw.mu.Lock()
	gw.offline = false
	gw.hasSnapshot = true
	gw.snapshot = content.DefaultSnapshot()
	gw.mu.Unlock()

	require.True(t, st.Refresh(context.Background()))

	for _, p := range st.Projects() {
		assert.Positive(t, p.ID)
	}
}

func TestResetToDefault_RestoresDefaultsAndRefetches(t *testing.T) {
	gw := newFakeGateway()
	gw.hasSnapshot = true
	gw.snapshot = content.DefaultSnapshot()
	gw.snapshot.Profile.Name = "Server Copy"

	st, _, _ := newTestStore(gw)
	st.Load(context.Background())
	st.UpdateProfile(context.Background(), content.Profile{Name: "Edited"})

	st.ResetToDefault(context.Background())

	// Refresh inside reset lands the server copy again.
	assert.Equal(t, "Server Copy", st.Profile().Name)
}
