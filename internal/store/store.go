package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Autum7899/My-Portfolio/internal/domain/content"
	"github.com/Autum7899/My-Portfolio/internal/fallback"
	"github.com/Autum7899/My-Portfolio/internal/gateway"
	"github.com/Autum7899/My-Portfolio/internal/session"
	"github.com/Autum7899/My-Portfolio/pkg/apperror"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

type State int

const (
	StateLoading State = iota
	StateReady
)

// PortfolioStore is the single source of truth for the running session's
// content. It is constructed once and handed to consumers by reference.
//
// Every mutation follows the local-first policy: the in-memory snapshot is
// updated immediately so editing never blocks on network availability, the
// gateway call reports its outcome through the returned bool, and the
// fallback store is persisted after each change. The snapshot is swapped
// wholesale under the lock, so concurrent readers always observe a complete
// collection.
type PortfolioStore struct {
	mu    sync.RWMutex
	snap  content.Snapshot
	state State

	authMu        sync.RWMutex
	token         string
	authenticated bool
	reauthNeeded  bool

	tempSeq atomic.Int64

	// fbMu serializes fallback writes; each write re-reads the current
	// snapshot, so the last write to land is never older than the last
	// mutation.
	fbMu sync.Mutex

	gw   gateway.Gateway
	fb   fallback.Store
	sess session.Store
	log  logger.Logger
}

func New(gw gateway.Gateway, fb fallback.Store, sess session.Store, log logger.Logger) *PortfolioStore {
	s := &PortfolioStore{
		snap:  content.DefaultSnapshot(),
		state: StateLoading,
		gw:    gw,
		fb:    fb,
		sess:  sess,
		log:   log,
	}
	// Rehydrate auth so a restart within the session does not force re-login.
	if token, ok := sess.Load(); ok {
		s.token = token
		s.authenticated = true
	}
	return s
}

// Load drives the startup state machine: gateway, then fallback, then
// built-in defaults. It never fails; the worst outcome is default content
// plus a warning in the log.
func (s *PortfolioStore) Load(ctx context.Context) {
	snap, err := s.gw.FetchSnapshot(ctx)
	if err != nil {
		s.log.Warn("load: gateway unreachable, trying fallback", zap.Error(err))
		cached, ok := s.fb.Load(ctx)
		if !ok {
			s.log.Warn("load: no fallback snapshot, using built-in defaults")
			cached = content.DefaultSnapshot()
		}
		s.swap(cached, StateReady)
		return
	}

	s.swap(snap, StateReady)
	s.persistFallback(ctx)
}

// Refresh re-runs load semantics without blocking reads: consumers keep the
// current snapshot until the new one lands. Pending local ids are dropped in
// favor of the server truth.
func (s *PortfolioStore) Refresh(ctx context.Context) bool {
	snap, err := s.gw.FetchSnapshot(ctx)
	if err != nil {
		s.log.Warn("refresh: gateway unreachable, keeping current snapshot", zap.Error(err))
		return false
	}
	s.swap(snap, StateReady)
	s.persistFallback(ctx)
	return true
}

func (s *PortfolioStore) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Snapshot returns a deep copy; callers can never alias internal state.
func (s *PortfolioStore) Snapshot() content.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Clone()
}

func (s *PortfolioStore) Profile() content.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Profile
}

func (s *PortfolioStore) Career() []content.CareerEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]content.CareerEntry, len(s.snap.Career))
	copy(out, s.snap.Career)
	return out
}

func (s *PortfolioStore) Projects() []content.Project {
	return s.Snapshot().Projects
}

func (s *PortfolioStore) Skills() content.SkillSet {
	return s.Snapshot().Skills
}

func (s *PortfolioStore) swap(snap content.Snapshot, state State) {
	s.mu.Lock()
	s.snap = snap
	s.state = state
	s.mu.Unlock()
}

// apply clones the current snapshot, runs the change against the clone and
// swaps it in, then persists the result. Copy-on-write: a reader holding the
// previous snapshot is never disturbed.
func (s *PortfolioStore) apply(ctx context.Context, change func(*content.Snapshot)) {
	s.mu.Lock()
	next := s.snap.Clone()
	change(&next)
	s.snap = next
	s.mu.Unlock()

	s.persistFallback(ctx)
}

// persistFallback writes the current snapshot, not the one captured at the
// caller's swap. With writes serialized and state re-read under the write
// lock, a slow earlier save can delay but never regress what ends up in the
// fallback store.
func (s *PortfolioStore) persistFallback(ctx context.Context) {
	s.fbMu.Lock()
	defer s.fbMu.Unlock()

	s.mu.RLock()
	snap := s.snap.Clone()
	s.mu.RUnlock()

	s.fb.Save(ctx, snap)
}

// tempID synthesizes a local id for a create the gateway could not confirm.
// Negative, so it can never collide with a server-assigned serial id, and
// sequenced so rapid-fire creates stay distinct.
func (s *PortfolioStore) tempID() int64 {
	return -(time.Now().UnixNano() + s.tempSeq.Add(1))
}

// --- Profile ---

func (s *PortfolioStore) UpdateProfile(ctx context.Context, p content.Profile) bool {
	s.apply(ctx, func(snap *content.Snapshot) {
		snap.Profile = p
	})

	if err := s.gw.UpdateProfile(ctx, p); err != nil {
		s.warnRemote("update profile", err)
		return false
	}
	return true
}

// --- Career ---

func (s *PortfolioStore) AddCareer(ctx context.Context, e content.CareerEntry) (int64, bool) {
	temp := s.tempID()
	e.ID = temp
	s.apply(ctx, func(snap *content.Snapshot) {
		snap.Career = append(snap.Career, e)
	})

	id, err := s.gw.CreateCareer(ctx, e)
	if err != nil {
		s.warnRemote("add career", err)
		return temp, false
	}

	// Promote the pending local id to the confirmed one.
	s.apply(ctx, func(snap *content.Snapshot) {
		for i := range snap.Career {
			if snap.Career[i].ID == temp {
				snap.Career[i].ID = id
			}
		}
	})
	return id, true
}

func (s *PortfolioStore) UpdateCareer(ctx context.Context, e content.CareerEntry) bool {
	s.apply(ctx, func(snap *content.Snapshot) {
		for i := range snap.Career {
			if snap.Career[i].ID == e.ID {
				snap.Career[i] = e
			}
		}
	})

	if err := s.gw.UpdateCareer(ctx, e); err != nil {
		s.warnRemote("update career", err)
		return false
	}
	return true
}

// ReplaceCareer swaps the whole collection at once. Editors use this for
// reordering; it is a local operation, individual rows were already synced.
func (s *PortfolioStore) ReplaceCareer(ctx context.Context, entries []content.CareerEntry) bool {
	// Copy so later caller-side edits cannot write through into the snapshot.
	next := make([]content.CareerEntry, len(entries))
	copy(next, entries)
	s.apply(ctx, func(snap *content.Snapshot) {
		snap.Career = next
	})
	return true
}

func (s *PortfolioStore) DeleteCareer(ctx context.Context, id int64) bool {
	s.apply(ctx, func(snap *content.Snapshot) {
		kept := snap.Career[:0]
		for _, e := range snap.Career {
			if e.ID != id {
				kept = append(kept, e)
			}
		}
		snap.Career = kept
	})

	if err := s.gw.DeleteCareer(ctx, id); err != nil {
		s.warnRemote("delete career", err)
		return false
	}
	return true
}

// --- Projects ---

func (s *PortfolioStore) AddProject(ctx context.Context, p content.Project) (int64, bool) {
	if p.Tags == nil {
		p.Tags = []string{}
	}
	temp := s.tempID()
	p.ID = temp
	s.apply(ctx, func(snap *content.Snapshot) {
		snap.Projects = append(snap.Projects, p)
	})

	id, err := s.gw.CreateProject(ctx, p)
	if err != nil {
		s.warnRemote("add project", err)
		return temp, false
	}

	s.apply(ctx, func(snap *content.Snapshot) {
		for i := range snap.Projects {
			if snap.Projects[i].ID == temp {
				snap.Projects[i].ID = id
			}
		}
	})
	return id, true
}

func (s *PortfolioStore) UpdateProject(ctx context.Context, p content.Project) bool {
	if p.Tags == nil {
		p.Tags = []string{}
	}
	s.apply(ctx, func(snap *content.Snapshot) {
		for i := range snap.Projects {
			if snap.Projects[i].ID == p.ID {
				snap.Projects[i] = p
			}
		}
	})

	if err := s.gw.UpdateProject(ctx, p); err != nil {
		s.warnRemote("update project", err)
		return false
	}
	return true
}

func (s *PortfolioStore) ReplaceProjects(ctx context.Context, projects []content.Project) bool {
	next := make([]content.Project, len(projects))
	copy(next, projects)
	for i := range next {
		tags := make([]string, len(next[i].Tags))
		copy(tags, next[i].Tags)
		next[i].Tags = tags
	}
	s.apply(ctx, func(snap *content.Snapshot) {
		snap.Projects = next
	})
	return true
}

func (s *PortfolioStore) DeleteProject(ctx context.Context, id int64) bool {
	s.apply(ctx, func(snap *content.Snapshot) {
		kept := snap.Projects[:0]
		for _, p := range snap.Projects {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		snap.Projects = kept
	})

	if err := s.gw.DeleteProject(ctx, id); err != nil {
		s.warnRemote("delete project", err)
		return false
	}
	return true
}

// --- Skills ---

func (s *PortfolioStore) AddSkill(ctx context.Context, category content.CategoryKey, skill content.Skill) (int64, bool) {
	temp := s.tempID()
	skill.ID = temp
	s.apply(ctx, func(snap *content.Snapshot) {
		snap.Skills[category] = append(snap.Skills[category], skill)
	})

	id, err := s.gw.CreateSkill(ctx, content.CategorizedSkill{Skill: skill, Category: category})
	if err != nil {
		s.warnRemote("add skill", err)
		return temp, false
	}

	s.apply(ctx, func(snap *content.Snapshot) {
		list := snap.Skills[category]
		for i := range list {
			if list[i].ID == temp {
				list[i].ID = id
			}
		}
	})
	return id, true
}

func (s *PortfolioStore) UpdateSkill(ctx context.Context, category content.CategoryKey, skill content.Skill) bool {
	s.apply(ctx, func(snap *content.Snapshot) {
		list := snap.Skills[category]
		for i := range list {
			if list[i].ID == skill.ID {
				list[i] = skill
			}
		}
	})

	if err := s.gw.UpdateSkill(ctx, content.CategorizedSkill{Skill: skill, Category: category}); err != nil {
		s.warnRemote("update skill", err)
		return false
	}
	return true
}

func (s *PortfolioStore) ReplaceSkills(ctx context.Context, category content.CategoryKey, skills []content.Skill) bool {
	next := make([]content.Skill, len(skills))
	copy(next, skills)
	s.apply(ctx, func(snap *content.Snapshot) {
		snap.Skills[category] = next
	})
	return true
}

func (s *PortfolioStore) DeleteSkill(ctx context.Context, category content.CategoryKey, id int64) bool {
	s.apply(ctx, func(snap *content.Snapshot) {
		kept := make([]content.Skill, 0, len(snap.Skills[category]))
		for _, sk := range snap.Skills[category] {
			if sk.ID != id {
				kept = append(kept, sk)
			}
		}
		snap.Skills[category] = kept
	})

	if err := s.gw.DeleteSkill(ctx, id); err != nil {
		s.warnRemote("delete skill", err)
		return false
	}
	return true
}

// --- Auth ---

// Login submits the candidate password; the secret itself never lives on
// this side. Failure is reported as a plain false, with no hint about what
// was wrong.
func (s *PortfolioStore) Login(ctx context.Context, password string) bool {
	token, err := s.gw.Login(ctx, password)
	if err != nil {
		s.log.Warn("login failed", zap.Error(err))
		return false
	}

	s.authMu.Lock()
	s.token = token
	s.authenticated = true
	s.reauthNeeded = false
	s.authMu.Unlock()
	s.sess.Save(token)
	return true
}

func (s *PortfolioStore) Logout() {
	s.authMu.Lock()
	s.token = ""
	s.authenticated = false
	s.reauthNeeded = false
	s.authMu.Unlock()
	s.sess.Clear()
}

func (s *PortfolioStore) IsAuthenticated() bool {
	s.authMu.RLock()
	defer s.authMu.RUnlock()
	return s.authenticated
}

func (s *PortfolioStore) Token() string {
	s.authMu.RLock()
	defer s.authMu.RUnlock()
	return s.token
}

// --- Bulk operations ---

// Export serializes the current snapshot, pretty-printed for human
// readability.
func (s *PortfolioStore) Export() ([]byte, error) {
	snap := s.Snapshot()
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, apperror.NewInternal("failed to encode snapshot", err)
	}
	return data, nil
}

// Import replaces the whole snapshot from a document. Malformed input leaves
// the current state completely untouched.
func (s *PortfolioStore) Import(ctx context.Context, data []byte) error {
	var snap content.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return apperror.NewImportParse(err)
	}
	if snap.Career == nil {
		snap.Career = []content.CareerEntry{}
	}
	if snap.Projects == nil {
		snap.Projects = []content.Project{}
	}
	if snap.Skills == nil {
		snap.Skills = content.SkillSet{}
	}

	s.swap(snap, StateReady)
	s.persistFallback(ctx)
	return nil
}

// ResetToDefault restores the built-in content and re-triggers a fresh
// gateway fetch.
func (s *PortfolioStore) ResetToDefault(ctx context.Context) {
	defaults := content.DefaultSnapshot()
	s.swap(defaults, StateReady)
	s.persistFallback(ctx)
	s.Refresh(ctx)
}

// warnRemote records a failed gateway call. A rejected token is not a
// connectivity problem: the session is dead, so auth state is dropped and
// ReauthRequired starts reporting true until the next login.
func (s *PortfolioStore) warnRemote(op string, err error) {
	if errors.Is(err, apperror.ErrUnauthorized) {
		s.authMu.Lock()
		s.token = ""
		s.authenticated = false
		s.reauthNeeded = true
		s.authMu.Unlock()
		s.sess.Clear()

		s.log.Warn("remote call rejected the token, change kept locally; log in again",
			zap.String("op", op),
			zap.Error(err),
		)
		return
	}

	s.log.Warn("remote call failed, change kept locally",
		zap.String("op", op),
		zap.Error(err),
	)
}

// ReauthRequired reports whether a mutation was rejected with an expired or
// invalid token since the last login.
func (s *PortfolioStore) ReauthRequired() bool {
	s.authMu.RLock()
	defer s.authMu.RUnlock()
	return s.reauthNeeded
}
