// Package registry keeps the list of known identities and switches the
// machine's git and ssh configuration between them.
package registry

import (
	"fmt"
	"slices"

	"github.com/gitswitch/gitswitch/pkg/gitswitch/identity"
	"github.com/gitswitch/gitswitch/pkg/gitswitch/store"
	"github.com/gopasspw/gopass/pkg/debug"
)

// Store persists the registry.
type Store interface {
	Load() (store.Document, bool, error)
	Save(doc store.Document) error
}

// Hasher fingerprints key files.
type Hasher interface {
	Hash(path string) (string, error)
	Verify(expected, path string) (bool, error)
}

// GitEditor writes the git user name and email.
type GitEditor interface {
	SetUser(username, email string) error
}

// SSHEditor writes the ssh identity file.
type SSHEditor interface {
	SetIdentityFile(keyPath string) error
}

// Manager is the identity registry. It is not safe for concurrent use.
type Manager struct {
	store  Store
	hasher Hasher
	git    GitEditor
	ssh    SSHEditor

	identities []*identity.Identity
	current    *identity.Identity
}

// New creates a Manager and loads the persisted identities. A store that has
// never been saved results in an empty registry.
func New(s Store, h Hasher, git GitEditor, ssh SSHEditor) (*Manager, error) {
	m := &Manager{
		store:      s,
		hasher:     h,
		git:        git,
		ssh:        ssh,
		identities: []*identity.Identity{},
	}

	doc, found, err := s.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load identities: %w", err)
	}
	if !found {
		debug.V(1).Log("starting with an empty registry")

		return m, nil
	}

	for _, id := range doc.Identities {
		if m.FindByUsername(id.Username) != nil {
			debug.Log("ignoring duplicate identity %q in store", id.Username)

			continue
		}
		m.identities = append(m.identities, id)
	}

	if doc.Current != "" {
		m.current = m.FindByUsername(doc.Current)
		if m.current == nil {
			debug.Log("current identity %q is not registered, ignoring", doc.Current)
		}
	}

	return m, nil
}

// Identities returns the registered identities in insertion order.
func (m *Manager) Identities() []*identity.Identity {
	return slices.Clone(m.identities)
}

// FindByUsername returns the identity registered as name or nil.
func (m *Manager) FindByUsername(name string) *identity.Identity {
	for _, id := range m.identities {
		if id.Username == name {
			return id
		}
	}

	return nil
}

// Current returns the active identity or nil if none was activated.
func (m *Manager) Current() *identity.Identity {
	return m.current
}

// Add hashes the key file of id and registers it. An identity with the same
// username is updated in place, which also refreshes a stale key hash.
func (m *Manager) Add(id *identity.Identity) error {
	digest, err := m.hasher.Hash(id.SshKeyPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrKeyUnreadable, err)
	}
	id.SshKeyHash = digest

	if existing := m.FindByUsername(id.Username); existing != nil {
		debug.V(1).Log("updating identity %q", id.Username)
		if existing != id {
			existing.Email = id.Email
			existing.SshKeyPath = id.SshKeyPath
			existing.SshKeyHash = id.SshKeyHash
		}
	} else {
		debug.V(1).Log("adding identity %q", id.Username)
		m.identities = append(m.identities, id)
	}

	return m.save()
}

// Remove unregisters id. Removing the current identity clears the current
// identity. Removing an identity that is not registered does nothing.
func (m *Manager) Remove(id *identity.Identity) error {
	if id == nil {
		return nil
	}

	idx := slices.IndexFunc(m.identities, func(e *identity.Identity) bool {
		return e == id || e.Username == id.Username
	})
	if idx < 0 {
		debug.V(1).Log("identity %q not registered, nothing to remove", id.Username)

		return nil
	}

	if m.current == m.identities[idx] {
		debug.V(1).Log("removing current identity %q", id.Username)
		m.current = nil
	}
	m.identities = slices.Delete(m.identities, idx, idx+1)

	return m.save()
}

// Activate makes the identity registered as username the active git and ssh
// identity.
//
// The key hash is verified before anything is written. If writing the git
// config succeeds but writing the ssh config fails the git config is not
// restored. If only saving the registry fails, both files already point at
// the identity and it is current for this Manager; the returned error wraps
// ErrSave and says so.
func (m *Manager) Activate(username string) error {
	id := m.FindByUsername(username)
	if id == nil {
		return fmt.Errorf("%w: %s", ErrInvalidIdentity, username)
	}

	ok, err := m.hasher.Verify(id.SshKeyHash, id.SshKeyPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrKeyUnreadable, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s (%s)", ErrSSHKeyMismatch, username, id.SshKeyPath)
	}

	if err := m.git.SetUser(id.Username, id.Email); err != nil {
		return fmt.Errorf("%w: %w", ErrGitConfig, err)
	}
	if err := m.ssh.SetIdentityFile(id.SshKeyPath); err != nil {
		return fmt.Errorf("%w: %w", ErrSSHConfig, err)
	}

	m.current = id
	debug.V(1).Log("activated identity %q", username)

	if err := m.save(); err != nil {
		return fmt.Errorf("%s is active but could not be recorded as current: %w", username, err)
	}

	return nil
}

// Check is the result of verifying one identity's key.
type Check struct {
	Identity *identity.Identity
	OK       bool
	Err      error
}

// Validate verifies the key hash of every registered identity.
func (m *Manager) Validate() []Check {
	checks := make([]Check, 0, len(m.identities))
	for _, id := range m.identities {
		ok, err := m.hasher.Verify(id.SshKeyHash, id.SshKeyPath)
		checks = append(checks, Check{Identity: id, OK: ok && err == nil, Err: err})
	}

	return checks
}

func (m *Manager) save() error {
	doc := store.Document{
		Identities: m.identities,
	}
	if m.current != nil {
		doc.Current = m.current.Username
	}

	if err := m.store.Save(doc); err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}

	return nil
}
