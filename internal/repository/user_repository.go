package repository

import (
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/campusgpt/portal-api/internal/models"
)

// UserRepository is the in-memory credential store. It exclusively owns the
// user records; callers receive copies so stored state cannot be mutated
// through returned values.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

// NewUserRepository constructs an empty store.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*models.User)}
}

// Seed registers users, hashing their raw passwords. Bootstrap only; the
// login path never writes.
func (r *UserRepository) Seed(users []SeedUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, seed := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := seed.User
		user.PasswordHash = string(hash)
		r.users[normalizeEmail(user.Email)] = &user
	}
	return nil
}

// SeedUser pairs a user record with its bootstrap password.
type SeedUser struct {
	User     models.User
	Password string
}

// Verify recomputes the bcrypt hash for the presented secret and compares it
// against the stored one. bcrypt comparison is constant-shape; there is no
// prefix-dependent early exit. Unknown identities still run a compare against
// a dummy hash so timing does not reveal existence.
func (r *UserRepository) Verify(email, password string) bool {
	r.mu.RLock()
	user, ok := r.users[normalizeEmail(email)]
	r.mu.RUnlock()
	if !ok {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

// Lookup returns a copy of the user record, or false when unknown.
func (r *UserRepository) Lookup(email string) (*models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[normalizeEmail(email)]
	if !ok {
		return nil, false
	}
	clone := *user
	if user.StudentProfile != nil {
		profile := *user.StudentProfile
		profile.Courses = append([]string(nil), user.StudentProfile.Courses...)
		clone.StudentProfile = &profile
	}
	if user.FacultyProfile != nil {
		profile := *user.FacultyProfile
		clone.FacultyProfile = &profile
	}
	return &clone, true
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Precomputed bcrypt hash of an unguessable placeholder, used to equalise
// verify timing for unknown identities.
var dummyHash = func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("portal-dummy-credential"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return hash
}()
