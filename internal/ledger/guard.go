package ledger

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GuardMode selects how the read-aggregate, decide, write sequence of
// the budget check is protected against concurrent submissions for the
// same user.
type GuardMode string

const (
	// GuardSerializable wraps the sequence in a database transaction.
	GuardSerializable GuardMode = "serializable"
	// GuardLock serializes the sequence per user with a mutex.
	GuardLock GuardMode = "lock"
	// GuardNone accepts the race between concurrent budget checks.
	GuardNone GuardMode = "none"
)

var ErrGuardModeInvalid = errors.New("the budget guard mode must be one of: serializable, lock, none")

// ParseGuardMode parses a guard mode from its string representation.
func ParseGuardMode(s string) (GuardMode, error) {
	switch mode := GuardMode(s); mode {
	case GuardSerializable, GuardLock, GuardNone:
		return mode, nil
	default:
		return "", ErrGuardModeInvalid
	}
}

var guardMode = GuardLock

// SetGuardMode configures the guard used by the commands. It is called
// once at startup and is not safe for concurrent use with commands.
func SetGuardMode(mode GuardMode) {
	guardMode = mode
}

// userLocks holds one mutex per user that has submitted a guarded
// command since startup.
var userLocks sync.Map

func withGuard(db *gorm.DB, userID uuid.UUID, fn func(db *gorm.DB) error) error {
	switch guardMode {
	case GuardSerializable:
		return db.Transaction(fn)
	case GuardLock:
		lock, _ := userLocks.LoadOrStore(userID, &sync.Mutex{})
		mutex := lock.(*sync.Mutex)
		mutex.Lock()
		defer mutex.Unlock()

		return fn(db)
	default:
		return fn(db)
	}
}
