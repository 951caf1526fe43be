package user

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"terminal-terrace/catalog-service/internal/logger"
	userModel "terminal-terrace/catalog-service/internal/model/user"
	"terminal-terrace/catalog-service/internal/testutils"
	"terminal-terrace/catalog-service/internal/upstream"
)

// mockIdentity 按调用顺序返回预设的用户名，可设置延迟与失败
type mockIdentity struct {
	mu        sync.Mutex
	usernames []string
	next      int
	delay     time.Duration
	failOn    int // 第几次调用失败，从 1 开始；0 表示不失败

	calls    atomic.Int32
	inFlight atomic.Int32
	maxSeen  atomic.Int32
}

func (m *mockIdentity) FetchIdentity(ctx context.Context) (*upstream.Identity, error) {
	n := m.calls.Add(1)

	cur := m.inFlight.Add(1)
	defer m.inFlight.Add(-1)
	for {
		seen := m.maxSeen.Load()
		if cur <= seen || m.maxSeen.CompareAndSwap(seen, cur) {
			break
		}
	}

	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if m.failOn > 0 && int(n) == m.failOn {
		return nil, errors.New("randomuser.me: 503 Service Unavailable")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	username := fmt.Sprintf("generated_%d", m.next)
	if m.next < len(m.usernames) {
		username = m.usernames[m.next]
	}
	m.next++

	return &upstream.Identity{
		Username: username,
		Password: "pw-" + username,
		Email:    username + "@example.com",
	}, nil
}

func setupUserService(t *testing.T, identity IdentityFetcher) (UserService, *gorm.DB) {
	t.Helper()
	db := testutils.SetupTestDB(t)
	return NewUserService(NewUserRepository(db), identity, 5, logger.Discard()), db
}

func TestGenerateUsers(t *testing.T) {
	identity := &mockIdentity{usernames: []string{"a", "b", "c", "d", "e"}}
	service, db := setupUserService(t, identity)

	result, err := service.GenerateUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &GenerateResult{Requested: 5, Inserted: 5, Skipped: 0}, result)
	assert.EqualValues(t, 5, identity.calls.Load())
	assert.EqualValues(t, 5, testutils.CountRows(db, &userModel.User{}))
}

func TestGenerateUsers_Duplicates(t *testing.T) {
	tests := []struct {
		name      string
		existing  []string
		usernames []string
		inserted  int
		skipped   int
	}{
		{
			name:      "duplicate of stored user",
			existing:  []string{"taken"},
			usernames: []string{"taken", "u1", "u2", "u3", "u4"},
			inserted:  4,
			skipped:   1,
		},
		{
			name:      "duplicates inside the batch",
			usernames: []string{"twin", "twin", "u1", "twin", "u2"},
			inserted:  3,
			skipped:   2,
		},
		{
			name:      "everything already stored",
			existing:  []string{"x1", "x2", "x3", "x4", "x5"},
			usernames: []string{"x1", "x2", "x3", "x4", "x5"},
			inserted:  0,
			skipped:   5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutils.SetupTestDB(t)
			for _, name := range tt.existing {
				testutils.CreateTestUser(db, testutils.WithUsername(name))
			}
			before := testutils.CountRows(db, &userModel.User{})

			service := NewUserService(NewUserRepository(db), &mockIdentity{usernames: tt.usernames}, 5, logger.Discard())
			result, err := service.GenerateUsers(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.inserted, result.Inserted)
			assert.Equal(t, tt.skipped, result.Skipped)

			after := testutils.CountRows(db, &userModel.User{})
			assert.EqualValues(t, 5-tt.skipped, after-before)
		})
	}
}

func TestGenerateUsers_StoredFields(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewUserService(NewUserRepository(db), &mockIdentity{usernames: []string{"solo"}}, 1, logger.Discard())

	_, err := service.GenerateUsers(context.Background())
	require.NoError(t, err)

	var u userModel.User
	require.NoError(t, db.Where("username = ?", "solo").First(&u).Error)
	assert.Equal(t, "solo@example.com", u.Email)
	assert.Equal(t, "pw-solo", u.Password)
	assert.Equal(t, 0, u.IsAdmin)
	assert.False(t, u.CreatedAt.IsZero())
}

func TestGenerateUsers_FailureAbortsBatch(t *testing.T) {
	identity := &mockIdentity{failOn: 3}
	service, db := setupUserService(t, identity)

	result, err := service.GenerateUsers(context.Background())
	assert.ErrorContains(t, err, "503 Service Unavailable")
	assert.Nil(t, result)
	assert.Zero(t, testutils.CountRows(db, &userModel.User{}), "a failed batch must not insert anything")
}

func TestGenerateUsers_ConcurrentFanOut(t *testing.T) {
	const latency = 300 * time.Millisecond
	identity := &mockIdentity{delay: latency}
	service, _ := setupUserService(t, identity)

	start := time.Now()
	_, err := service.GenerateUsers(context.Background())
	elapsed := time.Since(start)
	require.NoError(t, err)

	assert.EqualValues(t, 5, identity.calls.Load())
	assert.EqualValues(t, 5, identity.maxSeen.Load(), "all identity requests should be in flight together")
	assert.Less(t, elapsed, 3*latency, "latency should be close to a single call, not five")
}
