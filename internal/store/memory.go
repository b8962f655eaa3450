package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Memory is the in-process variant used when the service runs without a
// database. It is also what handler tests run against. All state is
// lost on restart.
type Memory struct {
	mu         sync.Mutex
	users      map[int64]*User
	orders     map[int64]*Order
	nextUserID int64
	nextOrder  int64
	nowFunc    func() time.Time
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		users:      map[int64]*User{},
		orders:     map[int64]*Order{},
		nextUserID: 1,
		nextOrder:  1,
		nowFunc:    time.Now,
	}
}

func (m *Memory) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *Memory) InsertUser(ctx context.Context, u *User) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return 0, ErrEmailTaken
		}
	}
	id := m.nextUserID
	m.nextUserID++
	cp := *u
	cp.ID = id
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = m.nowFunc().UTC()
	}
	m.users[id] = &cp
	return id, nil
}

func (m *Memory) UpdateUserProfile(ctx context.Context, id int64, firstName, lastName, phone, address string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		// matches the SQL backends: updating a missing row affects zero rows
		return 0, nil
	}
	u.FirstName = firstName
	u.LastName = lastName
	u.Phone = phone
	u.Address = address
	return 1, nil
}

func (m *Memory) InsertOrder(ctx context.Context, o *Order) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextOrder
	m.nextOrder++
	cp := *o
	cp.ID = id
	if cp.Status == "" {
		cp.Status = StatusPending
	}
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = m.nowFunc().UTC()
	}
	m.orders[id] = &cp
	return id, nil
}

func (m *Memory) ListOrdersByUser(ctx context.Context, userID int64) ([]Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Order, 0)
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) Close() error { return nil }
