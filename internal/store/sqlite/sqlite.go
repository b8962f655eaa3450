package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/fatimaknt/Push-Agri-Farm/internal/store"
)

// orderTimeLayout is fixed-width so ORDER BY on the text column sorts
// chronologically. RFC3339Nano trims trailing zeros and would not.
const orderTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store is the embedded file-based variant backed by SQLite.
type Store struct {
	db      *sql.DB
	logger  *slog.Logger
	nowFunc func() time.Time
}

// Open opens (or creates) the database file and bootstraps the schema.
func Open(path string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	s := &Store{db: db, logger: logger, nowFunc: time.Now}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	logger.Info("sqlite store ready", "path", path)
	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT UNIQUE,
			password TEXT,
			first_name TEXT,
			last_name TEXT,
			phone TEXT,
			address TEXT,
			created_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS orders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER,
			order_data TEXT,
			total_price REAL,
			total_items INTEGER,
			status TEXT DEFAULT 'pending',
			created_at TEXT NOT NULL,
			FOREIGN KEY (user_id) REFERENCES users (id)
		);
		CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*store.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, email, password, first_name, last_name, phone, address, created_at
		FROM users WHERE email = ?
	`, email)

	var u store.User
	var createdAt string
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Phone, &u.Address, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	u.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &u, nil
}

func (s *Store) InsertUser(ctx context.Context, u *store.User) (int64, error) {
	createdAt := u.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.nowFunc().UTC()
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO users (email, password, first_name, last_name, phone, address, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Phone, u.Address, createdAt.Format(time.RFC3339))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, store.ErrEmailTaken
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert user id: %w", err)
	}
	return id, nil
}

func (s *Store) UpdateUserProfile(ctx context.Context, id int64, firstName, lastName, phone, address string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE users SET first_name = ?, last_name = ?, phone = ?, address = ? WHERE id = ?
	`, firstName, lastName, phone, address, id)
	if err != nil {
		return 0, fmt.Errorf("update profile: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update profile rows: %w", err)
	}
	return affected, nil
}

func (s *Store) InsertOrder(ctx context.Context, o *store.Order) (int64, error) {
	status := o.Status
	if status == "" {
		status = store.StatusPending
	}
	createdAt := o.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.nowFunc().UTC()
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO orders (user_id, order_data, total_price, total_items, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, o.UserID, o.OrderData, o.TotalPrice, o.TotalItems, status, createdAt.Format(orderTimeLayout))
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert order id: %w", err)
	}
	return id, nil
}

func (s *Store) ListOrdersByUser(ctx context.Context, userID int64) ([]store.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, order_data, total_price, total_items, status, created_at
		FROM orders WHERE user_id = ? ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	out := make([]store.Order, 0)
	for rows.Next() {
		var o store.Order
		var createdAt string
		if err := rows.Scan(&o.ID, &o.UserID, &o.OrderData, &o.TotalPrice, &o.TotalItems, &o.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.CreatedAt, _ = time.Parse(orderTimeLayout, createdAt)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders rows: %w", err)
	}
	return out, nil
}

func (s *Store) Close() error { return s.db.Close() }
