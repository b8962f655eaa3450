package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fatimaknt/Push-Agri-Farm/internal/store"
)

type userRow struct {
	ID           int64  `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password;not null"`
	FirstName    string
	LastName     string
	Phone        string
	Address      string
	CreatedAt    time.Time
}

func (userRow) TableName() string { return "users" }

type orderRow struct {
	ID         int64  `gorm:"primaryKey"`
	UserID     int64  `gorm:"index"`
	OrderData  string `gorm:"type:text"`
	TotalPrice float64
	TotalItems int
	Status     string `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt  time.Time
}

func (orderRow) TableName() string { return "orders" }

// Store is the client/server variant backed by PostgreSQL.
type Store struct {
	db     *gorm.DB
	logger *slog.Logger
}

// Open connects with the given DSN and runs auto migration for the two
// tables the service owns.
func Open(dsn string, log *slog.Logger) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.AutoMigrate(&userRow{}, &orderRow{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.Info("postgres store ready")
	return &Store{db: db, logger: log}, nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*store.User, error) {
	var row userRow
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	u := toUser(row)
	return &u, nil
}

func (s *Store) InsertUser(ctx context.Context, u *store.User) (int64, error) {
	row := userRow{
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Phone:        u.Phone,
		Address:      u.Address,
		CreatedAt:    u.CreatedAt,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		if strings.Contains(err.Error(), "unique constraint") || strings.Contains(err.Error(), "duplicate key") {
			return 0, store.ErrEmailTaken
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return row.ID, nil
}

func (s *Store) UpdateUserProfile(ctx context.Context, id int64, firstName, lastName, phone, address string) (int64, error) {
	res := s.db.WithContext(ctx).Model(&userRow{}).Where("id = ?", id).Updates(map[string]interface{}{
		"first_name": firstName,
		"last_name":  lastName,
		"phone":      phone,
		"address":    address,
	})
	if res.Error != nil {
		return 0, fmt.Errorf("update profile: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *Store) InsertOrder(ctx context.Context, o *store.Order) (int64, error) {
	row := orderRow{
		UserID:     o.UserID,
		OrderData:  o.OrderData,
		TotalPrice: o.TotalPrice,
		TotalItems: o.TotalItems,
		Status:     o.Status,
		CreatedAt:  o.CreatedAt,
	}
	if row.Status == "" {
		row.Status = store.StatusPending
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	return row.ID, nil
}

func (s *Store) ListOrdersByUser(ctx context.Context, userID int64) ([]store.Order, error) {
	var rows []orderRow
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	out := make([]store.Order, 0, len(rows))
	for _, r := range rows {
		out = append(out, store.Order{
			ID:         r.ID,
			UserID:     r.UserID,
			OrderData:  r.OrderData,
			TotalPrice: r.TotalPrice,
			TotalItems: r.TotalItems,
			Status:     r.Status,
			CreatedAt:  r.CreatedAt,
		})
	}
	return out, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func toUser(r userRow) store.User {
	return store.User{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Phone:        r.Phone,
		Address:      r.Address,
		CreatedAt:    r.CreatedAt,
	}
}
