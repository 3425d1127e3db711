package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/domain"
	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/repository"
)

type userRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, password_hash, name, phone_number, role, profit, rating, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, 0, 0, $6, $7) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, u.Email, u.PasswordHash, u.Name, u.PhoneNumber, u.Role, time.Now(), time.Now()).Scan(&u.ID)
	if isUniqueViolation(err) {
		return domain.Conflictf("email %s is already registered", u.Email)
	}
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `WHERE email = $1`, email)
}

func (r *userRepository) getOne(ctx context.Context, where string, arg interface{}) (*domain.User, error) {
	u := &domain.User{}
	var createdOn, updatedOn time.Time
	query := `SELECT id, email, password_hash, name, COALESCE(phone_number, ''), role, COALESCE(profit, 0), COALESCE(rating, 0), created_on, updated_on FROM users ` + where
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.PhoneNumber, &u.Role, &u.Profit, &u.Rating, &createdOn, &updatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("user does not exist")
	}
	if err != nil {
		return nil, err
	}
	u.CreatedOn = createdOn.Format("2006-01-02")
	u.UpdatedOn = updatedOn.Format("2006-01-02")
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET name=$1, phone_number=$2, email=$3, updated_on=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, u.Name, u.PhoneNumber, u.Email, time.Now(), u.ID)
	if isUniqueViolation(err) {
		return domain.Conflictf("email %s is already registered", u.Email)
	}
	return err
}

func (r *userRepository) CreditProfit(ctx context.Context, userID int32, amount int64) (bool, error) {
	query := `UPDATE users SET profit = COALESCE(profit, 0) + $1, updated_on = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, amount, time.Now(), userID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected == 1, nil
}

func (r *userRepository) RecomputeRating(ctx context.Context, userID int32) (float64, error) {
	var rating float64
	query := `UPDATE users
	          SET rating = (SELECT COALESCE(AVG(rate), 0) FROM comments WHERE reviewee_id = $1), updated_on = $2
	          WHERE id = $1
	          RETURNING rating`
	err := r.db.QueryRowContext(ctx, query, userID, time.Now()).Scan(&rating)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.NotFoundf("user does not exist")
	}
	return rating, err
}
