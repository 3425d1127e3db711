package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx, so each
// repository can run either standalone or inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type Store struct {
	db   *sql.DB // nil for transaction-scoped stores
	dbtx DBTX

	users          repository.UserRepository
	vehicles       repository.VehicleRepository
	bookings       repository.BookingRepository
	bookingDetails repository.BookingDetailRepository
	comments       repository.CommentRepository
}

func NewStore(db *sql.DB) *Store {
	return newStore(db, db)
}

func newStore(db *sql.DB, dbtx DBTX) *Store {
	return &Store{
		db:             db,
		dbtx:           dbtx,
		users:          NewUserRepository(dbtx),
		vehicles:       NewVehicleRepository(dbtx),
		bookings:       NewBookingRepository(dbtx),
		bookingDetails: NewBookingDetailRepository(dbtx),
		comments:       NewCommentRepository(dbtx),
	}
}

func (s *Store) Users() repository.UserRepository                   { return s.users }
func (s *Store) Vehicles() repository.VehicleRepository             { return s.vehicles }
func (s *Store) Bookings() repository.BookingRepository             { return s.bookings }
func (s *Store) BookingDetails() repository.BookingDetailRepository { return s.bookingDetails }
func (s *Store) Comments() repository.CommentRepository             { return s.comments }

// Transact runs fn inside a database transaction. A transaction-scoped Store
// joins the enclosing transaction instead of opening a new one.
func (s *Store) Transact(ctx context.Context, fn func(repository.Store) error) error {
	if s.db == nil {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(newStore(nil, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback after %w: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
