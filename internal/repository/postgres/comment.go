package postgres

import (
	"context"
	"time"

	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/domain"
	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/repository"
)

type commentRepository struct {
	db DBTX
}

func NewCommentRepository(db DBTX) repository.CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, c *domain.Comment) error {
	query := `INSERT INTO comments (booking_id, reviewer_id, reviewee_id, rate, content, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, c.BookingID, c.ReviewerID, c.RevieweeID, c.Rate, c.Content, time.Now()).Scan(&c.ID)
	if isUniqueViolation(err) {
		return domain.Conflictf("booking %d has already been rated by this user", c.BookingID)
	}
	return err
}

func (r *commentRepository) ListByReviewee(ctx context.Context, revieweeID int32, page, pageSize int32) ([]domain.Comment, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM comments WHERE reviewee_id = $1`, revieweeID).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT id, booking_id, reviewer_id, reviewee_id, rate, COALESCE(content, ''), created_on
	          FROM comments WHERE reviewee_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, revieweeID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		var createdOn time.Time
		if err := rows.Scan(&c.ID, &c.BookingID, &c.ReviewerID, &c.RevieweeID, &c.Rate, &c.Content, &createdOn); err != nil {
			return nil, 0, err
		}
		c.CreatedOn = createdOn.Format("2006-01-02")
		comments = append(comments, c)
	}
	return comments, count, rows.Err()
}

func (r *commentRepository) DeleteByBookingID(ctx context.Context, bookingID int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE booking_id = $1`, bookingID)
	return err
}

func (r *commentRepository) ExistsForBookingByReviewer(ctx context.Context, bookingID, reviewerID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM comments WHERE booking_id = $1 AND reviewer_id = $2)`
	err := r.db.QueryRowContext(ctx, query, bookingID, reviewerID).Scan(&exists)
	return exists, err
}
