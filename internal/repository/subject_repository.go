package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/portfolio-api/internal/domain"
)

// SubjectRepository defines persistence access for accounts. The auth core
// only reads; Update exists for the password-change flow.
type SubjectRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Subject, error)
	GetByEmail(ctx context.Context, email string) (*domain.Subject, error)
	Update(ctx context.Context, subject *domain.Subject) error
}

type subjectRepository struct {
	pool *pgxpool.Pool
}

// NewSubjectRepository returns a Postgres-backed implementation.
func NewSubjectRepository(pool *pgxpool.Pool) SubjectRepository {
	return &subjectRepository{pool: pool}
}

const subjectColumns = `id, name, email, password_hash, phone, avatar_url, role, status, verified, created_at, updated_at`

func (r *subjectRepository) GetByID(ctx context.Context, id string) (*domain.Subject, error) {
	const query = `SELECT ` + subjectColumns + ` FROM subjects WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *subjectRepository) GetByEmail(ctx context.Context, email string) (*domain.Subject, error) {
	const query = `SELECT ` + subjectColumns + ` FROM subjects WHERE LOWER(email)=LOWER($1)`
	return r.fetchSingle(ctx, query, email)
}

func (r *subjectRepository) Update(ctx context.Context, subject *domain.Subject) error {
	const query = `
        UPDATE subjects SET name=$1, email=$2, password_hash=$3, phone=$4, avatar_url=$5,
            role=$6, status=$7, verified=$8, updated_at=NOW()
        WHERE id=$9`

	cmd, err := r.pool.Exec(ctx, query,
		subject.Name,
		subject.Email,
		subject.PasswordHash,
		subject.Phone,
		subject.AvatarURL,
		subject.Role,
		subject.Status,
		subject.Verified,
		subject.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *subjectRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Subject, error) {
	var subject domain.Subject
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&subject.ID,
		&subject.Name,
		&subject.Email,
		&subject.PasswordHash,
		&subject.Phone,
		&subject.AvatarURL,
		&subject.Role,
		&subject.Status,
		&subject.Verified,
		&subject.CreatedAt,
		&subject.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &subject, nil
}
