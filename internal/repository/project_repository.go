package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/portfolio-api/internal/domain"
)

// ProjectFilter captures listing parameters for the public projects page.
type ProjectFilter struct {
	Category   *domain.ProjectCategory
	Featured   *bool
	SearchTerm *string
	Limit      int
	Offset     int
}

// ProjectRepository encapsulates project persistence.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]domain.Project, int, error)
	ListFeatured(ctx context.Context, limit int) ([]domain.Project, error)
	IncrementViews(ctx context.Context, id string) error
	IncrementLikes(ctx context.Context, id string) (int64, error)
}

type projectRepository struct {
	pool *pgxpool.Pool
}

// NewProjectRepository instantiates the repository.
func NewProjectRepository(pool *pgxpool.Pool) ProjectRepository {
	return &projectRepository{pool: pool}
}

const projectColumns = `id, title, slug, description, long_description, image_url, technologies,
               category, github_url, live_url, featured, views, likes, start_date, duration,
               created_at, updated_at`

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	const query = `
        INSERT INTO projects (title, slug, description, long_description, image_url, technologies,
            category, github_url, live_url, featured, start_date, duration)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id, views, likes, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		project.Title,
		project.Slug,
		project.Description,
		project.LongDescription,
		project.ImageURL,
		project.Technologies,
		project.Category,
		project.GitHubURL,
		project.LiveURL,
		project.Featured,
		project.StartDate,
		project.Duration,
	).Scan(&project.ID, &project.Views, &project.Likes, &project.CreatedAt, &project.UpdatedAt)
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	const query = `
        UPDATE projects SET title=$1, slug=$2, description=$3, long_description=$4, image_url=$5,
            technologies=$6, category=$7, github_url=$8, live_url=$9, featured=$10,
            start_date=$11, duration=$12, updated_at=NOW()
        WHERE id=$13`
	cmd, err := r.pool.Exec(ctx, query,
		project.Title,
		project.Slug,
		project.Description,
		project.LongDescription,
		project.ImageURL,
		project.Technologies,
		project.Category,
		project.GitHubURL,
		project.LiveURL,
		project.Featured,
		project.StartDate,
		project.Duration,
		project.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	const query = `SELECT ` + projectColumns + ` FROM projects WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *projectRepository) GetBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	const query = `SELECT ` + projectColumns + ` FROM projects WHERE slug=$1`
	return r.fetchSingle(ctx, query, slug)
}

func (r *projectRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Project, error) {
	var project domain.Project
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&project.ID,
		&project.Title,
		&project.Slug,
		&project.Description,
		&project.LongDescription,
		&project.ImageURL,
		&project.Technologies,
		&project.Category,
		&project.GitHubURL,
		&project.LiveURL,
		&project.Featured,
		&project.Views,
		&project.Likes,
		&project.StartDate,
		&project.Duration,
		&project.CreatedAt,
		&project.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) List(ctx context.Context, filter ProjectFilter) ([]domain.Project, int, error) {
	clauses := []string{"1=1"}
	args := []any{}

	addClause := func(condition string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf(condition, len(args)))
	}

	if filter.Category != nil {
		addClause("category=$%d", *filter.Category)
	}
	if filter.Featured != nil {
		addClause("featured=$%d", *filter.Featured)
	}
	if filter.SearchTerm != nil && *filter.SearchTerm != "" {
		args = append(args, "%"+*filter.SearchTerm+"%")
		idx := len(args)
		clauses = append(clauses, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", idx, idx))
	}

	where := strings.Join(clauses, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM projects WHERE ` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + projectColumns + ` FROM projects WHERE ` + where + ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	projects, err := scanProjects(rows)
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

func (r *projectRepository) ListFeatured(ctx context.Context, limit int) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE featured=true ORDER BY created_at DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProjects(rows)
}

func (r *projectRepository) IncrementViews(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE projects SET views=views+1 WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *projectRepository) IncrementLikes(ctx context.Context, id string) (int64, error) {
	var likes int64
	err := r.pool.QueryRow(ctx, `UPDATE projects SET likes=likes+1 WHERE id=$1 RETURNING likes`, id).Scan(&likes)
	if err != nil {
		return 0, err
	}
	return likes, nil
}

func scanProjects(rows pgx.Rows) ([]domain.Project, error) {
	projects := []domain.Project{}
	for rows.Next() {
		var project domain.Project
		if err := rows.Scan(
			&project.ID,
			&project.Title,
			&project.Slug,
			&project.Description,
			&project.LongDescription,
			&project.ImageURL,
			&project.Technologies,
			&project.Category,
			&project.GitHubURL,
			&project.LiveURL,
			&project.Featured,
			&project.Views,
			&project.Likes,
			&project.StartDate,
			&project.Duration,
			&project.CreatedAt,
			&project.UpdatedAt,
		); err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}
