package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/portfolio-api/internal/domain"
)

// BlogFilter captures listing parameters. Published=nil lists everything and
// is reserved for admin callers.
type BlogFilter struct {
	Category   *string
	Published  *bool
	Featured   *bool
	SearchTerm *string
	Limit      int
	Offset     int
}

// BlogRepository encapsulates blog post persistence.
type BlogRepository interface {
	Create(ctx context.Context, post *domain.BlogPost) error
	Update(ctx context.Context, post *domain.BlogPost) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.BlogPost, error)
	List(ctx context.Context, filter BlogFilter) ([]domain.BlogPost, int, error)
}

type blogRepository struct {
	pool *pgxpool.Pool
}

// NewBlogRepository instantiates the repository.
func NewBlogRepository(pool *pgxpool.Pool) BlogRepository {
	return &blogRepository{pool: pool}
}

const blogColumns = `id, title, excerpt, content, image_url, category, tags, read_time, featured,
               published, author_id, likes, seo_title, seo_description, seo_keywords,
               created_at, updated_at`

func (r *blogRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	const query = `
        INSERT INTO blog_posts (title, excerpt, content, image_url, category, tags, read_time,
            featured, published, author_id, seo_title, seo_description, seo_keywords)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING id, likes, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		post.Title,
		post.Excerpt,
		post.Content,
		post.ImageURL,
		post.Category,
		post.Tags,
		post.ReadTime,
		post.Featured,
		post.Published,
		post.AuthorID,
		post.SEOTitle,
		post.SEODescription,
		post.SEOKeywords,
	).Scan(&post.ID, &post.Likes, &post.CreatedAt, &post.UpdatedAt)
}

func (r *blogRepository) Update(ctx context.Context, post *domain.BlogPost) error {
	const query = `
        UPDATE blog_posts SET title=$1, excerpt=$2, content=$3, image_url=$4, category=$5, tags=$6,
            read_time=$7, featured=$8, published=$9, seo_title=$10, seo_description=$11,
            seo_keywords=$12, updated_at=NOW()
        WHERE id=$13`
	cmd, err := r.pool.Exec(ctx, query,
		post.Title,
		post.Excerpt,
		post.Content,
		post.ImageURL,
		post.Category,
		post.Tags,
		post.ReadTime,
		post.Featured,
		post.Published,
		post.SEOTitle,
		post.SEODescription,
		post.SEOKeywords,
		post.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *blogRepository) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	const query = `SELECT ` + blogColumns + ` FROM blog_posts WHERE id=$1`
	var post domain.BlogPost
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.Title,
		&post.Excerpt,
		&post.Content,
		&post.ImageURL,
		&post.Category,
		&post.Tags,
		&post.ReadTime,
		&post.Featured,
		&post.Published,
		&post.AuthorID,
		&post.Likes,
		&post.SEOTitle,
		&post.SEODescription,
		&post.SEOKeywords,
		&post.CreatedAt,
		&post.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) List(ctx context.Context, filter BlogFilter) ([]domain.BlogPost, int, error) {
	clauses := []string{"1=1"}
	args := []any{}

	addClause := func(condition string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf(condition, len(args)))
	}

	if filter.Category != nil && *filter.Category != "" {
		addClause("category=$%d", *filter.Category)
	}
	if filter.Published != nil {
		addClause("published=$%d", *filter.Published)
	}
	if filter.Featured != nil {
		addClause("featured=$%d", *filter.Featured)
	}
	if filter.SearchTerm != nil && *filter.SearchTerm != "" {
		args = append(args, "%"+*filter.SearchTerm+"%")
		idx := len(args)
		clauses = append(clauses, fmt.Sprintf("(title ILIKE $%d OR excerpt ILIKE $%d)", idx, idx))
	}

	where := strings.Join(clauses, " AND ")

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM blog_posts WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE ` + where + ` ORDER BY created_at DESC`
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

	posts := []domain.BlogPost{}
	for rows.Next() {
		var post domain.BlogPost
		if err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Excerpt,
			&post.Content,
			&post.ImageURL,
			&post.Category,
			&post.Tags,
			&post.ReadTime,
			&post.Featured,
			&post.Published,
			&post.AuthorID,
			&post.Likes,
			&post.SEOTitle,
			&post.SEODescription,
			&post.SEOKeywords,
			&post.CreatedAt,
			&post.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}
