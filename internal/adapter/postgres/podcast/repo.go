// Package podcast implements the saved-podcast store using PostgreSQL.
package podcast

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/podshelf-backend/internal/adapter/postgres"
	"github.com/heartmarshall/podshelf-backend/internal/domain"
)

const table = "podcasts"

var columns = []string{
	"id", "user_id", "title", "author", "description", "image_url",
	"rating", "status", "created_at", "updated_at",
}

// row mirrors a podcasts table row for scany.
type row struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Title       string    `db:"title"`
	Author      string    `db:"author"`
	Description string    `db:"description"`
	ImageURL    string    `db:"image_url"`
	Rating      *int      `db:"rating"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Podcast {
	return domain.Podcast{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Author:      r.Author,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Rating:      r.Rating,
		Status:      domain.PodcastStatus(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Repo provides podcast persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new podcast repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts p and returns the stored row.
func (r *Repo) Create(ctx context.Context, p *domain.Podcast) (*domain.Podcast, error) {
	ins := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(p.ID, p.UserID, p.Title, p.Author, p.Description, p.ImageURL,
			p.Rating, string(p.Status), p.CreatedAt, p.UpdatedAt).
		Suffix("RETURNING " + columnList())

	return r.getOne(ctx, ins, p.ID)
}

// GetByID returns the podcast with the given id regardless of owner.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Podcast, error) {
	sel := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id})

	return r.getOne(ctx, sel, id)
}

// GetByIDForUpdate is GetByID with the row locked until the surrounding
// transaction ends. It must run inside TxManager.RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Podcast, error) {
	sel := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE")

	return r.getOne(ctx, sel, id)
}

// ListByUser returns the podcasts owned by userID, newest first. A non-nil
// status restricts the result to that status.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, status *domain.PodcastStatus) ([]domain.Podcast, error) {
	sel := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC")
	if status != nil {
		sel = sel.Where(sq.Eq{"status": string(*status)})
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list podcasts query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "podcasts of user", userID)
	}

	result := make([]domain.Podcast, 0, len(rows))
	for _, rw := range rows {
		result = append(result, rw.toDomain())
	}
	return result, nil
}

// Update writes every mutable field of p and stamps updated_at.
func (r *Repo) Update(ctx context.Context, p *domain.Podcast) (*domain.Podcast, error) {
	upd := postgres.Builder().
		Update(table).
		Set("title", p.Title).
		Set("author", p.Author).
		Set("description", p.Description).
		Set("image_url", p.ImageURL).
		Set("rating", p.Rating).
		Set("status", string(p.Status)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": p.ID}).
		Suffix("RETURNING " + columnList())

	return r.getOne(ctx, upd, p.ID)
}

// Delete removes the podcast. Returns domain.ErrNotFound if no row matched.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete podcast query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "podcast", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "podcast", id)
	}
	return nil
}

func (r *Repo) getOne(ctx context.Context, b sq.Sqlizer, id uuid.UUID) (*domain.Podcast, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build podcast query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			err = pgx.ErrNoRows
		}
		return nil, postgres.MapError(err, "podcast", id)
	}

	p := rw.toDomain()
	return &p, nil
}

func columnList() string {
	return strings.Join(columns, ", ")
}
