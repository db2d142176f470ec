package repository

import (
	"context"
	"fmt"

	"github.com/Alexandra1624/infra-sp2/internal/data/entity"
	"github.com/Alexandra1624/infra-sp2/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// TitleFilter narrows title listings; zero values mean "no filter".
type TitleFilter struct {
	CategorySlug string
	GenreSlug    string
	Name         string
	Year         int
}

type TitleRepository interface {
	Create(ctx context.Context, title *entity.Title, genreIDs []uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Title, error)
	FindAll(ctx context.Context, filter TitleFilter, limit, offset int) ([]*entity.Title, error)
	CountAll(ctx context.Context, filter TitleFilter) (int64, error)
	Update(ctx context.Context, title *entity.Title, genreIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type titleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTitleRepository(db database.PgxIface, log *zap.Logger) TitleRepository {
	return &titleRepository{
		db:  db,
		log: log.With(zap.String("repository", "title")),
	}
}

// titleSelect joins the average review score so the read model always carries
// the current rating.
const titleSelect = `
	SELECT t.id, t.name, t.year, t.description, t.category_id, t.created_at,
	       t.updated_at, ROUND(AVG(r.score))::FLOAT8 AS rating
	FROM titles t
	LEFT JOIN reviews r ON r.title_id = t.id
`

func scanTitle(row pgx.Row) (*entity.Title, error) {
	var title entity.Title
	err := row.Scan(
		&title.ID,
		&title.Name,
		&title.Year,
		&title.Description,
		&title.CategoryID,
		&title.CreatedAt,
		&title.UpdatedAt,
		&title.Rating,
	)
	if err != nil {
		return nil, err
	}
	return &title, nil
}

func (r *titleRepository) Create(ctx context.Context, title *entity.Title, genreIDs []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create title: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO titles (id, name, year, description, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = tx.Exec(ctx, query,
		title.ID,
		title.Name,
		title.Year,
		title.Description,
		title.CategoryID,
		title.CreatedAt,
		title.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create title",
			zap.Error(err),
			zap.String("name", title.Name),
		)
		return fmt.Errorf("create title %s: %w", title.Name, err)
	}

	if err := insertTitleGenres(ctx, tx, title.ID, genreIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *titleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Title, error) {
	query := titleSelect + `
		WHERE t.id = $1
		GROUP BY t.id
	`

	title, err := scanTitle(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find title by ID",
			zap.Error(err),
			zap.String("title_id", id.String()),
		)
		return nil, fmt.Errorf("find title by ID %s: %w", id.String(), err)
	}

	return title, nil
}

func (r *titleRepository) FindAll(ctx context.Context, filter TitleFilter, limit, offset int) ([]*entity.Title, error) {
	query := titleSelect + `
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE ($1 = '' OR c.slug = $1)
		  AND ($2 = '' OR t.id IN (
		       SELECT tg.title_id FROM title_genres tg
		       INNER JOIN genres g ON g.id = tg.genre_id
		       WHERE g.slug = $2))
		  AND ($3 = '' OR t.name ILIKE '%' || $3 || '%')
		  AND ($4 = 0 OR t.year = $4)
		GROUP BY t.id
		ORDER BY t.name
		LIMIT $5 OFFSET $6
	`

	rows, err := r.db.Query(ctx, query,
		filter.CategorySlug, filter.GenreSlug, filter.Name, filter.Year, limit, offset)
	if err != nil {
		r.log.Error("Failed to find titles", zap.Error(err))
		return nil, fmt.Errorf("find titles: %w", err)
	}
	defer rows.Close()

	var titles []*entity.Title
	for rows.Next() {
		title, err := scanTitle(rows)
		if err != nil {
			r.log.Error("Failed to scan title row", zap.Error(err))
			return nil, fmt.Errorf("scan title row: %w", err)
		}
		titles = append(titles, title)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate titles rows: %w", err)
	}

	return titles, nil
}

func (r *titleRepository) CountAll(ctx context.Context, filter TitleFilter) (int64, error) {
	query := `
		SELECT COUNT(DISTINCT t.id)
		FROM titles t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE ($1 = '' OR c.slug = $1)
		  AND ($2 = '' OR t.id IN (
		       SELECT tg.title_id FROM title_genres tg
		       INNER JOIN genres g ON g.id = tg.genre_id
		       WHERE g.slug = $2))
		  AND ($3 = '' OR t.name ILIKE '%' || $3 || '%')
		  AND ($4 = 0 OR t.year = $4)
	`

	var count int64
	err := r.db.QueryRow(ctx, query,
		filter.CategorySlug, filter.GenreSlug, filter.Name, filter.Year).Scan(&count)
	if err != nil {
		r.log.Error("Database error counting titles", zap.Error(err))
		return 0, fmt.Errorf("count titles: %w", err)
	}

	return count, nil
}

func (r *titleRepository) Update(ctx context.Context, title *entity.Title, genreIDs []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update title: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE titles
		SET name = $2, year = $3, description = $4, category_id = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query,
		title.ID,
		title.Name,
		title.Year,
		title.Description,
		title.CategoryID,
		title.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update title",
			zap.Error(err),
			zap.String("title_id", title.ID.String()),
		)
		return fmt.Errorf("update title %s: %w", title.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("title %s not found", title.ID.String())
	}

	if genreIDs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM title_genres WHERE title_id = $1`, title.ID); err != nil {
			return fmt.Errorf("clear title genres %s: %w", title.ID.String(), err)
		}
		if err := insertTitleGenres(ctx, tx, title.ID, genreIDs); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *titleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM titles WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete title",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete title %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("title %s not found", id.String())
	}

	return nil
}

func insertTitleGenres(ctx context.Context, tx pgx.Tx, titleID uuid.UUID, genreIDs []uuid.UUID) error {
	for _, genreID := range genreIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO title_genres (title_id, genre_id) VALUES ($1, $2)`,
			titleID, genreID,
		)
		if err != nil {
			return fmt.Errorf("link title %s to genre %s: %w",
				titleID.String(), genreID.String(), err)
		}
	}
	return nil
}
