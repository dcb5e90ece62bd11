package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-contact-book/internal/logger"
	"github.com/MKhiriev/go-contact-book/models"
)

type bookmarkRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewBookmarkRepository(db *DB, logger *logger.Logger) BookmarkRepository {
	logger.Debug().Msg("creating bookmark repository")
	return &bookmarkRepository{
		db:     db,
		logger: logger,
	}
}

func (r *bookmarkRepository) CreateBookmark(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	bookmark.CreatedAt = now()
	query, args, err := buildInsertBookmarkQuery(r.db.builder, bookmark)
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.CreateBookmark").Msg("error building query")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&bookmark.BookmarkID); err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.CreateBookmark").Msg("error inserting bookmark")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return bookmark, nil
}

func (r *bookmarkRepository) ListBookmarks(ctx context.Context) ([]models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBookmarksQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.ListBookmarks").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.ListBookmarks").Msg("error querying bookmarks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bookmarks := make([]models.Bookmark, 0)
	for rows.Next() {
		var b models.Bookmark
		if err = rows.Scan(&b.BookmarkID, &b.Name, &b.URL, &b.Description, &b.CreatedAt); err != nil {
			log.Err(err).Str("func", "*bookmarkRepository.ListBookmarks").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		bookmarks = append(bookmarks, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return bookmarks, nil
}
