package postgres

import (
	"context"
	"database/sql"
	"errors"

	"wordquiz/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/samber/lo"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sqlx.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sqlx.DB) *WordRepo {
	return &WordRepo{db: db}
}

// UpsertWord returns the stored pair, inserting it first if needed
func (r *WordRepo) UpsertWord(ctx context.Context, pair domain.WordPair) (*domain.Word, error) {
	var word *domain.Word
	err := withTx(ctx, r.db, nil, func(tx *sqlx.Tx) error {
		var err error
		word, err = upsertWord(ctx, tx, pair)
		return err
	})
	if err != nil {
		return nil, domain.NewStoreError("word.upsert", err)
	}
	return word, nil
}

// upsertWord relies on the unique (target_word, translate_word) constraint.
// A concurrent insert of the same pair makes ours a no-op and the re-select finds the winner.
func upsertWord(ctx context.Context, q queryer, pair domain.WordPair) (*domain.Word, error) {
	query := `
		INSERT INTO words (target_word, translate_word)
		VALUES ($1, $2)
		ON CONFLICT (target_word, translate_word) DO NOTHING
		RETURNING id
	`
	var id int64
	err := q.GetContext(ctx, &id, query, pair.Target, pair.Translation)
	if errors.Is(err, sql.ErrNoRows) {
		query = `SELECT id FROM words WHERE target_word = $1 AND translate_word = $2`
		err = q.GetContext(ctx, &id, query, pair.Target, pair.Translation)
	}
	if err != nil {
		return nil, err
	}

	return &domain.Word{ID: id, Target: pair.Target, Translation: pair.Translation}, nil
}

// FindByTarget returns the first word with the given target text
func (r *WordRepo) FindByTarget(ctx context.Context, target string) (*domain.Word, error) {
	query := `
		SELECT id, target_word, translate_word
		FROM words
		WHERE target_word = $1
		ORDER BY id
		LIMIT 1
	`
	var w domain.Word
	err := r.db.GetContext(ctx, &w, query, target)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, domain.NewStoreError("word.find_by_target", err)
	}
	return &w, nil
}

// RandomWordsExcluding returns up to limit random words whose ids are not in excludeIDs
func (r *WordRepo) RandomWordsExcluding(ctx context.Context, excludeIDs []int64, limit int) ([]domain.Word, error) {
	words, err := randomWordsExcluding(ctx, r.db, excludeIDs, limit)
	if err != nil {
		return nil, domain.NewStoreError("word.random", err)
	}
	return words, nil
}

func randomWordsExcluding(ctx context.Context, q queryer, excludeIDs []int64, limit int) ([]domain.Word, error) {
	if limit <= 0 {
		return []domain.Word{}, nil
	}
	// a nil array binds as NULL and would filter out every row
	if excludeIDs == nil {
		excludeIDs = []int64{}
	}

	query := `
		SELECT id, target_word, translate_word
		FROM words
		WHERE NOT (id = ANY($1))
	`
	var candidates []domain.Word
	if err := q.SelectContext(ctx, &candidates, query, pq.Array(excludeIDs)); err != nil {
		return nil, err
	}

	return lo.Samples(candidates, limit), nil
}

// DistinctTranslationsExcluding returns up to limit random translations other than correct
func (r *WordRepo) DistinctTranslationsExcluding(ctx context.Context, correct string, limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}

	query := `
		SELECT DISTINCT translate_word
		FROM words
		WHERE translate_word <> $1
	`
	var translations []string
	if err := r.db.SelectContext(ctx, &translations, query, correct); err != nil {
		return nil, domain.NewStoreError("word.distractors", err)
	}

	return lo.Samples(translations, limit), nil
}

// CountWords returns the size of the word table
func (r *WordRepo) CountWords(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM words`); err != nil {
		return 0, domain.NewStoreError("word.count", err)
	}
	return count, nil
}

// SeedWords inserts pairs only when the word table is empty.
// It returns the number of rows inserted.
func (r *WordRepo) SeedWords(ctx context.Context, pairs []domain.WordPair) (int, error) {
	inserted := 0
	err := withTx(ctx, r.db, nil, func(tx *sqlx.Tx) error {
		var count int
		if err := tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM words`); err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		query := `
			INSERT INTO words (target_word, translate_word)
			VALUES ($1, $2)
			ON CONFLICT (target_word, translate_word) DO NOTHING
		`
		for _, p := range pairs {
			res, err := tx.ExecContext(ctx, query, p.Target, p.Translation)
			if err != nil {
				return err
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			inserted += int(n)
		}
		return nil
	})
	if err != nil {
		return 0, domain.NewStoreError("word.seed", err)
	}
	return inserted, nil
}
