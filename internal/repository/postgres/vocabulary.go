package postgres

import (
	"context"
	"database/sql"
	"errors"

	"wordquiz/internal/domain"

	"github.com/jmoiron/sqlx"
)

// VocabularyRepo implements repository.VocabularyRepository
type VocabularyRepo struct {
	db *sqlx.DB
}

// NewVocabularyRepo creates a new vocabulary repository
func NewVocabularyRepo(db *sqlx.DB) *VocabularyRepo {
	return &VocabularyRepo{db: db}
}

// AddWord upserts the pair and links it to the user
func (r *VocabularyRepo) AddWord(ctx context.Context, userID int64, pair domain.WordPair) (*domain.Word, error) {
	var word *domain.Word
	err := withTx(ctx, r.db, nil, func(tx *sqlx.Tx) error {
		var err error
		word, err = upsertWord(ctx, tx, pair)
		if err != nil {
			return err
		}

		query := `
			INSERT INTO user_words (user_id, word_id, passed_word)
			VALUES ($1, $2, FALSE)
			ON CONFLICT (user_id, word_id) DO NOTHING
		`
		_, err = tx.ExecContext(ctx, query, userID, word.ID)
		return err
	})
	if err != nil {
		return nil, domain.NewStoreError("vocabulary.add", err)
	}
	return word, nil
}

// RemoveWord unlinks the word from the user and records it in the ignore list.
// When several words share the target, the one linked to the user wins.
func (r *VocabularyRepo) RemoveWord(ctx context.Context, userID int64, target string) (*domain.Word, error) {
	var word domain.Word
	err := withTx(ctx, r.db, nil, func(tx *sqlx.Tx) error {
		query := `
			SELECT w.id, w.target_word, w.translate_word
			FROM words w
			LEFT JOIN user_words uw ON uw.word_id = w.id AND uw.user_id = $2
			WHERE w.target_word = $1
			ORDER BY (uw.id IS NULL), w.id
			LIMIT 1
		`
		err := tx.GetContext(ctx, &word, query, target, userID)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}

		query = `DELETE FROM user_words WHERE user_id = $1 AND word_id = $2`
		if _, err := tx.ExecContext(ctx, query, userID, word.ID); err != nil {
			return err
		}

		query = `
			INSERT INTO ignore_words (user_id, word_id)
			VALUES ($1, $2)
			ON CONFLICT (user_id, word_id) DO NOTHING
		`
		_, err = tx.ExecContext(ctx, query, userID, word.ID)
		return err
	})
	if err != nil {
		return nil, domain.NewStoreError("vocabulary.remove", err)
	}
	return &word, nil
}

// ListWords returns a slice of the user's words ordered by target text
func (r *VocabularyRepo) ListWords(ctx context.Context, userID int64, offset, limit int) (*domain.WordList, error) {
	list := &domain.WordList{Items: []domain.ListedWord{}}
	err := withTx(ctx, r.db, readOnly, func(tx *sqlx.Tx) error {
		countQuery := `SELECT COUNT(*) FROM user_words WHERE user_id = $1`
		if err := tx.GetContext(ctx, &list.Total, countQuery, userID); err != nil {
			return err
		}
		if list.Total == 0 || offset >= list.Total {
			return nil
		}

		query := `
			SELECT w.target_word, w.translate_word, uw.passed_word
			FROM user_words uw
			JOIN words w ON w.id = uw.word_id
			WHERE uw.user_id = $1
			ORDER BY w.target_word, w.translate_word
			LIMIT $2 OFFSET $3
		`
		return tx.SelectContext(ctx, &list.Items, query, userID, limit, offset)
	})
	if err != nil {
		return nil, domain.NewStoreError("vocabulary.list", err)
	}
	return list, nil
}

// UnlearnedWords returns every word the user has linked but not learned yet
func (r *VocabularyRepo) UnlearnedWords(ctx context.Context, userID int64) ([]domain.Word, error) {
	query := `
		SELECT w.id, w.target_word, w.translate_word
		FROM user_words uw
		JOIN words w ON w.id = uw.word_id
		WHERE uw.user_id = $1 AND uw.passed_word = FALSE
		ORDER BY w.id
	`
	words := []domain.Word{}
	if err := r.db.SelectContext(ctx, &words, query, userID); err != nil {
		return nil, domain.NewStoreError("vocabulary.unlearned", err)
	}
	return words, nil
}

// IgnoredWordIDs returns ids of words the user removed
func (r *VocabularyRepo) IgnoredWordIDs(ctx context.Context, userID int64) ([]int64, error) {
	query := `SELECT word_id FROM ignore_words WHERE user_id = $1 ORDER BY word_id`
	ids := []int64{}
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, domain.NewStoreError("vocabulary.ignored", err)
	}
	return ids, nil
}

// MarkLearned flips the learned flag of the user's link.
// A missing link is not an error: the word may have been removed meanwhile.
func (r *VocabularyRepo) MarkLearned(ctx context.Context, userID, wordID int64) error {
	query := `
		UPDATE user_words
		SET passed_word = TRUE
		WHERE user_id = $1 AND word_id = $2
	`
	if _, err := r.db.ExecContext(ctx, query, userID, wordID); err != nil {
		return domain.NewStoreError("vocabulary.mark_learned", err)
	}
	return nil
}

// CountTotalAndLearned returns how many words the user has and how many are learned
func (r *VocabularyRepo) CountTotalAndLearned(ctx context.Context, userID int64) (int, int, error) {
	query := `
		SELECT
			COUNT(*) AS total_count,
			COALESCE(SUM(CASE WHEN passed_word THEN 1 ELSE 0 END), 0) AS learned_count
		FROM user_words
		WHERE user_id = $1
	`
	var counts struct {
		Total   int `db:"total_count"`
		Learned int `db:"learned_count"`
	}
	if err := r.db.GetContext(ctx, &counts, query, userID); err != nil {
		return 0, 0, domain.NewStoreError("vocabulary.counts", err)
	}
	return counts.Total, counts.Learned, nil
}
