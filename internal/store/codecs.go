package store

import (
	"database/sql"
	"fmt"
)

// InsertCodec inserts a new codec row and returns its ID.
// A duplicate name fails with a UNIQUE violation; the caller decides
// whether that is an error (see IsUniqueViolation).
func (s *Store) InsertCodec(name, description string) (int64, error) {
	result, err := s.db.Exec(`
		INSERT INTO codec (name, description) VALUES (?, ?)
	`, name, description)
	if err != nil {
		return 0, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get codec ID: %w", err)
	}
	return id, nil
}

// InsertCodecBundle inserts a codec together with its extensions and
// its encoder/decoder command patterns in one transaction, so a
// failure partway leaves no half-seeded codec behind. All commands
// get priority 0; list order decides the tie-break. An extension
// already claimed by another codec is skipped, matching the
// idempotent registration policy.
func (s *Store) InsertCodecBundle(name, description string, extensions, encoders, decoders []string) error {
	return s.Transaction(func(tx *sql.Tx) error {
		result, err := tx.Exec(`
			INSERT INTO codec (name, description) VALUES (?, ?)
		`, name, description)
		if err != nil {
			return err
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get codec ID: %w", err)
		}

		for _, ext := range extensions {
			_, err := tx.Exec(`
				INSERT INTO extensions (codec, extension) VALUES (?, ?)
			`, id, ext)
			if err != nil {
				if IsUniqueViolation(err) {
					continue
				}
				return err
			}
		}

		for _, pattern := range encoders {
			if _, err := tx.Exec(`
				INSERT INTO encoder (codec, command, priority) VALUES (?, ?, 0)
			`, id, pattern); err != nil {
				return err
			}
		}
		for _, pattern := range decoders {
			if _, err := tx.Exec(`
				INSERT INTO decoder (codec, command, priority) VALUES (?, ?, 0)
			`, id, pattern); err != nil {
				return err
			}
		}

		return nil
	})
}

// GetCodecByName retrieves a codec by name, or nil if not registered
func (s *Store) GetCodecByName(name string) (*Codec, error) {
	c := &Codec{}
	err := s.db.QueryRow(`
		SELECT id, name, COALESCE(description, '')
		FROM codec WHERE name = ?
	`, name).Scan(&c.ID, &c.Name, &c.Description)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get codec: %w", err)
	}

	return c, nil
}

// ListCodecs retrieves all registered codecs
func (s *Store) ListCodecs() ([]*Codec, error) {
	rows, err := s.db.Query(`
		SELECT id, name, COALESCE(description, '') FROM codec
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list codecs: %w", err)
	}
	defer rows.Close()

	var codecs []*Codec
	for rows.Next() {
		c := &Codec{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("failed to scan codec: %w", err)
		}
		codecs = append(codecs, c)
	}

	return codecs, rows.Err()
}

// DeleteCodec removes a codec row by name. Extensions and command
// patterns cascade. Returns the number of codec rows deleted.
func (s *Store) DeleteCodec(name string) (int64, error) {
	result, err := s.db.Exec("DELETE FROM codec WHERE name = ?", name)
	if err != nil {
		return 0, fmt.Errorf("failed to delete codec: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted rows: %w", err)
	}
	return affected, nil
}
