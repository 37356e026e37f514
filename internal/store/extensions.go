package store

import (
	"database/sql"
	"fmt"
)

// InsertExtension claims an extension for a codec.
// A duplicate extension fails with a UNIQUE violation regardless of
// which codec already holds it (uniqueness is global).
func (s *Store) InsertExtension(codecID int64, extension string) error {
	_, err := s.db.Exec(`
		INSERT INTO extensions (codec, extension) VALUES (?, ?)
	`, codecID, extension)
	return err
}

// GetExtensions retrieves all extensions claimed by a codec
func (s *Store) GetExtensions(codecID int64) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT extension FROM extensions WHERE codec = ? ORDER BY id
	`, codecID)
	if err != nil {
		return nil, fmt.Errorf("failed to get extensions: %w", err)
	}
	defer rows.Close()

	var exts []string
	for rows.Next() {
		var ext string
		if err := rows.Scan(&ext); err != nil {
			return nil, fmt.Errorf("failed to scan extension: %w", err)
		}
		exts = append(exts, ext)
	}

	return exts, rows.Err()
}

// FindCodecByExtension returns the codec that claims the given
// extension, or nil if no codec does
func (s *Store) FindCodecByExtension(extension string) (*Codec, error) {
	c := &Codec{}
	err := s.db.QueryRow(`
		SELECT c.id, c.name, COALESCE(c.description, '')
		FROM codec c JOIN extensions e ON e.codec = c.id
		WHERE e.extension = ?
	`, extension).Scan(&c.ID, &c.Name, &c.Description)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to match extension: %w", err)
	}

	return c, nil
}

// CountExtension returns the number of rows claiming an extension
func (s *Store) CountExtension(extension string) (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM extensions WHERE extension = ?
	`, extension).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count extension: %w", err)
	}
	return count, nil
}
