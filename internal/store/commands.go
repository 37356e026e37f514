package store

import "fmt"

// CommandKind selects the encoder or decoder table
type CommandKind string

const (
	KindEncoder CommandKind = "encoder"
	KindDecoder CommandKind = "decoder"
)

// Encoder and decoder rows live in separate tables with identical
// layout; the kind picks the table. The kind values are fixed
// constants, never user input, so interpolating the table name is safe.

// InsertCommand registers a ranked command pattern for a codec
func (s *Store) InsertCommand(kind CommandKind, codecID int64, pattern string, priority int) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (codec, command, priority) VALUES (?, ?, ?)
	`, kind)
	if _, err := s.db.Exec(query, codecID, pattern, priority); err != nil {
		return fmt.Errorf("failed to insert %s: %w", kind, err)
	}
	return nil
}

// GetCommands retrieves a codec's command patterns ordered by
// descending priority, ties broken by insertion order
func (s *Store) GetCommands(kind CommandKind, codecID int64) ([]*Command, error) {
	query := fmt.Sprintf(`
		SELECT id, codec, priority, command FROM %s
		WHERE codec = ? ORDER BY priority DESC, id ASC
	`, kind)
	rows, err := s.db.Query(query, codecID)
	if err != nil {
		return nil, fmt.Errorf("failed to get %ss: %w", kind, err)
	}
	defer rows.Close()

	var commands []*Command
	for rows.Next() {
		c := &Command{}
		if err := rows.Scan(&c.ID, &c.CodecID, &c.Priority, &c.Pattern); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", kind, err)
		}
		commands = append(commands, c)
	}

	return commands, rows.Err()
}

// CountCommands returns the number of command patterns of a kind
// registered for a codec
func (s *Store) CountCommands(kind CommandKind, codecID int64) (int, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE codec = ?", kind)
	var count int
	if err := s.db.QueryRow(query, codecID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %ss: %w", kind, err)
	}
	return count, nil
}
