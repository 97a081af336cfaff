package store

import "context"

// ListTableNames returns the names of the user tables defined in the schema,
// sorted by name. SQLite's internal tables (sqlite_sequence and friends) are
// excluded.
func (s *Store) ListTableNames(ctx context.Context) ([]string, error) {
	const op = "list tables"

	rows, err := s.db.QueryContext(ctx, `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite\_%' ESCAPE '\'
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, persistErr(op, err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, persistErr(op, err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, persistErr(op, err)
	}

	return names, nil
}
