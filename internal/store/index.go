package store

import (
	"database/sql"
	"fmt"
	"strings"
)

// ReplaceFile records f with its type and method declarations in one
// transaction, replacing any earlier row for the same path. Either all of it
// is written or none of it is, so a failed run never leaves a file row with
// a fresh hash and partial declarations.
func (s *Store) ReplaceFile(f *File, types []TypeDecl, methods []Method) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("replace file: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM files WHERE path = ?", f.Path); err != nil {
		return fmt.Errorf("replace file: delete: %w", err)
	}
	id, err := insertFileTx(tx, f)
	if err != nil {
		return fmt.Errorf("replace file: %w", err)
	}
	for i := range types {
		types[i].FileID = id
		if _, err := insertTypeTx(tx, &types[i]); err != nil {
			return fmt.Errorf("replace file: type %q: %w", types[i].Name, err)
		}
	}
	for i := range methods {
		methods[i].FileID = id
		if _, err := insertMethodTx(tx, &methods[i]); err != nil {
			return fmt.Errorf("replace file: method %s.%s: %w", methods[i].Receiver, methods[i].Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace file: commit: %w", err)
	}
	f.ID = id
	return nil
}

func insertFileTx(tx *sql.Tx, f *File) (int64, error) {
	res, err := tx.Exec(
		"INSERT INTO files (path, package_dir, hash, last_indexed) VALUES (?, ?, ?, ?)",
		f.Path, f.PackageDir, f.Hash, f.LastIndexed,
	)
	if err != nil {
		return 0, fmt.Errorf("insert file: %w", err)
	}
	return res.LastInsertId()
}

func insertTypeTx(tx *sql.Tx, t *TypeDecl) (int64, error) {
	res, err := tx.Exec(
		`INSERT INTO types (file_id, package_dir, name, kind, underlying, is_foreign, line)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.FileID, t.PackageDir, t.Name, t.Kind, t.Underlying, t.IsForeign, t.Line,
	)
	if err != nil {
		return 0, fmt.Errorf("insert type: %w", err)
	}
	return res.LastInsertId()
}

func insertMethodTx(tx *sql.Tx, m *Method) (int64, error) {
	res, err := tx.Exec(
		`INSERT INTO methods (file_id, package_dir, receiver, name, params, result, pointer_receiver, line)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.FileID, m.PackageDir, m.Receiver, m.Name, m.Params, m.Result, m.PointerReceiver, m.Line,
	)
	if err != nil {
		return 0, fmt.Errorf("insert method: %w", err)
	}
	return res.LastInsertId()
}

// FileByPath returns the file row for path, or nil if it was never indexed.
func (s *Store) FileByPath(path string) (*File, error) {
	f := &File{}
	err := s.db.QueryRow(
		"SELECT id, path, package_dir, hash, last_indexed FROM files WHERE path = ?", path,
	).Scan(&f.ID, &f.Path, &f.PackageDir, &f.Hash, &f.LastIndexed)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("file by path: %w", err)
	}
	return f, nil
}

// FilesUnder returns every indexed file whose path lies below dir.
func (s *Store) FilesUnder(dir string) ([]*File, error) {
	rows, err := s.db.Query(
		`SELECT id, path, package_dir, hash, last_indexed
		 FROM files WHERE path LIKE ? ESCAPE '\' ORDER BY path`,
		escapeLike(normalizePathPrefix(dir))+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("files under: %w", err)
	}
	defer rows.Close()
	var out []*File
	for rows.Next() {
		f := &File{}
		if err := rows.Scan(&f.ID, &f.Path, &f.PackageDir, &f.Hash, &f.LastIndexed); err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// DeleteFile removes a file and, through ON DELETE CASCADE, every type and
// method extracted from it.
func (s *Store) DeleteFile(id int64) error {
	if _, err := s.db.Exec("DELETE FROM files WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}

// Implementers returns every non-interface type that declares a method with
// the given name, parameter list and result list, ordered by package and
// type name. A non-empty dir limits the result to types declared below it.
func (s *Store) Implementers(dir, name, params, result string) ([]*Implementer, error) {
	query := `SELECT t.name, t.package_dir, tf.path, t.line, mf.path, m.line,
	        m.pointer_receiver, t.underlying, t.is_foreign
	 FROM methods m
	 JOIN types t ON t.name = m.receiver AND t.package_dir = m.package_dir
	 JOIN files tf ON tf.id = t.file_id
	 JOIN files mf ON mf.id = m.file_id
	 WHERE m.name = ? AND m.params = ? AND m.result = ? AND t.kind != 'interface'`
	args := []any{name, params, result}
	if dir != "" {
		query += ` AND tf.path LIKE ? ESCAPE '\'`
		args = append(args, escapeLike(normalizePathPrefix(dir))+"%")
	}
	query += ` ORDER BY t.package_dir, t.name`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("implementers: %w", err)
	}
	defer rows.Close()
	var out []*Implementer
	for rows.Next() {
		im := &Implementer{}
		if err := rows.Scan(&im.Type, &im.PackageDir, &im.TypeFile, &im.TypeLine,
			&im.MethodFile, &im.MethodLine, &im.PointerReceiver, &im.Underlying, &im.IsForeign); err != nil {
			return nil, fmt.Errorf("scan implementer: %w", err)
		}
		out = append(out, im)
	}
	return out, rows.Err()
}

// normalizePathPrefix ends dir with a slash so "/src/a" does not match
// "/src/ab".
func normalizePathPrefix(dir string) string {
	if !strings.HasSuffix(dir, "/") {
		return dir + "/"
	}
	return dir
}

// escapeLike escapes SQL LIKE wildcards so dir matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
