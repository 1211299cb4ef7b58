package localstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jhoicas/agromercado-api/pkg/logger"
	_ "modernc.org/sqlite"
)

// Nombres de las colecciones persistidas.
const (
	CollectionUsers        = "users"
	CollectionProducts     = "products"
	CollectionTransactions = "transactions"
	CollectionSession      = "currentUser"
	CollectionCarts        = "carts" // una entrada por comprador (owner = buyerID)
)

const schema = `
CREATE TABLE IF NOT EXISTS collections (
	name  TEXT NOT NULL,
	owner TEXT NOT NULL DEFAULT '',
	data  TEXT NOT NULL,
	PRIMARY KEY (name, owner)
);`

// Store es el almacén local de registros: cada colección se guarda como un
// documento JSON bajo la clave compuesta (name, owner). Es el equivalente
// embebido del localStorage de un navegador; no valida esquemas, los
// llamadores son responsables de la forma de los registros.
type Store struct {
	db  *sql.DB
	log *logger.Logger
}

// Open abre (o crea) el almacén en la ruta indicada. Acepta ":memory:" para
// un almacén efímero.
func Open(path string, log *logger.Logger) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("ruta del almacén requerida")
	}
	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("crear esquema: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Store{db: db, log: log}, nil
}

// Close cierra la base subyacente.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB devuelve la conexión subyacente (tests).
func (s *Store) DB() *sql.DB { return s.db }

// Load deserializa la colección en dst. Política deliberadamente tolerante:
// colección ausente o JSON corrupto dejan dst vacío y devuelven nil.
func (s *Store) Load(name string, dst any) error {
	return s.LoadOwned(name, "", dst)
}

// LoadOwned es Load con clave compuesta (name, owner).
func (s *Store) LoadOwned(name, owner string, dst any) error {
	var raw string
	err := s.db.QueryRow(
		`SELECT data FROM collections WHERE name = ? AND owner = ?`, name, owner,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		s.log.Warn().Err(err).Str("collection", name).Msg("lectura del almacén falló, se asume colección vacía")
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.log.Warn().Err(err).Str("collection", name).Msg("datos corruptos en el almacén, se asume colección vacía")
		return nil
	}
	return nil
}

// Save serializa v y reemplaza la colección completa.
func (s *Store) Save(name string, v any) error {
	return s.SaveOwned(name, "", v)
}

// SaveOwned es Save con clave compuesta (name, owner).
func (s *Store) SaveOwned(name, owner string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serializar colección %s: %w", name, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO collections (name, owner, data) VALUES (?, ?, ?)
		ON CONFLICT (name, owner) DO UPDATE SET data = excluded.data`,
		name, owner, string(raw),
	)
	if err != nil {
		return fmt.Errorf("guardar colección %s: %w", name, err)
	}
	return nil
}

// Delete elimina la colección; no es error que no exista.
func (s *Store) Delete(name string) error {
	return s.DeleteOwned(name, "")
}

// DeleteOwned es Delete con clave compuesta (name, owner).
func (s *Store) DeleteOwned(name, owner string) error {
	if _, err := s.db.Exec(
		`DELETE FROM collections WHERE name = ? AND owner = ?`, name, owner,
	); err != nil {
		return fmt.Errorf("eliminar colección %s: %w", name, err)
	}
	return nil
}
