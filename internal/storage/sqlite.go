package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/emberveil/adventure-engine/pkg/game"
)

// schema: a stats row per character, inventory as a JSON column, sessions
// with the log serialized as JSON.
const schema = `
CREATE TABLE IF NOT EXISTS stats (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	strength     INTEGER NOT NULL DEFAULT 0,
	charisma     INTEGER NOT NULL DEFAULT 0,
	faith        INTEGER NOT NULL DEFAULT 0,
	intelligence INTEGER NOT NULL DEFAULT 0,
	constitution INTEGER NOT NULL DEFAULT 0,
	luck         INTEGER NOT NULL DEFAULT 0,
	defence      INTEGER NOT NULL DEFAULT 0,
	dexterity    INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS characters (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	name        TEXT NOT NULL,
	age         INTEGER NOT NULL DEFAULT 25,
	class       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	hp          INTEGER NOT NULL DEFAULT 100,
	stats_id    INTEGER REFERENCES stats(id),
	inventory   TEXT NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS game_sessions (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	character_id  INTEGER NOT NULL REFERENCES characters(id),
	game_log      TEXT NOT NULL DEFAULT '[]',
	current_scene TEXT NOT NULL DEFAULT ''
);
`

// SQLiteStore implements Storage on a local SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ Storage = (*SQLiteStore)(nil)

// OpenSQLite opens (creating if needed) the database at path and ensures
// the schema exists.
func OpenSQLite(path string, logger *slog.Logger) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLiteStore{db: db, logger: logger}, nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite ping failed: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		s.logger.Error("Failed to close database", "error", err)
		return err
	}
	return nil
}

// CreateCharacter inserts the stats row and the character row in one
// transaction so a failed character insert leaves no orphan stats.
func (s *SQLiteStore) CreateCharacter(ctx context.Context, c *game.Character) (int64, error) {
	inventoryJSON, err := marshalInventory(c.Inventory)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statsRes, err := tx.ExecContext(ctx,
		`INSERT INTO stats (strength, charisma, faith, intelligence, constitution, luck, defence, dexterity)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Stats.Strength, c.Stats.Charisma, c.Stats.Faith, c.Stats.Intelligence,
		c.Stats.Constitution, c.Stats.Luck, c.Stats.Defence, c.Stats.Dexterity)
	if err != nil {
		return 0, fmt.Errorf("insert stats: %w", err)
	}
	statsID, err := statsRes.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("stats insert id: %w", err)
	}

	charRes, err := tx.ExecContext(ctx,
		`INSERT INTO characters (name, age, class, description, hp, stats_id, inventory)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.Name, c.Age, string(c.Class), c.Description, c.HP, statsID, inventoryJSON)
	if err != nil {
		return 0, fmt.Errorf("insert character: %w", err)
	}
	id, err := charRes.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("character insert id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return id, nil
}

func (s *SQLiteStore) GetCharacter(ctx context.Context, id int64) (*game.Character, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT c.id, c.name, c.age, c.class, c.description, c.hp, c.inventory,
		        COALESCE(st.strength, 0), COALESCE(st.charisma, 0), COALESCE(st.faith, 0),
		        COALESCE(st.intelligence, 0), COALESCE(st.constitution, 0), COALESCE(st.luck, 0),
		        COALESCE(st.defence, 0), COALESCE(st.dexterity, 0)
		   FROM characters c
		   LEFT JOIN stats st ON c.stats_id = st.id
		  WHERE c.id = ?`, id)

	var c game.Character
	var class, inventoryJSON string
	err := row.Scan(&c.ID, &c.Name, &c.Age, &class, &c.Description, &c.HP, &inventoryJSON,
		&c.Stats.Strength, &c.Stats.Charisma, &c.Stats.Faith,
		&c.Stats.Intelligence, &c.Stats.Constitution, &c.Stats.Luck,
		&c.Stats.Defence, &c.Stats.Dexterity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get character: %w", err)
	}

	c.Class = game.Class(class)
	c.Skills = game.ClassSkills(c.Class)
	c.Inventory, err = unmarshalInventory(inventoryJSON)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *SQLiteStore) UpdateCharacter(ctx context.Context, c *game.Character) error {
	inventoryJSON, err := marshalInventory(c.Inventory)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE characters SET name = ?, age = ?, class = ?, description = ?, hp = ?, inventory = ? WHERE id = ?`,
		c.Name, c.Age, string(c.Class), c.Description, c.HP, inventoryJSON, c.ID)
	if err != nil {
		return fmt.Errorf("update character: %w", err)
	}
	return requireRow(res)
}

func (s *SQLiteStore) UpdateCharacterState(ctx context.Context, id int64, hp int, inventory []game.InventoryItem) error {
	inventoryJSON, err := marshalInventory(inventory)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE characters SET hp = ?, inventory = ? WHERE id = ?`,
		hp, inventoryJSON, id)
	if err != nil {
		return fmt.Errorf("update character state: %w", err)
	}
	return requireRow(res)
}

func (s *SQLiteStore) SaveSession(ctx context.Context, sess *Session) (int64, error) {
	logJSON, err := json.Marshal(sess.GameLog)
	if err != nil {
		return 0, fmt.Errorf("marshal game log: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO game_sessions (character_id, game_log, current_scene) VALUES (?, ?, ?)`,
		sess.CharacterID, string(logJSON), sess.CurrentScene)
	if err != nil {
		return 0, fmt.Errorf("insert game session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("session insert id: %w", err)
	}
	return id, nil
}

func (s *SQLiteStore) GetSession(ctx context.Context, id int64) (*Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, character_id, game_log, current_scene FROM game_sessions WHERE id = ?`, id)

	var sess Session
	var logJSON string
	if err := row.Scan(&sess.ID, &sess.CharacterID, &logJSON, &sess.CurrentScene); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get game session: %w", err)
	}

	if err := json.Unmarshal([]byte(logJSON), &sess.GameLog); err != nil {
		return nil, fmt.Errorf("unmarshal game log: %w", err)
	}
	return &sess, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// marshalInventory serializes inventory for the JSON column. A nil slice is
// stored as an empty list so reads always round-trip a list.
func marshalInventory(items []game.InventoryItem) (string, error) {
	if items == nil {
		items = []game.InventoryItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("marshal inventory: %w", err)
	}
	return string(data), nil
}

func unmarshalInventory(data string) ([]game.InventoryItem, error) {
	if data == "" {
		return []game.InventoryItem{}, nil
	}
	var items []game.InventoryItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, fmt.Errorf("unmarshal inventory: %w", err)
	}
	return items, nil
}
