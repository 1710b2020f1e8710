// Package persistence provides SQLite-based game state storage.
package persistence

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/paulmach/orb"
	_ "modernc.org/sqlite"

	"github.com/starfront-game/starfront/internal/engine"
	"github.com/starfront-game/starfront/internal/game"
)

// DB wraps a SQLite connection for game state persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS games (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		created_by TEXT NOT NULL,
		state INTEGER NOT NULL,
		tick INTEGER NOT NULL,
		max_players INTEGER NOT NULL,
		stars_per_player INTEGER NOT NULL,
		light_year REAL NOT NULL,
		ticks_per_cycle INTEGER NOT NULL,
		starting_credits INTEGER NOT NULL,
		cycle_start_spend_pct REAL NOT NULL,
		cycle_end_spend_pct REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS players (
		id TEXT PRIMARY KEY,
		game_id TEXT NOT NULL,
		alias TEXT NOT NULL,
		credits INTEGER NOT NULL,
		hyperspace INTEGER NOT NULL,
		scanning INTEGER NOT NULL,
		terraforming INTEGER NOT NULL,
		experimentation INTEGER NOT NULL,
		weapons INTEGER NOT NULL,
		banking INTEGER NOT NULL,
		ai_controlled INTEGER NOT NULL,
		defeated INTEGER NOT NULL,
		ach_joined INTEGER NOT NULL,
		ach_quit INTEGER NOT NULL,
		ach_defeated INTEGER NOT NULL,
		ach_victories INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS stars (
		id TEXT PRIMARY KEY,
		game_id TEXT NOT NULL,
		name TEXT NOT NULL,
		owned_by TEXT,
		x REAL NOT NULL,
		y REAL NOT NULL,
		economy INTEGER NOT NULL,
		industry INTEGER NOT NULL,
		science INTEGER NOT NULL,
		natural_resources REAL NOT NULL,
		sort_order INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS carriers (
		id TEXT PRIMARY KEY,
		game_id TEXT NOT NULL,
		owned_by TEXT NOT NULL,
		at_star TEXT NOT NULL,
		waypoint_source TEXT,
		waypoint_destination TEXT
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		tick INTEGER NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_stars_game ON stars(game_id);
	CREATE INDEX IF NOT EXISTS idx_players_game ON players(game_id);
	CREATE INDEX IF NOT EXISTS idx_carriers_game ON carriers(game_id);
	CREATE INDEX IF NOT EXISTS idx_events_game_tick ON events(game_id, tick);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveGame writes a full snapshot of the game (replace semantics) in one
// transaction.
func (db *DB) SaveGame(g *game.Game) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	gid := g.ID.String()
	for _, table := range []string{"games", "players", "stars", "carriers"} {
		col := "game_id"
		if table == "games" {
			col = "id"
		}
		if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE %s = ?", table, col), gid); err != nil {
			return err
		}
	}

	_, err = tx.Exec(`INSERT INTO games
		(id, name, created_by, state, tick, max_players, stars_per_player,
		 light_year, ticks_per_cycle, starting_credits,
		 cycle_start_spend_pct, cycle_end_spend_pct)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		gid, g.Name, g.CreatedBy.String(), g.State, g.Tick,
		g.Settings.MaxPlayers, g.Settings.StarsPerPlayer,
		g.Settings.LightYear, g.Settings.TicksPerCycle, g.Settings.StartingCredits,
		g.Settings.CycleStartSpendPct, g.Settings.CycleEndSpendPct,
	)
	if err != nil {
		return fmt.Errorf("insert game: %w", err)
	}

	if err := savePlayers(tx, gid, g.Players); err != nil {
		return err
	}
	if err := saveStars(tx, gid, g.Stars); err != nil {
		return err
	}
	if err := saveCarriers(tx, gid, g.Carriers); err != nil {
		return err
	}

	return tx.Commit()
}

func savePlayers(tx *sqlx.Tx, gid string, players []*game.Player) error {
	stmt, err := tx.Preparex(`INSERT INTO players
		(id, game_id, alias, credits, hyperspace, scanning, terraforming,
		 experimentation, weapons, banking, ai_controlled, defeated,
		 ach_joined, ach_quit, ach_defeated, ach_victories)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range players {
		_, err := stmt.Exec(
			p.ID.String(), gid, p.Alias, p.Credits,
			p.Research.Hyperspace, p.Research.Scanning, p.Research.Terraforming,
			p.Research.Experimentation, p.Research.Weapons, p.Research.Banking,
			boolInt(p.AIControlled), boolInt(p.Defeated),
			p.Achievements.Joined, p.Achievements.Quit,
			p.Achievements.Defeated, p.Achievements.Victories,
		)
		if err != nil {
			return fmt.Errorf("insert player %s: %w", p.Alias, err)
		}
	}
	return nil
}

func saveStars(tx *sqlx.Tx, gid string, stars []*game.Star) error {
	stmt, err := tx.Preparex(`INSERT INTO stars
		(id, game_id, name, owned_by, x, y, economy, industry, science,
		 natural_resources, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, s := range stars {
		var ownedBy any
		if s.OwnedBy != nil {
			ownedBy = s.OwnedBy.String()
		}
		_, err := stmt.Exec(
			s.ID.String(), gid, s.Name, ownedBy,
			s.Location.X(), s.Location.Y(),
			s.Infrastructure.Economy, s.Infrastructure.Industry, s.Infrastructure.Science,
			s.NaturalResources, i,
		)
		if err != nil {
			return fmt.Errorf("insert star %s: %w", s.Name, err)
		}
	}
	return nil
}

func saveCarriers(tx *sqlx.Tx, gid string, carriers []*game.Carrier) error {
	stmt, err := tx.Preparex(`INSERT INTO carriers
		(id, game_id, owned_by, at_star, waypoint_source, waypoint_destination)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range carriers {
		var wpSrc, wpDst any
		if len(c.Waypoints) > 0 {
			wpSrc = c.Waypoints[0].Source.String()
			wpDst = c.Waypoints[0].Destination.String()
		}
		_, err := stmt.Exec(c.ID.String(), gid, c.OwnedBy.String(), c.AtStar.String(), wpSrc, wpDst)
		if err != nil {
			return fmt.Errorf("insert carrier %s: %w", c.ID, err)
		}
	}
	return nil
}

// SaveEvents appends game events.
func (db *DB) SaveEvents(gameID uuid.UUID, events []engine.Event) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`INSERT INTO events (game_id, tick, description, category) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range events {
		if _, err := stmt.Exec(gameID.String(), e.Tick, e.Description, e.Category); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadGame restores a game snapshot by ID.
func (db *DB) LoadGame(id uuid.UUID) (*game.Game, error) {
	row := db.conn.QueryRowx(`SELECT id, name, created_by, state, tick,
		max_players, stars_per_player, light_year, ticks_per_cycle,
		starting_credits, cycle_start_spend_pct, cycle_end_spend_pct
		FROM games WHERE id = ?`, id.String())

	var (
		gidStr, name, createdBy string
		state                   uint8
		tick                    uint64
		s                       game.Settings
	)
	err := row.Scan(&gidStr, &name, &createdBy, &state, &tick,
		&s.MaxPlayers, &s.StarsPerPlayer, &s.LightYear, &s.TicksPerCycle,
		&s.StartingCredits, &s.CycleStartSpendPct, &s.CycleEndSpendPct)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("game %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("load game: %w", err)
	}

	g := &game.Game{
		ID:        uuid.MustParse(gidStr),
		Name:      name,
		CreatedBy: uuid.MustParse(createdBy),
		Settings:  s,
		State:     game.GameState(state),
		Tick:      tick,
	}

	if g.Players, err = db.loadPlayers(gidStr); err != nil {
		return nil, err
	}
	if g.Stars, err = db.loadStars(gidStr); err != nil {
		return nil, err
	}
	if g.Carriers, err = db.loadCarriers(gidStr); err != nil {
		return nil, err
	}
	return g, nil
}

func (db *DB) loadPlayers(gid string) ([]*game.Player, error) {
	rows, err := db.conn.Queryx(`SELECT id, alias, credits, hyperspace, scanning,
		terraforming, experimentation, weapons, banking, ai_controlled, defeated,
		ach_joined, ach_quit, ach_defeated, ach_victories
		FROM players WHERE game_id = ?`, gid)
	if err != nil {
		return nil, fmt.Errorf("load players: %w", err)
	}
	defer rows.Close()

	var players []*game.Player
	for rows.Next() {
		var (
			idStr, alias  string
			p             game.Player
			aiInt, defInt int
		)
		err := rows.Scan(&idStr, &alias, &p.Credits,
			&p.Research.Hyperspace, &p.Research.Scanning, &p.Research.Terraforming,
			&p.Research.Experimentation, &p.Research.Weapons, &p.Research.Banking,
			&aiInt, &defInt,
			&p.Achievements.Joined, &p.Achievements.Quit,
			&p.Achievements.Defeated, &p.Achievements.Victories)
		if err != nil {
			return nil, err
		}
		p.ID = uuid.MustParse(idStr)
		p.Alias = alias
		p.AIControlled = aiInt != 0
		p.Defeated = defInt != 0
		players = append(players, &p)
	}
	return players, rows.Err()
}

func (db *DB) loadStars(gid string) ([]*game.Star, error) {
	rows, err := db.conn.Queryx(`SELECT id, name, owned_by, x, y, economy,
		industry, science, natural_resources
		FROM stars WHERE game_id = ? ORDER BY sort_order`, gid)
	if err != nil {
		return nil, fmt.Errorf("load stars: %w", err)
	}
	defer rows.Close()

	var stars []*game.Star
	for rows.Next() {
		var (
			idStr, name string
			ownedBy     sql.NullString
			x, y        float64
			s           game.Star
		)
		err := rows.Scan(&idStr, &name, &ownedBy, &x, &y,
			&s.Infrastructure.Economy, &s.Infrastructure.Industry,
			&s.Infrastructure.Science, &s.NaturalResources)
		if err != nil {
			return nil, err
		}
		s.ID = uuid.MustParse(idStr)
		s.Name = name
		s.Location = orb.Point{x, y}
		if ownedBy.Valid {
			owner := uuid.MustParse(ownedBy.String)
			s.OwnedBy = &owner
		}
		stars = append(stars, &s)
	}
	return stars, rows.Err()
}

func (db *DB) loadCarriers(gid string) ([]*game.Carrier, error) {
	rows, err := db.conn.Queryx(`SELECT id, owned_by, at_star,
		waypoint_source, waypoint_destination
		FROM carriers WHERE game_id = ?`, gid)
	if err != nil {
		return nil, fmt.Errorf("load carriers: %w", err)
	}
	defer rows.Close()

	var carriers []*game.Carrier
	for rows.Next() {
		var (
			idStr, ownedBy, atStar string
			wpSrc, wpDst           sql.NullString
			c                      game.Carrier
		)
		if err := rows.Scan(&idStr, &ownedBy, &atStar, &wpSrc, &wpDst); err != nil {
			return nil, err
		}
		c.ID = uuid.MustParse(idStr)
		c.OwnedBy = uuid.MustParse(ownedBy)
		c.AtStar = uuid.MustParse(atStar)
		if wpSrc.Valid && wpDst.Valid {
			src := uuid.MustParse(wpSrc.String)
			dst := uuid.MustParse(wpDst.String)
			c.Waypoints = []game.Waypoint{
				{Source: src, Destination: dst},
				{Source: dst, Destination: src},
			}
		}
		carriers = append(carriers, &c)
	}
	return carriers, rows.Err()
}

// HasGame reports whether a game snapshot exists.
func (db *DB) HasGame(id uuid.UUID) bool {
	var n int
	if err := db.conn.Get(&n, "SELECT COUNT(*) FROM games WHERE id = ?", id.String()); err != nil {
		return false
	}
	return n > 0
}

// DeleteGame removes a game and all of its dependent rows.
func (db *DB) DeleteGame(id uuid.UUID) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	gid := id.String()
	if _, err := tx.Exec("DELETE FROM games WHERE id = ?", gid); err != nil {
		return err
	}
	for _, table := range []string{"players", "stars", "carriers", "events"} {
		if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE game_id = ?", table), gid); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
