package repos

import (
	"database/sql"
	"encoding/json"

	"github.com/jmoiron/sqlx"

	"monabazaar/internal/domain"
)

// SessionRepo mirrors the authenticated user of each browser session to
// SQLite so sign-ins survive a restart.
type SessionRepo struct{ db *sqlx.DB }

func NewSessionRepo(db *sqlx.DB) *SessionRepo { return &SessionRepo{db: db} }

func (r *SessionRepo) Save(sid string, u domain.User) error {
	blob, err := json.Marshal(u)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(`
	  INSERT INTO sessions(sid, user_json, updated_at)
	  VALUES(?, ?, CURRENT_TIMESTAMP)
	  ON CONFLICT(sid) DO UPDATE SET user_json = excluded.user_json, updated_at = CURRENT_TIMESTAMP
	`, sid, string(blob))
	return err
}

// Load returns the stored user for sid, or nil when there is none. A row
// that fails to parse is discarded and counts as no session.
func (r *SessionRepo) Load(sid string) (*domain.User, error) {
	var blob string
	if err := r.db.Get(&blob, `SELECT user_json FROM sessions WHERE sid = ?`, sid); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	var u domain.User
	if err := json.Unmarshal([]byte(blob), &u); err != nil {
		_ = r.Delete(sid)
		return nil, nil
	}
	return &u, nil
}

func (r *SessionRepo) Delete(sid string) error {
	_, err := r.db.Exec(`DELETE FROM sessions WHERE sid = ?`, sid)
	return err
}

// Count reports active mirrored sessions, for the admin dashboard.
func (r *SessionRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM sessions`)
	return n, err
}
