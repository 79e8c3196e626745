package repos

import (
	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ db *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{db: db} }

type UserRow struct {
	ID       string `db:"id"`
	Email    string `db:"email"`
	Username string `db:"username"`
	Phone    string `db:"phone"`
	Name     string `db:"name"`
	Hash     string `db:"password_hash"`
}

// Upsert records a registered account, replacing any earlier row with the
// same email. Registration is idempotent in demo mode.
func (r *UserRepo) Upsert(u UserRow) error {
	_, err := r.db.Exec(`
	  INSERT INTO users(id, email, username, phone, name, password_hash)
	  VALUES(?,?,?,?,?,?)
	  ON CONFLICT(email) DO UPDATE SET
	    username = excluded.username,
	    phone = excluded.phone,
	    name = excluded.name,
	    password_hash = excluded.password_hash
	`, u.ID, u.Email, u.Username, u.Phone, u.Name, u.Hash)
	return err
}

func (r *UserRepo) ByEmail(email string) (*UserRow, error) {
	var u UserRow
	err := r.db.Get(&u, `
	  SELECT id, email, username, phone, COALESCE(name,'') AS name, password_hash
	  FROM users WHERE LOWER(email) = LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM users`)
	return n, err
}
