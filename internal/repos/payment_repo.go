package repos

import (
	"github.com/jmoiron/sqlx"
)

type PaymentRepo struct{ db *sqlx.DB }

func NewPaymentRepo(db *sqlx.DB) *PaymentRepo { return &PaymentRepo{db: db} }

type PaymentRow struct {
	ID          string `db:"id"`
	SID         string `db:"sid"`
	AmountPaise int64  `db:"amount_paise"`
	Currency    string `db:"currency"`
	Method      string `db:"method"`
	Status      string `db:"status"`
	CreatedAt   string `db:"created_at"`
}

func (r *PaymentRepo) Record(p PaymentRow) error {
	_, err := r.db.Exec(`
	  INSERT INTO payments(id, sid, amount_paise, currency, method, status)
	  VALUES(?,?,?,?,?,?)
	`, p.ID, p.SID, p.AmountPaise, p.Currency, p.Method, p.Status)
	return err
}

func (r *PaymentRepo) ListLatest(limit int) ([]PaymentRow, error) {
	rows := []PaymentRow{}
	err := r.db.Select(&rows, `
	  SELECT id, sid, amount_paise, currency, method, status, created_at
	  FROM payments ORDER BY created_at DESC LIMIT ?`, limit)
	return rows, err
}

// Tally sums captured amounts, for the admin dashboard.
func (r *PaymentRepo) Tally() (count int, totalPaise int64, err error) {
	row := struct {
		N int   `db:"n"`
		T int64 `db:"t"`
	}{}
	err = r.db.Get(&row, `
	  SELECT COUNT(*) AS n, COALESCE(SUM(amount_paise),0) AS t
	  FROM payments WHERE status = 'captured'`)
	return row.N, row.T, err
}
