package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type Calculation struct {
	ID      int       `json:"id"`
	Export  string    `json:"export"`
	Args    []float64 `json:"args"`
	Value   float64   `json:"value"`
	SavedAt time.Time `json:"saved_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	SaveCalculation(ctx context.Context, userID int, c Calculation) (int, error)
	ListCalculations(ctx context.Context, userID int) ([]Calculation, error)
	DeleteCalculation(ctx context.Context, userID, id int) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) SaveCalculation(ctx context.Context, userID int, c Calculation) (int, error) {
	var id int
	query := `INSERT INTO calculations (user_id, export, args, value, saved_at)
	          VALUES ($1, $2, $3, $4, now()) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, userID, c.Export, pq.Array(c.Args), c.Value).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListCalculations(ctx context.Context, userID int) ([]Calculation, error) {
	query := `SELECT id, export, args, value, saved_at
	          FROM calculations WHERE user_id=$1 ORDER BY saved_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var calcs []Calculation
	for rows.Next() {
		var c Calculation
		var args pq.Float64Array
		if err := rows.Scan(&c.ID, &c.Export, &args, &c.Value, &c.SavedAt); err != nil {
			return nil, err
		}
		c.Args = []float64(args)
		calcs = append(calcs, c)
	}
	return calcs, rows.Err()
}

func (r *PostgresRepository) DeleteCalculation(ctx context.Context, userID, id int) error {
	query := "DELETE FROM calculations WHERE id=$1 AND user_id=$2"
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
