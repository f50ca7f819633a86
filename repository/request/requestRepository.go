package requestrepo

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"

	"itemshare/model"
	"itemshare/util/database"
)

var pg = goqu.Dialect("postgres")

type Repo interface {
	Create(ctx context.Context, req *model.Request) error
	ByID(ctx context.Context, id int64) (*model.Request, error)
	ListByRequestor(ctx context.Context, requestorID int64) ([]model.Request, error)
	// ListOthers returns requests NOT made by the user, newest first.
	ListOthers(ctx context.Context, requestorID int64, limit, offset int) ([]model.Request, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, req *model.Request) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO requests(description, requestor_id, created)
		VALUES ($1,$2,$3)
		RETURNING id`,
		req.Description, req.RequestorID, req.Created,
	).Scan(&req.ID)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Request, error) {
	req := &model.Request{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, description, requestor_id, created
		FROM requests
		WHERE id = $1`,
		id,
	).Scan(&req.ID, &req.Description, &req.RequestorID, &req.Created)
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *repo) ListByRequestor(ctx context.Context, requestorID int64) ([]model.Request, error) {
	q, args, err := pg.From("requests").
		Select("id", "description", "requestor_id", "created").
		Where(goqu.C("requestor_id").Eq(requestorID)).
		Order(goqu.C("id").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, err
	}
	return r.queryRequests(ctx, q, args)
}

func (r *repo) ListOthers(ctx context.Context, requestorID int64, limit, offset int) ([]model.Request, error) {
	q, args, err := pg.From("requests").
		Select("id", "description", "requestor_id", "created").
		Where(goqu.C("requestor_id").Neq(requestorID)).
		Order(goqu.C("created").Desc()).
		Limit(uint(limit)).
		Offset(uint(offset)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, err
	}
	return r.queryRequests(ctx, q, args)
}

func (r *repo) queryRequests(ctx context.Context, q string, args []any) ([]model.Request, error) {
	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRequests(rows)
}

func scanRequests(rows pgx.Rows) ([]model.Request, error) {
	var out []model.Request
	for rows.Next() {
		var req model.Request
		if err := rows.Scan(&req.ID, &req.Description, &req.RequestorID, &req.Created); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}
