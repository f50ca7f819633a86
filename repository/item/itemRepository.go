package itemrepo

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
	Create(ctx context.Context, i *model.Item) error
	ByID(ctx context.Context, id int64) (*model.Item, error)
	Update(ctx context.Context, i *model.Item) error
	ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]model.Item, error)
	Search(ctx context.Context, text string, limit, offset int) ([]model.Item, error)
	ListByRequest(ctx context.Context, requestID int64) ([]model.Item, error)
	CreateComment(ctx context.Context, c *model.Comment) error
	CommentsByItem(ctx context.Context, itemID int64) ([]model.Comment, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, i *model.Item) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO items(name, description, available, owner_id, request_id)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id`,
		i.Name, i.Description, i.Available, i.OwnerID, i.RequestID,
	).Scan(&i.ID)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Item, error) {
	i := &model.Item{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE id = $1`,
		id,
	).Scan(&i.ID, &i.Name, &i.Description, &i.Available, &i.OwnerID, &i.RequestID)
	if err != nil {
		return nil, err
	}
	return i, nil
}

func (r *repo) Update(ctx context.Context, i *model.Item) error {
	_, err := r.db.Pool.Exec(ctx, `
		UPDATE items
		SET name = $2, description = $3, available = $4
		WHERE id = $1`,
		i.ID, i.Name, i.Description, i.Available)
	return err
}

func (r *repo) ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]model.Item, error) {
	q, args, err := pg.From("items").
		Select("id", "name", "description", "available", "owner_id", "request_id").
		Where(goqu.C("owner_id").Eq(ownerID)).
		Order(goqu.C("id").Asc()).
		Limit(uint(limit)).
		Offset(uint(offset)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, err
	}
	return r.queryItems(ctx, q, args)
}

// Search matches available items whose name or description contains the
// text, case-insensitively.
func (r *repo) Search(ctx context.Context, text string, limit, offset int) ([]model.Item, error) {
	pattern := "%" + text + "%"
	q, args, err := pg.From("items").
		Select("id", "name", "description", "available", "owner_id", "request_id").
		Where(
			goqu.C("available").IsTrue(),
			goqu.Or(
				goqu.C("name").ILike(pattern),
				goqu.C("description").ILike(pattern),
			),
		).
		Order(goqu.C("id").Asc()).
		Limit(uint(limit)).
		Offset(uint(offset)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, err
	}
	return r.queryItems(ctx, q, args)
}

func (r *repo) ListByRequest(ctx context.Context, requestID int64) ([]model.Item, error) {
	q, args, err := pg.From("items").
		Select("id", "name", "description", "available", "owner_id", "request_id").
		Where(goqu.C("request_id").Eq(requestID)).
		Order(goqu.C("id").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, err
	}
	return r.queryItems(ctx, q, args)
}

func (r *repo) queryItems(ctx context.Context, q string, args []any) ([]model.Item, error) {
	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func scanItems(rows pgx.Rows) ([]model.Item, error) {
	var out []model.Item
	for rows.Next() {
		var i model.Item
		if err := rows.Scan(&i.ID, &i.Name, &i.Description, &i.Available, &i.OwnerID, &i.RequestID); err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func (r *repo) CreateComment(ctx context.Context, c *model.Comment) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO comments(text, item_id, author_id, created)
		VALUES ($1,$2,$3,$4)
		RETURNING id`,
		c.Text, c.ItemID, c.AuthorID, c.Created,
	).Scan(&c.ID)
}

func (r *repo) CommentsByItem(ctx context.Context, itemID int64) ([]model.Comment, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT c.id, c.text, c.item_id, c.author_id, u.name, c.created
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = $1
		ORDER BY c.id`,
		itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.Text, &c.ItemID, &c.AuthorID, &c.AuthorName, &c.Created); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
