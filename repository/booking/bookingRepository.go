package bookingrepo

import (
	"context"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"

	"itemshare/model"
	"itemshare/util/database"
)

var pg = goqu.Dialect("postgres")

type Repo interface {
	Create(ctx context.Context, b *model.Booking) error
	ByID(ctx context.Context, id int64) (*model.Booking, error)

	// SetStatusFromWaiting transitions WAITING to the given status in a
	// single compare-and-set statement; false means the booking was not
	// WAITING anymore. Two racing approvals cannot both succeed.
	SetStatusFromWaiting(ctx context.Context, id int64, status model.BookingStatus) (bool, error)

	ListByBooker(ctx context.Context, bookerID int64, state model.BookingState, now time.Time, limit, offset int) ([]model.Booking, error)
	ListByOwner(ctx context.Context, ownerID int64, state model.BookingState, now time.Time, limit, offset int) ([]model.Booking, error)

	// LastForItem is the latest booking started before now; NextApprovedForItem
	// is the earliest APPROVED booking starting after now. Both return nil
	// when there is none.
	LastForItem(ctx context.Context, itemID int64, now time.Time) (*model.Booking, error)
	NextApprovedForItem(ctx context.Context, itemID int64, now time.Time) (*model.Booking, error)

	ListByItemAndBooker(ctx context.Context, itemID, bookerID int64) ([]model.Booking, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, b *model.Booking) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO bookings(start_date, end_date, item_id, booker_id, status)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id`,
		b.Start, b.End, b.ItemID, b.BookerID, b.Status,
	).Scan(&b.ID)
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Booking, error) {
	b := &model.Booking{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, start_date, end_date, item_id, booker_id, status
		FROM bookings
		WHERE id = $1`,
		id,
	).Scan(&b.ID, &b.Start, &b.End, &b.ItemID, &b.BookerID, &b.Status)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repo) SetStatusFromWaiting(ctx context.Context, id int64, status model.BookingStatus) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE bookings
		SET status = $2
		WHERE id = $1
		AND status = 'WAITING'`,
		id, status)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repo) ListByBooker(ctx context.Context, bookerID int64, state model.BookingState, now time.Time, limit, offset int) ([]model.Booking, error) {
	ds := bookingSelect().
		Where(goqu.I("b.booker_id").Eq(bookerID))
	return r.queryBookings(ctx, applyState(ds, state, now).
		Order(goqu.I("b.start_date").Desc()).
		Limit(uint(limit)).
		Offset(uint(offset)))
}

func (r *repo) ListByOwner(ctx context.Context, ownerID int64, state model.BookingState, now time.Time, limit, offset int) ([]model.Booking, error) {
	ds := bookingSelect().
		Join(goqu.T("items").As("i"), goqu.On(goqu.I("i.id").Eq(goqu.I("b.item_id")))).
		Where(goqu.I("i.owner_id").Eq(ownerID))
	return r.queryBookings(ctx, applyState(ds, state, now).
		Order(goqu.I("b.start_date").Desc()).
		Limit(uint(limit)).
		Offset(uint(offset)))
}

func (r *repo) LastForItem(ctx context.Context, itemID int64, now time.Time) (*model.Booking, error) {
	return r.queryOne(ctx, bookingSelect().
		Where(
			goqu.I("b.item_id").Eq(itemID),
			goqu.I("b.start_date").Lt(now),
		).
		Order(goqu.I("b.start_date").Desc()).
		Limit(1))
}

func (r *repo) NextApprovedForItem(ctx context.Context, itemID int64, now time.Time) (*model.Booking, error) {
	return r.queryOne(ctx, bookingSelect().
		Where(
			goqu.I("b.item_id").Eq(itemID),
			goqu.I("b.start_date").Gt(now),
			goqu.I("b.status").Eq(string(model.BookingApproved)),
		).
		Order(goqu.I("b.start_date").Asc()).
		Limit(1))
}

func (r *repo) ListByItemAndBooker(ctx context.Context, itemID, bookerID int64) ([]model.Booking, error) {
	return r.queryBookings(ctx, bookingSelect().
		Where(
			goqu.I("b.item_id").Eq(itemID),
			goqu.I("b.booker_id").Eq(bookerID),
		).
		Order(goqu.I("b.id").Asc()))
}

func bookingSelect() *goqu.SelectDataset {
	return pg.From(goqu.T("bookings").As("b")).
		Select(
			goqu.I("b.id"),
			goqu.I("b.start_date"),
			goqu.I("b.end_date"),
			goqu.I("b.item_id"),
			goqu.I("b.booker_id"),
			goqu.I("b.status"),
		)
}

func applyState(ds *goqu.SelectDataset, state model.BookingState, now time.Time) *goqu.SelectDataset {
	switch state {
	case model.StatePast:
		return ds.Where(goqu.I("b.end_date").Lt(now))
	case model.StateFuture:
		return ds.Where(goqu.I("b.start_date").Gt(now))
	case model.StateCurrent:
		return ds.Where(
			goqu.I("b.start_date").Lte(now),
			goqu.I("b.end_date").Gte(now),
		)
	case model.StateWaiting, model.StateRejected:
		return ds.Where(goqu.I("b.status").Eq(string(state)))
	default: // ALL
		return ds
	}
}

func (r *repo) queryBookings(ctx context.Context, ds *goqu.SelectDataset) ([]model.Booking, error) {
	q, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.Start, &b.End, &b.ItemID, &b.BookerID, &b.Status); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *repo) queryOne(ctx context.Context, ds *goqu.SelectDataset) (*model.Booking, error) {
	q, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}
	b := &model.Booking{}
	err = r.db.Pool.QueryRow(ctx, q, args...).
		Scan(&b.ID, &b.Start, &b.End, &b.ItemID, &b.BookerID, &b.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}
