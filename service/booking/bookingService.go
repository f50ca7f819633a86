package bookingsvc

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"itemshare/model"
	bookingrepo "itemshare/repository/booking"
	itemrepo "itemshare/repository/item"
	userrepo "itemshare/repository/user"
	"itemshare/util/fault"
)

type Service interface {
	// Create records a WAITING booking. Creating a booking does not flip
	// the item's availability; that flag stays owner-managed.
	Create(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*model.Booking, error)
	// Approve moves a WAITING booking to APPROVED or REJECTED, once,
	// and only for the item's owner.
	Approve(ctx context.Context, userID, bookingID int64, approved bool) (*model.Booking, error)
	// Get is visible to the item's owner and the booker only.
	Get(ctx context.Context, userID, bookingID int64) (*model.Booking, error)
	ListByBooker(ctx context.Context, bookerID int64, state string, from, size int) ([]model.Booking, error)
	ListByOwner(ctx context.Context, ownerID int64, state string, from, size int) ([]model.Booking, error)
}

type service struct {
	br bookingrepo.Repo
	ir itemrepo.Repo
	ur userrepo.Repo
}

func New(br bookingrepo.Repo, ir itemrepo.Repo, ur userrepo.Repo) Service {
	return &service{br: br, ir: ir, ur: ur}
}

func (s *service) Create(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*model.Booking, error) {
	if err := s.userExists(ctx, bookerID); err != nil {
		return nil, err
	}
	item, err := s.itemExists(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, fault.New(fault.ItemNotAvailable, "item %d is not available for booking", itemID)
	}
	if bookerID == item.OwnerID {
		// Owners cannot book their own items; surfaced as not-found.
		return nil, fault.New(fault.ItemNotFound, "item %d is not bookable by its owner", itemID)
	}
	if !end.After(start) {
		return nil, fault.New(fault.BookingEndDateInvalid, "end %s must be after start %s", end, start)
	}

	b := &model.Booking{
		Start:    start,
		End:      end,
		ItemID:   itemID,
		BookerID: bookerID,
		Status:   model.BookingWaiting,
	}
	if err := s.br.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Approve(ctx context.Context, userID, bookingID int64, approved bool) (*model.Booking, error) {
	b, err := s.bookingExists(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	item, err := s.itemExists(ctx, b.ItemID)
	if err != nil {
		return nil, err
	}
	if err := s.userExists(ctx, userID); err != nil {
		return nil, err
	}
	if userID != item.OwnerID {
		return nil, fault.New(fault.ItemOwnerMismatch, "item %d does not belong to user %d", item.ID, userID)
	}

	status := model.BookingRejected
	if approved {
		status = model.BookingApproved
	}
	ok, err := s.br.SetStatusFromWaiting(ctx, b.ID, status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fault.New(fault.BookingStatusAlreadySet, "booking %d status is already set", b.ID)
	}
	b.Status = status
	return b, nil
}

func (s *service) Get(ctx context.Context, userID, bookingID int64) (*model.Booking, error) {
	b, err := s.bookingExists(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	item, err := s.itemExists(ctx, b.ItemID)
	if err != nil {
		return nil, err
	}
	if err := s.userExists(ctx, userID); err != nil {
		return nil, err
	}
	if userID != item.OwnerID && userID != b.BookerID {
		return nil, fault.New(fault.BookingNotFound, "booking %d is not visible to user %d", bookingID, userID)
	}
	return b, nil
}

func (s *service) ListByBooker(ctx context.Context, bookerID int64, state string, from, size int) ([]model.Booking, error) {
	st, err := s.listArgs(ctx, bookerID, state)
	if err != nil {
		return nil, err
	}
	bookings, err := s.br.ListByBooker(ctx, bookerID, st, time.Now().UTC(), size, pageOffset(from, size))
	if err != nil {
		return nil, err
	}
	return emptyNotNil(bookings), nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID int64, state string, from, size int) ([]model.Booking, error) {
	st, err := s.listArgs(ctx, ownerID, state)
	if err != nil {
		return nil, err
	}
	bookings, err := s.br.ListByOwner(ctx, ownerID, st, time.Now().UTC(), size, pageOffset(from, size))
	if err != nil {
		return nil, err
	}
	return emptyNotNil(bookings), nil
}

func (s *service) listArgs(ctx context.Context, userID int64, state string) (model.BookingState, error) {
	if err := s.userExists(ctx, userID); err != nil {
		return "", err
	}
	st, ok := model.ParseBookingState(state)
	if !ok {
		return "", fault.New(fault.UnknownState, "Unknown state: %s", state)
	}
	return st, nil
}

// An out-of-range page yields an empty list, never an error.
func emptyNotNil(bookings []model.Booking) []model.Booking {
	if bookings == nil {
		return []model.Booking{}
	}
	return bookings
}

func (s *service) userExists(ctx context.Context, userID int64) error {
	if _, err := s.ur.ByID(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fault.New(fault.UserNotFound, "user %d does not exist", userID)
		}
		return err
	}
	return nil
}

func (s *service) itemExists(ctx context.Context, itemID int64) (*model.Item, error) {
	item, err := s.ir.ByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fault.New(fault.ItemNotFound, "item %d does not exist", itemID)
		}
		return nil, err
	}
	return item, nil
}

func (s *service) bookingExists(ctx context.Context, bookingID int64) (*model.Booking, error) {
	b, err := s.br.ByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fault.New(fault.BookingNotFound, "booking %d does not exist", bookingID)
		}
		return nil, err
	}
	return b, nil
}

func pageOffset(from, size int) int {
	return from / size * size
}
