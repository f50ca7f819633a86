package itemsvc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"itemshare/model"
	bookingrepo "itemshare/repository/booking"
	itemrepo "itemshare/repository/item"
	userrepo "itemshare/repository/user"
	"itemshare/util/fault"
)

type Service interface {
	Create(ctx context.Context, ownerID int64, name, description string, available bool, requestID *int64) (*model.Item, error)
	Update(ctx context.Context, ownerID, itemID int64, patch model.ItemPatch) (*model.Item, error)
	// Get returns the item with its comments; when userID owns the item the
	// view also carries the last and next bookings.
	Get(ctx context.Context, itemID, userID int64) (*model.ItemView, error)
	ListByOwner(ctx context.Context, ownerID int64, from, size int) ([]model.ItemView, error)
	// Search matches available items by name or description; blank text
	// yields an empty result, not a match-all.
	Search(ctx context.Context, text string, from, size int) ([]model.Item, error)
	// PostComment is allowed only for users with a finished booking of the item.
	PostComment(ctx context.Context, userID, itemID int64, text string) (*model.Comment, error)
}

type service struct {
	ir itemrepo.Repo
	ur userrepo.Repo
	br bookingrepo.Repo
}

func New(ir itemrepo.Repo, ur userrepo.Repo, br bookingrepo.Repo) Service {
	return &service{ir: ir, ur: ur, br: br}
}

func (s *service) Create(ctx context.Context, ownerID int64, name, description string, available bool, requestID *int64) (*model.Item, error) {
	if _, err := s.userExists(ctx, ownerID); err != nil {
		return nil, err
	}
	item := &model.Item{
		Name:        name,
		Description: description,
		Available:   available,
		OwnerID:     ownerID,
		RequestID:   requestID,
	}
	if err := s.ir.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) Update(ctx context.Context, ownerID, itemID int64, patch model.ItemPatch) (*model.Item, error) {
	if _, err := s.userExists(ctx, ownerID); err != nil {
		return nil, err
	}
	item, err := s.itemExists(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != ownerID {
		return nil, fault.New(fault.ItemOwnerMismatch, "item %d does not belong to user %d", itemID, ownerID)
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Available != nil {
		item.Available = *patch.Available
	}

	if err := s.ir.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) Get(ctx context.Context, itemID, userID int64) (*model.ItemView, error) {
	item, err := s.itemExists(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, item, userID)
}

func (s *service) ListByOwner(ctx context.Context, ownerID int64, from, size int) ([]model.ItemView, error) {
	if _, err := s.userExists(ctx, ownerID); err != nil {
		return nil, err
	}
	items, err := s.ir.ListByOwner(ctx, ownerID, size, pageOffset(from, size))
	if err != nil {
		return nil, err
	}
	views := make([]model.ItemView, 0, len(items))
	for i := range items {
		v, err := s.buildView(ctx, &items[i], ownerID)
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

func (s *service) Search(ctx context.Context, text string, from, size int) ([]model.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []model.Item{}, nil
	}
	items, err := s.ir.Search(ctx, text, size, pageOffset(from, size))
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

func (s *service) PostComment(ctx context.Context, userID, itemID int64, text string) (*model.Comment, error) {
	user, err := s.userExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	item, err := s.itemExists(ctx, itemID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.br.ListByItemAndBooker(ctx, item.ID, userID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if !anyFinished(bookings, now) {
		return nil, fault.New(fault.ItemRenterRequired, "user %d has not rented item %d", userID, itemID)
	}

	c := &model.Comment{
		Text:       text,
		ItemID:     item.ID,
		AuthorID:   user.ID,
		AuthorName: user.Name,
		Created:    now,
	}
	if err := s.ir.CreateComment(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func anyFinished(bookings []model.Booking, now time.Time) bool {
	for _, b := range bookings {
		if b.End.Before(now) {
			return true
		}
	}
	return false
}

func (s *service) buildView(ctx context.Context, item *model.Item, userID int64) (*model.ItemView, error) {
	comments, err := s.ir.CommentsByItem(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []model.Comment{}
	}
	view := &model.ItemView{Item: *item, Comments: comments}

	if userID != item.OwnerID {
		return view, nil
	}
	now := time.Now().UTC()
	last, err := s.br.LastForItem(ctx, item.ID, now)
	if err != nil {
		return nil, err
	}
	next, err := s.br.NextApprovedForItem(ctx, item.ID, now)
	if err != nil {
		return nil, err
	}
	if last != nil {
		view.LastBooking = &model.BookingRef{ID: last.ID, BookerID: last.BookerID}
	}
	if next != nil {
		view.NextBooking = &model.BookingRef{ID: next.ID, BookerID: next.BookerID}
	}
	return view, nil
}

func (s *service) userExists(ctx context.Context, userID int64) (*model.User, error) {
	u, err := s.ur.ByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fault.New(fault.UserNotFound, "user %d does not exist", userID)
		}
		return nil, err
	}
	return u, nil
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

// pageOffset converts the gateway's from/size pair into a page-aligned
// offset: page floor(from/size), rows of size.
func pageOffset(from, size int) int {
	return from / size * size
}
