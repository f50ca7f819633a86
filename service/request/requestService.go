package requestsvc

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"itemshare/model"
	itemrepo "itemshare/repository/item"
	requestrepo "itemshare/repository/request"
	userrepo "itemshare/repository/user"
	"itemshare/util/fault"
)

type Service interface {
	Create(ctx context.Context, requestorID int64, description string) (*model.Request, error)
	// ListOwn returns the user's requests oldest first, each with the items
	// that fulfill it.
	ListOwn(ctx context.Context, userID int64) ([]model.RequestView, error)
	// ListOthers returns other users' requests newest first, paginated.
	ListOthers(ctx context.Context, userID int64, from, size int) ([]model.RequestView, error)
	Get(ctx context.Context, userID, requestID int64) (*model.RequestView, error)
}

type service struct {
	rr requestrepo.Repo
	ur userrepo.Repo
	ir itemrepo.Repo
}

func New(rr requestrepo.Repo, ur userrepo.Repo, ir itemrepo.Repo) Service {
	return &service{rr: rr, ur: ur, ir: ir}
}

func (s *service) Create(ctx context.Context, requestorID int64, description string) (*model.Request, error) {
	if err := s.userExists(ctx, requestorID); err != nil {
		return nil, err
	}
	req := &model.Request{
		Description: description,
		RequestorID: requestorID,
		Created:     time.Now().UTC(),
	}
	if err := s.rr.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *service) ListOwn(ctx context.Context, userID int64) ([]model.RequestView, error) {
	if err := s.userExists(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.rr.ListByRequestor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

func (s *service) ListOthers(ctx context.Context, userID int64, from, size int) ([]model.RequestView, error) {
	if err := s.userExists(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.rr.ListOthers(ctx, userID, size, from/size*size)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

func (s *service) Get(ctx context.Context, userID, requestID int64) (*model.RequestView, error) {
	if err := s.userExists(ctx, userID); err != nil {
		return nil, err
	}
	req, err := s.rr.ByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fault.New(fault.RequestNotFound, "request %d does not exist", requestID)
		}
		return nil, err
	}
	views, err := s.attachItems(ctx, []model.Request{*req})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *service) attachItems(ctx context.Context, requests []model.Request) ([]model.RequestView, error) {
	views := make([]model.RequestView, 0, len(requests))
	for _, req := range requests {
		items, err := s.ir.ListByRequest(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []model.Item{}
		}
		views = append(views, model.RequestView{Request: req, Items: items})
	}
	return views, nil
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
