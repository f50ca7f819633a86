package requestsvc_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"itemshare/model"
	itemrepo "itemshare/repository/item"
	requestrepo "itemshare/repository/request"
	userrepo "itemshare/repository/user"
	requestsvc "itemshare/service/request"
	"itemshare/util/fault"
)

type requestRepoMock struct {
	createFn          func(ctx context.Context, r *model.Request) error
	byIDFn            func(ctx context.Context, id int64) (*model.Request, error)
	listByRequestorFn func(ctx context.Context, requestorID int64) ([]model.Request, error)
	listOthersFn      func(ctx context.Context, requestorID int64, limit, offset int) ([]model.Request, error)
}

var _ requestrepo.Repo = (*requestRepoMock)(nil)

func (m *requestRepoMock) Create(ctx context.Context, r *model.Request) error {
	if m.createFn == nil {
		r.ID = 1
		return nil
	}
	return m.createFn(ctx, r)
}

func (m *requestRepoMock) ByID(ctx context.Context, id int64) (*model.Request, error) {
	if m.byIDFn == nil {
		return nil, pgx.ErrNoRows
	}
	return m.byIDFn(ctx, id)
}

func (m *requestRepoMock) ListByRequestor(ctx context.Context, requestorID int64) ([]model.Request, error) {
	if m.listByRequestorFn == nil {
		return nil, nil
	}
	return m.listByRequestorFn(ctx, requestorID)
}

func (m *requestRepoMock) ListOthers(ctx context.Context, requestorID int64, limit, offset int) ([]model.Request, error) {
	if m.listOthersFn == nil {
		return nil, nil
	}
	return m.listOthersFn(ctx, requestorID, limit, offset)
}

type userRepoMock struct {
	known map[int64]bool
}

var _ userrepo.Repo = (*userRepoMock)(nil)

func (m *userRepoMock) Create(ctx context.Context, u *model.User) error { return nil }
func (m *userRepoMock) ByID(ctx context.Context, id int64) (*model.User, error) {
	if m.known[id] {
		return &model.User{ID: id}, nil
	}
	return nil, pgx.ErrNoRows
}
func (m *userRepoMock) ByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, pgx.ErrNoRows
}
func (m *userRepoMock) Update(ctx context.Context, u *model.User) error { return nil }
func (m *userRepoMock) Delete(ctx context.Context, id int64) error      { return nil }
func (m *userRepoMock) List(ctx context.Context) ([]model.User, error)  { return nil, nil }

type itemRepoMock struct {
	listByRequestFn func(ctx context.Context, requestID int64) ([]model.Item, error)
}

var _ itemrepo.Repo = (*itemRepoMock)(nil)

func (m *itemRepoMock) Create(ctx context.Context, i *model.Item) error { return nil }
func (m *itemRepoMock) ByID(ctx context.Context, id int64) (*model.Item, error) {
	return nil, pgx.ErrNoRows
}
func (m *itemRepoMock) Update(ctx context.Context, i *model.Item) error { return nil }
func (m *itemRepoMock) ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]model.Item, error) {
	return nil, nil
}
func (m *itemRepoMock) Search(ctx context.Context, text string, limit, offset int) ([]model.Item, error) {
	return nil, nil
}
func (m *itemRepoMock) ListByRequest(ctx context.Context, requestID int64) ([]model.Item, error) {
	if m.listByRequestFn == nil {
		return nil, nil
	}
	return m.listByRequestFn(ctx, requestID)
}
func (m *itemRepoMock) CreateComment(ctx context.Context, c *model.Comment) error { return nil }
func (m *itemRepoMock) CommentsByItem(ctx context.Context, itemID int64) ([]model.Comment, error) {
	return nil, nil
}

func users(ids ...int64) *userRepoMock {
	m := &userRepoMock{known: map[int64]bool{}}
	for _, id := range ids {
		m.known[id] = true
	}
	return m
}

func TestCreate_UserMissing(t *testing.T) {
	ctx := context.Background()
	svc := requestsvc.New(&requestRepoMock{}, users(), &itemRepoMock{})

	_, err := svc.Create(ctx, 9, "need a drill")
	require.Error(t, err)
	require.Equal(t, fault.UserNotFound, fault.CodeOf(err))
}

func TestCreate_StampsCreated(t *testing.T) {
	ctx := context.Background()
	rr := &requestRepoMock{
		createFn: func(ctx context.Context, r *model.Request) error {
			r.ID = 4
			return nil
		},
	}
	svc := requestsvc.New(rr, users(1), &itemRepoMock{})

	req, err := svc.Create(ctx, 1, "need a drill")
	require.NoError(t, err)
	require.Equal(t, int64(4), req.ID)
	require.Equal(t, int64(1), req.RequestorID)
	require.WithinDuration(t, time.Now(), req.Created, time.Minute)
}

func TestGet_RequestMissing(t *testing.T) {
	ctx := context.Background()
	svc := requestsvc.New(&requestRepoMock{}, users(1), &itemRepoMock{})

	_, err := svc.Get(ctx, 1, 404)
	require.Error(t, err)
	require.Equal(t, fault.RequestNotFound, fault.CodeOf(err))
}

func TestGet_AttachesItems(t *testing.T) {
	ctx := context.Background()
	rr := &requestRepoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Request, error) {
			return &model.Request{ID: id, RequestorID: 2, Description: "need a drill"}, nil
		},
	}
	ir := &itemRepoMock{
		listByRequestFn: func(ctx context.Context, requestID int64) ([]model.Item, error) {
			return []model.Item{{ID: 7, RequestID: &requestID}}, nil
		},
	}
	svc := requestsvc.New(rr, users(1), ir)

	view, err := svc.Get(ctx, 1, 4)
	require.NoError(t, err)
	require.Equal(t, int64(4), view.Request.ID)
	require.Len(t, view.Items, 1)
	require.Equal(t, int64(7), view.Items[0].ID)
}

func TestListOwn_EmptyItemsNotNil(t *testing.T) {
	ctx := context.Background()
	rr := &requestRepoMock{
		listByRequestorFn: func(ctx context.Context, requestorID int64) ([]model.Request, error) {
			return []model.Request{{ID: 4, RequestorID: requestorID}}, nil
		},
	}
	svc := requestsvc.New(rr, users(1), &itemRepoMock{})

	views, err := svc.ListOwn(ctx, 1)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.NotNil(t, views[0].Items)
	require.Empty(t, views[0].Items)
}

func TestListOthers_PageMath(t *testing.T) {
	ctx := context.Background()
	var gotLimit, gotOffset int
	rr := &requestRepoMock{
		listOthersFn: func(ctx context.Context, requestorID int64, limit, offset int) ([]model.Request, error) {
			gotLimit, gotOffset = limit, offset
			return nil, nil
		},
	}
	svc := requestsvc.New(rr, users(1), &itemRepoMock{})

	views, err := svc.ListOthers(ctx, 1, 7, 3)
	require.NoError(t, err)
	require.Equal(t, 3, gotLimit)
	require.Equal(t, 6, gotOffset)
	require.Empty(t, views)
}
