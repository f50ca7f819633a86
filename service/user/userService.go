package usersvc

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"itemshare/model"
	userrepo "itemshare/repository/user"
	"itemshare/util/fault"
)

type Service interface {
	Create(ctx context.Context, name, email string) (*model.User, error)
	Update(ctx context.Context, id int64, patch model.UserPatch) (*model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	// Delete removes the user by id; deleting an absent user is a no-op.
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]model.User, error)
}

type service struct{ ur userrepo.Repo }

func New(ur userrepo.Repo) Service { return &service{ur} }

func (s *service) Create(ctx context.Context, name, email string) (*model.User, error) {
	// Pre-check on top of the unique constraint, so the common case is a
	// clean conflict instead of a constraint violation.
	if taken, err := s.emailTaken(ctx, email, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, fault.New(fault.EmailAlreadyExists, "email %s is already registered", email)
	}

	u := &model.User{Name: name, Email: email}
	if err := s.ur.Create(ctx, u); err != nil {
		if derr := mapUniqueViolation(err, email); derr != nil {
			return nil, derr
		}
		return nil, err
	}
	return u, nil
}

func (s *service) Update(ctx context.Context, id int64, patch model.UserPatch) (*model.User, error) {
	u, err := s.ur.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fault.New(fault.UserNotFound, "user %d does not exist", id)
		}
		return nil, err
	}

	if patch.Email != nil {
		if taken, err := s.emailTaken(ctx, *patch.Email, id); err != nil {
			return nil, err
		} else if taken {
			return nil, fault.New(fault.EmailAlreadyExists, "email %s belongs to another user", *patch.Email)
		}
		u.Email = *patch.Email
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}

	if err := s.ur.Update(ctx, u); err != nil {
		if derr := mapUniqueViolation(err, u.Email); derr != nil {
			return nil, derr
		}
		return nil, err
	}
	return u, nil
}

func (s *service) Get(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.ur.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fault.New(fault.UserNotFound, "user %d does not exist", id)
		}
		return nil, err
	}
	return u, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.ur.Delete(ctx, id)
}

func (s *service) List(ctx context.Context) ([]model.User, error) {
	return s.ur.List(ctx)
}

// emailTaken reports whether the email is owned by a user other than selfID.
func (s *service) emailTaken(ctx context.Context, email string, selfID int64) (bool, error) {
	other, err := s.ur.ByEmail(ctx, email)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return other.ID != selfID, nil
}

func mapUniqueViolation(err error, email string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		if strings.Contains(strings.ToLower(pgErr.ConstraintName), "email") {
			return fault.New(fault.EmailAlreadyExists, "email %s is already registered", email)
		}
	}
	return nil
}
