package excel

import (
	"context"

	"github.com/google/uuid"

	"github.com/bizdash/bizops-backend-go/internal/domain/user"
)

type userRepository struct {
	store *Store
}

func userFromRow(row []string) user.User {
	return user.User{
		ID:           row[0],
		Email:        row[1],
		Name:         row[2],
		PasswordHash: row[3],
		Role:         user.Role(row[4]),
		CreatedAt:    parseTimestamp(row[5]),
		UpdatedAt:    parseTimestamp(row[6]),
	}
}

func userToRow(u user.User) []interface{} {
	return []interface{}{
		u.ID,
		u.Email,
		u.Name,
		u.PasswordHash,
		string(u.Role),
		formatTimestamp(u.CreatedAt),
		formatTimestamp(u.UpdatedAt),
	}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	var result user.User
	err := r.store.read(ctx, func() error {
		rowNum, row, err := r.store.findRow(sheetUsers, 0, id)
		if err != nil {
			return err
		}
		if rowNum == 0 {
			return user.ErrUserNotFound
		}
		result = userFromRow(row)
		return nil
	})
	return result, err
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	var result user.User
	err := r.store.read(ctx, func() error {
		rowNum, row, err := r.store.findRow(sheetUsers, 1, email)
		if err != nil {
			return err
		}
		if rowNum == 0 {
			return user.ErrUserNotFound
		}
		result = userFromRow(row)
		return nil
	})
	return result, err
}

func (r *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	err := r.store.write(ctx, func() error {
		rowNum, _, err := r.store.findRow(sheetUsers, 1, newUser.Email)
		if err != nil {
			return err
		}
		if rowNum > 0 {
			return user.ErrEmailExists
		}

		newUser.ID = uuid.NewString()
		return r.store.appendRow(sheetUsers, userToRow(newUser))
	})
	if err != nil {
		return user.User{}, err
	}
	return newUser, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.store.read(ctx, func() error {
		rowNum, _, err := r.store.findRow(sheetUsers, 1, email)
		if err != nil {
			return err
		}
		exists = rowNum > 0
		return nil
	})
	return exists, err
}
