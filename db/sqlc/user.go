package db

import (
	"context"
)

const (
	opCreateUser        = "create-user"
	opGetUser           = "get-user"
	opGetUserByUsername = "get-user-by-username"
)

type CreateUserParams struct {
	Username       string `json:"username"`
	HashedPassword string `json:"hashed_password"`
}

// CreateUser inserts a new user. A taken username gives an error of [KindConflict].
func (s *SQLStore) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	user, err := s.createUser(ctx, createUserParams(arg))
	if err != nil {
		return User{}, sqlError(opCreateUser, entUser, err, withEntityID(arg.Username))
	}

	return user, nil
}

func (s *SQLStore) GetUser(ctx context.Context, userID int64) (User, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return User{}, sqlError(opGetUser, entUser, err, withEntityID(userID))
	}

	return user, nil
}

func (s *SQLStore) GetUserByUsername(ctx context.Context, username string) (User, error) {
	user, err := s.getUserByUsername(ctx, username)
	if err != nil {
		return User{}, sqlError(opGetUserByUsername, entUser, err, withEntityID(username))
	}

	return user, nil
}
