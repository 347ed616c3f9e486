package impl

import (
	"io"
	"log/slog"

	"usermgr/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// storedDigest is a 64 character stand-in for a stored password digest.
const storedDigest = "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"

func newCandidate(username string) *entity.User {
	return &entity.User{
		Username: username,
		Password: "secret1",
		Email:    username + "@x.com",
		Role:     entity.RoleUser,
	}
}

func newStored(id int64, username string) *entity.User {
	return &entity.User{
		ID:       id,
		Username: username,
		Password: storedDigest,
		Email:    username + "@x.com",
		Role:     entity.RoleUser,
		Active:   true,
	}
}
