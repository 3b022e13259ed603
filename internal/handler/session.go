package handler

import (
	"context"

	"github.com/pkordes/staylog/internal/auth"
	"github.com/pkordes/staylog/internal/handler/gen"
)

// SignOut handles DELETE /session. The user's cached collection is dropped
// and reloaded from the database on the next request. Anonymous callers get
// 204 as well.
func (s *Server) SignOut(ctx context.Context, _ gen.SignOutRequestObject) (gen.SignOutResponseObject, error) {
	if userID := auth.UserID(ctx); userID != "" {
		s.entries.SignOut(userID)
	}
	return gen.SignOut204Response{}, nil
}
