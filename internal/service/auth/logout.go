package auth

import "context"

func (s *serv) Logout(ctx context.Context, sessionID string) error {
	// Удаляем сессию, refresh токен перестаёт действовать
	return s.authRepo.DeleteSession(ctx, sessionID)
}
