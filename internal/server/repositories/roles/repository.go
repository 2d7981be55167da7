package roles

import "context"

type Repository interface {
	FindIDByName(ctx context.Context, name string) (string, error)
	AssignToUser(ctx context.Context, userID, roleID string) error
}
