package repoargs

import "github.com/fsdevblog/groph-points/internal/domain"

type CreateUser struct {
	Username string
	Password string
	Role     domain.RoleType
	Verified bool
}
