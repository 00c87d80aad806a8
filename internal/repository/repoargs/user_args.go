package repoargs

import "github.com/fsdevblog/groph-invest/internal/domain"

type CreateUser struct {
	Username string
	Password string
	Role     domain.UserRoleType
}
