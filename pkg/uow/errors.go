package uow

import "errors"

var (
	// ErrRepositoryNotRegistered запрошенный репозиторий не был зарегистрирован через Register.
	ErrRepositoryNotRegistered = errors.New("[uow] repository not registered")
	// ErrRepositoryAlreadyRegistered повторная регистрация репозитория под тем же именем.
	ErrRepositoryAlreadyRegistered = errors.New("[uow] repository already registered")
	// ErrInvalidRepositoryType фактический тип репозитория не совпал с запрошенным.
	ErrInvalidRepositoryType = errors.New("[uow] invalid repository type")
)
