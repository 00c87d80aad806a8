package domain

type RequestStatusType string

const (
	RequestStatusPending  RequestStatusType = "pending"
	RequestStatusApproved RequestStatusType = "approved"
	RequestStatusRejected RequestStatusType = "rejected"
)

// IsTerminal сообщает, является ли статус конечным. Переходы возможны только из pending.
func (s RequestStatusType) IsTerminal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

// ValidRequestStatus проверяет, что строка является известным статусом заявки.
func ValidRequestStatus(s RequestStatusType) bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected:
		return true
	}
	return false
}

// SettingCurrentRate ключ настройки с текущей ценой монеты в валютных единицах.
const SettingCurrentRate = "current_rate"

type UserRoleType string

const (
	UserRoleInvestor UserRoleType = "investor"
	UserRoleAdmin    UserRoleType = "admin"
)
