package service

import (
	"fmt"

	"github.com/fsdevblog/groph-invest/pkg/uow"
)

type AppServices struct {
	UserService     *UserService
	RequestService  *InvestmentRequestService
	SettingsService *SettingsService
	ContractService *ContractService
	PortalService   *PortalService
}

func Factory(unitOfWork uow.UOW, jwtSecret []byte) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, jwtSecret)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	requestService, requestServiceErr := NewInvestmentRequestService(unitOfWork)
	if requestServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", requestServiceErr.Error())
	}

	settingsService, settingsServiceErr := NewSettingsService(unitOfWork)
	if settingsServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", settingsServiceErr.Error())
	}

	contractService, contractServiceErr := NewContractService(unitOfWork)
	if contractServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", contractServiceErr.Error())
	}

	portalService, portalServiceErr := NewPortalService(unitOfWork)
	if portalServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", portalServiceErr.Error())
	}

	return &AppServices{
		UserService:     userService,
		RequestService:  requestService,
		SettingsService: settingsService,
		ContractService: contractService,
		PortalService:   portalService,
	}, nil
}
