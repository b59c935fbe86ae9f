package service

import (
	"github.com/MKhiriev/go-birthday-keeper/internal/birthday"
	"github.com/MKhiriev/go-birthday-keeper/internal/config"
	"github.com/MKhiriev/go-birthday-keeper/internal/logger"
	"github.com/MKhiriev/go-birthday-keeper/internal/store"
	"github.com/MKhiriev/go-birthday-keeper/internal/validators"
	"github.com/MKhiriev/go-birthday-keeper/models"
)

type ClientServices struct {
	AccountService AccountService
	ContactService ContactService
	AppInfoService AppInfoService
}

func NewClientServices(
	storages *store.ClientStorages,
	cfg config.ClientApp,
	build models.AppBuildInfo,
	clock birthday.Clock,
	log *logger.Logger,
) *ClientServices {
	validator := validators.NewInputValidator()

	return &ClientServices{
		AccountService: NewAccountService(storages.AccountRepository, storages.SessionRepository, validator, clock, log),
		ContactService: NewContactService(storages.ContactRepository, validator, clock, log),
		AppInfoService: NewAppInfoService(cfg, build),
	}
}
