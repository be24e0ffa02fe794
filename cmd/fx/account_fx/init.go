package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"yatra/internal/repositories"
	"yatra/internal/services"
	mem "yatra/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, resetTokens mem.ResetTokenStore) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, resetTokens)
}
