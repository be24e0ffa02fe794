package forum_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"yatra/internal/repositories"
	"yatra/internal/services"
)

var Module = fx.Provide(
	provideForumService, provideForumRepo)

func provideForumRepo(db *gorm.DB) repositories.ForumRepository {
	return repositories.NewForumRepository(db)
}

func provideForumService(forumRepo repositories.ForumRepository) services.ForumServiceInterface {
	return services.NewForumService(forumRepo)
}
