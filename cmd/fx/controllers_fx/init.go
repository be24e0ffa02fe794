package controllers_fx

import (
	"go.uber.org/fx"
	"yatra/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewPlacesController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewWeatherController),
	fx.Provide(controllers.NewForumController),
	fx.Provide(controllers.NewTipsController))
