package controller

import (
	"github.com/tnqbao/gau-dam-service/config"
	"github.com/tnqbao/gau-dam-service/infra"
	"github.com/tnqbao/gau-dam-service/repository"
	"github.com/tnqbao/gau-dam-service/uploader"
)

type Controller struct {
	Config     *config.Config
	Infra      *infra.Infra
	Repository *repository.Repository
	Uploader   *uploader.Pipeline
}

func NewController(config *config.Config, infra *infra.Infra, repo *repository.Repository, pipeline *uploader.Pipeline) *Controller {
	if repo == nil {
		panic("Failed to initialize Repository")
	}
	if pipeline == nil {
		panic("Failed to initialize upload pipeline")
	}
	return &Controller{
		Config:     config,
		Infra:      infra,
		Repository: repo,
		Uploader:   pipeline,
	}
}
