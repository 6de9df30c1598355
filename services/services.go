package services

import (
	"go-bptree/services/bench"
	"go-bptree/services/inspect"

	"github.com/sirupsen/logrus"
)

type Services struct {
	BenchService   *bench.BenchService
	InspectService *inspect.InspectService
}

func New(log *logrus.Logger) *Services {
	return &Services{
		BenchService:   bench.New(log),
		InspectService: inspect.New(log),
	}
}
