package duckdrill

import (
	"github.com/duckdrill/duckdrill/db"
)

type Instance struct {
	Config db.Config
}

func Open(cfg db.Config) *Instance {
	return &Instance{
		Config: cfg,
	}
}

func (instance *Instance) Engine() *db.Engine {
	return db.NewEngine(instance.Config)
}
