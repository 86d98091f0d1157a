package service

import (
	"github.com/latenitesite/mattermost-mobile/internal/metrics"
	"github.com/latenitesite/mattermost-mobile/internal/store"
)

type ClientServices struct {
	DataOperator DataOperator
}

func NewClientServices(storages *store.ClientStorages, commitMetrics *metrics.CommitMetrics) *ClientServices {
	return &ClientServices{
		DataOperator: NewDataOperator(storages.Manager, commitMetrics),
	}
}
