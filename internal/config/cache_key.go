package config

import (
	"fmt"

	"github.com/google/uuid"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// DatasetReportKey returns the cache key for a dataset's computed report
func (r *CacheKeyStruct) DatasetReportKey(datasetID uuid.UUID) string {
	return fmt.Sprintf("dataset:%s:report", datasetID)
}

// DatasetSummaryKey returns the cache key for a dataset's dashboard summary
func (r *CacheKeyStruct) DatasetSummaryKey(datasetID uuid.UUID) string {
	return fmt.Sprintf("dataset:%s:summary", datasetID)
}

var CacheKey = NewCacheKeyStruct()
