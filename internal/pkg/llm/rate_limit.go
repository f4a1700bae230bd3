package llm

import (
	"golang.org/x/sync/semaphore"
)

var (
	TextWeight     = int64(5)
	TextSem        = semaphore.NewWeighted(TextWeight)
	EmbedWeight    = int64(50)
	EmbedSem       = semaphore.NewWeighted(EmbedWeight)
	ClassifyWeight = int64(20)
	ClassifySem    = semaphore.NewWeighted(ClassifyWeight)
)
