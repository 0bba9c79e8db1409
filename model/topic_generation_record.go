package model

import (
	"time"

	"gorm.io/datatypes"
)

/*

TopicGenerationRecord is an audit row for one AI topic-generation run

Id: primary key
CreatedAt: time when the run happened

RequestedCount: how many topics the caller asked for
KeptCount: how many survived category filtering and were inserted
Prompt: exact prompt sent to the model
RawResponse: the JSON payload decoded from the model output (fences already
	stripped), kept for later inspection of filtering decisions

The record is written in the same transaction as the topic batch, so a
failed insert leaves no audit row behind.

*/
type TopicGenerationRecord struct {
	Id             string `gorm:"primaryKey"`
	CreatedAt      time.Time
	RequestedCount int
	KeptCount      int
	Prompt         string
	RawResponse    datatypes.JSON
}
