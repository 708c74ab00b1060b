package models

import "time"

// RemovalRecord is a tracked org removal in DynamoDB. Future reconcile
// runs merge these records with the removed-members CSV so an
// explicitly removed login is never re-invited while the record lives.
type RemovalRecord struct {
	PK        string    `dynamodbav:"pk"` // ORG#<org>
	SK        string    `dynamodbav:"sk"` // USER#<login>
	Org       string    `dynamodbav:"org"`
	Login     string    `dynamodbav:"login"`
	Reason    string    `dynamodbav:"reason"`
	RemovedAt time.Time `dynamodbav:"removed_at"`
	TTL       int64     `dynamodbav:"ttl"`
}

// NewRemovalRecord creates a RemovalRecord with its key attributes set.
func NewRemovalRecord(org string, login string, reason string, ttlDays int) RemovalRecord {
	now := time.Now().UTC()
	key := LoginKey(login)
	return RemovalRecord{
		PK:        "ORG#" + org,
		SK:        "USER#" + key,
		Org:       org,
		Login:     key,
		Reason:    reason,
		RemovedAt: now,
		TTL:       now.AddDate(0, 0, ttlDays).Unix(),
	}
}
