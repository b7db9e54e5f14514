// Package constants holds identifiers shared across layers.
package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event types published for ad and comment lifecycle changes.
const (
	EventAdCreated      = "ad.created"
	EventAdUpdated      = "ad.updated"
	EventAdDeleted      = "ad.deleted"
	EventCommentCreated = "comment.created"
	EventCommentDeleted = "comment.deleted"
)
