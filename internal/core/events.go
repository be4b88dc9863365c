package core

import (
	"fmt"
	"slices"
	"time"
)

type EventKind string

const (
	EventPostCreated    EventKind = "post.created"
	EventPostUpdated    EventKind = "post.updated"
	EventPostDeleted    EventKind = "post.deleted"
	EventCommentCreated EventKind = "comment.created"
	EventCommentUpdated EventKind = "comment.updated"
	EventCommentDeleted EventKind = "comment.deleted"
	EventLikeCreated    EventKind = "like.created"
	EventLikeDeleted    EventKind = "like.deleted"
	EventFollowCreated  EventKind = "follow.created"
	EventFollowDeleted  EventKind = "follow.deleted"
)

var eventKinds = []EventKind{
	EventPostCreated, EventPostUpdated, EventPostDeleted,
	EventCommentCreated, EventCommentUpdated, EventCommentDeleted,
	EventLikeCreated, EventLikeDeleted,
	EventFollowCreated, EventFollowDeleted,
}

// Known reports whether k is one of the published event kinds.
func (k EventKind) Known() bool {
	return slices.Contains(eventKinds, k)
}

// Event is a committed change to the social graph or its content.
// SubjectID is the id of the post, comment or user the event is about.
type Event struct {
	Kind       EventKind `json:"kind"`
	ActorID    int64     `json:"actor_id"`
	SubjectID  int64     `json:"subject_id"`
	PostID     int64     `json:"post_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewEvent(kind EventKind, actorID, subjectID int64) Event {
	return Event{
		Kind:       kind,
		ActorID:    actorID,
		SubjectID:  subjectID,
		OccurredAt: time.Now().UTC(),
	}
}

func (e Event) WithPost(postID int64) Event {
	e.PostID = postID
	return e
}

// ID is stable for the same event and used for broker-side deduplication.
func (e Event) ID() string {
	return fmt.Sprintf("%s-%d-%d-%d", e.Kind, e.ActorID, e.SubjectID, e.OccurredAt.UnixNano())
}
