// Package audit holds the append-only audit trail entry written by every
// lifecycle transition.
package audit

import (
	"errors"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// Action is what happened to the audited entity.
type Action string

const (
	ActionCreate   Action = "CREATE"
	ActionApprove  Action = "APPROVE"
	ActionReject   Action = "REJECT"
	ActionAccept   Action = "ACCEPT"
	ActionDispatch Action = "DISPATCH"
	ActionFulfill  Action = "FULFILL"
)

// Snapshot is a flat key/value image of the audited state.
type Snapshot map[string]string

// Entry records who changed which entity, from what to what, and when.
// OldValue is nil for creations.
type Entry struct {
	id         kernel.UUID
	entityName string
	entityID   kernel.UUID
	action     Action
	oldValue   Snapshot
	newValue   Snapshot
	actorID    kernel.UUID
	recordedAt time.Time
}

func NewEntry(
	id kernel.UUID,
	entityName string,
	entityID kernel.UUID,
	action Action,
	oldValue Snapshot,
	newValue Snapshot,
	actorID kernel.UUID,
	recordedAt time.Time,
) (*Entry, error) {
	e := &Entry{
		id:         id,
		entityName: strings.TrimSpace(entityName),
		entityID:   entityID,
		action:     action,
		oldValue:   oldValue,
		newValue:   newValue,
		actorID:    actorID,
		recordedAt: recordedAt,
	}

	var errEntity, errAction, errAt error
	if e.entityName == "" {
		errEntity = errs.NewValueIsRequiredError("entity name")
	}
	if action == "" {
		errAction = errs.NewValueIsRequiredError("action")
	}
	if recordedAt.IsZero() {
		errAt = errs.NewValueIsRequiredError("recorded at")
	}

	if err := errors.Join(
		id.Validate(),
		entityID.Validate(),
		actorID.Validate(),
		errEntity,
		errAction,
		errAt,
	); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Entry) ID() kernel.UUID { return e.id }
func (e *Entry) EntityName() string { return e.entityName }
func (e *Entry) EntityID() kernel.UUID { return e.entityID }
func (e *Entry) Action() Action { return e.action }
func (e *Entry) OldValue() Snapshot { return e.oldValue }
func (e *Entry) NewValue() Snapshot { return e.newValue }
func (e *Entry) ActorID() kernel.UUID { return e.actorID }
func (e *Entry) RecordedAt() time.Time { return e.recordedAt }
