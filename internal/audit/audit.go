// Package audit records operations performed by authenticated personnel. Routes declare what
// they do with a Descriptor and Track turns it into an audit_logs entry once the handler succeeds.
package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/SscSPs/comandas_backend/internal/core/domain"
	"github.com/SscSPs/comandas_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Action is the closed set of audited operation kinds.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
	ActionLogin  Action = "LOGIN"
	ActionLogout Action = "LOGOUT"
)

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete, ActionLogin, ActionLogout:
		return true
	}
	return false
}

// Descriptor declares how an operation is audited.
type Descriptor struct {
	Action Action
	Entity string
	// CaptureBefore loads the entity before the handler runs.
	CaptureBefore bool
	// CaptureRelations stores the ids of related entities reported by the loader or handler.
	CaptureRelations bool
	// Redact lists payload keys replaced before storing. "password" is always redacted.
	Redact []string
}

// Recorder persists audit entries.
type Recorder interface {
	Record(ctx context.Context, entry domain.AuditLog) error
}

// Loader returns a snapshot of the entity with the given id and the ids of entities related to it.
type Loader func(ctx context.Context, entityID string) (snapshot map[string]any, related []string, err error)

const (
	entityIDKey = "audit.entityID"
	actorKey    = "audit.actorID"
	relatedKey  = "audit.related"
)

// SetEntityID lets a handler report the id of an entity it created.
func SetEntityID(c *gin.Context, id string) {
	c.Set(entityIDKey, id)
}

// SetActor lets unauthenticated routes (login) report who acted.
func SetActor(c *gin.Context, personalID string) {
	c.Set(actorKey, personalID)
}

// AddRelated appends related entity ids from inside a handler.
func AddRelated(c *gin.Context, ids ...string) {
	existing, _ := c.Get(relatedKey)
	current, _ := existing.([]string)
	c.Set(relatedKey, append(current, ids...))
}

// Track is the pipeline stage that interprets d around the route's handler. It records only
// when the handler answers 2xx. Recording failures are logged and never change the response.
func Track(d Descriptor, recorder Recorder, load Loader) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := readBody(c)
		entityID := c.Param("id")

		var before map[string]any
		var related []string
		if load != nil && entityID != "" && (d.CaptureBefore || d.CaptureRelations) {
			snapshot, rel, err := load(c.Request.Context(), entityID)
			if err != nil {
				middleware.GetLogger(c).Debug().Err(err).Str("entity", d.Entity).Msg("Audit snapshot unavailable")
			} else {
				if d.CaptureBefore {
					before = Redact(snapshot, d.Redact)
				}
				related = rel
			}
		}

		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		if id := c.GetString(entityIDKey); id != "" {
			entityID = id
		}
		actorID := c.GetString(actorKey)
		if actorID == "" {
			actorID, _ = middleware.GetUserIDFromContext(c)
		}
		if d.CaptureRelations {
			if extra, ok := c.Get(relatedKey); ok {
				ids, _ := extra.([]string)
				related = append(related, ids...)
			}
		} else {
			related = nil
		}

		entry := domain.AuditLog{
			Action:   string(d.Action),
			Entity:   d.Entity,
			EntityID: entityID,
			ActorID:  actorID,
			Payload:  Redact(decodePayload(body), d.Redact),
			Before:   before,
			Related:  dedupe(related),
			ClientIP: c.ClientIP(),
		}
		if err := recorder.Record(context.WithoutCancel(c.Request.Context()), entry); err != nil {
			middleware.GetLogger(c).Error().Err(err).
				Str("action", entry.Action).
				Str("entity", entry.Entity).
				Msg("Failed to record audit log")
		}
	}
}

// readBody returns the raw request body and puts it back for the handler.
func readBody(c *gin.Context) []byte {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return nil
	}
	raw, err := io.ReadAll(c.Request.Body)
	_ = c.Request.Body.Close()
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil {
		return nil
	}
	return raw
}

func decodePayload(raw []byte) map[string]any {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}
	return payload
}

// Snapshot converts v to its JSON object form, for use by loaders.
func Snapshot(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func dedupe(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
