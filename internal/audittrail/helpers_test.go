package audittrail

import (
	"encoding/json"
	"time"

	"github.com/opsdesk/backend/internal/models"
)

const (
	userJane   = "11111111-1111-4111-8111-111111111111"
	userBob    = "22222222-2222-4222-8222-222222222222"
	userAdmin  = "33333333-3333-4333-8333-333333333333"
	assetID1   = "44444444-4444-4444-8444-444444444444"
	deptID1    = "55555555-5555-4555-8555-555555555555"
	taskID1    = "66666666-6666-4666-8666-666666666666"
	leaveReq1  = "77777777-7777-4777-8777-777777777777"
	leaveAppr1 = "88888888-8888-4888-8888-888888888888"
	payCat1    = "99999999-9999-4999-8999-999999999999"
	deviceID1  = "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa"
)

var occurred = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func strp(s string) *string { return &s }

func rawJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

func record(id, action, entityType string, entityID *string, before, after any) models.ChangeRecord {
	r := models.ChangeRecord{
		ID:          id,
		ActorUserID: strp(userAdmin),
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		OccurredAt:  occurred,
	}
	if before != nil {
		r.BeforeState = rawJSON(before)
	}
	if after != nil {
		r.AfterState = rawJSON(after)
	}
	return r
}

func user(id, first, last, email string) models.UserSummary {
	u := models.UserSummary{ID: id}
	if first != "" {
		u.FirstName = strp(first)
	}
	if last != "" {
		u.LastName = strp(last)
	}
	if email != "" {
		u.Email = strp(email)
	}
	return u
}

func lookupsWithUsers(users ...models.UserSummary) *Lookups {
	lk := &Lookups{Users: map[string]models.UserSummary{}}
	for _, u := range users {
		lk.Users[u.ID] = u
	}
	return lk
}
