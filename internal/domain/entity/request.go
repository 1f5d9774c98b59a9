package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the lifecycle state of a help request.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCanceled  RequestStatus = "canceled"
	RequestStatusCompleted RequestStatus = "completed"
)

// IsValid checks if the RequestStatus is one of the five known values.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusRejected,
		RequestStatusCanceled, RequestStatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition can leave this status.
func (s RequestStatus) IsTerminal() bool {
	switch s {
	case RequestStatusRejected, RequestStatusCanceled, RequestStatusCompleted:
		return true
	default:
		return false
	}
}

// RequestParty identifies which side of a request an actor is on.
type RequestParty string

const (
	PartyElder     RequestParty = "elder"
	PartyVolunteer RequestParty = "volunteer"
)

// Other returns the opposite side of the request.
func (p RequestParty) Other() RequestParty {
	if p == PartyElder {
		return PartyVolunteer
	}

	return PartyElder
}

// requestTransitions maps a current status to the statuses each party may move it to.
var requestTransitions = map[RequestStatus]map[RequestParty]map[RequestStatus]struct{}{
	RequestStatusPending: {
		PartyVolunteer: {
			RequestStatusAccepted: {},
			RequestStatusRejected: {},
			RequestStatusCanceled: {},
		},
		PartyElder: {
			RequestStatusCanceled: {},
		},
	},
	RequestStatusAccepted: {
		PartyVolunteer: {
			RequestStatusCanceled: {},
		},
		PartyElder: {
			RequestStatusCompleted: {},
			RequestStatusCanceled:  {},
		},
	},
}

// CanTransition reports whether party may move a request from one status to another.
func CanTransition(from, to RequestStatus, party RequestParty) bool {
	byParty, ok := requestTransitions[from]
	if !ok {
		return false
	}
	targets, ok := byParty[party]
	if !ok {
		return false
	}
	_, ok = targets[to]

	return ok
}

// Request is a help engagement proposed by an elder to a volunteer.
type Request struct {
	ID          uuid.UUID     `json:"id"`
	ElderID     uuid.UUID     `json:"elder_id"`
	VolunteerID uuid.UUID     `json:"volunteer_id"`
	ServiceID   int64         `json:"service_id"`
	Slot        Slot          `json:"slot"`
	Details     string        `json:"details"`
	Urgent      bool          `json:"urgent"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// Read-side projections, populated by list queries.
	ElderName     string   `json:"elder_name,omitempty"`
	VolunteerName string   `json:"volunteer_name,omitempty"`
	Service       *Service `json:"service,omitempty"`
}

// PartyOf returns the side userID is on, or false when userID is not a party to the request.
func (r *Request) PartyOf(userID uuid.UUID) (RequestParty, bool) {
	switch userID {
	case r.ElderID:
		return PartyElder, true
	case r.VolunteerID:
		return PartyVolunteer, true
	default:
		return "", false
	}
}

// PartyID returns the user id on the given side of the request.
func (r *Request) PartyID(party RequestParty) uuid.UUID {
	if party == PartyElder {
		return r.ElderID
	}

	return r.VolunteerID
}
